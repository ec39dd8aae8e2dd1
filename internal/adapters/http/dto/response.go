// Package dto provides the HTTP request/response data transfer objects, their
// validators and the error body for the inbound HTTP adapter layer.
//
// Timestamps cross the wire as epoch milliseconds.
package dto

import (
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

// CreatedListResponse is returned by POST /lists.
type CreatedListResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListResponse is returned by GET /lists/{listId}.
type ListResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CreationDate   int64  `json:"creation_date"`
	LastUpdateDate int64  `json:"last_update_date"`
}

// TodoResponse represents a single todo. DueDate is omitted when unset.
type TodoResponse struct {
	ID             int64  `json:"id"`
	Description    string `json:"description"`
	State          string `json:"state"`
	DueDate        *int64 `json:"due_date,omitempty"`
	CreationDate   int64  `json:"creation_date"`
	LastUpdateDate int64  `json:"last_update_date"`
}

// TodoPageResponse is one page of a list's todos. First and Last are the ids
// of the first and last entries and are omitted for an empty page.
type TodoPageResponse struct {
	First *int64         `json:"first,omitempty"`
	Last  *int64         `json:"last,omitempty"`
	Size  int            `json:"size"`
	Todos []TodoResponse `json:"todos"`
}

// ToCreatedListResponse converts a newly created list.
func ToCreatedListResponse(l *list.List) CreatedListResponse {
	return CreatedListResponse{ID: l.ID, Name: l.Name}
}

// ToListResponse converts a domain List.
func ToListResponse(l *list.List) ListResponse {
	return ListResponse{
		ID:             l.ID,
		Name:           l.Name,
		CreationDate:   l.CreatedAt.UnixMilli(),
		LastUpdateDate: l.UpdatedAt.UnixMilli(),
	}
}

// ToTodoResponse converts a domain Todo.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:             t.ID,
		Description:    t.Description,
		State:          t.State.String(),
		CreationDate:   t.CreatedAt.UnixMilli(),
		LastUpdateDate: t.UpdatedAt.UnixMilli(),
	}
	if t.DueDate != nil {
		ms := t.DueDate.UnixMilli()
		resp.DueDate = &ms
	}
	return resp
}

// ToTodoPageResponse converts an ordered page. Todos is never null.
func ToTodoPageResponse(todos []todo.Todo) TodoPageResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}

	resp := TodoPageResponse{Size: len(items), Todos: items}
	if len(todos) > 0 {
		first, last := todos[0].ID, todos[len(todos)-1].ID
		resp.First = &first
		resp.Last = &last
	}
	return resp
}
