package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// TodoHandler serves the todos nested under a list.
type TodoHandler struct {
	svc          ports.ListService
	defaultLimit int
}

// NewTodoHandler returns a TodoHandler whose listings hold at most
// defaultLimit entries when the request names no limit. Zero lifts the cap.
func NewTodoHandler(svc ports.ListService, defaultLimit int) *TodoHandler {
	return &TodoHandler{svc: svc, defaultLimit: defaultLimit}
}

// ListTodos handles GET /lists/{listId}/todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (reply, error) {
		listID, err := pathID(r, ParamListID)
		if err != nil {
			return reply{}, err
		}
		q, err := dto.ParsePageQuery(r.URL.Query(), h.defaultLimit)
		if err != nil {
			return reply{}, err
		}
		page, err := h.svc.GetTodos(r.Context(), listID, q)
		if err != nil {
			return reply{}, err
		}
		return reply{http.StatusOK, dto.ToTodoPageResponse(page)}, nil
	})
}

// CreateTodo handles POST /lists/{listId}/todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (reply, error) {
		listID, err := pathID(r, ParamListID)
		if err != nil {
			return reply{}, err
		}
		var req dto.CreateTodoRequest
		if err := decodeBody(r, &req, domain.ErrInvalidTodoEntry); err != nil {
			return reply{}, err
		}
		created, err := h.svc.CreateTodo(r.Context(), listID, req.NewTodo())
		if err != nil {
			return reply{}, err
		}
		return reply{http.StatusCreated, dto.ToTodoResponse(created)}, nil
	})
}

// GetTodo handles GET /lists/{listId}/todos/{todoId}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (reply, error) {
		listID, todoID, err := todoPath(r)
		if err != nil {
			return reply{}, err
		}
		t, err := h.svc.GetTodo(r.Context(), listID, todoID)
		if err != nil {
			return reply{}, err
		}
		return reply{http.StatusOK, dto.ToTodoResponse(t)}, nil
	})
}

// UpdateTodo handles PATCH /lists/{listId}/todos/{todoId}. Only the fields
// present in the body change.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (reply, error) {
		listID, todoID, err := todoPath(r)
		if err != nil {
			return reply{}, err
		}
		var req dto.UpdateTodoRequest
		if err := decodeBody(r, &req, domain.ErrInvalidTodoEntry); err != nil {
			return reply{}, err
		}
		updated, err := h.svc.UpdateTodo(r.Context(), listID, todoID, req.Patch())
		if err != nil {
			return reply{}, err
		}
		return reply{http.StatusOK, dto.ToTodoResponse(updated)}, nil
	})
}

// DeleteTodo handles DELETE /lists/{listId}/todos/{todoId}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (reply, error) {
		listID, todoID, err := todoPath(r)
		if err != nil {
			return reply{}, err
		}
		return reply{status: http.StatusNoContent}, h.svc.DeleteTodo(r.Context(), listID, todoID)
	})
}
