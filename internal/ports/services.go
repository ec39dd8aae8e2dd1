package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

// NewTodo carries the validated fields of a todo creation request.
type NewTodo struct {
	Description string
	DueDate     *time.Time
}

// ListService defines the application service contract for lists and their
// todos. Handlers depend on this interface; the implementation lives in the
// app package.
type ListService interface {
	CreateList(ctx context.Context, name string) (*list.List, error)
	GetList(ctx context.Context, listID int64) (*list.List, error)

	// DeleteList removes the list together with all of its todos.
	DeleteList(ctx context.Context, listID int64) error

	CreateTodo(ctx context.Context, listID int64, t NewTodo) (*todo.Todo, error)
	GetTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error)

	// UpdateTodo applies the client fields of patch; UpdatedAt is set by the
	// service.
	UpdateTodo(ctx context.Context, listID, todoID int64, patch todo.Patch) (*todo.Todo, error)
	DeleteTodo(ctx context.Context, listID, todoID int64) error

	// GetTodos returns one ordered page of the list's todos.
	GetTodos(ctx context.Context, listID int64, q todo.Query) ([]todo.Todo, error)
}
