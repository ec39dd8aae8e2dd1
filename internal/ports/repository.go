package ports

import (
	"context"
	"errors"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

// ErrListNotEmpty is returned by DeleteList while the list still holds todos.
// It reports a concurrent CreateTodo that landed after DeleteTodos.
var ErrListNotEmpty = errors.New("list still has todos")

// ListRepository persists lists and their todos. It is implemented by every
// storage backend under adapters/store.
//
// Expected absence is reported as domain.ErrListNotFound or
// domain.ErrTodoNotFound (match with errors.Is). Any other error is an
// infrastructure failure. List and todo ids come from sequence counters kept
// in the store itself, so several service instances can share one store.
type ListRepository interface {
	HealthChecker

	// CreateList allocates the next global list id and persists the list with
	// the given name and timestamps.
	CreateList(ctx context.Context, name string, now time.Time) (*list.List, error)

	// FindList returns the list or domain.ErrListNotFound.
	FindList(ctx context.Context, listID int64) (*list.List, error)

	// DeleteList removes the list document, domain.ErrListNotFound when it is
	// absent. Callers delete the list's todos first (DeleteTodos); a list that
	// still holds todos is left in place and ErrListNotEmpty is returned.
	DeleteList(ctx context.Context, listID int64) error

	// CreateTodo atomically increments the list's todo sequence and stores t
	// under the new id. ID and ListID of t are ignored.
	CreateTodo(ctx context.Context, listID int64, t todo.Todo) (*todo.Todo, error)

	// FindTodo returns the todo, domain.ErrListNotFound or domain.ErrTodoNotFound.
	FindTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error)

	// UpdateTodo applies the patch and returns the updated todo.
	UpdateTodo(ctx context.Context, listID, todoID int64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo removes one todo. Its id is never handed out again.
	DeleteTodo(ctx context.Context, listID, todoID int64) error

	// GetTodos returns the page of the list's todos selected by q.
	GetTodos(ctx context.Context, listID int64, q todo.Query) ([]todo.Todo, error)

	// ListTodos returns every todo of the list in id order.
	ListTodos(ctx context.Context, listID int64) ([]todo.Todo, error)

	// DeleteTodos removes every todo of the list and returns how many were
	// removed. The list's sequence is left untouched.
	DeleteTodos(ctx context.Context, listID int64) (int, error)

	// RestoreTodos re-inserts previously deleted todos with their original
	// ids and timestamps. Used to compensate a failed cascade delete.
	RestoreTodos(ctx context.Context, listID int64, todos []todo.Todo) error
}
