package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

var (
	_ domain.Action = (*deleteTodosAction)(nil)
	_ domain.Action = (*deleteListAction)(nil)
)

// deleteTodosAction removes every todo of a list. Its rollback re-inserts the
// snapshot taken before the delete.
type deleteTodosAction struct {
	repo     ports.ListRepository
	listID   int64
	snapshot []todo.Todo
}

func (a *deleteTodosAction) Execute(ctx context.Context) error {
	_, err := a.repo.DeleteTodos(ctx, a.listID)
	return err
}

func (a *deleteTodosAction) Rollback(ctx context.Context) error {
	if len(a.snapshot) == 0 {
		return nil
	}
	return a.repo.RestoreTodos(ctx, a.listID, a.snapshot)
}

func (a *deleteTodosAction) Description() string {
	return fmt.Sprintf("delete %d todos of list %d", len(a.snapshot), a.listID)
}

// deleteListAction removes the list document. It is always the last step, so
// it is never rolled back.
type deleteListAction struct {
	repo   ports.ListRepository
	listID int64
}

func (a *deleteListAction) Execute(ctx context.Context) error {
	return a.repo.DeleteList(ctx, a.listID)
}

func (a *deleteListAction) Rollback(context.Context) error { return nil }

func (a *deleteListAction) Description() string {
	return fmt.Sprintf("delete list %d", a.listID)
}
