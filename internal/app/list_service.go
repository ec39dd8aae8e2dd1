// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	appctx "github.com/jsamuelsen11/todo-list-service/internal/app/context"
	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// ListService implements ports.ListService on top of a ListRepository. It
// stamps timestamps, attaches not-found detail, logs failures and runs the
// cascade delete of a list as compensated steps.
type ListService struct {
	repo   ports.ListRepository
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a ListService.
type Option func(*ListService)

// WithClock replaces time.Now as the source of creation and update timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *ListService) {
		s.now = now
	}
}

// NewListService creates a ListService. A nil logger discards output.
func NewListService(repo ports.ListRepository, logger *slog.Logger, opts ...Option) *ListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ListService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateList stores a new list under the next global id.
func (s *ListService) CreateList(ctx context.Context, name string) (*list.List, error) {
	s.logger.InfoContext(ctx, "creating list")

	created, err := s.repo.CreateList(ctx, list.NormalizeName(name), s.timestamp())
	if err != nil {
		s.logFailure(ctx, "CreateList", err)
		return nil, fmt.Errorf("creating list: %w", err)
	}

	return created, nil
}

// GetList returns a single list.
func (s *ListService) GetList(ctx context.Context, listID int64) (*list.List, error) {
	s.logger.DebugContext(ctx, "fetching list", slog.Int64("list_id", listID))

	l, err := s.repo.FindList(ctx, listID)
	if err != nil {
		s.logFailure(ctx, "GetList", err, slog.Int64("list_id", listID))
		return nil, describe(err, listID, 0)
	}

	return l, nil
}

// DeleteList removes the list's todos, then the list. If the list cannot be
// deleted the todos are restored, so a failure never leaves todos without a
// list nor a half-emptied list.
func (s *ListService) DeleteList(ctx context.Context, listID int64) error {
	s.logger.InfoContext(ctx, "deleting list", slog.Int64("list_id", listID))

	rc := appctx.FromContext(ctx)
	key := listKey(listID)

	if _, err := appctx.GetOrFetch(ctx, rc, key, func(ctx context.Context) (*list.List, error) {
		return s.repo.FindList(ctx, listID)
	}); err != nil {
		s.logFailure(ctx, "DeleteList", err, slog.Int64("list_id", listID))
		return describe(err, listID, 0)
	}

	snapshot, err := s.repo.ListTodos(ctx, listID)
	if err != nil {
		s.logFailure(ctx, "DeleteList", err, slog.Int64("list_id", listID))
		return describe(fmt.Errorf("snapshotting todos: %w", err), listID, 0)
	}

	if err := errors.Join(
		rc.AddAction(&deleteTodosAction{repo: s.repo, listID: listID, snapshot: snapshot}),
		rc.AddAction(&deleteListAction{repo: s.repo, listID: listID}),
	); err != nil {
		return fmt.Errorf("staging list deletion: %w", err)
	}

	err = rc.Commit(ctx)
	rc.Forget(key)
	if err != nil {
		s.logFailure(ctx, "DeleteList", err,
			slog.Int64("list_id", listID),
			slog.Int("todos", len(snapshot)),
		)
		return describe(err, listID, 0)
	}

	return nil
}

// CreateTodo adds an incomplete todo to the list.
func (s *ListService) CreateTodo(ctx context.Context, listID int64, in ports.NewTodo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.Int64("list_id", listID))

	now := s.timestamp()
	t := todo.Todo{
		Description: strings.TrimSpace(in.Description),
		State:       todo.StateIncomplete,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.DueDate != nil {
		due := todo.Timestamp(*in.DueDate)
		t.DueDate = &due
	}

	created, err := s.repo.CreateTodo(ctx, listID, t)
	if err != nil {
		s.logFailure(ctx, "CreateTodo", err, slog.Int64("list_id", listID))
		return nil, describe(err, listID, 0)
	}

	return created, nil
}

// GetTodo returns one todo of the list.
func (s *ListService) GetTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error) {
	s.logger.DebugContext(ctx, "fetching todo",
		slog.Int64("list_id", listID),
		slog.Int64("todo_id", todoID),
	)

	t, err := s.repo.FindTodo(ctx, listID, todoID)
	if err != nil {
		s.logFailure(ctx, "GetTodo", err, slog.Int64("list_id", listID), slog.Int64("todo_id", todoID))
		return nil, describe(err, listID, todoID)
	}

	return t, nil
}

// UpdateTodo applies the supplied fields and refreshes the update timestamp.
func (s *ListService) UpdateTodo(ctx context.Context, listID, todoID int64, patch todo.Patch) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo",
		slog.Int64("list_id", listID),
		slog.Int64("todo_id", todoID),
	)

	if desc, ok := patch.Description.Get(); ok {
		patch.Description = domain.Some(strings.TrimSpace(desc))
	}
	if due, ok := patch.DueDate.Get(); ok {
		patch.DueDate = domain.Some(todo.Timestamp(due))
	}
	patch.UpdatedAt = s.timestamp()

	updated, err := s.repo.UpdateTodo(ctx, listID, todoID, patch)
	if err != nil {
		s.logFailure(ctx, "UpdateTodo", err, slog.Int64("list_id", listID), slog.Int64("todo_id", todoID))
		return nil, describe(err, listID, todoID)
	}

	return updated, nil
}

// DeleteTodo removes one todo. Deleting a missing todo reports not found.
func (s *ListService) DeleteTodo(ctx context.Context, listID, todoID int64) error {
	s.logger.InfoContext(ctx, "deleting todo",
		slog.Int64("list_id", listID),
		slog.Int64("todo_id", todoID),
	)

	if err := s.repo.DeleteTodo(ctx, listID, todoID); err != nil {
		s.logFailure(ctx, "DeleteTodo", err, slog.Int64("list_id", listID), slog.Int64("todo_id", todoID))
		return describe(err, listID, todoID)
	}

	return nil
}

// GetTodos returns one ordered page of the list's todos.
func (s *ListService) GetTodos(ctx context.Context, listID int64, q todo.Query) ([]todo.Todo, error) {
	q = q.Normalize()
	s.logger.DebugContext(ctx, "listing todos",
		slog.Int64("list_id", listID),
		slog.Int("index", q.Index),
		slog.Int("limit", q.Limit),
		slog.String("order_by", string(q.OrderBy)),
		slog.String("order_direction", string(q.Direction)),
	)

	todos, err := s.repo.GetTodos(ctx, listID, q)
	if err != nil {
		s.logFailure(ctx, "GetTodos", err, slog.Int64("list_id", listID))
		return nil, describe(err, listID, 0)
	}

	return todos, nil
}

func (s *ListService) timestamp() time.Time {
	return todo.Timestamp(s.now())
}

// logFailure logs expected absence at debug level and everything else as an
// error, so storage failures are visible server-side only.
func (s *ListService) logFailure(ctx context.Context, operation string, err error, attrs ...any) {
	args := append([]any{slog.String("operation", operation), slog.Any("error", err)}, attrs...)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.DebugContext(ctx, "entity not found", args...)
		return
	}
	s.logger.ErrorContext(ctx, "operation failed", args...)
}

// describe attaches the ids to not-found catalog errors. Other errors pass
// through unchanged.
func describe(err error, listID, todoID int64) error {
	switch {
	case errors.Is(err, domain.ErrListNotFound):
		return domain.ErrListNotFound.WithDetail(fmt.Sprintf("List id %d", listID))
	case errors.Is(err, domain.ErrTodoNotFound):
		return domain.ErrTodoNotFound.WithDetail(
			fmt.Sprintf("No ToDo with id %d on list with id %d", todoID, listID))
	default:
		return err
	}
}

func listKey(listID int64) string {
	return fmt.Sprintf("list:%d", listID)
}
