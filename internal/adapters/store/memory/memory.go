// Package memory implements ports.ListRepository on in-process maps.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ListRepository = (*Store)(nil)

type listEntry struct {
	list     list.List
	nextTodo int64
	todos    map[int64]todo.Todo
}

// Store keeps lists and todos in memory. The zero value is not usable; call
// New. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	nextList int64
	lists    map[int64]*listEntry
}

// New creates an empty Store. Both sequences start at 1.
func New() *Store {
	return &Store{
		nextList: 1,
		lists:    make(map[int64]*listEntry),
	}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory" }

// HealthCheck implements ports.HealthChecker. An in-process store is always
// reachable.
func (s *Store) HealthCheck(context.Context) error { return nil }

func (s *Store) CreateList(_ context.Context, name string, now time.Time) (*list.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := list.List{ID: s.nextList, Name: name, CreatedAt: now, UpdatedAt: now}
	s.nextList++
	s.lists[l.ID] = &listEntry{list: l, nextTodo: 1, todos: make(map[int64]todo.Todo)}

	return &l, nil
}

func (s *Store) FindList(_ context.Context, listID int64) (*list.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.lists[listID]
	if !ok {
		return nil, domain.ErrListNotFound
	}
	l := e.list
	return &l, nil
}

func (s *Store) DeleteList(_ context.Context, listID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lists[listID]
	if !ok {
		return domain.ErrListNotFound
	}
	if len(e.todos) > 0 {
		return ports.ErrListNotEmpty
	}
	delete(s.lists, listID)
	return nil
}

func (s *Store) CreateTodo(_ context.Context, listID int64, t todo.Todo) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lists[listID]
	if !ok {
		return nil, domain.ErrListNotFound
	}

	t.ID = e.nextTodo
	t.ListID = listID
	e.nextTodo++
	e.todos[t.ID] = clone(t)

	out := clone(t)
	return &out, nil
}

func (s *Store) FindTodo(_ context.Context, listID, todoID int64) (*todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.todoLocked(listID, todoID)
	if err != nil {
		return nil, err
	}
	out := clone(t)
	return &out, nil
}

func (s *Store) UpdateTodo(_ context.Context, listID, todoID int64, patch todo.Patch) (*todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.todoLocked(listID, todoID)
	if err != nil {
		return nil, err
	}

	updated := clone(patch.Apply(t))
	s.lists[listID].todos[todoID] = updated

	out := clone(updated)
	return &out, nil
}

func (s *Store) DeleteTodo(_ context.Context, listID, todoID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.todoLocked(listID, todoID); err != nil {
		return err
	}
	delete(s.lists[listID].todos, todoID)
	return nil
}

func (s *Store) GetTodos(ctx context.Context, listID int64, q todo.Query) ([]todo.Todo, error) {
	all, err := s.ListTodos(ctx, listID)
	if err != nil {
		return nil, err
	}
	return todo.Paginate(all, q), nil
}

func (s *Store) ListTodos(_ context.Context, listID int64) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.lists[listID]
	if !ok {
		return nil, domain.ErrListNotFound
	}

	out := make([]todo.Todo, 0, len(e.todos))
	for _, t := range e.todos {
		out = append(out, clone(t))
	}
	slices.SortFunc(out, func(a, b todo.Todo) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (s *Store) DeleteTodos(_ context.Context, listID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lists[listID]
	if !ok {
		return 0, domain.ErrListNotFound
	}
	n := len(e.todos)
	clear(e.todos)
	return n, nil
}

func (s *Store) RestoreTodos(_ context.Context, listID int64, todos []todo.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lists[listID]
	if !ok {
		return domain.ErrListNotFound
	}
	for _, t := range todos {
		t.ListID = listID
		e.todos[t.ID] = clone(t)
	}
	return nil
}

func (s *Store) todoLocked(listID, todoID int64) (todo.Todo, error) {
	e, ok := s.lists[listID]
	if !ok {
		return todo.Todo{}, domain.ErrListNotFound
	}
	t, ok := e.todos[todoID]
	if !ok {
		return todo.Todo{}, domain.ErrTodoNotFound
	}
	return t, nil
}

// clone detaches the due date pointer so callers cannot mutate stored state.
func clone(t todo.Todo) todo.Todo {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}
