// Package storetest is the behavior suite shared by every ports.ListRepository
// backend. Backend packages call Run from their own tests:
//
//	func TestStore(t *testing.T) {
//	    storetest.Run(t, func(t *testing.T) ports.ListRepository { return memory.New() })
//	}
//
// The suite never assumes absolute list ids, so it also runs against shared
// external databases that already hold data.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Factory returns the repository under test. It is called once per subtest.
type Factory func(t *testing.T) ports.ListRepository

// missingID is never allocated by any sequence in a test run.
const missingID int64 = 1 << 50

var base = time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

func at(offset time.Duration) time.Time {
	return base.Add(offset)
}

// Run executes the full suite against repositories built by newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Helper()

	t.Run("Lists", func(t *testing.T) { testLists(t, newRepo) })
	t.Run("CreateTodo", func(t *testing.T) { testCreateTodo(t, newRepo) })
	t.Run("FindTodo", func(t *testing.T) { testFindTodo(t, newRepo) })
	t.Run("UpdateTodo", func(t *testing.T) { testUpdateTodo(t, newRepo) })
	t.Run("DeleteTodo", func(t *testing.T) { testDeleteTodo(t, newRepo) })
	t.Run("GetTodos", func(t *testing.T) { testGetTodos(t, newRepo) })
	t.Run("Cascade", func(t *testing.T) { testCascade(t, newRepo) })
	t.Run("DeleteListAfterLateCreate", func(t *testing.T) { testDeleteListAfterLateCreate(t, newRepo) })
	t.Run("ConcurrentCreate", func(t *testing.T) { testConcurrentCreate(t, newRepo) })
	t.Run("HealthCheck", func(t *testing.T) {
		repo := newRepo(t)
		assert.NotEmpty(t, repo.Name())
		assert.NoError(t, repo.HealthCheck(context.Background()))
	})
}

func testLists(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	first, err := repo.CreateList(ctx, "groceries", at(0))
	require.NoError(t, err)
	second, err := repo.CreateList(ctx, "chores", at(time.Second))
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID, "list ids must increase")

	got, err := repo.FindList(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "groceries", got.Name)
	assert.True(t, got.CreatedAt.Equal(at(0)), "CreatedAt = %v", got.CreatedAt)
	assert.True(t, got.UpdatedAt.Equal(at(0)), "UpdatedAt = %v", got.UpdatedAt)

	_, err = repo.FindList(ctx, missingID)
	assert.ErrorIs(t, err, domain.ErrListNotFound)

	require.NoError(t, repo.DeleteList(ctx, first.ID))
	_, err = repo.FindList(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrListNotFound)
	assert.ErrorIs(t, repo.DeleteList(ctx, first.ID), domain.ErrListNotFound)

	third, err := repo.CreateList(ctx, "errands", at(2*time.Second))
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID, "deleted list ids must not be reused")

	unicode := "Einkäufe für die Woche ✓"
	l, err := repo.CreateList(ctx, unicode, at(0))
	require.NoError(t, err)
	got, err = repo.FindList(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, unicode, got.Name)
}

func testCreateTodo(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	a := mustList(t, repo, "a")
	b := mustList(t, repo, "b")

	due := at(48 * time.Hour)
	t1 := mustTodo(t, repo, a.ID, todo.Todo{Description: "milk", DueDate: &due})
	t2 := mustTodo(t, repo, a.ID, todo.Todo{Description: "bread"})
	tb := mustTodo(t, repo, b.ID, todo.Todo{Description: "sweep"})

	assert.Equal(t, int64(1), t1.ID, "todo ids start at 1 per list")
	assert.Equal(t, int64(2), t2.ID)
	assert.Equal(t, int64(1), tb.ID, "each list has its own sequence")

	assert.Equal(t, a.ID, t1.ListID)
	assert.Equal(t, "milk", t1.Description)
	assert.Equal(t, todo.StateIncomplete, t1.State)
	require.NotNil(t, t1.DueDate)
	assert.True(t, t1.DueDate.Equal(due))
	assert.Nil(t, t2.DueDate)

	_, err := repo.CreateTodo(ctx, missingID, todo.Todo{Description: "x", State: todo.StateIncomplete})
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func testFindTodo(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	l := mustList(t, repo, "find")
	due := at(time.Hour)
	created := mustTodo(t, repo, l.ID, todo.Todo{Description: "milk", DueDate: &due})

	got, err := repo.FindTodo(ctx, l.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "milk", got.Description)
	assert.Equal(t, todo.StateIncomplete, got.State)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
	assert.True(t, got.CreatedAt.Equal(at(0)))
	assert.True(t, got.UpdatedAt.Equal(at(0)))

	_, err = repo.FindTodo(ctx, l.ID, missingID)
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)

	_, err = repo.FindTodo(ctx, missingID, created.ID)
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func testUpdateTodo(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	l := mustList(t, repo, "update")
	due := at(24 * time.Hour)
	created := mustTodo(t, repo, l.ID, todo.Todo{Description: "milk", DueDate: &due})

	t.Run("state only", func(t *testing.T) {
		got, err := repo.UpdateTodo(ctx, l.ID, created.ID, todo.Patch{
			State:     domain.Some(todo.StateComplete),
			UpdatedAt: at(time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, todo.StateComplete, got.State)
		assert.Equal(t, "milk", got.Description)
		require.NotNil(t, got.DueDate)
		assert.True(t, got.DueDate.Equal(due))
		assert.True(t, got.CreatedAt.Equal(at(0)), "creation date is immutable")
		assert.True(t, got.UpdatedAt.Equal(at(time.Minute)))
	})

	t.Run("description and due date", func(t *testing.T) {
		newDue := at(72 * time.Hour)
		got, err := repo.UpdateTodo(ctx, l.ID, created.ID, todo.Patch{
			Description: domain.Some("oat milk"),
			DueDate:     domain.Some(newDue),
			UpdatedAt:   at(2 * time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, "oat milk", got.Description)
		assert.Equal(t, todo.StateComplete, got.State)
		require.NotNil(t, got.DueDate)
		assert.True(t, got.DueDate.Equal(newDue))
	})

	t.Run("null due date clears it", func(t *testing.T) {
		got, err := repo.UpdateTodo(ctx, l.ID, created.ID, todo.Patch{
			DueDate:   domain.Null[time.Time](),
			UpdatedAt: at(3 * time.Minute),
		})
		require.NoError(t, err)
		assert.Nil(t, got.DueDate)

		stored, err := repo.FindTodo(ctx, l.ID, created.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.DueDate)
		assert.Equal(t, "oat milk", stored.Description)
		assert.True(t, stored.UpdatedAt.Equal(at(3*time.Minute)))
	})

	t.Run("missing entities", func(t *testing.T) {
		patch := todo.Patch{State: domain.Some(todo.StateIncomplete), UpdatedAt: at(time.Hour)}

		_, err := repo.UpdateTodo(ctx, l.ID, missingID, patch)
		assert.ErrorIs(t, err, domain.ErrTodoNotFound)

		_, err = repo.UpdateTodo(ctx, missingID, created.ID, patch)
		assert.ErrorIs(t, err, domain.ErrListNotFound)
	})
}

func testDeleteTodo(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	l := mustList(t, repo, "delete")
	first := mustTodo(t, repo, l.ID, todo.Todo{Description: "one"})
	second := mustTodo(t, repo, l.ID, todo.Todo{Description: "two"})

	require.NoError(t, repo.DeleteTodo(ctx, l.ID, second.ID))

	_, err := repo.FindTodo(ctx, l.ID, second.ID)
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)
	assert.ErrorIs(t, repo.DeleteTodo(ctx, l.ID, second.ID), domain.ErrTodoNotFound)
	assert.ErrorIs(t, repo.DeleteTodo(ctx, missingID, first.ID), domain.ErrListNotFound)

	third := mustTodo(t, repo, l.ID, todo.Todo{Description: "three"})
	assert.Equal(t, int64(3), third.ID, "deleted todo ids must not be reused")

	remaining, err := repo.ListTodos(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{first.ID, third.ID}, ids(remaining))
}

func testGetTodos(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	l := mustList(t, repo, "page")

	// ids 1..4; 2 and 3 share a creation timestamp.
	created := []time.Duration{0, time.Second, time.Second, 2 * time.Second}
	for i, offset := range created {
		_, err := repo.CreateTodo(ctx, l.ID, todo.Todo{
			Description: "todo",
			State:       todo.StateIncomplete,
			CreatedAt:   at(offset),
			UpdatedAt:   at(offset),
		})
		require.NoError(t, err, "creating todo %d", i+1)
	}
	// Touch todo 1 last so update order differs from creation order.
	_, err := repo.UpdateTodo(ctx, l.ID, 1, todo.Patch{
		State:     domain.Some(todo.StateComplete),
		UpdatedAt: at(time.Hour),
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		query todo.Query
		want  []int64
	}{
		{name: "defaults to creation date descending", query: todo.Query{}, want: []int64{4, 2, 3, 1}},
		{
			name:  "creation date ascending",
			query: todo.Query{OrderBy: todo.OrderByCreationDate, Direction: todo.Ascending},
			want:  []int64{1, 2, 3, 4},
		},
		{
			name:  "last update descending",
			query: todo.Query{OrderBy: todo.OrderByLastUpdateDate, Direction: todo.Descending},
			want:  []int64{1, 4, 2, 3},
		},
		{
			name:  "last update ascending",
			query: todo.Query{OrderBy: todo.OrderByLastUpdateDate, Direction: todo.Ascending},
			want:  []int64{2, 3, 4, 1},
		},
		{name: "limit", query: todo.Query{Limit: 2}, want: []int64{4, 2}},
		{name: "index and limit", query: todo.Query{Index: 1, Limit: 2}, want: []int64{2, 3}},
		{name: "index only", query: todo.Query{Index: 3}, want: []int64{1}},
		{name: "index past end", query: todo.Query{Index: 10, Limit: 5}, want: []int64{}},
		{name: "negative limit means all", query: todo.Query{Limit: -1}, want: []int64{4, 2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetTodos(ctx, l.ID, tt.query)
			require.NoError(t, err)
			require.NotNil(t, got, "an empty page is an empty slice")
			assert.Equal(t, tt.want, ids(got))
		})
	}

	_, err = repo.GetTodos(ctx, missingID, todo.Query{})
	assert.ErrorIs(t, err, domain.ErrListNotFound)

	empty := mustList(t, repo, "empty")
	got, err := repo.GetTodos(ctx, empty.ID, todo.Query{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testCascade(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	l := mustList(t, repo, "cascade")
	due := at(time.Hour)
	mustTodo(t, repo, l.ID, todo.Todo{Description: "one", DueDate: &due})
	mustTodo(t, repo, l.ID, todo.Todo{Description: "two"})

	snapshot, err := repo.ListTodos(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	n, err := repo.DeleteTodos(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := repo.ListTodos(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	require.NoError(t, repo.RestoreTodos(ctx, l.ID, snapshot))

	restored, err := repo.ListTodos(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, ids(snapshot), ids(restored))
	for i := range snapshot {
		assert.Equal(t, snapshot[i].Description, restored[i].Description)
		assert.True(t, snapshot[i].CreatedAt.Equal(restored[i].CreatedAt))
		assert.Equal(t, snapshot[i].DueDate == nil, restored[i].DueDate == nil)
	}

	next := mustTodo(t, repo, l.ID, todo.Todo{Description: "three"})
	assert.Equal(t, int64(3), next.ID, "restore must not rewind the sequence")

	_, err = repo.DeleteTodos(ctx, missingID)
	assert.ErrorIs(t, err, domain.ErrListNotFound)
	_, err = repo.ListTodos(ctx, missingID)
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

// A todo created between DeleteTodos and DeleteList must keep the list alive.
func testDeleteListAfterLateCreate(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	l := mustList(t, repo, "late create")
	mustTodo(t, repo, l.ID, todo.Todo{Description: "early"})

	_, err := repo.DeleteTodos(ctx, l.ID)
	require.NoError(t, err)

	late := mustTodo(t, repo, l.ID, todo.Todo{Description: "late"})

	err = repo.DeleteList(ctx, l.ID)
	require.ErrorIs(t, err, ports.ErrListNotEmpty)

	_, err = repo.FindList(ctx, l.ID)
	require.NoError(t, err)
	got, err := repo.FindTodo(ctx, l.ID, late.ID)
	require.NoError(t, err)
	assert.Equal(t, "late", got.Description)

	n, err := repo.DeleteTodos(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, repo.DeleteList(ctx, l.ID))

	_, err = repo.FindList(ctx, l.ID)
	assert.ErrorIs(t, err, domain.ErrListNotFound)
	assert.ErrorIs(t, repo.DeleteList(ctx, l.ID), domain.ErrListNotFound)
}

func testConcurrentCreate(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)
	l := mustList(t, repo, "concurrent")

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[int64]bool)
		errs []error
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.CreateTodo(ctx, l.ID, todo.Todo{
				Description: "parallel",
				State:       todo.StateIncomplete,
				CreatedAt:   at(0),
				UpdatedAt:   at(0),
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			seen[created.ID] = true
		}()
	}
	wg.Wait()

	require.NoError(t, errors.Join(errs...))
	assert.Len(t, seen, workers, "every concurrent create must get a distinct id")
	for id := int64(1); id <= workers; id++ {
		assert.True(t, seen[id], "id %d missing", id)
	}
}

func mustList(t *testing.T, repo ports.ListRepository, name string) *list.List {
	t.Helper()
	l, err := repo.CreateList(context.Background(), name, at(0))
	require.NoError(t, err)
	return l
}

func mustTodo(t *testing.T, repo ports.ListRepository, listID int64, in todo.Todo) *todo.Todo {
	t.Helper()
	if in.State == "" {
		in.State = todo.StateIncomplete
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = at(0)
		in.UpdatedAt = at(0)
	}
	created, err := repo.CreateTodo(context.Background(), listID, in)
	require.NoError(t, err)
	return created
}

func ids(todos []todo.Todo) []int64 {
	out := make([]int64, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}
