package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

func TestStore(t *testing.T) {
	t.Parallel()

	storetest.Run(t, func(*testing.T) ports.ListRepository { return memory.New() })
}

func TestStore_ListSequenceStartsAtOne(t *testing.T) {
	t.Parallel()

	s := memory.New()
	l, err := s.CreateList(context.Background(), "first", time.Now())
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	if l.ID != 1 {
		t.Errorf("ID = %d, want 1", l.ID)
	}
}

func TestStore_ReturnedTodosAreDetached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.New()
	l, _ := s.CreateList(ctx, "detached", time.Now())

	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := s.CreateTodo(ctx, l.ID, todo.Todo{Description: "milk", State: todo.StateIncomplete, DueDate: &due})
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}

	due = due.Add(time.Hour)
	*created.DueDate = created.DueDate.Add(24 * time.Hour)

	got, err := s.FindTodo(ctx, l.ID, created.ID)
	if err != nil {
		t.Fatalf("FindTodo() error = %v", err)
	}
	want := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.DueDate.Equal(want) {
		t.Errorf("stored DueDate = %v, want %v", got.DueDate, want)
	}
}
