// Package firestorestore implements ports.ListRepository on Cloud Firestore.
//
// Lists are documents of the lists collection keyed by their decimal id; each
// list document keeps its own todo sequence (next_todo_id) and owns a todos
// subcollection keyed by todo id. List ids come from a counter document.
package firestorestore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ListRepository = (*Store)(nil)

const (
	listCounterID = "lists"
	todosSubcoll  = "todos"
	fieldNextTodo = "next_todo_id"
)

type listDoc struct {
	Name       string    `firestore:"name"`
	CreatedAt  time.Time `firestore:"creation_date"`
	UpdatedAt  time.Time `firestore:"last_update_date"`
	NextTodoID int64     `firestore:"next_todo_id"`
}

type todoDoc struct {
	ID          int64      `firestore:"id"`
	Description string     `firestore:"description"`
	State       string     `firestore:"state"`
	DueDate     *time.Time `firestore:"due_date,omitempty"`
	CreatedAt   time.Time  `firestore:"creation_date"`
	UpdatedAt   time.Time  `firestore:"last_update_date"`
}

type counterDoc struct {
	Seq int64 `firestore:"seq"`
}

// Store is a Firestore-backed list repository.
type Store struct {
	client   *firestore.Client
	lists    *firestore.CollectionRef
	counters *firestore.CollectionRef
}

// Open creates a client for cfg.ProjectID. Application default credentials
// are used unless cfg.CredentialsFile is set.
func Open(ctx context.Context, cfg config.FirestoreConfig) (*Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	s := New(client, cfg)
	if err := s.HealthCheck(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("reaching firestore: %w", err)
	}
	return s, nil
}

// New wraps an existing client.
func New(client *firestore.Client, cfg config.FirestoreConfig) *Store {
	return &Store{
		client:   client,
		lists:    client.Collection(cfg.ListsCollection),
		counters: client.Collection(cfg.CountersCollection),
	}
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return config.DriverFirestore }

// HealthCheck reads the list counter. A missing counter is healthy.
func (s *Store) HealthCheck(ctx context.Context) error {
	_, err := s.counters.Doc(listCounterID).Get(ctx)
	if err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

func (s *Store) CreateList(ctx context.Context, name string, now time.Time) (*list.List, error) {
	counterRef := s.counters.Doc(listCounterID)

	var id int64
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var c counterDoc
		snap, err := tx.Get(counterRef)
		switch {
		case isNotFound(err):
		case err != nil:
			return err
		default:
			if err := snap.DataTo(&c); err != nil {
				return err
			}
		}

		id = c.Seq + 1
		if err := tx.Set(counterRef, counterDoc{Seq: id}); err != nil {
			return err
		}
		return tx.Create(s.listRef(id), listDoc{Name: name, CreatedAt: now, UpdatedAt: now})
	})
	if err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}

	return &list.List{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *Store) FindList(ctx context.Context, listID int64) (*list.List, error) {
	snap, err := s.listRef(listID).Get(ctx)
	if isNotFound(err) {
		return nil, domain.ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading list %d: %w", listID, err)
	}

	var d listDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decoding list %d: %w", listID, err)
	}
	return &list.List{
		ID:        listID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}, nil
}

// DeleteList removes the list document. Firestore does not delete
// subcollections with their parent, so the transaction refuses a list whose
// todos subcollection is not empty. Reading the list document makes it
// conflict with a concurrent CreateTodo.
func (s *Store) DeleteList(ctx context.Context, listID int64) error {
	listRef := s.listRef(listID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(listRef); err != nil {
			if isNotFound(err) {
				return domain.ErrListNotFound
			}
			return err
		}

		left, err := tx.Documents(listRef.Collection(todosSubcoll).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(left) > 0 {
			return ports.ErrListNotEmpty
		}
		return tx.Delete(listRef)
	})
	if errors.Is(err, domain.ErrListNotFound) || errors.Is(err, ports.ErrListNotEmpty) {
		return err
	}
	if err != nil {
		return fmt.Errorf("deleting list %d: %w", listID, err)
	}
	return nil
}

func (s *Store) CreateTodo(ctx context.Context, listID int64, t todo.Todo) (*todo.Todo, error) {
	listRef := s.listRef(listID)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(listRef)
		if isNotFound(err) {
			return domain.ErrListNotFound
		}
		if err != nil {
			return err
		}

		var d listDoc
		if err := snap.DataTo(&d); err != nil {
			return err
		}

		t.ID = d.NextTodoID + 1
		if err := tx.Update(listRef, []firestore.Update{{Path: fieldNextTodo, Value: t.ID}}); err != nil {
			return err
		}
		return tx.Create(s.todoRef(listID, t.ID), fromTodo(t))
	})
	if errors.Is(err, domain.ErrListNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("creating todo on list %d: %w", listID, err)
	}

	t.ListID = listID
	return &t, nil
}

func (s *Store) FindTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error) {
	snap, err := s.todoRef(listID, todoID).Get(ctx)
	if isNotFound(err) {
		return nil, s.missing(ctx, listID)
	}
	if err != nil {
		return nil, fmt.Errorf("reading todo %d of list %d: %w", todoID, listID, err)
	}
	return decodeTodo(listID, snap)
}

func (s *Store) UpdateTodo(ctx context.Context, listID, todoID int64, patch todo.Patch) (*todo.Todo, error) {
	ref := s.todoRef(listID, todoID)

	var updated todo.Todo
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if isNotFound(err) {
			return domain.ErrTodoNotFound
		}
		if err != nil {
			return err
		}

		current, err := decodeTodo(listID, snap)
		if err != nil {
			return err
		}
		updated = patch.Apply(*current)
		return tx.Set(ref, fromTodo(updated))
	})
	if errors.Is(err, domain.ErrTodoNotFound) {
		return nil, s.missing(ctx, listID)
	}
	if err != nil {
		return nil, fmt.Errorf("updating todo %d of list %d: %w", todoID, listID, err)
	}
	return &updated, nil
}

func (s *Store) DeleteTodo(ctx context.Context, listID, todoID int64) error {
	_, err := s.todoRef(listID, todoID).Delete(ctx, firestore.Exists)
	if isNotFound(err) {
		return s.missing(ctx, listID)
	}
	if err != nil {
		return fmt.Errorf("deleting todo %d of list %d: %w", todoID, listID, err)
	}
	return nil
}

// GetTodos loads the list's todos and pages them with todo.Paginate. Ordered
// Firestore queries skip documents lacking the order field, and ids are not
// indexed as a tie-break.
func (s *Store) GetTodos(ctx context.Context, listID int64, q todo.Query) ([]todo.Todo, error) {
	all, err := s.ListTodos(ctx, listID)
	if err != nil {
		return nil, err
	}
	return todo.Paginate(all, q), nil
}

func (s *Store) ListTodos(ctx context.Context, listID int64) ([]todo.Todo, error) {
	if err := s.requireList(ctx, listID); err != nil {
		return nil, err
	}

	todos := []todo.Todo{}
	iter := s.listRef(listID).Collection(todosSubcoll).Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading todos of list %d: %w", listID, err)
		}
		t, err := decodeTodo(listID, snap)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *t)
	}

	slices.SortFunc(todos, func(a, b todo.Todo) int { return cmp.Compare(a.ID, b.ID) })
	return todos, nil
}

func (s *Store) DeleteTodos(ctx context.Context, listID int64) (int, error) {
	if err := s.requireList(ctx, listID); err != nil {
		return 0, err
	}

	refs, err := s.listRef(listID).Collection(todosSubcoll).DocumentRefs(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("listing todos of list %d: %w", listID, err)
	}
	if len(refs) == 0 {
		return 0, nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := bw.Delete(ref)
		if err != nil {
			bw.End()
			return 0, fmt.Errorf("queueing delete of %s: %w", ref.Path, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	if err := jobErrors(jobs); err != nil {
		return 0, fmt.Errorf("deleting todos of list %d: %w", listID, err)
	}
	return len(refs), nil
}

func (s *Store) RestoreTodos(ctx context.Context, listID int64, todos []todo.Todo) error {
	if err := s.requireList(ctx, listID); err != nil {
		return err
	}
	if len(todos) == 0 {
		return nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(todos))
	for _, t := range todos {
		job, err := bw.Set(s.todoRef(listID, t.ID), fromTodo(t))
		if err != nil {
			bw.End()
			return fmt.Errorf("queueing restore of todo %d: %w", t.ID, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	if err := jobErrors(jobs); err != nil {
		return fmt.Errorf("restoring todos of list %d: %w", listID, err)
	}
	return nil
}

func (s *Store) requireList(ctx context.Context, listID int64) error {
	_, err := s.listRef(listID).Get(ctx)
	if isNotFound(err) {
		return domain.ErrListNotFound
	}
	if err != nil {
		return fmt.Errorf("checking list %d: %w", listID, err)
	}
	return nil
}

// missing resolves a failed todo lookup into the right not-found error.
func (s *Store) missing(ctx context.Context, listID int64) error {
	if err := s.requireList(ctx, listID); err != nil {
		return err
	}
	return domain.ErrTodoNotFound
}

func (s *Store) listRef(listID int64) *firestore.DocumentRef {
	return s.lists.Doc(strconv.FormatInt(listID, 10))
}

func (s *Store) todoRef(listID, todoID int64) *firestore.DocumentRef {
	return s.listRef(listID).Collection(todosSubcoll).Doc(strconv.FormatInt(todoID, 10))
}

func isNotFound(err error) bool {
	return err != nil && status.Code(err) == codes.NotFound
}

func jobErrors(jobs []*firestore.BulkWriterJob) error {
	var errs []error
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func decodeTodo(listID int64, snap *firestore.DocumentSnapshot) (*todo.Todo, error) {
	var d todoDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", snap.Ref.Path, err)
	}

	t := &todo.Todo{
		ID:          d.ID,
		ListID:      listID,
		Description: d.Description,
		State:       todo.State(d.State),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.DueDate != nil {
		due := d.DueDate.UTC()
		t.DueDate = &due
	}
	return t, nil
}

func fromTodo(t todo.Todo) todoDoc {
	return todoDoc{
		ID:          t.ID,
		Description: t.Description,
		State:       string(t.State),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
