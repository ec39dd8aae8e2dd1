// Package postgres implements ports.ListRepository on PostgreSQL through a
// pgx connection pool. Lists carry their own todo sequence (next_todo_id);
// list ids come from the counters table.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ListRepository = (*Store)(nil)

//go:embed schema.sql
var schema string

// foreignKeyViolation is the SQLSTATE raised when a list row is still
// referenced by todos.
const foreignKeyViolation = "23503"

const todoColumns = `id, description, state, due_date, creation_date, last_update_date`

// orderColumns whitelists the ORDER BY column per todo.OrderBy.
var orderColumns = map[todo.OrderBy]string{
	todo.OrderByCreationDate:   "creation_date",
	todo.OrderByLastUpdateDate: "last_update_date",
}

// Store is a PostgreSQL-backed list repository.
type Store struct {
	pool *pgxpool.Pool
}

// Open creates the pool, pings the server and, when cfg.AutoCreate is set,
// creates the tables.
func Open(ctx context.Context, cfg config.PostgresConfig) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	s := New(pool)
	if cfg.AutoCreate {
		if err := s.CreateSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return s, nil
}

// New wraps an existing pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// CreateSchema creates the tables and indexes if they do not exist.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return config.DriverPostgres }

// HealthCheck pings the server.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) CreateList(ctx context.Context, name string, now time.Time) (*list.List, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		WITH seq AS (
			INSERT INTO counters (name, value) VALUES ('lists', 1)
			ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
			RETURNING value
		)
		INSERT INTO lists (id, name, next_todo_id, creation_date, last_update_date)
		SELECT value, $1, 1, $2, $2 FROM seq
		RETURNING id`, name, now).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("inserting list: %w", err)
	}

	return &list.List{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *Store) FindList(ctx context.Context, listID int64) (*list.List, error) {
	l := list.List{ID: listID}
	err := s.pool.QueryRow(ctx, `
		SELECT name, creation_date, last_update_date
		FROM lists WHERE id = $1`, listID).Scan(&l.Name, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("selecting list %d: %w", listID, err)
	}

	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return &l, nil
}

func (s *Store) DeleteList(ctx context.Context, listID int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM lists WHERE id = $1`, listID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return ports.ErrListNotEmpty
		}
		return fmt.Errorf("deleting list %d: %w", listID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListNotFound
	}
	return nil
}

// CreateTodo takes the next id from the list row and inserts the todo in the
// same transaction. The row lock on the list serializes concurrent creates.
func (s *Store) CreateTodo(ctx context.Context, listID int64, t todo.Todo) (out *todo.Todo, err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var id int64
	err = tx.QueryRow(ctx, `
		UPDATE lists SET next_todo_id = next_todo_id + 1
		WHERE id = $1
		RETURNING next_todo_id - 1`, listID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("allocating todo id on list %d: %w", listID, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO todos (list_id, id, description, state, due_date, creation_date, last_update_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		listID, id, t.Description, string(t.State), t.DueDate, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting todo %d on list %d: %w", id, listID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing todo %d on list %d: %w", id, listID, err)
	}

	t.ID = id
	t.ListID = listID
	return &t, nil
}

func (s *Store) FindTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+todoColumns+`
		FROM todos WHERE list_id = $1 AND id = $2`, listID, todoID)

	t, err := scanTodo(row, listID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, s.missing(ctx, listID)
	}
	if err != nil {
		return nil, fmt.Errorf("selecting todo %d of list %d: %w", todoID, listID, err)
	}
	return t, nil
}

func (s *Store) UpdateTodo(ctx context.Context, listID, todoID int64, patch todo.Patch) (*todo.Todo, error) {
	var desc, state *string
	if v, ok := patch.Description.Get(); ok {
		desc = &v
	}
	if v, ok := patch.State.Get(); ok {
		st := string(v)
		state = &st
	}
	var due *time.Time
	if v, ok := patch.DueDate.Get(); ok {
		due = &v
	}

	row := s.pool.QueryRow(ctx, `
		UPDATE todos SET
			description      = COALESCE($3, description),
			state            = COALESCE($4, state),
			due_date         = CASE WHEN $5 THEN $6 ELSE due_date END,
			last_update_date = GREATEST(last_update_date, $7)
		WHERE list_id = $1 AND id = $2
		RETURNING `+todoColumns,
		listID, todoID, desc, state, patch.DueDate.IsSet(), due, patch.UpdatedAt)

	t, err := scanTodo(row, listID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, s.missing(ctx, listID)
	}
	if err != nil {
		return nil, fmt.Errorf("updating todo %d of list %d: %w", todoID, listID, err)
	}
	return t, nil
}

func (s *Store) DeleteTodo(ctx context.Context, listID, todoID int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM todos WHERE list_id = $1 AND id = $2`, listID, todoID)
	if err != nil {
		return fmt.Errorf("deleting todo %d of list %d: %w", todoID, listID, err)
	}
	if tag.RowsAffected() == 0 {
		return s.missing(ctx, listID)
	}
	return nil
}

// GetTodos sorts and pages in SQL with the same ordering as todo.Paginate.
func (s *Store) GetTodos(ctx context.Context, listID int64, q todo.Query) ([]todo.Todo, error) {
	q = q.Normalize()

	column, ok := orderColumns[q.OrderBy]
	if !ok {
		return nil, fmt.Errorf("unsupported order field %q", q.OrderBy)
	}
	dir := "DESC"
	if q.Direction == todo.Ascending {
		dir = "ASC"
	}
	var limit *int64
	if q.Limit > 0 {
		l := int64(q.Limit)
		limit = &l
	}

	todos, err := s.queryTodos(ctx, listID, `
		SELECT `+todoColumns+`
		FROM todos WHERE list_id = $1
		ORDER BY `+column+` `+dir+`, id ASC
		OFFSET $2 LIMIT $3`, listID, int64(q.Index), limit)
	if err != nil {
		return nil, err
	}

	if len(todos) == 0 {
		if _, err := s.FindList(ctx, listID); err != nil {
			return nil, err
		}
	}
	return todos, nil
}

func (s *Store) ListTodos(ctx context.Context, listID int64) ([]todo.Todo, error) {
	todos, err := s.queryTodos(ctx, listID, `
		SELECT `+todoColumns+`
		FROM todos WHERE list_id = $1
		ORDER BY id`, listID)
	if err != nil {
		return nil, err
	}

	if len(todos) == 0 {
		if _, err := s.FindList(ctx, listID); err != nil {
			return nil, err
		}
	}
	return todos, nil
}

func (s *Store) DeleteTodos(ctx context.Context, listID int64) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM todos WHERE list_id = $1`, listID)
	if err != nil {
		return 0, fmt.Errorf("deleting todos of list %d: %w", listID, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := s.FindList(ctx, listID); err != nil {
			return 0, err
		}
	}
	return int(tag.RowsAffected()), nil
}

// RestoreTodos bulk-loads the todos with COPY.
func (s *Store) RestoreTodos(ctx context.Context, listID int64, todos []todo.Todo) error {
	if _, err := s.FindList(ctx, listID); err != nil {
		return err
	}
	if len(todos) == 0 {
		return nil
	}

	_, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"todos"},
		[]string{"list_id", "id", "description", "state", "due_date", "creation_date", "last_update_date"},
		pgx.CopyFromSlice(len(todos), func(i int) ([]any, error) {
			t := todos[i]
			return []any{listID, t.ID, t.Description, string(t.State), t.DueDate, t.CreatedAt, t.UpdatedAt}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("restoring todos of list %d: %w", listID, err)
	}
	return nil
}

func (s *Store) queryTodos(ctx context.Context, listID int64, sql string, args ...any) ([]todo.Todo, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting todos of list %d: %w", listID, err)
	}
	defer rows.Close()

	todos := []todo.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows, listID)
		if err != nil {
			return nil, fmt.Errorf("scanning todo of list %d: %w", listID, err)
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todos of list %d: %w", listID, err)
	}
	return todos, nil
}

// missing resolves a failed todo lookup into the right not-found error.
func (s *Store) missing(ctx context.Context, listID int64) error {
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM lists WHERE id = $1)`, listID).Scan(&exists); err != nil {
		return fmt.Errorf("checking list %d: %w", listID, err)
	}
	if !exists {
		return domain.ErrListNotFound
	}
	return domain.ErrTodoNotFound
}

func scanTodo(row pgx.Row, listID int64) (*todo.Todo, error) {
	t := todo.Todo{ListID: listID}
	var state string
	if err := row.Scan(&t.ID, &t.Description, &state, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}

	t.State = todo.State(state)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	if t.DueDate != nil {
		due := t.DueDate.UTC()
		t.DueDate = &due
	}
	return &t, nil
}
