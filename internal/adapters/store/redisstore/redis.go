// Package redisstore implements ports.ListRepository on Redis.
//
// Key layout, all under a configurable prefix:
//
//	{prefix}:counter:lists          INCR sequence of list ids
//	{prefix}:list:{id}              hash: name, creation_date, last_update_date, next_todo_id
//	{prefix}:list:{id}:todos        sorted set of todo ids (score = id)
//	{prefix}:list:{id}:todo:{tid}   hash: description, state, due_date, creation_date, last_update_date
//
// Timestamps are stored as epoch milliseconds.
package redisstore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ListRepository = (*Store)(nil)

const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldState       = "state"
	fieldDueDate     = "due_date"
	fieldCreated     = "creation_date"
	fieldUpdated     = "last_update_date"
	fieldNextTodo    = "next_todo_id"

	// maxWatchAttempts bounds optimistic-lock retries of UpdateTodo when a
	// concurrent writer touches the same todo.
	maxWatchAttempts = 3
)

// deleteListScript removes an empty list. It returns -1 when the list hash is
// missing and 0 when the todo id set still holds members.
// KEYS[1] list hash, KEYS[2] todo id set.
var deleteListScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
if redis.call('ZCARD', KEYS[2]) > 0 then
	return 0
end
redis.call('DEL', KEYS[1], KEYS[2])
return 1
`)

// createTodoScript allocates the next todo id and writes the todo atomically.
// KEYS[1] list hash, KEYS[2] todo id set; ARGV[1] todo key prefix, the rest
// are field/value pairs.
var createTodoScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
local id = redis.call('HINCRBY', KEYS[1], 'next_todo_id', 1)
redis.call('HSET', ARGV[1] .. id, unpack(ARGV, 2))
redis.call('ZADD', KEYS[2], id, id)
return id
`)

// Store is a Redis-backed list repository.
type Store struct {
	rdb    *redis.Client
	prefix string
}

// Open connects to cfg.Addr and verifies the connection with PING.
func Open(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return New(rdb, cfg.KeyPrefix), nil
}

// New wraps an existing client.
func New(rdb *redis.Client, prefix string) *Store {
	return &Store{rdb: rdb, prefix: prefix}
}

// Close closes the client.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return config.DriverRedis }

// HealthCheck sends PING.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) CreateList(ctx context.Context, name string, now time.Time) (*list.List, error) {
	id, err := s.rdb.Incr(ctx, s.listCounterKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("allocating list id: %w", err)
	}

	err = s.rdb.HSet(ctx, s.listKey(id),
		fieldName, name,
		fieldCreated, millis(now),
		fieldUpdated, millis(now),
		fieldNextTodo, 0,
	).Err()
	if err != nil {
		return nil, fmt.Errorf("writing list %d: %w", id, err)
	}

	return &list.List{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *Store) FindList(ctx context.Context, listID int64) (*list.List, error) {
	fields, err := s.rdb.HGetAll(ctx, s.listKey(listID)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading list %d: %w", listID, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrListNotFound
	}
	return decodeList(listID, fields)
}

func (s *Store) DeleteList(ctx context.Context, listID int64) error {
	res, err := deleteListScript.Run(ctx, s.rdb,
		[]string{s.listKey(listID), s.todoSetKey(listID)},
	).Int64()
	if err != nil {
		return fmt.Errorf("deleting list %d: %w", listID, err)
	}
	switch res {
	case -1:
		return domain.ErrListNotFound
	case 0:
		return ports.ErrListNotEmpty
	}
	return nil
}

func (s *Store) CreateTodo(ctx context.Context, listID int64, t todo.Todo) (*todo.Todo, error) {
	args := append([]any{s.todoKeyPrefix(listID)}, encodeTodo(t)...)

	id, err := createTodoScript.Run(ctx, s.rdb,
		[]string{s.listKey(listID), s.todoSetKey(listID)},
		args...,
	).Int64()
	if err != nil {
		return nil, fmt.Errorf("creating todo on list %d: %w", listID, err)
	}
	if id < 0 {
		return nil, domain.ErrListNotFound
	}

	t.ID = id
	t.ListID = listID
	return &t, nil
}

func (s *Store) FindTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error) {
	fields, err := s.rdb.HGetAll(ctx, s.todoKey(listID, todoID)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading todo %d of list %d: %w", todoID, listID, err)
	}
	if len(fields) == 0 {
		return nil, s.missing(ctx, listID)
	}
	return decodeTodo(listID, todoID, fields)
}

// UpdateTodo reads, patches and writes the todo under WATCH so a concurrent
// delete or update aborts the write instead of resurrecting the todo.
func (s *Store) UpdateTodo(ctx context.Context, listID, todoID int64, patch todo.Patch) (*todo.Todo, error) {
	key := s.todoKey(listID, todoID)

	var updated *todo.Todo
	txf := func(tx *redis.Tx) error {
		fields, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			return s.missing(ctx, listID)
		}
		current, err := decodeTodo(listID, todoID, fields)
		if err != nil {
			return err
		}

		next := patch.Apply(*current)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, encodeTodo(next)...)
			if next.DueDate == nil {
				pipe.HDel(ctx, key, fieldDueDate)
			}
			return nil
		})
		if err == nil {
			updated = &next
		}
		return err
	}

	var err error
	for range maxWatchAttempts {
		err = s.rdb.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) || errors.Is(err, domain.ErrTodoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("updating todo %d of list %d: %w", todoID, listID, err)
	}
	return updated, nil
}

func (s *Store) DeleteTodo(ctx context.Context, listID, todoID int64) error {
	var del *redis.IntCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.todoKey(listID, todoID))
		pipe.ZRem(ctx, s.todoSetKey(listID), todoID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting todo %d of list %d: %w", todoID, listID, err)
	}
	if del.Val() == 0 {
		return s.missing(ctx, listID)
	}
	return nil
}

// GetTodos loads the list's todos and pages them with todo.Paginate; Redis
// cannot sort hashes by one field with an id tie-break.
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

	ids, err := s.todoIDs(ctx, listID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []todo.Todo{}, nil
	}

	cmds, err := s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			pipe.HGetAll(ctx, s.todoKey(listID, id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading todos of list %d: %w", listID, err)
	}

	todos := make([]todo.Todo, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.(*redis.MapStringStringCmd).Val()
		if len(fields) == 0 {
			// Deleted between ZRANGE and HGETALL.
			continue
		}
		t, err := decodeTodo(listID, ids[i], fields)
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

	ids, err := s.todoIDs(ctx, listID)
	if err != nil {
		return 0, err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, s.todoKey(listID, id))
	}
	keys = append(keys, s.todoSetKey(listID))

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("deleting todos of list %d: %w", listID, err)
	}
	return len(ids), nil
}

func (s *Store) RestoreTodos(ctx context.Context, listID int64, todos []todo.Todo) error {
	if err := s.requireList(ctx, listID); err != nil {
		return err
	}
	if len(todos) == 0 {
		return nil
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		members := make([]redis.Z, 0, len(todos))
		for _, t := range todos {
			pipe.HSet(ctx, s.todoKey(listID, t.ID), encodeTodo(t)...)
			members = append(members, redis.Z{Score: float64(t.ID), Member: t.ID})
		}
		pipe.ZAdd(ctx, s.todoSetKey(listID), members...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("restoring todos of list %d: %w", listID, err)
	}
	return nil
}

func (s *Store) todoIDs(ctx context.Context, listID int64) ([]int64, error) {
	members, err := s.rdb.ZRange(ctx, s.todoSetKey(listID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading todo ids of list %d: %w", listID, err)
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt todo id %q on list %d: %w", m, listID, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Store) requireList(ctx context.Context, listID int64) error {
	n, err := s.rdb.Exists(ctx, s.listKey(listID)).Result()
	if err != nil {
		return fmt.Errorf("checking list %d: %w", listID, err)
	}
	if n == 0 {
		return domain.ErrListNotFound
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

func (s *Store) listCounterKey() string { return s.prefix + ":counter:lists" }

func (s *Store) listKey(listID int64) string {
	return s.prefix + ":list:" + strconv.FormatInt(listID, 10)
}

func (s *Store) todoSetKey(listID int64) string { return s.listKey(listID) + ":todos" }

func (s *Store) todoKeyPrefix(listID int64) string { return s.listKey(listID) + ":todo:" }

func (s *Store) todoKey(listID, todoID int64) string {
	return s.todoKeyPrefix(listID) + strconv.FormatInt(todoID, 10)
}

func encodeTodo(t todo.Todo) []any {
	args := []any{
		fieldDescription, t.Description,
		fieldState, string(t.State),
		fieldCreated, millis(t.CreatedAt),
		fieldUpdated, millis(t.UpdatedAt),
	}
	if t.DueDate != nil {
		args = append(args, fieldDueDate, millis(*t.DueDate))
	}
	return args
}

func decodeList(listID int64, f map[string]string) (*list.List, error) {
	created, err := parseMillis(f[fieldCreated])
	if err != nil {
		return nil, fmt.Errorf("list %d %s: %w", listID, fieldCreated, err)
	}
	updated, err := parseMillis(f[fieldUpdated])
	if err != nil {
		return nil, fmt.Errorf("list %d %s: %w", listID, fieldUpdated, err)
	}
	return &list.List{ID: listID, Name: f[fieldName], CreatedAt: created, UpdatedAt: updated}, nil
}

func decodeTodo(listID, todoID int64, f map[string]string) (*todo.Todo, error) {
	created, err := parseMillis(f[fieldCreated])
	if err != nil {
		return nil, fmt.Errorf("todo %d/%d %s: %w", listID, todoID, fieldCreated, err)
	}
	updated, err := parseMillis(f[fieldUpdated])
	if err != nil {
		return nil, fmt.Errorf("todo %d/%d %s: %w", listID, todoID, fieldUpdated, err)
	}

	t := &todo.Todo{
		ID:          todoID,
		ListID:      listID,
		Description: f[fieldDescription],
		State:       todo.State(f[fieldState]),
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
	if raw, ok := f[fieldDueDate]; ok {
		due, err := parseMillis(raw)
		if err != nil {
			return nil, fmt.Errorf("todo %d/%d %s: %w", listID, todoID, fieldDueDate, err)
		}
		t.DueDate = &due
	}
	return t, nil
}

func millis(t time.Time) int64 { return t.UnixMilli() }

func parseMillis(raw string) (time.Time, error) {
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return todo.FromEpochMillis(ms), nil
}
