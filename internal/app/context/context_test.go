package appctx_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "github.com/jsamuelsen11/todo-list-service/internal/app/context"
)

func TestRequestContext_FromContext(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	ctx := appctx.WithRequestContext(context.Background(), rc)

	assert.Same(t, rc, appctx.FromContext(ctx))

	fresh := appctx.FromContext(context.Background())
	require.NotNil(t, fresh)
	assert.NotSame(t, fresh, appctx.FromContext(context.Background()))
}

func TestGetOrFetch(t *testing.T) {
	t.Parallel()

	errLookup := errors.New("list lookup failed")

	t.Run("value fetched once", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		rc := appctx.New(ctx)
		calls := 0
		fetch := func(context.Context) (string, error) { calls++; return "groceries", nil }

		for range 3 {
			got, err := appctx.GetOrFetch(ctx, rc, "list:1", fetch)
			require.NoError(t, err)
			assert.Equal(t, "groceries", got)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("error fetched once", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		rc := appctx.New(ctx)
		calls := 0
		fetch := func(context.Context) (string, error) { calls++; return "", errLookup }

		_, _ = appctx.GetOrFetch(ctx, rc, "list:1", fetch)
		_, err := appctx.GetOrFetch(ctx, rc, "list:1", fetch)

		assert.ErrorIs(t, err, errLookup)
		assert.Equal(t, 1, calls)
	})

	t.Run("key reused with another type", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		rc := appctx.New(ctx)

		_, _ = appctx.GetOrFetch(ctx, rc, "k", func(context.Context) (int, error) { return 1, nil })
		_, err := appctx.GetOrFetch(ctx, rc, "k", func(context.Context) (string, error) { return "x", nil })

		assert.ErrorIs(t, err, appctx.ErrTypeMismatch)
	})

	t.Run("forget forces a refetch", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		rc := appctx.New(ctx)
		calls := 0
		fetch := func(context.Context) (int, error) { calls++; return calls, nil }

		_, _ = appctx.GetOrFetch(ctx, rc, "k", fetch)
		rc.Forget("k")
		got, err := appctx.GetOrFetch(ctx, rc, "k", fetch)

		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})
}

// journal records the calls made on scripted actions across one commit.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(s string) {
	j.mu.Lock()
	j.entries = append(j.entries, s)
	j.mu.Unlock()
}

type step struct {
	name        string
	failExecute error
	failUndo    error
	log         *journal
	undoCtxErr  error
	undone      bool
}

func (s *step) Execute(context.Context) error {
	if s.failExecute != nil {
		s.log.add("fail " + s.name)
		return s.failExecute
	}
	s.log.add("do " + s.name)
	return nil
}

func (s *step) Rollback(ctx context.Context) error {
	s.undone = true
	s.undoCtxErr = ctx.Err()
	s.log.add("undo " + s.name)
	return s.failUndo
}

func (s *step) Description() string { return s.name }

func TestCommit(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("connection reset")

	tests := []struct {
		name    string
		steps   func(j *journal) []*step
		wantErr error
		want    []string
	}{
		{
			name:  "nothing staged",
			steps: func(*journal) []*step { return nil },
		},
		{
			name: "all succeed in order",
			steps: func(j *journal) []*step {
				return []*step{{name: "a", log: j}, {name: "b", log: j}, {name: "c", log: j}}
			},
			want: []string{"do a", "do b", "do c"},
		},
		{
			name: "failure rolls back newest first",
			steps: func(j *journal) []*step {
				return []*step{
					{name: "delete todos", log: j},
					{name: "archive", log: j},
					{name: "delete list", log: j, failExecute: errBoom},
				}
			},
			wantErr: errBoom,
			want: []string{
				"do delete todos", "do archive", "fail delete list",
				"undo archive", "undo delete todos",
			},
		},
		{
			name: "failed rollback does not stop the others",
			steps: func(j *journal) []*step {
				return []*step{
					{name: "a", log: j},
					{name: "b", log: j, failUndo: errors.New("restore failed")},
					{name: "c", log: j, failExecute: errBoom},
				}
			},
			wantErr: errBoom,
			want:    []string{"do a", "do b", "fail c", "undo b", "undo a"},
		},
		{
			name: "first step fails",
			steps: func(j *journal) []*step {
				return []*step{{name: "a", log: j, failExecute: errBoom}, {name: "b", log: j}}
			},
			wantErr: errBoom,
			want:    []string{"fail a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			j := &journal{}
			rc := appctx.New(context.Background())
			for _, s := range tt.steps(j) {
				require.NoError(t, rc.AddAction(s))
			}

			err := rc.Commit(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, j.entries)
			assert.Zero(t, rc.Pending())
		})
	}
}

func TestCommit_FailingStepIsNotRolledBack(t *testing.T) {
	t.Parallel()

	failing := &step{name: "delete list 4", log: &journal{}, failExecute: errors.New("connection reset")}
	rc := appctx.New(context.Background())
	require.NoError(t, rc.AddAction(failing))

	err := rc.Commit(context.Background())

	assert.EqualError(t, err, "executing delete list 4: connection reset")
	assert.False(t, failing.undone)
}

func TestCommit_RollbackOutlivesRequest(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	j := &journal{}
	done := &step{name: "a", log: j}
	rc := appctx.New(ctx)
	require.NoError(t, rc.AddAction(done))
	require.NoError(t, rc.AddAction(&step{name: "b", log: j, failExecute: context.Canceled}))

	cancel()
	_ = rc.Commit(ctx)

	require.True(t, done.undone)
	assert.NoError(t, done.undoCtxErr)
}

func TestRequestContext_StagingRules(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())

	assert.ErrorIs(t, rc.AddAction(nil), appctx.ErrNilAction)

	require.NoError(t, rc.AddAction(&step{name: "a", log: &journal{}}))
	assert.Equal(t, 1, rc.Pending())

	require.NoError(t, rc.Commit(context.Background()))
	assert.ErrorIs(t, rc.AddAction(&step{name: "late", log: &journal{}}), appctx.ErrAlreadyCommitted)
	assert.ErrorIs(t, rc.Commit(context.Background()), appctx.ErrAlreadyCommitted)
}
