package health_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-list-service/mocks"
)

func newChecker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("connection refused")

	tests := []struct {
		name     string
		checkers map[string]error
	}{
		{name: "nothing registered", checkers: map[string]error{}},
		{name: "all healthy", checkers: map[string]error{"mongo": nil, "redis": nil}},
		{name: "one failing", checkers: map[string]error{"postgres": nil, "redis": errRefused}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for name, err := range tt.checkers {
				r.Register(newChecker(t, name, err))
			}

			got := r.CheckAll(context.Background())

			require.NotNil(t, got)
			assert.Equal(t, tt.checkers, got)
		})
	}
}

func TestRegistry_SameNameReplaces(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("mongo")

	errSecond := errors.New("replica set has no primary")
	r := health.New()
	r.Register(first)
	r.Register(newChecker(t, "mongo", errSecond))

	got := r.CheckAll(context.Background())

	require.Len(t, got, 1)
	assert.ErrorIs(t, got["mongo"], errSecond)
}

func TestRegistry_CheckTimeout(t *testing.T) {
	t.Parallel()

	hang := mocks.NewMockHealthChecker(t)
	hang.EXPECT().Name().Return("firestore")
	hang.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(hang)

	start := time.Now()
	got := r.CheckAll(context.Background())

	assert.ErrorIs(t, got["firestore"], context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRegistry_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	idle := mocks.NewMockHealthChecker(t)
	idle.EXPECT().Name().Return("redis")

	r := health.New()
	r.Register(idle)

	assert.ErrorIs(t, r.CheckAll(ctx)["redis"], context.Canceled)
}

func TestRegistry_ChecksOverlap(t *testing.T) {
	t.Parallel()

	var started sync.WaitGroup
	started.Add(2)
	release := make(chan struct{})
	go func() {
		started.Wait()
		close(release)
	}()

	wait := func(ctx context.Context) error {
		started.Done()
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := health.New()
	for _, name := range []string{"postgres", "mongo"} {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(wait)
		r.Register(c)
	}

	got := r.CheckAll(context.Background())

	assert.Equal(t, map[string]error{"postgres": nil, "mongo": nil}, got)
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 1 {
				r.CheckAll(context.Background())
				return
			}
			c := mocks.NewMockHealthChecker(t)
			c.EXPECT().Name().Return(fmt.Sprintf("store-%d", i))
			c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
			r.Register(c)
		}()
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 20)
}
