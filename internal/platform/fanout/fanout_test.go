package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/fanout"
)

func double(_ context.Context, n int) (int, error) { return 2 * n, nil }

func TestMap_KeepsItemOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		items []int
	}{
		{name: "no items", limit: 3, items: []int{}},
		{name: "fewer items than limit", limit: 8, items: []int{1, 2, 3}},
		{name: "more items than limit", limit: 2, items: []int{5, 4, 3, 2, 1}},
		{name: "unlimited", limit: 0, items: []int{9, 8, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fanout.Map(context.Background(), tt.limit, tt.items, double)

			require.Len(t, got, len(tt.items))
			for i, n := range tt.items {
				assert.NoError(t, got[i].Err)
				assert.Equal(t, 2*n, got[i].Value, "item %d", i)
			}
		})
	}
}

func TestMap_FailureIsPerItem(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd")
	got := fanout.Map(context.Background(), 2, []int{1, 2, 3, 4}, func(_ context.Context, n int) (int, error) {
		if n%2 == 1 {
			return 0, errOdd
		}
		return n, nil
	})

	assert.ErrorIs(t, got[0].Err, errOdd)
	assert.Equal(t, fanout.Outcome[int]{Value: 2}, got[1])
	assert.ErrorIs(t, got[2].Err, errOdd)
	assert.Equal(t, fanout.Outcome[int]{Value: 4}, got[3])
}

func TestMap_RespectsLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	var running, peak atomic.Int32

	fanout.Map(context.Background(), limit, make([]int, 20), func(_ context.Context, _ int) (int, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return 0, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(limit))
	assert.Positive(t, peak.Load())
}

func TestMap_SkipsCallsAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32

	got := fanout.Map(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		cancel()
		return n, nil
	})

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, fanout.Outcome[int]{Value: 1}, got[0])
	assert.ErrorIs(t, got[1].Err, context.Canceled)
	assert.ErrorIs(t, got[2].Err, context.Canceled)
}

func TestMap_PassesContextToCalls(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	got := fanout.Map(ctx, 2, []int{1, 2}, func(ctx context.Context, _ int) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	for _, o := range got {
		assert.ErrorIs(t, o.Err, context.DeadlineExceeded)
	}
}
