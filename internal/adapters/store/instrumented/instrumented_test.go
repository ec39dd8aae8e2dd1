package instrumented_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/instrumented"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
	"github.com/jsamuelsen11/todo-list-service/mocks"
)

var errDown = errors.New("connection refused")

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func storeConfig() *config.StoreConfig {
	return &config.StoreConfig{
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
	}
}

func newMockStore(t *testing.T, cfg *config.StoreConfig) (*instrumented.Store, *mocks.MockListRepository) {
	t.Helper()
	repo := mocks.NewMockListRepository(t)
	repo.EXPECT().Name().Return("mock").Maybe()
	return instrumented.New(repo, cfg, nil, discardLogger()), repo
}

// The decorator must not change any backend semantics.
func TestStore_Contract(t *testing.T) {
	t.Parallel()

	storetest.Run(t, func(t *testing.T) ports.ListRepository {
		t.Helper()
		return instrumented.New(memory.New(), storeConfig(), nil, discardLogger())
	})
}

func TestStore_Name(t *testing.T) {
	t.Parallel()

	s := instrumented.New(memory.New(), storeConfig(), nil, discardLogger())
	assert.Equal(t, config.DriverMemory, s.Name())
}

func TestStore_BreakerOpensOnFailures(t *testing.T) {
	t.Parallel()

	s, repo := newMockStore(t, storeConfig())
	ctx := context.Background()

	repo.EXPECT().FindList(mock.Anything, int64(1)).Return(nil, errDown).Times(2)

	for range 2 {
		_, err := s.FindList(ctx, 1)
		require.ErrorIs(t, err, errDown)
	}

	// Third call is rejected without reaching the backend.
	_, err := s.FindList(ctx, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errDown)

	err = s.HealthCheck(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
}

func TestStore_NotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	s, repo := newMockStore(t, storeConfig())
	ctx := context.Background()

	repo.EXPECT().FindList(mock.Anything, int64(9)).Return(nil, domain.ErrListNotFound).Times(5)
	repo.EXPECT().HealthCheck(mock.Anything).Return(nil).Once()

	for range 5 {
		_, err := s.FindList(ctx, 9)
		require.ErrorIs(t, err, domain.ErrListNotFound)
	}

	assert.NoError(t, s.HealthCheck(ctx))
}

func TestStore_CanceledContextDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	s, repo := newMockStore(t, storeConfig())
	ctx := context.Background()

	repo.EXPECT().DeleteTodo(mock.Anything, int64(1), int64(2)).Return(context.Canceled).Times(3)

	for range 3 {
		err := s.DeleteTodo(ctx, 1, 2)
		require.ErrorIs(t, err, context.Canceled)
	}
}

func TestStore_ListNotEmptyDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	s, repo := newMockStore(t, storeConfig())
	ctx := context.Background()

	repo.EXPECT().DeleteList(mock.Anything, int64(4)).Return(ports.ErrListNotEmpty).Times(3)
	repo.EXPECT().HealthCheck(mock.Anything).Return(nil).Once()

	for range 3 {
		require.ErrorIs(t, s.DeleteList(ctx, 4), ports.ErrListNotEmpty)
	}

	assert.NoError(t, s.HealthCheck(ctx))
}

func TestStore_HealthCheckDelegates(t *testing.T) {
	t.Parallel()

	s, repo := newMockStore(t, storeConfig())
	repo.EXPECT().HealthCheck(mock.Anything).Return(errDown).Once()

	assert.ErrorIs(t, s.HealthCheck(context.Background()), errDown)
}

func TestStore_RateLimited(t *testing.T) {
	t.Parallel()

	cfg := storeConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	s, repo := newMockStore(t, cfg)

	repo.EXPECT().DeleteList(mock.Anything, int64(1)).Return(nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, s.DeleteList(ctx, 1))

	err := s.DeleteList(ctx, 1)
	require.ErrorIs(t, err, instrumented.ErrRateLimited)
}

func TestStore_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "test")
	require.NoError(t, err)

	s := instrumented.New(memory.New(), storeConfig(), metrics, discardLogger())
	ctx := context.Background()

	_, err = s.CreateList(ctx, "groceries", time.Now())
	require.NoError(t, err)
	_, err = s.FindList(ctx, 404)
	require.ErrorIs(t, err, domain.ErrListNotFound)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value(telemetry.AttrStoreOperation)
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				got[op.AsString()+"/"+result.AsString()] += dp.Value
			}
		}
	}

	assert.Equal(t, map[string]int64{
		"create_list/" + telemetry.ResultSuccess: 1,
		"find_list/" + telemetry.ResultSuccess:   1,
	}, got)
}
