// Package instrumented decorates a ports.ListRepository with a circuit
// breaker, a token-bucket rate limiter, OpenTelemetry client spans and store
// metrics.
//
// Every call passes through, in order:
//
//	Rate Limiter → Circuit Breaker → OTEL Span → backend
//
// Not-found results and caller cancellation count as successes for the
// breaker: they say nothing about the health of the backend.
package instrumented

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ListRepository = (*Store)(nil)

const tracerName = "store"

// ErrRateLimited is returned when the limiter cannot grant a token before
// the caller's deadline.
var ErrRateLimited = errors.New("store rate limit exceeded")

// Store wraps a backend with resilience and instrumentation.
type Store struct {
	inner   ports.ListRepository
	driver  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	limiter *rate.Limiter // nil when rate limiting is disabled
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// New wraps inner. If metrics is nil, metric recording is skipped.
func New(inner ports.ListRepository, cfg *config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	driver := inner.Name()

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        driver,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: isHealthy,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Store{
		inner:   inner,
		driver:  driver,
		breaker: cb,
		limiter: limiter,
		metrics: metrics,
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}
}

// Name returns the wrapped backend's name.
func (s *Store) Name() string { return s.driver }

// HealthCheck fails fast while the breaker is open, otherwise asks the
// backend.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", s.driver)
	case gobreaker.StateClosed, gobreaker.StateHalfOpen:
		return s.inner.HealthCheck(ctx)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", s.driver, state)
	}
}

func (s *Store) CreateList(ctx context.Context, name string, now time.Time) (*list.List, error) {
	return call(ctx, s, "create_list", func(ctx context.Context) (*list.List, error) {
		return s.inner.CreateList(ctx, name, now)
	})
}

func (s *Store) FindList(ctx context.Context, listID int64) (*list.List, error) {
	return call(ctx, s, "find_list", func(ctx context.Context) (*list.List, error) {
		return s.inner.FindList(ctx, listID)
	})
}

func (s *Store) DeleteList(ctx context.Context, listID int64) error {
	_, err := call(ctx, s, "delete_list", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.inner.DeleteList(ctx, listID)
	})
	return err
}

func (s *Store) CreateTodo(ctx context.Context, listID int64, t todo.Todo) (*todo.Todo, error) {
	return call(ctx, s, "create_todo", func(ctx context.Context) (*todo.Todo, error) {
		return s.inner.CreateTodo(ctx, listID, t)
	})
}

func (s *Store) FindTodo(ctx context.Context, listID, todoID int64) (*todo.Todo, error) {
	return call(ctx, s, "find_todo", func(ctx context.Context) (*todo.Todo, error) {
		return s.inner.FindTodo(ctx, listID, todoID)
	})
}

func (s *Store) UpdateTodo(ctx context.Context, listID, todoID int64, patch todo.Patch) (*todo.Todo, error) {
	return call(ctx, s, "update_todo", func(ctx context.Context) (*todo.Todo, error) {
		return s.inner.UpdateTodo(ctx, listID, todoID, patch)
	})
}

func (s *Store) DeleteTodo(ctx context.Context, listID, todoID int64) error {
	_, err := call(ctx, s, "delete_todo", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.inner.DeleteTodo(ctx, listID, todoID)
	})
	return err
}

func (s *Store) GetTodos(ctx context.Context, listID int64, q todo.Query) ([]todo.Todo, error) {
	return call(ctx, s, "get_todos", func(ctx context.Context) ([]todo.Todo, error) {
		return s.inner.GetTodos(ctx, listID, q)
	})
}

func (s *Store) ListTodos(ctx context.Context, listID int64) ([]todo.Todo, error) {
	return call(ctx, s, "list_todos", func(ctx context.Context) ([]todo.Todo, error) {
		return s.inner.ListTodos(ctx, listID)
	})
}

func (s *Store) DeleteTodos(ctx context.Context, listID int64) (int, error) {
	return call(ctx, s, "delete_todos", func(ctx context.Context) (int, error) {
		return s.inner.DeleteTodos(ctx, listID)
	})
}

func (s *Store) RestoreTodos(ctx context.Context, listID int64, todos []todo.Todo) error {
	_, err := call(ctx, s, "restore_todos", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.inner.RestoreTodos(ctx, listID, todos)
	})
	return err
}

// call runs fn through the limiter, the breaker and a client span, then
// records metrics. Metrics are recorded outside the breaker so rejections are
// captured.
func call[T any](ctx context.Context, s *Store, op string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()

	var out T
	err := s.waitForRateLimit(ctx)
	if err == nil {
		_, err = s.breaker.Execute(func() (struct{}, error) {
			spanCtx, span := s.startSpan(ctx, op)
			defer span.End()

			var fnErr error
			out, fnErr = fn(spanCtx)
			finishSpan(span, fnErr)
			return struct{}{}, fnErr
		})
	}

	s.recordMetrics(ctx, op, start, err)

	if rejected(err) {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", s.driver, op, err)
	}
	return out, err
}

func (s *Store) waitForRateLimit(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}
	return nil
}

func (s *Store) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", s.driver),
			attribute.String("db.operation", op),
		),
	)
}

// finishSpan marks the span failed unless the error is an expected outcome.
func finishSpan(span trace.Span, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		span.SetAttributes(attribute.Bool("store.not_found", true))
		return
	}
	if errors.Is(err, ports.ErrListNotEmpty) {
		span.SetAttributes(attribute.Bool("store.list_not_empty", true))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics records store operation duration and count. Safe to call with
// nil metrics.
func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := telemetry.ResultSuccess
	switch {
	case rejected(err):
		result = telemetry.ResultRejected
	case !isHealthy(err):
		result = telemetry.ResultError
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStoreDriver.String(s.driver),
		telemetry.AttrStoreOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// isHealthy reports whether err leaves the breaker's failure count alone.
func isHealthy(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, ports.ErrListNotEmpty) ||
		errors.Is(err, context.Canceled)
}

func rejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) ||
		errors.Is(err, ErrRateLimited)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
