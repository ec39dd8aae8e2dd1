// Package health keeps the set of dependency checks behind the readiness
// and database health endpoints.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/fanout"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// DefaultCheckTimeout bounds a single health check.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry runs its checkers concurrently. Checkers are keyed by Name, so
// registering a second checker under a taken name replaces the first.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout replaces DefaultCheckTimeout. Zero or less leaves each
// check bounded only by the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

func New(opts ...Option) *Registry {
	r := &Registry{
		checkers: make(map[string]ports.HealthChecker),
		timeout:  DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	r.checkers[name] = checker
	r.mu.Unlock()
}

// CheckAll returns one entry per registered name. A check still waiting to
// start when ctx ends reports ctx.Err().
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := make([]string, 0, len(r.checkers))
	checkers := make([]ports.HealthChecker, 0, len(r.checkers))
	for name, c := range r.checkers {
		names = append(names, name)
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	outcomes := fanout.Map(ctx, 0, checkers, r.check)

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = outcomes[i].Err
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return struct{}{}, c.HealthCheck(ctx)
}
