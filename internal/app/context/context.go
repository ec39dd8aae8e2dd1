// Package appctx is the per-request state shared by the list service: a read
// cache and the staged steps of a multi-step write.
//
//	rc := appctx.FromContext(ctx)
//	l, err := appctx.GetOrFetch(ctx, rc, "list:12", fetchList)
//	_ = rc.AddAction(deleteTodos)
//	_ = rc.AddAction(deleteList)
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

// ErrAlreadyCommitted is returned when AddAction or Commit is called on a
// RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when the same key was used with a
// different type.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext wraps a context.Context with a read cache and a queue of
// staged actions. Create one per request.
type RequestContext struct {
	context.Context

	cacheMu sync.Mutex
	cache   map[string]cacheEntry

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

// cacheEntry stores a GetOrFetch result. Errors are cached too.
type cacheEntry struct {
	value any
	err   error
}

type contextKey struct{}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext stored by the AppContext middleware,
// or a fresh one wrapping ctx when none is present.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(contextKey{}).(*RequestContext); ok {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. The same key must always be used with the same T.
//
// fetchFn receives ctx (the caller's context), not the RequestContext's
// embedded one, so deadlines set after the RequestContext was created apply.
func GetOrFetch[T any](
	ctx context.Context, rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error),
) (T, error) {
	rc.cacheMu.Lock()
	entry, ok := rc.cache[key]
	rc.cacheMu.Unlock()

	if ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(ctx)

	rc.cacheMu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.cacheMu.Unlock()

	return val, err
}

// Forget drops a cached key, e.g. after a write made it stale.
func (rc *RequestContext) Forget(key string) {
	rc.cacheMu.Lock()
	delete(rc.cache, key)
	rc.cacheMu.Unlock()
}
