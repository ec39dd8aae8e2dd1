package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/todo-list-service/internal/app/context"
)

func TestAppContext_SharedWithinRequest(t *testing.T) {
	t.Parallel()

	var first, second *appctx.RequestContext
	handler := middleware.AppContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		first = appctx.FromContext(r.Context())
		second = appctx.FromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/lists/1", http.NoBody))

	if first == nil || first != second {
		t.Fatalf("FromContext() returned %p and %p, want the same injected RequestContext", first, second)
	}
}

func TestAppContext_EachRequestGetsUniqueContext(t *testing.T) {
	t.Parallel()

	var contexts []*appctx.RequestContext
	handler := middleware.AppContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		contexts = append(contexts, appctx.FromContext(r.Context()))
	}))

	for range 3 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", http.NoBody))
	}

	if len(contexts) != 3 {
		t.Fatalf("expected 3 contexts, got %d", len(contexts))
	}
	if contexts[0] == contexts[1] || contexts[1] == contexts[2] {
		t.Error("expected each request to get a unique RequestContext")
	}
}

func TestAppContext_WithoutMiddlewareFallsBackToFresh(t *testing.T) {
	t.Parallel()

	ctx := httptest.NewRequest(http.MethodGet, "/test", http.NoBody).Context()

	a, b := appctx.FromContext(ctx), appctx.FromContext(ctx)
	if a == nil || b == nil {
		t.Fatal("FromContext() returned nil without middleware")
	}
	if a == b {
		t.Error("FromContext() without middleware should not share state between calls")
	}
}
