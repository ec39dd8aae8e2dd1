package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/middleware"
)

func idChain(captured *[2]string) http.Handler {
	inner := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		captured[0] = middleware.RequestIDFromContext(r.Context())
		captured[1] = middleware.CorrelationIDFromContext(r.Context())
	})
	return middleware.RequestID()(middleware.CorrelationID()(inner))
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	var got [2]string
	rec := httptest.NewRecorder()
	idChain(&got).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if _, err := uuid.Parse(got[0]); err != nil {
		t.Errorf("request id %q is not a UUID: %v", got[0], err)
	}
	if rec.Header().Get("X-Request-ID") != got[0] {
		t.Errorf("response X-Request-ID = %q, want %q", rec.Header().Get("X-Request-ID"), got[0])
	}
	if got[1] != got[0] {
		t.Errorf("correlation id = %q, want fallback to request id %q", got[1], got[0])
	}
}

func TestRequestID_ReusesInbound(t *testing.T) {
	t.Parallel()

	var got [2]string
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "req-123")
	req.Header.Set("X-Correlation-ID", "corr-456")

	rec := httptest.NewRecorder()
	idChain(&got).ServeHTTP(rec, req)

	if got[0] != "req-123" {
		t.Errorf("request id = %q, want %q", got[0], "req-123")
	}
	if got[1] != "corr-456" {
		t.Errorf("correlation id = %q, want %q", got[1], "corr-456")
	}
	if rec.Header().Get("X-Correlation-ID") != "corr-456" {
		t.Errorf("response X-Correlation-ID = %q", rec.Header().Get("X-Correlation-ID"))
	}
}

func TestRequestID_RejectsMalformedInbound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{name: "too long", value: strings.Repeat("a", 129)},
		{name: "contains space", value: "req 123"},
		{name: "control character", value: "req\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got [2]string
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("X-Request-ID", tt.value)

			idChain(&got).ServeHTTP(httptest.NewRecorder(), req)

			if got[0] == tt.value {
				t.Errorf("malformed inbound id %q was reused", tt.value)
			}
			if _, err := uuid.Parse(got[0]); err != nil {
				t.Errorf("replacement id %q is not a UUID", got[0])
			}
		})
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	ctx := httptest.NewRequest(http.MethodGet, "/", http.NoBody).Context()
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", id)
	}
	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("CorrelationIDFromContext() = %q, want empty", id)
	}
}
