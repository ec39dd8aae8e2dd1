// Package middleware provides the HTTP middleware of the todo API.
//
// The router installs them in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → AppContext → route
//
// Each middleware is a func(http.Handler) http.Handler registered with chi's
// Use.
package middleware

import "net/http"

// statusRecorder wraps http.ResponseWriter to remember the status code and
// body size for recovery, tracing and access logging.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	wrote   bool
	written int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code and forwards it.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.wrote {
		return
	}
	sr.status = code
	sr.wrote = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wrote = true
	n, err := sr.ResponseWriter.Write(b)
	sr.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
