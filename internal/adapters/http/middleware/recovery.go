package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

// Recovery answers a panicking handler with a bare InternalError. The panic
// value and stack go to logger only. A response that has already started is
// left as it is, and http.ErrAbortHandler is passed through to net/http.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)
			defer func() {
				if v := recover(); v != nil {
					handlePanic(logger, sr, r, v)
				}
			}()
			next.ServeHTTP(sr, r)
		})
	}
}

func handlePanic(logger *slog.Logger, sr *statusRecorder, r *http.Request, v any) {
	if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
		panic(v)
	}

	logger.ErrorContext(r.Context(), "handler panicked",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
	)
	if !sr.wrote {
		dto.WriteErrorResponse(sr, r, domain.ErrInternalError)
	}
}
