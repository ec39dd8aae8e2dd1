package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/todo-list-service/internal/app/context"
)

// AppContext returns middleware that attaches a fresh RequestContext to every
// request. Services read it with appctx.FromContext to memoize lookups and
// stage compensated writes for the lifetime of the request.
//
// It is registered last so the RequestContext wraps the context carrying the
// ids, the span, the logger and the request deadline.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := appctx.WithRequestContext(r.Context(), appctx.New(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
