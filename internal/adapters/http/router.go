// Package http provides the inbound HTTP adapter: the chi route table and
// the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/handlers"
)

// APIPrefix is the mount point of the list and todo routes.
const APIPrefix = "/todo/api"

const (
	listPath = "/lists/{" + handlers.ParamListID + "}"
	todoPath = listPath + "/todos/{" + handlers.ParamTodoID + "}"
)

// NewRouter registers every route on a chi router. Middleware is applied to
// all routes in the order given.
func NewRouter(
	listHandler *handlers.ListHandler,
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/health", healthHandler.DBConnection)

		r.Post("/lists", listHandler.CreateList)
		r.Get(listPath, listHandler.GetList)
		r.Delete(listPath, listHandler.DeleteList)

		r.Get(listPath+"/todos", todoHandler.ListTodos)
		r.Post(listPath+"/todos", todoHandler.CreateTodo)
		r.Get(todoPath, todoHandler.GetTodo)
		r.Patch(todoPath, todoHandler.UpdateTodo)
		r.Delete(todoPath, todoHandler.DeleteTodo)
	})

	return r
}
