package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

const checkOK = "ok"

type livenessBody struct {
	Status string `json:"status"`
}

type readinessBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type dbConnectionBody struct {
	DBConnection string `json:"db-connection"`
}

// HealthHandler serves the liveness and readiness checks and the API's database health
// endpoint.
type HealthHandler struct {
	registry ports.HealthRegistry
	store    ports.HealthChecker
}

func NewHealthHandler(registry ports.HealthRegistry, store ports.HealthChecker) *HealthHandler {
	return &HealthHandler{registry: registry, store: store}
}

// Liveness answers as long as the process can serve HTTP.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, livenessBody{Status: checkOK})
}

// Readiness is 503 while any registered check fails. Each failing check
// reports its error text.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	body := readinessBody{Status: "ready", Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			body.Checks[name] = checkOK
			continue
		}
		body.Checks[name] = err.Error()
		body.Status = "not_ready"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, body)
}

// DBConnection reports "ok" or "disconnected" for the store. The cause of a
// failure goes to the log only.
func (h *HealthHandler) DBConnection(w http.ResponseWriter, r *http.Request) {
	err := h.store.HealthCheck(r.Context())
	if err == nil {
		writeJSON(w, r, http.StatusOK, dbConnectionBody{DBConnection: checkOK})
		return
	}

	logging.FromContext(r.Context()).WarnContext(r.Context(), "store unreachable",
		slog.String("store", h.store.Name()),
		slog.Any("error", err),
	)
	writeJSON(w, r, http.StatusServiceUnavailable, dbConnectionBody{DBConnection: "disconnected"})
}
