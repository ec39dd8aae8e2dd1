package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
)

// Path parameter names shared with the router.
const (
	ParamListID = "listId"
	ParamTodoID = "todoId"
)

// reply is a successful outcome. A nil body sends the status alone.
type reply struct {
	status int
	body   any
}

// endpoint is the body of an API handler. Returned errors are rendered
// through the error catalog.
type endpoint func(r *http.Request) (reply, error)

// serve runs fn with the request body capped at dto.MaxBodyBytes.
func serve(w http.ResponseWriter, r *http.Request, fn endpoint) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, dto.MaxBodyBytes)
	}

	out, err := fn(r)
	switch {
	case err != nil:
		dto.WriteErrorResponse(w, r, err)
	case out.body == nil:
		w.WriteHeader(out.status)
	default:
		writeJSON(w, r, out.status, out.body)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response body", "error", err)
	}
}

func pathID(r *http.Request, param string) (int64, error) {
	return dto.ParseID(param, chi.URLParam(r, param))
}

// todoPath reads both ids of a todo route. A bad list id is reported first.
func todoPath(r *http.Request) (listID, todoID int64, err error) {
	if listID, err = pathID(r, ParamListID); err != nil {
		return 0, 0, err
	}
	todoID, err = pathID(r, ParamTodoID)
	return listID, todoID, err
}

// validatable is implemented by the request DTOs.
type validatable interface {
	Validate() error
}

// decodeBody fills dst from the JSON body and validates it. Malformed
// bodies fail with kind.
func decodeBody[T validatable](r *http.Request, dst T, kind domain.Error) error {
	if err := dto.Decode(nil, r, dst, kind); err != nil {
		return err
	}
	return dst.Validate()
}
