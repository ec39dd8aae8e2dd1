package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/list"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todo"
)

var (
	testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	errStore = errors.New("connection refused")
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return withChiParams(req, params)
}

func validList() *list.List {
	return &list.List{ID: 7, Name: "groceries", CreatedAt: testTime, UpdatedAt: testTime}
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:          1,
		ListID:      7,
		Description: "milk",
		State:       todo.StateIncomplete,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireErrorCode asserts the response carries a catalog error body with
// the given code.
func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) dto.ErrorResponse {
	t.Helper()
	requireStatus(t, rec, status)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Code != code {
		t.Errorf("code = %q, want %q", resp.Code, code)
	}
	return resp
}
