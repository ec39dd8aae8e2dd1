// Package handlers holds the HTTP handlers behind the router. Each API
// handler parses its path and body, calls ports.ListService and renders
// the result or a catalog error.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// ListHandler serves list creation, lookup and deletion.
type ListHandler struct {
	svc ports.ListService
}

func NewListHandler(svc ports.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// CreateList handles POST /lists.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (reply, error) {
		var req dto.CreateListRequest
		if err := decodeBody(r, &req, domain.ErrInvalidListName); err != nil {
			return reply{}, err
		}
		created, err := h.svc.CreateList(r.Context(), *req.Name)
		if err != nil {
			return reply{}, err
		}
		return reply{http.StatusCreated, dto.ToCreatedListResponse(created)}, nil
	})
}

// GetList handles GET /lists/{listId}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (reply, error) {
		id, err := pathID(r, ParamListID)
		if err != nil {
			return reply{}, err
		}
		l, err := h.svc.GetList(r.Context(), id)
		if err != nil {
			return reply{}, err
		}
		return reply{http.StatusOK, dto.ToListResponse(l)}, nil
	})
}

// DeleteList handles DELETE /lists/{listId} and takes the list's todos
// with it.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	serve(w, r, func(r *http.Request) (reply, error) {
		id, err := pathID(r, ParamListID)
		if err != nil {
			return reply{}, err
		}
		return reply{status: http.StatusNoContent}, h.svc.DeleteList(r.Context(), id)
	})
}
