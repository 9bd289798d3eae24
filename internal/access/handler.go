package access

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/tossaporn/school-budget/internal/transport"
	"github.com/tossaporn/school-budget/internal/user"
	"github.com/tossaporn/school-budget/pkg/logger"
)

type ServiceAPI interface {
	RequestAccess(dto RequestAccessDTO) (*AccessRequest, error)
	List() ([]*AccessRequest, error)
	PendingCount() (int64, error)
	Approve(id string) (*user.User, error)
	Reject(id string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

// RequestAccess is the only unauthenticated write in the API.
func (h *Handler) RequestAccess(w http.ResponseWriter, r *http.Request) {
	var dto RequestAccessDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("RequestAccess: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.RequestAccess(dto)
	if err != nil {
		h.Logger.Error("RequestAccess: service error", "error", err, "name", dto.Name)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) ListAccessRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.Service.List()
	if err != nil {
		h.Logger.Error("ListAccessRequests: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	pending, err := h.Service.PendingCount()
	if err != nil {
		h.Logger.Error("ListAccessRequests: count error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"access_requests": reqs,
		"pending_count":   pending,
	})
}

func (h *Handler) ApproveAccessRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.Service.Approve(id)
	if err != nil {
		h.Logger.Error("ApproveAccessRequest: service error", "error", err, "access_request_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("ApproveAccessRequest: promoted to user", "access_request_id", id, "user_id", u.ID)
	h.WriteJSON(w, http.StatusCreated, u)
}

func (h *Handler) RejectAccessRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Service.Reject(id); err != nil {
		h.Logger.Error("RejectAccessRequest: service error", "error", err, "access_request_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}
