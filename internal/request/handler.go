package request

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/transport"
	"github.com/tossaporn/school-budget/internal/user"
	"github.com/tossaporn/school-budget/pkg/logger"
)

type ServiceAPI interface {
	Submit(ctx context.Context, dto SubmitRequestDTO, actor *user.User) (*ExpenseRequest, error)
	Advance(ctx context.Context, requestID string, actor *user.User) (*ExpenseRequest, error)
	Reject(ctx context.Context, requestID string, actor *user.User, note string) (*ExpenseRequest, error)
	Complete(ctx context.Context, requestID string, actor *user.User) (*ExpenseRequest, error)
	PendingFor(actor *user.User) ([]*ExpenseRequest, error)
	ListForUser(actor *user.User) ([]*ExpenseRequest, error)
	GetByID(requestID string) (*ExpenseRequest, error)
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

func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("SubmitRequest: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitRequest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.Submit(r.Context(), dto, user.FromPrincipal(p))
	if err != nil {
		h.Logger.Error("SubmitRequest: service error", "error", err, "requester_id", p.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("SubmitRequest: request submitted",
		"request_id", req.ID,
		"project_id", req.ProjectID,
		"amount", req.Amount)

	h.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("ListRequests: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	reqs, err := h.Service.ListForUser(user.FromPrincipal(p))
	if err != nil {
		h.Logger.Error("ListRequests: service error", "error", err, "user_id", p.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"requests": reqs})
}

// PendingRequests serves the approval queue for the acting user's role.
func (h *Handler) PendingRequests(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("PendingRequests: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	reqs, err := h.Service.PendingFor(user.FromPrincipal(p))
	if err != nil {
		h.Logger.Error("PendingRequests: service error", "error", err, "user_id", p.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"requests":      reqs,
		"pending_count": len(reqs),
	})
}

func (h *Handler) AdvanceRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("AdvanceRequest: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	req, err := h.Service.Advance(r.Context(), requestID, user.FromPrincipal(p))
	if err != nil {
		h.Logger.Error("AdvanceRequest: service error", "error", err, "request_id", requestID, "actor_id", p.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("AdvanceRequest: request advanced",
		"request_id", requestID,
		"new_status", req.Status,
		"actor_id", p.UserID)

	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("RejectRequest: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")

	var dto RejectRequestDTO
	if r.Body != nil {
		// note is optional; an empty body is fine
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	req, err := h.Service.Reject(r.Context(), requestID, user.FromPrincipal(p), dto.Note)
	if err != nil {
		h.Logger.Error("RejectRequest: service error", "error", err, "request_id", requestID, "actor_id", p.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("RejectRequest: request rejected", "request_id", requestID, "actor_id", p.UserID)
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) CompleteRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("CompleteRequest: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	req, err := h.Service.Complete(r.Context(), requestID, user.FromPrincipal(p))
	if err != nil {
		h.Logger.Error("CompleteRequest: service error", "error", err, "request_id", requestID, "actor_id", p.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CompleteRequest: disbursement confirmed", "request_id", requestID, "actor_id", p.UserID)
	h.WriteJSON(w, http.StatusOK, req)
}
