package project

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/drafting"
	"github.com/tossaporn/school-budget/internal/transport"
	"github.com/tossaporn/school-budget/internal/user"
	"github.com/tossaporn/school-budget/pkg/logger"
)

type ServiceAPI interface {
	CreateProject(dto CreateProjectDTO, owner *user.User) (*Project, error)
	GetByID(id string) (*Project, error)
	ListVisible(viewer *user.User) ([]*Project, error)
	Close(id string) (*Project, error)
}

// Drafter produces narrative suggestions for the descriptive project fields.
// Suggestions are opaque text; nothing here validates them.
type Drafter interface {
	DraftNarrative(ctx context.Context, brief drafting.ProjectBrief) (*drafting.Suggestion, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Drafter Drafter
}

func NewHandler(service ServiceAPI, drafter Drafter) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
		Drafter:     drafter,
	}
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("CreateProject: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateProject: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateProject(dto, user.FromPrincipal(p))
	if err != nil {
		h.Logger.Error("CreateProject: service error", "error", err, "owner_id", p.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateProject: project created",
		"project_id", created.ID,
		"owner_id", p.UserID,
		"total_budget", created.TotalBudget)

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("ListProjects: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	projects, err := h.Service.ListVisible(user.FromPrincipal(p))
	if err != nil {
		h.Logger.Error("ListProjects: service error", "error", err, "user_id", p.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	proj, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetProject: service error", "error", err, "project_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, proj)
}

func (h *Handler) CloseProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	proj, err := h.Service.Close(id)
	if err != nil {
		h.Logger.Error("CloseProject: service error", "error", err, "project_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CloseProject: project closed", "project_id", id)
	h.WriteJSON(w, http.StatusOK, proj)
}

// DraftNarrative asks the drafting collaborator for suggested narrative text.
// It takes a brief rather than a project id: drafting happens while the
// proposal form is still being filled in, before any project exists.
func (h *Handler) DraftNarrative(w http.ResponseWriter, r *http.Request) {
	if h.Drafter == nil {
		h.WriteError(w, http.StatusServiceUnavailable, "drafting is not configured")
		return
	}

	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.Logger.Error("DraftNarrative: principal not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var brief drafting.ProjectBrief
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		h.Logger.Error("DraftNarrative: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if brief.Name == "" {
		h.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	if brief.Department == "" {
		brief.Department = p.Department
	}

	suggestion, err := h.Drafter.DraftNarrative(r.Context(), brief)
	if err != nil {
		h.Logger.Error("DraftNarrative: drafting error", "error", err, "name", brief.Name)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, suggestion)
}
