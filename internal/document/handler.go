package document

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/tossaporn/school-budget/internal/project"
	"github.com/tossaporn/school-budget/internal/request"
	"github.com/tossaporn/school-budget/internal/transport"
)

// RequestLookup resolves the expense request a document is rendered for.
type RequestLookup interface {
	GetByID(requestID string) (*request.ExpenseRequest, error)
}

// ProjectLookup resolves the project a document draws context from.
type ProjectLookup interface {
	GetByID(id string) (*project.Project, error)
}

type Handler struct {
	*transport.BaseHandler
	renderer *Renderer
	requests RequestLookup
	projects ProjectLookup
}

func NewHandler(base *transport.BaseHandler, renderer *Renderer, requests RequestLookup, projects ProjectLookup) *Handler {
	return &Handler{
		BaseHandler: base,
		renderer:    renderer,
		requests:    requests,
		projects:    projects,
	}
}

// RequestDocument serves the printable form for an expense request.
func (h *Handler) RequestDocument(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	req, err := h.requests.GetByID(requestID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	proj, err := h.projects.GetByID(req.ProjectID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	page, err := h.renderer.RenderRequestDocument(req, proj)
	if err != nil {
		h.Logger.Error("failed to render request document", "request_id", requestID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	writeHTML(w, page)
}

// ProjectDocument serves the printable proposal sheet for a project.
func (h *Handler) ProjectDocument(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	proj, err := h.projects.GetByID(projectID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	page, err := h.renderer.RenderProjectProposal(proj)
	if err != nil {
		h.Logger.Error("failed to render project proposal", "project_id", projectID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	writeHTML(w, page)
}

func writeHTML(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page))
}
