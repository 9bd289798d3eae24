package auth

import (
	"encoding/json"
	"net/http"

	"github.com/tossaporn/school-budget/internal"
	"github.com/tossaporn/school-budget/internal/transport"
	"github.com/tossaporn/school-budget/internal/user"
	"github.com/tossaporn/school-budget/pkg/logger"
)

type ServiceAPI interface {
	Login(dto LoginDTO) (*SessionResponse, error)
	Resolve(tokenString string) (*user.User, error)
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

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Login: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.Service.Login(dto)
	if err != nil {
		h.Logger.Warn("Login: failed", "error", err, "user_id", dto.UserID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, session)
}

// AuthMiddleware validates the bearer token and injects the account's current
// registry record into the request context as the acting principal.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		u, err := h.Service.Resolve(token)
		if err != nil {
			h.Logger.Warn("AuthMiddleware: token rejected", "error", err)
			h.HandleServiceError(w, err)
			return
		}

		ctx := internal.ContextWithPrincipal(r.Context(), &internal.Principal{
			UserID:     u.ID,
			Name:       u.Name,
			Role:       string(u.Role),
			Department: string(u.Department),
		})
		ctx = logger.With(ctx, "user_id", u.ID, "role", string(u.Role))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates the user-management surface: direct insertion, deletion
// and access-request decisions.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := internal.PrincipalFromContext(r.Context())
		if !ok {
			h.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if user.Role(p.Role) != user.RoleAdmin {
			h.Logger.Warn("RequireAdmin: access denied", "user_id", p.UserID, "role", p.Role)
			h.WriteError(w, http.StatusForbidden, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
