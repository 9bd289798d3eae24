package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/tossaporn/school-budget/internal/access"
	"github.com/tossaporn/school-budget/internal/auth"
	"github.com/tossaporn/school-budget/internal/document"
	"github.com/tossaporn/school-budget/internal/project"
	"github.com/tossaporn/school-budget/internal/request"
	"github.com/tossaporn/school-budget/internal/transport/middleware"
	"github.com/tossaporn/school-budget/internal/transport/swagger"
	"github.com/tossaporn/school-budget/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	accessHandler *access.Handler,
	projectHandler *project.Handler,
	requestHandler *request.Handler,
	documentHandler *document.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Public routes: session login and onboarding
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
		})
		r.Post("/access-requests", accessHandler.RequestAccess)

		// Protected routes that require a session
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/users/me", userHandler.GetCurrentUser)
			pr.Get("/users", userHandler.ListUsers)

			pr.Route("/projects", func(pjr chi.Router) {
				pjr.Post("/", projectHandler.CreateProject)
				pjr.Get("/", projectHandler.ListProjects)
				pjr.Post("/draft", projectHandler.DraftNarrative)
				pjr.Get("/{id}", projectHandler.GetProject)
				pjr.Get("/{id}/document", documentHandler.ProjectDocument)
				pjr.Patch("/{id}/close", projectHandler.CloseProject)
			})

			pr.Route("/requests", func(rr chi.Router) {
				rr.Post("/", requestHandler.SubmitRequest)
				rr.Get("/", requestHandler.ListRequests)
				rr.Get("/pending", requestHandler.PendingRequests)
				rr.Get("/{id}/document", documentHandler.RequestDocument)
				rr.Patch("/{id}/approve", requestHandler.AdvanceRequest)
				rr.Patch("/{id}/reject", requestHandler.RejectRequest)
				rr.Patch("/{id}/complete", requestHandler.CompleteRequest)
			})

			// Admin-only management routes
			pr.Group(func(ar chi.Router) {
				ar.Use(authHandler.RequireAdmin)

				ar.Post("/users", userHandler.CreateUser)
				ar.Delete("/users/{id}", userHandler.DeleteUser)

				ar.Get("/access-requests", accessHandler.ListAccessRequests)
				ar.Post("/access-requests/{id}/approve", accessHandler.ApproveAccessRequest)
				ar.Post("/access-requests/{id}/reject", accessHandler.RejectAccessRequest)
			})
		})
	})
}
