/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. requestLogger: Structured request logging (zap)
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/organizations/*  Organizations, employees, categories, templates, audit
  /api/warnings/*       Warning lifecycle and document regeneration

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Organization routes
		r.Route("/organizations", func(r chi.Router) {
			r.Get("/", h.ListOrganizations)
			r.Post("/", h.CreateOrganization)

			r.Route("/{orgID}", func(r chi.Router) {
				r.Get("/", h.GetOrganization)

				// Employee routes
				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.ListEmployees)
					r.Post("/", h.CreateEmployee)
					r.Get("/{employeeID}", h.GetEmployee)
					r.Get("/{employeeID}/recommendation", h.GetRecommendation)
					r.Get("/{employeeID}/summary", h.GetSummary)
					r.Get("/{employeeID}/warnings", h.ListEmployeeWarnings)
				})

				// Category routes
				r.Route("/categories", func(r chi.Router) {
					r.Get("/", h.ListCategories)
					r.Post("/seed", h.SeedCategories)
				})

				// Template version routes
				r.Route("/template-versions", func(r chi.Router) {
					r.Get("/", h.ListTemplateVersions)
					r.Post("/", h.ActivateTemplateVersion)
					r.Get("/current", h.GetCurrentTemplateVersion)
				})

				// Audit routes
				r.Get("/audit", h.ListAudit)
			})
		})

		// Warning routes
		r.Route("/warnings", func(r chi.Router) {
			r.Post("/", h.IssueWarning)
			r.Get("/{id}", h.GetWarning)
			r.Get("/{id}/document", h.GetWarningDocument)
			r.Post("/{id}/delivery", h.UpdateDelivery)
			r.Post("/{id}/deactivate", h.DeactivateWarning)
		})
	})

	return r
}

// requestLogger logs one structured line per request.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
