package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hrms-backend/internal/auditlog"
	"github.com/frahmantamala/hrms-backend/internal/auth"
	"github.com/frahmantamala/hrms-backend/internal/employee"
	"github.com/frahmantamala/hrms-backend/internal/team"
	"github.com/frahmantamala/hrms-backend/internal/transport/middleware"
	"github.com/frahmantamala/hrms-backend/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// RegisterAllRoutes wires the HTTP surface. Registration, login, logout and
// health are public; everything else sits behind the tenant guard.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, allowedOrigins string, authHandler *auth.Handler, employeeHandler *employee.Handler, teamHandler *team.Handler, logHandler *auditlog.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.TraceID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.pingHandler)
		r.Get("/health/ready", healthHandler.healthCheckHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", authHandler.Register)
			sr.Post("/login", authHandler.Login)
			sr.Post("/logout", authHandler.Logout)
		})

		// Protected routes behind the tenant guard
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.List)
				er.Post("/", employeeHandler.Create)
				er.Get("/{id}", employeeHandler.Get)
				er.Put("/{id}", employeeHandler.Update)
				er.Delete("/{id}", employeeHandler.Delete)
			})

			pr.Route("/teams", func(tr chi.Router) {
				tr.Get("/", teamHandler.List)
				tr.Post("/", teamHandler.Create)
				tr.Get("/{id}", teamHandler.Get)
				tr.Put("/{id}", teamHandler.Update)
				tr.Delete("/{id}", teamHandler.Delete)
				tr.Post("/{teamId}/assign", teamHandler.Assign)
				tr.Delete("/{teamId}/unassign/{employeeId}", teamHandler.Unassign)
			})

			pr.Get("/logs", logHandler.List)
		})
	})
}
