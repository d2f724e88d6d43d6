package http

import (
	"log/slog"

	"github.com/centrahq/hr-backend-go/internal/handler/http/middleware"
	"github.com/centrahq/hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	logger *slog.Logger,
	JWTService jwt.Service,
	frontendURL string,
	payrollHandler PayrollHandler,
	auditHandler AuditHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.OrganizationRequired)

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/preview", payrollHandler.Preview)
				r.Post("/run", payrollHandler.Run)
				r.Get("/runs", payrollHandler.ListRuns)
				r.Get("/me", payrollHandler.ListMyPayslips)
			})

			r.Get("/audit", auditHandler.List)
		})
	})

	return r
}
