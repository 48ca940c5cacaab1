// Package http assembles the API router.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/http/handlers"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/http/middleware"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/metrics"
)

// RouterConfig carries the handlers and auth settings the router mounts.
type RouterConfig struct {
	Handler    *handlers.Handler
	Auth       *handlers.AuthHandler
	Admin      *handlers.AdminHandler
	JWTSecret  string
	AdminToken string
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// NewRouter registers the API routes: public probes, the JWT-protected
// /api tree the dashboard consumes, and token-guarded /admin routes
// mounted only when a token is configured.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	h := cfg.Handler
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(api chi.Router) {
		if cfg.Auth != nil {
			api.Post("/auth/login", cfg.Auth.Login)
		}

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireJWT(cfg.JWTSecret, cfg.Logger))

			protected.Get("/athletes", h.Athletes)
			protected.Route("/athletes/{id}", func(a chi.Router) {
				a.Get("/", h.AthleteProfile)
				a.Get("/biometric-data", h.BiometricData)
				a.Get("/genetic-profile", h.GeneticProfile)
				a.Get("/body-composition", h.BodyComposition)
				a.Get("/blood-results", h.BloodResults)
				a.Get("/readiness", h.Readiness)
				a.Get("/recovery", h.Recovery)
				a.Get("/injury-risk", h.InjuryRisk)
				a.Get("/sleep", h.Sleep)
				a.Get("/body-load", h.BodyLoad)
				a.Get("/predictions", h.Predictions)
				a.Get("/recommendations", h.Recommendations)
				a.Get("/alerts", h.AthleteAlerts)
			})
			protected.Post("/alerts/{id}/ack", h.AcknowledgeAlert)
			protected.Get("/team/overview", h.TeamOverview)
			protected.Get("/team/alerts", h.TeamAlerts)
			protected.Get("/environment/air-quality", h.AirQuality)
		})
	})

	if cfg.Admin != nil && cfg.AdminToken != "" {
		r.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAdminToken(cfg.AdminToken, cfg.Logger))
			admin.Post("/snapshots/refresh", cfg.Admin.RefreshSnapshots)
			admin.Post("/catalog/reload", cfg.Admin.ReloadCatalog)
		})
	}

	return r
}

func notFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeStatus(w, nethttp.StatusNotFound, "not found")
}

func methodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeStatus(w, nethttp.StatusMethodNotAllowed, "method not allowed")
}

func writeStatus(w nethttp.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}` + "\n"))
}
