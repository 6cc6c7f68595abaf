package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/baechuer/mail-relay/internal/metrics"
	"github.com/baechuer/mail-relay/internal/transport/http/handlers"
	mw "github.com/baechuer/mail-relay/internal/transport/http/middleware"
)

type Config struct {
	CORSOrigins []string
}

func New(email *handlers.EmailHandler, health *handlers.HealthHandler, cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.AccessLog)
	// outside Recover so panics are counted as 500s
	r.Use(mw.Metrics)
	r.Use(mw.Recover)
	r.Use(mw.SecurityHeaders)
	r.Use(mw.CORS(cfg.CORSOrigins))

	r.Get("/health", health.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Post("/send-email", email.SendEmail)

	return r
}
