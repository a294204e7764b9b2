package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterConfig agrupa lo que necesita el router del puente.
type RouterConfig struct {
	Handler            *Handler
	MetricsHandler     http.Handler // nil => sin /metrics
	APIKey             string
	JWTSecret          string
	CORSAllowedOrigins []string
}

// NewRouter arma el router: /readyz y /metrics abiertos, todo /v1 detrás
// de auth.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(WithRequestID)
	r.Use(WithRecover)
	r.Use(WithMetrics)
	r.Use(WithLogging)

	r.Get("/readyz", cfg.Handler.Readyz)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(func(next http.Handler) http.Handler {
			return WithAuth(next, cfg.APIKey, cfg.JWTSecret)
		})

		v1.Get("/users", cfg.Handler.ListUsers)
		v1.Get("/users/count", cfg.Handler.CountUsers)
		v1.Get("/users/{id}", cfg.Handler.GetUserByID)
		v1.Get("/users/by-username/{username}", cfg.Handler.GetUserByUsername)
		v1.Get("/users/by-email/{email}", cfg.Handler.GetUserByEmail)
		v1.Get("/capabilities", cfg.Handler.Capabilities)

		v1.Post("/credentials/validate", cfg.Handler.ValidateCredentials)
		v1.Put("/credentials", cfg.Handler.UpdateCredentials)
	})

	if len(cfg.CORSAllowedOrigins) > 0 {
		return WithCORS(r, cfg.CORSAllowedOrigins)
	}
	return r
}
