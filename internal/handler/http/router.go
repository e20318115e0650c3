package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/middleware"
)

// Handlers groups the resource handlers mounted by NewRouter.
type Handlers struct {
	Categories *CategoryHandler
	Products   *ProductHandler
	Reviews    *ReviewHandler
	Shirts     *ShirtHandler
	Health     *health.Handler
}

// RouterConfig holds the cross-cutting settings of the router.
type RouterConfig struct {
	ServiceName       string
	CORS              middleware.CORSConfig
	PprofAllowedCIDRs []string
	RateLimit         func(http.Handler) http.Handler
	Metrics           *middleware.HTTPMetrics
	Gatherer          prometheus.Gatherer
}

// NewRouter creates a chi router with all catalog routes registered.
func NewRouter(h Handlers, cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.RequestLogger(logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Get("/health/live", h.Health.LivenessHandler())
	r.Get("/health/ready", h.Health.ReadinessHandler())

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	middleware.RegisterPprof(r, cfg.PprofAllowedCIDRs, logger)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimit != nil {
			r.Use(cfg.RateLimit)
		}
		r.Use(middleware.ContentTypeJSON)

		r.Route("/categories", h.Categories.Routes)
		r.Route("/products", func(r chi.Router) {
			h.Products.Routes(r)
			r.Get("/{productId}/reviews", h.Reviews.ListByProduct)
		})
		r.Route("/reviews", h.Reviews.Routes)
		r.Route("/shirts", h.Shirts.Routes)
	})

	return r
}
