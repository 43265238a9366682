package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uistudio/uistudio-backend/api/controllers"
	"github.com/uistudio/uistudio-backend/api/middleware"
	"github.com/uistudio/uistudio-backend/internal/catalog"
	"github.com/uistudio/uistudio-backend/pkg/config"
	"github.com/uistudio/uistudio-backend/pkg/logger"
	"github.com/uistudio/uistudio-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *catalog.Registry,
	productLister controllers.ProductLister,
	httpMetrics *metrics.HTTPMetrics,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Route("/api/store", func(r chi.Router) {
		r.Get("/products", controllers.StoreProducts(productLister, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/components", controllers.ComponentsList(registry, logg))
		r.Get("/components/{slug}", controllers.ComponentDetail(registry, logg))
		r.Get("/categories", controllers.CategoriesList(registry, logg))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	return r
}
