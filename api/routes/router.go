package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pharmahub/pharma-backend/api/controllers"
	"github.com/pharmahub/pharma-backend/api/middleware"
	"github.com/pharmahub/pharma-backend/internal/accounts"
	"github.com/pharmahub/pharma-backend/pkg/config"
	"github.com/pharmahub/pharma-backend/pkg/db"
	"github.com/pharmahub/pharma-backend/pkg/logger"
	"github.com/pharmahub/pharma-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	accountsService accounts.Service,
	authMetrics *metrics.AuthMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(authMetrics),
		middleware.CORS(),
	)

	r.Get("/", controllers.Root())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/signup", controllers.AuthSignup(accountsService, authMetrics, logg))
	r.Post("/login", controllers.AuthLogin(accountsService, authMetrics, logg))
	r.Get("/status/{email}", controllers.AccountStatus(accountsService, logg))

	return r
}
