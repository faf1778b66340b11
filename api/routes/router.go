package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MRevitt/BobsUsedBooks/api/middleware"
	"github.com/MRevitt/BobsUsedBooks/api/responses"
	"github.com/MRevitt/BobsUsedBooks/pkg/db"
	pkgerrors "github.com/MRevitt/BobsUsedBooks/pkg/errors"
	"github.com/MRevitt/BobsUsedBooks/pkg/logger"
)

// NewRouter serves the operational surface: liveness, readiness and metrics.
// Storefront request handling lives outside this process boundary.
func NewRouter(logg *logger.Logger, dbP db.Pinger, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := dbP.Ping(req.Context()); err != nil {
			responses.WriteError(req.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
