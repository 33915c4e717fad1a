package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health
//	GET  /metrics
//	GET  /api/v1/today
//	GET  /api/v1/convert/ethiopic/{date}?era=
//	GET  /api/v1/convert/gregorian/{date}
//	GET  /api/v1/convert/range?start=&end=
//	GET  /api/v1/validate/{ethiopic|gregorian}/{date}
//	GET  /api/v1/leap/{ethiopic|gregorian}/{year}
//	GET  /api/v1/jdn/{ethiopic|gregorian}/{date}
//	GET  /api/v1/jdn/{jdn}?era=
//	GET  /api/v1/eras
//	GET  /api/v1/days/stats
//	POST   /api/v1/admin/days/import    (X-API-Key)
//	DELETE /api/v1/admin/days           (X-API-Key)
func SetupRoutes(h *Handlers, cfg *config.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	baseMiddleware := ChainMiddleware(
		RecoveryMiddleware(log),
		RequestIDMiddleware(),
		LoggingMiddleware(log),
		MetricsMiddleware(h.metrics),
		CORSMiddleware(),
	)
	r.Use(baseMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", h.HealthCheck)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/today", h.GetToday)
		r.Get("/eras", h.ListEras)

		r.Route("/convert", func(r chi.Router) {
			r.Get("/ethiopic/{date}", h.ConvertEthiopic)
			r.Get("/gregorian/{date}", h.ConvertGregorian)
			r.Get("/range", h.ConvertRange)
		})

		r.Route("/validate", func(r chi.Router) {
			r.Get("/ethiopic/{date}", h.ValidateEthiopic)
			r.Get("/gregorian/{date}", h.ValidateGregorian)
		})

		r.Route("/leap", func(r chi.Router) {
			r.Get("/ethiopic/{year}", h.GetEthiopicLeap)
			r.Get("/gregorian/{year}", h.GetGregorianLeap)
		})

		r.Route("/jdn", func(r chi.Router) {
			r.Get("/ethiopic/{date}", h.GetEthiopicJDN)
			r.Get("/gregorian/{date}", h.GetGregorianJDN)
			r.Get("/{jdn}", h.GetDayByJDN)
		})

		r.Get("/days/stats", h.GetDayStats)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, log))
			r.Post("/admin/days/import", h.ImportDays)
			r.Delete("/admin/days", h.PurgeDays)
		})
	})

	return r
}
