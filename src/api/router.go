package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"fraudwatch-server/src/handlers"
	"fraudwatch-server/src/middleware"
)

type Deps struct {
	Transactions handlers.TransactionSource
	Analysts     handlers.AnalystStore
	Cache        handlers.LookupCache
	Log          zerolog.Logger
	JWTSecret    []byte
	Origins      []string
	Defaults     handlers.ReportDefaults
}

func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORSMiddleware(d.Origins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(d.Analysts, d.JWTSecret))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(d.JWTSecret)).Group(func(r chi.Router) {
			// Filters
			r.Get("/cardholders", handlers.GetCardholders(d.Transactions, d.Cache))
			r.Get("/cardholders/{cardholder_id}/date-range", handlers.GetDateRange(d.Transactions, d.Cache))

			// Report
			r.Get("/report", handlers.GetReport(d.Transactions, d.Cache, d.Defaults))
			r.Get("/report/outliers", handlers.GetOutliers(d.Transactions, d.Defaults))
			r.Get("/report/early-hours", handlers.GetEarlyHours(d.Transactions, d.Defaults))
			r.Get("/report/micro", handlers.GetMicroTransactions(d.Transactions, d.Defaults))
			r.Get("/report/export.csv", handlers.ExportSuspiciousCSV(d.Transactions, d.Defaults))
		})

		// Super Admin Routes
		r.With(middleware.JWTAuthMiddleware(d.JWTSecret), middleware.SuperAdminMiddleware).Group(func(r chi.Router) {
			r.Post("/admin/analysts", handlers.CreateAnalyst(d.Analysts))
			r.Post("/admin/cache/clear/{cache_name}", handlers.ClearCache(d.Cache))
		})
	})

	return r
}
