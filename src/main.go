package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fraudwatch-server/src/api"
	"fraudwatch-server/src/config"
	"fraudwatch-server/src/db"
	store "fraudwatch-server/src/db/sql"
	"fraudwatch-server/src/fraud"
	"fraudwatch-server/src/handlers"
	"fraudwatch-server/src/logger"
)

func main() {
	cfg, err := config.Load()
	log := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	method, err := fraud.ParseMethod(cfg.DefaultOutlierMethod)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DEFAULT_OUTLIER_METHOD")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := db.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}
	defer pool.Close()

	cache, err := db.NewCache(cfg.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("cache init failed")
	}
	defer cache.Close()

	s := store.NewStore(pool, cfg.QueryTimeout)
	router := api.NewRouter(api.Deps{
		Transactions: s,
		Analysts:     s,
		Cache:        cache,
		Log:          log,
		JWTSecret:    []byte(cfg.JWTSecret),
		Origins:      cfg.AllowedOrigins,
		Defaults: handlers.ReportDefaults{
			Method:         method,
			MicroThreshold: cfg.MicroThreshold,
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("default_method", method.String()).Msg("API server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
