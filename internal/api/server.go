package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/config"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/database"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

// NewServer builds the HTTP server for cfg on top of an open database.
func NewServer(db *database.DB, cfg *config.Config, log *slog.Logger) *http.Server {
	handlers := NewHandlers(db, cfg, log, metrics.NewCollector("ethcal"))

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           SetupRoutes(handlers, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Serve opens and migrates the database, then serves HTTP until ctx is
// canceled, shutting down gracefully.
func Serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	srv := NewServer(db, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
