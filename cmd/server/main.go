package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codersbay-nikhil/json-test/internal/router"
	"github.com/codersbay-nikhil/json-test/pkg/config"
	"github.com/codersbay-nikhil/json-test/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := run(cfg, log, quit); err != nil {
		os.Exit(1)
	}
}

// run serves until a signal arrives on quit or the listener fails. Either way
// the server is shut down and the store connection closed before returning.
func run(cfg *config.Config, log zerolog.Logger, quit <-chan os.Signal) error {
	// A failed connection is not fatal, saves will fail individually
	var (
		db         *config.DB
		connectErr error
	)
	if cfg.StoreDriver == config.StoreMongo {
		db, connectErr = config.InitDB(cfg, log)
		defer db.CloseDB()
	}

	recordRepo, err := router.NewRecordRepository(cfg, db, connectErr)
	if err != nil {
		log.Error().Err(err).Msg("store setup error")
		return err
	}
	e := router.New(cfg, recordRepo, log)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	log.Info().Str("env", cfg.Env).Str("store", cfg.StoreDriver).Msgf("Server is running on port %s", cfg.Port)
	log.Info().Msgf("API endpoint: http://localhost:%s/api/save", cfg.Port)

	var runErr error
	select {
	case <-quit:
		log.Info().Msg("shutting down...")
	case runErr = <-serverErr:
		log.Error().Err(runErr).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	return runErr
}
