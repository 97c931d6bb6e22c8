package main

//
//  @title           stockpulse API
//  @version         1.0
//  @description     Historical stock price ingestion & statistics service.
//  @termsOfService  https://github.com/guttosm/stockpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/stockpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        manage-data
//  @tag.description CSV upload, asset listing and deletion
//
//  @tag.name        statistics
//  @tag.description Statistic queries over stored prices
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/stockpulse/config"
	_ "github.com/guttosm/stockpulse/docs" // swagger docs
	"github.com/guttosm/stockpulse/internal/app"
	"github.com/guttosm/stockpulse/internal/ingestion"
	"github.com/guttosm/stockpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine, returning the server instance for later shutdown.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and runs the cleanup
// callback when SIGINT or SIGTERM is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the stockpulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API (default).
//   - ingest: Bulk-loads a directory of <TICKER>.csv files.
//
// Flags:
//   - --mode:     Execution mode ("api" or "ingest"). Default: "api".
//   - --dir:      Directory with .csv input files for ingest mode.
//   - --parallel: How many files to process concurrently (0=auto).
//   - --upsert:   Merge rows by (ticker, date) instead of plain insert.
//   - --port:     Port for the API server. Defaults to SERVER_PORT.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or ingest")
	dir := flag.String("dir", "./data/input", "Directory with .csv files")
	parallel := flag.Int("parallel", 0, "How many files to process concurrently (0=auto up to CPU)")
	upsert := flag.Bool("upsert", false, "Merge rows by (ticker, date) instead of inserting unconditionally")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "ingest":
		logger.L().Info().Msg("running bulk load")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := app.MigrateUp(db); err != nil {
			logger.L().Fatal().Err(err).Msg("migration error")
		}

		if err := ingestion.ProcessDirectory(ctx, *dir, db, *parallel, *upsert); err != nil {
			logger.L().Fatal().Err(err).Msg("bulk load failed")
		}
		logger.L().Info().Msg("bulk load completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
