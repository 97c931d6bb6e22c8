package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/service"
	"github.com/guttosm/stockpulse/internal/storage"
)

// migrator is an indirection for schema migration; tests override it to
// skip touching a real database.
var migrator = MigrateUp

// InitializeApp sets up all application dependencies and returns a fully
// configured gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL and applies pending migrations.
//   - Initializes the repository, service, and HTTP handler layers.
//   - Configures the gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	if err := migrator(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	repo := storage.NewPricesRepository(db)
	svc := service.NewPriceService(repo)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
