package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bikepulse/config"
	"github.com/guttosm/bikepulse/internal/api"
	"github.com/guttosm/bikepulse/internal/dataset"
	"github.com/guttosm/bikepulse/internal/logger"
	"github.com/guttosm/bikepulse/internal/service"
	"github.com/guttosm/bikepulse/internal/storage"
)

// warmUpTimeout bounds the startup load; a slow source only delays readiness.
const warmUpTimeout = 30 * time.Second

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the dataset source selected by DATA_SOURCE (CSV file or Postgres table).
//   - Creates the shared dataset loader and warms it once.
//   - Creates the service and HTTP handler layers.
//   - Registers health and readiness probes.
//
// A failed warm-up is logged, not returned: /readyz reports 503 and the
// next query tries the source again.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	loader, svc, cleanup, err := BuildService(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), warmUpTimeout)
	defer cancel()
	if _, err := loader.Load(ctx); err != nil {
		logger.L().Warn().Err(err).Str("source", loader.SourceName()).Msg("dataset warm-up failed")
	}

	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, api.RouterOptions{
		RateLimit:      cfg.Server.RateLimit,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	healthHandler := api.NewHealthHandler(func(ctx context.Context) error {
		_, err := loader.Load(ctx)
		return err
	})
	healthHandler.Register(router)

	return router, cleanup, nil
}

// BuildService wires source, loader and service for cfg. It is shared by
// the API and report modes. The returned cleanup releases the source's
// resources and is never nil on success.
func BuildService(cfg config.Config) (*dataset.Loader, service.RentalService, func(), error) {
	src, cleanup, err := newSource(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	loader := dataset.NewLoader(src)
	return loader, service.NewRentalService(loader), cleanup, nil
}

func newSource(cfg config.Config) (dataset.Source, func(), error) {
	switch cfg.Data.Source {
	case config.SourceCSV, "":
		return dataset.NewFileSource(cfg.Data.File), func() {}, nil

	case config.SourcePostgres:
		// indirection for unit testing
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		repo, err := storage.NewRentalsRepository(db, cfg.Data.Table)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return dataset.NewPostgresSource(repo, cfg.Data.Table), closer(db), nil

	default:
		return nil, nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

func closer(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
