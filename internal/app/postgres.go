package app

import (
	"database/sql"
	"fmt"

	"github.com/guttosm/bikepulse/config"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// InitPostgres opens the database holding the daily rentals table and
// pings it so a bad DSN fails at startup instead of on first query.
//
// Example usage:
//
//	db, err := app.InitPostgres(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("failed to connect: %v", err)
//	}
//	defer db.Close()
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	db, err := sqlOpener("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	// The service only reads one table; a small pool is plenty.
	db.SetMaxOpenConns(4)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// postgresOpener is an indirection used by newSource; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres
