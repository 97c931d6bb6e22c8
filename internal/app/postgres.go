package app

import (
	"database/sql"
	"fmt"

	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/db"
	goose "github.com/pressly/goose/v3"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open.
var sqlOpener = sql.Open

// InitPostgres opens a PostgreSQL connection pool using the provided
// configuration and verifies connectivity with a ping.
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)

	conn, err := sqlOpener("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return conn, nil
}

// MigrateUp applies the embedded goose migrations, bringing the schema up
// to date. Safe to run on every startup; already-applied migrations are
// skipped.
func MigrateUp(conn *sql.DB) error {
	goose.SetBaseFS(db.EmbedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// postgresOpener is an indirection used by InitializeApp; overridden in
// tests to avoid real connections.
var postgresOpener = InitPostgres
