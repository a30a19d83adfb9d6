package db

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
	"github.com/pasoapp/paso/logger"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies pending goose migrations before the pool is opened.
// goose works over database/sql, so it opens its own short-lived connection.
func RunMigrations(migrationsDir string) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.ErrorLogger.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to open migration connection: %v", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := goose.Up(conn, migrationsDir); err != nil {
		logger.ErrorLogger.Errorf("Migrations failed: %v", err)
		os.Exit(1)
	}

	logger.InfoLogger.Info("Database migrations up to date.")
}
