// File: cmd/migrate/main.go
// Description: maintenance command that applies the database schema.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	var (
		dsn  string
		path string
	)
	flag.StringVar(&dsn, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL database connection string")
	flag.StringVar(&path, "schema", "migrations/schema.sql", "Path to the schema file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if dsn == "" {
		logger.Error("No database connection string provided")
		os.Exit(1)
	}

	schema, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Error reading schema file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Error("Error opening database connection", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("Error connecting to database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The schema is idempotent, so running it on an existing database is safe.
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		logger.Error("Error applying schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Schema applied", slog.String("schema", path))
}
