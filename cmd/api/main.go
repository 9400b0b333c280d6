package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/mflores-dev/posapi/internal/baas"
	"github.com/mflores-dev/posapi/internal/data"
	"github.com/mflores-dev/posapi/internal/mailer"
	"github.com/mflores-dev/posapi/internal/media"
	"github.com/mflores-dev/posapi/internal/printer"
	"github.com/mflores-dev/posapi/internal/sheets"
)

const version = "v1.0.0"

// Server configuration settings
type config struct {
	port int
	env  string
	db   struct {
		dsn          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	session struct {
		secret string
		ttl    time.Duration
	}
	uploads struct {
		root string
	}
	printer struct {
		baseURL string
	}
	baas struct {
		url string
		key string
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	sheets struct {
		credentialsPath string
		spreadsheetID   string
	}
	cors struct {
		trustedOrigins []string
	}
	rateLimit struct {
		rps     float64
		burst   int
		enabled bool
	}
}

type app struct {
	config        config
	logger        *slog.Logger
	models        data.Models
	media         *media.Store
	printer       *printer.Client
	baas          *baas.Client
	mailer        *mailer.Mailer
	sheetsService *sheets.Service
	wg            sync.WaitGroup
}

func main() {
	cfg := loadConfig()

	logger := setupLogger(cfg)

	db, err := openDB(cfg)
	if err != nil {
		logger.Error("Error opening database connection", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("Database connection pool established")

	store, err := media.NewStore(cfg.uploads.root)
	if err != nil {
		logger.Error("Error resolving uploads root", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &app{
		config:  cfg,
		logger:  logger,
		models:  data.NewModels(db),
		media:   store,
		printer: printer.NewClient(cfg.printer.baseURL),
	}

	if cfg.baas.url != "" {
		app.baas = baas.NewClient(cfg.baas.url, cfg.baas.key)
	}

	if cfg.smtp.host != "" {
		app.mailer = mailer.New(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender)
	}

	if cfg.sheets.credentialsPath != "" {
		client, err := sheets.NewClient(sheets.Config{
			ServiceAccountKeyPath: cfg.sheets.credentialsPath,
			SpreadsheetID:         cfg.sheets.spreadsheetID,
		})
		if err != nil {
			logger.Error("Error configuring Google Sheets client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		app.sheetsService = sheets.NewService(client)
	}

	err = app.serve()
	if err != nil {
		logger.Error("Error starting server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func loadConfig() config {
	// A .env file is convenient in development; a missing one is not an error.
	_ = godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", envInt("PORT", 4000), "API server port")
	flag.StringVar(&cfg.env, "env", env("APP_ENV", "development"), "Environment (development|staging|production)")

	flag.StringVar(&cfg.db.dsn, "db-dsn", env("DB_DSN", ""), "PostgreSQL database connection string")
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", envInt("DB_MAX_OPEN_CONNS", 25), "PostgreSQL max open connections")
	flag.IntVar(&cfg.db.maxIdleConns, "db-max-idle-conns", envInt("DB_MAX_IDLE_CONNS", 25), "PostgreSQL max idle connections")
	flag.DurationVar(&cfg.db.maxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max connection idle time")

	flag.StringVar(&cfg.session.secret, "session-secret", env("JWT_SECRET", ""), "Session token signing secret")
	flag.DurationVar(&cfg.session.ttl, "session-ttl", 24*time.Hour, "Session token lifetime")

	flag.StringVar(&cfg.uploads.root, "uploads-root", env("UPLOADS_ROOT", "./uploads"), "Root directory for served media files")

	flag.StringVar(&cfg.printer.baseURL, "printer-url", env("ESCPOS_PLUGIN_URL", "http://localhost:8000"), "ESC/POS driver service base URL")

	flag.StringVar(&cfg.baas.url, "baas-url", env("BAAS_URL", ""), "Backend-as-a-service project URL")
	flag.StringVar(&cfg.baas.key, "baas-key", env("BAAS_KEY", ""), "Backend-as-a-service API key")

	flag.StringVar(&cfg.smtp.host, "smtp-host", env("SMTP_HOST", ""), "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", envInt("SMTP_PORT", 25), "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", env("SMTP_USERNAME", ""), "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", env("SMTP_PASSWORD", ""), "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", env("SMTP_SENDER", "POS <no-reply@example.com>"), "SMTP sender")

	flag.StringVar(&cfg.sheets.credentialsPath, "sheets-credentials", env("SHEETS_CREDENTIALS", ""), "Google Sheets service account key path")
	flag.StringVar(&cfg.sheets.spreadsheetID, "sheets-spreadsheet-id", env("SHEETS_SPREADSHEET_ID", ""), "Google Sheets spreadsheet ID")

	flag.Float64Var(&cfg.rateLimit.rps, "rate-limit-rps", 5, "Requests per second")
	flag.IntVar(&cfg.rateLimit.burst, "rate-limit-burst", 10, "Burst limit")
	flag.BoolVar(&cfg.rateLimit.enabled, "rate-limit-enabled", false, "Enable rate limiting")

	flag.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.cors.trustedOrigins = append(cfg.cors.trustedOrigins, val)
		return nil
	})
	flag.Parse()

	return cfg
}

func env(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func setupLogger(cfg config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	// Output loaded configuration settings
	logger.Info("Starting server",
		slog.String("version", version),
		slog.String("env", cfg.env),
		slog.Int("port", cfg.port),
		slog.String("uploadsRoot", cfg.uploads.root),
		slog.String("printerURL", cfg.printer.baseURL),
		slog.Bool("rateLimitEnabled", cfg.rateLimit.enabled),
	)

	return logger
}

func openDB(cfg config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.db.maxOpenConns)
	db.SetMaxIdleConns(cfg.db.maxIdleConns)
	db.SetConnMaxIdleTime(cfg.db.maxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
