package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/protomem/timeclock/internal/database"
	"github.com/protomem/timeclock/internal/env"
	"github.com/protomem/timeclock/internal/tracker"
	"github.com/protomem/timeclock/internal/version"
)

var (
	_cfgFile     = flag.String("cfg", "", "path to config file")
	_showVersion = flag.Bool("version", false, "display version and exit")
)

func main() {
	flag.Parse()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	err := run(logger, level)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

type config struct {
	http struct {
		host           string
		port           int
		readTimeout    time.Duration
		writeTimeout   time.Duration
		idleTimeout    time.Duration
		shutdownPeriod time.Duration
	}
	logLevel string
	db       struct {
		driver      string
		dsn         string
		automigrate bool
		timeout     time.Duration
	}
}

type application struct {
	config  config
	db      *database.DB
	tracker *tracker.Service
	logger  *slog.Logger
}

func loadConfig() (config, error) {
	var cfg config

	if *_cfgFile != "" {
		err := env.Load(*_cfgFile)
		if err != nil {
			return config{}, err
		}
	}

	cfg.http.host = env.GetString("HTTP_HOST", "localhost")
	cfg.http.port = env.GetInt("HTTP_PORT", 8080)
	cfg.http.readTimeout = env.GetDuration("HTTP_READ_TIMEOUT", 5*time.Second)
	cfg.http.writeTimeout = env.GetDuration("HTTP_WRITE_TIMEOUT", 10*time.Second)
	cfg.http.idleTimeout = env.GetDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	cfg.http.shutdownPeriod = env.GetDuration("HTTP_SHUTDOWN_PERIOD", 30*time.Second)
	cfg.logLevel = env.GetString("LOG_LEVEL", "debug")
	cfg.db.driver = env.GetString("DB_DRIVER", "postgres")
	cfg.db.dsn = env.GetString("DB_DSN", "postgres:postgres@localhost:5432/postgres")
	cfg.db.automigrate = env.GetBool("DB_AUTOMIGRATE", true)
	cfg.db.timeout = env.GetDuration("STORE_TIMEOUT", 3*time.Second)

	return cfg, nil
}

func run(logger *slog.Logger, level *slog.LevelVar) error {
	if *_showVersion {
		fmt.Printf("version: %s\n", version.Get())
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level.Set(parseLevel(cfg.logLevel))

	dialect, err := database.ParseDialect(cfg.db.driver)
	if err != nil {
		return err
	}

	db, err := database.New(logger, database.Options{
		Dialect:     dialect,
		DSN:         cfg.db.dsn,
		Automigrate: cfg.db.automigrate,
		Timeout:     cfg.db.timeout,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := newApplication(cfg, db, logger)

	return app.serveHTTP(ctx)
}

func newApplication(cfg config, db *database.DB, logger *slog.Logger) *application {
	store := database.NewTimeRecordStore(logger, db)

	return &application{
		config:  cfg,
		db:      db,
		tracker: tracker.New(logger, store),
		logger:  logger,
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
