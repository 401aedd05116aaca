package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/cache"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/config"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/database"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/logging"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/seed"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/server"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/store"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the HTTP API",
		Action:  serve,
	}
}

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the database schema",
		Action: func(c *cli.Context) error {
			db, err := openDatabase(config.Load())
			if err != nil {
				return err
			}
			defer database.Close(db)
			slog.Info("migration complete")
			return nil
		},
	}
}

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Replace all data with the demo dataset",
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			rdb, err := database.OpenRedis(c.Context, cfg.RedisURL)
			if err != nil {
				return fmt.Errorf("redis connection failed: %w", err)
			}
			if rdb != nil {
				defer rdb.Close()
			}
			tallies := cache.NewTallyCache(rdb, cfg.SpamTallyCacheTTL)

			if err := seed.Run(c.Context, store.NewGormStore(db), tallies); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			slog.Info("seeding finished")
			return nil
		},
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBPassword == "" {
		return nil, errors.New("DB_PASSWORD environment variable is required")
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func serve(c *cli.Context) error {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewJSONHandler(os.Stdout),
		pgLogHandler,
	)))

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()
	logging.StartCleanup(ctx, db, cfg.LogRetentionDays)

	rdb, err := database.OpenRedis(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
		slog.Info("spam tally cache enabled", "ttl", cfg.SpamTallyCacheTTL.String())
	}

	var extra []fiber.Handler
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
			extra = append(extra, sentryfiber.New(sentryfiber.Options{
				Repanic:         true,
				WaitForDelivery: false,
			}))
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := server.New(cfg, server.Deps{
		Store:      store.NewGormStore(db),
		Tallies:    cache.NewTallyCache(rdb, cfg.SpamTallyCacheTTL),
		Registry:   reg,
		Middleware: extra,
		AccessLog:  true,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-listenErr:
		pgLogHandler.Stop()
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}
	slog.Info("shutting down server...")
	cancel()

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	pgLogHandler.Stop()

	slog.Info("server stopped")
	return nil
}
