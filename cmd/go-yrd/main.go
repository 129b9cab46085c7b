package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lmittmann/tint"

	httpapi "github.com/eikland/go-yr/internal/api/http"
	"github.com/eikland/go-yr/internal/config"
	"github.com/eikland/go-yr/internal/scheduler"
	"github.com/eikland/go-yr/internal/service"
	"github.com/eikland/go-yr/internal/store"
	"github.com/eikland/go-yr/yr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(log)

	// Shared HTTP client for outbound fetches.
	httpClient := &http.Client{Timeout: 30 * time.Second}

	client, err := yr.NewClient(cfg.CacheDir,
		yr.WithHTTPClient(httpClient),
		yr.WithCacheTTL(cfg.CacheTTL),
		yr.WithLanguage(cfg.Language),
	)
	if err != nil {
		log.Error("failed to create yr client", "error", err)
		os.Exit(1)
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	svc := service.New(client, memStore, log)

	// Scheduler that keeps the configured places refreshed.
	sched := scheduler.New(cfg.Places, cfg.FetchInterval, svc, log)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "go-yrd",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "go-yrd",
		})
	})

	httpapi.RegisterRoutes(app, svc)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", "error", err)
		}
	}()
	log.Info("listening", "port", cfg.Port, "places", cfg.Places)

	// Wait for termination signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "error", err)
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
