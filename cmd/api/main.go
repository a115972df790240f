package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/adapter/handler"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/adapter/middleware"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/adapter/storage"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/config"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/notifications"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/transfer"
	"github.com/lakshmi-suryawanshi31/amount-transfer-service/internal/core/worker"
)

func main() {
	// 1. Load Config
	cfg := config.LoadConfig()

	// 2. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Pick the account store: Postgres when DATABASE_URL is set,
	// otherwise the in-memory store.
	var store storage.AccountStore
	var dbPool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		dbPool, err = storage.ConnectDB(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("❌ Database connection failed", "error", err)
			os.Exit(1)
		}
		store = storage.NewPostgresStore(dbPool)
		slog.Info("✅ Using Postgres account store")
	} else {
		store = storage.NewMemoryStore()
		slog.Info("Using in-memory account store")
	}

	// 4. Notification pipeline: webhook client behind an async dispatcher.
	webhook := notifications.NewWebhookClient(cfg.WebhookURL)
	dispatcher := worker.NewDispatcher(webhook, 256)
	dispatcher.Start()

	// 5. Core transfer service and handlers.
	transferService := transfer.NewService(store, dispatcher, cfg.LockTimeout)
	accountHandler := &handler.AccountHandler{Store: store}
	transferHandler := &handler.TransferHandler{Service: transferService}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 7. Routes
	api := app.Group("/v1")
	api.Post("/accounts", accountHandler.CreateAccount)
	api.Get("/accounts/:id", accountHandler.GetAccount)

	idempotency := middleware.NewIdempotencyStore(10 * time.Minute)
	api.Post("/accounts/amount-transfer",
		middleware.Idempotency(idempotency), transferHandler.AmountTransfer)

	// 8. Graceful shutdown: stop accepting requests, then drain the
	// notification queue and close the pool.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("🚀 Server starting", "env", cfg.Env, "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("🛑 Shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	dispatcher.Stop()
	slog.Info("✅ Notification queue drained")

	if dbPool != nil {
		dbPool.Close()
		slog.Info("✅ Database connection closed")
	}

	slog.Info("👋 Server exited successfully")
}
