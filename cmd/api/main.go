package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	conversationsHttp "conversation-funnel-service/internal/conversations/adapters/http/fiber"
	conversationsRepoPg "conversation-funnel-service/internal/conversations/adapters/postgres"
	conversationsUsecase "conversation-funnel-service/internal/conversations/core/usecase"

	funnelHttp "conversation-funnel-service/internal/funnel/adapters/http/fiber"
	funnelRepoPg "conversation-funnel-service/internal/funnel/adapters/postgres"
	funnelUsecase "conversation-funnel-service/internal/funnel/core/usecase"

	"conversation-funnel-service/docs"
	"conversation-funnel-service/internal/config"
	"conversation-funnel-service/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// @title Conversation Funnel Service API
// @version 1.0
// @description Ingests Instagram conversation messages and reports delivery, latency and conversion funnels
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always executes.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Service.Environment, cfg.Service.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	loc, err := cfg.Report.Location()
	if err != nil {
		return err
	}

	log.Info("Starting API service",
		zap.String("port", cfg.Service.APIPort),
		zap.String("timezone", loc.String()))

	// DB connection
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("failed to open postgres: %w", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	// Repositories
	messageRepository := conversationsRepoPg.NewMessageRepository(conversationsRepoPg.NewSQLDB(db))
	if err := messageRepository.EnsureSchema(ctx); err != nil {
		return err
	}
	eventRepository := funnelRepoPg.NewEventRepository(funnelRepoPg.NewSQLDB(db), cfg.Postgres.PageSize)

	// Usecases
	storeMessageUC := conversationsUsecase.NewStoreMessageUseCase(messageRepository, log.Named("conversations"))
	getAggregatesUC := funnelUsecase.NewGetAggregatesUseCase(eventRepository, log.Named("funnel"), funnelUsecase.Options{
		Location:         loc,
		Locale:           cfg.Report.Locale,
		DefaultRangeDays: cfg.Report.DefaultRangeDays,
	})

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(recover.New())

	conversationsHttp.NewMessageHandler(storeMessageUC).Register(app)
	funnelHttp.NewFunnelHandler(getAggregatesUC).Register(app)

	// Swagger
	docs.SwaggerInfo.Host = cfg.Service.Host
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := ":" + cfg.Service.APIPort
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	log.Info("API server started", zap.String("address", addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return fmt.Errorf("fiber stopped: %w", err)
	case <-quit:
	}

	log.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("fiber shutdown: %w", err)
	}

	log.Info("Server exiting")
	return nil
}
