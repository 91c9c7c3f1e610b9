package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/staffing-directory/internal/api/http"
	"github.com/spec-kit/staffing-directory/internal/api/http/handlers"
	"github.com/spec-kit/staffing-directory/internal/config"
	"github.com/spec-kit/staffing-directory/internal/observability"
	"github.com/spec-kit/staffing-directory/internal/persistence"
	"github.com/spec-kit/staffing-directory/internal/repository"
	"github.com/spec-kit/staffing-directory/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.InitSchema {
		if err := persistence.EnsureSchema(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to ensure schema", zap.Error(err))
		}
	}

	personRepo := repository.NewPersonRepository(pg.PoolHandle())

	peopleService := service.NewPeopleService(personRepo)
	beachService := service.NewBeachService(personRepo)
	documentService := service.NewDocumentService(cfg.Documents.PoliciesDir)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg),
		People:    handlers.NewPeopleHandler(peopleService),
		Beach:     handlers.NewBeachHandler(beachService),
		Documents: handlers.NewDocumentsHandler(documentService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
