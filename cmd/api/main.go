package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/maintenance-dashboard/internal/api/http"
	"github.com/spec-kit/maintenance-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/maintenance-dashboard/internal/auth"
	"github.com/spec-kit/maintenance-dashboard/internal/config"
	"github.com/spec-kit/maintenance-dashboard/internal/dashboard"
	"github.com/spec-kit/maintenance-dashboard/internal/events"
	"github.com/spec-kit/maintenance-dashboard/internal/observability"
	"github.com/spec-kit/maintenance-dashboard/internal/persistence"
	"github.com/spec-kit/maintenance-dashboard/internal/repository"
	"github.com/spec-kit/maintenance-dashboard/internal/service"
	"github.com/spec-kit/maintenance-dashboard/internal/source"
	"github.com/spec-kit/maintenance-dashboard/internal/worker"
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

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close() //nolint:errcheck

	var ticketRepo repository.TicketRepository
	if pool := pg.PoolHandle(); pool != nil {
		ticketRepo = repository.NewTicketRepository(pool)
	} else {
		logger.Warn("no database configured; dashboard will serve cached tickets only")
		ticketRepo = repository.NewUnavailableRepository()
	}

	metrics := observability.NewMetrics()
	tickets := source.NewTicketSource(source.Dependencies{
		Repo:       ticketRepo,
		Cache:      redis,
		CacheTTL:   cfg.Dashboard.CacheTTL(),
		Dispatcher: events.NewInMemoryDispatcher(),
		Logger:     logger.Named("tickets"),
	})
	board := dashboard.NewBoard(tickets, cfg.Dashboard.DetailPath)
	defer board.Close()

	refresherDone := worker.StartTicketRefresher(ctx, tickets, cfg.Dashboard.RefreshInterval(), metrics, logger.Named("refresher"))

	var authMiddleware *auth.AuthMiddleware
	if cfg.Auth.Enabled {
		authMiddleware = auth.NewAuthMiddleware(auth.NewTokenValidator(cfg.Auth.JWTSecret))
	} else {
		logger.Warn("authentication disabled; dashboard routes are public")
	}

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
		"postgres": pg,
		"redis":    redis,
		"tickets":  tickets,
	}, metrics)
	dashboardHandler := handlers.NewDashboardHandler(board, service.NewTicketService(service.TicketDependencies{
		Provider:   tickets,
		TicketRepo: ticketRepo,
	}), cfg.Dashboard.DetailPath)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Dashboard:      dashboardHandler,
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	<-refresherDone
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
