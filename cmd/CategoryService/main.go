package main

import (
	"context"
	"errors"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sebuszqo/CategoryService/internal/auth"
	"github.com/sebuszqo/CategoryService/internal/category/application"
	"github.com/sebuszqo/CategoryService/internal/category/domain"
	"github.com/sebuszqo/CategoryService/internal/category/infrastructure"
	"github.com/sebuszqo/CategoryService/internal/category/interfaces"
	"github.com/sebuszqo/CategoryService/internal/config"
	database "github.com/sebuszqo/CategoryService/internal/db"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type storage interface {
	healthChecker
	Close() error
}

func openStorage(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (storage, domain.CategoryRepository, error) {
	if cfg.DBDriver == config.DriverSQLite {
		dbService, err := database.NewSQLiteService(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		repo := infrastructure.NewGormCategoryRepository(dbService.DB)
		if err := repo.Migrate(); err != nil {
			dbService.Close()
			return nil, nil, err
		}
		return dbService, repo, nil
	}

	dbService, err := database.NewDBService(cfg.DBConnectionString, logger)
	if err != nil {
		return nil, nil, err
	}
	repo := infrastructure.NewCategoryRepository(dbService.DB)
	if err := repo.EnsureSchema(ctx); err != nil {
		dbService.Close()
		return nil, nil, err
	}
	return dbService, repo, nil
}

// StartHealthScheduler logs the database health on the configured cron schedule.
func StartHealthScheduler(schedule string, db healthChecker, logger *logrus.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		stats := db.Health()
		if stats["status"] != "up" {
			logger.WithField("error", stats["error"]).Error("Database health check failed")
			return
		}
		logger.WithFields(logrus.Fields{
			"open_connections": stats["open_connections"],
			"in_use":           stats["in_use"],
			"idle":             stats["idle"],
		}).Debug("Database is healthy")
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Missing configuration, update to start server: %v", err)
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbService, categoryRepo, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	var authMiddleware func(http.Handler) http.Handler
	if cfg.AuthEnabled() {
		jwtManager, err := auth.NewJWTManager(cfg.JWTSecret)
		if err != nil {
			logger.Fatalf("Could not initialize JWT manager: %v", err)
		}
		authMiddleware = auth.JWTAccessTokenMiddleware(jwtManager)
		logger.Info("Bearer token authentication enabled")
	} else {
		logger.Warn("JWT_SECRET not set, category routes are not authenticated")
	}

	categoryService := application.NewCategoryService(categoryRepo, logger)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondText)

	server := NewServer(categoryHandler, dbService, authMiddleware, cfg.LegacyRoutes)
	server.RegisterRoutes()

	if cfg.HealthCheckSchedule != "" {
		scheduler, err := StartHealthScheduler(cfg.HealthCheckSchedule, dbService, logger)
		if err != nil {
			logger.Fatalf("Scheduler didn't start, stopping the app: %v", err)
		}
		defer scheduler.Stop()
	}

	if cfg.PprofAddr != "" {
		logger.Infof("Starting pprof on %s...", cfg.PprofAddr)
		go func() {
			logger.Println(http.ListenAndServe(cfg.PprofAddr, nil))
		}()
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           loggingMiddleware(logger, server),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s...", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
