package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/luminark/holdings/internal/app"
	"github.com/luminark/holdings/internal/config"
	"github.com/luminark/holdings/internal/handlers"
	"github.com/luminark/holdings/internal/logger"
	"github.com/luminark/holdings/internal/scheduler"
)

// @title LuminarK Holdings API
// @version 1.0
// @description Personal investment portfolio tracker: investments, transactions, cash, IDR-converted totals, exports and daily backups.
// @host localhost:8080
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zl, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer zl.Sync()

	application, err := app.New(cfg, zl)
	if err != nil {
		zl.Fatal("Failed to initialise application", zap.Error(err))
	}
	defer application.Close()

	if err := application.DB.Health(); err != nil {
		zl.Fatal("Database health check failed", zap.Error(err))
	}
	zl.Info("Database connection established", zap.String("driver", cfg.DB.Driver))

	sched, err := scheduler.New(zl)
	if err != nil {
		zl.Fatal("Failed to create scheduler", zap.Error(err))
	}
	if err := sched.RegisterJobs(cfg.Jobs, application.Dashboard, application.Investments); err != nil {
		zl.Fatal("Failed to register jobs", zap.Error(err))
	}
	sched.Start()
	zl.Info("Scheduler started", zap.Strings("jobs", sched.Jobs()))

	srv := &http.Server{
		Addr: ":" + cfg.Server.Port,
		Handler: handlers.NewRouter(handlers.Dependencies{
			Investments: application.Investments,
			Portfolio:   application.Portfolio,
			Converter:   application.Converter,
			FXProvider:  application.FXProvider,
			Export:      application.Export,
			Dashboard:   application.Dashboard,
			Health:      application.DB,
			Logger:      zl,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("Server shutdown failed", zap.Error(err))
	}
	if err := sched.Stop(); err != nil {
		zl.Error("Scheduler shutdown failed", zap.Error(err))
	}
}
