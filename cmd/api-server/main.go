package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jacksonlmp/taskflow/core/config"
	"github.com/jacksonlmp/taskflow/core/db"
	"github.com/jacksonlmp/taskflow/core/observability"
	"github.com/jacksonlmp/taskflow/internal/http/handler"
	"github.com/jacksonlmp/taskflow/internal/http/middleware"
	"github.com/jacksonlmp/taskflow/internal/http/router"
	"github.com/jacksonlmp/taskflow/internal/service"
	"github.com/jacksonlmp/taskflow/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdownObs, err := observability.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownObs(shutdownCtx); err != nil {
			slog.Error("shutting down observability", "error", err)
		}
	}()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	stores := store.New(pool)

	authService := service.NewAuthService(stores.Users(), stores.Sessions())
	orgService := service.NewOrganizationService(stores, stores)
	taskService := service.NewTaskService(stores)
	profileService := service.NewProfileService(stores)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(
		handler.NewAuthHandler(authService, cfg.IsProduction()),
		handler.NewOrganizationHandler(orgService),
		handler.NewTaskHandler(taskService),
		handler.NewProfileHandler(profileService),
		middleware.RequireAuth(authService),
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
