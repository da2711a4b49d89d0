package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mcandidier/workflow/core/config"
	"github.com/mcandidier/workflow/core/db"
	"github.com/mcandidier/workflow/internal/http/handler"
	"github.com/mcandidier/workflow/internal/http/router"
	"github.com/mcandidier/workflow/internal/service"
	"github.com/mcandidier/workflow/internal/store"
	"github.com/mcandidier/workflow/internal/telemetry"
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

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Environment)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			slog.Error("failed to shut down telemetry", "error", err)
		}
	}()

	if err := db.Migrate(cfg.Database); err != nil {
		return err
	}

	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	loc, err := cfg.Feed.Location()
	if err != nil {
		return err
	}

	stores := store.New(pool)

	authService := service.NewAuthService(stores.Users, stores.Sessions)
	feedService := service.NewFeedService(stores.Reports, stores.Events,
		cfg.Feed.MaxPageSize, cfg.Feed.DefaultPageSize)
	notificationService := service.NewNotificationService(stores.Events, stores.Blockers, loc)
	calendarService := service.NewCalendarService(stores.Events, loc)
	projectService := service.NewProjectService(stores.Projects)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware("workflow-api"))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api", handler.AuthRequired(authService))
	router.FeedRouter(api.Group("/feed"), handler.NewFeedHandler(feedService))
	router.NotificationRouter(api.Group("/notifications"), handler.NewNotificationHandler(notificationService))
	router.CalendarRouter(api.Group("/calendar"), handler.NewCalendarHandler(calendarService, loc))
	router.ProjectRouter(api.Group("/projects"), handler.NewProjectHandler(projectService))
	router.AuthRouter(api.Group("/auth"), handler.NewAuthHandler(authService, cfg.IsProduction()))

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "environment", cfg.Environment)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
