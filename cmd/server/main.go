package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/bootstrap"
	"github.com/fieldtrack-io/fieldtrack/internal/config"
	"github.com/fieldtrack-io/fieldtrack/internal/infra/cache"
	"github.com/fieldtrack-io/fieldtrack/internal/infra/db"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/handler"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/service"
	"github.com/fieldtrack-io/fieldtrack/internal/router"
	"github.com/fieldtrack-io/fieldtrack/internal/telemetry"
)

// @title       FieldTrack API
// @version     1.0
// @description Project tracking backend for oilfield service operations.

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

// @BasePath /api
func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync() //nolint:errcheck

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		if _, err := telemetry.SetupTracing(cfg); err != nil {
			log.Fatal("setup tracing", zap.Error(err))
		}
		if err := db.RegisterOpenTelemetryPlugin(do.MustInvoke[*gorm.DB](inj)); err != nil {
			log.Fatal("register gorm tracing", zap.Error(err))
		}
		if err := cache.RegisterOpenTelemetryPlugin(do.MustInvoke[*redis.Client](inj)); err != nil {
			log.Fatal("register redis tracing", zap.Error(err))
		}
	}

	if err := bootstrap.EnsureSeedUserExists(ctx, inj); err != nil {
		log.Fatal("seed user", zap.Error(err))
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:               cfg,
		Log:                  log,
		AuthService:          do.MustInvoke[service.AuthService](inj),
		AuthHandler:          do.MustInvoke[*handler.AuthHandler](inj),
		ProjectHandler:       do.MustInvoke[*handler.ProjectHandler](inj),
		DailyLogHandler:      do.MustInvoke[*handler.DailyLogHandler](inj),
		DefaultValuesHandler: do.MustInvoke[*handler.DefaultValuesHandler](inj),
		TrackingSheetHandler: do.MustInvoke[*handler.TrackingSheetHandler](inj),
		InputDataHandler:     do.MustInvoke[*handler.InputDataHandler](inj),
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("http shutdown", zap.Error(err))
		}
		if cfg.Telemetry.Enabled {
			if err := telemetry.Shutdown(shutdownCtx); err != nil {
				log.Warn("telemetry shutdown", zap.Error(err))
			}
		}
		return inj.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
