package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/config"
	"github.com/fieldtrack-io/fieldtrack/internal/infra/blob"
	"github.com/fieldtrack-io/fieldtrack/internal/infra/cache"
	"github.com/fieldtrack-io/fieldtrack/internal/infra/db"
	"github.com/fieldtrack-io/fieldtrack/internal/infra/logger"
	mq "github.com/fieldtrack-io/fieldtrack/internal/infra/queue"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/handler"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/repo"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// RabbitMQ publisher; nil when no broker is configured
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		log := do.MustInvoke[*zap.Logger](i)

		var conn *amqp.Connection
		var err error
		useTLS := cfg.RabbitMQ.EnableTLS || strings.HasPrefix(cfg.RabbitMQ.URL, "amqps://")
		if useTLS {
			url := cfg.RabbitMQ.URL
			if strings.HasPrefix(url, "amqp://") {
				url = strings.Replace(url, "amqp://", "amqps://", 1)
			}
			conn, err = amqp.DialTLS(url, &tls.Config{MinVersion: tls.VersionTLS12})
		} else {
			conn, err = amqp.Dial(cfg.RabbitMQ.URL)
		}
		if err != nil {
			return nil, err
		}
		return mq.NewPublisher(conn, log, cfg)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.WellRepo, error) {
		return repo.NewWellRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.DailyLogRepo, error) {
		return repo.NewDailyLogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.WellDefaultsRepo, error) {
		return repo.NewWellDefaultsRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TrackingSheetRepo, error) {
		return repo.NewTrackingSheetRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.InputDataRepo, error) {
		return repo.NewInputDataRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DailyLogService, error) {
		return service.NewDailyLogService(
			do.MustInvoke[repo.DailyLogRepo](i),
			do.MustInvoke[repo.WellRepo](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.WellDefaultsService, error) {
		return service.NewWellDefaultsService(
			do.MustInvoke[repo.WellDefaultsRepo](i),
			do.MustInvoke[repo.WellRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TrackingSheetService, error) {
		return service.NewTrackingSheetService(
			do.MustInvoke[repo.TrackingSheetRepo](i),
			do.MustInvoke[repo.WellRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InputDataService, error) {
		return service.NewInputDataService(
			do.MustInvoke[repo.InputDataRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DailyLogHandler, error) {
		return handler.NewDailyLogHandler(do.MustInvoke[service.DailyLogService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DefaultValuesHandler, error) {
		return handler.NewDefaultValuesHandler(do.MustInvoke[service.WellDefaultsService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TrackingSheetHandler, error) {
		return handler.NewTrackingSheetHandler(do.MustInvoke[service.TrackingSheetService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.InputDataHandler, error) {
		return handler.NewInputDataHandler(do.MustInvoke[service.InputDataService](i)), nil
	})

	return inj
}
