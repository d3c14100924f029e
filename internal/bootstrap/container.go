package bootstrap

import (
	"context"
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/config"
	"github.com/Alaebelamkaddame/content-management/internal/infra/cache"
	"github.com/Alaebelamkaddame/content-management/internal/infra/db"
	"github.com/Alaebelamkaddame/content-management/internal/infra/logger"
	mq "github.com/Alaebelamkaddame/content-management/internal/infra/queue"
	"github.com/Alaebelamkaddame/content-management/internal/infra/storage"
	"github.com/Alaebelamkaddame/content-management/internal/modules/handler"
	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/repo"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/Alaebelamkaddame/content-management/internal/pkg/token"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
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
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}

		if cfg.Database.AutoMigrate {
			if err := d.AutoMigrate(
				&model.User{},
				&model.Project{},
				&model.ProjectAssignment{},
				&model.ContentItem{},
				&model.ClientToken{},
			); err != nil {
				return nil, err
			}
		}

		if err := EnsureDefaultAdminExists(context.Background(), d, cfg, log); err != nil {
			return nil, err
		}

		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// RabbitMQ connection and publisher, both optional
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.RabbitMQ.Enabled {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.RabbitMQ.Enabled {
			return nil, nil
		}
		conn := do.MustInvoke[*amqp.Connection](i)
		log := do.MustInvoke[*zap.Logger](i)
		return mq.NewPublisher(conn, cfg.RabbitMQ.Exchange, log)
	})

	// upload storage
	do.Provide(inj, func(i *do.Injector) (*storage.LocalStore, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return storage.NewLocalStore(cfg.Upload.Dir)
	})

	// token manager
	do.Provide(inj, func(i *do.Injector) (*token.Manager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return token.NewManager(
			cfg.JWT.Secret,
			time.Duration(cfg.JWT.SessionTTLHours)*time.Hour,
			time.Duration(cfg.JWT.ClientTTLDays)*24*time.Hour,
		), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AssignmentRepo, error) {
		return repo.NewAssignmentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ContentItemRepo, error) {
		return repo.NewContentItemRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ClientTokenRepo, error) {
		return repo.NewClientTokenRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*token.Manager](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(do.MustInvoke[repo.UserRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AssignmentService, error) {
		return service.NewAssignmentService(
			do.MustInvoke[repo.AssignmentRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.UserRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.AssignmentService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ContentService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		// a nil interface disables event publishing entirely
		var events service.EventPublisher
		if cfg.RabbitMQ.Enabled {
			events = do.MustInvoke[*mq.Publisher](i)
		}
		return service.NewContentService(
			do.MustInvoke[repo.ContentItemRepo](i),
			events,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ClientTokenService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewClientTokenService(
			do.MustInvoke[repo.ClientTokenRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*token.Manager](i),
			do.MustInvoke[*redis.Client](i),
			time.Duration(cfg.Redis.ClientTokenTTLSec)*time.Second,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.AssignmentService](i),
			do.MustInvoke[service.ClientTokenService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ContentHandler, error) {
		return handler.NewContentHandler(
			do.MustInvoke[service.ContentService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ClientHandler, error) {
		return handler.NewClientHandler(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.ContentService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UploadHandler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return handler.NewUploadHandler(
			do.MustInvoke[*storage.LocalStore](i),
			cfg.Upload,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	return inj
}
