package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/bootstrap"
	"github.com/Alaebelamkaddame/content-management/internal/config"
	"github.com/Alaebelamkaddame/content-management/internal/infra/cache"
	"github.com/Alaebelamkaddame/content-management/internal/infra/db"
	"github.com/Alaebelamkaddame/content-management/internal/infra/storage"
	"github.com/Alaebelamkaddame/content-management/internal/modules/handler"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/Alaebelamkaddame/content-management/internal/pkg/token"
	"github.com/Alaebelamkaddame/content-management/internal/router"
	"github.com/Alaebelamkaddame/content-management/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//	@title			Content Calendar API
//	@version		0.0.1
//	@description	Backend for managing projects, content calendars and client review access.
//	@BasePath		/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync()

	if cfg.App.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Fatal("tracing setup failed", zap.Error(err))
	}
	if tp != nil {
		gormDB := do.MustInvoke[*gorm.DB](inj)
		if err := db.RegisterOpenTelemetryPlugin(gormDB); err != nil {
			log.Warn("gorm tracing plugin failed", zap.Error(err))
		}
		rdb := do.MustInvoke[*redis.Client](inj)
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Warn("redis tracing plugin failed", zap.Error(err))
		}
	}

	r := router.NewRouter(router.RouterDeps{
		Config:         cfg,
		Log:            log,
		Tokens:         do.MustInvoke[*token.Manager](inj),
		ClientTokens:   do.MustInvoke[service.ClientTokenService](inj),
		Store:          do.MustInvoke[*storage.LocalStore](inj),
		AuthHandler:    do.MustInvoke[*handler.AuthHandler](inj),
		UserHandler:    do.MustInvoke[*handler.UserHandler](inj),
		ProjectHandler: do.MustInvoke[*handler.ProjectHandler](inj),
		ContentHandler: do.MustInvoke[*handler.ContentHandler](inj),
		ClientHandler:  do.MustInvoke[*handler.ClientHandler](inj),
		UploadHandler:  do.MustInvoke[*handler.UploadHandler](inj),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := telemetry.Shutdown(ctx); err != nil {
		log.Warn("tracer shutdown failed", zap.Error(err))
	}
	if err := inj.Shutdown(); err != nil {
		log.Warn("container shutdown failed", zap.Error(err))
	}
}
