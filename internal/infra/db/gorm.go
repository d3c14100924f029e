package db

import (
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

func New(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Constraint violations come back as gorm.ErrDuplicatedKey /
		// gorm.ErrForeignKeyViolated so the service layer can type them.
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)
	return db, nil
}

// RegisterOpenTelemetryPlugin registers the OpenTelemetry plugin for GORM.
// Call after telemetry.SetupTracing so the global tracer provider is set.
func RegisterOpenTelemetryPlugin(db *gorm.DB) error {
	return db.Use(tracing.NewPlugin())
}
