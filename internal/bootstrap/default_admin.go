package bootstrap

import (
	"context"

	"github.com/Alaebelamkaddame/content-management/internal/config"
	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureDefaultAdminExists creates the initial admin account when the
// service starts with no admin-role user in the store. A blank configured
// password disables seeding so production never boots with a guessable
// account.
func EnsureDefaultAdminExists(ctx context.Context, db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	if cfg.Admin.Password == "" {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).
		Model(&model.User{}).
		Where("role = ?", model.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := service.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := model.User{
		Username:     cfg.Admin.Username,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		FullName:     cfg.Admin.FullName,
		Email:        cfg.Admin.Email,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}

	log.Sugar().Infow("default admin created", "username", admin.Username, "id", admin.ID)
	return nil
}
