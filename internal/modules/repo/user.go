package repo

import (
	"context"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	ListProjects(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	return users, r.db.WithContext(ctx).Order("full_name ASC").Find(&users).Error
}

// Update applies only the given fields and returns the refreshed row.
// Callers pass a non-empty field set; the empty-patch no-op lives in the
// service layer.
func (r *userRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.User, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	return res.RowsAffected > 0, res.Error
}

func (r *userRepo) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id IN ?", ids).Count(&n).Error
	return n, err
}

func (r *userRepo) ListProjects(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN project_assignments pa ON pa.project_id = projects.id").
		Where("pa.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	return projects, err
}
