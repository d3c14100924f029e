package repo

import (
	"context"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	return projects, r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error
}

func (r *projectRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.Project, error) {
	res := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	return res.RowsAffected > 0, res.Error
}

func (r *projectRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}
