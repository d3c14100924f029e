package repo

import (
	"context"
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentItemRepo interface {
	Create(ctx context.Context, item *model.ContentItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ContentItem, error)
	List(ctx context.Context, projectID *uuid.UUID) ([]model.ContentItem, error)
	ListRange(ctx context.Context, start, end time.Time, projectID *uuid.UUID) ([]model.ContentItem, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]model.ContentItem, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.ContentItem, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type contentItemRepo struct{ db *gorm.DB }

func NewContentItemRepo(db *gorm.DB) ContentItemRepo {
	return &contentItemRepo{db: db}
}

func (r *contentItemRepo) Create(ctx context.Context, item *model.ContentItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *contentItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ContentItem, error) {
	var item model.ContentItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *contentItemRepo) List(ctx context.Context, projectID *uuid.UUID) ([]model.ContentItem, error) {
	q := r.db.WithContext(ctx)
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var items []model.ContentItem
	return items, q.Order("start_date DESC").Find(&items).Error
}

func (r *contentItemRepo) ListRange(ctx context.Context, start, end time.Time, projectID *uuid.UUID) ([]model.ContentItem, error) {
	q := r.db.WithContext(ctx).Where("start_date >= ? AND start_date <= ?", start, end)
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var items []model.ContentItem
	return items, q.Order("start_date ASC").Find(&items).Error
}

func (r *contentItemRepo) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]model.ContentItem, error) {
	var items []model.ContentItem
	return items, r.db.WithContext(ctx).
		Where("assignee_id = ?", userID).
		Order("start_date DESC").
		Find(&items).Error
}

func (r *contentItemRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.ContentItem, error) {
	res := r.db.WithContext(ctx).Model(&model.ContentItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *contentItemRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContentItem{})
	return res.RowsAffected > 0, res.Error
}
