package repo

import (
	"context"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientTokenRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.ClientToken, error)
	GetByProject(ctx context.Context, projectID uuid.UUID) (*model.ClientToken, error)
	GetByToken(ctx context.Context, token string) (*model.ClientToken, error)
	// Rotate deletes any prior rows for the project and inserts the new
	// token in one transaction, keeping at most one active row per project.
	Rotate(ctx context.Context, projectID uuid.UUID, token string) (*model.ClientToken, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type clientTokenRepo struct{ db *gorm.DB }

func NewClientTokenRepo(db *gorm.DB) ClientTokenRepo {
	return &clientTokenRepo{db: db}
}

func (r *clientTokenRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ClientToken, error) {
	var ct model.ClientToken
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ct).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *clientTokenRepo) GetByProject(ctx context.Context, projectID uuid.UUID) (*model.ClientToken, error) {
	var ct model.ClientToken
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		First(&ct).Error
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *clientTokenRepo) GetByToken(ctx context.Context, token string) (*model.ClientToken, error) {
	var ct model.ClientToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&ct).Error; err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *clientTokenRepo) Rotate(ctx context.Context, projectID uuid.UUID, token string) (*model.ClientToken, error) {
	ct := &model.ClientToken{ProjectID: projectID, Token: token}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.ClientToken{}).Error; err != nil {
			return err
		}
		return tx.Create(ct).Error
	})
	if err != nil {
		return nil, err
	}
	return ct, nil
}

func (r *clientTokenRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ClientToken{})
	return res.RowsAffected > 0, res.Error
}
