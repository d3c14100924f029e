package repo

import (
	"context"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepo interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.AssignmentWithUser, error)
	Replace(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error
	Add(ctx context.Context, a *model.ProjectAssignment) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type assignmentRepo struct{ db *gorm.DB }

func NewAssignmentRepo(db *gorm.DB) AssignmentRepo {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.AssignmentWithUser, error) {
	var assignments []model.ProjectAssignment
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	out := make([]model.AssignmentWithUser, 0, len(assignments))
	if len(assignments) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.UserID)
	}

	var users []model.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, a := range assignments {
		u := byID[a.UserID]
		out = append(out, model.AssignmentWithUser{
			ProjectAssignment: a,
			User: model.UserSummary{
				ID:        u.ID,
				Username:  u.Username,
				FullName:  u.FullName,
				AvatarURL: u.AvatarURL,
				Role:      u.Role,
			},
		})
	}
	return out, nil
}

// Replace swaps the full assignment set for a project in one transaction.
// A failure mid-insert rolls back to the prior set.
func (r *assignmentRepo) Replace(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&model.ProjectAssignment{}).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}
		rows := make([]model.ProjectAssignment, 0, len(userIDs))
		for _, uid := range userIDs {
			rows = append(rows, model.ProjectAssignment{ProjectID: projectID, UserID: uid})
		}
		return tx.Create(&rows).Error
	})
}

func (r *assignmentRepo) Add(ctx context.Context, a *model.ProjectAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assignmentRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectAssignment{})
	return res.RowsAffected > 0, res.Error
}
