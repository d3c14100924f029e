package service

import (
	"context"
	"fmt"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/repo"
	"github.com/google/uuid"
)

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CreateProjectInput carries a caller-assigned id. Optional UserIDs are
// applied as the initial assignment set.
type CreateProjectInput struct {
	ID          uuid.UUID
	Name        string
	Description string
	Archived    bool
	UserIDs     []uuid.UUID
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	Archived    *bool
}

type projectService struct {
	r           repo.ProjectRepo
	assignments AssignmentService
}

func NewProjectService(r repo.ProjectRepo, assignments AssignmentService) ProjectService {
	return &projectService{r: r, assignments: assignments}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.r.List(ctx)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	p, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	if in.ID == uuid.Nil || in.Name == "" {
		return nil, fmt.Errorf("%w: id and name are required", ErrValidation)
	}

	p := &model.Project{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Archived:    in.Archived,
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, storeErr(err)
	}

	if len(in.UserIDs) > 0 {
		if _, err := s.assignments.Replace(ctx, p.ID, in.UserIDs); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Archived != nil {
		fields["archived"] = *in.Archived
	}

	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	p, err := s.r.Update(ctx, id, fields)
	if err != nil {
		return nil, storeErr(err)
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.r.Delete(ctx, id)
}
