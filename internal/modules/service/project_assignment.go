package service

import (
	"context"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/repo"
	"github.com/google/uuid"
)

type AssignmentService interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.AssignmentWithUser, error)
	// Replace atomically swaps the full assignment set of a project.
	// Every user id must exist or nothing is written.
	Replace(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) ([]model.AssignmentWithUser, error)
	Add(ctx context.Context, projectID, userID uuid.UUID) (*model.ProjectAssignment, error)
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

type assignmentService struct {
	assignments repo.AssignmentRepo
	projects    repo.ProjectRepo
	users       repo.UserRepo
}

func NewAssignmentService(assignments repo.AssignmentRepo, projects repo.ProjectRepo, users repo.UserRepo) AssignmentService {
	return &assignmentService{assignments: assignments, projects: projects, users: users}
}

func (s *assignmentService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.AssignmentWithUser, error) {
	return s.assignments.ListByProject(ctx, projectID)
}

func (s *assignmentService) Replace(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) ([]model.AssignmentWithUser, error) {
	ok, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	unique := dedupe(userIDs)

	// Validate every user id before any write so a bad set leaves the
	// prior assignments fully intact.
	if len(unique) > 0 {
		n, err := s.users.CountByIDs(ctx, unique)
		if err != nil {
			return nil, err
		}
		if n != int64(len(unique)) {
			return nil, ErrInvalidReference
		}
	}

	if err := s.assignments.Replace(ctx, projectID, unique); err != nil {
		return nil, storeErr(err)
	}
	return s.assignments.ListByProject(ctx, projectID)
}

func (s *assignmentService) Add(ctx context.Context, projectID, userID uuid.UUID) (*model.ProjectAssignment, error) {
	a := &model.ProjectAssignment{ProjectID: projectID, UserID: userID}
	if err := s.assignments.Add(ctx, a); err != nil {
		return nil, storeErr(err)
	}
	return a, nil
}

func (s *assignmentService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.assignments.Delete(ctx, id)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
