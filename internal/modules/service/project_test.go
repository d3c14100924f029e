package service

import (
	"context"
	"testing"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockAssignmentService is a mock implementation of AssignmentService
type MockAssignmentService struct {
	mock.Mock
}

func (m *MockAssignmentService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.AssignmentWithUser, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AssignmentWithUser), args.Error(1)
}

func (m *MockAssignmentService) Replace(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) ([]model.AssignmentWithUser, error) {
	args := m.Called(ctx, projectID, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AssignmentWithUser), args.Error(1)
}

func (m *MockAssignmentService) Add(ctx context.Context, projectID, userID uuid.UUID) (*model.ProjectAssignment, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectAssignment), args.Error(1)
}

func (m *MockAssignmentService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestProjectService_Create(t *testing.T) {
	projectID := uuid.New()

	t.Run("requires a caller-assigned id and a name", func(t *testing.T) {
		repo := &MockProjectRepo{}
		svc := NewProjectService(repo, &MockAssignmentService{})

		_, err := svc.Create(context.Background(), CreateProjectInput{Name: "Spring Campaign"})
		assert.ErrorIs(t, err, ErrValidation)

		_, err = svc.Create(context.Background(), CreateProjectInput{ID: projectID})
		assert.ErrorIs(t, err, ErrValidation)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("applies the initial assignment set after creating", func(t *testing.T) {
		userID := uuid.New()
		repo := &MockProjectRepo{}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
			return p.ID == projectID && p.Name == "Spring Campaign"
		})).Return(nil)
		assignments := &MockAssignmentService{}
		assignments.On("Replace", mock.Anything, projectID, []uuid.UUID{userID}).
			Return([]model.AssignmentWithUser{}, nil)

		svc := NewProjectService(repo, assignments)
		p, err := svc.Create(context.Background(), CreateProjectInput{
			ID:      projectID,
			Name:    "Spring Campaign",
			UserIDs: []uuid.UUID{userID},
		})

		assert.NoError(t, err)
		assert.Equal(t, projectID, p.ID)
		assignments.AssertExpectations(t)
	})

	t.Run("duplicate id maps to a conflict", func(t *testing.T) {
		repo := &MockProjectRepo{}
		repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		svc := NewProjectService(repo, &MockAssignmentService{})
		_, err := svc.Create(context.Background(), CreateProjectInput{ID: projectID, Name: "Dup"})

		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestProjectService_Update(t *testing.T) {
	projectID := uuid.New()

	t.Run("empty patch returns the current row without writing", func(t *testing.T) {
		repo := &MockProjectRepo{}
		current := &model.Project{ID: projectID, Name: "Spring Campaign"}
		repo.On("GetByID", mock.Anything, projectID).Return(current, nil)

		svc := NewProjectService(repo, &MockAssignmentService{})
		p, err := svc.Update(context.Background(), projectID, UpdateProjectInput{})

		assert.NoError(t, err)
		assert.Equal(t, current, p)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("archive flag round-trips through the field map", func(t *testing.T) {
		repo := &MockProjectRepo{}
		archived := true
		repo.On("Update", mock.Anything, projectID, map[string]any{"archived": true}).
			Return(&model.Project{ID: projectID, Archived: true}, nil)

		svc := NewProjectService(repo, &MockAssignmentService{})
		p, err := svc.Update(context.Background(), projectID, UpdateProjectInput{Archived: &archived})

		assert.NoError(t, err)
		assert.True(t, p.Archived)
	})
}
