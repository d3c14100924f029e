package service

import (
	"context"
	"testing"
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockContentItemRepo is a mock implementation of repo.ContentItemRepo
type MockContentItemRepo struct {
	mock.Mock
}

func (m *MockContentItemRepo) Create(ctx context.Context, item *model.ContentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockContentItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ContentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentItem), args.Error(1)
}

func (m *MockContentItemRepo) List(ctx context.Context, projectID *uuid.UUID) ([]model.ContentItem, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentItem), args.Error(1)
}

func (m *MockContentItemRepo) ListRange(ctx context.Context, start, end time.Time, projectID *uuid.UUID) ([]model.ContentItem, error) {
	args := m.Called(ctx, start, end, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentItem), args.Error(1)
}

func (m *MockContentItemRepo) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]model.ContentItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContentItem), args.Error(1)
}

func (m *MockContentItemRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*model.ContentItem, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentItem), args.Error(1)
}

func (m *MockContentItemRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, body any) error {
	args := m.Called(ctx, routingKey, body)
	return args.Error(0)
}

func TestContentService_Create(t *testing.T) {
	projectID := uuid.New()
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("defaults status to idea and publishes the created event", func(t *testing.T) {
		repo := &MockContentItemRepo{}
		repo.On("Create", mock.Anything, mock.MatchedBy(func(item *model.ContentItem) bool {
			return item.Status == model.ContentStatusIdea &&
				item.Platforms != nil && item.Assets != nil
		})).Return(nil)

		events := &MockPublisher{}
		events.On("PublishJSON", mock.Anything, "content.created", mock.MatchedBy(func(body any) bool {
			ev, ok := body.(ContentEvent)
			return ok && ev.Event == "content.created" && ev.ProjectID == projectID
		})).Return(nil)

		svc := NewContentService(repo, events, zap.NewNop())
		item, err := svc.Create(context.Background(), CreateContentInput{
			ProjectID: projectID,
			Type:      model.ContentTypePost,
			StartDate: start,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.ContentStatusIdea, item.Status)
		repo.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		repo := &MockContentItemRepo{}

		svc := NewContentService(repo, nil, zap.NewNop())
		_, err := svc.Create(context.Background(), CreateContentInput{ProjectID: projectID})

		assert.ErrorIs(t, err, ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("a failing broker does not fail the write", func(t *testing.T) {
		repo := &MockContentItemRepo{}
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		events := &MockPublisher{}
		events.On("PublishJSON", mock.Anything, "content.created", mock.Anything).
			Return(assert.AnError)

		svc := NewContentService(repo, events, zap.NewNop())
		_, err := svc.Create(context.Background(), CreateContentInput{
			ProjectID: projectID,
			Type:      model.ContentTypeReel,
			StartDate: start,
		})

		assert.NoError(t, err)
	})

	t.Run("unknown project maps to an invalid reference", func(t *testing.T) {
		repo := &MockContentItemRepo{}
		repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrForeignKeyViolated)

		svc := NewContentService(repo, nil, zap.NewNop())
		_, err := svc.Create(context.Background(), CreateContentInput{
			ProjectID: projectID,
			Type:      model.ContentTypePost,
			StartDate: start,
		})

		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestContentService_Update(t *testing.T) {
	itemID := uuid.New()

	t.Run("empty patch returns the current row without writing", func(t *testing.T) {
		repo := &MockContentItemRepo{}
		current := &model.ContentItem{ID: itemID, Title: "launch teaser"}
		repo.On("GetByID", mock.Anything, itemID).Return(current, nil)

		svc := NewContentService(repo, nil, zap.NewNop())
		item, err := svc.Update(context.Background(), itemID, UpdateContentInput{})

		assert.NoError(t, err)
		assert.Equal(t, current, item)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("clearing the assignee writes an explicit null", func(t *testing.T) {
		repo := &MockContentItemRepo{}
		updated := &model.ContentItem{ID: itemID}
		repo.On("Update", mock.Anything, itemID, map[string]any{"assignee_id": nil}).Return(updated, nil)

		svc := NewContentService(repo, nil, zap.NewNop())
		_, err := svc.Update(context.Background(), itemID, UpdateContentInput{ClearAssignee: true})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestContentService_Delete(t *testing.T) {
	itemID := uuid.New()

	t.Run("publishes only when a row was actually removed", func(t *testing.T) {
		repo := &MockContentItemRepo{}
		repo.On("Delete", mock.Anything, itemID).Return(false, nil)
		events := &MockPublisher{}

		svc := NewContentService(repo, events, zap.NewNop())
		deleted, err := svc.Delete(context.Background(), itemID)

		assert.NoError(t, err)
		assert.False(t, deleted)
		events.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestContentService_UpdateClientNotes(t *testing.T) {
	projectID := uuid.New()
	itemID := uuid.New()

	t.Run("writes notes_client only", func(t *testing.T) {
		repo := &MockContentItemRepo{}
		repo.On("GetByID", mock.Anything, itemID).
			Return(&model.ContentItem{ID: itemID, ProjectID: projectID}, nil)
		repo.On("Update", mock.Anything, itemID, map[string]any{"notes_client": "looks great"}).
			Return(&model.ContentItem{ID: itemID, ProjectID: projectID, NotesClient: "looks great"}, nil)

		svc := NewContentService(repo, nil, zap.NewNop())
		item, err := svc.UpdateClientNotes(context.Background(), projectID, itemID, "looks great")

		assert.NoError(t, err)
		assert.Equal(t, "looks great", item.NotesClient)
		repo.AssertExpectations(t)
	})

	t.Run("an item in another project reads as not found", func(t *testing.T) {
		repo := &MockContentItemRepo{}
		repo.On("GetByID", mock.Anything, itemID).
			Return(&model.ContentItem{ID: itemID, ProjectID: uuid.New()}, nil)

		svc := NewContentService(repo, nil, zap.NewNop())
		_, err := svc.UpdateClientNotes(context.Background(), projectID, itemID, "hi")

		assert.ErrorIs(t, err, ErrNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
