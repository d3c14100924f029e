package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/modules/model"
	"github.com/Alaebelamkaddame/content-management/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// EventPublisher is the seam for the message broker; nil disables events.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, body any) error
}

// ContentEvent is the payload published on content lifecycle changes.
type ContentEvent struct {
	Event     string              `json:"event"`
	ItemID    uuid.UUID           `json:"item_id"`
	ProjectID uuid.UUID           `json:"project_id"`
	Status    model.ContentStatus `json:"status"`
	At        time.Time           `json:"at"`
}

type ContentService interface {
	List(ctx context.Context, projectID *uuid.UUID) ([]model.ContentItem, error)
	ListRange(ctx context.Context, start, end time.Time, projectID *uuid.UUID) ([]model.ContentItem, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]model.ContentItem, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ContentItem, error)
	Create(ctx context.Context, in CreateContentInput) (*model.ContentItem, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateContentInput) (*model.ContentItem, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// UpdateClientNotes writes notes_client only, and only when the item
	// belongs to the given project. Used by the client-view surface.
	UpdateClientNotes(ctx context.Context, projectID, id uuid.UUID, notes string) (*model.ContentItem, error)
}

type CreateContentInput struct {
	ProjectID     uuid.UUID
	Title         string
	Caption       string
	Type          model.ContentType
	Platforms     []string
	Status        model.ContentStatus
	AssigneeID    *uuid.UUID
	StartDate     time.Time
	EndDate       *time.Time
	Assets        []string
	NotesInternal string
	NotesClient   string
}

// UpdateContentInput is a patch: only non-nil fields are written.
type UpdateContentInput struct {
	Title         *string
	Caption       *string
	Type          *model.ContentType
	Platforms     *[]string
	Status        *model.ContentStatus
	AssigneeID    *uuid.UUID
	ClearAssignee bool
	StartDate     *time.Time
	EndDate       *time.Time
	ClearEndDate  bool
	Assets        *[]string
	NotesInternal *string
	NotesClient   *string
}

type contentService struct {
	r      repo.ContentItemRepo
	events EventPublisher
	log    *zap.Logger
}

func NewContentService(r repo.ContentItemRepo, events EventPublisher, log *zap.Logger) ContentService {
	return &contentService{r: r, events: events, log: log}
}

func (s *contentService) List(ctx context.Context, projectID *uuid.UUID) ([]model.ContentItem, error) {
	return s.r.List(ctx, projectID)
}

func (s *contentService) ListRange(ctx context.Context, start, end time.Time, projectID *uuid.UUID) ([]model.ContentItem, error) {
	return s.r.ListRange(ctx, start, end, projectID)
}

func (s *contentService) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]model.ContentItem, error) {
	return s.r.ListByAssignee(ctx, userID)
}

func (s *contentService) Get(ctx context.Context, id uuid.UUID) (*model.ContentItem, error) {
	item, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return item, nil
}

func (s *contentService) Create(ctx context.Context, in CreateContentInput) (*model.ContentItem, error) {
	if in.ProjectID == uuid.Nil || in.Type == "" || in.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: project_id, type and start_date are required", ErrValidation)
	}

	status := in.Status
	if status == "" {
		status = model.ContentStatusIdea
	}
	platforms := in.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	assets := in.Assets
	if assets == nil {
		assets = []string{}
	}

	item := &model.ContentItem{
		ProjectID:     in.ProjectID,
		Title:         in.Title,
		Caption:       in.Caption,
		Type:          in.Type,
		Platforms:     datatypes.NewJSONSlice(platforms),
		Status:        status,
		AssigneeID:    in.AssigneeID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Assets:        datatypes.NewJSONSlice(assets),
		NotesInternal: in.NotesInternal,
		NotesClient:   in.NotesClient,
	}
	if err := s.r.Create(ctx, item); err != nil {
		return nil, storeErr(err)
	}

	s.publish(ctx, "content.created", item)
	return item, nil
}

func (s *contentService) Update(ctx context.Context, id uuid.UUID, in UpdateContentInput) (*model.ContentItem, error) {
	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Caption != nil {
		fields["caption"] = *in.Caption
	}
	if in.Type != nil {
		fields["type"] = *in.Type
	}
	if in.Platforms != nil {
		fields["platforms"] = datatypes.NewJSONSlice(*in.Platforms)
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.ClearAssignee {
		fields["assignee_id"] = nil
	} else if in.AssigneeID != nil {
		fields["assignee_id"] = *in.AssigneeID
	}
	if in.StartDate != nil {
		fields["start_date"] = *in.StartDate
	}
	if in.ClearEndDate {
		fields["end_date"] = nil
	} else if in.EndDate != nil {
		fields["end_date"] = *in.EndDate
	}
	if in.Assets != nil {
		fields["assets"] = datatypes.NewJSONSlice(*in.Assets)
	}
	if in.NotesInternal != nil {
		fields["notes_internal"] = *in.NotesInternal
	}
	if in.NotesClient != nil {
		fields["notes_client"] = *in.NotesClient
	}

	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	item, err := s.r.Update(ctx, id, fields)
	if err != nil {
		return nil, storeErr(err)
	}

	s.publish(ctx, "content.updated", item)
	return item, nil
}

func (s *contentService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.r.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.publish(ctx, "content.deleted", &model.ContentItem{ID: id})
	}
	return deleted, nil
}

func (s *contentService) UpdateClientNotes(ctx context.Context, projectID, id uuid.UUID, notes string) (*model.ContentItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// Items outside the token's project are indistinguishable from missing.
	if item.ProjectID != projectID {
		return nil, ErrNotFound
	}

	updated, err := s.r.Update(ctx, id, map[string]any{"notes_client": notes})
	if err != nil {
		return nil, storeErr(err)
	}
	return updated, nil
}

func (s *contentService) publish(ctx context.Context, event string, item *model.ContentItem) {
	if s.events == nil {
		return
	}
	payload := ContentEvent{
		Event:     event,
		ItemID:    item.ID,
		ProjectID: item.ProjectID,
		Status:    item.Status,
		At:        time.Now().UTC(),
	}
	if err := s.events.PublishJSON(ctx, event, payload); err != nil {
		s.log.Warn("content event publish failed", zap.String("event", event), zap.Error(err))
	}
}
