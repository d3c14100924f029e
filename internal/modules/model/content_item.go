package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ContentType string

const (
	ContentTypePost  ContentType = "post"
	ContentTypeReel  ContentType = "reel"
	ContentTypeStory ContentType = "story"
)

type ContentStatus string

const (
	ContentStatusIdea      ContentStatus = "idea"
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusReady     ContentStatus = "ready"
	ContentStatusScheduled ContentStatus = "scheduled"
	ContentStatusPublished ContentStatus = "published"
)

type ContentItem struct {
	ID        uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID   `gorm:"type:uuid;not null;index" json:"project_id"`
	Title     string      `gorm:"type:text;not null;default:''" json:"title"`
	Caption   string      `gorm:"type:text;not null;default:''" json:"caption"`
	Type      ContentType `gorm:"type:text;not null" json:"type"`

	Platforms datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"platforms"`

	Status     ContentStatus `gorm:"type:text;not null;default:'idea'" json:"status"`
	AssigneeID *uuid.UUID    `gorm:"type:uuid;index" json:"assignee_id"`

	StartDate time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	// Assets is an ordered sequence of opaque refs (upload URLs).
	Assets datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"assets"`

	NotesInternal string `gorm:"type:text;not null;default:''" json:"notes_internal"`
	NotesClient   string `gorm:"type:text;not null;default:''" json:"notes_client"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	// Deleting a user leaves their items unassigned rather than deleting them.
	Assignee *User `gorm:"foreignKey:AssigneeID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (ContentItem) TableName() string { return "content_items" }
