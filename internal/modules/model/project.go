package model

import (
	"time"

	"github.com/google/uuid"
)

// Project.ID is assigned by the caller on create, not generated.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text;not null;default:''" json:"description"`
	Archived    bool      `gorm:"not null;default:false" json:"archived"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Project <-> ProjectAssignment
	Assignments []ProjectAssignment `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Project <-> ContentItem
	ContentItems []ContentItem `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Project <-> ClientToken
	ClientTokens []ClientToken `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }
