package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectAssignment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_user,priority:1" json:"project_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_user,priority:2" json:"user_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	User    *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (ProjectAssignment) TableName() string { return "project_assignments" }

// AssignmentWithUser is an assignment row joined with its user summary.
type AssignmentWithUser struct {
	ProjectAssignment
	User UserSummary `json:"user"`
}
