package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientToken is the persisted form of an issued client-view token.
// Issuing a new token for a project deletes the prior rows, so at most one
// row per project is active and rotation revokes older tokens.
type ClientToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Token     string    `gorm:"type:text;not null;uniqueIndex" json:"token"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (ClientToken) TableName() string { return "client_tokens" }
