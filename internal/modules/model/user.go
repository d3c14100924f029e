package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         Role      `gorm:"type:text;not null" json:"role"`
	FullName     string    `gorm:"type:text;not null" json:"full_name"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	AvatarURL    string    `gorm:"type:text;not null;default:''" json:"avatar_url"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// User <-> ProjectAssignment
	Assignments []ProjectAssignment `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (User) TableName() string { return "users" }

// UserSummary is the public projection joined into assignment listings.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Role      Role      `json:"role"`
}
