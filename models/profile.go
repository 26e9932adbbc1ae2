package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Profile struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	RoleID       string    `gorm:"not null;size:36;index" json:"role_id"`
	Role         *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Email        *string   `gorm:"uniqueIndex;size:200" json:"email"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	FullName     string    `gorm:"size:200" json:"full_name"`
	AvatarURL    string    `gorm:"size:500" json:"avatar_url"`
	Phone        string    `gorm:"size:50" json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	if p.Email != nil {
		return *p.Email
	}
	return p.ID
}
