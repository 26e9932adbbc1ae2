package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Startup struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// A profile owns at most one startup.
	OwnerID     string    `gorm:"not null;size:36;uniqueIndex" json:"owner_id"`
	Owner       *Profile  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Description string    `gorm:"size:2000" json:"description"`
	Website     string    `gorm:"size:500" json:"website"`
	LogoURL     string    `gorm:"size:500" json:"logo_url"`
	Stage       string    `gorm:"size:50" json:"stage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Startup) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
