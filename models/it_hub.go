package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItHub is a physical IT center shown on the map. Static reference data.
type ItHub struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null;size:200" json:"name"`
	Description string    `gorm:"size:2000" json:"description"`
	Address     string    `gorm:"size:500" json:"address"`
	Latitude    float64   `gorm:"not null" json:"latitude"`
	Longitude   float64   `gorm:"not null" json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (h *ItHub) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
