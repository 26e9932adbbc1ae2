package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	HackathonID string     `gorm:"not null;size:36;index:idx_teams_hackathon" json:"hackathon_id"`
	Hackathon   *Hackathon `gorm:"foreignKey:HackathonID" json:"hackathon,omitempty"`
	Name        string     `gorm:"not null;size:200" json:"name"`
	// Free-text label for the open position, e.g. "Backend Lead".
	TeamRole    string     `gorm:"size:100" json:"team_role"`
	Description string     `gorm:"size:2000" json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
