package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JoinStatus string

const (
	// JoinStatusNone is never stored; it is the answer for a pair with no row.
	JoinStatusNone     JoinStatus = "none"
	JoinStatusPending  JoinStatus = "pending"
	JoinStatusAccepted JoinStatus = "accepted"
	JoinStatusRejected JoinStatus = "rejected"
)

type TeamJoinRequest struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	TeamID    string     `gorm:"not null;size:36;uniqueIndex:ux_join_requests_team_user" json:"team_id"`
	Team      *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	UserID    string     `gorm:"not null;size:36;uniqueIndex:ux_join_requests_team_user" json:"user_id"`
	User      *Profile   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status    JoinStatus `gorm:"not null;size:20;default:pending" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

func (r *TeamJoinRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
