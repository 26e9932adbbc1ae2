package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRole string

const (
	MemberRoleLead   MemberRole = "lead"
	MemberRoleMember MemberRole = "member"
)

type TeamMember struct {
	ID       string     `gorm:"primaryKey;size:36" json:"id"`
	TeamID   string     `gorm:"not null;size:36;index:idx_team_members_team;uniqueIndex:ux_team_members_team_user" json:"team_id"`
	Team     *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	UserID   string     `gorm:"not null;size:36;index:idx_team_members_user;uniqueIndex:ux_team_members_team_user" json:"user_id"`
	User     *Profile   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role     MemberRole `gorm:"not null;size:20;default:member" json:"role"`
	JoinedAt time.Time  `gorm:"autoCreateTime" json:"joined_at"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
