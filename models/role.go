package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleSlug string

const (
	RoleStartup    RoleSlug = "startup"
	RoleInvestor   RoleSlug = "investor"
	RoleITCompany  RoleSlug = "it_company"
	RoleOrganizer  RoleSlug = "organizer"
	RoleAdmin      RoleSlug = "admin"
	RoleSuperAdmin RoleSlug = "super_admin"
)

// AllRoleSlugs lists every role in seed order.
var AllRoleSlugs = []RoleSlug{
	RoleStartup, RoleInvestor, RoleITCompany,
	RoleOrganizer, RoleAdmin, RoleSuperAdmin,
}

type Role struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Slug      RoleSlug  `gorm:"uniqueIndex;not null;size:32" json:"slug"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (s RoleSlug) Is(allowed ...RoleSlug) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func (s RoleSlug) IsAdmin() bool {
	return s == RoleAdmin
}

func (s RoleSlug) IsSuperAdmin() bool {
	return s == RoleSuperAdmin
}

func (s RoleSlug) IsAdminOrSuperAdmin() bool {
	return s.Is(RoleAdmin, RoleSuperAdmin)
}

func (s RoleSlug) CanManageHackathons() bool {
	return s.IsAdminOrSuperAdmin()
}

// Organizers and super admins may create new hackathons.
func (s RoleSlug) CanCreateHackathon() bool {
	return s.Is(RoleOrganizer, RoleSuperAdmin)
}

// Only super admins may delete hackathons.
func (s RoleSlug) CanDeleteHackathons() bool {
	return s.IsSuperAdmin()
}

// Only super admins may manage users and role assignments.
func (s RoleSlug) CanManageUsers() bool {
	return s.IsSuperAdmin()
}

func (s RoleSlug) CanSeeInvestorHub() bool {
	return s.Is(RoleInvestor, RoleAdmin, RoleSuperAdmin, RoleOrganizer)
}

func (s RoleSlug) CanCreateStartup() bool {
	return s.Is(RoleStartup, RoleAdmin, RoleSuperAdmin)
}

func (s RoleSlug) CanEvaluateStartups() bool {
	return s.Is(RoleAdmin, RoleSuperAdmin, RoleInvestor, RoleOrganizer)
}

func (s RoleSlug) CanManageTeams() bool {
	return s.IsAdminOrSuperAdmin()
}
