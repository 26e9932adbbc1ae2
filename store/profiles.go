package store

import (
	"ses/models"
)

func (s *Store) ProfileByID(id string) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &p, nil
}

func (s *Store) ProfileByEmail(email string) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &p, nil
}

// ProfileWithRole pairs a profile with its resolved role slug for admin
// listings.
type ProfileWithRole struct {
	models.Profile
	RoleSlug models.RoleSlug `json:"role_slug"`
}

// Profiles lists every profile with its role slug in a single join.
func (s *Store) Profiles() ([]ProfileWithRole, error) {
	var rows []ProfileWithRole
	err := s.db.Model(&models.Profile{}).
		Select("profiles.*, roles.slug AS role_slug").
		Joins("JOIN roles ON roles.id = profiles.role_id").
		Order("COALESCE(profiles.email, ''), profiles.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) CreateProfile(p *models.Profile) error {
	return s.db.Create(p).Error
}

// ProfileUpdate carries the fields a profile owner may change. Nil fields
// are left untouched.
type ProfileUpdate struct {
	FullName  *string
	AvatarURL *string
	Phone     *string
}

func (s *Store) UpdateProfile(id string, u ProfileUpdate) error {
	fields := map[string]any{}
	if u.FullName != nil {
		fields["full_name"] = *u.FullName
	}
	if u.AvatarURL != nil {
		fields["avatar_url"] = *u.AvatarURL
	}
	if u.Phone != nil {
		fields["phone"] = *u.Phone
	}
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.Profile{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateProfileRole is the only path that changes a profile's role.
func (s *Store) UpdateProfileRole(profileID, roleID string) error {
	return s.db.Model(&models.Profile{}).Where("id = ?", profileID).
		Update("role_id", roleID).Error
}

func (s *Store) DeleteProfile(id string) error {
	return s.db.Delete(&models.Profile{}, "id = ?", id).Error
}
