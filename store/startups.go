package store

import (
	"ses/models"
)

func (s *Store) Startups() ([]models.Startup, error) {
	var startups []models.Startup
	if err := s.db.Order("created_at DESC").Find(&startups).Error; err != nil {
		return nil, err
	}
	return startups, nil
}

func (s *Store) StartupByID(id string) (*models.Startup, error) {
	var st models.Startup
	if err := s.db.First(&st, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &st, nil
}

func (s *Store) StartupByOwner(ownerID string) (*models.Startup, error) {
	var st models.Startup
	if err := s.db.Where("owner_id = ?", ownerID).First(&st).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &st, nil
}

// CreateStartup fails with gorm.ErrDuplicatedKey when the owner already has
// a startup.
func (s *Store) CreateStartup(st *models.Startup) error {
	return s.db.Create(st).Error
}

type StartupUpdate struct {
	Name        *string
	Description *string
	Website     *string
	LogoURL     *string
	Stage       *string
}

func (s *Store) UpdateStartup(id string, u StartupUpdate) error {
	fields := map[string]any{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Website != nil {
		fields["website"] = *u.Website
	}
	if u.LogoURL != nil {
		fields["logo_url"] = *u.LogoURL
	}
	if u.Stage != nil {
		fields["stage"] = *u.Stage
	}
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.Startup{}).Where("id = ?", id).Updates(fields).Error
}

func (s *Store) DeleteStartup(id string) error {
	return s.db.Delete(&models.Startup{}, "id = ?", id).Error
}
