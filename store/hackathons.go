package store

import (
	"time"

	"ses/models"
)

func (s *Store) Hackathons() ([]models.Hackathon, error) {
	var hacks []models.Hackathon
	if err := s.db.Order("start_date DESC").Find(&hacks).Error; err != nil {
		return nil, err
	}
	return hacks, nil
}

func (s *Store) HackathonByID(id string) (*models.Hackathon, error) {
	var h models.Hackathon
	if err := s.db.First(&h, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &h, nil
}

func (s *Store) CreateHackathon(h *models.Hackathon) error {
	return s.db.Create(h).Error
}

// HackathonUpdate carries the fields an edit may change; nil fields stay
// untouched. Latitude/Longitude use double pointers so an update can both
// set and clear a coordinate.
type HackathonUpdate struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Location    *string
	Latitude    **float64
	Longitude   **float64
	ImageURL    *string
	IconURL     *string
}

func (s *Store) UpdateHackathon(id string, u HackathonUpdate) error {
	fields := map[string]any{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.StartDate != nil {
		fields["start_date"] = *u.StartDate
	}
	if u.EndDate != nil {
		fields["end_date"] = *u.EndDate
	}
	if u.Location != nil {
		fields["location"] = *u.Location
	}
	if u.Latitude != nil {
		fields["latitude"] = *u.Latitude
	}
	if u.Longitude != nil {
		fields["longitude"] = *u.Longitude
	}
	if u.ImageURL != nil {
		fields["image_url"] = *u.ImageURL
	}
	if u.IconURL != nil {
		fields["icon_url"] = *u.IconURL
	}
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.Hackathon{}).Where("id = ?", id).Updates(fields).Error
}

func (s *Store) DeleteHackathon(id string) error {
	return s.db.Delete(&models.Hackathon{}, "id = ?", id).Error
}
