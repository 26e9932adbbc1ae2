package store

import "ses/models"

func (s *Store) ItHubs() ([]models.ItHub, error) {
	var hubs []models.ItHub
	if err := s.db.Order("name").Find(&hubs).Error; err != nil {
		return nil, err
	}
	return hubs, nil
}

func (s *Store) ItHubByID(id string) (*models.ItHub, error) {
	var hub models.ItHub
	if err := s.db.First(&hub, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &hub, nil
}
