package store

import "ses/models"

func (s *Store) Roles() ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.Order("slug").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *Store) RoleBySlug(slug models.RoleSlug) (*models.Role, error) {
	var role models.Role
	if err := s.db.Where("slug = ?", slug).First(&role).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &role, nil
}

// RoleSlugByID returns "" when the role does not exist.
func (s *Store) RoleSlugByID(id string) (models.RoleSlug, error) {
	var role models.Role
	if err := s.db.Select("slug").First(&role, "id = ?", id).Error; err != nil {
		return "", notFoundAsNil(err)
	}
	return role.Slug, nil
}
