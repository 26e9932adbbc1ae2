package store

import (
	"ses/models"
)

func (s *Store) TeamsByHackathon(hackathonID string) ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Where("hackathon_id = ?", hackathonID).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *Store) TeamByID(id string) (*models.Team, error) {
	var t models.Team
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &t, nil
}

func (s *Store) CreateTeam(t *models.Team) error {
	return s.db.Create(t).Error
}

type TeamUpdate struct {
	Name        *string
	TeamRole    *string
	Description *string
}

func (s *Store) UpdateTeam(id string, u TeamUpdate) error {
	fields := map[string]any{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.TeamRole != nil {
		fields["team_role"] = *u.TeamRole
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if len(fields) == 0 {
		return nil
	}
	return s.db.Model(&models.Team{}).Where("id = ?", id).Updates(fields).Error
}

func (s *Store) DeleteTeam(id string) error {
	return s.db.Delete(&models.Team{}, "id = ?", id).Error
}

// TeamMemberRow is a membership joined with the member's display name.
type TeamMemberRow struct {
	ID       string            `json:"id"`
	UserID   string            `json:"user_id"`
	Role     models.MemberRole `json:"role"`
	FullName string            `json:"full_name"`
}

// TeamMembers lists a team's members with profile names in one join.
func (s *Store) TeamMembers(teamID string) ([]TeamMemberRow, error) {
	var rows []TeamMemberRow
	err := s.db.Model(&models.TeamMember{}).
		Select("team_members.id, team_members.user_id, team_members.role, profiles.full_name").
		Joins("JOIN profiles ON profiles.id = team_members.user_id").
		Where("team_members.team_id = ?", teamID).
		Order("team_members.joined_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) IsTeamMember(teamID, userID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TeamLeadUserID returns the lead member's user id, or "" when the team has
// no lead.
func (s *Store) TeamLeadUserID(teamID string) (string, error) {
	var member models.TeamMember
	err := s.db.Where("team_id = ? AND role = ?", teamID, models.MemberRoleLead).
		Limit(1).First(&member).Error
	if err != nil {
		return "", notFoundAsNil(err)
	}
	return member.UserID, nil
}
