package store

import (
	"errors"
	"time"

	"ses/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The join workflow is a state machine per (team, user) pair:
// none → pending → {accepted, rejected}. A rejected pair may re-request,
// which resets the same row to pending; an accepted pair may not.

// SubmitJoinRequest upserts the pair's request back to pending. At most one
// row ever exists per (team_id, user_id): a repeat submit overwrites the
// prior row instead of erroring. An accepted request stays accepted.
func (s *Store) SubmitJoinRequest(teamID, userID string) error {
	req := models.TeamJoinRequest{
		TeamID: teamID,
		UserID: userID,
		Status: models.JoinStatusPending,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"status":     models.JoinStatusPending,
			"created_at": time.Now(),
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Neq{Column: clause.Column{Name: "status"}, Value: models.JoinStatusAccepted},
		}},
	}).Create(&req).Error
}

// JoinRequestStatus answers none when the pair has no request row.
func (s *Store) JoinRequestStatus(teamID, userID string) (models.JoinStatus, error) {
	var req models.TeamJoinRequest
	err := s.db.Select("status").
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.JoinStatusNone, nil
	}
	if err != nil {
		return "", err
	}
	return req.Status, nil
}

func (s *Store) JoinRequestByID(id string) (*models.TeamJoinRequest, error) {
	var req models.TeamJoinRequest
	if err := s.db.First(&req, "id = ?", id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &req, nil
}

// JoinRequestRow is a pending request joined with the applicant's display
// fields for the lead's review screen.
type JoinRequestRow struct {
	ID       string            `json:"id"`
	TeamID   string            `json:"team_id"`
	UserID   string            `json:"user_id"`
	Status   models.JoinStatus `json:"status"`
	FullName string            `json:"full_name"`
	Email    *string           `json:"email"`
}

func (s *Store) PendingJoinRequests(teamID string) ([]JoinRequestRow, error) {
	var rows []JoinRequestRow
	err := s.db.Model(&models.TeamJoinRequest{}).
		Select("team_join_requests.id, team_join_requests.team_id, team_join_requests.user_id, team_join_requests.status, profiles.full_name, profiles.email").
		Joins("JOIN profiles ON profiles.id = team_join_requests.user_id").
		Where("team_join_requests.team_id = ? AND team_join_requests.status = ?", teamID, models.JoinStatusPending).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AcceptJoinRequest moves a pending request to accepted and records the
// membership, in one transaction. The status is re-checked inside the
// transaction: accepting a request that is not pending is a no-op, so a
// double accept neither fails nor duplicates the membership.
func (s *Store) AcceptJoinRequest(requestID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var req models.TeamJoinRequest
		err := tx.Where("id = ? AND status = ?", requestID, models.JoinStatusPending).
			First(&req).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		member := models.TeamMember{
			TeamID: req.TeamID,
			UserID: req.UserID,
			Role:   models.MemberRoleMember,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error; err != nil {
			return err
		}

		return tx.Model(&models.TeamJoinRequest{}).
			Where("id = ?", requestID).
			Update("status", models.JoinStatusAccepted).Error
	})
}

// RejectJoinRequest overwrites the request's status unconditionally and
// never touches team_members.
func (s *Store) RejectJoinRequest(requestID string) error {
	return s.db.Model(&models.TeamJoinRequest{}).
		Where("id = ?", requestID).
		Update("status", models.JoinStatusRejected).Error
}
