package store

import (
	"testing"
	"time"

	"ses/models"

	"github.com/stretchr/testify/require"
)

type joinFixture struct {
	store *Store
	team  *models.Team
	user  *models.Profile
	lead  *models.Profile
}

func newJoinFixture(t *testing.T) *joinFixture {
	t.Helper()
	s := newTestStore(t)
	role := createRole(t, s, models.RoleStartup)
	lead := createProfile(t, s, role.ID, "lead@demo.az", "Lead")
	user := createProfile(t, s, role.ID, "user@demo.az", "Applicant")

	hack := models.Hackathon{Name: "h", StartDate: time.Now(), EndDate: time.Now()}
	require.NoError(t, s.CreateHackathon(&hack))
	team := models.Team{HackathonID: hack.ID, Name: "BugHunters"}
	require.NoError(t, s.CreateTeam(&team))
	require.NoError(t, s.db.Create(&models.TeamMember{
		TeamID: team.ID, UserID: lead.ID, Role: models.MemberRoleLead,
	}).Error)

	return &joinFixture{store: s, team: &team, user: user, lead: lead}
}

func (f *joinFixture) status(t *testing.T) models.JoinStatus {
	t.Helper()
	status, err := f.store.JoinRequestStatus(f.team.ID, f.user.ID)
	require.NoError(t, err)
	return status
}

func (f *joinFixture) requestID(t *testing.T) string {
	t.Helper()
	var req models.TeamJoinRequest
	require.NoError(t, f.store.db.
		Where("team_id = ? AND user_id = ?", f.team.ID, f.user.ID).
		First(&req).Error)
	return req.ID
}

func (f *joinFixture) requestRows(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.store.db.Model(&models.TeamJoinRequest{}).
		Where("team_id = ? AND user_id = ?", f.team.ID, f.user.ID).
		Count(&n).Error)
	return n
}

func (f *joinFixture) memberRows(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.store.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", f.team.ID, f.user.ID).
		Count(&n).Error)
	return n
}

func TestStatusIsNoneWithoutRequest(t *testing.T) {
	f := newJoinFixture(t)
	require.Equal(t, models.JoinStatusNone, f.status(t))
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	f := newJoinFixture(t)

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	require.Equal(t, models.JoinStatusPending, f.status(t))
	require.EqualValues(t, 1, f.requestRows(t))
}

func TestRepeatSubmitKeepsOneRow(t *testing.T) {
	f := newJoinFixture(t)

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))

	require.Equal(t, models.JoinStatusPending, f.status(t))
	require.EqualValues(t, 1, f.requestRows(t))
}

func TestResubmitAfterRejection(t *testing.T) {
	f := newJoinFixture(t)

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	require.NoError(t, f.store.RejectJoinRequest(f.requestID(t)))
	require.Equal(t, models.JoinStatusRejected, f.status(t))
	require.EqualValues(t, 0, f.memberRows(t))

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	require.Equal(t, models.JoinStatusPending, f.status(t))
	require.EqualValues(t, 1, f.requestRows(t))
}

func TestAcceptCreatesMembership(t *testing.T) {
	f := newJoinFixture(t)

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	require.NoError(t, f.store.AcceptJoinRequest(f.requestID(t)))

	require.Equal(t, models.JoinStatusAccepted, f.status(t))
	require.EqualValues(t, 1, f.memberRows(t))

	var member models.TeamMember
	require.NoError(t, f.store.db.
		Where("team_id = ? AND user_id = ?", f.team.ID, f.user.ID).
		First(&member).Error)
	require.Equal(t, models.MemberRoleMember, member.Role)
}

func TestDoubleAcceptIsANoOp(t *testing.T) {
	f := newJoinFixture(t)

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	id := f.requestID(t)
	require.NoError(t, f.store.AcceptJoinRequest(id))
	require.NoError(t, f.store.AcceptJoinRequest(id))

	require.Equal(t, models.JoinStatusAccepted, f.status(t))
	require.EqualValues(t, 1, f.memberRows(t))
}

func TestAcceptOfRejectedRequestIsANoOp(t *testing.T) {
	f := newJoinFixture(t)

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	id := f.requestID(t)
	require.NoError(t, f.store.RejectJoinRequest(id))
	require.NoError(t, f.store.AcceptJoinRequest(id))

	require.Equal(t, models.JoinStatusRejected, f.status(t))
	require.EqualValues(t, 0, f.memberRows(t))
}

func TestAcceptOfUnknownRequestIsANoOp(t *testing.T) {
	f := newJoinFixture(t)
	require.NoError(t, f.store.AcceptJoinRequest("no-such-request"))
}

func TestSubmitAfterAcceptKeepsAccepted(t *testing.T) {
	f := newJoinFixture(t)

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	require.NoError(t, f.store.AcceptJoinRequest(f.requestID(t)))

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	require.Equal(t, models.JoinStatusAccepted, f.status(t))
	require.EqualValues(t, 1, f.memberRows(t))
}

func TestAcceptToleratesExistingMembership(t *testing.T) {
	f := newJoinFixture(t)

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))
	// The user is somehow already a member; accept must not fail.
	require.NoError(t, f.store.db.Create(&models.TeamMember{
		TeamID: f.team.ID, UserID: f.user.ID, Role: models.MemberRoleMember,
	}).Error)

	require.NoError(t, f.store.AcceptJoinRequest(f.requestID(t)))
	require.Equal(t, models.JoinStatusAccepted, f.status(t))
	require.EqualValues(t, 1, f.memberRows(t))
}

func TestPendingRequestsJoinProfileFields(t *testing.T) {
	f := newJoinFixture(t)

	require.NoError(t, f.store.SubmitJoinRequest(f.team.ID, f.user.ID))

	rows, err := f.store.PendingJoinRequests(f.team.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, f.user.ID, rows[0].UserID)
	require.Equal(t, "Applicant", rows[0].FullName)
	require.NotNil(t, rows[0].Email)
	require.Equal(t, "user@demo.az", *rows[0].Email)

	// Decided requests drop out of the pending list.
	require.NoError(t, f.store.AcceptJoinRequest(rows[0].ID))
	rows, err = f.store.PendingJoinRequests(f.team.ID)
	require.NoError(t, err)
	require.Empty(t, rows)
}
