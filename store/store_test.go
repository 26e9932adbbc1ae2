package store

import (
	"path/filepath"
	"testing"
	"time"

	"ses/database"
	"ses/models"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	require.NoError(t, database.Migrate(db))
	return New(db)
}

func createRole(t *testing.T, s *Store, slug models.RoleSlug) *models.Role {
	t.Helper()
	role := models.Role{Slug: slug, Name: string(slug)}
	require.NoError(t, s.db.Create(&role).Error)
	return &role
}

func createProfile(t *testing.T, s *Store, roleID, email, name string) *models.Profile {
	t.Helper()
	p := models.Profile{RoleID: roleID, Email: &email, FullName: name}
	require.NoError(t, s.CreateProfile(&p))
	return &p
}

func TestLookupOfMissingIDReturnsNil(t *testing.T) {
	s := newTestStore(t)

	hack, err := s.HackathonByID("no-such-id")
	require.NoError(t, err)
	require.Nil(t, hack)

	profile, err := s.ProfileByID("no-such-id")
	require.NoError(t, err)
	require.Nil(t, profile)

	slug, err := s.RoleSlugByID("no-such-id")
	require.NoError(t, err)
	require.Empty(t, slug)
}

func TestHackathonPartialUpdate(t *testing.T) {
	s := newTestStore(t)

	hack := models.Hackathon{
		Name:        "FinTech Hackathon",
		Description: "original description",
		StartDate:   time.Now(),
		EndDate:     time.Now().AddDate(0, 0, 3),
		Location:    "Bakı",
	}
	require.NoError(t, s.CreateHackathon(&hack))
	require.NotEmpty(t, hack.ID)

	name := "FinTech Hackathon 2025"
	require.NoError(t, s.UpdateHackathon(hack.ID, HackathonUpdate{Name: &name}))

	updated, err := s.HackathonByID(hack.ID)
	require.NoError(t, err)
	require.Equal(t, "FinTech Hackathon 2025", updated.Name)
	// Omitted fields stay untouched.
	require.Equal(t, "original description", updated.Description)
	require.Equal(t, "Bakı", updated.Location)
	require.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestEmptyUpdateIsANoOp(t *testing.T) {
	s := newTestStore(t)

	hack := models.Hackathon{Name: "x", StartDate: time.Now(), EndDate: time.Now()}
	require.NoError(t, s.CreateHackathon(&hack))
	require.NoError(t, s.UpdateHackathon(hack.ID, HackathonUpdate{}))
}

func TestStartupOwnerIsUnique(t *testing.T) {
	s := newTestStore(t)
	role := createRole(t, s, models.RoleStartup)
	owner := createProfile(t, s, role.ID, "owner@demo.az", "Owner")

	require.NoError(t, s.CreateStartup(&models.Startup{OwnerID: owner.ID, Name: "First"}))

	err := s.CreateStartup(&models.Startup{OwnerID: owner.ID, Name: "Second"})
	require.Error(t, err)
	require.True(t, IsDuplicate(err))

	startup, err := s.StartupByOwner(owner.ID)
	require.NoError(t, err)
	require.Equal(t, "First", startup.Name)
}

func TestDuplicateEmailIsRejected(t *testing.T) {
	s := newTestStore(t)
	role := createRole(t, s, models.RoleStartup)
	createProfile(t, s, role.ID, "dup@demo.az", "First")

	email := "dup@demo.az"
	err := s.CreateProfile(&models.Profile{RoleID: role.ID, Email: &email})
	require.Error(t, err)
	require.True(t, IsDuplicate(err))
}

func TestProfilesListsRoleSlugs(t *testing.T) {
	s := newTestStore(t)
	startup := createRole(t, s, models.RoleStartup)
	admin := createRole(t, s, models.RoleAdmin)
	createProfile(t, s, startup.ID, "a@demo.az", "A")
	createProfile(t, s, admin.ID, "b@demo.az", "B")

	rows, err := s.Profiles()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, models.RoleStartup, rows[0].RoleSlug)
	require.Equal(t, models.RoleAdmin, rows[1].RoleSlug)
}

func TestUpdateProfileRole(t *testing.T) {
	s := newTestStore(t)
	startup := createRole(t, s, models.RoleStartup)
	organizer := createRole(t, s, models.RoleOrganizer)
	p := createProfile(t, s, startup.ID, "u@demo.az", "U")

	require.NoError(t, s.UpdateProfileRole(p.ID, organizer.ID))

	slug, err := s.RoleSlugByID(organizer.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoleOrganizer, slug)

	reloaded, err := s.ProfileByID(p.ID)
	require.NoError(t, err)
	require.Equal(t, organizer.ID, reloaded.RoleID)
}

func TestTeamMembersJoinsProfileNames(t *testing.T) {
	s := newTestStore(t)
	role := createRole(t, s, models.RoleStartup)
	lead := createProfile(t, s, role.ID, "lead@demo.az", "Əli Məmmədov")
	member := createProfile(t, s, role.ID, "member@demo.az", "Aysel Quliyeva")

	hack := models.Hackathon{Name: "h", StartDate: time.Now(), EndDate: time.Now()}
	require.NoError(t, s.CreateHackathon(&hack))
	team := models.Team{HackathonID: hack.ID, Name: "CodeNinjas"}
	require.NoError(t, s.CreateTeam(&team))

	require.NoError(t, s.db.Create(&models.TeamMember{
		TeamID: team.ID, UserID: lead.ID, Role: models.MemberRoleLead,
	}).Error)
	require.NoError(t, s.db.Create(&models.TeamMember{
		TeamID: team.ID, UserID: member.ID, Role: models.MemberRoleMember,
	}).Error)

	rows, err := s.TeamMembers(team.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	names := []string{rows[0].FullName, rows[1].FullName}
	require.Contains(t, names, "Əli Məmmədov")
	require.Contains(t, names, "Aysel Quliyeva")

	leadID, err := s.TeamLeadUserID(team.ID)
	require.NoError(t, err)
	require.Equal(t, lead.ID, leadID)

	ok, err := s.IsTeamMember(team.ID, member.ID)
	require.NoError(t, err)
	require.True(t, ok)
}
