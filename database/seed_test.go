package database

import (
	"testing"

	"ses/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seededTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db, true))
	return db
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedFreshDatabase(t *testing.T) {
	db := seededTestDB(t)

	require.EqualValues(t, 6, count(t, db, &models.Role{}))
	require.EqualValues(t, 6, count(t, db, &models.ItHub{}))
	require.EqualValues(t, 10, count(t, db, &models.Hackathon{}))
	require.EqualValues(t, 100, count(t, db, &models.Team{}))
	require.EqualValues(t, 500, count(t, db, &models.TeamMember{}))
	require.EqualValues(t, 5, count(t, db, &models.Startup{}))
	// 100 synthetic participants plus 6 demo accounts.
	require.EqualValues(t, 106, count(t, db, &models.Profile{}))
}

func TestSeedIsIdempotent(t *testing.T) {
	db := seededTestDB(t)
	require.NoError(t, Seed(db, true))

	require.EqualValues(t, 6, count(t, db, &models.Role{}))
	require.EqualValues(t, 6, count(t, db, &models.ItHub{}))
	require.EqualValues(t, 106, count(t, db, &models.Profile{}))
	require.EqualValues(t, 500, count(t, db, &models.TeamMember{}))
}

func TestSeedRestoresMissingDemoAccount(t *testing.T) {
	db := seededTestDB(t)

	require.NoError(t, db.Where("email = ?", "investor@gmail.com").Delete(&models.Profile{}).Error)
	require.NoError(t, Seed(db, true))

	var p models.Profile
	require.NoError(t, db.Where("email = ?", "investor@gmail.com").First(&p).Error)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("investor123")))
}

func TestSeedWithoutDemoAccounts(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db, false))

	var n int64
	require.NoError(t, db.Model(&models.Profile{}).Where("email = ?", "admin@gmail.com").Count(&n).Error)
	require.Zero(t, n)
	// The synthetic world is still built.
	require.EqualValues(t, 100, count(t, db, &models.Profile{}))
	require.EqualValues(t, 6, count(t, db, &models.Role{}))
}

func TestSeedTeamLeads(t *testing.T) {
	db := seededTestDB(t)

	// Every team has exactly one lead and five members in total.
	var teams []models.Team
	require.NoError(t, db.Limit(5).Find(&teams).Error)
	for _, team := range teams {
		var leads, total int64
		require.NoError(t, db.Model(&models.TeamMember{}).
			Where("team_id = ? AND role = ?", team.ID, models.MemberRoleLead).
			Count(&leads).Error)
		require.NoError(t, db.Model(&models.TeamMember{}).
			Where("team_id = ?", team.ID).Count(&total).Error)
		require.EqualValues(t, 1, leads)
		require.EqualValues(t, 5, total)
	}
}
