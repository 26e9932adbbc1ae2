package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"ses/models"

	"gorm.io/gorm"
)

// SchemaVersion records every migration that has been applied, so upgrade
// paths are auditable instead of inferred from error messages.
type SchemaVersion struct {
	Version   int `gorm:"primaryKey"`
	Name      string
	AppliedAt time.Time
}

type migration struct {
	version int
	name    string
	run     func(db *gorm.DB) error
}

// Migrations run in order on every startup. Each one must be idempotent:
// a migration may be re-attempted after a crash that happened between the
// migration itself and the version bookkeeping write.
var migrations = []migration{
	{1, "base schema", migrateBaseSchema},
	{2, "teams.team_role column", addTeamRoleColumn},
}

// Migrate brings the schema up to date. Any failure other than an already
// tolerated one is fatal to initialization: the app cannot function
// without its schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaVersion{}); err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var applied int64
		if err := db.Model(&SchemaVersion{}).Where("version = ?", m.version).Count(&applied).Error; err != nil {
			return fmt.Errorf("check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}

		if err := m.run(db); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		record := SchemaVersion{Version: m.version, Name: m.name, AppliedAt: time.Now().UTC()}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		log.Printf("applied migration %d: %s", m.version, m.name)
	}

	return nil
}

func migrateBaseSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.Profile{},
		&models.Hackathon{},
		&models.Team{},
		&models.TeamMember{},
		&models.TeamJoinRequest{},
		&models.ItHub{},
		&models.Startup{},
	)
}

// addTeamRoleColumn backfills databases created before teams carried an
// open-position label. On a fresh database the base schema already has the
// column, so "duplicate column" is expected and ignored.
func addTeamRoleColumn(db *gorm.DB) error {
	err := db.Exec("ALTER TABLE teams ADD COLUMN team_role TEXT").Error
	if err != nil && !isDuplicateColumn(err) {
		return err
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column")
}
