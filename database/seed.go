package database

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ses/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed populates reference and demo data. The database file persists across
// app launches, so every routine re-checks its own precondition and is safe
// to call on each startup without duplicating rows.
func Seed(db *gorm.DB, includeDemoAccounts bool) error {
	if err := seedIfEmpty(db); err != nil {
		return fmt.Errorf("seed base data: %w", err)
	}
	if includeDemoAccounts {
		if err := seedDemoAccountsIfMissing(db); err != nil {
			return fmt.Errorf("seed demo accounts: %w", err)
		}
	}
	if err := seedItHubsIfEmpty(db); err != nil {
		return fmt.Errorf("seed it hubs: %w", err)
	}
	return nil
}

var roleSeed = []models.Role{
	{Slug: models.RoleStartup, Name: "İştirakçı"},
	{Slug: models.RoleInvestor, Name: "İnvestor"},
	{Slug: models.RoleITCompany, Name: "İT Şirkət"},
	{Slug: models.RoleOrganizer, Name: "Təşkilatçı"},
	{Slug: models.RoleAdmin, Name: "Admin"},
	{Slug: models.RoleSuperAdmin, Name: "Super Admin"},
}

type demoAccount struct {
	email    string
	password string
	fullName string
	roleSlug models.RoleSlug
}

var demoAccounts = []demoAccount{
	{"startup@gmail.com", "startup123", "İştirakçı Nümunəsi", models.RoleStartup},
	{"investor@gmail.com", "investor123", "İnvestor", models.RoleInvestor},
	{"itcompany@gmail.com", "itcompany123", "İT Şirkət", models.RoleITCompany},
	{"organizer@gmail.com", "organizer123", "Təşkilatçı", models.RoleOrganizer},
	{"admin@gmail.com", "admin123", "Admin", models.RoleAdmin},
	{"superadmin@gmail.com", "super123", "Super Admin", models.RoleSuperAdmin},
}

var (
	participantFirstNames = []string{
		"Əli", "Aysel", "Rəşad", "Leyla", "Vüqar",
		"Nərmin", "Orxan", "Səbinə", "Tural", "Zəhra",
	}
	participantLastNames = []string{
		"Məmmədov", "Quliyeva", "Həsənov", "Əliyeva", "Cəfərov",
		"Məmmədova", "Rəhimov", "Hüseynova", "Məlikov", "Rzayeva",
	}
)

type hackathonSeed struct {
	name     string
	location string
	latMin   float64
	latMax   float64
	lngMin   float64
	lngMax   float64
	icon     string
}

var hackathonSeeds = []hackathonSeed{
	{"FinTech Hackathon 2025", "Bakı", 40.36, 40.44, 49.80, 49.92, "🏆"},
	{"HealthTech Summit", "Sumqayıt", 40.56, 40.62, 49.62, 49.72, "💻"},
	{"AI Innovation Challenge", "Gəncə", 40.66, 40.70, 46.32, 46.40, "🤖"},
	{"GreenTech Accelerator", "Lənkəran", 38.72, 38.78, 48.82, 48.88, "🌱"},
	{"EduTech Hack", "Mingəçevir", 40.76, 40.79, 47.02, 47.08, "📚"},
	{"Smart City Challenge", "Naxçıvan", 39.18, 39.22, 45.38, 45.44, "🏙️"},
	{"AgriTech Hackathon", "Qəbələ", 40.96, 41.00, 47.82, 47.88, "🌾"},
	{"CyberSec Bootcamp", "Şəki", 41.17, 41.22, 47.14, 47.22, "🔐"},
	{"Social Impact Hack", "Masallı", 38.96, 39.04, 48.62, 48.72, "❤️"},
	{"DeepTech Lab", "Şirvan", 39.90, 39.96, 48.88, 48.96, "🚀"},
}

var (
	teamRolePool = []string{
		"Backend Lead", "Frontend", "DevOps", "UI/UX", "Team Lead",
		"Full-Stack", "Mobile", "QA", "ML Engineer", "Security",
	}
	teamNamePool = []string{
		"CodeNinjas", "PixelPirates", "CloudRiders", "DesignMasters", "BugHunters",
		"DataWizards", "AppCrafters", "TestTitans", "NeuralNerds", "CryptoGuard",
	}
)

var itHubSeeds = []models.ItHub{
	{Name: "Bakı Tech Park", Address: "Bakı", Latitude: 40.3777, Longitude: 49.8920},
	{Name: "SABAH Hub", Address: "Bakı", Latitude: 40.3956, Longitude: 49.8542},
	{Name: "Gəncə İnnovasiya Mərkəzi", Address: "Gəncə", Latitude: 40.6769, Longitude: 46.3567},
	{Name: "Sumqayıt IT Mərkəzi", Address: "Sumqayıt", Latitude: 40.5897, Longitude: 49.6686},
	{Name: "Mingəçevir Tech Hub", Address: "Mingəçevir", Latitude: 40.7700, Longitude: 47.0489},
	{Name: "Naxçıvan İnnovasiya Mərkəzi", Address: "Naxçıvan", Latitude: 39.2089, Longitude: 45.4122},
}

// seedIfEmpty builds the full demo world, gated on the roles table being
// empty: that is the "freshly created database" signal.
func seedIfEmpty(db *gorm.DB) error {
	var roleCount int64
	if err := db.Model(&models.Role{}).Count(&roleCount).Error; err != nil {
		return err
	}
	if roleCount > 0 {
		return nil
	}

	roleIDs := make(map[models.RoleSlug]string, len(roleSeed))
	for i := range roleSeed {
		role := roleSeed[i]
		if err := db.Create(&role).Error; err != nil {
			return fmt.Errorf("create role %s: %w", role.Slug, err)
		}
		roleIDs[role.Slug] = role.ID
	}

	// 100 synthetic participants with deterministic name cycling.
	participantIDs := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		email := fmt.Sprintf("user%d@demo.az", i+1)
		p := models.Profile{
			RoleID:   roleIDs[models.RoleStartup],
			Email:    &email,
			FullName: participantFirstNames[i%10] + " " + participantLastNames[i%10],
		}
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("create participant %d: %w", i+1, err)
		}
		participantIDs = append(participantIDs, p.ID)
	}

	hackathonIDs := make([]string, 0, len(hackathonSeeds))
	for h, s := range hackathonSeeds {
		lat := randomIn(s.latMin, s.latMax)
		lng := randomIn(s.lngMin, s.lngMax)
		start := time.Now().AddDate(0, 0, h*30)
		hack := models.Hackathon{
			Name:        s.name,
			Description: fmt.Sprintf("Hackathon: %s.", s.name),
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 3),
			Location:    s.location + ", Azərbaycan",
			Latitude:    &lat,
			Longitude:   &lng,
			IconURL:     s.icon,
		}
		if err := db.Create(&hack).Error; err != nil {
			return fmt.Errorf("create hackathon %s: %w", s.name, err)
		}
		hackathonIDs = append(hackathonIDs, hack.ID)
	}

	// 10 teams per hackathon, 5 members each cycled from the participant
	// pool; the first member of every team is the lead.
	for h := range hackathonIDs {
		for t := 0; t < 10; t++ {
			teamRole := teamRolePool[t%len(teamRolePool)]
			nick := teamNamePool[t%len(teamNamePool)]
			team := models.Team{
				HackathonID: hackathonIDs[h],
				Name:        nick,
				TeamRole:    teamRole,
				Description: teamRole + " · " + nick,
			}
			if err := db.Create(&team).Error; err != nil {
				return fmt.Errorf("create team %s: %w", nick, err)
			}

			base := (h*10 + t) * 5
			for m := 0; m < 5; m++ {
				role := models.MemberRoleMember
				if m == 0 {
					role = models.MemberRoleLead
				}
				member := models.TeamMember{
					TeamID: team.ID,
					UserID: participantIDs[(base+m)%len(participantIDs)],
					Role:   role,
				}
				if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error; err != nil {
					return fmt.Errorf("create team member: %w", err)
				}
			}
		}
	}

	// 5 sample startups, each owned by a distinct participant.
	for i := 0; i < 5; i++ {
		startup := models.Startup{
			OwnerID:     participantIDs[50+i],
			Name:        fmt.Sprintf("Startap %d", i+1),
			Description: fmt.Sprintf("Demo startap %d", i+1),
			Stage:       "mvp",
		}
		if err := db.Create(&startup).Error; err != nil {
			return fmt.Errorf("create startup %d: %w", i+1, err)
		}
	}

	log.Printf("seeded fresh database: %d roles, %d participants, %d hackathons",
		len(roleSeed), len(participantIDs), len(hackathonIDs))
	return nil
}

// seedDemoAccountsIfMissing adds any demo account that is absent, so partial
// seed states self-heal on the next launch.
func seedDemoAccountsIfMissing(db *gorm.DB) error {
	for _, d := range demoAccounts {
		var count int64
		if err := db.Model(&models.Profile{}).Where("email = ?", d.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		var role models.Role
		err := db.Where("slug = ?", d.roleSlug).First(&role).Error
		if err == gorm.ErrRecordNotFound {
			continue
		}
		if err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		email := d.email
		p := models.Profile{
			RoleID:       role.ID,
			Email:        &email,
			PasswordHash: string(hash),
			FullName:     d.fullName,
		}
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("create demo account %s: %w", d.email, err)
		}
		log.Printf("demo account created: %s", d.email)
	}
	return nil
}

// seedItHubsIfEmpty is gated on its own table, independent of the roles
// signal: hubs were added after the first release and existing installs
// need them backfilled.
func seedItHubsIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ItHub{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range itHubSeeds {
		hub := itHubSeeds[i]
		hub.Description = hub.Name + " – IT mərkəzi"
		if err := db.Create(&hub).Error; err != nil {
			return fmt.Errorf("create it hub %s: %w", hub.Name, err)
		}
	}
	return nil
}

func randomIn(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
