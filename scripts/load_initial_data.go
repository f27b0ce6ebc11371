package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hackathon-backend/internal/config"
	"hackathon-backend/internal/database"
	"hackathon-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	ClerkID        string `yaml:"clerk_id"`
	Username       string `yaml:"username"`
	Email          string `yaml:"email"`
	FullName       string `yaml:"full_name"`
	ProfilePicture string `yaml:"profile_picture,omitempty"`
	Bio            string `yaml:"bio,omitempty"`
}

type TeamMemberData struct {
	Username string `yaml:"username"`
	Role     string `yaml:"role,omitempty"`
}

type TeamData struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Members     []TeamMemberData `yaml:"members,omitempty"`
}

type ParticipantData struct {
	Username  string `yaml:"username"`
	Team      string `yaml:"team,omitempty"`
	CheckedIn bool   `yaml:"checked_in,omitempty"`
}

type HackathonData struct {
	Name                 string            `yaml:"name"`
	Description          string            `yaml:"description"`
	Location             string            `yaml:"location"`
	StartDate            time.Time         `yaml:"start_date"`
	EndDate              time.Time         `yaml:"end_date"`
	RegistrationDeadline time.Time         `yaml:"registration_deadline"`
	MaxParticipants      int               `yaml:"max_participants"`
	Status               string            `yaml:"status,omitempty"`
	Topics               []string          `yaml:"topics,omitempty"`
	Teams                []string          `yaml:"teams,omitempty"`
	Participants         []ParticipantData `yaml:"participants,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type HackathonsFile struct {
	Hackathons []HackathonData `yaml:"hackathons"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadYAML[UsersFile](dataDir, "users")
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	teams, err := loadYAML[TeamsFile](dataDir, "teams")
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	hackathons, err := loadYAML[HackathonsFile](dataDir, "hackathons")
	if err != nil {
		return fmt.Errorf("failed to load hackathons: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		userMap := make(map[string]*models.User)
		userCreated := 0
		for _, file := range users {
			for _, userData := range file.Users {
				user, created, err := createUser(tx, userData)
				if err != nil {
					return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
				}
				userMap[userData.Username] = user
				if created {
					userCreated++
				}
			}
		}
		log.Printf("Users: %d created, %d total", userCreated, len(userMap))

		teamMap := make(map[string]*models.Team)
		teamCreated := 0
		for _, file := range teams {
			for _, teamData := range file.Teams {
				team, created, err := createTeam(tx, teamData, userMap)
				if err != nil {
					return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
				}
				teamMap[teamData.Name] = team
				if created {
					teamCreated++
				}
			}
		}
		log.Printf("Teams: %d created, %d total", teamCreated, len(teamMap))

		hackathonCreated, hackathonTotal := 0, 0
		for _, file := range hackathons {
			for _, hackathonData := range file.Hackathons {
				created, err := createHackathon(tx, hackathonData, userMap, teamMap)
				if err != nil {
					return fmt.Errorf("failed to create hackathon %s: %w", hackathonData.Name, err)
				}
				hackathonTotal++
				if created {
					hackathonCreated++
				}
			}
		}
		log.Printf("Hackathons: %d created, %d total", hackathonCreated, hackathonTotal)

		return nil
	})
}

// loadYAML decodes every .yaml file under dataDir whose path contains kind
func loadYAML[T any](dataDir, kind string) ([]T, error) {
	var files []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var file T
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			files = append(files, file)
		}
		return nil
	})

	return files, err
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	err := db.Where("clerk_id = ?", userData.ClerkID).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	user = models.User{
		ClerkID:        userData.ClerkID,
		Username:       userData.Username,
		Email:          userData.Email,
		FullName:       userData.FullName,
		ProfilePicture: optional(userData.ProfilePicture),
		Bio:            optional(userData.Bio),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createTeam(db *gorm.DB, teamData TeamData, userMap map[string]*models.User) (*models.Team, bool, error) {
	var team models.Team
	created := false

	err := db.Where("name = ?", teamData.Name).First(&team).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		team = models.Team{Name: teamData.Name, Description: optional(teamData.Description)}
		if err := db.Create(&team).Error; err != nil {
			return nil, false, err
		}
		created = true
	case err != nil:
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	for _, memberData := range teamData.Members {
		user := userMap[memberData.Username]
		if user == nil {
			return nil, false, fmt.Errorf("user %s not found for team %s", memberData.Username, teamData.Name)
		}

		role := models.TeamRoleMember
		if memberData.Role != "" {
			role = models.TeamRole(memberData.Role)
		}
		if !role.IsValid() {
			return nil, false, fmt.Errorf("invalid role %q for %s", memberData.Role, memberData.Username)
		}

		member := models.TeamMember{UserID: user.ID, TeamID: team.ID, Role: role}
		if err := db.Where("user_id = ? AND team_id = ?", user.ID, team.ID).FirstOrCreate(&member).Error; err != nil {
			return nil, false, fmt.Errorf("failed to add %s to team: %w", memberData.Username, err)
		}
	}

	return &team, created, nil
}

func createHackathon(db *gorm.DB, hackathonData HackathonData, userMap map[string]*models.User, teamMap map[string]*models.Team) (bool, error) {
	var hackathon models.Hackathon
	created := false

	err := db.Where("name = ?", hackathonData.Name).First(&hackathon).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		status := models.HackathonStatusUpcoming
		if hackathonData.Status != "" {
			status = models.HackathonStatus(hackathonData.Status)
		}
		if !status.IsValid() {
			return false, fmt.Errorf("invalid status %q", hackathonData.Status)
		}
		if hackathonData.EndDate.Before(hackathonData.StartDate) {
			return false, fmt.Errorf("end_date is before start_date")
		}

		hackathon = models.Hackathon{
			Name:                 hackathonData.Name,
			Description:          hackathonData.Description,
			Location:             hackathonData.Location,
			StartDate:            hackathonData.StartDate,
			EndDate:              hackathonData.EndDate,
			RegistrationDeadline: hackathonData.RegistrationDeadline,
			MaxParticipants:      hackathonData.MaxParticipants,
			Status:               status,
		}
		for _, topic := range hackathonData.Topics {
			hackathon.Topics = append(hackathon.Topics, models.Topic{Name: topic})
		}
		if err := db.Create(&hackathon).Error; err != nil {
			return false, err
		}
		created = true
	case err != nil:
		return false, fmt.Errorf("failed to query hackathon: %w", err)
	}

	entries := make(map[string]*models.TeamParticipation)
	for _, teamName := range hackathonData.Teams {
		team := teamMap[teamName]
		if team == nil {
			return false, fmt.Errorf("team %s not found", teamName)
		}

		entry := models.TeamParticipation{TeamID: team.ID, HackathonID: hackathon.ID}
		if err := db.Where("team_id = ? AND hackathon_id = ?", team.ID, hackathon.ID).
			Attrs(models.TeamParticipation{QRCode: newCode()}).
			FirstOrCreate(&entry).Error; err != nil {
			return false, fmt.Errorf("failed to enter team %s: %w", teamName, err)
		}
		entries[teamName] = &entry
	}

	for _, participantData := range hackathonData.Participants {
		user := userMap[participantData.Username]
		if user == nil {
			return false, fmt.Errorf("user %s not found", participantData.Username)
		}

		participation := models.HackathonParticipation{UserID: user.ID, HackathonID: hackathon.ID}
		attrs := models.HackathonParticipation{QRPass: newCode(), CheckedIn: participantData.CheckedIn}
		if participantData.CheckedIn {
			now := time.Now()
			attrs.CheckedInAt = &now
		}
		if participantData.Team != "" {
			entry := entries[participantData.Team]
			if entry == nil {
				return false, fmt.Errorf("team %s is not entered in this hackathon", participantData.Team)
			}
			attrs.TeamParticipationID = &entry.ID
		}

		if err := db.Where("user_id = ? AND hackathon_id = ?", user.ID, hackathon.ID).
			Attrs(attrs).
			FirstOrCreate(&participation).Error; err != nil {
			return false, fmt.Errorf("failed to register %s: %w", participantData.Username, err)
		}
	}

	return created, nil
}
