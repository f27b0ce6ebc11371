package testutils

import (
	"time"

	"hackathon-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with unique identity fields
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	suffix := id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClerkID:  "user_" + suffix,
		Username: "hacker-" + suffix,
		Email:    "hacker-" + suffix + "@test.com",
		FullName: "Ada Lovelace",
	}
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithClerkID sets a custom external identity id for the user
func (f *UserFactory) WithClerkID(clerkID string) *models.User {
	user := f.Create()
	user.ClerkID = clerkID
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	description := "A test team for testing purposes"
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-team",
		Description: &description,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// HackathonFactory provides methods to create test Hackathon data
type HackathonFactory struct{}

// NewHackathonFactory creates a new HackathonFactory
func NewHackathonFactory() *HackathonFactory {
	return &HackathonFactory{}
}

// Create creates an upcoming test Hackathon starting in a week
func (f *HackathonFactory) Create() *models.Hackathon {
	start := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second)
	return &models.Hackathon{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                 "Test Hackathon",
		Description:          "A test hackathon for testing purposes",
		Location:             "Berlin",
		StartDate:            start,
		EndDate:              start.Add(48 * time.Hour),
		MaxParticipants:      100,
		RegistrationDeadline: start.Add(-24 * time.Hour),
		Status:               models.HackathonStatusUpcoming,
	}
}

// WithName sets a custom name for the hackathon
func (f *HackathonFactory) WithName(name string) *models.Hackathon {
	hackathon := f.Create()
	hackathon.Name = name
	return hackathon
}

// WithStatus sets a custom status for the hackathon
func (f *HackathonFactory) WithStatus(status models.HackathonStatus) *models.Hackathon {
	hackathon := f.Create()
	hackathon.Status = status
	return hackathon
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a MEMBER edge between the given user and team
func (f *TeamMemberFactory) Create(userID, teamID uuid.UUID) *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		TeamID:    teamID,
		Role:      models.TeamRoleMember,
	}
}

// ParticipationFactory provides methods to create test participation records
type ParticipationFactory struct{}

// NewParticipationFactory creates a new ParticipationFactory
func NewParticipationFactory() *ParticipationFactory {
	return &ParticipationFactory{}
}

// Hackathon creates an individual registration with a fresh pass code
func (f *ParticipationFactory) Hackathon(userID, hackathonID uuid.UUID) *models.HackathonParticipation {
	return &models.HackathonParticipation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      userID,
		HackathonID: hackathonID,
		QRPass:      uuid.NewString(),
	}
}

// Team creates a team entry with a fresh check-in code
func (f *ParticipationFactory) Team(teamID, hackathonID uuid.UUID) *models.TeamParticipation {
	return &models.TeamParticipation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		TeamID:      teamID,
		HackathonID: hackathonID,
		QRCode:      uuid.NewString(),
	}
}

// FactorySet bundles every factory for suites that need several of them
type FactorySet struct {
	User          *UserFactory
	Team          *TeamFactory
	Hackathon     *HackathonFactory
	TeamMember    *TeamMemberFactory
	Participation *ParticipationFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:          NewUserFactory(),
		Team:          NewTeamFactory(),
		Hackathon:     NewHackathonFactory(),
		TeamMember:    NewTeamMemberFactory(),
		Participation: NewParticipationFactory(),
	}
}
