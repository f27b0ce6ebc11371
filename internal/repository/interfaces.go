package repository

import (
	"hackathon-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByClerkID(clerkID string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	UpdateByClerkID(clerkID string, updates map[string]interface{}) (*models.User, error)
	DeleteByClerkID(clerkID string) (*models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetByUserID(userID uuid.UUID) ([]models.Team, error)
}

// TeamMemberRepositoryInterface defines the interface for team roster edges
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	CreateIfAbsent(member *models.TeamMember) error
	GetByUserAndTeam(userID, teamID uuid.UUID) (*models.TeamMember, error)
	Delete(id uuid.UUID) error
	DeleteByUserAndTeam(userID, teamID uuid.UUID) error
}

// HackathonRepositoryInterface defines the interface for hackathon repository operations
type HackathonRepositoryInterface interface {
	Create(hackathon *models.Hackathon) error
	GetByID(id uuid.UUID) (*models.Hackathon, error)
	GetAll() ([]models.Hackathon, error)
	GetWithDetails(id uuid.UUID) (*models.Hackathon, error)
	Update(hackathon *models.Hackathon) error
	Delete(id uuid.UUID) error
}

// ParticipationRepositoryInterface defines the interface for individual and team participation records
type ParticipationRepositoryInterface interface {
	CreateHackathonParticipation(p *models.HackathonParticipation) error
	GetHackathonParticipation(userID, hackathonID uuid.UUID) (*models.HackathonParticipation, error)
	DeleteHackathonParticipation(id uuid.UUID) error
	ListHackathonParticipations(hackathonID uuid.UUID) ([]models.HackathonParticipation, error)

	CreateTeamParticipation(p *models.TeamParticipation) error
	GetTeamParticipation(teamID, hackathonID uuid.UUID) (*models.TeamParticipation, error)
	DeleteTeamParticipation(id uuid.UUID) error
	ListTeamParticipations(hackathonID uuid.UUID) ([]models.TeamParticipation, error)
}
