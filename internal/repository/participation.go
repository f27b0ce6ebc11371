package repository

import (
	"hackathon-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipationRepository handles database operations for hackathon and team participation records
type ParticipationRepository struct {
	db *gorm.DB
}

// NewParticipationRepository creates a new participation repository
func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

// CreateHackathonParticipation registers a user for a hackathon
func (r *ParticipationRepository) CreateHackathonParticipation(p *models.HackathonParticipation) error {
	return r.db.Create(p).Error
}

// GetHackathonParticipation retrieves the registration for a (user, hackathon) pair
func (r *ParticipationRepository) GetHackathonParticipation(userID, hackathonID uuid.UUID) (*models.HackathonParticipation, error) {
	var p models.HackathonParticipation
	err := r.db.First(&p, "user_id = ? AND hackathon_id = ?", userID, hackathonID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteHackathonParticipation deletes a registration by ID
func (r *ParticipationRepository) DeleteHackathonParticipation(id uuid.UUID) error {
	return r.db.Delete(&models.HackathonParticipation{}, "id = ?", id).Error
}

// ListHackathonParticipations retrieves a hackathon's individual registrations with their users
func (r *ParticipationRepository) ListHackathonParticipations(hackathonID uuid.UUID) ([]models.HackathonParticipation, error) {
	var ps []models.HackathonParticipation
	err := r.db.Preload("User").
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

// CreateTeamParticipation enters a team in a hackathon
func (r *ParticipationRepository) CreateTeamParticipation(p *models.TeamParticipation) error {
	return r.db.Create(p).Error
}

// GetTeamParticipation retrieves the entry for a (team, hackathon) pair
func (r *ParticipationRepository) GetTeamParticipation(teamID, hackathonID uuid.UUID) (*models.TeamParticipation, error) {
	var p models.TeamParticipation
	err := r.db.First(&p, "team_id = ? AND hackathon_id = ?", teamID, hackathonID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteTeamParticipation deletes a team entry by ID
func (r *ParticipationRepository) DeleteTeamParticipation(id uuid.UUID) error {
	return r.db.Delete(&models.TeamParticipation{}, "id = ?", id).Error
}

// ListTeamParticipations retrieves a hackathon's team entries with their teams
func (r *ParticipationRepository) ListTeamParticipations(hackathonID uuid.UUID) ([]models.TeamParticipation, error) {
	var ps []models.TeamParticipation
	err := r.db.Preload("Team").
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}
