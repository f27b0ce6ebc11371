package repository

import (
	"hackathon-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HackathonRepository handles database operations for hackathons
type HackathonRepository struct {
	db *gorm.DB
}

// NewHackathonRepository creates a new hackathon repository
func NewHackathonRepository(db *gorm.DB) *HackathonRepository {
	return &HackathonRepository{db: db}
}

// Create creates a new hackathon together with any topics set on it
func (r *HackathonRepository) Create(hackathon *models.Hackathon) error {
	return r.db.Create(hackathon).Error
}

// GetByID retrieves a hackathon by ID without relations
func (r *HackathonRepository) GetByID(id uuid.UUID) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := r.db.First(&hackathon, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

// GetAll retrieves every hackathon with participants, team entries and topics
func (r *HackathonRepository) GetAll() ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	if err := r.withDetails().Order("start_date ASC").Find(&hackathons).Error; err != nil {
		return nil, err
	}
	return hackathons, nil
}

// GetWithDetails retrieves a hackathon with participants, team entries and topics
func (r *HackathonRepository) GetWithDetails(id uuid.UUID) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := r.withDetails().First(&hackathon, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

// Update updates a hackathon's own columns
func (r *HackathonRepository) Update(hackathon *models.Hackathon) error {
	return r.db.Omit("Participants", "TeamParticipations", "Topics").Save(hackathon).Error
}

// Delete deletes a hackathon
func (r *HackathonRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Hackathon{}, "id = ?", id).Error
}

func (r *HackathonRepository) withDetails() *gorm.DB {
	return r.db.
		Preload("Participants").
		Preload("TeamParticipations").
		Preload("Topics")
}
