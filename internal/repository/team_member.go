package repository

import (
	"hackathon-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team roster edges
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create inserts a roster edge; the unique index rejects duplicates
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// CreateIfAbsent checks for an existing edge and inserts in one transaction.
// Returns gorm.ErrDuplicatedKey if the user is already on the team.
func (r *TeamMemberRepository) CreateIfAbsent(member *models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.TeamMember{}).
			Where("user_id = ? AND team_id = ?", member.UserID, member.TeamID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(member).Error
	})
}

// GetByUserAndTeam retrieves the edge for a (user, team) pair
func (r *TeamMemberRepository) GetByUserAndTeam(userID, teamID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "user_id = ? AND team_id = ?", userID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Delete deletes an edge by ID
func (r *TeamMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "id = ?", id).Error
}

// DeleteByUserAndTeam deletes the edge for a (user, team) pair; a missing edge is not an error
func (r *TeamMemberRepository) DeleteByUserAndTeam(userID, teamID uuid.UUID) error {
	return r.db.Where("user_id = ? AND team_id = ?", userID, teamID).Delete(&models.TeamMember{}).Error
}
