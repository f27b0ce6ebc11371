package repository

import (
	"hackathon-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByClerkID retrieves a user by external identity id
func (r *UserRepository) GetByClerkID(clerkID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "clerk_id = ?", clerkID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves every user, oldest first
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a user; memberships and participations go with it
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

// UpdateByClerkID applies column updates to the user with the given external id.
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *UserRepository) UpdateByClerkID(clerkID string, updates map[string]interface{}) (*models.User, error) {
	result := r.db.Model(&models.User{}).Where("clerk_id = ?", clerkID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByClerkID(clerkID)
}

// DeleteByClerkID deletes the user with the given external id and returns it.
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *UserRepository) DeleteByClerkID(clerkID string) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "clerk_id = ?", clerkID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", user.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
