package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic is a label belonging to exactly one hackathon
type Topic struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate sets the UUID if not already set
func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for Topic
func (Topic) TableName() string {
	return "topics"
}
