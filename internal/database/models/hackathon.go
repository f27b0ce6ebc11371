package models

import (
	"time"
)

// Hackathon represents a single hackathon event
type Hackathon struct {
	BaseModel
	Name                 string          `json:"name" gorm:"size:200;not null"`
	Description          string          `json:"description" gorm:"type:text;not null"`
	Location             string          `json:"location" gorm:"size:200;not null"`
	StartDate            time.Time       `json:"start_date" gorm:"not null"`
	EndDate              time.Time       `json:"end_date" gorm:"not null"`
	MaxParticipants      int             `json:"max_participants" gorm:"not null"`
	RegistrationDeadline time.Time       `json:"registration_deadline" gorm:"not null"`
	Status               HackathonStatus `json:"status" gorm:"type:varchar(20);not null;default:'UPCOMING'"`

	// Relationships
	Participants       []HackathonParticipation `json:"participants,omitempty" gorm:"foreignKey:HackathonID;constraint:OnDelete:CASCADE"`
	TeamParticipations []TeamParticipation      `json:"team_participations,omitempty" gorm:"foreignKey:HackathonID;constraint:OnDelete:CASCADE"`
	Topics             []Topic                  `json:"topics,omitempty" gorm:"foreignKey:HackathonID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Hackathon
func (Hackathon) TableName() string {
	return "hackathons"
}
