package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrCrossHackathonTeam is returned when a participation is attributed to a
// team entry of a different hackathon.
var ErrCrossHackathonTeam = errors.New("team participation belongs to a different hackathon")

// TeamParticipation records that a team is entered in a hackathon
type TeamParticipation struct {
	BaseModel
	TeamID      uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_participations_team_hackathon"`
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_participations_team_hackathon;index"`
	TotalScore  int       `json:"total_score" gorm:"not null;default:0"`
	QRCode      string    `json:"qr_code" gorm:"size:64;not null;uniqueIndex"`

	// Relationships
	Team         *Team                    `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Hackathon    *Hackathon               `json:"hackathon,omitempty" gorm:"foreignKey:HackathonID"`
	Participants []HackathonParticipation `json:"participants,omitempty" gorm:"foreignKey:TeamParticipationID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for TeamParticipation
func (TeamParticipation) TableName() string {
	return "team_participations"
}

// HackathonParticipation records that an individual user is registered for a hackathon
type HackathonParticipation struct {
	BaseModel
	UserID              uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_hackathon_participations_user_hackathon"`
	HackathonID         uuid.UUID  `json:"hackathon_id" gorm:"type:uuid;not null;uniqueIndex:idx_hackathon_participations_user_hackathon;index"`
	TeamParticipationID *uuid.UUID `json:"team_participation_id,omitempty" gorm:"type:uuid;index"`
	TotalScore          int        `json:"total_score" gorm:"not null;default:0"`
	QRPass              string     `json:"qr_pass" gorm:"size:64;not null;uniqueIndex"`
	CheckedIn           bool       `json:"checked_in" gorm:"not null;default:false"`
	CheckedInAt         *time.Time `json:"checked_in_at,omitempty"`

	// Relationships
	User              *User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Hackathon         *Hackathon         `json:"hackathon,omitempty" gorm:"foreignKey:HackathonID"`
	TeamParticipation *TeamParticipation `json:"team_participation,omitempty" gorm:"foreignKey:TeamParticipationID"`
}

// TableName returns the table name for HackathonParticipation
func (HackathonParticipation) TableName() string {
	return "hackathon_participations"
}

// BeforeSave rejects a team attribution that points at another hackathon's entry
func (p *HackathonParticipation) BeforeSave(tx *gorm.DB) error {
	if p.TeamParticipationID == nil {
		return nil
	}

	var tp TeamParticipation
	if err := tx.Session(&gorm.Session{NewDB: true}).
		Select("id", "hackathon_id").
		First(&tp, "id = ?", *p.TeamParticipationID).Error; err != nil {
		return fmt.Errorf("failed to load team participation: %w", err)
	}
	if tp.HackathonID != p.HackathonID {
		return ErrCrossHackathonTeam
	}
	return nil
}
