package models

import (
	"github.com/google/uuid"
)

// TeamMember is the roster edge between a user and a team.
// At most one edge exists per (user, team) pair.
type TeamMember struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_user_team"`
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_user_team;index"`
	Role   TeamRole  `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
