package models

// Team represents a group of users that can enter hackathons together
type Team struct {
	BaseModel
	Name        string  `json:"name" gorm:"size:100;not null"`
	Description *string `json:"description,omitempty" gorm:"size:500"`

	// Relationships
	Members            []TeamMember        `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	TeamParticipations []TeamParticipation `json:"team_participations,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
