package models

// User is a participant identity mirrored from the external identity provider
type User struct {
	BaseModel
	ClerkID        string  `json:"clerk_id" gorm:"size:255;not null;uniqueIndex"`
	Username       string  `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Email          string  `json:"email" gorm:"size:255;not null;uniqueIndex"`
	FullName       string  `json:"full_name" gorm:"size:200;not null"`
	ProfilePicture *string `json:"profile_picture,omitempty" gorm:"size:500"`
	Bio            *string `json:"bio,omitempty" gorm:"size:1000"`

	// Relationships
	TeamMemberships         []TeamMember             `json:"team_memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	HackathonParticipations []HackathonParticipation `json:"hackathon_participations,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
