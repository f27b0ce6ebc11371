package service

import (
	"time"

	"hackathon-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserResponse represents the response for user operations
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	ClerkID        string    `json:"clerk_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// TeamMemberResponse represents a roster edge, optionally with its user
type TeamMemberResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	TeamID    uuid.UUID       `json:"team_id"`
	Role      models.TeamRole `json:"role"`
	User      *UserResponse   `json:"user,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// TeamWithMembersResponse represents a team together with its roster
type TeamWithMembersResponse struct {
	TeamResponse
	Members []TeamMemberResponse `json:"members"`
}

// TopicResponse represents a hackathon topic
type TopicResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// HackathonParticipationResponse represents an individual registration
type HackathonParticipationResponse struct {
	ID                  uuid.UUID     `json:"id"`
	UserID              uuid.UUID     `json:"user_id"`
	HackathonID         uuid.UUID     `json:"hackathon_id"`
	TeamParticipationID *uuid.UUID    `json:"team_participation_id"`
	TotalScore          int           `json:"total_score"`
	QRPass              string        `json:"qr_pass"`
	CheckedIn           bool          `json:"checked_in"`
	CheckedInAt         *string       `json:"checked_in_at,omitempty"`
	User                *UserResponse `json:"user,omitempty"`
	CreatedAt           string        `json:"created_at"`
}

// TeamParticipationResponse represents a team's entry in a hackathon
type TeamParticipationResponse struct {
	ID          uuid.UUID     `json:"id"`
	TeamID      uuid.UUID     `json:"team_id"`
	HackathonID uuid.UUID     `json:"hackathon_id"`
	TotalScore  int           `json:"total_score"`
	QRCode      string        `json:"qr_code"`
	Team        *TeamResponse `json:"team,omitempty"`
	CreatedAt   string        `json:"created_at"`
}

// HackathonResponse represents the response for hackathon operations
type HackathonResponse struct {
	ID                   uuid.UUID                        `json:"id"`
	Name                 string                           `json:"name"`
	Description          string                           `json:"description"`
	Location             string                           `json:"location"`
	StartDate            string                           `json:"start_date"`
	EndDate              string                           `json:"end_date"`
	MaxParticipants      int                              `json:"max_participants"`
	RegistrationDeadline string                           `json:"registration_deadline"`
	Status               models.HackathonStatus           `json:"status"`
	Participants         []HackathonParticipationResponse `json:"participants"`
	TeamParticipations   []TeamParticipationResponse      `json:"team_participations"`
	Topics               []TopicResponse                  `json:"topics"`
	CreatedAt            string                           `json:"created_at"`
	UpdatedAt            string                           `json:"updated_at"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		ClerkID:        user.ClerkID,
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName,
		ProfilePicture: user.ProfilePicture,
		Bio:            user.Bio,
		CreatedAt:      formatTime(user.CreatedAt),
		UpdatedAt:      formatTime(user.UpdatedAt),
	}
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   formatTime(team.CreatedAt),
		UpdatedAt:   formatTime(team.UpdatedAt),
	}
}

func toTeamMemberResponse(member *models.TeamMember) *TeamMemberResponse {
	resp := &TeamMemberResponse{
		ID:        member.ID,
		UserID:    member.UserID,
		TeamID:    member.TeamID,
		Role:      member.Role,
		CreatedAt: formatTime(member.CreatedAt),
	}
	if member.User != nil {
		resp.User = toUserResponse(member.User)
	}
	return resp
}

func toTeamWithMembersResponse(team *models.Team) *TeamWithMembersResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for i := range team.Members {
		members = append(members, *toTeamMemberResponse(&team.Members[i]))
	}
	return &TeamWithMembersResponse{
		TeamResponse: *toTeamResponse(team),
		Members:      members,
	}
}

func toHackathonParticipationResponse(p *models.HackathonParticipation) *HackathonParticipationResponse {
	resp := &HackathonParticipationResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		HackathonID:         p.HackathonID,
		TeamParticipationID: p.TeamParticipationID,
		TotalScore:          p.TotalScore,
		QRPass:              p.QRPass,
		CheckedIn:           p.CheckedIn,
		CreatedAt:           formatTime(p.CreatedAt),
	}
	if p.CheckedInAt != nil {
		checkedInAt := formatTime(*p.CheckedInAt)
		resp.CheckedInAt = &checkedInAt
	}
	if p.User != nil {
		resp.User = toUserResponse(p.User)
	}
	return resp
}

func toTeamParticipationResponse(p *models.TeamParticipation) *TeamParticipationResponse {
	resp := &TeamParticipationResponse{
		ID:          p.ID,
		TeamID:      p.TeamID,
		HackathonID: p.HackathonID,
		TotalScore:  p.TotalScore,
		QRCode:      p.QRCode,
		CreatedAt:   formatTime(p.CreatedAt),
	}
	if p.Team != nil {
		resp.Team = toTeamResponse(p.Team)
	}
	return resp
}

func toHackathonResponse(h *models.Hackathon) *HackathonResponse {
	resp := &HackathonResponse{
		ID:                   h.ID,
		Name:                 h.Name,
		Description:          h.Description,
		Location:             h.Location,
		StartDate:            formatTime(h.StartDate),
		EndDate:              formatTime(h.EndDate),
		MaxParticipants:      h.MaxParticipants,
		RegistrationDeadline: formatTime(h.RegistrationDeadline),
		Status:               h.Status,
		Participants:         make([]HackathonParticipationResponse, 0, len(h.Participants)),
		TeamParticipations:   make([]TeamParticipationResponse, 0, len(h.TeamParticipations)),
		Topics:               make([]TopicResponse, 0, len(h.Topics)),
		CreatedAt:            formatTime(h.CreatedAt),
		UpdatedAt:            formatTime(h.UpdatedAt),
	}
	for i := range h.Participants {
		resp.Participants = append(resp.Participants, *toHackathonParticipationResponse(&h.Participants[i]))
	}
	for i := range h.TeamParticipations {
		resp.TeamParticipations = append(resp.TeamParticipations, *toTeamParticipationResponse(&h.TeamParticipations[i]))
	}
	for _, topic := range h.Topics {
		resp.Topics = append(resp.Topics, TopicResponse{ID: topic.ID, Name: topic.Name})
	}
	return resp
}
