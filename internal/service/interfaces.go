package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetAllUsers() ([]UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(id uuid.UUID) error
	JoinHackathon(userID, hackathonID uuid.UUID) (*HackathonParticipationResponse, error)
	LeaveHackathon(userID, hackathonID uuid.UUID) (*HackathonParticipationResponse, error)
	JoinTeam(userID, teamID uuid.UUID) (*TeamMemberResponse, error)
	LeaveTeam(userID, teamID uuid.UUID) (*TeamMemberResponse, error)
	UpdateUserByExternalID(clerkID string, update *ExternalProfileUpdate) (*UserResponse, error)
	DeleteUserByExternalID(clerkID string) (*UserResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetAllTeams() ([]TeamResponse, error)
	GetTeamByID(id uuid.UUID) (*TeamResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(id uuid.UUID) (*TeamResponse, error)
	AddMember(teamID, userID uuid.UUID) (*TeamWithMembersResponse, error)
	RemoveMember(teamID, userID uuid.UUID) (*TeamWithMembersResponse, error)
	GetMembers(teamID uuid.UUID) ([]UserResponse, error)
	GetTeamsForUser(userID uuid.UUID) ([]TeamResponse, error)
}

// HackathonServiceInterface defines the interface for hackathon service
type HackathonServiceInterface interface {
	CreateHackathon(req *CreateHackathonRequest) (*HackathonResponse, error)
	GetAllHackathons() ([]HackathonResponse, error)
	GetHackathonByID(id uuid.UUID) (*HackathonResponse, error)
	UpdateHackathon(id uuid.UUID, req *UpdateHackathonRequest) (*HackathonResponse, error)
	DeleteHackathon(id uuid.UUID) (*HackathonResponse, error)
	AddTeam(hackathonID, teamID uuid.UUID) (*TeamParticipationResponse, error)
	RemoveTeam(hackathonID, teamID uuid.UUID) (*TeamParticipationResponse, error)
	GetParticipants(hackathonID uuid.UUID) ([]HackathonParticipationResponse, error)
	GetTeams(hackathonID uuid.UUID) ([]TeamResponse, error)
}

// IdentityServiceInterface defines the interface for the identity webhook bridge
type IdentityServiceInterface interface {
	HandleWebhook(ctx context.Context, payload []byte, headers http.Header) (*WebhookResponse, error)
}

// IdentityProvider is the external identity system the bridge talks to
type IdentityProvider interface {
	VerifySignature(payload []byte, headers http.Header) error
	PushMetadata(ctx context.Context, externalID string, internalID uuid.UUID) error
}
