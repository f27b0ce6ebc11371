package service

import (
	"fmt"

	"hackathon-backend/internal/database/models"
	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService handles business logic for users and their own edges
type UserService struct {
	repo              repository.UserRepositoryInterface
	teamRepo          repository.TeamRepositoryInterface
	memberRepo        repository.TeamMemberRepositoryInterface
	hackathonRepo     repository.HackathonRepositoryInterface
	participationRepo repository.ParticipationRepositoryInterface
	validator         *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	memberRepo repository.TeamMemberRepositoryInterface,
	hackathonRepo repository.HackathonRepositoryInterface,
	participationRepo repository.ParticipationRepositoryInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		repo:              repo,
		teamRepo:          teamRepo,
		memberRepo:        memberRepo,
		hackathonRepo:     hackathonRepo,
		participationRepo: participationRepo,
		validator:         validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	ClerkID        string  `json:"clerk_id" validate:"required,max=255"`
	Username       string  `json:"username" validate:"required,min=1,max=100"`
	Email          string  `json:"email" validate:"required,email,max=255"`
	FullName       string  `json:"full_name" validate:"required,min=1,max=200"`
	ProfilePicture *string `json:"profile_picture,omitempty" validate:"omitempty,max=500"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

// UpdateUserRequest represents a partial update; nil fields are left unchanged
type UpdateUserRequest struct {
	ClerkID        *string `json:"clerk_id,omitempty" validate:"omitempty,min=1,max=255"`
	Username       *string `json:"username,omitempty" validate:"omitempty,min=1,max=100"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FullName       *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	ProfilePicture *string `json:"profile_picture,omitempty" validate:"omitempty,max=500"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

// ExternalProfileUpdate carries the profile fields mirrored from the identity provider
type ExternalProfileUpdate struct {
	FullName       string
	ProfilePicture *string
}

// CreateUser creates a new user
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user := &models.User{
		ClerkID:        req.ClerkID,
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		ProfilePicture: req.ProfilePicture,
		Bio:            req.Bio,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, writeErr(err, apperrors.ErrUserExists, "create user")
	}

	return toUserResponse(user), nil
}

// GetAllUsers retrieves every user
func (s *UserService) GetAllUsers() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

// UpdateUser applies the supplied fields to an existing user
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrUserNotFound, "get user")
	}

	if req.ClerkID != nil {
		user.ClerkID = *req.ClerkID
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = req.ProfilePicture
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	if err := s.repo.Update(user); err != nil {
		return nil, writeErr(err, apperrors.ErrUserExists, "update user")
	}

	return toUserResponse(user), nil
}

// DeleteUser deletes a user together with its memberships and registrations
func (s *UserService) DeleteUser(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return lookupErr(err, apperrors.ErrUserNotFound, "get user")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// JoinHackathon registers a user for a hackathon with a fresh pass code
func (s *UserService) JoinHackathon(userID, hackathonID uuid.UUID) (*HackathonParticipationResponse, error) {
	if _, err := s.repo.GetByID(userID); err != nil {
		return nil, lookupErr(err, apperrors.ErrUserNotFound, "get user")
	}
	if _, err := s.hackathonRepo.GetByID(hackathonID); err != nil {
		return nil, lookupErr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}

	participation := &models.HackathonParticipation{
		UserID:      userID,
		HackathonID: hackathonID,
		TotalScore:  0,
		QRPass:      newCode(),
	}
	if err := s.participationRepo.CreateHackathonParticipation(participation); err != nil {
		return nil, writeErr(err, apperrors.ErrHackathonParticipationExists, "join hackathon")
	}

	return toHackathonParticipationResponse(participation), nil
}

// LeaveHackathon removes a user's registration and returns it
func (s *UserService) LeaveHackathon(userID, hackathonID uuid.UUID) (*HackathonParticipationResponse, error) {
	participation, err := s.participationRepo.GetHackathonParticipation(userID, hackathonID)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrHackathonParticipationNotFound, "get hackathon participation")
	}

	if err := s.participationRepo.DeleteHackathonParticipation(participation.ID); err != nil {
		return nil, fmt.Errorf("failed to leave hackathon: %w", err)
	}

	return toHackathonParticipationResponse(participation), nil
}

// JoinTeam puts a user on a team as a regular member
func (s *UserService) JoinTeam(userID, teamID uuid.UUID) (*TeamMemberResponse, error) {
	if _, err := s.repo.GetByID(userID); err != nil {
		return nil, lookupErr(err, apperrors.ErrUserNotFound, "get user")
	}
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamNotFound, "get team")
	}

	member := &models.TeamMember{
		UserID: userID,
		TeamID: teamID,
		Role:   models.TeamRoleMember,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, writeErr(err, apperrors.ErrTeamMemberExists, "join team")
	}

	return toTeamMemberResponse(member), nil
}

// LeaveTeam removes a user's roster edge and returns it
func (s *UserService) LeaveTeam(userID, teamID uuid.UUID) (*TeamMemberResponse, error) {
	member, err := s.memberRepo.GetByUserAndTeam(userID, teamID)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamMemberNotFound, "get team membership")
	}

	if err := s.memberRepo.Delete(member.ID); err != nil {
		return nil, fmt.Errorf("failed to leave team: %w", err)
	}

	return toTeamMemberResponse(member), nil
}

// UpdateUserByExternalID mirrors a profile change from the identity provider.
// There is no existence pre-check; an unknown id is reported as an internal failure.
func (s *UserService) UpdateUserByExternalID(clerkID string, update *ExternalProfileUpdate) (*UserResponse, error) {
	updates := map[string]interface{}{"full_name": update.FullName}
	if update.ProfilePicture != nil {
		updates["profile_picture"] = update.ProfilePicture
	}

	user, err := s.repo.UpdateByClerkID(clerkID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update user by clerk id %q: %w", clerkID, err)
	}
	return toUserResponse(user), nil
}

// DeleteUserByExternalID mirrors a deletion from the identity provider, same policy as updates
func (s *UserService) DeleteUserByExternalID(clerkID string) (*UserResponse, error) {
	user, err := s.repo.DeleteByClerkID(clerkID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user by clerk id %q: %w", clerkID, err)
	}
	return toUserResponse(user), nil
}
