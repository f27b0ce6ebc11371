package service

import (
	"fmt"

	"hackathon-backend/internal/database/models"
	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles business logic for teams and their rosters
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		userRepo:   userRepo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdateTeamRequest represents a partial update; nil fields are left unchanged
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetAllTeams retrieves every team
func (s *TeamService) GetAllTeams() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return toTeamResponses(teams), nil
}

// GetTeamByID retrieves a team by ID
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamNotFound, "get team")
	}
	return toTeamResponse(team), nil
}

// UpdateTeam applies the supplied fields to an existing team
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamNotFound, "get team")
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = req.Description
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return toTeamResponse(team), nil
}

// DeleteTeam deletes a team together with its roster and entries
func (s *TeamService) DeleteTeam(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamNotFound, "get team")
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}
	return toTeamResponse(team), nil
}

// AddMember puts a user on the team and returns the updated roster.
// The duplicate check and insert share one transaction.
func (s *TeamService) AddMember(teamID, userID uuid.UUID) (*TeamWithMembersResponse, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamNotFound, "get team")
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, lookupErr(err, apperrors.ErrUserNotFound, "get user")
	}

	member := &models.TeamMember{
		UserID: userID,
		TeamID: teamID,
		Role:   models.TeamRoleMember,
	}
	if err := s.memberRepo.CreateIfAbsent(member); err != nil {
		return nil, writeErr(err, apperrors.ErrTeamMemberExists, "add team member")
	}

	return s.rosterOf(teamID)
}

// RemoveMember takes a user off the team and returns the updated roster.
// Removing a user that is not on the team is not an error.
func (s *TeamService) RemoveMember(teamID, userID uuid.UUID) (*TeamWithMembersResponse, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamNotFound, "get team")
	}

	if err := s.memberRepo.DeleteByUserAndTeam(userID, teamID); err != nil {
		return nil, fmt.Errorf("failed to remove team member: %w", err)
	}

	return s.rosterOf(teamID)
}

// GetMembers retrieves the users on a team's roster
func (s *TeamService) GetMembers(teamID uuid.UUID) ([]UserResponse, error) {
	team, err := s.repo.GetWithMembers(teamID)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamNotFound, "get team members")
	}

	users := make([]UserResponse, 0, len(team.Members))
	for _, member := range team.Members {
		if member.User != nil {
			users = append(users, *toUserResponse(member.User))
		}
	}
	return users, nil
}

// GetTeamsForUser retrieves the teams a user belongs to
func (s *TeamService) GetTeamsForUser(userID uuid.UUID) ([]TeamResponse, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return nil, lookupErr(err, apperrors.ErrUserNotFound, "get user")
	}

	teams, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams for user: %w", err)
	}
	return toTeamResponses(teams), nil
}

func (s *TeamService) rosterOf(teamID uuid.UUID) (*TeamWithMembersResponse, error) {
	team, err := s.repo.GetWithMembers(teamID)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamNotFound, "get team members")
	}
	return toTeamWithMembersResponse(team), nil
}

func toTeamResponses(teams []models.Team) []TeamResponse {
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return responses
}
