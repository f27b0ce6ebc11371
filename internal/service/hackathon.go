package service

import (
	"fmt"
	"time"

	"hackathon-backend/internal/database/models"
	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// HackathonService handles business logic for hackathons and team entries
type HackathonService struct {
	repo              repository.HackathonRepositoryInterface
	teamRepo          repository.TeamRepositoryInterface
	participationRepo repository.ParticipationRepositoryInterface
	validator         *validator.Validate
}

// NewHackathonService creates a new hackathon service
func NewHackathonService(repo repository.HackathonRepositoryInterface, teamRepo repository.TeamRepositoryInterface, participationRepo repository.ParticipationRepositoryInterface, validator *validator.Validate) *HackathonService {
	return &HackathonService{
		repo:              repo,
		teamRepo:          teamRepo,
		participationRepo: participationRepo,
		validator:         validator,
	}
}

// CreateHackathonRequest represents the request to create a hackathon
type CreateHackathonRequest struct {
	Name                 string                 `json:"name" validate:"required,min=1,max=200"`
	Description          string                 `json:"description" validate:"required"`
	Location             string                 `json:"location" validate:"required,max=200"`
	StartDate            time.Time              `json:"start_date" validate:"required"`
	EndDate              time.Time              `json:"end_date" validate:"required,gtefield=StartDate"`
	MaxParticipants      int                    `json:"max_participants" validate:"required,min=1"`
	RegistrationDeadline time.Time              `json:"registration_deadline" validate:"required"`
	Status               models.HackathonStatus `json:"status,omitempty" validate:"omitempty,oneof=UPCOMING ONGOING FINISHED"`
	Topics               []string               `json:"topics,omitempty" validate:"omitempty,dive,required,max=100"`
}

// UpdateHackathonRequest represents a partial update; nil fields are left unchanged
type UpdateHackathonRequest struct {
	Name                 *string                 `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description          *string                 `json:"description,omitempty" validate:"omitempty,min=1"`
	Location             *string                 `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	StartDate            *time.Time              `json:"start_date,omitempty"`
	EndDate              *time.Time              `json:"end_date,omitempty"`
	MaxParticipants      *int                    `json:"max_participants,omitempty" validate:"omitempty,min=1"`
	RegistrationDeadline *time.Time              `json:"registration_deadline,omitempty"`
	Status               *models.HackathonStatus `json:"status,omitempty" validate:"omitempty,oneof=UPCOMING ONGOING FINISHED"`
}

// CreateHackathon creates a new hackathon and its topics
func (s *HackathonService) CreateHackathon(req *CreateHackathonRequest) (*HackathonResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.HackathonStatusUpcoming
	}

	hackathon := &models.Hackathon{
		Name:                 req.Name,
		Description:          req.Description,
		Location:             req.Location,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		MaxParticipants:      req.MaxParticipants,
		RegistrationDeadline: req.RegistrationDeadline,
		Status:               status,
	}
	for _, name := range req.Topics {
		hackathon.Topics = append(hackathon.Topics, models.Topic{Name: name})
	}

	if err := s.repo.Create(hackathon); err != nil {
		return nil, fmt.Errorf("failed to create hackathon: %w", err)
	}

	return toHackathonResponse(hackathon), nil
}

// GetAllHackathons retrieves every hackathon with its participants, entries and topics
func (s *HackathonService) GetAllHackathons() ([]HackathonResponse, error) {
	hackathons, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get hackathons: %w", err)
	}

	responses := make([]HackathonResponse, len(hackathons))
	for i := range hackathons {
		responses[i] = *toHackathonResponse(&hackathons[i])
	}
	return responses, nil
}

// GetHackathonByID retrieves a hackathon with its participants, entries and topics
func (s *HackathonService) GetHackathonByID(id uuid.UUID) (*HackathonResponse, error) {
	hackathon, err := s.repo.GetWithDetails(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}
	return toHackathonResponse(hackathon), nil
}

// UpdateHackathon applies the supplied fields to an existing hackathon
func (s *HackathonService) UpdateHackathon(id uuid.UUID, req *UpdateHackathonRequest) (*HackathonResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	hackathon, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}

	if req.Name != nil {
		hackathon.Name = *req.Name
	}
	if req.Description != nil {
		hackathon.Description = *req.Description
	}
	if req.Location != nil {
		hackathon.Location = *req.Location
	}
	if req.StartDate != nil {
		hackathon.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		hackathon.EndDate = *req.EndDate
	}
	if req.MaxParticipants != nil {
		hackathon.MaxParticipants = *req.MaxParticipants
	}
	if req.RegistrationDeadline != nil {
		hackathon.RegistrationDeadline = *req.RegistrationDeadline
	}
	if req.Status != nil {
		hackathon.Status = *req.Status
	}

	if hackathon.EndDate.Before(hackathon.StartDate) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if err := s.repo.Update(hackathon); err != nil {
		return nil, fmt.Errorf("failed to update hackathon: %w", err)
	}

	updated, err := s.repo.GetWithDetails(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}
	return toHackathonResponse(updated), nil
}

// DeleteHackathon deletes a hackathon with its registrations, entries and topics
func (s *HackathonService) DeleteHackathon(id uuid.UUID) (*HackathonResponse, error) {
	hackathon, err := s.repo.GetWithDetails(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete hackathon: %w", err)
	}
	return toHackathonResponse(hackathon), nil
}

// AddTeam enters a team in a hackathon with a fresh check-in code
func (s *HackathonService) AddTeam(hackathonID, teamID uuid.UUID) (*TeamParticipationResponse, error) {
	if _, err := s.repo.GetByID(hackathonID); err != nil {
		return nil, lookupErr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamNotFound, "get team")
	}

	participation := &models.TeamParticipation{
		TeamID:      teamID,
		HackathonID: hackathonID,
		TotalScore:  0,
		QRCode:      newCode(),
	}
	if err := s.participationRepo.CreateTeamParticipation(participation); err != nil {
		return nil, writeErr(err, apperrors.ErrTeamParticipationExists, "add team to hackathon")
	}

	return toTeamParticipationResponse(participation), nil
}

// RemoveTeam withdraws a team's entry and returns it
func (s *HackathonService) RemoveTeam(hackathonID, teamID uuid.UUID) (*TeamParticipationResponse, error) {
	participation, err := s.participationRepo.GetTeamParticipation(teamID, hackathonID)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrTeamParticipationNotFound, "get team participation")
	}

	if err := s.participationRepo.DeleteTeamParticipation(participation.ID); err != nil {
		return nil, fmt.Errorf("failed to remove team from hackathon: %w", err)
	}

	return toTeamParticipationResponse(participation), nil
}

// GetParticipants retrieves a hackathon's individual registrations
func (s *HackathonService) GetParticipants(hackathonID uuid.UUID) ([]HackathonParticipationResponse, error) {
	if _, err := s.repo.GetByID(hackathonID); err != nil {
		return nil, lookupErr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}

	participations, err := s.participationRepo.ListHackathonParticipations(hackathonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	responses := make([]HackathonParticipationResponse, len(participations))
	for i := range participations {
		responses[i] = *toHackathonParticipationResponse(&participations[i])
	}
	return responses, nil
}

// GetTeams retrieves the teams entered in a hackathon
func (s *HackathonService) GetTeams(hackathonID uuid.UUID) ([]TeamResponse, error) {
	if _, err := s.repo.GetByID(hackathonID); err != nil {
		return nil, lookupErr(err, apperrors.ErrHackathonNotFound, "get hackathon")
	}

	participations, err := s.participationRepo.ListTeamParticipations(hackathonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hackathon teams: %w", err)
	}

	teams := make([]TeamResponse, 0, len(participations))
	for _, p := range participations {
		if p.Team != nil {
			teams = append(teams, *toTeamResponse(p.Team))
		}
	}
	return teams, nil
}
