package handlers

import (
	"net/http"

	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HackathonHandler handles HTTP requests for hackathons and team entries
type HackathonHandler struct {
	hackathonService service.HackathonServiceInterface
}

// NewHackathonHandler creates a new hackathon handler
func NewHackathonHandler(hackathonService service.HackathonServiceInterface) *HackathonHandler {
	return &HackathonHandler{
		hackathonService: hackathonService,
	}
}

// CreateHackathon handles POST /hackathons
// @Summary Create a new hackathon
// @Description Create a hackathon, optionally with topics. Status defaults to UPCOMING.
// @Tags hackathons
// @Accept json
// @Produce json
// @Param hackathon body service.CreateHackathonRequest true "Hackathon data"
// @Success 201 {object} service.HackathonResponse "Successfully created hackathon"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hackathons [post]
func (h *HackathonHandler) CreateHackathon(c *gin.Context) {
	var req service.CreateHackathonRequest
	if !bindJSON(c, &req) {
		return
	}

	hackathon, err := h.hackathonService.CreateHackathon(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hackathon)
}

// GetAllHackathons handles GET /hackathons
// @Summary List all hackathons
// @Tags hackathons
// @Produce json
// @Success 200 {array} service.HackathonResponse "Hackathons with participants, team entries and topics"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hackathons [get]
func (h *HackathonHandler) GetAllHackathons(c *gin.Context) {
	hackathons, err := h.hackathonService.GetAllHackathons()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathons)
}

// GetHackathonByID handles GET /hackathons/:id
// @Summary Get hackathon by ID
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Success 200 {object} service.HackathonResponse "Successfully retrieved hackathon"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hackathons/{id} [get]
func (h *HackathonHandler) GetHackathonByID(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrHackathonNotFound)
	if !ok {
		return
	}

	hackathon, err := h.hackathonService.GetHackathonByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathon)
}

// UpdateHackathon handles PATCH /hackathons/:id
// @Summary Update a hackathon
// @Tags hackathons
// @Accept json
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param hackathon body service.UpdateHackathonRequest true "Fields to update"
// @Success 200 {object} service.HackathonResponse "Successfully updated hackathon"
// @Failure 400 {object} ErrorResponse "Invalid request body or date range"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hackathons/{id} [patch]
func (h *HackathonHandler) UpdateHackathon(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrHackathonNotFound)
	if !ok {
		return
	}

	var req service.UpdateHackathonRequest
	if !bindJSON(c, &req) {
		return
	}

	hackathon, err := h.hackathonService.UpdateHackathon(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathon)
}

// DeleteHackathon handles DELETE /hackathons/:id
// @Summary Delete a hackathon
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Success 200 {object} service.HackathonResponse "Deleted hackathon"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hackathons/{id} [delete]
func (h *HackathonHandler) DeleteHackathon(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrHackathonNotFound)
	if !ok {
		return
	}

	hackathon, err := h.hackathonService.DeleteHackathon(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hackathon)
}

// AddTeam handles POST /hackathons/:id/teams/:teamId
// @Summary Enter a team in a hackathon
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Success 201 {object} service.TeamParticipationResponse "Team entry created"
// @Failure 404 {object} ErrorResponse "Hackathon or team not found"
// @Failure 409 {object} ErrorResponse "Team already entered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hackathons/{id}/teams/{teamId} [post]
func (h *HackathonHandler) AddTeam(c *gin.Context) {
	hackathonID, ok := pathID(c, "id", apperrors.ErrHackathonNotFound)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "teamId", apperrors.ErrTeamNotFound)
	if !ok {
		return
	}

	participation, err := h.hackathonService.AddTeam(hackathonID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, participation)
}

// RemoveTeam handles DELETE /hackathons/:id/teams/:teamId
// @Summary Withdraw a team from a hackathon
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamParticipationResponse "Removed team entry"
// @Failure 404 {object} ErrorResponse "Team entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hackathons/{id}/teams/{teamId} [delete]
func (h *HackathonHandler) RemoveTeam(c *gin.Context) {
	hackathonID, ok := pathID(c, "id", apperrors.ErrTeamParticipationNotFound)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "teamId", apperrors.ErrTeamParticipationNotFound)
	if !ok {
		return
	}

	participation, err := h.hackathonService.RemoveTeam(hackathonID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participation)
}

// GetParticipants handles GET /hackathons/:id/participants
// @Summary List a hackathon's individual registrations
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Success 200 {array} service.HackathonParticipationResponse "Registrations with their users"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hackathons/{id}/participants [get]
func (h *HackathonHandler) GetParticipants(c *gin.Context) {
	hackathonID, ok := pathID(c, "id", apperrors.ErrHackathonNotFound)
	if !ok {
		return
	}

	participants, err := h.hackathonService.GetParticipants(hackathonID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participants)
}

// GetTeams handles GET /hackathons/:id/teams
// @Summary List the teams entered in a hackathon
// @Tags hackathons
// @Produce json
// @Param id path string true "Hackathon ID (UUID)"
// @Success 200 {array} service.TeamResponse "Entered teams"
// @Failure 404 {object} ErrorResponse "Hackathon not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hackathons/{id}/teams [get]
func (h *HackathonHandler) GetTeams(c *gin.Context) {
	hackathonID, ok := pathID(c, "id", apperrors.ErrHackathonNotFound)
	if !ok {
		return
	}

	teams, err := h.hackathonService.GetTeams(hackathonID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
