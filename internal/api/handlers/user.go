package handlers

import (
	"net/http"

	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users and their own edges
type UserHandler struct {
	userService service.UserServiceInterface
	teamService service.TeamServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, teamService service.TeamServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
		teamService: teamService,
	}
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Description Create a user with unique clerk id, username and email
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse "Successfully created user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "User already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetAllUsers handles GET /users
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} service.UserResponse "Successfully retrieved users"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserByID handles GET /users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrUserNotFound)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PATCH /users/:id
// @Summary Update a user
// @Description Update only the supplied fields of a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "Fields to update"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Username, email or clerk id already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrUserNotFound)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user
// @Description Delete a user with its team memberships and hackathon registrations
// @Tags users
// @Param id path string true "User ID (UUID)"
// @Success 204 "Successfully deleted user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id", apperrors.ErrUserNotFound)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// JoinHackathon handles POST /users/:id/hackathons/:hackathonId
// @Summary Register a user for a hackathon
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param hackathonId path string true "Hackathon ID (UUID)"
// @Success 201 {object} service.HackathonParticipationResponse "Registration created"
// @Failure 404 {object} ErrorResponse "User or hackathon not found"
// @Failure 409 {object} ErrorResponse "Already registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id}/hackathons/{hackathonId} [post]
func (h *UserHandler) JoinHackathon(c *gin.Context) {
	userID, ok := pathID(c, "id", apperrors.ErrUserNotFound)
	if !ok {
		return
	}
	hackathonID, ok := pathID(c, "hackathonId", apperrors.ErrHackathonNotFound)
	if !ok {
		return
	}

	participation, err := h.userService.JoinHackathon(userID, hackathonID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, participation)
}

// LeaveHackathon handles DELETE /users/:id/hackathons/:hackathonId
// @Summary Withdraw a user's hackathon registration
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param hackathonId path string true "Hackathon ID (UUID)"
// @Success 200 {object} service.HackathonParticipationResponse "Removed registration"
// @Failure 404 {object} ErrorResponse "Registration not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id}/hackathons/{hackathonId} [delete]
func (h *UserHandler) LeaveHackathon(c *gin.Context) {
	userID, ok := pathID(c, "id", apperrors.ErrHackathonParticipationNotFound)
	if !ok {
		return
	}
	hackathonID, ok := pathID(c, "hackathonId", apperrors.ErrHackathonParticipationNotFound)
	if !ok {
		return
	}

	participation, err := h.userService.LeaveHackathon(userID, hackathonID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, participation)
}

// JoinTeam handles POST /users/:id/teams/:teamId
// @Summary Add a user to a team
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Success 201 {object} service.TeamMemberResponse "Membership created"
// @Failure 404 {object} ErrorResponse "User or team not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id}/teams/{teamId} [post]
func (h *UserHandler) JoinTeam(c *gin.Context) {
	userID, ok := pathID(c, "id", apperrors.ErrUserNotFound)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "teamId", apperrors.ErrTeamNotFound)
	if !ok {
		return
	}

	member, err := h.userService.JoinTeam(userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// LeaveTeam handles DELETE /users/:id/teams/:teamId
// @Summary Remove a user from a team
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamMemberResponse "Removed membership"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id}/teams/{teamId} [delete]
func (h *UserHandler) LeaveTeam(c *gin.Context) {
	userID, ok := pathID(c, "id", apperrors.ErrTeamMemberNotFound)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "teamId", apperrors.ErrTeamMemberNotFound)
	if !ok {
		return
	}

	member, err := h.userService.LeaveTeam(userID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetTeamsForUser handles GET /users/:id/teams
// @Summary List a user's teams
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {array} service.TeamResponse "Teams the user belongs to"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id}/teams [get]
func (h *UserHandler) GetTeamsForUser(c *gin.Context) {
	userID, ok := pathID(c, "id", apperrors.ErrUserNotFound)
	if !ok {
		return
	}

	teams, err := h.teamService.GetTeamsForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
