package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"hackathon-backend/internal/api/handlers"
	"hackathon-backend/internal/database/models"
	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/mocks"
	"hackathon-backend/internal/service"
	"hackathon-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HackathonHandlerTestSuite defines the test suite for HackathonHandler
type HackathonHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockHackathonServiceInterface
	handler     *handlers.HackathonHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *HackathonHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHackathonServiceInterface(suite.ctrl)
	suite.handler = handlers.NewHackathonHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	hackathons := suite.httpSuite.Router.Group("/api/v1/hackathons")
	{
		hackathons.POST("", suite.handler.CreateHackathon)
		hackathons.GET("", suite.handler.GetAllHackathons)
		hackathons.GET("/:id", suite.handler.GetHackathonByID)
		hackathons.PATCH("/:id", suite.handler.UpdateHackathon)
		hackathons.DELETE("/:id", suite.handler.DeleteHackathon)
		hackathons.POST("/:id/teams/:teamId", suite.handler.AddTeam)
		hackathons.DELETE("/:id/teams/:teamId", suite.handler.RemoveTeam)
		hackathons.GET("/:id/participants", suite.handler.GetParticipants)
		hackathons.GET("/:id/teams", suite.handler.GetTeams)
	}
}

// TearDownTest cleans up after each test
func (suite *HackathonHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateHackathon tests decoding dates and topics
func (suite *HackathonHandlerTestSuite) TestCreateHackathon() {
	suite.Run("Success", func() {
		suite.mockService.EXPECT().
			CreateHackathon(gomock.Any()).
			DoAndReturn(func(req *service.CreateHackathonRequest) (*service.HackathonResponse, error) {
				suite.Equal(time.Date(2026, 11, 20, 9, 0, 0, 0, time.UTC), req.StartDate.UTC())
				suite.Equal([]string{"AI"}, req.Topics)
				return &service.HackathonResponse{
					ID:                 uuid.New(),
					Name:               req.Name,
					Status:             models.HackathonStatusUpcoming,
					Participants:       []service.HackathonParticipationResponse{},
					TeamParticipations: []service.TeamParticipationResponse{},
					Topics:             []service.TopicResponse{{ID: uuid.New(), Name: "AI"}},
				}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/hackathons", map[string]interface{}{
			"name":                  "Winter Hack",
			"description":           "48 hours",
			"location":              "Lisbon",
			"start_date":            "2026-11-20T09:00:00Z",
			"end_date":              "2026-11-22T09:00:00Z",
			"max_participants":      100,
			"registration_deadline": "2026-11-15T00:00:00Z",
			"topics":                []string{"AI"},
		})

		var response service.HackathonResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
		suite.Equal(models.HackathonStatusUpcoming, response.Status)
		suite.NotNil(response.Participants)
		suite.Len(response.Topics, 1)
	})

	suite.Run("Bad date", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/hackathons", map[string]interface{}{
			"start_date": "next tuesday",
		})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid request body")
	})

	suite.Run("Inverted range", func() {
		suite.mockService.EXPECT().CreateHackathon(gomock.Any()).Return(nil, apperrors.ErrInvalidTimeRange).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/hackathons", map[string]interface{}{"name": "x"})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "end_date")
	})
}

// TestGetHackathonByID tests fetching a hackathon
func (suite *HackathonHandlerTestSuite) TestGetHackathonByID() {
	suite.Run("Not found", func() {
		suite.mockService.EXPECT().GetHackathonByID(gomock.Any()).Return(nil, apperrors.ErrHackathonNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/hackathons/"+uuid.NewString(), nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "hackathon not found")
	})

	suite.Run("Malformed id", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/hackathons/abc", nil)

		suite.Equal(http.StatusNotFound, recorder.Code)
	})
}

// TestUpdateAndDeleteHackathon tests the PATCH and DELETE endpoints
func (suite *HackathonHandlerTestSuite) TestUpdateAndDeleteHackathon() {
	id := uuid.New()

	suite.Run("Update", func() {
		suite.mockService.EXPECT().
			UpdateHackathon(id, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.UpdateHackathonRequest) (*service.HackathonResponse, error) {
				suite.Require().NotNil(req.Status)
				suite.Nil(req.Name)
				return &service.HackathonResponse{ID: id, Status: *req.Status}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/hackathons/"+id.String(), map[string]interface{}{"status": "ONGOING"})

		var response service.HackathonResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.Equal(models.HackathonStatusOngoing, response.Status)
	})

	suite.Run("Delete", func() {
		suite.mockService.EXPECT().DeleteHackathon(id).Return(&service.HackathonResponse{ID: id, Name: "Winter Hack"}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/hackathons/"+id.String(), nil)

		var response service.HackathonResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.Equal("Winter Hack", response.Name)
	})
}

// TestTeamEntries tests entering and withdrawing teams
func (suite *HackathonHandlerTestSuite) TestTeamEntries() {
	hackathonID, teamID := uuid.New(), uuid.New()
	url := "/api/v1/hackathons/" + hackathonID.String() + "/teams/" + teamID.String()

	suite.Run("Add", func() {
		suite.mockService.EXPECT().
			AddTeam(hackathonID, teamID).
			Return(&service.TeamParticipationResponse{TeamID: teamID, HackathonID: hackathonID, QRCode: "code"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, nil)

		var response service.TeamParticipationResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
		suite.Equal("code", response.QRCode)
	})

	suite.Run("Add twice", func() {
		suite.mockService.EXPECT().AddTeam(hackathonID, teamID).Return(nil, apperrors.ErrTeamParticipationExists).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, url, nil)

		suite.Equal(http.StatusConflict, recorder.Code)
	})

	suite.Run("Remove", func() {
		suite.mockService.EXPECT().RemoveTeam(hackathonID, teamID).Return(&service.TeamParticipationResponse{TeamID: teamID}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, url, nil)

		suite.Equal(http.StatusOK, recorder.Code)
	})

	suite.Run("List", func() {
		suite.mockService.EXPECT().GetTeams(hackathonID).Return([]service.TeamResponse{{ID: teamID, Name: "builders"}}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/hackathons/"+hackathonID.String()+"/teams", nil)

		var response []service.TeamResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.Require().Len(response, 1)
		suite.Equal(teamID, response[0].ID)
	})
}

// TestGetParticipants tests listing registrations
func (suite *HackathonHandlerTestSuite) TestGetParticipants() {
	suite.Run("Missing hackathon", func() {
		suite.mockService.EXPECT().GetParticipants(gomock.Any()).Return(nil, apperrors.ErrHackathonNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/hackathons/"+uuid.NewString()+"/participants", nil)

		suite.Equal(http.StatusNotFound, recorder.Code)
	})

	suite.Run("Success", func() {
		id := uuid.New()
		suite.mockService.EXPECT().
			GetParticipants(id).
			Return([]service.HackathonParticipationResponse{{HackathonID: id, User: &service.UserResponse{Username: "ada"}}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/hackathons/"+id.String()+"/participants", nil)

		var response []service.HackathonParticipationResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
		suite.Require().Len(response, 1)
		suite.Equal("ada", response[0].User.Username)
	})
}

// TestHackathonHandlerTestSuite runs the test suite
func TestHackathonHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HackathonHandlerTestSuite))
}
