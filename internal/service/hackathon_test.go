package service_test

import (
	"testing"
	"time"

	"hackathon-backend/internal/database/models"
	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/mocks"
	"hackathon-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// HackathonServiceTestSuite defines the test suite for HackathonService
type HackathonServiceTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockHackathonRepo     *mocks.MockHackathonRepositoryInterface
	mockTeamRepo          *mocks.MockTeamRepositoryInterface
	mockParticipationRepo *mocks.MockParticipationRepositoryInterface
	hackathonService      *service.HackathonService
}

// SetupTest sets up the test suite
func (suite *HackathonServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockHackathonRepo = mocks.NewMockHackathonRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockParticipationRepo = mocks.NewMockParticipationRepositoryInterface(suite.ctrl)
	suite.hackathonService = service.NewHackathonService(suite.mockHackathonRepo, suite.mockTeamRepo, suite.mockParticipationRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *HackathonServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validCreateHackathonRequest() *service.CreateHackathonRequest {
	start := time.Date(2026, 11, 20, 9, 0, 0, 0, time.UTC)
	return &service.CreateHackathonRequest{
		Name:                 "Winter Hack",
		Description:          "48 hours of building",
		Location:             "Lisbon",
		StartDate:            start,
		EndDate:              start.Add(48 * time.Hour),
		MaxParticipants:      120,
		RegistrationDeadline: start.Add(-72 * time.Hour),
		Topics:               []string{"AI", "Climate"},
	}
}

// TestCreateHackathon tests the default status and topic creation
func (suite *HackathonServiceTestSuite) TestCreateHackathon() {
	suite.mockHackathonRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(h *models.Hackathon) error {
			suite.Len(h.Topics, 2)
			suite.Equal(models.HackathonStatusUpcoming, h.Status)
			return nil
		}).
		Times(1)

	response, err := suite.hackathonService.CreateHackathon(validCreateHackathonRequest())

	suite.NoError(err)
	suite.Equal(models.HackathonStatusUpcoming, response.Status)
	suite.Equal("2026-11-20T09:00:00Z", response.StartDate)
	suite.Len(response.Topics, 2)
	suite.Empty(response.Participants)
}

// TestCreateHackathonValidation tests the declarative rules
func (suite *HackathonServiceTestSuite) TestCreateHackathonValidation() {
	cases := map[string]func(r *service.CreateHackathonRequest){
		"end before start": func(r *service.CreateHackathonRequest) { r.EndDate = r.StartDate.Add(-time.Hour) },
		"no participants":  func(r *service.CreateHackathonRequest) { r.MaxParticipants = 0 },
		"unknown status":   func(r *service.CreateHackathonRequest) { r.Status = "CANCELLED" },
		"missing location": func(r *service.CreateHackathonRequest) { r.Location = "" },
		"missing deadline": func(r *service.CreateHackathonRequest) { r.RegistrationDeadline = time.Time{} },
		"blank topic":      func(r *service.CreateHackathonRequest) { r.Topics = []string{""} },
	}

	for name, mutate := range cases {
		suite.Run(name, func() {
			req := validCreateHackathonRequest()
			mutate(req)

			_, err := suite.hackathonService.CreateHackathon(req)

			suite.True(apperrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

// TestGetHackathonByID tests relations are carried into the response
func (suite *HackathonServiceTestSuite) TestGetHackathonByID() {
	id := uuid.New()
	suite.mockHackathonRepo.EXPECT().GetWithDetails(id).Return(&models.Hackathon{
		BaseModel:          models.BaseModel{ID: id},
		Participants:       []models.HackathonParticipation{{QRPass: "p1"}},
		TeamParticipations: []models.TeamParticipation{{QRCode: "c1"}},
		Topics:             []models.Topic{{Name: "AI"}},
	}, nil).Times(1)

	response, err := suite.hackathonService.GetHackathonByID(id)

	suite.NoError(err)
	suite.Len(response.Participants, 1)
	suite.Len(response.TeamParticipations, 1)
	suite.Equal("AI", response.Topics[0].Name)
}

// TestGetHackathonByIDNotFound tests the not found mapping
func (suite *HackathonServiceTestSuite) TestGetHackathonByIDNotFound() {
	suite.mockHackathonRepo.EXPECT().GetWithDetails(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.hackathonService.GetHackathonByID(uuid.New())

	suite.ErrorIs(err, apperrors.ErrHackathonNotFound)
}

// TestUpdateHackathonPartial tests that only supplied fields change
func (suite *HackathonServiceTestSuite) TestUpdateHackathonPartial() {
	id := uuid.New()
	start := time.Date(2026, 11, 20, 9, 0, 0, 0, time.UTC)
	suite.mockHackathonRepo.EXPECT().GetByID(id).Return(&models.Hackathon{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Winter Hack",
		Location:  "Lisbon",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
		Status:    models.HackathonStatusUpcoming,
	}, nil).Times(1)
	var saved *models.Hackathon
	suite.mockHackathonRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(h *models.Hackathon) error {
		saved = h
		return nil
	}).Times(1)
	suite.mockHackathonRepo.EXPECT().GetWithDetails(id).DoAndReturn(func(uuid.UUID) (*models.Hackathon, error) {
		saved.Participants = []models.HackathonParticipation{{UserID: uuid.New(), HackathonID: id, QRPass: "pass"}}
		saved.Topics = []models.Topic{{HackathonID: id, Name: "AI"}}
		return saved, nil
	}).Times(1)

	ongoing := models.HackathonStatusOngoing
	response, err := suite.hackathonService.UpdateHackathon(id, &service.UpdateHackathonRequest{Status: &ongoing})

	suite.NoError(err)
	suite.Equal(models.HackathonStatusOngoing, response.Status)
	suite.Equal("Winter Hack", response.Name)
	suite.Equal("Lisbon", response.Location)
	suite.Len(response.Participants, 1)
	suite.Len(response.Topics, 1)
}

// TestUpdateHackathonInvertedDates tests the merged date range check
func (suite *HackathonServiceTestSuite) TestUpdateHackathonInvertedDates() {
	id := uuid.New()
	start := time.Date(2026, 11, 20, 9, 0, 0, 0, time.UTC)
	suite.mockHackathonRepo.EXPECT().GetByID(id).Return(&models.Hackathon{
		BaseModel: models.BaseModel{ID: id},
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	}, nil).Times(1)

	earlier := start.Add(-time.Hour)
	_, err := suite.hackathonService.UpdateHackathon(id, &service.UpdateHackathonRequest{EndDate: &earlier})

	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

// TestDeleteHackathonReturnsRelations tests that the deleted record carries its registrations
func (suite *HackathonServiceTestSuite) TestDeleteHackathonReturnsRelations() {
	id := uuid.New()
	suite.mockHackathonRepo.EXPECT().GetWithDetails(id).Return(&models.Hackathon{
		BaseModel:          models.BaseModel{ID: id},
		Name:               "Winter Hack",
		Participants:       []models.HackathonParticipation{{UserID: uuid.New(), HackathonID: id, QRPass: "pass"}},
		TeamParticipations: []models.TeamParticipation{{TeamID: uuid.New(), HackathonID: id, QRCode: "code"}},
	}, nil).Times(1)
	suite.mockHackathonRepo.EXPECT().Delete(id).Return(nil).Times(1)

	response, err := suite.hackathonService.DeleteHackathon(id)

	suite.NoError(err)
	suite.Equal("Winter Hack", response.Name)
	suite.Len(response.Participants, 1)
	suite.Len(response.TeamParticipations, 1)
}

// TestDeleteHackathonNotFound tests deleting a missing hackathon
func (suite *HackathonServiceTestSuite) TestDeleteHackathonNotFound() {
	suite.mockHackathonRepo.EXPECT().GetWithDetails(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.hackathonService.DeleteHackathon(uuid.New())

	suite.ErrorIs(err, apperrors.ErrHackathonNotFound)
}

// TestAddTeam tests entering a team
func (suite *HackathonServiceTestSuite) TestAddTeam() {
	hackathonID, teamID := uuid.New(), uuid.New()
	suite.mockHackathonRepo.EXPECT().GetByID(hackathonID).Return(&models.Hackathon{}, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(&models.Team{}, nil).Times(1)
	suite.mockParticipationRepo.EXPECT().CreateTeamParticipation(gomock.Any()).Return(nil).Times(1)

	response, err := suite.hackathonService.AddTeam(hackathonID, teamID)

	suite.NoError(err)
	suite.Equal(teamID, response.TeamID)
	suite.Equal(0, response.TotalScore)
	suite.NotEmpty(response.QRCode)
}

// TestAddTeamDuplicate tests the unique index guard
func (suite *HackathonServiceTestSuite) TestAddTeamDuplicate() {
	suite.mockHackathonRepo.EXPECT().GetByID(gomock.Any()).Return(&models.Hackathon{}, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any()).Return(&models.Team{}, nil).Times(1)
	suite.mockParticipationRepo.EXPECT().CreateTeamParticipation(gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(1)

	_, err := suite.hackathonService.AddTeam(uuid.New(), uuid.New())

	suite.ErrorIs(err, apperrors.ErrTeamParticipationExists)
}

// TestAddTeamMissingTeam tests the team existence check
func (suite *HackathonServiceTestSuite) TestAddTeamMissingTeam() {
	suite.mockHackathonRepo.EXPECT().GetByID(gomock.Any()).Return(&models.Hackathon{}, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.hackathonService.AddTeam(uuid.New(), uuid.New())

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestRemoveTeam tests withdrawing an entry returns it
func (suite *HackathonServiceTestSuite) TestRemoveTeam() {
	hackathonID, teamID := uuid.New(), uuid.New()
	entry := &models.TeamParticipation{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: teamID, HackathonID: hackathonID, QRCode: "c1"}
	suite.mockParticipationRepo.EXPECT().GetTeamParticipation(teamID, hackathonID).Return(entry, nil).Times(1)
	suite.mockParticipationRepo.EXPECT().DeleteTeamParticipation(entry.ID).Return(nil).Times(1)

	response, err := suite.hackathonService.RemoveTeam(hackathonID, teamID)

	suite.NoError(err)
	suite.Equal("c1", response.QRCode)
}

// TestRemoveTeamNotEntered tests withdrawing a team that was never entered
func (suite *HackathonServiceTestSuite) TestRemoveTeamNotEntered() {
	suite.mockParticipationRepo.EXPECT().GetTeamParticipation(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.hackathonService.RemoveTeam(uuid.New(), uuid.New())

	suite.ErrorIs(err, apperrors.ErrTeamParticipationNotFound)
}

// TestGetParticipantsMissingHackathon tests the hackathon existence check
func (suite *HackathonServiceTestSuite) TestGetParticipantsMissingHackathon() {
	suite.mockHackathonRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.hackathonService.GetParticipants(uuid.New())

	suite.ErrorIs(err, apperrors.ErrHackathonNotFound)
}

// TestGetParticipants tests listing registrations with users
func (suite *HackathonServiceTestSuite) TestGetParticipants() {
	id := uuid.New()
	suite.mockHackathonRepo.EXPECT().GetByID(id).Return(&models.Hackathon{}, nil).Times(1)
	suite.mockParticipationRepo.EXPECT().ListHackathonParticipations(id).Return([]models.HackathonParticipation{
		{HackathonID: id, User: &models.User{Username: "ada"}},
	}, nil).Times(1)

	participants, err := suite.hackathonService.GetParticipants(id)

	suite.NoError(err)
	suite.Require().Len(participants, 1)
	suite.Equal("ada", participants[0].User.Username)
}

// TestGetTeams tests projecting team entries to teams
func (suite *HackathonServiceTestSuite) TestGetTeams() {
	id := uuid.New()
	suite.mockHackathonRepo.EXPECT().GetByID(id).Return(&models.Hackathon{}, nil).Times(1)
	suite.mockParticipationRepo.EXPECT().ListTeamParticipations(id).Return([]models.TeamParticipation{
		{HackathonID: id, Team: &models.Team{Name: "builders"}},
	}, nil).Times(1)

	teams, err := suite.hackathonService.GetTeams(id)

	suite.NoError(err)
	suite.Require().Len(teams, 1)
	suite.Equal("builders", teams[0].Name)
}

// TestHackathonServiceTestSuite runs the test suite
func TestHackathonServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HackathonServiceTestSuite))
}
