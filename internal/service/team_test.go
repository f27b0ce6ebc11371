package service_test

import (
	"testing"

	"hackathon-backend/internal/database/models"
	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/mocks"
	"hackathon-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockMemberRepo *mocks.MockTeamMemberRepositoryInterface
	teamService    *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockUserRepo, suite.mockMemberRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func teamWithMembers(teamID uuid.UUID, users ...*models.User) *models.Team {
	team := &models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "builders"}
	for _, u := range users {
		team.Members = append(team.Members, models.TeamMember{
			BaseModel: models.BaseModel{ID: uuid.New()},
			UserID:    u.ID,
			TeamID:    teamID,
			Role:      models.TeamRoleMember,
			User:      u,
		})
	}
	return team
}

// TestCreateTeam tests creating a team with an optional description
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	suite.mockTeamRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{Name: "builders"})

	suite.NoError(err)
	suite.Equal("builders", response.Name)
	suite.Nil(response.Description)
}

// TestCreateTeamMissingName tests that a name is required
func (suite *TeamServiceTestSuite) TestCreateTeamMissingName() {
	_, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{})

	suite.True(apperrors.IsValidation(err))
}

// TestGetTeamByIDNotFound tests the not found mapping
func (suite *TeamServiceTestSuite) TestGetTeamByIDNotFound() {
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.teamService.GetTeamByID(uuid.New())

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestUpdateTeamPartial tests that only supplied fields change
func (suite *TeamServiceTestSuite) TestUpdateTeamPartial() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(&models.Team{BaseModel: models.BaseModel{ID: id}, Name: "old", Description: strPtr("keep")}, nil).Times(1)
	suite.mockTeamRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.teamService.UpdateTeam(id, &service.UpdateTeamRequest{Name: strPtr("new")})

	suite.NoError(err)
	suite.Equal("new", response.Name)
	suite.Equal("keep", *response.Description)
}

// TestDeleteTeam tests deleting returns the removed team
func (suite *TeamServiceTestSuite) TestDeleteTeam() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(&models.Team{BaseModel: models.BaseModel{ID: id}, Name: "gone"}, nil).Times(1)
	suite.mockTeamRepo.EXPECT().Delete(id).Return(nil).Times(1)

	response, err := suite.teamService.DeleteTeam(id)

	suite.NoError(err)
	suite.Equal("gone", response.Name)
}

// TestAddMember tests adding a user returns the roster with that user as MEMBER
func (suite *TeamServiceTestSuite) TestAddMember() {
	teamID := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "ada"}
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(&models.Team{}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
	suite.mockMemberRepo.EXPECT().
		CreateIfAbsent(gomock.Any()).
		DoAndReturn(func(member *models.TeamMember) error {
			suite.Equal(models.TeamRoleMember, member.Role)
			suite.Equal(teamID, member.TeamID)
			return nil
		}).
		Times(1)
	suite.mockTeamRepo.EXPECT().GetWithMembers(teamID).Return(teamWithMembers(teamID, user), nil).Times(1)

	response, err := suite.teamService.AddMember(teamID, user.ID)

	suite.NoError(err)
	suite.Require().Len(response.Members, 1)
	suite.Equal(models.TeamRoleMember, response.Members[0].Role)
	suite.Equal("ada", response.Members[0].User.Username)
}

// TestAddMemberAlreadyOnTeam tests that a duplicate membership is a conflict
func (suite *TeamServiceTestSuite) TestAddMemberAlreadyOnTeam() {
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any()).Return(&models.Team{}, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any()).Return(&models.User{}, nil).Times(1)
	suite.mockMemberRepo.EXPECT().CreateIfAbsent(gomock.Any()).Return(gorm.ErrDuplicatedKey).Times(1)

	_, err := suite.teamService.AddMember(uuid.New(), uuid.New())

	suite.ErrorIs(err, apperrors.ErrTeamMemberExists)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestAddMemberMissingEndpoints tests the existence checks
func (suite *TeamServiceTestSuite) TestAddMemberMissingEndpoints() {
	suite.Run("team", func() {
		suite.mockTeamRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

		_, err := suite.teamService.AddMember(uuid.New(), uuid.New())
		suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	})

	suite.Run("user", func() {
		suite.mockTeamRepo.EXPECT().GetByID(gomock.Any()).Return(&models.Team{}, nil).Times(1)
		suite.mockUserRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

		_, err := suite.teamService.AddMember(uuid.New(), uuid.New())
		suite.ErrorIs(err, apperrors.ErrUserNotFound)
	})
}

// TestRemoveMember tests removal without an edge existence check
func (suite *TeamServiceTestSuite) TestRemoveMember() {
	teamID, userID := uuid.New(), uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(&models.Team{}, nil).Times(1)
	suite.mockMemberRepo.EXPECT().DeleteByUserAndTeam(userID, teamID).Return(nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetWithMembers(teamID).Return(teamWithMembers(teamID), nil).Times(1)

	response, err := suite.teamService.RemoveMember(teamID, userID)

	suite.NoError(err)
	suite.Empty(response.Members)
}

// TestRemoveMemberMissingTeam tests removing from a missing team
func (suite *TeamServiceTestSuite) TestRemoveMemberMissingTeam() {
	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.teamService.RemoveMember(uuid.New(), uuid.New())

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestGetMembers tests projecting the roster to users
func (suite *TeamServiceTestSuite) TestGetMembers() {
	teamID := uuid.New()
	ada := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "ada"}
	grace := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "grace"}
	suite.mockTeamRepo.EXPECT().GetWithMembers(teamID).Return(teamWithMembers(teamID, ada, grace), nil).Times(1)

	users, err := suite.teamService.GetMembers(teamID)

	suite.NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal("ada", users[0].Username)
	suite.Equal("grace", users[1].Username)
}

// TestGetMembersMissingTeam tests the not found mapping for rosters
func (suite *TeamServiceTestSuite) TestGetMembersMissingTeam() {
	suite.mockTeamRepo.EXPECT().GetWithMembers(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.teamService.GetMembers(uuid.New())

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestGetTeamsForUser tests listing a user's teams
func (suite *TeamServiceTestSuite) TestGetTeamsForUser() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{}, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetByUserID(userID).Return([]models.Team{{Name: "builders"}}, nil).Times(1)

	teams, err := suite.teamService.GetTeamsForUser(userID)

	suite.NoError(err)
	suite.Require().Len(teams, 1)
	suite.Equal("builders", teams[0].Name)
}

// TestGetTeamsForMissingUser tests the user existence check
func (suite *TeamServiceTestSuite) TestGetTeamsForMissingUser() {
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any()).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.teamService.GetTeamsForUser(uuid.New())

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
