package service_test

import (
	"encoding/json"
	"testing"

	"hackathon-backend/internal/database/models"
	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/repository"
	"hackathon-backend/internal/service"
	"hackathon-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ServiceFlowTestSuite runs the services against real repositories on SQLite
type ServiceFlowTestSuite struct {
	suite.Suite
	db         *gorm.DB
	users      *service.UserService
	teams      *service.TeamService
	hackathons *service.HackathonService
}

// SetupTest wires fresh services over an empty database
func (suite *ServiceFlowTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())

	userRepo := repository.NewUserRepository(suite.db)
	teamRepo := repository.NewTeamRepository(suite.db)
	memberRepo := repository.NewTeamMemberRepository(suite.db)
	hackathonRepo := repository.NewHackathonRepository(suite.db)
	participationRepo := repository.NewParticipationRepository(suite.db)
	v := service.NewValidator()

	suite.users = service.NewUserService(userRepo, teamRepo, memberRepo, hackathonRepo, participationRepo, v)
	suite.teams = service.NewTeamService(teamRepo, userRepo, memberRepo, v)
	suite.hackathons = service.NewHackathonService(hackathonRepo, teamRepo, participationRepo, v)
}

func (suite *ServiceFlowTestSuite) createUser(username string) *service.UserResponse {
	user, err := suite.users.CreateUser(&service.CreateUserRequest{
		ClerkID:  "user_" + username,
		Username: username,
		Email:    username + "@example.com",
		FullName: username,
	})
	suite.Require().NoError(err)
	return user
}

func (suite *ServiceFlowTestSuite) createHackathon(name string) *service.HackathonResponse {
	req := validCreateHackathonRequest()
	req.Name = name
	hackathon, err := suite.hackathons.CreateHackathon(req)
	suite.Require().NoError(err)
	return hackathon
}

// TestDuplicateIdentityFields tests that unique user fields surface as conflicts
func (suite *ServiceFlowTestSuite) TestDuplicateIdentityFields() {
	suite.createUser("ada")

	_, err := suite.users.CreateUser(&service.CreateUserRequest{
		ClerkID:  "user_other",
		Username: "ada",
		Email:    "other@example.com",
		FullName: "Other",
	})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestMembershipRoundTrip tests joining, listing and leaving a team through both entry points
func (suite *ServiceFlowTestSuite) TestMembershipRoundTrip() {
	ada := suite.createUser("ada")
	grace := suite.createUser("grace")
	team, err := suite.teams.CreateTeam(&service.CreateTeamRequest{Name: "builders"})
	suite.Require().NoError(err)

	_, err = suite.users.JoinTeam(ada.ID, team.ID)
	suite.Require().NoError(err)
	roster, err := suite.teams.AddMember(team.ID, grace.ID)
	suite.Require().NoError(err)
	suite.Len(roster.Members, 2)

	_, err = suite.teams.AddMember(team.ID, ada.ID)
	suite.ErrorIs(err, apperrors.ErrTeamMemberExists)
	_, err = suite.users.JoinTeam(grace.ID, team.ID)
	suite.ErrorIs(err, apperrors.ErrTeamMemberExists)

	teams, err := suite.teams.GetTeamsForUser(ada.ID)
	suite.Require().NoError(err)
	suite.Require().Len(teams, 1)
	suite.Equal(team.ID, teams[0].ID)

	_, err = suite.users.LeaveTeam(ada.ID, team.ID)
	suite.Require().NoError(err)
	_, err = suite.users.LeaveTeam(ada.ID, team.ID)
	suite.ErrorIs(err, apperrors.ErrTeamMemberNotFound)

	members, err := suite.teams.GetMembers(team.ID)
	suite.Require().NoError(err)
	suite.Require().Len(members, 1)
	suite.Equal("grace", members[0].Username)
}

// TestRegistrationCodesAreUnique tests that every registration gets its own pass code
func (suite *ServiceFlowTestSuite) TestRegistrationCodesAreUnique() {
	hackathon := suite.createHackathon("Winter Hack")
	seen := map[string]bool{}
	for _, name := range []string{"ada", "grace", "linus"} {
		user := suite.createUser(name)
		p, err := suite.users.JoinHackathon(user.ID, hackathon.ID)
		suite.Require().NoError(err)
		suite.False(seen[p.QRPass], "pass code reused")
		seen[p.QRPass] = true
		suite.Equal(0, p.TotalScore)
		suite.False(p.CheckedIn)
	}

	details, err := suite.hackathons.GetHackathonByID(hackathon.ID)
	suite.Require().NoError(err)
	suite.Len(details.Participants, 3)
	suite.Len(details.Topics, 2)
}

// TestDeletingUserCascades tests that memberships and registrations go with the user
func (suite *ServiceFlowTestSuite) TestDeletingUserCascades() {
	ada := suite.createUser("ada")
	team, err := suite.teams.CreateTeam(&service.CreateTeamRequest{Name: "builders"})
	suite.Require().NoError(err)
	hackathon := suite.createHackathon("Winter Hack")

	_, err = suite.users.JoinTeam(ada.ID, team.ID)
	suite.Require().NoError(err)
	_, err = suite.users.JoinHackathon(ada.ID, hackathon.ID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.users.DeleteUser(ada.ID))

	var memberships, registrations int64
	suite.db.Model(&models.TeamMember{}).Count(&memberships)
	suite.db.Model(&models.HackathonParticipation{}).Count(&registrations)
	suite.Zero(memberships)
	suite.Zero(registrations)

	members, err := suite.teams.GetMembers(team.ID)
	suite.Require().NoError(err)
	suite.Empty(members)
}

// TestDeletingHackathonCascades tests that registrations, entries and topics go with the hackathon
func (suite *ServiceFlowTestSuite) TestDeletingHackathonCascades() {
	ada := suite.createUser("ada")
	team, err := suite.teams.CreateTeam(&service.CreateTeamRequest{Name: "builders"})
	suite.Require().NoError(err)
	hackathon := suite.createHackathon("Winter Hack")

	_, err = suite.users.JoinHackathon(ada.ID, hackathon.ID)
	suite.Require().NoError(err)
	_, err = suite.hackathons.AddTeam(hackathon.ID, team.ID)
	suite.Require().NoError(err)

	deleted, err := suite.hackathons.DeleteHackathon(hackathon.ID)
	suite.Require().NoError(err)
	suite.Equal("Winter Hack", deleted.Name)

	var registrations, entries, topics int64
	suite.db.Model(&models.HackathonParticipation{}).Count(&registrations)
	suite.db.Model(&models.TeamParticipation{}).Count(&entries)
	suite.db.Model(&models.Topic{}).Count(&topics)
	suite.Zero(registrations)
	suite.Zero(entries)
	suite.Zero(topics)

	_, err = suite.teams.GetTeamByID(team.ID)
	suite.NoError(err)
}

// TestHackathonWritesReturnRelations tests that update and delete responses keep registrations and topics
func (suite *ServiceFlowTestSuite) TestHackathonWritesReturnRelations() {
	ada := suite.createUser("ada")
	hackathon := suite.createHackathon("Winter Hack")
	_, err := suite.users.JoinHackathon(ada.ID, hackathon.ID)
	suite.Require().NoError(err)

	name := "Winter Hack 2026"
	updated, err := suite.hackathons.UpdateHackathon(hackathon.ID, &service.UpdateHackathonRequest{Name: &name})
	suite.Require().NoError(err)
	suite.Equal(name, updated.Name)
	suite.Len(updated.Participants, 1)
	suite.Len(updated.Topics, 2)

	deleted, err := suite.hackathons.DeleteHackathon(hackathon.ID)
	suite.Require().NoError(err)
	suite.Len(deleted.Participants, 1)
	suite.Len(deleted.Topics, 2)
}

// TestExternalUpdateKeepsPicture tests that a profile mirror without an avatar keeps the stored one
func (suite *ServiceFlowTestSuite) TestExternalUpdateKeepsPicture() {
	picture := "https://img.example/ada.png"
	_, err := suite.users.CreateUser(&service.CreateUserRequest{
		ClerkID:        "user_ada",
		Username:       "ada",
		Email:          "ada@example.com",
		FullName:       "Ada",
		ProfilePicture: &picture,
	})
	suite.Require().NoError(err)

	updated, err := suite.users.UpdateUserByExternalID("user_ada", &service.ExternalProfileUpdate{FullName: "Ada King"})

	suite.Require().NoError(err)
	suite.Equal("Ada King", updated.FullName)
	suite.Require().NotNil(updated.ProfilePicture)
	suite.Equal(picture, *updated.ProfilePicture)
}

// TestIndividualRegistrationHasNullTeam tests that a registration without a team encodes its team reference as null
func (suite *ServiceFlowTestSuite) TestIndividualRegistrationHasNullTeam() {
	ada := suite.createUser("ada")
	hackathon := suite.createHackathon("Winter Hack")

	registration, err := suite.users.JoinHackathon(ada.ID, hackathon.ID)
	suite.Require().NoError(err)

	body, err := json.Marshal(registration)
	suite.Require().NoError(err)
	var fields map[string]interface{}
	suite.Require().NoError(json.Unmarshal(body, &fields))
	value, present := fields["team_participation_id"]
	suite.True(present)
	suite.Nil(value)
}

// TestTeamEntries tests entering and withdrawing teams
func (suite *ServiceFlowTestSuite) TestTeamEntries() {
	team, err := suite.teams.CreateTeam(&service.CreateTeamRequest{Name: "builders"})
	suite.Require().NoError(err)
	hackathon := suite.createHackathon("Winter Hack")

	_, err = suite.hackathons.AddTeam(hackathon.ID, team.ID)
	suite.Require().NoError(err)
	_, err = suite.hackathons.AddTeam(hackathon.ID, team.ID)
	suite.ErrorIs(err, apperrors.ErrTeamParticipationExists)

	teams, err := suite.hackathons.GetTeams(hackathon.ID)
	suite.Require().NoError(err)
	suite.Require().Len(teams, 1)
	suite.Equal("builders", teams[0].Name)

	_, err = suite.hackathons.RemoveTeam(hackathon.ID, team.ID)
	suite.Require().NoError(err)
	_, err = suite.hackathons.RemoveTeam(hackathon.ID, team.ID)
	suite.ErrorIs(err, apperrors.ErrTeamParticipationNotFound)
}

// TestServiceFlowTestSuite runs the test suite
func TestServiceFlowTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceFlowTestSuite))
}
