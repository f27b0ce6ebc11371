package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/mocks"
	"hackathon-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// IdentityServiceTestSuite defines the test suite for IdentityService
type IdentityServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUsers       *mocks.MockUserServiceInterface
	mockProvider    *mocks.MockIdentityProvider
	identityService *service.IdentityService
}

// SetupTest sets up the test suite
func (suite *IdentityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.mockProvider = mocks.NewMockIdentityProvider(suite.ctrl)
	suite.identityService = service.NewIdentityService(suite.mockUsers, suite.mockProvider)
}

// TearDownTest cleans up after each test
func (suite *IdentityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func webhookHeaders() http.Header {
	h := http.Header{}
	h.Set(service.HeaderWebhookID, "msg_1")
	h.Set(service.HeaderWebhookTimestamp, "1700000000")
	h.Set(service.HeaderWebhookSignature, "v1,c2lnbmF0dXJl")
	return h
}

const createdPayload = `{
	"type": "user.created",
	"data": {
		"id": "user_123",
		"username": "ada",
		"first_name": "Ada",
		"last_name": "Lovelace",
		"image_url": "https://img.example.com/ada.png",
		"email_addresses": [{"email_address": "ada@example.com"}, {"email_address": "other@example.com"}]
	}
}`

// TestMissingHeaders tests that each delivery header is required
func (suite *IdentityServiceTestSuite) TestMissingHeaders() {
	for _, name := range []string{service.HeaderWebhookID, service.HeaderWebhookTimestamp, service.HeaderWebhookSignature} {
		suite.Run(name, func() {
			headers := webhookHeaders()
			headers.Del(name)

			_, err := suite.identityService.HandleWebhook(context.Background(), []byte(createdPayload), headers)

			suite.ErrorIs(err, apperrors.ErrMissingWebhookHeaders)
			suite.True(apperrors.IsValidation(err))
		})
	}
}

// TestInvalidSignature tests that a failed verification stops processing
func (suite *IdentityServiceTestSuite) TestInvalidSignature() {
	suite.mockProvider.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(errors.New("no matching signature")).Times(1)

	_, err := suite.identityService.HandleWebhook(context.Background(), []byte(createdPayload), webhookHeaders())

	suite.ErrorIs(err, apperrors.ErrInvalidSignature)
	suite.True(apperrors.IsAuthentication(err))
}

// TestUserCreated tests mirroring a new identity and pushing the internal id back
func (suite *IdentityServiceTestSuite) TestUserCreated() {
	userID := uuid.New()
	suite.mockProvider.EXPECT().VerifySignature([]byte(createdPayload), gomock.Any()).Return(nil).Times(1)
	suite.mockUsers.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(req *service.CreateUserRequest) (*service.UserResponse, error) {
			suite.Equal("user_123", req.ClerkID)
			suite.Equal("ada", req.Username)
			suite.Equal("ada@example.com", req.Email)
			suite.Equal("Ada Lovelace", req.FullName)
			suite.Equal("https://img.example.com/ada.png", *req.ProfilePicture)
			return &service.UserResponse{ID: userID, ClerkID: req.ClerkID, Username: req.Username}, nil
		}).
		Times(1)
	suite.mockProvider.EXPECT().PushMetadata(gomock.Any(), "user_123", userID).Return(nil).Times(1)

	response, err := suite.identityService.HandleWebhook(context.Background(), []byte(createdPayload), webhookHeaders())

	suite.NoError(err)
	suite.Equal("OK", response.Message)
	suite.Equal(service.EventUserCreated, response.Type)
	suite.Equal(userID, response.User.ID)
}

// TestUserCreatedWithoutUsername tests the username fallback to the external id
func (suite *IdentityServiceTestSuite) TestUserCreatedWithoutUsername() {
	payload := []byte(`{"type":"user.created","data":{"id":"user_456","first_name":"Grace","email_addresses":[{"email_address":"grace@example.com"}]}}`)
	suite.mockProvider.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockUsers.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(req *service.CreateUserRequest) (*service.UserResponse, error) {
			suite.Equal("user_456", req.Username)
			suite.Equal("Grace", req.FullName)
			suite.Nil(req.ProfilePicture)
			return &service.UserResponse{ID: uuid.New()}, nil
		}).
		Times(1)
	suite.mockProvider.EXPECT().PushMetadata(gomock.Any(), "user_456", gomock.Any()).Return(nil).Times(1)

	_, err := suite.identityService.HandleWebhook(context.Background(), payload, webhookHeaders())

	suite.NoError(err)
}

// TestUserCreatedMetadataPushFails tests that a failed push does not fail the event
func (suite *IdentityServiceTestSuite) TestUserCreatedMetadataPushFails() {
	suite.mockProvider.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockUsers.EXPECT().CreateUser(gomock.Any()).Return(&service.UserResponse{ID: uuid.New()}, nil).Times(1)
	suite.mockProvider.EXPECT().PushMetadata(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("clerk unavailable")).Times(1)

	response, err := suite.identityService.HandleWebhook(context.Background(), []byte(createdPayload), webhookHeaders())

	suite.NoError(err)
	suite.Equal("OK", response.Message)
}

// TestUserCreatedDuplicate tests that a store failure is surfaced
func (suite *IdentityServiceTestSuite) TestUserCreatedDuplicate() {
	suite.mockProvider.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockUsers.EXPECT().CreateUser(gomock.Any()).Return(nil, apperrors.ErrUserExists).Times(1)

	_, err := suite.identityService.HandleWebhook(context.Background(), []byte(createdPayload), webhookHeaders())

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestUserUpdated tests mirroring profile changes by external id
func (suite *IdentityServiceTestSuite) TestUserUpdated() {
	payload := []byte(`{"type":"user.updated","data":{"id":"user_123","first_name":"Ada","last_name":"King","image_url":"https://img.example.com/new.png"}}`)
	suite.mockProvider.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockUsers.EXPECT().
		UpdateUserByExternalID("user_123", gomock.Any()).
		DoAndReturn(func(clerkID string, update *service.ExternalProfileUpdate) (*service.UserResponse, error) {
			suite.Equal("Ada King", update.FullName)
			suite.Equal("https://img.example.com/new.png", *update.ProfilePicture)
			return &service.UserResponse{ClerkID: clerkID, FullName: update.FullName}, nil
		}).
		Times(1)

	response, err := suite.identityService.HandleWebhook(context.Background(), payload, webhookHeaders())

	suite.NoError(err)
	suite.Equal("Ada King", response.User.FullName)
}

// TestUserUpdatedUnknownUser tests that an update for a missing user is a processing failure
func (suite *IdentityServiceTestSuite) TestUserUpdatedUnknownUser() {
	payload := []byte(`{"type":"user.updated","data":{"id":"user_missing"}}`)
	suite.mockProvider.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockUsers.EXPECT().UpdateUserByExternalID("user_missing", gomock.Any()).Return(nil, errors.New("failed to update user by external id: record not found")).Times(1)

	_, err := suite.identityService.HandleWebhook(context.Background(), payload, webhookHeaders())

	suite.Error(err)
	suite.False(apperrors.IsValidation(err))
	suite.False(apperrors.IsAuthentication(err))
}

// TestUserDeleted tests removing a mirrored user by external id
func (suite *IdentityServiceTestSuite) TestUserDeleted() {
	payload := []byte(`{"type":"user.deleted","data":{"id":"user_123","deleted":true}}`)
	suite.mockProvider.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	suite.mockUsers.EXPECT().DeleteUserByExternalID("user_123").Return(&service.UserResponse{ClerkID: "user_123"}, nil).Times(1)

	response, err := suite.identityService.HandleWebhook(context.Background(), payload, webhookHeaders())

	suite.NoError(err)
	suite.Equal("user_123", response.User.ClerkID)
}

// TestUnknownEventType tests that other event types are acknowledged and ignored
func (suite *IdentityServiceTestSuite) TestUnknownEventType() {
	payload := []byte(`{"type":"session.created","data":{"id":"sess_1"}}`)
	suite.mockProvider.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	response, err := suite.identityService.HandleWebhook(context.Background(), payload, webhookHeaders())

	suite.NoError(err)
	suite.Equal("Unknown event type", response.Message)
	suite.Nil(response.User)
}

// TestMalformedPayload tests payloads that pass verification but cannot be decoded
func (suite *IdentityServiceTestSuite) TestMalformedPayload() {
	cases := map[string]string{
		"not json":        `{"type":`,
		"missing id":      `{"type":"user.created","data":{}}`,
		"data not object": `{"type":"user.deleted","data":"oops"}`,
	}

	for name, payload := range cases {
		suite.Run(name, func() {
			suite.mockProvider.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil).Times(1)

			_, err := suite.identityService.HandleWebhook(context.Background(), []byte(payload), webhookHeaders())

			suite.Error(err)
			suite.False(apperrors.IsValidation(err))
		})
	}
}

// TestIdentityServiceTestSuite runs the test suite
func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}
