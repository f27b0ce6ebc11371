package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "hackathon-backend/internal/errors"
	"hackathon-backend/internal/logger"
)

// Webhook header names set by the delivery service
const (
	HeaderWebhookID        = "svix-id"
	HeaderWebhookTimestamp = "svix-timestamp"
	HeaderWebhookSignature = "svix-signature"
)

// Identity event types mirrored into the user table
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// Acknowledgement messages
const (
	WebhookMessageOK      = "OK"
	WebhookMessageIgnored = "Unknown event type"
)

// IdentityService verifies identity provider webhooks and mirrors user lifecycle events
type IdentityService struct {
	users    UserServiceInterface
	provider IdentityProvider
}

// NewIdentityService creates a new identity sync service
func NewIdentityService(users UserServiceInterface, provider IdentityProvider) *IdentityService {
	return &IdentityService{
		users:    users,
		provider: provider,
	}
}

// WebhookResponse is the acknowledgement returned to the webhook sender
type WebhookResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user,omitempty"`
	Type    string        `json:"-"`
}

type identityEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type identityEmail struct {
	EmailAddress string `json:"email_address"`
}

type identityUser struct {
	ID             string          `json:"id"`
	Username       *string         `json:"username"`
	FirstName      *string         `json:"first_name"`
	LastName       *string         `json:"last_name"`
	ImageURL       *string         `json:"image_url"`
	EmailAddresses []identityEmail `json:"email_addresses"`
}

func (u *identityUser) fullName() string {
	var first, last string
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}
	return strings.TrimSpace(first + " " + last)
}

// HandleWebhook checks the delivery headers and signature, then applies the event.
// Missing headers and bad signatures are rejected before the payload is parsed.
func (s *IdentityService) HandleWebhook(ctx context.Context, payload []byte, headers http.Header) (*WebhookResponse, error) {
	log := logger.WithContext(ctx)

	for _, name := range []string{HeaderWebhookID, HeaderWebhookTimestamp, HeaderWebhookSignature} {
		if headers.Get(name) == "" {
			return nil, apperrors.ErrMissingWebhookHeaders
		}
	}

	if err := s.provider.VerifySignature(payload, headers); err != nil {
		log.WithField("webhook_id", headers.Get(HeaderWebhookID)).Warnf("Webhook signature verification failed: %v", err)
		return nil, apperrors.ErrInvalidSignature
	}

	var event identityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode webhook event: %w", err)
	}
	log = log.WithField("event_type", event.Type)

	switch event.Type {
	case EventUserCreated:
		return s.handleUserCreated(ctx, event)
	case EventUserUpdated:
		return s.handleUserUpdated(event)
	case EventUserDeleted:
		return s.handleUserDeleted(event)
	default:
		log.Infof("Ignoring unknown webhook event type")
		return &WebhookResponse{Message: WebhookMessageIgnored, Type: event.Type}, nil
	}
}

func (s *IdentityService) handleUserCreated(ctx context.Context, event identityEvent) (*WebhookResponse, error) {
	data, err := decodeIdentityUser(event)
	if err != nil {
		return nil, err
	}

	req := &CreateUserRequest{
		ClerkID:        data.ID,
		Username:       data.ID,
		FullName:       data.fullName(),
		ProfilePicture: data.ImageURL,
	}
	if data.Username != nil && *data.Username != "" {
		req.Username = *data.Username
	}
	if len(data.EmailAddresses) > 0 {
		req.Email = data.EmailAddresses[0].EmailAddress
	}

	user, err := s.users.CreateUser(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create user from %s: %w", event.Type, err)
	}

	if err := s.provider.PushMetadata(ctx, data.ID, user.ID); err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"clerk_id": data.ID,
			"user_id":  user.ID,
		}).Warnf("Failed to push user metadata to identity provider: %v", err)
	}

	return &WebhookResponse{Message: WebhookMessageOK, User: user, Type: event.Type}, nil
}

func (s *IdentityService) handleUserUpdated(event identityEvent) (*WebhookResponse, error) {
	data, err := decodeIdentityUser(event)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateUserByExternalID(data.ID, &ExternalProfileUpdate{
		FullName:       data.fullName(),
		ProfilePicture: data.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	return &WebhookResponse{Message: WebhookMessageOK, User: user, Type: event.Type}, nil
}

func (s *IdentityService) handleUserDeleted(event identityEvent) (*WebhookResponse, error) {
	data, err := decodeIdentityUser(event)
	if err != nil {
		return nil, err
	}

	user, err := s.users.DeleteUserByExternalID(data.ID)
	if err != nil {
		return nil, err
	}
	return &WebhookResponse{Message: WebhookMessageOK, User: user, Type: event.Type}, nil
}

func decodeIdentityUser(event identityEvent) (*identityUser, error) {
	var data identityUser
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", event.Type, err)
	}
	if data.ID == "" {
		return nil, fmt.Errorf("%s payload has no user id", event.Type)
	}
	return &data, nil
}
