package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "hackathon-backend/internal/errors"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/google/uuid"
	svix "github.com/svix/svix-webhooks/go"
)

// Options configures the Clerk identity provider
type Options struct {
	WebhookSecret string
	SecretKey     string
	// APIURL overrides the Clerk backend URL, mainly for tests
	APIURL string
}

type metadataUpdater interface {
	UpdateMetadata(ctx context.Context, id string, params *user.UpdateMetadataParams) (*clerk.User, error)
}

// ClerkProvider verifies Svix-signed Clerk webhooks and writes user metadata back to Clerk
type ClerkProvider struct {
	webhook *svix.Webhook
	users   metadataUpdater
}

// NewClerkProvider creates a provider. An empty webhook secret yields a provider
// that rejects every delivery; an empty secret key disables metadata pushes.
func NewClerkProvider(opts Options) (*ClerkProvider, error) {
	p := &ClerkProvider{}

	if opts.WebhookSecret != "" {
		wh, err := svix.NewWebhook(opts.WebhookSecret)
		if err != nil {
			return nil, fmt.Errorf("invalid webhook secret: %w", err)
		}
		p.webhook = wh
	}

	if opts.SecretKey != "" {
		backend := clerk.BackendConfig{Key: clerk.String(opts.SecretKey)}
		if opts.APIURL != "" {
			backend.URL = clerk.String(opts.APIURL)
		}
		p.users = user.NewClient(&clerk.ClientConfig{BackendConfig: backend})
	}

	return p, nil
}

// VerifySignature checks the Svix signature headers against the raw payload
func (p *ClerkProvider) VerifySignature(payload []byte, headers http.Header) error {
	if p.webhook == nil {
		return apperrors.ErrWebhookSecretNotSet
	}
	return p.webhook.Verify(payload, headers)
}

// PushMetadata stores the internal user id in the Clerk user's public metadata
func (p *ClerkProvider) PushMetadata(ctx context.Context, externalID string, internalID uuid.UUID) error {
	if p.users == nil {
		return apperrors.NewConfigurationError("CLERK_SECRET_KEY is not set")
	}

	raw, err := json.Marshal(map[string]string{"userId": internalID.String()})
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	metadata := json.RawMessage(raw)

	if _, err := p.users.UpdateMetadata(ctx, externalID, &user.UpdateMetadataParams{
		PublicMetadata: &metadata,
	}); err != nil {
		return fmt.Errorf("failed to update clerk metadata for %s: %w", externalID, err)
	}
	return nil
}
