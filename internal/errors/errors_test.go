package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrHackathonNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to add member: %w", ErrUserNotFound)
		assert.True(t, errors.Is(wrapped, ErrUserNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamParticipationNotFound))
		assert.False(t, IsNotFound(ErrTeamMemberExists))
		assert.False(t, IsNotFound(nil))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team membership", Context: "for this user"}
		assert.Equal(t, "team membership already exists for this user", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is ignores context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.True(t, errors.Is(err, ErrUserExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrHackathonParticipationExists))
		assert.False(t, IsAlreadyExists(ErrHackathonNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(ErrMissingWebhookHeaders))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestWebhookErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidSignature))
	assert.Equal(t, "Invalid webhook signature", ErrInvalidSignature.Error())
	assert.True(t, IsConfiguration(ErrWebhookSecretNotSet))
	assert.False(t, IsAuthentication(ErrMissingWebhookHeaders))
}

func TestConstructors(t *testing.T) {
	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("email", "is required")
		assert.True(t, IsValidation(err))
		assert.Equal(t, "validation error: email - is required", err.Error())
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("missing key")
		assert.True(t, IsConfiguration(err))
	})
}
