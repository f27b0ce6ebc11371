package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound                   = &NotFoundError{Entity: "user"}
	ErrTeamNotFound                   = &NotFoundError{Entity: "team"}
	ErrHackathonNotFound              = &NotFoundError{Entity: "hackathon"}
	ErrTeamMemberNotFound             = &NotFoundError{Entity: "team membership"}
	ErrHackathonParticipationNotFound = &NotFoundError{Entity: "hackathon participation"}
	ErrTeamParticipationNotFound      = &NotFoundError{Entity: "team participation"}
)

// Already Exists Errors
var (
	ErrUserExists                   = &AlreadyExistsError{Entity: "user", Context: "with this username, email or clerk id"}
	ErrTeamMemberExists             = &AlreadyExistsError{Entity: "team membership", Context: "for this user"}
	ErrHackathonParticipationExists = &AlreadyExistsError{Entity: "hackathon participation", Context: "for this user"}
	ErrTeamParticipationExists      = &AlreadyExistsError{Entity: "team participation", Context: "for this team"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange = &ValidationError{Field: "end_date", Message: "must not be before start_date"}
)

// Webhook Errors
var (
	ErrMissingWebhookHeaders = &ValidationError{Message: "Missing SVIX headers"}
	ErrInvalidSignature      = &AuthenticationError{Message: "Invalid webhook signature"}
	ErrWebhookSecretNotSet   = &ConfigurationError{Message: "CLERK_WEBHOOK_SECRET is not set"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
