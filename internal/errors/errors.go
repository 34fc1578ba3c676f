package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
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
	Context string // Additional context like "with this slug"
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

// FieldErrors carries per-field validation messages, the shape form clients render next to inputs.
type FieldErrors struct {
	Message string
	Fields  map[string][]string
}

func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s (%s)", e.Message, strings.Join(parts, "; "))
}

// Add appends a message for a field
func (e *FieldErrors) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field failed
func (e *FieldErrors) HasErrors() bool {
	return len(e.Fields) > 0
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
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
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrOrganizationNotFound    = &NotFoundError{Entity: "organization"}
	ErrMembershipNotFound      = &NotFoundError{Entity: "organization membership"}
	ErrRecordingNotFound       = &NotFoundError{Entity: "recording"}
	ErrRecordingResultNotFound = &NotFoundError{Entity: "recording result"}
	ErrFolderNotFound          = &NotFoundError{Entity: "folder"}
	ErrThreadNotFound          = &NotFoundError{Entity: "thread"}
	ErrEmailNotFound           = &NotFoundError{Entity: "email"}
	ErrBlobNotFound            = &NotFoundError{Entity: "blob"}
)

// Already Exists Errors
var (
	ErrSlugTaken     = &AlreadyExistsError{Entity: "organization", Context: "with this slug"}
	ErrUserExists    = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrAlreadyMember = &AlreadyExistsError{Entity: "organization membership", Context: "for this user"}
)

// Authorization Errors
var (
	ErrNotOrganizationMember = &AuthorizationError{Message: "user is not a member of this organization"}
	ErrNotOrganizationAdmin  = &AuthorizationError{Message: "only organization admins can perform this action"}
	ErrNotRecordingOwner     = &AuthorizationError{Message: "only the recording creator or an organization admin can perform this action"}
	ErrMailboxReadOnly       = &AuthorizationError{Message: "Only works on localhost for now"}
)

// Business Logic Errors
var (
	ErrInvalidRole                = errors.New("invalid organization role")
	ErrInvalidRecordingState      = errors.New("invalid recording state")
	ErrInvalidStateTransition     = errors.New("invalid recording state transition")
	ErrPersonalOrganizationDelete = errors.New("personal organizations cannot be deleted")
	ErrLastAdmin                  = errors.New("an organization must keep at least one admin")
	ErrUploadTooLarge             = errors.New("audio upload exceeds the maximum size")
	ErrStorageNotConfigured       = errors.New("blob storage is not configured")
)

// Authentication Errors
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrUserIDNotInContext  = &AuthenticationError{Message: "user id not found in context"}
)

// Configuration Errors
var (
	ErrProviderNotConfigured = &ConfigurationError{Message: "OAuth provider is not configured"}
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

// IsValidation checks if an error is a ValidationError or FieldErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var fieldErrs *FieldErrors
	return errors.As(err, &validationErr) || errors.As(err, &fieldErrs)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// AsFieldErrors extracts FieldErrors from an error chain
func AsFieldErrors(err error) (*FieldErrors, bool) {
	var fieldErrs *FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	return nil, false
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
