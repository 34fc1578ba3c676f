package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "recording"}
		assert.Equal(t, "recording not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "recording"}
		err2 := &NotFoundError{Entity: "recording"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "recording"}
		err2 := &NotFoundError{Entity: "organization"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrRecordingNotFound, ErrRecordingNotFound))
		assert.False(t, errors.Is(ErrRecordingNotFound, ErrOrganizationNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load thread: %w", ErrThreadNotFound)
		assert.True(t, errors.Is(wrapped, ErrThreadNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrFolderNotFound))
		assert.False(t, IsNotFound(ErrSlugTaken))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "organization already exists with this slug", ErrSlugTaken.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "folder"}
		assert.Equal(t, "folder already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "organization", Context: "a"}
		err2 := &AlreadyExistsError{Entity: "organization", Context: "b"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAlreadyMember))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "slug", Message: "invalid format"}
		assert.Equal(t, "validation error: slug - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrRecordingNotFound))
	})
}

func TestFieldErrors(t *testing.T) {
	t.Run("Collects messages per field", func(t *testing.T) {
		fe := &FieldErrors{Message: "Invalid fields"}
		assert.False(t, fe.HasErrors())

		fe.Add("subject", "Subject is required")
		fe.Add("body", "Body is required")
		fe.Add("subject", "Subject is too long")

		require.True(t, fe.HasErrors())
		assert.Len(t, fe.Fields["subject"], 2)
		assert.Equal(t, "validation error: Invalid fields (body: Body is required; subject: Subject is required, Subject is too long)", fe.Error())
	})

	t.Run("Extracted from a wrapped chain", func(t *testing.T) {
		fe := &FieldErrors{Message: "Invalid fields"}
		fe.Add("recipientEmail", "Invalid email address")
		wrapped := fmt.Errorf("send email: %w", fe)

		got, ok := AsFieldErrors(wrapped)
		require.True(t, ok)
		assert.Equal(t, []string{"Invalid email address"}, got.Fields["recipientEmail"])
		assert.True(t, IsValidation(wrapped))
	})

	t.Run("Not present", func(t *testing.T) {
		_, ok := AsFieldErrors(ErrUserNotFound)
		assert.False(t, ok)
	})
}

func TestAuthorizationErrors(t *testing.T) {
	assert.True(t, IsAuthorization(ErrNotOrganizationAdmin))
	assert.True(t, IsAuthorization(ErrMailboxReadOnly))
	assert.Equal(t, "Only works on localhost for now", ErrMailboxReadOnly.Error())
	assert.False(t, IsAuthorization(ErrUserIDNotInContext))
	assert.True(t, IsAuthentication(ErrUserIDNotInContext))
	assert.True(t, IsConfiguration(ErrProviderNotConfigured))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	assert.Error(t, ErrInvalidRole)
	assert.Error(t, ErrInvalidStateTransition)
	assert.Error(t, ErrPersonalOrganizationDelete)
	assert.Error(t, ErrLastAdmin)
	assert.Error(t, ErrUploadTooLarge)
	assert.NotEqual(t, ErrInvalidRole, ErrInvalidRecordingState)
}
