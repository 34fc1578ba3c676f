package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"crescendai-backend/internal/auth"
	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/logger"
	"crescendai-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// authenticated stands in for the auth middleware in handler tests
func authenticated(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextUserID, userID)
		c.Next()
	}
}

func TestRespondError(t *testing.T) {
	logger.Setup("error", io.Discard)
	t.Cleanup(func() { logger.Setup("info", nil) })

	fieldErrs := &apperrors.FieldErrors{Message: "validation failed"}
	fieldErrs.Add("subject", "Subject is required")

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"field errors", fieldErrs, http.StatusBadRequest, "validation failed"},
		{"validation", apperrors.NewValidationError("name", "name is required"), http.StatusBadRequest, "name is required"},
		{"authentication", apperrors.ErrUserIDNotInContext, http.StatusUnauthorized, "user id not found"},
		{"authorization", apperrors.ErrNotOrganizationAdmin, http.StatusForbidden, "only organization admins"},
		{"read-only mailbox", apperrors.ErrMailboxReadOnly, http.StatusForbidden, "Only works on localhost for now"},
		{"not found", apperrors.ErrRecordingNotFound, http.StatusNotFound, "recording not found"},
		{"already exists", apperrors.ErrSlugTaken, http.StatusConflict, "already exists with this slug"},
		{"invalid role", apperrors.ErrInvalidRole, http.StatusBadRequest, "invalid organization role"},
		{"invalid state", fmt.Errorf("list: %w", apperrors.ErrInvalidRecordingState), http.StatusBadRequest, "invalid recording state"},
		{"personal organization", apperrors.ErrPersonalOrganizationDelete, http.StatusConflict, "personal organizations"},
		{"last admin", apperrors.ErrLastAdmin, http.StatusConflict, "at least one admin"},
		{"upload too large", apperrors.ErrUploadTooLarge, http.StatusRequestEntityTooLarge, "maximum size"},
		{"storage missing", apperrors.ErrStorageNotConfigured, http.StatusServiceUnavailable, "not configured"},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpSuite := testutils.SetupHTTPTest()
			httpSuite.Router.GET("/", func(c *gin.Context) { respondError(c, tt.err, "Something went wrong") })

			recorder := httpSuite.MakeRequest(http.MethodGet, "/", nil)

			testutils.AssertErrorResponse(t, recorder, tt.expectedStatus, tt.expectedError)
		})
	}
}

func TestRespondError_FieldErrorsBody(t *testing.T) {
	fieldErrs := &apperrors.FieldErrors{Message: "validation failed"}
	fieldErrs.Add("recipient_email", "Invalid email address")

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/", func(c *gin.Context) { respondError(c, fieldErrs, "unused") })

	recorder := httpSuite.MakeRequest(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"validation failed","fields":{"recipient_email":["Invalid email address"]}}`, recorder.Body.String())
}

func TestActorID_Missing(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/", func(c *gin.Context) {
		if _, ok := actorID(c); ok {
			c.Status(http.StatusOK)
		}
	})

	recorder := httptest.NewRecorder()
	httpSuite.Router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "user id not found in context")
}
