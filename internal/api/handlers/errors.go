package handlers

import (
	"errors"
	"net/http"

	"crescendai-backend/internal/auth"
	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError writes the status and body matching a service error. Unexpected errors are
// logged and answered with the generic fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	if fieldErrs, ok := apperrors.AsFieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrs.Message, "fields": fieldErrs.Fields})
		return
	}

	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidRole),
		errors.Is(err, apperrors.ErrInvalidRecordingState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidStateTransition),
		errors.Is(err, apperrors.ErrPersonalOrganizationDelete),
		errors.Is(err, apperrors.ErrLastAdmin):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUploadTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStorageNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.FromGinContext(c).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// actorID returns the authenticated user's id, answering 401 when it is missing
func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUserIDNotInContext.Error()})
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}
