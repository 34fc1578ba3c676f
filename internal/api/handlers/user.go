package handlers

import (
	"net/http"

	"crescendai-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	users service.UserServiceInterface
	mail  service.MailServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(users service.UserServiceInterface, mail service.MailServiceInterface) *UserHandler {
	return &UserHandler{users: users, mail: mail}
}

// GetCurrentUser handles GET /api/v1/me
// @Summary Get the signed-in user
// @Description The session payload: the user and their organizations with role
// @Tags users
// @Produce json
// @Success 200 {object} service.MeResponse "Signed-in user"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	me, err := h.users.Me(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, me)
}

// GetUserProfile handles GET /api/v1/users/:id/profile
// @Summary Get a user profile
// @Description Profile details with the last threads the user sent
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserProfileResponse "User profile"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/{id}/profile [get]
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id", "user")
	if !ok {
		return
	}

	profile, err := h.mail.UserProfile(userID)
	if err != nil {
		respondError(c, err, "Failed to get user profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListEmailAddresses handles GET /api/v1/users/email-addresses
// @Summary List email addresses
// @Description Every known user as "First Last <email>" for the compose form
// @Tags users
// @Produce json
// @Success 200 {array} string "Email addresses"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/email-addresses [get]
func (h *UserHandler) ListEmailAddresses(c *gin.Context) {
	addresses, err := h.mail.EmailAddresses()
	if err != nil {
		respondError(c, err, "Failed to list email addresses")
		return
	}

	c.JSON(http.StatusOK, addresses)
}
