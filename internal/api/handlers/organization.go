package handlers

import (
	"net/http"

	"crescendai-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service    service.OrganizationServiceInterface
	recordings service.RecordingServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface, recordings service.RecordingServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service, recordings: recordings}
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create an organization; the caller becomes its only admin
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Slug already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.CreateOrganization(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List the caller's organizations
// @Description Organizations the caller belongs to with role and counts, personal organization first
// @Tags organizations
// @Produce json
// @Success 200 {array} repository.OrganizationWithRole "Successfully retrieved organizations"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	orgs, err := h.service.ListUserOrganizations(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// GetOrganizationBySlug handles GET /api/v1/organizations/by-slug/:slug
// @Summary Get organization by slug
// @Description Get an organization the caller belongs to, with the caller's role and counts
// @Tags organizations
// @Produce json
// @Param slug path string true "Organization slug"
// @Success 200 {object} service.OrganizationDetailResponse "Successfully retrieved organization"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/by-slug/{slug} [get]
func (h *OrganizationHandler) GetOrganizationBySlug(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	org, err := h.service.GetOrganizationBySlug(c.Request.Context(), actor, c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete organization
// @Description Delete a shared organization with its members and recordings (admins only)
// @Tags organizations
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Organization deleted"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Personal organizations cannot be deleted"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}

	if err := h.service.DeleteOrganization(c.Request.Context(), actor, orgID); err != nil {
		respondError(c, err, "Failed to delete organization")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMembers handles GET /api/v1/organizations/:id/members
// @Summary List organization members
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} repository.MemberWithUser "Successfully retrieved members"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members [get]
func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}

	members, err := h.service.ListMembers(c.Request.Context(), actor, orgID)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// InviteMember handles POST /api/v1/organizations/:id/members
// @Summary Add a member
// @Description Add an existing user to the organization by email (admins only)
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param member body service.InviteMemberRequest true "Invitation"
// @Success 201 {object} service.MemberResponse "Member added"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "Already a member"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members [post]
func (h *OrganizationHandler) InviteMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}

	var req service.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.InviteMember(c.Request.Context(), actor, orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to add member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /api/v1/organizations/:id/members/:userId
// @Summary Remove a member
// @Tags organizations
// @Param id path string true "Organization ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 403 {object} map[string]interface{} "Caller is not an admin"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Failure 409 {object} map[string]interface{} "Last admin cannot be removed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/members/{userId} [delete]
func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), actor, orgID, userID); err != nil {
		respondError(c, err, "Failed to remove member")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRecordings handles GET /api/v1/organizations/:id/recordings
// @Summary List organization recordings
// @Description Recordings of an organization, newest first
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.RecordingResponse "Successfully retrieved recordings"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 403 {object} map[string]interface{} "Caller is not a member"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/recordings [get]
func (h *OrganizationHandler) ListRecordings(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	orgID, ok := parseUUIDParam(c, "id", "organization")
	if !ok {
		return
	}

	recordings, err := h.recordings.ListOrganizationRecordings(c.Request.Context(), actor, orgID)
	if err != nil {
		respondError(c, err, "Failed to list recordings")
		return
	}

	c.JSON(http.StatusOK, recordings)
}
