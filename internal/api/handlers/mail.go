package handlers

import (
	"net/http"

	"crescendai-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MailHandler handles HTTP requests for the mailbox
type MailHandler struct {
	service service.MailServiceInterface
}

// NewMailHandler creates a new mail handler
func NewMailHandler(service service.MailServiceInterface) *MailHandler {
	return &MailHandler{service: service}
}

// ListFolders handles GET /api/v1/mail/folders
// @Summary List folders
// @Description Folders with thread counts; Inbox, Flagged and Sent come first
// @Tags mail
// @Produce json
// @Success 200 {array} repository.FolderWithCount "Successfully retrieved folders"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail/folders [get]
func (h *MailHandler) ListFolders(c *gin.Context) {
	folders, err := h.service.Folders()
	if err != nil {
		respondError(c, err, "Failed to list folders")
		return
	}

	c.JSON(http.StatusOK, folders)
}

// ListThreads handles GET /api/v1/mail/folders/:name/threads
// @Summary List threads in a folder
// @Tags mail
// @Produce json
// @Param name path string true "Folder name (case-insensitive)"
// @Param q query string false "Search text"
// @Success 200 {array} models.Thread "Successfully retrieved threads"
// @Failure 404 {object} map[string]interface{} "Folder not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail/folders/{name}/threads [get]
func (h *MailHandler) ListThreads(c *gin.Context) {
	threads, err := h.service.ThreadsForFolder(c.Param("name"), c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to list threads")
		return
	}

	c.JSON(http.StatusOK, threads)
}

// GetThread handles GET /api/v1/mail/folders/:name/threads/:id
// @Summary Get a thread
// @Description Thread with its emails, oldest first
// @Tags mail
// @Produce json
// @Param name path string true "Folder name"
// @Param id path string true "Thread ID (UUID)"
// @Success 200 {object} models.Thread "Successfully retrieved thread"
// @Failure 400 {object} map[string]interface{} "Invalid thread ID"
// @Failure 404 {object} map[string]interface{} "Folder or thread not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail/folders/{name}/threads/{id} [get]
func (h *MailHandler) GetThread(c *gin.Context) {
	threadID, ok := parseUUIDParam(c, "id", "thread")
	if !ok {
		return
	}

	thread, err := h.service.Thread(c.Param("name"), threadID)
	if err != nil {
		respondError(c, err, "Failed to get thread")
		return
	}

	c.JSON(http.StatusOK, thread)
}

// SearchThreads handles GET /api/v1/mail/search
// @Summary Search threads
// @Description Matches subject, body and sender name or email; each result carries its latest email
// @Tags mail
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} repository.ThreadSearchResult "Matching threads"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail/search [get]
func (h *MailHandler) SearchThreads(c *gin.Context) {
	results, err := h.service.SearchThreads(c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to search threads")
		return
	}

	c.JSON(http.StatusOK, results)
}

// SendEmail handles POST /api/v1/mail/emails
// @Summary Send an email
// @Description Start a new thread filed under Sent. Unknown recipients are created.
// @Tags mail
// @Accept json
// @Produce json
// @Param email body service.SendEmailRequest true "Email"
// @Success 201 {object} service.SendEmailResponse "Email sent"
// @Failure 400 {object} map[string]interface{} "Validation failed, with per-field messages"
// @Failure 403 {object} map[string]interface{} "Mailbox is read-only"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail/emails [post]
func (h *MailHandler) SendEmail(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var req service.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.SendEmail(actor, &req)
	if err != nil {
		respondError(c, err, "Failed to send email. Please try again.")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// DeleteEmail handles DELETE /api/v1/mail/folders/:name/emails/:id
// @Summary Delete an email
// @Description Delete an email; a thread left without emails is removed
// @Tags mail
// @Param name path string true "Folder name"
// @Param id path string true "Email ID (UUID)"
// @Success 204 "Email deleted"
// @Failure 400 {object} map[string]interface{} "Invalid email ID"
// @Failure 403 {object} map[string]interface{} "Mailbox is read-only"
// @Failure 404 {object} map[string]interface{} "Folder or email not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail/folders/{name}/emails/{id} [delete]
func (h *MailHandler) DeleteEmail(c *gin.Context) {
	emailID, ok := parseUUIDParam(c, "id", "email")
	if !ok {
		return
	}

	if err := h.service.DeleteEmail(c.Param("name"), emailID); err != nil {
		respondError(c, err, "Failed to delete email")
		return
	}

	c.Status(http.StatusNoContent)
}

// MoveThreadToDone handles POST /api/v1/mail/threads/:id/done
// @Summary Archive a thread
// @Tags mail
// @Param id path string true "Thread ID (UUID)"
// @Success 204 "Thread archived"
// @Failure 400 {object} map[string]interface{} "Invalid thread ID"
// @Failure 403 {object} map[string]interface{} "Mailbox is read-only"
// @Failure 404 {object} map[string]interface{} "Thread not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail/threads/{id}/done [post]
func (h *MailHandler) MoveThreadToDone(c *gin.Context) {
	threadID, ok := parseUUIDParam(c, "id", "thread")
	if !ok {
		return
	}

	if err := h.service.MoveThreadToDone(threadID); err != nil {
		respondError(c, err, "Failed to archive thread")
		return
	}

	c.Status(http.StatusNoContent)
}

// MoveThreadToTrash handles POST /api/v1/mail/threads/:id/trash
// @Summary Move a thread to trash
// @Tags mail
// @Param id path string true "Thread ID (UUID)"
// @Success 204 "Thread moved to trash"
// @Failure 400 {object} map[string]interface{} "Invalid thread ID"
// @Failure 403 {object} map[string]interface{} "Mailbox is read-only"
// @Failure 404 {object} map[string]interface{} "Thread not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /mail/threads/{id}/trash [post]
func (h *MailHandler) MoveThreadToTrash(c *gin.Context) {
	threadID, ok := parseUUIDParam(c, "id", "thread")
	if !ok {
		return
	}

	if err := h.service.MoveThreadToTrash(threadID); err != nil {
		respondError(c, err, "Failed to move thread to trash")
		return
	}

	c.Status(http.StatusNoContent)
}
