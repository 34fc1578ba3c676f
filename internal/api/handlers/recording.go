package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	audioFormField = "audio"
	// room for the multipart envelope and the other form fields
	multipartOverhead = 1 << 20
)

// RecordingHandler handles HTTP requests for recordings
type RecordingHandler struct {
	service       service.RecordingServiceInterface
	maxUploadSize int64
}

// NewRecordingHandler creates a new recording handler. maxUploadSize caps multipart request
// bodies; zero disables the cap.
func NewRecordingHandler(service service.RecordingServiceInterface, maxUploadSize int64) *RecordingHandler {
	return &RecordingHandler{service: service, maxUploadSize: maxUploadSize}
}

// CreateRecording handles POST /api/v1/recordings
// @Summary Create a recording
// @Description Create a queued recording. Send JSON, or multipart/form-data with name, organization_id and an optional audio file.
// @Tags recordings
// @Accept json,mpfd
// @Produce json
// @Param recording body service.CreateRecordingRequest false "Recording data (JSON)"
// @Param name formData string false "Recording name (multipart)"
// @Param organization_id formData string false "Organization ID (multipart)"
// @Param audio formData file false "Audio file (multipart)"
// @Success 201 {object} service.RecordingResponse "Recording created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Caller is not a member of the organization"
// @Failure 413 {object} map[string]interface{} "Audio too large"
// @Failure 503 {object} map[string]interface{} "Blob storage not configured"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recordings [post]
func (h *RecordingHandler) CreateRecording(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	var (
		req   service.CreateRecordingRequest
		audio *service.AudioUpload
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		audio, ok = h.bindMultipart(c, &req)
		if !ok {
			return
		}
		if audio != nil {
			if closer, isCloser := audio.Body.(io.Closer); isCloser {
				defer closer.Close()
			}
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	recording, err := h.service.CreateRecording(c.Request.Context(), actor, &req, audio)
	if err != nil {
		respondError(c, err, "Failed to create recording")
		return
	}

	c.JSON(http.StatusCreated, recording)
}

func (h *RecordingHandler) bindMultipart(c *gin.Context, req *service.CreateRecordingRequest) (*service.AudioUpload, bool) {
	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+multipartOverhead)
	}

	req.Name = c.PostForm("name")
	if raw := strings.TrimSpace(c.PostForm("organization_id")); raw != "" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
			return nil, false
		}
		req.OrganizationID = orgID
	}

	fileHeader, err := c.FormFile(audioFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": apperrors.ErrUploadTooLarge.Error()})
			return nil, false
		case errors.Is(err, http.ErrMissingFile):
			return nil, true
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart body", "details": err.Error()})
			return nil, false
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read audio file", "details": err.Error()})
		return nil, false
	}

	return &service.AudioUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	}, true
}

// ListRecordings handles GET /api/v1/recordings?state=
// @Summary List recordings by state
// @Description Recordings in the given state across the caller's organizations
// @Tags recordings
// @Produce json
// @Param state query string true "Recording state (queued, processing, processed)"
// @Success 200 {array} service.RecordingResponse "Successfully retrieved recordings"
// @Failure 400 {object} map[string]interface{} "Invalid state"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recordings [get]
func (h *RecordingHandler) ListRecordings(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	state := c.Query("state")
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state query parameter is required"})
		return
	}

	recordings, err := h.service.ListRecordingsByState(c.Request.Context(), actor, state)
	if err != nil {
		respondError(c, err, "Failed to list recordings")
		return
	}

	c.JSON(http.StatusOK, recordings)
}

// SearchRecordings handles GET /api/v1/recordings/search?q=
// @Summary Search recordings
// @Description Case-insensitive match on recording or organization name, at most 20 results
// @Tags recordings
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} service.RecordingResponse "Matching recordings"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recordings/search [get]
func (h *RecordingHandler) SearchRecordings(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}

	recordings, err := h.service.SearchRecordings(c.Request.Context(), actor, c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to search recordings")
		return
	}

	c.JSON(http.StatusOK, recordings)
}

// GetRecording handles GET /api/v1/recordings/:id
// @Summary Get recording by ID
// @Tags recordings
// @Produce json
// @Param id path string true "Recording ID (UUID)"
// @Success 200 {object} service.RecordingResponse "Successfully retrieved recording"
// @Failure 400 {object} map[string]interface{} "Invalid recording ID"
// @Failure 404 {object} map[string]interface{} "Recording not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recordings/{id} [get]
func (h *RecordingHandler) GetRecording(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "recording")
	if !ok {
		return
	}

	recording, err := h.service.GetRecording(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to get recording")
		return
	}

	c.JSON(http.StatusOK, recording)
}

// ShareLink handles GET /api/v1/recordings/:id/share
// @Summary Get a share link
// @Description Public link to the recording's audio
// @Tags recordings
// @Produce json
// @Param id path string true "Recording ID (UUID)"
// @Success 200 {object} service.ShareLinkResponse "Share link"
// @Failure 400 {object} map[string]interface{} "Invalid recording ID or no audio"
// @Failure 404 {object} map[string]interface{} "Recording not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recordings/{id}/share [get]
func (h *RecordingHandler) ShareLink(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "recording")
	if !ok {
		return
	}

	link, err := h.service.ShareLink(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "Failed to build share link")
		return
	}

	c.JSON(http.StatusOK, link)
}

// DeleteRecording handles DELETE /api/v1/recordings/:id
// @Summary Delete recording
// @Description Delete a recording and its audio (creator or organization admin)
// @Tags recordings
// @Param id path string true "Recording ID (UUID)"
// @Success 204 "Recording deleted"
// @Failure 400 {object} map[string]interface{} "Invalid recording ID"
// @Failure 403 {object} map[string]interface{} "Not allowed"
// @Failure 404 {object} map[string]interface{} "Recording not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recordings/{id} [delete]
func (h *RecordingHandler) DeleteRecording(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, "id", "recording")
	if !ok {
		return
	}

	if err := h.service.DeleteRecording(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, "Failed to delete recording")
		return
	}

	c.Status(http.StatusNoContent)
}
