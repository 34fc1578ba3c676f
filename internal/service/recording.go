package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"crescendai-backend/internal/cache"
	"crescendai-backend/internal/database/models"
	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/logger"
	"crescendai-backend/internal/metrics"
	"crescendai-backend/internal/repository"
	"crescendai-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	searchResultLimit       = 20
	defaultAudioContentType = "audio/mpeg"
)

// RecordingSettings holds the recording service's tunables
type RecordingSettings struct {
	MaxUploadSize int64
	PublicBaseURL string
}

// RecordingService handles business logic for recordings and their processing lifecycle
type RecordingService struct {
	recordings repository.RecordingRepositoryInterface
	orgs       repository.OrganizationRepositoryInterface
	members    repository.MemberRepositoryInterface
	blobs      storage.BlobStore
	publisher  RecordingPublisher
	cache      cache.Cache
	validator  *validator.Validate
	settings   RecordingSettings
	now        func() time.Time
}

// NewRecordingService creates a new recording service. blobs and publisher may be nil when
// storage or the processing queue are not configured.
func NewRecordingService(
	recordings repository.RecordingRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	members repository.MemberRepositoryInterface,
	blobs storage.BlobStore,
	publisher RecordingPublisher,
	c cache.Cache,
	validator *validator.Validate,
	settings RecordingSettings,
) *RecordingService {
	if c == nil {
		c = cache.Noop{}
	}
	return &RecordingService{
		recordings: recordings,
		orgs:       orgs,
		members:    members,
		blobs:      blobs,
		publisher:  publisher,
		cache:      c,
		validator:  validator,
		settings:   settings,
		now:        time.Now,
	}
}

// CreateRecordingRequest represents the request to create a recording
type CreateRecordingRequest struct {
	Name           string    `json:"name" form:"name" validate:"required,min=1,max=255"`
	OrganizationID uuid.UUID `json:"organization_id" form:"organization_id"`
}

// AudioUpload is the optional audio attached to a new recording
type AudioUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UserSummary is the part of a user shown next to a recording
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
}

// OrganizationSummary is the part of an organization shown next to a recording
type OrganizationSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// RecordingResponse represents the response for recording operations
type RecordingResponse struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	State          models.RecordingState `json:"state"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	CreatedBy      uuid.UUID             `json:"created_by"`
	HasResult      bool                  `json:"has_result"`
	Result         string                `json:"result,omitempty"`
	BlobURL        string                `json:"blob_url,omitempty"`
	ContentType    string                `json:"content_type,omitempty"`
	SizeBytes      int64                 `json:"size_bytes"`
	FailureReason  string                `json:"failure_reason,omitempty"`
	Creator        *UserSummary          `json:"creator,omitempty"`
	Organization   *OrganizationSummary  `json:"organization,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ShareLinkResponse carries a shareable link to a recording
type ShareLinkResponse struct {
	URL string `json:"url"`
}

// CreateRecording creates a queued recording in an organization the actor belongs to,
// storing and enqueueing its audio when one is attached
func (s *RecordingService) CreateRecording(ctx context.Context, actorID uuid.UUID, req *CreateRecordingRequest, audio *AudioUpload) (*RecordingResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.OrganizationID == uuid.Nil {
		return nil, apperrors.NewValidationError("organization_id", "organization_id is required")
	}

	if _, err := s.membership(actorID, req.OrganizationID); err != nil {
		return nil, err
	}

	recording := &models.Recording{
		Name:           req.Name,
		State:          models.RecordingStateQueued,
		OrganizationID: req.OrganizationID,
		CreatedBy:      actorID,
	}

	if audio != nil {
		if err := s.storeAudio(ctx, recording, audio); err != nil {
			return nil, err
		}
	}

	if err := s.recordings.Create(recording); err != nil {
		if recording.BlobKey != "" {
			s.deleteBlob(ctx, recording.BlobKey)
		}
		return nil, fmt.Errorf("failed to create recording: %w", err)
	}

	metrics.RecordRecordingCreated(recording.SizeBytes)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"recording_id":    recording.ID,
		"organization_id": recording.OrganizationID,
	})
	log.Info("Recording created")

	if recording.BlobKey != "" {
		s.enqueue(ctx, recording)
	}
	s.invalidateOrganization(ctx, recording.OrganizationID)

	return toRecordingResponse(recording), nil
}

func (s *RecordingService) storeAudio(ctx context.Context, recording *models.Recording, audio *AudioUpload) error {
	if s.blobs == nil {
		return apperrors.ErrStorageNotConfigured
	}
	if s.settings.MaxUploadSize > 0 && audio.Size > s.settings.MaxUploadSize {
		return apperrors.ErrUploadTooLarge
	}

	contentType := audio.ContentType
	if contentType == "" {
		contentType = defaultAudioContentType
	}

	key := storage.AudioObjectKey(recording.OrganizationID.String(), audio.Filename, s.now())
	uploaded, err := s.blobs.Put(ctx, key, audio.Body, audio.Size, contentType)
	if err != nil {
		return fmt.Errorf("failed to upload audio: %w", err)
	}

	recording.BlobKey = uploaded.Pathname
	recording.BlobURL = uploaded.URL
	recording.ContentType = contentType
	recording.SizeBytes = uploaded.Size
	return nil
}

func (s *RecordingService) enqueue(ctx context.Context, recording *models.Recording) {
	log := logger.WithContext(ctx).WithField("recording_id", recording.ID)
	if s.publisher == nil {
		log.Warn("Processing queue not configured, recording stays queued")
		return
	}
	if err := s.publisher.PublishRecordingProcess(ctx, recording.ID, recording.BlobKey, recording.ContentType); err != nil {
		log.WithError(err).Error("Failed to enqueue recording for processing")
	}
}

// ListOrganizationRecordings lists an organization's recordings newest first
func (s *RecordingService) ListOrganizationRecordings(ctx context.Context, actorID, orgID uuid.UUID) ([]RecordingResponse, error) {
	if _, err := s.membership(actorID, orgID); err != nil {
		return nil, err
	}

	recordings, err := s.recordings.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recordings: %w", err)
	}
	return toRecordingResponses(recordings), nil
}

// GetRecording returns a recording the actor can see, including its result
func (s *RecordingService) GetRecording(ctx context.Context, actorID, id uuid.UUID) (*RecordingResponse, error) {
	recording, _, err := s.visibleRecording(actorID, id)
	if err != nil {
		return nil, err
	}

	resp := toRecordingResponse(recording)
	if recording.Result != nil {
		resp.Result = recording.Result.Result
	}
	return resp, nil
}

// ListRecordingsByState lists recordings in a state across the actor's organizations
func (s *RecordingService) ListRecordingsByState(ctx context.Context, actorID uuid.UUID, state string) ([]RecordingResponse, error) {
	st := models.RecordingState(strings.ToLower(strings.TrimSpace(state)))
	if !st.IsValid() {
		return nil, apperrors.ErrInvalidRecordingState
	}

	orgIDs, err := s.orgs.ListIDsForUser(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	if len(orgIDs) == 0 {
		return []RecordingResponse{}, nil
	}

	recordings, err := s.recordings.ListByStateForOrganizations(st, orgIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list recordings: %w", err)
	}
	return toRecordingResponses(recordings), nil
}

// SearchRecordings matches recording or organization names across the actor's organizations
func (s *RecordingService) SearchRecordings(ctx context.Context, actorID uuid.UUID, query string) ([]RecordingResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []RecordingResponse{}, nil
	}

	orgIDs, err := s.orgs.ListIDsForUser(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	if len(orgIDs) == 0 {
		return []RecordingResponse{}, nil
	}

	recordings, err := s.recordings.SearchForOrganizations(orgIDs, query, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search recordings: %w", err)
	}
	return toRecordingResponses(recordings), nil
}

// ShareLink builds a public link to a recording's audio
func (s *RecordingService) ShareLink(ctx context.Context, actorID, id uuid.UUID) (*ShareLinkResponse, error) {
	recording, _, err := s.visibleRecording(actorID, id)
	if err != nil {
		return nil, err
	}
	if recording.BlobURL == "" {
		return nil, apperrors.NewValidationError("blob_url", "recording has no audio to share")
	}
	return &ShareLinkResponse{
		URL: storage.ShareLink(s.settings.PublicBaseURL, recording.ID.String(), recording.BlobURL),
	}, nil
}

// DeleteRecording deletes a recording. Only its creator or an organization admin may do so.
// The audio blob is removed best-effort.
func (s *RecordingService) DeleteRecording(ctx context.Context, actorID, id uuid.UUID) error {
	recording, member, err := s.visibleRecording(actorID, id)
	if err != nil {
		return err
	}
	if recording.CreatedBy != actorID && !member.IsAdmin() {
		return apperrors.ErrNotRecordingOwner
	}

	if err := s.recordings.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordingNotFound
		}
		return fmt.Errorf("failed to delete recording: %w", err)
	}

	if recording.BlobKey != "" && s.blobs != nil {
		s.deleteBlob(ctx, recording.BlobKey)
	}
	s.invalidateOrganization(ctx, recording.OrganizationID)
	return nil
}

// UpdateState moves a recording to a new processing state
func (s *RecordingService) UpdateState(ctx context.Context, id uuid.UUID, state models.RecordingState) error {
	if !state.IsValid() {
		return apperrors.ErrInvalidRecordingState
	}
	recording, err := s.getRecording(id)
	if err != nil {
		return err
	}
	if !recording.State.CanTransitionTo(state) {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStateTransition, recording.State, state)
	}

	if err := s.recordings.UpdateState(id, state); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordingNotFound
		}
		return fmt.Errorf("failed to update recording state: %w", err)
	}
	s.invalidateOrganization(ctx, recording.OrganizationID)
	return nil
}

// AttachResult stores a processing result and marks the recording processed
func (s *RecordingService) AttachResult(ctx context.Context, id uuid.UUID, payload string) error {
	recording, err := s.getRecording(id)
	if err != nil {
		return err
	}
	if !recording.State.CanTransitionTo(models.RecordingStateProcessed) {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStateTransition, recording.State, models.RecordingStateProcessed)
	}

	if _, err := s.recordings.AttachResult(id, payload); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordingNotFound
		}
		return fmt.Errorf("failed to attach recording result: %w", err)
	}
	s.invalidateOrganization(ctx, recording.OrganizationID)
	return nil
}

// MarkProcessing implements messaging.RecordingStateUpdater
func (s *RecordingService) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return s.UpdateState(ctx, id, models.RecordingStateProcessing)
}

// CompleteProcessing implements messaging.RecordingStateUpdater
func (s *RecordingService) CompleteProcessing(ctx context.Context, id uuid.UUID, payload string) error {
	return s.AttachResult(ctx, id, payload)
}

// FailProcessing implements messaging.RecordingStateUpdater
func (s *RecordingService) FailProcessing(ctx context.Context, id uuid.UUID, reason string) error {
	if err := s.recordings.MarkFailed(id, reason); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecordingNotFound
		}
		return fmt.Errorf("failed to record processing failure: %w", err)
	}
	return nil
}

func (s *RecordingService) getRecording(id uuid.UUID) (*models.Recording, error) {
	recording, err := s.recordings.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordingNotFound
		}
		return nil, fmt.Errorf("failed to get recording: %w", err)
	}
	return recording, nil
}

// visibleRecording loads a recording and the actor's membership in its organization.
// Recordings outside the actor's organizations are reported as not found.
func (s *RecordingService) visibleRecording(actorID, id uuid.UUID) (*models.Recording, *models.OrganizationMember, error) {
	recording, err := s.getRecording(id)
	if err != nil {
		return nil, nil, err
	}
	member, err := s.membership(actorID, recording.OrganizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotOrganizationMember) {
			return nil, nil, apperrors.ErrRecordingNotFound
		}
		return nil, nil, err
	}
	return recording, member, nil
}

func (s *RecordingService) membership(userID, orgID uuid.UUID) (*models.OrganizationMember, error) {
	member, err := s.members.Get(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotOrganizationMember
		}
		return nil, fmt.Errorf("failed to check organization access: %w", err)
	}
	return member, nil
}

func (s *RecordingService) deleteBlob(ctx context.Context, key string) {
	if err := s.blobs.Delete(ctx, key); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("blob_key", key).Warn("Failed to delete recording audio")
	}
}

// invalidateOrganization drops cached dashboards of every member of the organization
func (s *RecordingService) invalidateOrganization(ctx context.Context, orgID uuid.UUID) {
	userIDs, err := s.members.ListUserIDs(orgID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("organization_id", orgID).Warn("Failed to list members for cache invalidation")
		return
	}
	invalidateUserCaches(ctx, s.cache, userIDs...)
}

func toRecordingResponse(r *models.Recording) *RecordingResponse {
	resp := &RecordingResponse{
		ID:             r.ID,
		Name:           r.Name,
		State:          r.State,
		OrganizationID: r.OrganizationID,
		CreatedBy:      r.CreatedBy,
		HasResult:      r.HasResult(),
		BlobURL:        r.BlobURL,
		ContentType:    r.ContentType,
		SizeBytes:      r.SizeBytes,
		FailureReason:  r.FailureReason,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.CreatedByUser != nil {
		resp.Creator = &UserSummary{
			ID:        r.CreatedByUser.ID,
			FirstName: r.CreatedByUser.FirstName,
			LastName:  r.CreatedByUser.LastName,
			Email:     r.CreatedByUser.Email,
			Image:     r.CreatedByUser.Image,
		}
	}
	if r.Organization != nil {
		resp.Organization = &OrganizationSummary{
			ID:   r.Organization.ID,
			Name: r.Organization.Name,
			Slug: r.Organization.Slug,
		}
	}
	return resp
}

func toRecordingResponses(recordings []models.Recording) []RecordingResponse {
	out := make([]RecordingResponse, len(recordings))
	for i := range recordings {
		out[i] = *toRecordingResponse(&recordings[i])
	}
	return out
}
