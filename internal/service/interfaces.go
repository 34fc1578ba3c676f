package service

import (
	"context"

	"crescendai-backend/internal/database/models"
	"crescendai-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RecordingPublisher hands uploaded recordings to the processing worker
type RecordingPublisher interface {
	PublishRecordingProcess(ctx context.Context, recordingID uuid.UUID, blobKey, contentType string) error
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	CreateOrganization(ctx context.Context, actorID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	ListUserOrganizations(ctx context.Context, actorID uuid.UUID) ([]repository.OrganizationWithRole, error)
	GetOrganizationBySlug(ctx context.Context, actorID uuid.UUID, slug string) (*OrganizationDetailResponse, error)
	ListMembers(ctx context.Context, actorID, orgID uuid.UUID) ([]repository.MemberWithUser, error)
	InviteMember(ctx context.Context, actorID, orgID uuid.UUID, req *InviteMemberRequest) (*MemberResponse, error)
	RemoveMember(ctx context.Context, actorID, orgID, userID uuid.UUID) error
	DeleteOrganization(ctx context.Context, actorID, orgID uuid.UUID) error
	CheckAccess(userID, orgID uuid.UUID) (*models.OrganizationMember, error)
}

// RecordingServiceInterface defines the interface for recording service
type RecordingServiceInterface interface {
	CreateRecording(ctx context.Context, actorID uuid.UUID, req *CreateRecordingRequest, audio *AudioUpload) (*RecordingResponse, error)
	ListOrganizationRecordings(ctx context.Context, actorID, orgID uuid.UUID) ([]RecordingResponse, error)
	GetRecording(ctx context.Context, actorID, id uuid.UUID) (*RecordingResponse, error)
	ListRecordingsByState(ctx context.Context, actorID uuid.UUID, state string) ([]RecordingResponse, error)
	SearchRecordings(ctx context.Context, actorID uuid.UUID, query string) ([]RecordingResponse, error)
	ShareLink(ctx context.Context, actorID, id uuid.UUID) (*ShareLinkResponse, error)
	DeleteRecording(ctx context.Context, actorID, id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Stats(ctx context.Context, actorID uuid.UUID) (*DashboardStats, error)
	Overview(ctx context.Context, actorID uuid.UUID) (*DashboardOverview, error)
}

// MailServiceInterface defines the interface for mail service
type MailServiceInterface interface {
	Folders() ([]repository.FolderWithCount, error)
	ThreadsForFolder(folderName, query string) ([]models.Thread, error)
	Thread(folderName string, threadID uuid.UUID) (*models.Thread, error)
	SearchThreads(query string) ([]repository.ThreadSearchResult, error)
	SendEmail(actorID uuid.UUID, req *SendEmailRequest) (*SendEmailResponse, error)
	MoveThreadToDone(threadID uuid.UUID) error
	MoveThreadToTrash(threadID uuid.UUID) error
	DeleteEmail(folderName string, emailID uuid.UUID) error
	EmailAddresses() ([]string, error)
	UserProfile(userID uuid.UUID) (*UserProfileResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Me(ctx context.Context, actorID uuid.UUID) (*MeResponse, error)
}
