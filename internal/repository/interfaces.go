package repository

import (
	"context"
	"time"

	"crescendai-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	CreateWithPersonalOrganization(user *models.User, account *models.Account) (*models.Organization, error)
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	ListEmailAddresses() ([]models.User, error)
}

// AccountRepositoryInterface defines the interface for OAuth account link operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetUserByAccount(provider, providerAccountID string) (*models.User, error)
	Delete(provider, providerAccountID string) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	CreateWithAdmin(org *models.Organization, adminUserID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	Delete(id uuid.UUID) error
	ListForUser(userID uuid.UUID) ([]OrganizationWithRole, error)
	ListIDsForUser(userID uuid.UUID) ([]uuid.UUID, error)
	GetStats(orgID uuid.UUID) (*OrganizationStats, error)
}

// MemberRepositoryInterface defines the interface for organization membership operations
type MemberRepositoryInterface interface {
	Create(member *models.OrganizationMember) error
	Get(orgID, userID uuid.UUID) (*models.OrganizationMember, error)
	ListByOrganization(orgID uuid.UUID) ([]MemberWithUser, error)
	ListUserIDs(orgID uuid.UUID) ([]uuid.UUID, error)
	CountAdmins(orgID uuid.UUID) (int64, error)
	Delete(orgID, userID uuid.UUID) error
}

// RecordingRepositoryInterface defines the interface for recording repository operations
type RecordingRepositoryInterface interface {
	Create(recording *models.Recording) error
	GetByID(id uuid.UUID) (*models.Recording, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Recording, error)
	ListByStateForOrganizations(state models.RecordingState, orgIDs []uuid.UUID) ([]models.Recording, error)
	SearchForOrganizations(orgIDs []uuid.UUID, query string, limit int) ([]models.Recording, error)
	CountByStateForOrganizations(orgIDs []uuid.UUID) (map[models.RecordingState]int64, error)
	RecentForOrganizations(orgIDs []uuid.UUID, limit int) ([]models.Recording, error)
	UpdateState(id uuid.UUID, state models.RecordingState) error
	MarkFailed(id uuid.UUID, reason string) error
	AttachResult(id uuid.UUID, payload string) (*models.RecordingResult, error)
	Delete(id uuid.UUID) error
}

// MailRepositoryInterface defines the interface for mailbox operations
type MailRepositoryInterface interface {
	FoldersWithThreadCount() ([]FolderWithCount, error)
	GetFolderByName(name string) (*models.Folder, error)
	ThreadsForFolder(folderID uuid.UUID, search string) ([]models.Thread, error)
	GetThreadInFolder(folderID, threadID uuid.UUID) (*models.Thread, error)
	SearchThreads(query string) ([]ThreadSearchResult, error)
	SendEmail(senderID uuid.UUID, recipientEmail, subject, body string, folderID uuid.UUID) (*models.Thread, error)
	MoveThread(threadID, folderID uuid.UUID) error
	DeleteEmail(folderID, emailID uuid.UUID) error
	LatestThreadsForSender(userID uuid.UUID, limit int) ([]models.Thread, error)
}

// OrganizationWithRole is an organization as seen by one of its members
type OrganizationWithRole struct {
	ID             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	Slug           string                  `json:"slug"`
	Description    string                  `json:"description"`
	IsPersonal     bool                    `json:"is_personal"`
	OwnerID        uuid.UUID               `json:"owner_id"`
	Role           models.OrganizationRole `json:"role"`
	JoinedAt       time.Time               `json:"joined_at"`
	MemberCount    int64                   `json:"member_count"`
	RecordingCount int64                   `json:"recording_count"`
}

// OrganizationStats holds aggregate counts for an organization
type OrganizationStats struct {
	MemberCount    int64 `json:"member_count"`
	RecordingCount int64 `json:"recording_count"`
}

// MemberWithUser is a membership joined with the member's user profile
type MemberWithUser struct {
	ID        uuid.UUID               `json:"id"`
	Email     string                  `json:"email"`
	Username  *string                 `json:"username"`
	FirstName string                  `json:"first_name"`
	LastName  string                  `json:"last_name"`
	Image     string                  `json:"image"`
	Role      models.OrganizationRole `json:"role"`
	JoinedAt  time.Time               `json:"joined_at"`
}

// FolderWithCount is a folder and the number of threads it holds
type FolderWithCount struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ThreadCount int64     `json:"thread_count"`
}

// ThreadSearchResult is a thread matching a search, with its newest email and folder
type ThreadSearchResult struct {
	Thread      models.Thread `json:"thread"`
	LatestEmail *models.Email `json:"latest_email"`
	FolderName  string        `json:"folder_name"`
}
