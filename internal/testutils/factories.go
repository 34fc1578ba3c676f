package testutils

import (
	"fmt"
	"strings"
	"time"

	"crescendai-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	username := "user" + strings.ReplaceAll(id.String()[:8], "-", "")
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Test",
		LastName:  "User",
		Email:     fmt.Sprintf("%s@example.com", username),
		Username:  &username,
		JobTitle:  "Pianist",
		Company:   "CrescendAI",
		Location:  "Berlin",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = &username
	return user
}

// Recipient creates a user the way sending mail to an unknown address does: email only
func (f *UserFactory) Recipient(email string) *models.User {
	return &models.User{Email: email}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create(ownerID uuid.UUID) *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Organization",
		Slug:        "test-org-" + id.String()[:8],
		Description: "A test organization for testing purposes",
		OwnerID:     ownerID,
	}
}

// WithSlug sets a custom slug for the organization
func (f *OrganizationFactory) WithSlug(ownerID uuid.UUID, slug string) *models.Organization {
	org := f.Create(ownerID)
	org.Slug = slug
	return org
}

// Personal creates a personal organization the way sign-up does
func (f *OrganizationFactory) Personal(owner *models.User) *models.Organization {
	org := f.Create(owner.ID)
	org.Name = owner.UsernameOrEmpty() + "'s Organization"
	org.Slug = owner.UsernameOrEmpty()
	org.IsPersonal = true
	return org
}

// MemberFactory provides methods to create test OrganizationMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test membership with the given role
func (f *MemberFactory) Create(orgID, userID uuid.UUID, role models.OrganizationRole) *models.OrganizationMember {
	return &models.OrganizationMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
		JoinedAt:       time.Now(),
	}
}

// RecordingFactory provides methods to create test Recording data
type RecordingFactory struct{}

// NewRecordingFactory creates a new RecordingFactory
func NewRecordingFactory() *RecordingFactory {
	return &RecordingFactory{}
}

// Create creates a queued test recording
func (f *RecordingFactory) Create(orgID, createdBy uuid.UUID) *models.Recording {
	return &models.Recording{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:           "Chopin Nocturne Op. 9 No. 2",
		State:          models.RecordingStateQueued,
		OrganizationID: orgID,
		CreatedBy:      createdBy,
	}
}

// WithState creates a test recording in the given state
func (f *RecordingFactory) WithState(orgID, createdBy uuid.UUID, state models.RecordingState) *models.Recording {
	rec := f.Create(orgID, createdBy)
	rec.State = state
	return rec
}

// WithName creates a test recording with a custom name
func (f *RecordingFactory) WithName(orgID, createdBy uuid.UUID, name string) *models.Recording {
	rec := f.Create(orgID, createdBy)
	rec.Name = name
	return rec
}

// MailFactory provides methods to create test mail data
type MailFactory struct{}

// NewMailFactory creates a new MailFactory
func NewMailFactory() *MailFactory {
	return &MailFactory{}
}

// Folder creates a folder with the given name
func (f *MailFactory) Folder(name string) *models.Folder {
	return &models.Folder{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
	}
}

// Thread creates a thread with the given subject
func (f *MailFactory) Thread(subject string) *models.Thread {
	return &models.Thread{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		Subject:          subject,
		LastActivityDate: time.Now(),
	}
}

// Email creates an email in a thread
func (f *MailFactory) Email(threadID, senderID, recipientID uuid.UUID, subject, body string, sent time.Time) *models.Email {
	return &models.Email{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ThreadID:    threadID,
		SenderID:    senderID,
		RecipientID: recipientID,
		Subject:     subject,
		Body:        body,
		SentDate:    sent,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Member       *MemberFactory
	Recording    *RecordingFactory
	Mail         *MailFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Member:       NewMemberFactory(),
		Recording:    NewRecordingFactory(),
		Mail:         NewMailFactory(),
	}
}
