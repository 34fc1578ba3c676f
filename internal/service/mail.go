package service

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"crescendai-backend/internal/database/models"
	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/metrics"
	"crescendai-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

const profileThreadLimit = 3

// MailService handles the mailbox: folders, threads, search and sending
type MailService struct {
	mail      repository.MailRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
	readOnly  bool
}

// NewMailService creates a new mail service. A read-only mailbox rejects every mutation.
func NewMailService(mail repository.MailRepositoryInterface, users repository.UserRepositoryInterface, validator *validator.Validate, readOnly bool) *MailService {
	return &MailService{
		mail:      mail,
		users:     users,
		validator: validator,
		readOnly:  readOnly,
	}
}

// SendEmailRequest represents the compose form
type SendEmailRequest struct {
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	RecipientEmail string `json:"recipient_email"`
}

// SendEmailResponse carries the thread created by sending an email
type SendEmailResponse struct {
	ThreadID uuid.UUID `json:"thread_id"`
}

// UserProfileResponse is a user's public profile with the threads they started most recently
type UserProfileResponse struct {
	ID            uuid.UUID       `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	JobTitle      string          `json:"job_title,omitempty"`
	Company       string          `json:"company,omitempty"`
	Location      string          `json:"location,omitempty"`
	Twitter       string          `json:"twitter,omitempty"`
	Linkedin      string          `json:"linkedin,omitempty"`
	Github        string          `json:"github,omitempty"`
	AvatarURL     string          `json:"avatar_url,omitempty"`
	LatestThreads []ProfileThread `json:"latest_threads"`
}

// ProfileThread is a thread summary on a user profile
type ProfileThread struct {
	ID               uuid.UUID `json:"id"`
	Subject          string    `json:"subject"`
	LastActivityDate time.Time `json:"last_activity_date"`
}

// Folders lists folders with their thread counts: Inbox, Flagged and Sent first, the rest by name
func (s *MailService) Folders() ([]repository.FolderWithCount, error) {
	folders, err := s.mail.FoldersWithThreadCount()
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	sortFolders(folders)
	return folders, nil
}

func sortFolders(folders []repository.FolderWithCount) {
	rank := func(name string) int {
		for i, special := range models.SpecialFolderOrder {
			if name == special {
				return i
			}
		}
		return len(models.SpecialFolderOrder)
	}
	sort.SliceStable(folders, func(i, j int) bool {
		ri, rj := rank(folders[i].Name), rank(folders[j].Name)
		if ri != rj {
			return ri < rj
		}
		return folders[i].Name < folders[j].Name
	})
}

// ThreadsForFolder lists a folder's threads, optionally filtered by a search query
func (s *MailService) ThreadsForFolder(folderName, query string) ([]models.Thread, error) {
	folder, err := s.folder(folderName)
	if err != nil {
		return nil, err
	}

	threads, err := s.mail.ThreadsForFolder(folder.ID, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	if threads == nil {
		threads = []models.Thread{}
	}
	return threads, nil
}

// Thread returns a thread in a folder with its emails oldest first
func (s *MailService) Thread(folderName string, threadID uuid.UUID) (*models.Thread, error) {
	folder, err := s.folder(folderName)
	if err != nil {
		return nil, err
	}

	thread, err := s.mail.GetThreadInFolder(folder.ID, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return thread, nil
}

// SearchThreads searches subjects, bodies and senders. An empty query returns nothing.
func (s *MailService) SearchThreads(query string) ([]repository.ThreadSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []repository.ThreadSearchResult{}, nil
	}

	results, err := s.mail.SearchThreads(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search threads: %w", err)
	}
	return results, nil
}

// SendEmail starts a new thread with one email from the actor and files it under Sent.
// Unknown recipients are created.
func (s *MailService) SendEmail(actorID uuid.UUID, req *SendEmailRequest) (*SendEmailResponse, error) {
	if s.readOnly {
		return nil, apperrors.ErrMailboxReadOnly
	}

	req.Subject = strings.TrimSpace(req.Subject)
	req.Body = strings.TrimSpace(req.Body)
	req.RecipientEmail = strings.TrimSpace(req.RecipientEmail)
	if err := s.validateSendEmail(req); err != nil {
		return nil, err
	}

	sent, err := s.folder(models.FolderSent)
	if err != nil {
		return nil, err
	}

	thread, err := s.mail.SendEmail(actorID, req.RecipientEmail, req.Subject, req.Body, sent.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	metrics.RecordEmailSent()
	return &SendEmailResponse{ThreadID: thread.ID}, nil
}

func (s *MailService) validateSendEmail(req *SendEmailRequest) error {
	fields := &apperrors.FieldErrors{Message: "validation failed"}
	if req.Subject == "" {
		fields.Add("subject", "Subject is required")
	}
	if req.Body == "" {
		fields.Add("body", "Body is required")
	}
	if err := s.validator.Var(req.RecipientEmail, "required,email"); err != nil {
		fields.Add("recipient_email", "Invalid email address")
	}
	if fields.HasErrors() {
		return fields
	}
	return nil
}

// MoveThreadToDone files a thread under Archive only
func (s *MailService) MoveThreadToDone(threadID uuid.UUID) error {
	return s.moveThread(threadID, models.FolderArchive)
}

// MoveThreadToTrash files a thread under Trash only
func (s *MailService) MoveThreadToTrash(threadID uuid.UUID) error {
	return s.moveThread(threadID, models.FolderTrash)
}

func (s *MailService) moveThread(threadID uuid.UUID, folderName string) error {
	if s.readOnly {
		return apperrors.ErrMailboxReadOnly
	}

	folder, err := s.folder(folderName)
	if err != nil {
		return err
	}

	if err := s.mail.MoveThread(threadID, folder.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrThreadNotFound
		}
		return fmt.Errorf("failed to move thread: %w", err)
	}
	return nil
}

// DeleteEmail deletes an email from a thread in the folder. A thread left empty is removed.
func (s *MailService) DeleteEmail(folderName string, emailID uuid.UUID) error {
	if s.readOnly {
		return apperrors.ErrMailboxReadOnly
	}

	folder, err := s.folder(folderName)
	if err != nil {
		return err
	}

	if err := s.mail.DeleteEmail(folder.ID, emailID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmailNotFound
		}
		return fmt.Errorf("failed to delete email: %w", err)
	}
	return nil
}

// EmailAddresses lists every known address formatted for the compose form
func (s *MailService) EmailAddresses() ([]string, error) {
	users, err := s.users.ListEmailAddresses()
	if err != nil {
		return nil, fmt.Errorf("failed to list email addresses: %w", err)
	}

	addresses := make([]string, 0, len(users))
	for i := range users {
		addresses = append(addresses, formatEmailString(&users[i]))
	}
	return addresses, nil
}

// UserProfile returns a user's profile with the last threads they sent
func (s *MailService) UserProfile(userID uuid.UUID) (*UserProfileResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	threads, err := s.mail.LatestThreadsForSender(userID, profileThreadLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest threads: %w", err)
	}

	profile := &UserProfileResponse{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		JobTitle:      user.JobTitle,
		Company:       user.Company,
		Location:      user.Location,
		Twitter:       user.Twitter,
		Linkedin:      user.Linkedin,
		Github:        user.Github,
		AvatarURL:     user.AvatarURL,
		LatestThreads: make([]ProfileThread, 0, len(threads)),
	}
	for _, t := range threads {
		profile.LatestThreads = append(profile.LatestThreads, ProfileThread{
			ID:               t.ID,
			Subject:          t.Subject,
			LastActivityDate: t.LastActivityDate,
		})
	}
	return profile, nil
}

// folder resolves a folder name taken from a URL: decoded, then title-cased
func (s *MailService) folder(name string) (*models.Folder, error) {
	normalized := normalizeFolderName(name)
	if normalized == "" {
		return nil, apperrors.ErrFolderNotFound
	}

	folder, err := s.mail.GetFolderByName(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFolderNotFound
		}
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	return folder, nil
}

var titleCaser = cases.Title(language.English)

func normalizeFolderName(name string) string {
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return titleCaser.String(strings.TrimSpace(name))
}

// formatEmailString renders "First Last <email>" when both names are known, else the address
func formatEmailString(u *models.User) string {
	if u.FirstName != "" && u.LastName != "" {
		return fmt.Sprintf("%s %s <%s>", u.FirstName, u.LastName, u.Email)
	}
	return u.Email
}
