package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"crescendai-backend/internal/config"
	"crescendai-backend/internal/database"
	"crescendai-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username  string `yaml:"username"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Image     string `yaml:"image,omitempty"`
	JobTitle  string `yaml:"job_title,omitempty"`
	Location  string `yaml:"location,omitempty"`
	Github    string `yaml:"github,omitempty"`
}

type MembershipData struct {
	Username string `yaml:"username"`
	Role     string `yaml:"role"`
}

type OrganizationData struct {
	Slug        string           `yaml:"slug"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Owner       string           `yaml:"owner"`
	Members     []MembershipData `yaml:"members"`
}

type RecordingData struct {
	Name         string    `yaml:"name"`
	Organization string    `yaml:"organization"`
	CreatedBy    string    `yaml:"created_by"`
	State        string    `yaml:"state"`
	Result       string    `yaml:"result,omitempty"`
	CreatedAt    time.Time `yaml:"created_at"`
}

type EmailData struct {
	From   string    `yaml:"from"`
	To     string    `yaml:"to"`
	Body   string    `yaml:"body"`
	SentAt time.Time `yaml:"sent_at"`
}

type ThreadData struct {
	Subject string      `yaml:"subject"`
	Folders []string    `yaml:"folders"`
	Emails  []EmailData `yaml:"emails"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type RecordingsFile struct {
	Recordings []RecordingData `yaml:"recordings"`
}

type MailFile struct {
	Folders []string     `yaml:"folders"`
	Threads []ThreadData `yaml:"threads"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func readYAML(dataDir, name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(dataDir, name))
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var users UsersFile
	if err := readYAML(dataDir, "users.yaml", &users); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var organizations OrganizationsFile
	if err := readYAML(dataDir, "organizations.yaml", &organizations); err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}
	var recordings RecordingsFile
	if err := readYAML(dataDir, "recordings.yaml", &recordings); err != nil {
		return fmt.Errorf("failed to load recordings: %w", err)
	}
	var mail MailFile
	if err := readYAML(dataDir, "mail.yaml", &mail); err != nil {
		return fmt.Errorf("failed to load mail: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := clearExistingData(tx); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}

		userMap := make(map[string]*models.User)
		orgMap := make(map[string]*models.Organization)

		// Users and their personal organizations
		created := 0
		for _, userData := range users.Users {
			user, isNew, err := createUser(tx, userData)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
			}
			userMap[userData.Username] = user

			personal, err := createOrganization(tx, OrganizationData{
				Slug:        userData.Username,
				Name:        fmt.Sprintf("%s's Organization", userData.Username),
				Description: fmt.Sprintf("Personal organization for %s", user.FullName()),
				Owner:       userData.Username,
				Members:     []MembershipData{{Username: userData.Username, Role: string(models.OrganizationRoleAdmin)}},
			}, true, userMap)
			if err != nil {
				return fmt.Errorf("failed to create personal organization for %s: %w", userData.Username, err)
			}
			orgMap[personal.Slug] = personal
			if isNew {
				created++
			}
		}
		log.Printf("Users: %d created, %d total", created, len(users.Users))

		for _, orgData := range organizations.Organizations {
			org, err := createOrganization(tx, orgData, false, userMap)
			if err != nil {
				return fmt.Errorf("failed to create organization %s: %w", orgData.Slug, err)
			}
			orgMap[org.Slug] = org
		}
		log.Printf("Organizations: %d shared, %d total", len(organizations.Organizations), len(orgMap))

		created = 0
		for _, recordingData := range recordings.Recordings {
			isNew, err := createRecording(tx, recordingData, orgMap, userMap)
			if err != nil {
				return fmt.Errorf("failed to create recording %s: %w", recordingData.Name, err)
			}
			if isNew {
				created++
			}
		}
		log.Printf("Recordings: %d created, %d total", created, len(recordings.Recordings))

		folderMap, err := createFolders(tx, mail.Folders, userMap)
		if err != nil {
			return fmt.Errorf("failed to create folders: %w", err)
		}

		created = 0
		for _, threadData := range mail.Threads {
			isNew, err := createThread(tx, threadData, folderMap, userMap)
			if err != nil {
				return fmt.Errorf("failed to create thread %s: %w", threadData.Subject, err)
			}
			if isNew {
				created++
			}
		}
		log.Printf("Threads: %d created, %d total", created, len(mail.Threads))

		return nil
	})
}

// clearExistingData removes seeded rows, children first
func clearExistingData(tx *gorm.DB) error {
	tables := []interface{}{
		&models.ThreadFolder{},
		&models.UserFolder{},
		&models.Email{},
		&models.Thread{},
		&models.Folder{},
		&models.OrganizationMember{},
		&models.Recording{},
		&models.RecordingResult{},
		&models.Organization{},
		&models.Account{},
		&models.User{},
	}
	for _, table := range tables {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUser(tx *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	err := tx.Where("email = ?", userData.Email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	username := userData.Username
	verified := time.Now()
	user = models.User{
		FirstName:     userData.FirstName,
		LastName:      userData.LastName,
		Email:         userData.Email,
		Username:      &username,
		EmailVerified: &verified,
		Image:         userData.Image,
		JobTitle:      userData.JobTitle,
		Location:      userData.Location,
		Github:        userData.Github,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func createOrganization(tx *gorm.DB, orgData OrganizationData, personal bool, userMap map[string]*models.User) (*models.Organization, error) {
	var org models.Organization
	err := tx.Where("slug = ?", orgData.Slug).First(&org).Error
	if err == nil {
		return &org, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query organization: %w", err)
	}

	owner, ok := userMap[orgData.Owner]
	if !ok {
		return nil, fmt.Errorf("unknown owner %q", orgData.Owner)
	}

	org = models.Organization{
		Name:        orgData.Name,
		Slug:        orgData.Slug,
		Description: orgData.Description,
		IsPersonal:  personal,
		OwnerID:     owner.ID,
	}
	if err := tx.Create(&org).Error; err != nil {
		return nil, err
	}

	for _, membership := range orgData.Members {
		user, ok := userMap[membership.Username]
		if !ok {
			return nil, fmt.Errorf("unknown member %q", membership.Username)
		}
		role := models.OrganizationRole(membership.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("invalid role %q for %s", membership.Role, membership.Username)
		}
		member := models.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         user.ID,
			Role:           role,
			JoinedAt:       time.Now(),
		}
		if err := tx.Create(&member).Error; err != nil {
			return nil, err
		}
	}

	return &org, nil
}

func createRecording(tx *gorm.DB, recordingData RecordingData, orgMap map[string]*models.Organization, userMap map[string]*models.User) (bool, error) {
	org, ok := orgMap[recordingData.Organization]
	if !ok {
		return false, fmt.Errorf("unknown organization %q", recordingData.Organization)
	}
	creator, ok := userMap[recordingData.CreatedBy]
	if !ok {
		return false, fmt.Errorf("unknown user %q", recordingData.CreatedBy)
	}
	state := models.RecordingState(recordingData.State)
	if !state.IsValid() {
		return false, fmt.Errorf("invalid state %q", recordingData.State)
	}

	var count int64
	if err := tx.Model(&models.Recording{}).
		Where("organization_id = ? AND name = ?", org.ID, recordingData.Name).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	recording := models.Recording{
		Name:           recordingData.Name,
		State:          state,
		OrganizationID: org.ID,
		CreatedBy:      creator.ID,
	}
	recording.CreatedAt = recordingData.CreatedAt
	recording.UpdatedAt = recordingData.CreatedAt

	if state == models.RecordingStateProcessed && recordingData.Result != "" {
		result := models.RecordingResult{
			Result: base64.StdEncoding.EncodeToString([]byte(recordingData.Result)),
		}
		if err := tx.Create(&result).Error; err != nil {
			return false, err
		}
		recording.ResultID = &result.ID
	}

	if err := tx.Create(&recording).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createFolders(tx *gorm.DB, names []string, userMap map[string]*models.User) (map[string]*models.Folder, error) {
	folderMap := make(map[string]*models.Folder)
	for _, name := range names {
		folder := models.Folder{Name: name}
		if err := tx.Where(models.Folder{Name: name}).FirstOrCreate(&folder).Error; err != nil {
			return nil, err
		}
		folderMap[name] = &folder

		for _, user := range userMap {
			link := models.UserFolder{UserID: user.ID, FolderID: folder.ID}
			if err := tx.Where(models.UserFolder{UserID: user.ID, FolderID: folder.ID}).FirstOrCreate(&link).Error; err != nil {
				return nil, err
			}
		}
	}
	return folderMap, nil
}

func createThread(tx *gorm.DB, threadData ThreadData, folderMap map[string]*models.Folder, userMap map[string]*models.User) (bool, error) {
	var count int64
	if err := tx.Model(&models.Thread{}).Where("subject = ?", threadData.Subject).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	thread := models.Thread{Subject: threadData.Subject}
	for _, emailData := range threadData.Emails {
		if emailData.SentAt.After(thread.LastActivityDate) {
			thread.LastActivityDate = emailData.SentAt
		}
	}
	if err := tx.Create(&thread).Error; err != nil {
		return false, err
	}

	for _, emailData := range threadData.Emails {
		sender, ok := userMap[emailData.From]
		if !ok {
			return false, fmt.Errorf("unknown sender %q", emailData.From)
		}
		recipient, ok := userMap[emailData.To]
		if !ok {
			return false, fmt.Errorf("unknown recipient %q", emailData.To)
		}
		email := models.Email{
			ThreadID:    thread.ID,
			SenderID:    sender.ID,
			RecipientID: recipient.ID,
			Subject:     threadData.Subject,
			Body:        emailData.Body,
			SentDate:    emailData.SentAt,
		}
		if err := tx.Create(&email).Error; err != nil {
			return false, err
		}
	}

	for _, name := range threadData.Folders {
		folder, ok := folderMap[name]
		if !ok {
			return false, fmt.Errorf("unknown folder %q", name)
		}
		if err := tx.Create(&models.ThreadFolder{ThreadID: thread.ID, FolderID: folder.ID}).Error; err != nil {
			return false, err
		}
	}

	return true, nil
}
