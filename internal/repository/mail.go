package repository

import (
	"time"

	"crescendai-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const emailMatchClause = `EXISTS (
	SELECT 1 FROM emails e
	JOIN users s ON s.id = e.sender_id
	WHERE e.thread_id = threads.id
	AND (e.subject ILIKE @q OR e.body ILIKE @q OR s.first_name ILIKE @q OR s.last_name ILIKE @q OR s.email ILIKE @q)
)`

// MailRepository handles database operations for folders, threads and emails
type MailRepository struct {
	db *gorm.DB
}

// NewMailRepository creates a new mail repository
func NewMailRepository(db *gorm.DB) *MailRepository {
	return &MailRepository{db: db}
}

// FoldersWithThreadCount lists every folder with the number of threads in it
func (r *MailRepository) FoldersWithThreadCount() ([]FolderWithCount, error) {
	var rows []FolderWithCount
	err := r.db.Table("folders AS f").
		Select("f.id, f.name, COUNT(tf.thread_id) AS thread_count").
		Joins("LEFT JOIN thread_folders tf ON tf.folder_id = f.id").
		Group("f.id, f.name").
		Order("f.name ASC").
		Scan(&rows).Error
	return rows, err
}

// GetFolderByName retrieves a folder by its exact name
func (r *MailRepository) GetFolderByName(name string) (*models.Folder, error) {
	var folder models.Folder
	err := r.db.First(&folder, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// ThreadsForFolder lists the threads in a folder, newest activity first, each with its
// emails newest first. A non-empty search keeps threads whose subject or any email matches.
func (r *MailRepository) ThreadsForFolder(folderID uuid.UUID, search string) ([]models.Thread, error) {
	var threads []models.Thread
	query := r.db.Model(&models.Thread{}).
		Joins("JOIN thread_folders tf ON tf.thread_id = threads.id").
		Where("tf.folder_id = ?", folderID)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("threads.subject ILIKE @q OR "+emailMatchClause, map[string]interface{}{"q": pattern})
	}

	err := query.
		Preload("Emails", func(db *gorm.DB) *gorm.DB {
			return db.Order("sent_date DESC")
		}).
		Preload("Emails.Sender").
		Order("threads.last_activity_date DESC").
		Find(&threads).Error
	return threads, err
}

// GetThreadInFolder retrieves a thread in a folder with its emails oldest first
func (r *MailRepository) GetThreadInFolder(folderID, threadID uuid.UUID) (*models.Thread, error) {
	var thread models.Thread
	err := r.db.Model(&models.Thread{}).
		Joins("JOIN thread_folders tf ON tf.thread_id = threads.id").
		Where("tf.folder_id = ? AND threads.id = ?", folderID, threadID).
		Preload("Emails", func(db *gorm.DB) *gorm.DB {
			return db.Order("sent_date ASC")
		}).
		Preload("Emails.Sender").
		Preload("Emails.Recipient").
		First(&thread).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// SearchThreads finds threads whose subject, email bodies or senders match the query
func (r *MailRepository) SearchThreads(query string) ([]ThreadSearchResult, error) {
	results := []ThreadSearchResult{}
	if query == "" {
		return results, nil
	}

	pattern := "%" + query + "%"
	var threads []models.Thread
	err := r.db.Model(&models.Thread{}).
		Where("threads.subject ILIKE @q OR "+emailMatchClause, map[string]interface{}{"q": pattern}).
		Preload("Emails", func(db *gorm.DB) *gorm.DB {
			return db.Order("sent_date DESC")
		}).
		Preload("Emails.Sender").
		Preload("ThreadFolders.Folder").
		Order("threads.last_activity_date DESC").
		Find(&threads).Error
	if err != nil {
		return nil, err
	}

	for _, t := range threads {
		result := ThreadSearchResult{Thread: t}
		if len(t.Emails) > 0 {
			latest := t.Emails[0]
			result.LatestEmail = &latest
		}
		if len(t.ThreadFolders) > 0 && t.ThreadFolders[0].Folder != nil {
			result.FolderName = t.ThreadFolders[0].Folder.Name
		}
		result.Thread.Emails = nil
		result.Thread.ThreadFolders = nil
		results = append(results, result)
	}
	return results, nil
}

// SendEmail creates a thread holding one email from sender to recipientEmail and files it
// in folderID. An unknown recipient address gets a new user row. Runs in one transaction.
func (r *MailRepository) SendEmail(senderID uuid.UUID, recipientEmail, subject, body string, folderID uuid.UUID) (*models.Thread, error) {
	now := time.Now()
	thread := &models.Thread{Subject: subject, LastActivityDate: now}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var recipient models.User
		if err := tx.Where(models.User{Email: recipientEmail}).FirstOrCreate(&recipient).Error; err != nil {
			return err
		}

		if err := tx.Create(thread).Error; err != nil {
			return err
		}

		email := &models.Email{
			ThreadID:    thread.ID,
			SenderID:    senderID,
			RecipientID: recipient.ID,
			Subject:     subject,
			Body:        body,
			SentDate:    now,
		}
		if err := tx.Create(email).Error; err != nil {
			return err
		}

		return tx.Create(&models.ThreadFolder{ThreadID: thread.ID, FolderID: folderID}).Error
	})
	if err != nil {
		return nil, err
	}
	return thread, nil
}

// MoveThread replaces every folder link of a thread with a single link to folderID
func (r *MailRepository) MoveThread(threadID, folderID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var thread models.Thread
		if err := tx.First(&thread, "id = ?", threadID).Error; err != nil {
			return err
		}
		if err := tx.Where("thread_id = ?", threadID).Delete(&models.ThreadFolder{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.ThreadFolder{ThreadID: threadID, FolderID: folderID}).Error
	})
}

// DeleteEmail deletes an email whose thread is in folderID. A thread left without
// emails is deleted along with its folder links.
func (r *MailRepository) DeleteEmail(folderID, emailID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var email models.Email
		err := tx.Model(&models.Email{}).
			Joins("JOIN thread_folders tf ON tf.thread_id = emails.thread_id").
			Where("emails.id = ? AND tf.folder_id = ?", emailID, folderID).
			First(&email).Error
		if err != nil {
			return err
		}

		if err := tx.Delete(&models.Email{}, "id = ?", emailID).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&models.Email{}).Where("thread_id = ?", email.ThreadID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		if err := tx.Where("thread_id = ?", email.ThreadID).Delete(&models.ThreadFolder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Thread{}, "id = ?", email.ThreadID).Error
	})
}

// LatestThreadsForSender returns the most recently active threads the user sent mail in
func (r *MailRepository) LatestThreadsForSender(userID uuid.UUID, limit int) ([]models.Thread, error) {
	var threads []models.Thread
	err := r.db.Model(&models.Thread{}).
		Where("EXISTS (SELECT 1 FROM emails e WHERE e.thread_id = threads.id AND e.sender_id = ?)", userID).
		Order("threads.last_activity_date DESC").
		Limit(limit).
		Find(&threads).Error
	return threads, err
}
