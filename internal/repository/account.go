package repository

import (
	"crescendai-backend/internal/database/models"

	"gorm.io/gorm"
)

// AccountRepository handles database operations for OAuth account links
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create links a provider account to a user
func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// GetUserByAccount returns the user linked to the provider account
func (r *AccountRepository) GetUserByAccount(provider, providerAccountID string) (*models.User, error) {
	var account models.Account
	err := r.db.Preload("User").
		First(&account, "provider = ? AND provider_account_id = ?", provider, providerAccountID).Error
	if err != nil {
		return nil, err
	}
	if account.User == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return account.User, nil
}

// Delete unlinks a provider account
func (r *AccountRepository) Delete(provider, providerAccountID string) error {
	return r.db.Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		Delete(&models.Account{}).Error
}
