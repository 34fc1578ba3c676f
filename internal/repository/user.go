package repository

import (
	"crescendai-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithPersonalOrganization creates a user together with their personal organization
// ("<username>'s Organization", slug = username) and an admin membership in it.
// When account is non-nil it is linked to the new user in the same transaction.
func (r *UserRepository) CreateWithPersonalOrganization(user *models.User, account *models.Account) (*models.Organization, error) {
	var org *models.Organization
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if account != nil {
			account.UserID = user.ID
			if err := tx.Create(account).Error; err != nil {
				return err
			}
		}

		username := user.UsernameOrEmpty()
		org = &models.Organization{
			Name:       username + "'s Organization",
			Slug:       username,
			IsPersonal: true,
			OwnerID:    user.ID,
		}
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		return tx.Create(&models.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         user.ID,
			Role:           models.OrganizationRoleAdmin,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameExists reports whether a user already holds the username
func (r *UserRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

// ListEmailAddresses returns name and email of every user, for address completion
func (r *UserRepository) ListEmailAddresses() ([]models.User, error) {
	var users []models.User
	err := r.db.Select("id", "first_name", "last_name", "email").
		Order("email").
		Find(&users).Error
	return users, err
}
