package repository

import (
	"crescendai-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// CreateWithAdmin creates an organization and exactly one admin membership for adminUserID
func (r *OrganizationRepository) CreateWithAdmin(org *models.Organization, adminUserID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		return tx.Create(&models.OrganizationMember{
			OrganizationID: org.ID,
			UserID:         adminUserID,
			Role:           models.OrganizationRoleAdmin,
		}).Error
	})
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetBySlug retrieves an organization by slug
func (r *OrganizationRepository) GetBySlug(slug string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Delete deletes an organization together with its memberships and recordings
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.OrganizationMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", id).Delete(&models.Recording{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Organization{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListForUser lists the organizations the user belongs to with the user's role and
// member/recording counts, personal organization first, then by name
func (r *OrganizationRepository) ListForUser(userID uuid.UUID) ([]OrganizationWithRole, error) {
	var rows []OrganizationWithRole
	err := r.db.Table("organization_members AS om").
		Select(`o.id, o.name, o.slug, o.description, o.is_personal, o.owner_id,
			om.role, om.joined_at,
			(SELECT COUNT(*) FROM organization_members m WHERE m.organization_id = o.id) AS member_count,
			(SELECT COUNT(*) FROM recordings rec WHERE rec.organization_id = o.id) AS recording_count`).
		Joins("JOIN organizations o ON o.id = om.organization_id").
		Where("om.user_id = ?", userID).
		Order("o.is_personal DESC, o.name ASC").
		Scan(&rows).Error
	return rows, err
}

// ListIDsForUser returns the ids of the organizations the user belongs to
func (r *OrganizationRepository) ListIDsForUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.OrganizationMember{}).
		Where("user_id = ?", userID).
		Pluck("organization_id", &ids).Error
	return ids, err
}

// GetStats counts distinct members and recordings of an organization
func (r *OrganizationRepository) GetStats(orgID uuid.UUID) (*OrganizationStats, error) {
	var stats OrganizationStats
	if err := r.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ?", orgID).
		Distinct("user_id").
		Count(&stats.MemberCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Recording{}).
		Where("organization_id = ?", orgID).
		Count(&stats.RecordingCount).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
