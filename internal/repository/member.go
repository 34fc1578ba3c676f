package repository

import (
	"crescendai-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for organization memberships
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create adds a membership
func (r *MemberRepository) Create(member *models.OrganizationMember) error {
	return r.db.Create(member).Error
}

// Get retrieves the membership of a user in an organization
func (r *MemberRepository) Get(orgID, userID uuid.UUID) (*models.OrganizationMember, error) {
	var member models.OrganizationMember
	err := r.db.First(&member, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByOrganization lists members with their profile, ordered by role then first name
func (r *MemberRepository) ListByOrganization(orgID uuid.UUID) ([]MemberWithUser, error) {
	var rows []MemberWithUser
	err := r.db.Table("organization_members AS om").
		Select("u.id, u.email, u.username, u.first_name, u.last_name, u.image, om.role, om.joined_at").
		Joins("JOIN users u ON u.id = om.user_id").
		Where("om.organization_id = ?", orgID).
		Order("om.role ASC, u.first_name ASC").
		Scan(&rows).Error
	return rows, err
}

// ListUserIDs returns the ids of every member of an organization
func (r *MemberRepository) ListUserIDs(orgID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ?", orgID).
		Pluck("user_id", &ids).Error
	return ids, err
}

// CountAdmins counts admin memberships of an organization
func (r *MemberRepository) CountAdmins(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND role = ?", orgID, models.OrganizationRoleAdmin).
		Count(&count).Error
	return count, err
}

// Delete removes a membership
func (r *MemberRepository) Delete(orgID, userID uuid.UUID) error {
	res := r.db.Where("organization_id = ? AND user_id = ?", orgID, userID).
		Delete(&models.OrganizationMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
