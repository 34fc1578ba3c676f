package models

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationMember grants a user a role within an organization
type OrganizationMember struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_org_user"`
	UserID         uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_org_members_org_user;index"`
	Role           OrganizationRole `json:"role" gorm:"type:varchar(20);not null;default:'member';check:chk_org_members_role,role IN ('admin','member')"`
	JoinedAt       time.Time        `json:"joined_at" gorm:"not null;default:now()"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationMember
func (OrganizationMember) TableName() string {
	return "organization_members"
}

// IsAdmin reports whether the membership carries the admin role
func (m *OrganizationMember) IsAdmin() bool {
	return m.Role == OrganizationRoleAdmin
}
