package models

import (
	"github.com/google/uuid"
)

// Organization is the tenant boundary for recordings. Every user owns one personal organization.
type Organization struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	IsPersonal  bool      `json:"is_personal" gorm:"not null;default:false"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Owner      *User                `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Members    []OrganizationMember `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Recordings []Recording          `json:"recordings,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
