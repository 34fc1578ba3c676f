package models

import (
	"time"
)

// User is a person who can sign in, own organizations and send or receive mail.
// Recipients created by sending mail have only an email address.
type User struct {
	BaseModel
	FirstName     string     `json:"first_name" gorm:"size:50"`
	LastName      string     `json:"last_name" gorm:"size:50"`
	Email         string     `json:"email" gorm:"uniqueIndex:email_idx;not null;size:255" validate:"required,email,max=255"`
	Username      *string    `json:"username,omitempty" gorm:"uniqueIndex;size:50"`
	EmailVerified *time.Time `json:"email_verified,omitempty"`
	Image         string     `json:"image,omitempty" gorm:"size:255"`
	JobTitle      string     `json:"job_title,omitempty" gorm:"size:100"`
	Company       string     `json:"company,omitempty" gorm:"size:100"`
	Location      string     `json:"location,omitempty" gorm:"size:100"`
	Twitter       string     `json:"twitter,omitempty" gorm:"size:100"`
	Linkedin      string     `json:"linkedin,omitempty" gorm:"size:100"`
	Github        string     `json:"github,omitempty" gorm:"size:100"`
	AvatarURL     string     `json:"avatar_url,omitempty" gorm:"size:255"`

	// Relationships
	Accounts    []Account            `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Memberships []OrganizationMember `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name, falling back to the email address
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Email
}

// UsernameOrEmpty dereferences Username
func (u *User) UsernameOrEmpty() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}
