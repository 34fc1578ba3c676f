package models

import (
	"github.com/google/uuid"
)

// Account links a user to an identity at an OAuth provider
type Account struct {
	BaseModel
	UserID            uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Type              string    `json:"type" gorm:"size:50;not null"`
	Provider          string    `json:"provider" gorm:"size:50;not null;uniqueIndex:idx_accounts_provider_account"`
	ProviderAccountID string    `json:"provider_account_id" gorm:"size:255;not null;uniqueIndex:idx_accounts_provider_account"`
	AccessToken       string    `json:"-" gorm:"type:text"`
	RefreshToken      string    `json:"-" gorm:"type:text"`
	ExpiresAt         *int64    `json:"expires_at,omitempty"`
	TokenType         string    `json:"token_type,omitempty" gorm:"size:50"`
	Scope             string    `json:"scope,omitempty" gorm:"size:255"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}
