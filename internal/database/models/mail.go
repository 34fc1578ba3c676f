package models

import (
	"time"

	"github.com/google/uuid"
)

// Thread groups emails sharing a subject
type Thread struct {
	BaseModel
	Subject          string    `json:"subject" gorm:"size:255"`
	LastActivityDate time.Time `json:"last_activity_date" gorm:"not null;default:now()"`

	Emails        []Email        `json:"emails,omitempty" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
	ThreadFolders []ThreadFolder `json:"-" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Thread
func (Thread) TableName() string {
	return "threads"
}

// Email is a single message within a thread
type Email struct {
	BaseModel
	ThreadID    uuid.UUID `json:"thread_id" gorm:"type:uuid;not null;index:thread_id_idx"`
	SenderID    uuid.UUID `json:"sender_id" gorm:"type:uuid;not null;index:sender_id_idx"`
	RecipientID uuid.UUID `json:"recipient_id" gorm:"type:uuid;not null;index:recipient_id_idx"`
	Subject     string    `json:"subject" gorm:"size:255"`
	Body        string    `json:"body" gorm:"type:text"`
	SentDate    time.Time `json:"sent_date" gorm:"not null;default:now();index:sent_date_idx"`

	Thread    *Thread `json:"-" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
	Sender    *User   `json:"sender,omitempty" gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Recipient *User   `json:"recipient,omitempty" gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Email
func (Email) TableName() string {
	return "emails"
}

// Folder is a named mailbox such as Inbox or Sent
type Folder struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:50"`
}

// TableName returns the table name for Folder
func (Folder) TableName() string {
	return "folders"
}

// ThreadFolder places a thread in a folder
type ThreadFolder struct {
	BaseModel
	ThreadID uuid.UUID `json:"thread_id" gorm:"type:uuid;not null;index"`
	FolderID uuid.UUID `json:"folder_id" gorm:"type:uuid;not null;index"`

	Folder *Folder `json:"folder,omitempty" gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ThreadFolder
func (ThreadFolder) TableName() string {
	return "thread_folders"
}

// UserFolder associates a user with a folder
type UserFolder struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	FolderID uuid.UUID `json:"folder_id" gorm:"type:uuid;not null;index"`

	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Folder *Folder `json:"-" gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserFolder
func (UserFolder) TableName() string {
	return "user_folders"
}
