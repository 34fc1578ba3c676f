package models

import (
	"time"

	"github.com/google/uuid"
)

// Recording is an uploaded audio performance and its processing state
type Recording struct {
	BaseModel
	Name           string         `json:"name" gorm:"not null;size:255" validate:"required,min=1,max=255"`
	State          RecordingState `json:"state" gorm:"type:varchar(20);not null;default:'queued';index;check:chk_recordings_state,state IN ('queued','processing','processed')"`
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index"`
	CreatedBy      uuid.UUID      `json:"created_by" gorm:"type:uuid;not null;index"`
	ResultID       *uuid.UUID     `json:"result_id,omitempty" gorm:"type:uuid"`
	BlobKey        string         `json:"blob_key,omitempty" gorm:"size:512"`
	BlobURL        string         `json:"blob_url,omitempty" gorm:"size:1024"`
	ContentType    string         `json:"content_type,omitempty" gorm:"size:100"`
	SizeBytes      int64          `json:"size_bytes"`
	FailureReason  string         `json:"failure_reason,omitempty" gorm:"type:text"`

	Organization  *Organization    `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	CreatedByUser *User            `json:"created_by_user,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE"`
	Result        *RecordingResult `json:"result,omitempty" gorm:"foreignKey:ResultID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Recording
func (Recording) TableName() string {
	return "recordings"
}

// HasResult reports whether processing produced a result
func (r *Recording) HasResult() bool {
	return r.ResultID != nil
}

// RecordingResult holds the base64 payload produced by processing a recording
type RecordingResult struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Result    string    `json:"result" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for RecordingResult
func (RecordingResult) TableName() string {
	return "recording_results"
}
