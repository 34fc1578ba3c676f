package models

// OrganizationRole is the role of a user within an organization
type OrganizationRole string

const (
	OrganizationRoleAdmin  OrganizationRole = "admin"
	OrganizationRoleMember OrganizationRole = "member"
)

// IsValid checks if the OrganizationRole is valid
func (r OrganizationRole) IsValid() bool {
	switch r {
	case OrganizationRoleAdmin, OrganizationRoleMember:
		return true
	}
	return false
}

// RecordingState is the processing lifecycle of a recording
type RecordingState string

const (
	RecordingStateQueued     RecordingState = "queued"
	RecordingStateProcessing RecordingState = "processing"
	RecordingStateProcessed  RecordingState = "processed"
)

// IsValid checks if the RecordingState is valid
func (s RecordingState) IsValid() bool {
	switch s {
	case RecordingStateQueued, RecordingStateProcessing, RecordingStateProcessed:
		return true
	}
	return false
}

// CanTransitionTo reports whether a recording may move from s to next.
// processed is terminal; processing may be re-entered when a message is redelivered.
func (s RecordingState) CanTransitionTo(next RecordingState) bool {
	switch s {
	case RecordingStateQueued:
		return next == RecordingStateProcessing
	case RecordingStateProcessing:
		return next == RecordingStateProcessing || next == RecordingStateProcessed
	}
	return false
}

// Well-known mail folders
const (
	FolderInbox   = "Inbox"
	FolderFlagged = "Flagged"
	FolderSent    = "Sent"
	FolderArchive = "Archive"
	FolderTrash   = "Trash"
)

// SpecialFolderOrder lists folders that are always shown first, in this order
var SpecialFolderOrder = []string{FolderInbox, FolderFlagged, FolderSent}
