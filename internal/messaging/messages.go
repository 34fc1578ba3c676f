package messaging

import (
	"github.com/google/uuid"
)

// RecordingProcessRoutingKey routes recording processing requests to the worker
const RecordingProcessRoutingKey = "recording.process"

// RecordingProcessMessage asks the worker to process an uploaded recording
type RecordingProcessMessage struct {
	RecordingID uuid.UUID `json:"recording_id"`
	BlobKey     string    `json:"blob_key"`
	ContentType string    `json:"content_type,omitempty"`
}
