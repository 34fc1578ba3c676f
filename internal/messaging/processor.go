package messaging

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=processor.go -destination=../mocks/messaging_mocks.go -package=mocks

// RecordingStateUpdater moves recordings through their processing lifecycle
type RecordingStateUpdater interface {
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	CompleteProcessing(ctx context.Context, id uuid.UUID, payload string) error
	FailProcessing(ctx context.Context, id uuid.UUID, reason string) error
}

// Outcome tells the consumer how to settle a delivery
type Outcome int

const (
	// Ack removes the message from the queue
	Ack Outcome = iota
	// Requeue returns the message for another attempt
	Requeue
	// Drop rejects the message without requeueing
	Drop
)

func (o Outcome) String() string {
	switch o {
	case Ack:
		return "ack"
	case Requeue:
		return "requeue"
	case Drop:
		return "drop"
	}
	return "unknown"
}

// ProcessingSummary is the JSON document stored, base64 encoded, as a recording result
type ProcessingSummary struct {
	RecordingID uuid.UUID `json:"recording_id"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `json:"content_type"`
	SHA256      string    `json:"sha256"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Processor handles recording processing messages
type Processor struct {
	recordings RecordingStateUpdater
	blobs      storage.BlobStore
	now        func() time.Time
}

// NewProcessor creates a new processor
func NewProcessor(recordings RecordingStateUpdater, blobs storage.BlobStore) *Processor {
	return &Processor{
		recordings: recordings,
		blobs:      blobs,
		now:        time.Now,
	}
}

// Handle processes one message body and reports how it should be settled.
// Malformed messages are dropped, transient failures requeued, and a missing blob or
// unknown recording is recorded and acknowledged.
func (p *Processor) Handle(ctx context.Context, body []byte) Outcome {
	var msg RecordingProcessMessage
	if err := json.Unmarshal(body, &msg); err != nil || msg.RecordingID == uuid.Nil || msg.BlobKey == "" {
		logrus.WithError(err).Error("Dropping malformed recording process message")
		return Drop
	}

	log := logrus.WithFields(logrus.Fields{
		"recording_id": msg.RecordingID,
		"blob_key":     msg.BlobKey,
	})

	if err := p.recordings.MarkProcessing(ctx, msg.RecordingID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			log.Warn("Recording no longer exists, skipping")
			return Ack
		case errors.Is(err, apperrors.ErrInvalidStateTransition):
			log.Info("Recording already processed, skipping")
			return Ack
		}
		log.WithError(err).Error("Failed to mark recording processing")
		return Requeue
	}

	summary, err := p.summarize(ctx, msg)
	if err != nil {
		if errors.Is(err, apperrors.ErrBlobNotFound) {
			log.WithError(err).Warn("Recording audio is missing")
			if ferr := p.recordings.FailProcessing(ctx, msg.RecordingID, "audio blob not found"); ferr != nil {
				log.WithError(ferr).Error("Failed to record processing failure")
				return Requeue
			}
			return Ack
		}
		log.WithError(err).Error("Failed to read recording audio")
		return Requeue
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		log.WithError(err).Error("Failed to encode processing summary")
		return Drop
	}

	if err := p.recordings.CompleteProcessing(ctx, msg.RecordingID, base64.StdEncoding.EncodeToString(payload)); err != nil {
		log.WithError(err).Error("Failed to store processing result")
		return Requeue
	}

	log.WithField("size_bytes", summary.SizeBytes).Info("Recording processed")
	return Ack
}

func (p *Processor) summarize(ctx context.Context, msg RecordingProcessMessage) (*ProcessingSummary, error) {
	rc, err := p.blobs.Get(ctx, msg.BlobKey)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	h := sha256.New()
	n, err := io.Copy(h, rc)
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", msg.BlobKey, err)
	}

	contentType := msg.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &ProcessingSummary{
		RecordingID: msg.RecordingID,
		SizeBytes:   n,
		ContentType: contentType,
		SHA256:      hex.EncodeToString(h.Sum(nil)),
		ProcessedAt: p.now().UTC(),
	}, nil
}
