package messaging

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProcessorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	recordings *mocks.MockRecordingStateUpdater
	blobs      *mocks.MockBlobStore
	processor  *Processor
	now        time.Time
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.recordings = mocks.NewMockRecordingStateUpdater(s.ctrl)
	s.blobs = mocks.NewMockBlobStore(s.ctrl)
	s.processor = NewProcessor(s.recordings, s.blobs)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.processor.now = func() time.Time { return s.now }
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProcessorTestSuite) message(id uuid.UUID) []byte {
	body, err := json.Marshal(RecordingProcessMessage{RecordingID: id, BlobKey: "recordings/o/audio.mp3", ContentType: "audio/mpeg"})
	s.Require().NoError(err)
	return body
}

func (s *ProcessorTestSuite) TestHandle_Success() {
	id := uuid.New()
	audio := []byte("fake audio bytes")
	sum := sha256.Sum256(audio)

	s.recordings.EXPECT().MarkProcessing(gomock.Any(), id).Return(nil)
	s.blobs.EXPECT().Get(gomock.Any(), "recordings/o/audio.mp3").Return(io.NopCloser(bytes.NewReader(audio)), nil)
	s.recordings.EXPECT().CompleteProcessing(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, payload string) error {
			raw, err := base64.StdEncoding.DecodeString(payload)
			s.Require().NoError(err)
			var summary ProcessingSummary
			s.Require().NoError(json.Unmarshal(raw, &summary))
			s.Equal(id, summary.RecordingID)
			s.Equal(int64(len(audio)), summary.SizeBytes)
			s.Equal("audio/mpeg", summary.ContentType)
			s.Equal(hex.EncodeToString(sum[:]), summary.SHA256)
			s.True(s.now.Equal(summary.ProcessedAt))
			return nil
		})

	s.Equal(Ack, s.processor.Handle(context.Background(), s.message(id)))
}

func (s *ProcessorTestSuite) TestHandle_Malformed() {
	s.Equal(Drop, s.processor.Handle(context.Background(), []byte("{not json")))
	s.Equal(Drop, s.processor.Handle(context.Background(), []byte(`{"blob_key":"k"}`)))
	s.Equal(Drop, s.processor.Handle(context.Background(), []byte(`{"recording_id":"`+uuid.NewString()+`"}`)))
}

func (s *ProcessorTestSuite) TestHandle_RecordingGone() {
	id := uuid.New()
	s.recordings.EXPECT().MarkProcessing(gomock.Any(), id).Return(apperrors.ErrRecordingNotFound)
	s.Equal(Ack, s.processor.Handle(context.Background(), s.message(id)))
}

func (s *ProcessorTestSuite) TestHandle_AlreadyProcessed() {
	id := uuid.New()
	s.recordings.EXPECT().MarkProcessing(gomock.Any(), id).Return(apperrors.ErrInvalidStateTransition)
	s.Equal(Ack, s.processor.Handle(context.Background(), s.message(id)))
}

func (s *ProcessorTestSuite) TestHandle_TransientDatabaseError() {
	id := uuid.New()
	s.recordings.EXPECT().MarkProcessing(gomock.Any(), id).Return(errors.New("connection reset"))
	s.Equal(Requeue, s.processor.Handle(context.Background(), s.message(id)))
}

func (s *ProcessorTestSuite) TestHandle_MissingBlob() {
	id := uuid.New()
	s.recordings.EXPECT().MarkProcessing(gomock.Any(), id).Return(nil)
	s.blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrBlobNotFound)
	s.recordings.EXPECT().FailProcessing(gomock.Any(), id, "audio blob not found").Return(nil)

	s.Equal(Ack, s.processor.Handle(context.Background(), s.message(id)))
}

func (s *ProcessorTestSuite) TestHandle_StorageUnavailable() {
	id := uuid.New()
	s.recordings.EXPECT().MarkProcessing(gomock.Any(), id).Return(nil)
	s.blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: refused"))

	s.Equal(Requeue, s.processor.Handle(context.Background(), s.message(id)))
}

func (s *ProcessorTestSuite) TestHandle_ResultWriteFails() {
	id := uuid.New()
	s.recordings.EXPECT().MarkProcessing(gomock.Any(), id).Return(nil)
	s.blobs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(io.NopCloser(bytes.NewReader([]byte("x"))), nil)
	s.recordings.EXPECT().CompleteProcessing(gomock.Any(), id, gomock.Any()).Return(errors.New("deadlock"))

	s.Equal(Requeue, s.processor.Handle(context.Background(), s.message(id)))
}

func TestProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "ack", Ack.String())
	assert.Equal(t, "requeue", Requeue.String())
	assert.Equal(t, "drop", Drop.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}

func TestRecordingProcessMessage_JSON(t *testing.T) {
	id := uuid.New()
	body, err := json.Marshal(RecordingProcessMessage{RecordingID: id, BlobKey: "k"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"recording_id":"`+id.String()+`","blob_key":"k"}`, string(body))
}
