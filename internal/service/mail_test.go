package service_test

import (
	"testing"
	"time"

	"crescendai-backend/internal/database/models"
	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/mocks"
	"crescendai-backend/internal/repository"
	"crescendai-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MailServiceTestSuite defines the test suite for MailService
type MailServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockMailRepo *mocks.MockMailRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	mailService  *service.MailService
	actorID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MailServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMailRepo = mocks.NewMockMailRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mailService = service.NewMailService(suite.mockMailRepo, suite.mockUserRepo, service.NewValidator(), false)
	suite.actorID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *MailServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func folder(name string) *models.Folder {
	return &models.Folder{BaseModel: models.BaseModel{ID: uuid.New()}, Name: name}
}

// TestFoldersOrdering tests special folders first, then alphabetical
func (suite *MailServiceTestSuite) TestFoldersOrdering() {
	suite.mockMailRepo.EXPECT().FoldersWithThreadCount().Return([]repository.FolderWithCount{
		{Name: "Trash"}, {Name: "Sent", ThreadCount: 2}, {Name: "Archive"}, {Name: "Inbox", ThreadCount: 4}, {Name: "Flagged"},
	}, nil)

	folders, err := suite.mailService.Folders()

	require.NoError(suite.T(), err)
	names := make([]string, len(folders))
	for i, f := range folders {
		names[i] = f.Name
	}
	assert.Equal(suite.T(), []string{"Inbox", "Flagged", "Sent", "Archive", "Trash"}, names)
}

// TestThreadsForFolderNormalizesName tests decoding and title-casing the folder name
func (suite *MailServiceTestSuite) TestThreadsForFolderNormalizesName() {
	sent := folder("Sent")
	suite.mockMailRepo.EXPECT().GetFolderByName("Sent").Return(sent, nil)
	suite.mockMailRepo.EXPECT().ThreadsForFolder(sent.ID, "rehearsal").Return(nil, nil)

	threads, err := suite.mailService.ThreadsForFolder("sent", " rehearsal ")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), threads)

	suite.mockMailRepo.EXPECT().GetFolderByName("Old Mail").Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.mailService.ThreadsForFolder("old%20mail", "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrFolderNotFound)
}

// TestThread tests fetching a thread in a folder
func (suite *MailServiceTestSuite) TestThread() {
	inbox := folder("Inbox")
	threadID := uuid.New()
	suite.mockMailRepo.EXPECT().GetFolderByName("Inbox").Return(inbox, nil).Times(2)
	suite.mockMailRepo.EXPECT().GetThreadInFolder(inbox.ID, threadID).Return(&models.Thread{Subject: "Hi"}, nil)

	thread, err := suite.mailService.Thread("inbox", threadID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Hi", thread.Subject)

	missing := uuid.New()
	suite.mockMailRepo.EXPECT().GetThreadInFolder(inbox.ID, missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.mailService.Thread("inbox", missing)
	assert.ErrorIs(suite.T(), err, apperrors.ErrThreadNotFound)
}

// TestSearchThreadsEmptyQuery tests that a blank query skips the database
func (suite *MailServiceTestSuite) TestSearchThreadsEmptyQuery() {
	results, err := suite.mailService.SearchThreads("  ")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

// TestSendEmail tests sending to a recipient and filing under Sent
func (suite *MailServiceTestSuite) TestSendEmail() {
	sent := folder("Sent")
	threadID := uuid.New()
	suite.mockMailRepo.EXPECT().GetFolderByName("Sent").Return(sent, nil)
	suite.mockMailRepo.EXPECT().
		SendEmail(suite.actorID, "bob@example.com", "Rehearsal", "See you at 7", sent.ID).
		Return(&models.Thread{BaseModel: models.BaseModel{ID: threadID}}, nil)

	resp, err := suite.mailService.SendEmail(suite.actorID, &service.SendEmailRequest{
		Subject: " Rehearsal ", Body: "See you at 7", RecipientEmail: "bob@example.com",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), threadID, resp.ThreadID)
}

// TestSendEmailValidation tests the compose field errors
func (suite *MailServiceTestSuite) TestSendEmailValidation() {
	resp, err := suite.mailService.SendEmail(suite.actorID, &service.SendEmailRequest{RecipientEmail: "nope"})

	assert.Nil(suite.T(), resp)
	fields, ok := apperrors.AsFieldErrors(err)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), []string{"Subject is required"}, fields.Fields["subject"])
	assert.Equal(suite.T(), []string{"Body is required"}, fields.Fields["body"])
	assert.Equal(suite.T(), []string{"Invalid email address"}, fields.Fields["recipient_email"])
}

// TestReadOnlyMailbox tests that every mutation is refused
func (suite *MailServiceTestSuite) TestReadOnlyMailbox() {
	readOnly := service.NewMailService(suite.mockMailRepo, suite.mockUserRepo, service.NewValidator(), true)

	_, err := readOnly.SendEmail(suite.actorID, &service.SendEmailRequest{Subject: "s", Body: "b", RecipientEmail: "a@b.co"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrMailboxReadOnly)
	assert.ErrorIs(suite.T(), readOnly.MoveThreadToDone(uuid.New()), apperrors.ErrMailboxReadOnly)
	assert.ErrorIs(suite.T(), readOnly.MoveThreadToTrash(uuid.New()), apperrors.ErrMailboxReadOnly)
	assert.ErrorIs(suite.T(), readOnly.DeleteEmail("inbox", uuid.New()), apperrors.ErrMailboxReadOnly)
	assert.EqualError(suite.T(), apperrors.ErrMailboxReadOnly, "Only works on localhost for now")
}

// TestMoveThread tests moving to Archive and Trash
func (suite *MailServiceTestSuite) TestMoveThread() {
	archive, trash := folder("Archive"), folder("Trash")
	threadID := uuid.New()

	suite.mockMailRepo.EXPECT().GetFolderByName("Archive").Return(archive, nil)
	suite.mockMailRepo.EXPECT().MoveThread(threadID, archive.ID).Return(nil)
	assert.NoError(suite.T(), suite.mailService.MoveThreadToDone(threadID))

	suite.mockMailRepo.EXPECT().GetFolderByName("Trash").Return(trash, nil)
	suite.mockMailRepo.EXPECT().MoveThread(threadID, trash.ID).Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(suite.T(), suite.mailService.MoveThreadToTrash(threadID), apperrors.ErrThreadNotFound)
}

// TestMoveThreadMissingFolder tests a mailbox without the target folder
func (suite *MailServiceTestSuite) TestMoveThreadMissingFolder() {
	suite.mockMailRepo.EXPECT().GetFolderByName("Archive").Return(nil, gorm.ErrRecordNotFound)

	err := suite.mailService.MoveThreadToDone(uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrFolderNotFound)
}

// TestDeleteEmail tests deleting from a folder
func (suite *MailServiceTestSuite) TestDeleteEmail() {
	inbox := folder("Inbox")
	emailID := uuid.New()
	suite.mockMailRepo.EXPECT().GetFolderByName("Inbox").Return(inbox, nil)
	suite.mockMailRepo.EXPECT().DeleteEmail(inbox.ID, emailID).Return(gorm.ErrRecordNotFound)

	err := suite.mailService.DeleteEmail("inbox", emailID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailNotFound)
}

// TestEmailAddresses tests formatting addresses for the compose form
func (suite *MailServiceTestSuite) TestEmailAddresses() {
	suite.mockUserRepo.EXPECT().ListEmailAddresses().Return([]models.User{
		{FirstName: "Clara", LastName: "Schumann", Email: "clara@example.com"},
		{FirstName: "Robert", Email: "robert@example.com"},
		{Email: "anon@example.com"},
	}, nil)

	addresses, err := suite.mailService.EmailAddresses()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{
		"Clara Schumann <clara@example.com>",
		"robert@example.com",
		"anon@example.com",
	}, addresses)
}

// TestUserProfile tests the profile with its latest threads
func (suite *MailServiceTestSuite) TestUserProfile() {
	user := &models.User{BaseModel: models.BaseModel{ID: suite.actorID}, FirstName: "Clara", Email: "clara@example.com", Company: "Leipzig"}
	suite.mockUserRepo.EXPECT().GetByID(suite.actorID).Return(user, nil)
	suite.mockMailRepo.EXPECT().LatestThreadsForSender(suite.actorID, 3).Return([]models.Thread{
		{Subject: "Program notes", LastActivityDate: time.Now()},
	}, nil)

	profile, err := suite.mailService.UserProfile(suite.actorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Leipzig", profile.Company)
	require.Len(suite.T(), profile.LatestThreads, 1)
	assert.Equal(suite.T(), "Program notes", profile.LatestThreads[0].Subject)

	missing := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.mailService.UserProfile(missing)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestMailServiceTestSuite runs the test suite
func TestMailServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MailServiceTestSuite))
}
