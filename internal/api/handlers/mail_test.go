package handlers

import (
	"net/http"
	"testing"
	"time"

	"crescendai-backend/internal/database/models"
	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/mocks"
	"crescendai-backend/internal/repository"
	"crescendai-backend/internal/service"
	"crescendai-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MailHandlerTestSuite defines the test suite for MailHandler
type MailHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMailService *mocks.MockMailServiceInterface
	handler         *MailHandler
	httpSuite       *testutils.HTTPTestSuite
	actorID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MailHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMailService = mocks.NewMockMailServiceInterface(suite.ctrl)
	suite.handler = NewMailHandler(suite.mockMailService)
	suite.actorID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	mail := suite.httpSuite.Router.Group("/api/v1/mail", authenticated(suite.actorID))
	{
		mail.GET("/folders", suite.handler.ListFolders)
		mail.GET("/folders/:name/threads", suite.handler.ListThreads)
		mail.GET("/folders/:name/threads/:id", suite.handler.GetThread)
		mail.DELETE("/folders/:name/emails/:id", suite.handler.DeleteEmail)
		mail.POST("/emails", suite.handler.SendEmail)
		mail.POST("/threads/:id/done", suite.handler.MoveThreadToDone)
		mail.POST("/threads/:id/trash", suite.handler.MoveThreadToTrash)
		mail.GET("/search", suite.handler.SearchThreads)
	}
}

// TearDownTest cleans up after each test
func (suite *MailHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MailHandlerTestSuite) TestListFolders() {
	folders := []repository.FolderWithCount{
		{ID: uuid.New(), Name: "Inbox", ThreadCount: 3},
		{ID: uuid.New(), Name: "Flagged", ThreadCount: 1},
		{ID: uuid.New(), Name: "Sent", ThreadCount: 2},
		{ID: uuid.New(), Name: "Archive"},
	}
	suite.mockMailService.EXPECT().Folders().Return(folders, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/mail/folders", nil)

	var response []repository.FolderWithCount
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 4)
	suite.Equal("Inbox", response[0].Name)
	suite.Equal(int64(3), response[0].ThreadCount)
}

func (suite *MailHandlerTestSuite) TestListThreads() {
	threads := []models.Thread{{BaseModel: models.BaseModel{ID: uuid.New()}, Subject: "Rehearsal notes"}}
	suite.mockMailService.EXPECT().ThreadsForFolder("sent", "notes").Return(threads, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/mail/folders/sent/threads?q=notes", nil)

	var response []models.Thread
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal("Rehearsal notes", response[0].Subject)
}

func (suite *MailHandlerTestSuite) TestListThreads_UnknownFolder() {
	suite.mockMailService.EXPECT().ThreadsForFolder("spam", "").Return(nil, apperrors.ErrFolderNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/mail/folders/spam/threads", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "folder not found")
}

func (suite *MailHandlerTestSuite) TestGetThread() {
	threadID := uuid.New()
	thread := &models.Thread{BaseModel: models.BaseModel{ID: threadID}, Subject: "Concert program"}
	suite.mockMailService.EXPECT().Thread("inbox", threadID).Return(thread, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/mail/folders/inbox/threads/"+threadID.String(), nil)

	var response models.Thread
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(threadID, response.ID)
}

func (suite *MailHandlerTestSuite) TestGetThread_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/mail/folders/inbox/threads/42", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid thread ID")
}

func (suite *MailHandlerTestSuite) TestSearchThreads() {
	results := []repository.ThreadSearchResult{{
		Thread:      models.Thread{BaseModel: models.BaseModel{ID: uuid.New()}, Subject: "Tour dates"},
		LatestEmail: &models.Email{Body: "See attached", SentDate: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
		FolderName:  "Inbox",
	}}
	suite.mockMailService.EXPECT().SearchThreads("tour").Return(results, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/mail/search?q=tour", nil)

	var response []repository.ThreadSearchResult
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Require().Len(response, 1)
	suite.Equal("Inbox", response[0].FolderName)
	suite.Equal("See attached", response[0].LatestEmail.Body)
}

func (suite *MailHandlerTestSuite) TestSendEmail() {
	threadID := uuid.New()
	suite.mockMailService.EXPECT().
		SendEmail(suite.actorID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.SendEmailRequest) (*service.SendEmailResponse, error) {
			suite.Equal("Program", req.Subject)
			suite.Equal("hans@example.com", req.RecipientEmail)
			return &service.SendEmailResponse{ThreadID: threadID}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/mail/emails", map[string]interface{}{
		"subject":         "Program",
		"body":            "Draft attached",
		"recipient_email": "hans@example.com",
	})

	var response service.SendEmailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(threadID, response.ThreadID)
}

func (suite *MailHandlerTestSuite) TestSendEmail_FieldErrors() {
	fieldErrs := &apperrors.FieldErrors{Message: "validation failed"}
	fieldErrs.Add("subject", "Subject is required")
	fieldErrs.Add("recipient_email", "Invalid email address")
	suite.mockMailService.EXPECT().SendEmail(suite.actorID, gomock.Any()).Return(nil, fieldErrs)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/mail/emails", map[string]interface{}{
		"body":            "Hello",
		"recipient_email": "not-an-email",
	})

	var response struct {
		Error  string              `json:"error"`
		Fields map[string][]string `json:"fields"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	suite.Equal("validation failed", response.Error)
	suite.Equal([]string{"Subject is required"}, response.Fields["subject"])
	suite.Equal([]string{"Invalid email address"}, response.Fields["recipient_email"])
}

func (suite *MailHandlerTestSuite) TestSendEmail_ReadOnly() {
	suite.mockMailService.EXPECT().SendEmail(suite.actorID, gomock.Any()).Return(nil, apperrors.ErrMailboxReadOnly)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/mail/emails", map[string]interface{}{
		"subject":         "Program",
		"body":            "Draft attached",
		"recipient_email": "hans@example.com",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Only works on localhost for now")
}

func (suite *MailHandlerTestSuite) TestDeleteEmail() {
	emailID := uuid.New()
	suite.mockMailService.EXPECT().DeleteEmail("inbox", emailID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/mail/folders/inbox/emails/"+emailID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *MailHandlerTestSuite) TestDeleteEmail_NotFound() {
	emailID := uuid.New()
	suite.mockMailService.EXPECT().DeleteEmail("inbox", emailID).Return(apperrors.ErrEmailNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/mail/folders/inbox/emails/"+emailID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "email not found")
}

func (suite *MailHandlerTestSuite) TestMoveThread() {
	threadID := uuid.New()

	suite.Run("done", func() {
		suite.mockMailService.EXPECT().MoveThreadToDone(threadID).Return(nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/mail/threads/"+threadID.String()+"/done", nil)
		suite.Equal(http.StatusNoContent, recorder.Code)
	})

	suite.Run("trash", func() {
		suite.mockMailService.EXPECT().MoveThreadToTrash(threadID).Return(nil)
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/mail/threads/"+threadID.String()+"/trash", nil)
		suite.Equal(http.StatusNoContent, recorder.Code)
	})

	suite.Run("missing thread", func() {
		suite.mockMailService.EXPECT().MoveThreadToTrash(threadID).Return(apperrors.ErrThreadNotFound)
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/mail/threads/"+threadID.String()+"/trash", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "thread not found")
	})
}

// TestMailHandlerTestSuite runs the test suite
func TestMailHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MailHandlerTestSuite))
}
