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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	mockMailService *mocks.MockMailServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
	actorID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.mockMailService = mocks.NewMockMailServiceInterface(suite.ctrl)
	suite.handler = NewUserHandler(suite.mockUserService, suite.mockMailService)
	suite.actorID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1", authenticated(suite.actorID))
	{
		v1.GET("/me", suite.handler.GetCurrentUser)
		v1.GET("/users/email-addresses", suite.handler.ListEmailAddresses)
		v1.GET("/users/:id/profile", suite.handler.GetUserProfile)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser() {
	me := &service.MeResponse{
		User: service.UserResponse{ID: suite.actorID, Name: "Clara Schumann", Email: "clara@example.com", Username: "clara"},
		Organizations: []repository.OrganizationWithRole{
			{ID: uuid.New(), Slug: "clara", IsPersonal: true, Role: models.OrganizationRoleAdmin},
		},
	}
	suite.mockUserService.EXPECT().Me(gomock.Any(), suite.actorID).Return(me, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/me", nil)

	var response service.MeResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("clara", response.User.Username)
	suite.Require().Len(response.Organizations, 1)
	suite.Equal(models.OrganizationRoleAdmin, response.Organizations[0].Role)
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser_Deleted() {
	suite.mockUserService.EXPECT().Me(gomock.Any(), suite.actorID).Return(nil, apperrors.ErrUserNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/me", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

func (suite *UserHandlerTestSuite) TestGetUserProfile() {
	userID := uuid.New()
	profile := &service.UserProfileResponse{
		ID:        userID,
		FirstName: "Robert",
		LastName:  "Schumann",
		Email:     "robert@example.com",
		Github:    "rschumann",
		LatestThreads: []service.ProfileThread{
			{ID: uuid.New(), Subject: "Kinderszenen", LastActivityDate: time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC)},
		},
	}
	suite.mockMailService.EXPECT().UserProfile(userID).Return(profile, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/"+userID.String()+"/profile", nil)

	var response service.UserProfileResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("rschumann", response.Github)
	suite.Require().Len(response.LatestThreads, 1)
	suite.Equal("Kinderszenen", response.LatestThreads[0].Subject)
}

func (suite *UserHandlerTestSuite) TestGetUserProfile_Errors() {
	suite.Run("invalid id", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/robert/profile", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid user ID")
	})

	suite.Run("unknown user", func() {
		userID := uuid.New()
		suite.mockMailService.EXPECT().UserProfile(userID).Return(nil, apperrors.ErrUserNotFound)
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/"+userID.String()+"/profile", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
	})
}

func (suite *UserHandlerTestSuite) TestListEmailAddresses() {
	addresses := []string{"Clara Schumann <clara@example.com>", "robert@example.com"}
	suite.mockMailService.EXPECT().EmailAddresses().Return(addresses, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/email-addresses", nil)

	var response []string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(addresses, response)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
