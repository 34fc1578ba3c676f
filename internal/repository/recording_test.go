//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"crescendai-backend/internal/database/models"
	"crescendai-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RecordingRepositoryTestSuite tests the RecordingRepository
type RecordingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RecordingRepository
	factories     *testutils.FactorySet
	user          *models.User
	org           *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *RecordingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRecordingRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RecordingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RecordingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.user = suite.factories.User.Create()
	suite.Require().NoError(NewUserRepository(suite.baseTestSuite.DB).Create(suite.user))
	suite.org = suite.factories.Organization.Create(suite.user.ID)
	suite.org.Name = "Conservatory"
	suite.Require().NoError(NewOrganizationRepository(suite.baseTestSuite.DB).CreateWithAdmin(suite.org, suite.user.ID))
}

// TearDownTest runs after each test
func (suite *RecordingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RecordingRepositoryTestSuite) createRecording(name string, state models.RecordingState, createdAt time.Time) *models.Recording {
	rec := suite.factories.Recording.WithName(suite.org.ID, suite.user.ID, name)
	rec.State = state
	rec.CreatedAt = createdAt
	suite.Require().NoError(suite.repo.Create(rec))
	return rec
}

// TestCreateDefaultsToQueued tests the default state
func (suite *RecordingRepositoryTestSuite) TestCreateDefaultsToQueued() {
	rec := &models.Recording{Name: "Etude", OrganizationID: suite.org.ID, CreatedBy: suite.user.ID}
	suite.NoError(suite.repo.Create(rec))

	got, err := suite.repo.GetByID(rec.ID)
	suite.NoError(err)
	suite.Equal(models.RecordingStateQueued, got.State)
	suite.Equal(suite.org.ID, got.Organization.ID)
	suite.Equal(suite.user.ID, got.CreatedByUser.ID)
	suite.Nil(got.Result)
}

// TestListingAndCounts tests organization listing, state filter, search, counts and recent
func (suite *RecordingRepositoryTestSuite) TestListingAndCounts() {
	now := time.Now()
	oldest := suite.createRecording("Bach Prelude", models.RecordingStateProcessed, now.Add(-3*time.Hour))
	suite.createRecording("Chopin Ballade", models.RecordingStateQueued, now.Add(-2*time.Hour))
	newest := suite.createRecording("Debussy Clair de lune", models.RecordingStateProcessing, now.Add(-time.Hour))
	orgIDs := []uuid.UUID{suite.org.ID}

	list, err := suite.repo.ListByOrganization(context.Background(), suite.org.ID)
	suite.NoError(err)
	suite.Require().Len(list, 3)
	suite.Equal(newest.ID, list[0].ID)
	suite.Equal(oldest.ID, list[2].ID)
	suite.NotNil(list[0].CreatedByUser)

	processed, err := suite.repo.ListByStateForOrganizations(models.RecordingStateProcessed, orgIDs)
	suite.NoError(err)
	suite.Require().Len(processed, 1)
	suite.Equal(oldest.ID, processed[0].ID)

	byName, err := suite.repo.SearchForOrganizations(orgIDs, "chopin", 20)
	suite.NoError(err)
	suite.Len(byName, 1)

	byOrg, err := suite.repo.SearchForOrganizations(orgIDs, "conserv", 20)
	suite.NoError(err)
	suite.Len(byOrg, 3)

	limited, err := suite.repo.SearchForOrganizations(orgIDs, "conserv", 2)
	suite.NoError(err)
	suite.Len(limited, 2)

	counts, err := suite.repo.CountByStateForOrganizations(orgIDs)
	suite.NoError(err)
	suite.Equal(int64(1), counts[models.RecordingStateQueued])
	suite.Equal(int64(1), counts[models.RecordingStateProcessing])
	suite.Equal(int64(1), counts[models.RecordingStateProcessed])

	recent, err := suite.repo.RecentForOrganizations(orgIDs, 2)
	suite.NoError(err)
	suite.Require().Len(recent, 2)
	suite.Equal(newest.ID, recent[0].ID)
	suite.Equal("Conservatory", recent[0].Organization.Name)

	empty, err := suite.repo.RecentForOrganizations(nil, 5)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestProcessingLifecycle tests state updates, failure reasons and results
func (suite *RecordingRepositoryTestSuite) TestProcessingLifecycle() {
	rec := suite.createRecording("Liszt", models.RecordingStateQueued, time.Now())

	suite.NoError(suite.repo.UpdateState(rec.ID, models.RecordingStateProcessing))
	suite.NoError(suite.repo.MarkFailed(rec.ID, "blob missing"))

	got, err := suite.repo.GetByID(rec.ID)
	suite.NoError(err)
	suite.Equal(models.RecordingStateProcessing, got.State)
	suite.Equal("blob missing", got.FailureReason)

	result, err := suite.repo.AttachResult(rec.ID, "eyJvayI6dHJ1ZX0=")
	suite.NoError(err)

	got, err = suite.repo.GetByID(rec.ID)
	suite.NoError(err)
	suite.Equal(models.RecordingStateProcessed, got.State)
	suite.Empty(got.FailureReason)
	suite.Require().NotNil(got.Result)
	suite.Equal(result.ID, got.Result.ID)
	suite.True(got.HasResult())

	suite.NoError(suite.repo.Delete(rec.ID))
	_, err = suite.repo.GetByID(rec.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var results int64
	suite.baseTestSuite.DB.Model(&models.RecordingResult{}).Count(&results)
	suite.Zero(results)
}

// TestMissingRecording tests updates against unknown ids
func (suite *RecordingRepositoryTestSuite) TestMissingRecording() {
	suite.ErrorIs(suite.repo.UpdateState(uuid.New(), models.RecordingStateProcessing), gorm.ErrRecordNotFound)
	_, err := suite.repo.AttachResult(uuid.New(), "x")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.repo.Delete(uuid.New()), gorm.ErrRecordNotFound)
}

// TestStateCheckConstraint tests that unknown states are rejected by the database
func (suite *RecordingRepositoryTestSuite) TestStateCheckConstraint() {
	rec := suite.factories.Recording.WithState(suite.org.ID, suite.user.ID, models.RecordingState("archived"))
	suite.Error(suite.repo.Create(rec))
}

// TestRecordingRepositoryTestSuite runs the test suite
func TestRecordingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecordingRepositoryTestSuite))
}
