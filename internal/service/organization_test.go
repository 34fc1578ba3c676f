package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"crescendai-backend/internal/cache"
	"crescendai-backend/internal/database/models"
	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/mocks"
	"crescendai-backend/internal/repository"
	"crescendai-backend/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockOrgRepo         *mocks.MockOrganizationRepositoryInterface
	mockMemberRepo      *mocks.MockMemberRepositoryInterface
	mockUserRepo        *mocks.MockUserRepositoryInterface
	mockCache           *mocks.MockCache
	organizationService *service.OrganizationService
	ctx                 context.Context
	actorID             uuid.UUID
	orgID               uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockCache = mocks.NewMockCache(suite.ctrl)
	suite.organizationService = service.NewOrganizationService(
		suite.mockOrgRepo, suite.mockMemberRepo, suite.mockUserRepo, suite.mockCache, time.Minute, service.NewValidator())
	suite.ctx = context.Background()
	suite.actorID = uuid.New()
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) expectMembership(userID uuid.UUID, role models.OrganizationRole) {
	suite.mockMemberRepo.EXPECT().
		Get(suite.orgID, userID).
		Return(&models.OrganizationMember{OrganizationID: suite.orgID, UserID: userID, Role: role}, nil)
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	req := &service.CreateOrganizationRequest{Name: " Chamber Ensemble ", Slug: "chamber-ensemble", Description: "Weekly rehearsals"}

	suite.mockOrgRepo.EXPECT().GetBySlug("chamber-ensemble").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().
		CreateWithAdmin(gomock.Any(), suite.actorID).
		DoAndReturn(func(org *models.Organization, adminID uuid.UUID) error {
			assert.Equal(suite.T(), "Chamber Ensemble", org.Name)
			assert.False(suite.T(), org.IsPersonal)
			assert.Equal(suite.T(), suite.actorID, org.OwnerID)
			org.ID = suite.orgID
			return nil
		})
	suite.mockCache.EXPECT().
		Delete(gomock.Any(), cache.UserOrganizationsKey(suite.actorID.String()), cache.DashboardStatsKey(suite.actorID.String())).
		Return(nil)

	resp, err := suite.organizationService.CreateOrganization(suite.ctx, suite.actorID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.orgID, resp.ID)
	assert.Equal(suite.T(), "chamber-ensemble", resp.Slug)
}

// TestCreateOrganizationValidation tests the name and slug rules
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidation() {
	tests := []struct {
		name  string
		req   service.CreateOrganizationRequest
		field string
	}{
		{name: "missing name", req: service.CreateOrganizationRequest{Slug: "ok"}, field: "name"},
		{name: "missing slug", req: service.CreateOrganizationRequest{Name: "Ok"}, field: "slug"},
		{name: "uppercase slug", req: service.CreateOrganizationRequest{Name: "Ok", Slug: "Bad-Slug"}, field: "slug"},
		{name: "leading hyphen", req: service.CreateOrganizationRequest{Name: "Ok", Slug: "-bad"}, field: "slug"},
		{name: "slug too long", req: service.CreateOrganizationRequest{Name: "Ok", Slug: "a123456789012345678901234567890123456789012345678901"}, field: "slug"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := tt.req
			resp, err := suite.organizationService.CreateOrganization(suite.ctx, suite.actorID, &req)

			assert.Nil(suite.T(), resp)
			fields, ok := apperrors.AsFieldErrors(err)
			if assert.True(suite.T(), ok, "expected field errors, got %v", err) {
				assert.Contains(suite.T(), fields.Fields, tt.field)
			}
		})
	}
}

// TestCreateOrganizationSlugTaken tests the slug uniqueness check
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationSlugTaken() {
	suite.mockOrgRepo.EXPECT().GetBySlug("taken").Return(&models.Organization{Slug: "taken"}, nil)

	resp, err := suite.organizationService.CreateOrganization(suite.ctx, suite.actorID, &service.CreateOrganizationRequest{Name: "X", Slug: "taken"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSlugTaken)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestCreateOrganizationSlugTakenConcurrently tests losing the slug to a concurrent create
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationSlugTakenConcurrently() {
	suite.mockOrgRepo.EXPECT().GetBySlug("quartet").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().CreateWithAdmin(gomock.Any(), suite.actorID).Return(gorm.ErrDuplicatedKey)

	resp, err := suite.organizationService.CreateOrganization(suite.ctx, suite.actorID, &service.CreateOrganizationRequest{Name: "Quartet", Slug: "quartet"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSlugTaken)
}

// TestListUserOrganizationsCacheMiss tests loading and caching the organization list
func (suite *OrganizationServiceTestSuite) TestListUserOrganizationsCacheMiss() {
	key := cache.UserOrganizationsKey(suite.actorID.String())
	orgs := []repository.OrganizationWithRole{{ID: suite.orgID, Slug: "alice", IsPersonal: true, Role: models.OrganizationRoleAdmin}}

	suite.mockCache.EXPECT().GetJSON(gomock.Any(), key, gomock.Any()).Return(false, nil)
	suite.mockOrgRepo.EXPECT().ListForUser(suite.actorID).Return(orgs, nil)
	suite.mockCache.EXPECT().SetJSON(gomock.Any(), key, orgs, time.Minute).Return(nil)

	result, err := suite.organizationService.ListUserOrganizations(suite.ctx, suite.actorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), orgs, result)
}

// TestListUserOrganizationsCacheHit tests serving the list from the cache
func (suite *OrganizationServiceTestSuite) TestListUserOrganizationsCacheHit() {
	key := cache.UserOrganizationsKey(suite.actorID.String())
	suite.mockCache.EXPECT().GetJSON(gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
			*(dest.(*[]repository.OrganizationWithRole)) = []repository.OrganizationWithRole{{Slug: "cached"}}
			return true, nil
		})

	result, err := suite.organizationService.ListUserOrganizations(suite.ctx, suite.actorID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
	assert.Equal(suite.T(), "cached", result[0].Slug)
}

// TestListUserOrganizationsCacheDown tests that cache failures fall back to the database
func (suite *OrganizationServiceTestSuite) TestListUserOrganizationsCacheDown() {
	suite.mockCache.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
	suite.mockOrgRepo.EXPECT().ListForUser(suite.actorID).Return(nil, nil)
	suite.mockCache.EXPECT().SetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	result, err := suite.organizationService.ListUserOrganizations(suite.ctx, suite.actorID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result)
	assert.Empty(suite.T(), result)
}

// TestGetOrganizationBySlug tests fetching an organization with counts
func (suite *OrganizationServiceTestSuite) TestGetOrganizationBySlug() {
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, Name: "Ensemble", Slug: "ensemble"}
	suite.mockOrgRepo.EXPECT().GetBySlug("ensemble").Return(org, nil)
	suite.expectMembership(suite.actorID, models.OrganizationRoleMember)
	suite.mockOrgRepo.EXPECT().GetStats(suite.orgID).Return(&repository.OrganizationStats{MemberCount: 3, RecordingCount: 7}, nil)

	resp, err := suite.organizationService.GetOrganizationBySlug(suite.ctx, suite.actorID, "ensemble")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OrganizationRoleMember, resp.Role)
	assert.Equal(suite.T(), int64(3), resp.MemberCount)
	assert.Equal(suite.T(), int64(7), resp.RecordingCount)
}

// TestGetOrganizationBySlugNonMember tests that outsiders see not found
func (suite *OrganizationServiceTestSuite) TestGetOrganizationBySlugNonMember() {
	org := &models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, Slug: "private"}
	suite.mockOrgRepo.EXPECT().GetBySlug("private").Return(org, nil)
	suite.mockMemberRepo.EXPECT().Get(suite.orgID, suite.actorID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.organizationService.GetOrganizationBySlug(suite.ctx, suite.actorID, "private")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestListMembersRequiresMembership tests the membership check
func (suite *OrganizationServiceTestSuite) TestListMembersRequiresMembership() {
	suite.mockMemberRepo.EXPECT().Get(suite.orgID, suite.actorID).Return(nil, gorm.ErrRecordNotFound)

	members, err := suite.organizationService.ListMembers(suite.ctx, suite.actorID, suite.orgID)

	assert.Nil(suite.T(), members)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationMember)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestInviteMember tests adding an existing user with the default role
func (suite *OrganizationServiceTestSuite) TestInviteMember() {
	invitee := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "bob@example.com"}

	suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
	suite.mockUserRepo.EXPECT().GetByEmail("bob@example.com").Return(invitee, nil)
	suite.mockMemberRepo.EXPECT().Get(suite.orgID, invitee.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(m *models.OrganizationMember) error {
			assert.Equal(suite.T(), models.OrganizationRoleMember, m.Role)
			return nil
		})
	suite.mockMemberRepo.EXPECT().ListUserIDs(suite.orgID).Return([]uuid.UUID{suite.actorID, invitee.ID}, nil)
	suite.mockCache.EXPECT().
		Delete(gomock.Any(),
			cache.UserOrganizationsKey(invitee.ID.String()), cache.DashboardStatsKey(invitee.ID.String()),
			cache.UserOrganizationsKey(suite.actorID.String()), cache.DashboardStatsKey(suite.actorID.String())).
		Return(nil)

	resp, err := suite.organizationService.InviteMember(suite.ctx, suite.actorID, suite.orgID, &service.InviteMemberRequest{Email: "bob@example.com"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), invitee.ID, resp.UserID)
	assert.Equal(suite.T(), models.OrganizationRoleMember, resp.Role)
}

// TestInviteMemberErrors tests the invite failure paths
func (suite *OrganizationServiceTestSuite) TestInviteMemberErrors() {
	suite.Run("invalid role", func() {
		_, err := suite.organizationService.InviteMember(suite.ctx, suite.actorID, suite.orgID,
			&service.InviteMemberRequest{Email: "bob@example.com", Role: "owner"})
		assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
	})

	suite.Run("invalid email", func() {
		_, err := suite.organizationService.InviteMember(suite.ctx, suite.actorID, suite.orgID,
			&service.InviteMemberRequest{Email: "not-an-email"})
		assert.True(suite.T(), apperrors.IsValidation(err))
	})

	suite.Run("not admin", func() {
		suite.expectMembership(suite.actorID, models.OrganizationRoleMember)
		_, err := suite.organizationService.InviteMember(suite.ctx, suite.actorID, suite.orgID,
			&service.InviteMemberRequest{Email: "bob@example.com"})
		assert.ErrorIs(suite.T(), err, apperrors.ErrNotOrganizationAdmin)
	})

	suite.Run("unknown user", func() {
		suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
		suite.mockUserRepo.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
		_, err := suite.organizationService.InviteMember(suite.ctx, suite.actorID, suite.orgID,
			&service.InviteMemberRequest{Email: "ghost@example.com"})
		assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
	})

	suite.Run("added concurrently", func() {
		invitee := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "bob@example.com"}
		suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
		suite.mockUserRepo.EXPECT().GetByEmail("bob@example.com").Return(invitee, nil)
		suite.mockMemberRepo.EXPECT().Get(suite.orgID, invitee.ID).Return(nil, gorm.ErrRecordNotFound)
		suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)
		_, err := suite.organizationService.InviteMember(suite.ctx, suite.actorID, suite.orgID,
			&service.InviteMemberRequest{Email: "bob@example.com"})
		assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyMember)
	})

	suite.Run("already member", func() {
		invitee := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "bob@example.com"}
		suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
		suite.mockUserRepo.EXPECT().GetByEmail("bob@example.com").Return(invitee, nil)
		suite.mockMemberRepo.EXPECT().Get(suite.orgID, invitee.ID).Return(&models.OrganizationMember{}, nil)
		_, err := suite.organizationService.InviteMember(suite.ctx, suite.actorID, suite.orgID,
			&service.InviteMemberRequest{Email: "bob@example.com"})
		assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyMember)
	})
}

// TestRemoveMemberLastAdmin tests that the last admin cannot be removed
func (suite *OrganizationServiceTestSuite) TestRemoveMemberLastAdmin() {
	suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
	suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
	suite.mockMemberRepo.EXPECT().CountAdmins(suite.orgID).Return(int64(1), nil)

	err := suite.organizationService.RemoveMember(suite.ctx, suite.actorID, suite.orgID, suite.actorID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastAdmin)
}

// TestRemoveMember tests removing a regular member
func (suite *OrganizationServiceTestSuite) TestRemoveMember() {
	memberID := uuid.New()
	suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
	suite.expectMembership(memberID, models.OrganizationRoleMember)
	suite.mockMemberRepo.EXPECT().Delete(suite.orgID, memberID).Return(nil)
	suite.mockMemberRepo.EXPECT().ListUserIDs(suite.orgID).Return([]uuid.UUID{suite.actorID}, nil)
	suite.mockCache.EXPECT().
		Delete(gomock.Any(),
			cache.UserOrganizationsKey(memberID.String()), cache.DashboardStatsKey(memberID.String()),
			cache.UserOrganizationsKey(suite.actorID.String()), cache.DashboardStatsKey(suite.actorID.String())).
		Return(nil)

	err := suite.organizationService.RemoveMember(suite.ctx, suite.actorID, suite.orgID, memberID)

	assert.NoError(suite.T(), err)
}

// TestMembershipChangesRefreshMemberCounts tests that every member sees the new member count
// after an invite or removal, with the organization list cached in Redis
func (suite *OrganizationServiceTestSuite) TestMembershipChangesRefreshMemberCounts() {
	mr := miniredis.RunT(suite.T())
	redisCache, err := cache.NewRedisCache(suite.ctx, cache.Options{Addr: mr.Addr()})
	require.NoError(suite.T(), err)
	defer redisCache.Close()

	svc := service.NewOrganizationService(
		suite.mockOrgRepo, suite.mockMemberRepo, suite.mockUserRepo, redisCache, time.Minute, service.NewValidator())
	invitee := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "bob@example.com"}
	listing := func(count int64) []repository.OrganizationWithRole {
		return []repository.OrganizationWithRole{{ID: suite.orgID, Slug: "quartet", Role: models.OrganizationRoleAdmin, MemberCount: count}}
	}

	gomock.InOrder(
		suite.mockOrgRepo.EXPECT().ListForUser(suite.actorID).Return(listing(1), nil),
		suite.mockOrgRepo.EXPECT().ListForUser(suite.actorID).Return(listing(2), nil),
		suite.mockOrgRepo.EXPECT().ListForUser(suite.actorID).Return(listing(1), nil),
	)

	before, err := svc.ListUserOrganizations(suite.ctx, suite.actorID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), before[0].MemberCount)

	suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
	suite.mockUserRepo.EXPECT().GetByEmail("bob@example.com").Return(invitee, nil)
	suite.mockMemberRepo.EXPECT().Get(suite.orgID, invitee.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockMemberRepo.EXPECT().ListUserIDs(suite.orgID).Return([]uuid.UUID{suite.actorID, invitee.ID}, nil)

	_, err = svc.InviteMember(suite.ctx, suite.actorID, suite.orgID, &service.InviteMemberRequest{Email: "bob@example.com"})
	require.NoError(suite.T(), err)

	afterInvite, err := svc.ListUserOrganizations(suite.ctx, suite.actorID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), afterInvite[0].MemberCount)

	suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
	suite.expectMembership(invitee.ID, models.OrganizationRoleMember)
	suite.mockMemberRepo.EXPECT().Delete(suite.orgID, invitee.ID).Return(nil)
	suite.mockMemberRepo.EXPECT().ListUserIDs(suite.orgID).Return([]uuid.UUID{suite.actorID}, nil)

	require.NoError(suite.T(), svc.RemoveMember(suite.ctx, suite.actorID, suite.orgID, invitee.ID))

	afterRemove, err := svc.ListUserOrganizations(suite.ctx, suite.actorID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), afterRemove[0].MemberCount)
}

// TestDeleteOrganization tests deleting a shared organization
func (suite *OrganizationServiceTestSuite) TestDeleteOrganization() {
	other := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(&models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}}, nil)
	suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)
	suite.mockMemberRepo.EXPECT().ListUserIDs(suite.orgID).Return([]uuid.UUID{suite.actorID, other}, nil)
	suite.mockOrgRepo.EXPECT().Delete(suite.orgID).Return(nil)
	suite.mockCache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := suite.organizationService.DeleteOrganization(suite.ctx, suite.actorID, suite.orgID)

	assert.NoError(suite.T(), err)
}

// TestDeletePersonalOrganization tests that personal organizations are kept
func (suite *OrganizationServiceTestSuite) TestDeletePersonalOrganization() {
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(&models.Organization{BaseModel: models.BaseModel{ID: suite.orgID}, IsPersonal: true}, nil)
	suite.expectMembership(suite.actorID, models.OrganizationRoleAdmin)

	err := suite.organizationService.DeleteOrganization(suite.ctx, suite.actorID, suite.orgID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPersonalOrganizationDelete)
}

// TestDeleteOrganizationNotFound tests deleting a missing organization
func (suite *OrganizationServiceTestSuite) TestDeleteOrganizationNotFound() {
	suite.mockOrgRepo.EXPECT().GetByID(suite.orgID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.organizationService.DeleteOrganization(suite.ctx, suite.actorID, suite.orgID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
