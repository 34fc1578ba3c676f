package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crescendai-backend/internal/cache"
	"crescendai-backend/internal/database/models"
	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/logger"
	"crescendai-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations and their members
type OrganizationService struct {
	orgs      repository.OrganizationRepositoryInterface
	members   repository.MemberRepositoryInterface
	users     repository.UserRepositoryInterface
	cache     cache.Cache
	cacheTTL  time.Duration
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgs repository.OrganizationRepositoryInterface,
	members repository.MemberRepositoryInterface,
	users repository.UserRepositoryInterface,
	c cache.Cache,
	cacheTTL time.Duration,
	validator *validator.Validate,
) *OrganizationService {
	if c == nil {
		c = cache.Noop{}
	}
	return &OrganizationService{
		orgs:      orgs,
		members:   members,
		users:     users,
		cache:     c,
		cacheTTL:  cacheTTL,
		validator: validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Slug        string `json:"slug" validate:"required,min=1,max=50,slug"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// InviteMemberRequest represents the request to add a user to an organization
type InviteMemberRequest struct {
	Email string                  `json:"email" validate:"required,email"`
	Role  models.OrganizationRole `json:"role,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsPersonal  bool      `json:"is_personal"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrganizationDetailResponse is an organization as seen by one of its members
type OrganizationDetailResponse struct {
	OrganizationResponse
	Role           models.OrganizationRole `json:"role"`
	MemberCount    int64                   `json:"member_count"`
	RecordingCount int64                   `json:"recording_count"`
}

// MemberResponse represents a membership created by an invite
type MemberResponse struct {
	ID             uuid.UUID               `json:"id"`
	OrganizationID uuid.UUID               `json:"organization_id"`
	UserID         uuid.UUID               `json:"user_id"`
	Email          string                  `json:"email"`
	Role           models.OrganizationRole `json:"role"`
	JoinedAt       time.Time               `json:"joined_at"`
}

// CreateOrganization creates an organization owned by the actor, who becomes its only admin
func (s *OrganizationService) CreateOrganization(ctx context.Context, actorID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.orgs.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSlugTaken
	}

	org := &models.Organization{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsPersonal:  false,
		OwnerID:     actorID,
	}
	if err := s.orgs.CreateWithAdmin(org, actorID); err != nil {
		// a concurrent create took the slug after the lookup above
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	invalidateUserCaches(ctx, s.cache, actorID)
	logger.WithContext(ctx).WithField("organization_id", org.ID).Info("Organization created")

	return toOrganizationResponse(org), nil
}

// ListUserOrganizations lists the organizations the actor belongs to, personal first
func (s *OrganizationService) ListUserOrganizations(ctx context.Context, actorID uuid.UUID) ([]repository.OrganizationWithRole, error) {
	key := cache.UserOrganizationsKey(actorID.String())
	return cachedJSON(ctx, s.cache, "organizations", key, s.cacheTTL, func() ([]repository.OrganizationWithRole, error) {
		orgs, err := s.orgs.ListForUser(actorID)
		if err != nil {
			return nil, fmt.Errorf("failed to list organizations: %w", err)
		}
		if orgs == nil {
			orgs = []repository.OrganizationWithRole{}
		}
		return orgs, nil
	})
}

// GetOrganizationBySlug returns an organization with counts. Non-members see not found.
func (s *OrganizationService) GetOrganizationBySlug(ctx context.Context, actorID uuid.UUID, slug string) (*OrganizationDetailResponse, error) {
	org, err := s.orgs.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	member, err := s.CheckAccess(actorID, org.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotOrganizationMember) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, err
	}

	stats, err := s.orgs.GetStats(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization stats: %w", err)
	}

	return &OrganizationDetailResponse{
		OrganizationResponse: *toOrganizationResponse(org),
		Role:                 member.Role,
		MemberCount:          stats.MemberCount,
		RecordingCount:       stats.RecordingCount,
	}, nil
}

// ListMembers lists an organization's members. The actor must be a member.
func (s *OrganizationService) ListMembers(ctx context.Context, actorID, orgID uuid.UUID) ([]repository.MemberWithUser, error) {
	if _, err := s.CheckAccess(actorID, orgID); err != nil {
		return nil, err
	}

	members, err := s.members.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	if members == nil {
		members = []repository.MemberWithUser{}
	}
	return members, nil
}

// InviteMember adds an existing user to an organization. Only admins may invite.
func (s *OrganizationService) InviteMember(ctx context.Context, actorID, orgID uuid.UUID, req *InviteMemberRequest) (*MemberResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Role == "" {
		req.Role = models.OrganizationRoleMember
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if err := s.requireAdmin(actorID, orgID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	existing, err := s.members.Get(orgID, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyMember
	}

	member := &models.OrganizationMember{
		OrganizationID: orgID,
		UserID:         user.ID,
		Role:           req.Role,
		JoinedAt:       time.Now(),
	}
	if err := s.members.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.invalidateMembers(ctx, orgID, user.ID)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": orgID,
		"member_id":       user.ID,
		"role":            member.Role,
	}).Info("Organization member added")

	return &MemberResponse{
		ID:             member.ID,
		OrganizationID: orgID,
		UserID:         user.ID,
		Email:          user.Email,
		Role:           member.Role,
		JoinedAt:       member.JoinedAt,
	}, nil
}

// RemoveMember removes a user from an organization. Only admins may remove members and
// the last admin cannot be removed.
func (s *OrganizationService) RemoveMember(ctx context.Context, actorID, orgID, userID uuid.UUID) error {
	if err := s.requireAdmin(actorID, orgID); err != nil {
		return err
	}

	target, err := s.members.Get(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if target.IsAdmin() {
		admins, err := s.members.CountAdmins(orgID)
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}
		if admins <= 1 {
			return apperrors.ErrLastAdmin
		}
	}

	if err := s.members.Delete(orgID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.invalidateMembers(ctx, orgID, userID)
	return nil
}

// invalidateMembers drops cached data for every current member of the organization plus
// the given users, whose member counts changed
func (s *OrganizationService) invalidateMembers(ctx context.Context, orgID uuid.UUID, userIDs ...uuid.UUID) {
	memberIDs, err := s.members.ListUserIDs(orgID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("organization_id", orgID).Warn("Failed to list members for cache invalidation")
	}

	seen := make(map[uuid.UUID]struct{}, len(memberIDs)+len(userIDs))
	ids := make([]uuid.UUID, 0, len(memberIDs)+len(userIDs))
	for _, id := range append(userIDs, memberIDs...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	invalidateUserCaches(ctx, s.cache, ids...)
}

// DeleteOrganization deletes a non-personal organization with its members and recordings
func (s *OrganizationService) DeleteOrganization(ctx context.Context, actorID, orgID uuid.UUID) error {
	org, err := s.orgs.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if err := s.requireAdmin(actorID, orgID); err != nil {
		return err
	}
	if org.IsPersonal {
		return apperrors.ErrPersonalOrganizationDelete
	}

	memberIDs, err := s.members.ListUserIDs(orgID)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	if err := s.orgs.Delete(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	invalidateUserCaches(ctx, s.cache, memberIDs...)
	logger.WithContext(ctx).WithField("organization_id", orgID).Info("Organization deleted")
	return nil
}

// CheckAccess returns the user's membership in the organization
func (s *OrganizationService) CheckAccess(userID, orgID uuid.UUID) (*models.OrganizationMember, error) {
	member, err := s.members.Get(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotOrganizationMember
		}
		return nil, fmt.Errorf("failed to check organization access: %w", err)
	}
	return member, nil
}

func (s *OrganizationService) requireAdmin(userID, orgID uuid.UUID) error {
	member, err := s.CheckAccess(userID, orgID)
	if err != nil {
		return err
	}
	if !member.IsAdmin() {
		return apperrors.ErrNotOrganizationAdmin
	}
	return nil
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		Description: org.Description,
		IsPersonal:  org.IsPersonal,
		OwnerID:     org.OwnerID,
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
	}
}
