package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService serves the signed-in user's session data
type UserService struct {
	users         repository.UserRepositoryInterface
	organizations OrganizationServiceInterface
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepositoryInterface, organizations OrganizationServiceInterface) *UserService {
	return &UserService{
		users:         users,
		organizations: organizations,
	}
}

// UserResponse represents a user
type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Username      string     `json:"username"`
	EmailVerified *time.Time `json:"email_verified,omitempty"`
	Image         string     `json:"image,omitempty"`
}

// MeResponse is the session payload: the user and the organizations they belong to
type MeResponse struct {
	User          UserResponse                      `json:"user"`
	Organizations []repository.OrganizationWithRole `json:"organizations"`
}

// Me returns the actor's profile and organizations
func (s *UserService) Me(ctx context.Context, actorID uuid.UUID) (*MeResponse, error) {
	user, err := s.users.GetByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	orgs, err := s.organizations.ListUserOrganizations(ctx, actorID)
	if err != nil {
		return nil, err
	}

	return &MeResponse{
		User: UserResponse{
			ID:            user.ID,
			FirstName:     user.FirstName,
			LastName:      user.LastName,
			Name:          user.FullName(),
			Email:         user.Email,
			Username:      user.UsernameOrEmpty(),
			EmailVerified: user.EmailVerified,
			Image:         user.Image,
		},
		Organizations: orgs,
	}, nil
}
