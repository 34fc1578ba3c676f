package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"crescendai-backend/internal/database/models"
	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/logger"
	"crescendai-backend/internal/repository"

	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const fallbackUsername = "user"

var usernameStrip = regexp.MustCompile(`[^a-z0-9]`)

// UserProvisioner maps a provider identity onto a local user, creating the user
// together with a personal organization on first sign-in
type UserProvisioner struct {
	users         repository.UserRepositoryInterface
	accounts      repository.AccountRepositoryInterface
	organizations repository.OrganizationRepositoryInterface
	now           func() time.Time
}

// NewUserProvisioner creates a new user provisioner
func NewUserProvisioner(users repository.UserRepositoryInterface, accounts repository.AccountRepositoryInterface, organizations repository.OrganizationRepositoryInterface) *UserProvisioner {
	return &UserProvisioner{
		users:         users,
		accounts:      accounts,
		organizations: organizations,
		now:           time.Now,
	}
}

// Provision returns the user linked to the provider account. An unlinked account is
// attached to the user with the same email, or to a freshly created user.
func (p *UserProvisioner) Provision(provider string, profile *UserProfile, token *oauth2.Token) (*models.User, error) {
	providerAccountID := strconv.FormatInt(profile.ID, 10)

	user, err := p.accounts.GetUserByAccount(provider, providerAccountID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(profile.Email))
	if email == "" {
		return nil, apperrors.NewAuthenticationError("the provider account has no email address")
	}

	account := newAccount(provider, providerAccountID, token)

	user, err = p.users.GetByEmail(email)
	switch {
	case err == nil:
		account.UserID = user.ID
		if err := p.accounts.Create(account); err != nil {
			return nil, fmt.Errorf("failed to link account: %w", err)
		}
		logger.New().WithFields(map[string]interface{}{
			"user_id":  user.ID,
			"provider": provider,
		}).Info("Linked provider account to existing user")
		return user, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	username, err := p.uniqueUsername(email)
	if err != nil {
		return nil, err
	}

	firstName, lastName := splitName(profile.Name)
	user = &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Username:  &username,
		Image:     profile.AvatarURL,
		Github:    profile.Username,
	}
	if profile.Verified {
		verifiedAt := p.now()
		user.EmailVerified = &verifiedAt
	}

	org, err := p.users.CreateWithPersonalOrganization(user, account)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"user_id":         user.ID,
		"username":        username,
		"organization_id": org.ID,
	}).Info("Created user with personal organization")

	return user, nil
}

// uniqueUsername derives a username from the email's local part and appends 1, 2, 3...
// until neither a user nor an organization slug holds it
func (p *UserProvisioner) uniqueUsername(email string) (string, error) {
	base := DeriveUsername(email)
	candidate := base

	for counter := 1; ; counter++ {
		taken, err := p.users.UsernameExists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check username: %w", err)
		}

		if !taken {
			_, err = p.organizations.GetBySlug(candidate)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return candidate, nil
			case err != nil:
				return "", fmt.Errorf("failed to check organization slug: %w", err)
			}
		}

		candidate = base + strconv.Itoa(counter)
	}
}

// DeriveUsername lowercases the email's local part and drops everything outside [a-z0-9]
func DeriveUsername(email string) string {
	local := email
	if i := strings.Index(email, "@"); i >= 0 {
		local = email[:i]
	}

	username := usernameStrip.ReplaceAllString(strings.ToLower(local), "")
	if username == "" {
		return fallbackUsername
	}
	return username
}

// splitName treats the first word as the first name and the rest as the last name
func splitName(name string) (string, string) {
	parts := strings.Split(strings.TrimSpace(name), " ")
	if len(parts) == 0 || parts[0] == "" {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func newAccount(provider, providerAccountID string, token *oauth2.Token) *models.Account {
	account := &models.Account{
		Type:              "oauth",
		Provider:          provider,
		ProviderAccountID: providerAccountID,
	}
	if token == nil {
		return account
	}

	account.AccessToken = token.AccessToken
	account.RefreshToken = token.RefreshToken
	account.TokenType = token.TokenType
	if !token.Expiry.IsZero() {
		expiresAt := token.Expiry.Unix()
		account.ExpiresAt = &expiresAt
	}
	if scope, ok := token.Extra("scope").(string); ok {
		account.Scope = scope
	}
	return account
}
