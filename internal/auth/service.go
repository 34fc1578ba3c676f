package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"crescendai-backend/internal/database/models"
	apperrors "crescendai-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	tokenIssuer     = "crescendai-backend"
)

// Provisioner resolves a provider identity to a local user
type Provisioner interface {
	Provision(provider string, profile *UserProfile, token *oauth2.Token) (*models.User, error)
}

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	githubClients map[string]*GitHubClient
	provisioner   Provisioner
	refreshTokens map[string]*RefreshTokenData
	tokenMutex    sync.RWMutex
	now           func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID `json:"user_id" example:"6f1c2a9e-4a53-4c1b-9a55-2f8a3c7f1d20"`
	Username             string    `json:"username" example:"johndoe"`
	Email                string    `json:"email" example:"john.doe@example.com"`
	Provider             string    `json:"provider" example:"github"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SessionProfile is the signed-in user as returned to the browser
type SessionProfile struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
}

// AuthHandlerResponse represents the response for auth handler endpoint
type AuthHandlerResponse struct {
	AccessToken  string         `json:"accessToken"`
	TokenType    string         `json:"tokenType"`
	ExpiresIn    int64          `json:"expiresIn"`
	RefreshToken string         `json:"refreshToken,omitempty"`
	Profile      SessionProfile `json:"profile"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthRefreshResponse represents the response from the refresh endpoint
type AuthRefreshResponse struct {
	AccessToken      string         `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType        string         `json:"tokenType" example:"bearer"`
	ExpiresInSeconds int64          `json:"expiresInSeconds" example:"3600"`
	Profile          SessionProfile `json:"profile"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, provisioner Provisioner) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	githubClients := make(map[string]*GitHubClient)
	for providerName, providerConfig := range config.Providers {
		providerConfig := providerConfig
		githubClients[providerName] = NewGitHubClient(&providerConfig)
	}

	return &AuthService{
		config:        config,
		githubClients: githubClients,
		provisioner:   provisioner,
		refreshTokens: make(map[string]*RefreshTokenData),
		now:           time.Now,
	}, nil
}

// CallbackURL is where the provider sends the browser back to
func (s *AuthService) CallbackURL(provider string) string {
	return fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)
}

// GetAuthURL generates OAuth2 authorization URL
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	githubClient, err := s.GetGitHubClient(provider)
	if err != nil {
		return "", err
	}

	oauth2Config := githubClient.GetOAuth2Config(s.CallbackURL(provider))
	return oauth2Config.AuthCodeURL(state), nil
}

// HandleCallback exchanges the authorization code, provisions the local user and
// issues an access/refresh token pair
func (s *AuthService) HandleCallback(ctx context.Context, provider, code string) (*AuthHandlerResponse, error) {
	githubClient, err := s.GetGitHubClient(provider)
	if err != nil {
		return nil, err
	}
	if s.provisioner == nil {
		return nil, apperrors.NewConfigurationError("user provisioning is not configured")
	}

	oauth2Config := githubClient.GetOAuth2Config(s.CallbackURL(provider))

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := githubClient.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	user, err := s.provisioner.Provision(provider, profile, token)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(&RefreshTokenData{
		UserID:   user.ID,
		Username: user.UsernameOrEmpty(),
		Email:    user.Email,
		Name:     user.FullName(),
		Image:    user.Image,
		Provider: provider,
	})
}

// RefreshToken rotates a refresh token: the old one is revoked and a new pair is issued
func (s *AuthService) RefreshToken(refreshToken string) (*AuthHandlerResponse, error) {
	s.tokenMutex.Lock()
	tokenData, exists := s.refreshTokens[refreshToken]
	if exists {
		delete(s.refreshTokens, refreshToken)
	}
	s.tokenMutex.Unlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if s.now().After(tokenData.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	data := *tokenData
	return s.issueTokens(&data)
}

func (s *AuthService) issueTokens(data *RefreshTokenData) (*AuthHandlerResponse, error) {
	jwtToken, err := s.GenerateJWT(data.UserID, data.Username, data.Email, data.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	data.CreatedAt = now
	data.ExpiresAt = now.Add(refreshTokenTTL)

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = data
	s.tokenMutex.Unlock()

	return &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile: SessionProfile{
			ID:       data.UserID,
			Username: data.Username,
			Email:    data.Email,
			Name:     data.Name,
			Image:    data.Image,
		},
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userID uuid.UUID, username, email, provider string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if claims.UserID == uuid.Nil {
			return nil, fmt.Errorf("token carries no user id")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return s.generateRandomString(32)
}

func (s *AuthService) generateRefreshToken() (string, error) {
	return s.generateRandomString(64)
}

func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// GetGitHubClient retrieves the GitHub client for a specific provider
func (s *AuthService) GetGitHubClient(provider string) (*GitHubClient, error) {
	if s == nil {
		return nil, fmt.Errorf("auth service is not initialized")
	}

	client, exists := s.githubClients[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}
	return client, nil
}

// SupportsProvider reports whether the provider is configured
func (s *AuthService) SupportsProvider(provider string) bool {
	_, exists := s.githubClients[provider]
	return exists
}

// CookieSecure reports whether session cookies carry the Secure flag
func (s *AuthService) CookieSecure() bool {
	return s.config.CookieSecure
}

// Logout revokes the refresh token, if one is given; access tokens simply expire
func (s *AuthService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
	return nil
}

// PruneExpired drops refresh tokens past their expiry and returns how many were removed
func (s *AuthService) PruneExpired() int {
	now := s.now()

	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()

	removed := 0
	for token, data := range s.refreshTokens {
		if now.After(data.ExpiresAt) {
			delete(s.refreshTokens, token)
			removed++
		}
	}
	return removed
}
