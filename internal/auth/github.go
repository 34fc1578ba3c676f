package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubClient wraps the GitHub API client with authentication support
type GitHubClient struct {
	config *ProviderConfig
}

// UserProfile represents a GitHub user profile
type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Verified  bool   `json:"verified"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// NewGitHubClient creates a new GitHub API client
func NewGitHubClient(config *ProviderConfig) *GitHubClient {
	return &GitHubClient{config: config}
}

// GetUserProfile fetches user profile information from GitHub API
func (c *GitHubClient) GetUserProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: accessToken},
	)
	client, err := c.apiClient(oauth2.NewClient(ctx, ts))
	if err != nil {
		return nil, err
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("invalid access token")
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	// Private addresses only show up here; a failure leaves the profile email as the fallback
	emails, _, err := client.Users.ListEmails(ctx, nil)
	if err != nil {
		emails = []*github.UserEmail{}
	}

	profile := &UserProfile{
		ID:        user.GetID(),
		Username:  user.GetLogin(),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}

	for _, email := range emails {
		if email.GetPrimary() {
			profile.Email = email.GetEmail()
			profile.Verified = email.GetVerified()
			break
		}
	}

	if profile.Email == "" {
		for _, email := range emails {
			if email.GetVerified() {
				profile.Email = email.GetEmail()
				profile.Verified = true
				break
			}
		}
	}

	if profile.Email == "" {
		profile.Email = user.GetEmail()
	}

	return profile, nil
}

// GetOAuth2Config returns the OAuth2 configuration for this GitHub client
func (c *GitHubClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	endpoint := oauth2.Endpoint{
		AuthURL:  "https://github.com/login/oauth/authorize",
		TokenURL: "https://github.com/login/oauth/access_token",
	}

	if base := c.GetEnterpriseBaseURL(); base != "" {
		endpoint = oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/login/oauth/authorize", base),
			TokenURL: fmt.Sprintf("%s/login/oauth/access_token", base),
		}
	}

	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     endpoint,
	}
}

// ValidateConfig validates the GitHub client configuration
func (c *GitHubClient) ValidateConfig() error {
	if c.config.ClientID == "" {
		return fmt.Errorf("client ID is required")
	}
	if c.config.ClientSecret == "" {
		return fmt.Errorf("client secret is required")
	}
	return nil
}

// GetEnterpriseBaseURL returns the enterprise base URL if configured
func (c *GitHubClient) GetEnterpriseBaseURL() string {
	if c.config == nil {
		return ""
	}
	return strings.TrimSuffix(c.config.EnterpriseBaseURL, "/")
}

func (c *GitHubClient) apiClient(httpClient *http.Client) (*github.Client, error) {
	base := c.GetEnterpriseBaseURL()
	if base == "" {
		return github.NewClient(httpClient), nil
	}

	client, err := github.NewEnterpriseClient(base, base, httpClient)
	if err != nil {
		return nil, fmt.Errorf("invalid enterprise base URL: %w", err)
	}
	return client, nil
}
