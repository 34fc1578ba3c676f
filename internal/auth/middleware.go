package auth

import (
	"net/http"
	"strings"

	"crescendai-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the middleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextEmail    = "email"
	ContextProvider = "provider"
	ContextClaims   = "auth_claims"
)

// TokenValidator parses and verifies access tokens
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth validates the access token from the Authorization header, or the
// auth_token cookie when no header is sent, and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, errMsg := requestToken(c)
		if errMsg != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": errMsg})
			c.Abort()
			return
		}

		claims, err := m.validator.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// OptionalAuth validates tokens if present but doesn't require them
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, errMsg := requestToken(c)
		if errMsg != "" {
			c.Next()
			return
		}

		if claims, err := m.validator.ValidateJWT(tokenString); err == nil {
			setUserContext(c, claims)
		}
		c.Next()
	}
}

func setUserContext(c *gin.Context, claims *AuthClaims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextProvider, claims.Provider)
	c.Set(ContextClaims, claims)

	user := claims.Email
	if user == "" {
		user = claims.UserID.String()
	}
	c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), user))
}

func requestToken(c *gin.Context) (string, string) {
	if header := c.GetHeader("Authorization"); header != "" {
		return bearerToken(header)
	}
	if token, err := c.Cookie(authTokenCookie); err == nil && token != "" {
		return token, ""
	}
	return "", "Authorization header is required"
}

func bearerToken(header string) (string, string) {
	if header == "" {
		return "", "Authorization header is required"
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		return "", "Invalid authorization header format"
	}
	return tokenString, ""
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ContextUsername)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
