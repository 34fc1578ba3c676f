package auth

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"

	apperrors "crescendai-backend/internal/errors"
	"crescendai-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	authTokenCookie    = "auth_token"
	refreshTokenCookie = "refresh_token"
	stateCookie        = "oauth_state"
	profileCookie      = "user_profile"
	stateCookieMaxAge  = 10 * 60
)

// frameTemplate posts the result to the window that opened the sign-in popup and closes itself
var frameTemplate = template.Must(template.New("frame").Parse(`<!doctype html><html><body><script>
(function(){
  var msg = {{.}};
  try { if (window.opener) window.opener.postMessage(msg, "*"); } finally { window.close(); }
})();
</script></body></html>`))

type frameError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type frameMessage struct {
	Type     string               `json:"type"`
	Response *AuthHandlerResponse `json:"response,omitempty"`
	Error    *frameError          `json:"error,omitempty"`
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Start handles GET /api/auth/{provider}/start
// @Summary Start OAuth authentication
// @Description Initiate OAuth authentication flow with the specified provider
// @Tags authentication
// @Produce json
// @Param provider path string true "OAuth provider (github)"
// @Success 302 {string} string "Redirect to OAuth provider authorization URL"
// @Failure 400 {object} map[string]interface{} "Unsupported provider"
// @Failure 500 {object} map[string]interface{} "Failed to generate authorization URL"
// @Router /api/auth/{provider}/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider := c.Param("provider")
	if !h.service.SupportsProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(provider, state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL", "details": err.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, stateCookieMaxAge, "/api/auth", "", h.service.CookieSecure(), true)
	c.Redirect(http.StatusFound, authURL)
}

// HandlerFrame handles GET /api/auth/{provider}/handler/frame
// Posts { type: 'authorization_response', response | error } to the opener window and closes.
// @Summary Handle OAuth callback
// @Description Handle OAuth callback from provider and return authentication result in HTML frame
// @Tags authentication
// @Produce text/html
// @Param provider path string true "OAuth provider (github)"
// @Param code query string true "OAuth authorization code from provider"
// @Param state query string true "OAuth state parameter"
// @Param error query string false "OAuth error parameter from provider"
// @Param error_description query string false "OAuth error description from provider"
// @Success 200 {string} string "HTML page that posts authentication result to opener window"
// @Failure 400 {object} map[string]interface{} "Invalid request parameters"
// @Router /api/auth/{provider}/handler/frame [get]
func (h *AuthHandler) HandlerFrame(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")

	if errorParam := c.Query("error"); errorParam != "" {
		h.renderFrame(c, frameMessage{
			Type:  "authorization_response",
			Error: &frameError{Name: "OAuthError", Message: errorParam + ": " + c.Query("error_description")},
		})
		return
	}

	if !h.service.SupportsProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State parameter is required"})
		return
	}

	expectedState, err := c.Cookie(stateCookie)
	c.SetCookie(stateCookie, "", -1, "/api/auth", "", h.service.CookieSecure(), true)
	if err != nil || expectedState != state {
		h.renderFrame(c, frameMessage{
			Type:  "authorization_response",
			Error: &frameError{Name: "Error", Message: "state mismatch"},
		})
		return
	}

	resp, err := h.service.HandleCallback(c.Request.Context(), provider, code)
	if err != nil {
		logger.FromGinContext(c).WithError(err).Warn("OAuth callback failed")
		h.renderFrame(c, frameMessage{
			Type:  "authorization_response",
			Error: &frameError{Name: "Error", Message: err.Error()},
		})
		return
	}

	h.setSessionCookies(c, resp)

	logger.FromGinContext(c).WithField("user_id", resp.Profile.ID).Info("User signed in")
	h.renderFrame(c, frameMessage{Type: "authorization_response", Response: resp})
}

// Refresh handles POST /api/auth/{provider}/refresh
// The refresh token is read from the JSON body, the refresh_token query parameter or the cookie.
// @Summary Refresh authentication token
// @Description Rotate the refresh token and issue a new access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider (github)"
// @Param request body RefreshTokenRequest false "Refresh token"
// @Param refresh_token query string false "Refresh token"
// @Success 200 {object} AuthRefreshResponse "Successfully refreshed token"
// @Failure 400 {object} map[string]interface{} "Unsupported provider"
// @Failure 401 {object} map[string]interface{} "Refresh token missing, invalid or expired"
// @Failure 500 {object} map[string]interface{} "Token refresh failed"
// @Router /api/auth/{provider}/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	if !h.service.SupportsProvider(c.Param("provider")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	refreshToken := h.refreshTokenFromRequest(c)
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication required",
			"details": "No valid session found. Please authenticate first.",
		})
		return
	}

	refreshed, err := h.service.RefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed", "details": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed", "details": err.Error()})
		}
		return
	}

	h.setSessionCookies(c, refreshed)

	c.JSON(http.StatusOK, AuthRefreshResponse{
		AccessToken:      refreshed.AccessToken,
		TokenType:        "bearer",
		ExpiresInSeconds: refreshed.ExpiresIn,
		Profile:          refreshed.Profile,
	})
}

// Logout handles POST /api/auth/{provider}/logout
// @Summary Logout user
// @Description Revoke the refresh token and clear session cookies
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider (github)"
// @Success 200 {object} AuthLogoutResponse "Successfully logged out"
// @Failure 400 {object} map[string]interface{} "Unsupported provider"
// @Failure 500 {object} map[string]interface{} "Logout failed"
// @Router /api/auth/{provider}/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if !h.service.SupportsProvider(c.Param("provider")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	if err := h.service.Logout(h.refreshTokenFromRequest(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed", "details": err.Error()})
		return
	}

	secure := h.service.CookieSecure()
	c.SetCookie(authTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(profileCookie, "", -1, "/", "", secure, false)

	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// ValidateToken returns the claims of a valid access token
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString, errMsg := bearerToken(c.GetHeader("Authorization"))
	if errMsg != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errMsg})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, resp *AuthHandlerResponse) {
	secure := h.service.CookieSecure()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authTokenCookie, resp.AccessToken, int(accessTokenTTL.Seconds()), "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, resp.RefreshToken, int(refreshTokenTTL.Seconds()), "/", "", secure, true)

	// Readable by the frontend, so it can render the signed-in user without a round trip
	profileJSON, err := json.Marshal(resp.Profile)
	if err == nil {
		c.SetCookie(profileCookie, string(profileJSON), int(accessTokenTTL.Seconds()), "/", "", secure, false)
	}
}

func (h *AuthHandler) refreshTokenFromRequest(c *gin.Context) string {
	var req RefreshTokenRequest
	if c.Request.ContentLength > 0 && c.ShouldBindJSON(&req) == nil && strings.TrimSpace(req.RefreshToken) != "" {
		return strings.TrimSpace(req.RefreshToken)
	}
	if token := strings.TrimSpace(c.Query("refresh_token")); token != "" {
		return token
	}
	if token, err := c.Cookie(refreshTokenCookie); err == nil {
		return strings.TrimSpace(token)
	}
	return ""
}

func (h *AuthHandler) renderFrame(c *gin.Context, msg frameMessage) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := frameTemplate.Execute(c.Writer, msg); err != nil {
		logger.FromGinContext(c).WithError(err).Error("Failed to render auth frame")
	}
}
