package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crescendai-backend/internal/auth"
	"crescendai-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
		PublicBaseURL:  "http://localhost:3000",
		MaxUploadSize:  1 << 20,
		CacheTTL:       time.Minute,
	}
}

func testAuthService(t *testing.T) *auth.AuthService {
	t.Helper()
	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:   "routes-test-secret",
		RedirectURL: "http://localhost:7008",
		Providers: map[string]auth.ProviderConfig{
			auth.ProviderGitHub: {ClientID: "client", ClientSecret: "secret"},
		},
	}, nil)
	require.NoError(t, err)
	return authService
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSetupRoutes_RequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(Dependencies{Config: testConfig(), Auth: testAuthService(t)})

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Authorization header is required")
}

func TestSetupRoutes_AuthenticatedRequestReachesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authService := testAuthService(t)
	router := SetupRoutes(Dependencies{Config: testConfig(), Auth: authService})

	token, err := authService.GenerateJWT(uuid.New(), "clara", "clara@example.com", auth.ProviderGitHub)
	require.NoError(t, err)

	// a missing state is rejected before the service touches the database
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := serve(router, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "state query parameter is required")
}

func TestSetupRoutes_WithoutAuthRejectsV1(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(Dependencies{Config: testConfig()})

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/me"},
		{http.MethodGet, "/api/v1/dashboard/stats"},
		{http.MethodGet, "/api/v1/users/email-addresses"},
		{http.MethodGet, "/api/v1/users/" + uuid.NewString() + "/profile"},
		{http.MethodGet, "/api/v1/mail/folders"},
		{http.MethodGet, "/api/v1/mail/folders/inbox/threads"},
		{http.MethodGet, "/api/v1/mail/search?q=rehearsal"},
		{http.MethodPost, "/api/v1/mail/emails"},
		{http.MethodPost, "/api/v1/mail/threads/not-a-uuid/done"},
		{http.MethodPost, "/api/v1/mail/threads/not-a-uuid/trash"},
		{http.MethodDelete, "/api/v1/mail/folders/inbox/emails/not-a-uuid"},
	}
	for _, tt := range requests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			recorder := serve(router, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/api/auth/github/start", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestSetupRoutes_AuthStartRedirects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(Dependencies{Config: testConfig(), Auth: testAuthService(t)})

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/api/auth/github/start", nil))

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Location"), "https://github.com/login/oauth/authorize")
}

func TestSetupRoutes_PublicEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(Dependencies{Config: testConfig(), Auth: testAuthService(t)})

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "http_requests_total")
}

func TestSetupRoutes_NoRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(Dependencies{Config: testConfig()})

	req := httptest.NewRequest(http.MethodGet, "/api/v2/unknown", nil)
	req.Header.Set("X-Request-ID", "req-404")
	recorder := serve(router, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.Equal(t, "req-404", body["request_id"])
}

func TestSetupHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupHealthRoutes(nil)

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}
