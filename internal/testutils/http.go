package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

// HTTPTestSuite drives a gin router in test mode
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body, if any, as JSON
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeaders(method, url, body, nil)
}

// MakeRequestWithHeaders sends body, if any, as JSON with extra headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewReader(jsonBytes)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return suite.serve(req)
}

// MultipartFile is a file part for MakeMultipartRequest
type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// MakeMultipartRequest sends a multipart/form-data request with the given form fields and
// optional file
func (suite *HTTPTestSuite) MakeMultipartRequest(method, url string, fields map[string]string, file *MultipartFile) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}

	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.Field, file.Filename))
		header.Set("Content-Type", file.ContentType)
		part, _ := writer.CreatePart(header)
		_, _ = part.Write(file.Content)
	}
	_ = writer.Close()

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return suite.serve(req)
}

func (suite *HTTPTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse asserts the status and JSON content type, then decodes into target
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, jsonContentType, recorder.Header().Get("Content-Type"))

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse asserts the status and that the "error" field contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResponse))

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}
