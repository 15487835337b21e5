package testutil

import (
	"encoding/json"
	"gcombinator-news/internal/config"
	"gcombinator-news/internal/middlewares"
	"gcombinator-news/internal/mocks"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for handler testing.
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockOAuth      *mocks.MockOAuthProvider
	MockUserAPI    *mocks.MockUserAPI
	LogHandler     *TestLogHandler
}

// NewTestContextWithURL creates a complete test setup with sensible defaults.
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	cfg := &config.Config{
		OAuth: config.OAuthConfig{
			ProviderURL: "https://hn.simplerauth.com",
			ClientID:    "news.gcombinator.com",
			RedirectURI: "https://news.gcombinator.com/callback",
		},
		Sessions: config.SessionConfig{
			CookieName: "access_token",
			Lifetime:   24 * time.Hour,
		},
	}

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockOAuth := mocks.NewMockOAuthProvider(ctrl)
	mockUserAPI := mocks.NewMockUserAPI(ctrl)

	req := httptest.NewRequest(method, url, nil)
	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:  req.Context(),
		Config:   cfg,
		Logger:   logger,
		OAuth:    mockOAuth,
		UserAPI:  mockUserAPI,
		Request:  req,
		Response: rr,
	}

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockOAuth:      mockOAuth,
		MockUserAPI:    mockUserAPI,
		LogHandler:     logHandler,
	}
}

// Finish should be called at the end of tests to clean up mocks.
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

// CallHandler executes a handler with the test context.
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code.
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header.
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertBodyContains checks that the response body contains a substring.
func (tc *TestContext) AssertBodyContains(t *testing.T, substring string) {
	t.Helper()
	if !strings.Contains(tc.Response.Body.String(), substring) {
		t.Errorf("Expected body to contain %q, body was:\n%s", substring, tc.Response.Body.String())
	}
}

// AssertRedirect checks status code and Location header.
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, expectedLocation string) {
	t.Helper()
	tc.AssertStatus(t, expectedStatus)
	if loc := tc.Response.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Expected redirect to %q, got %q", expectedLocation, loc)
	}
}

// SessionCookie returns the Set-Cookie value for the session cookie name, or
// an empty string when none was set.
func (tc *TestContext) SessionCookie() string {
	for _, sc := range tc.Response.Header().Values("Set-Cookie") {
		if strings.HasPrefix(sc, tc.AppContext.Config.Sessions.CookieName+"=") {
			return sc
		}
	}
	return ""
}

// GetJSONResponse parses the response body as JSON.
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response.
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

// AssertLogsContainMessage checks the captured log records.
func (tc *TestContext) AssertLogsContainMessage(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

// WithQueryParam adds a query parameter to the request.
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// WithHeader sets a request header.
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}
