package auth

import (
	"gcombinator-news/internal/config"
	"reflect"
	"strings"
	"testing"
	"time"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		CookieName: "access_token",
		Lifetime:   24 * time.Hour,
	}
}

func TestParseCookies(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected map[string]string
	}{
		{
			name:     "single cookie",
			header:   "access_token=abc123",
			expected: map[string]string{"access_token": "abc123"},
		},
		{
			name:     "multiple cookies with encoded value",
			header:   "a=1; b=hello%20world",
			expected: map[string]string{"a": "1", "b": "hello world"},
		},
		{
			name:     "empty header",
			header:   "",
			expected: map[string]string{},
		},
		{
			name:     "malformed segment without equals is skipped",
			header:   "a=1; garbage; b=2",
			expected: map[string]string{"a": "1", "b": "2"},
		},
		{
			name:     "segment with empty value is skipped",
			header:   "a=; b=2",
			expected: map[string]string{"b": "2"},
		},
		{
			name:     "surrounding whitespace is trimmed",
			header:   "  a=1 ;  b=2",
			expected: map[string]string{"a": "1", "b": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCookies(tt.header)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewSessionCookie(t *testing.T) {
	cookie := NewSessionCookie(testSessionConfig(), "token-xyz")

	if cookie.Name != "access_token" || cookie.Value != "token-xyz" {
		t.Errorf("unexpected cookie identity: %s=%s", cookie.Name, cookie.Value)
	}

	serialized := cookie.String()
	for _, attr := range []string{"Path=/", "Max-Age=86400", "HttpOnly", "Secure", "SameSite=Lax"} {
		if !strings.Contains(serialized, attr) {
			t.Errorf("expected cookie %q to contain %q", serialized, attr)
		}
	}
}

func TestClearSessionCookie(t *testing.T) {
	cookie := ClearSessionCookie(testSessionConfig())

	if cookie.Value != "" {
		t.Errorf("expected empty cookie value, got %q", cookie.Value)
	}

	serialized := cookie.String()
	if !strings.Contains(serialized, "Max-Age=0") {
		t.Errorf("expected cookie %q to contain Max-Age=0", serialized)
	}
}
