package auth

import (
	"gcombinator-news/internal/config"
	"net/http"
	"net/url"
	"strings"
)

// The session is entirely client-side: the access token itself is the cookie
// value and the server keeps no per-session state. Cookie expiry and logout
// are the only ways a session ends.

// NewSessionCookie builds the cookie set after a successful code exchange.
func NewSessionCookie(cfg config.SessionConfig, accessToken string) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(cfg.Lifetime.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie builds the cookie that removes the session. A negative
// MaxAge serializes as Max-Age=0, which deletes the cookie immediately.
func ClearSessionCookie(cfg config.SessionConfig) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ParseCookies parses a Cookie header into a name to decoded value map.
// Segments without an "=" or with an empty name or value are skipped.
func ParseCookies(header string) map[string]string {
	cookies := make(map[string]string)

	for _, segment := range strings.Split(header, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(segment), "=")
		if !ok || name == "" || value == "" {
			continue
		}

		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}

		cookies[name] = value
	}

	return cookies
}
