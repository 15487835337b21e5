package handlers

import (
	"gcombinator-news/internal/testutil"
	"net/http"
	"strings"
	"testing"
)

func TestGetLogoutHandler_ShouldClearCookieAndRedirect(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/logout")
	tc.WithHeader("Cookie", "access_token=token-abc")
	defer tc.Finish()

	tc.CallHandler(GETLogoutHandler)

	tc.AssertRedirect(t, http.StatusFound, "/")

	cookie := tc.SessionCookie()
	if !strings.HasPrefix(cookie, "access_token=;") {
		t.Fatalf("expected emptied session cookie, got %q", cookie)
	}
	if !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("expected cookie %q to contain Max-Age=0", cookie)
	}
}

func TestGetLogoutHandler_ShouldClearCookieWithoutPriorSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/logout")
	defer tc.Finish()

	tc.CallHandler(GETLogoutHandler)

	tc.AssertRedirect(t, http.StatusFound, "/")

	if !strings.Contains(tc.SessionCookie(), "Max-Age=0") {
		t.Errorf("expected clearing cookie even without prior session, got %q", tc.SessionCookie())
	}
}
