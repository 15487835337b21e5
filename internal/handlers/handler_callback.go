package handlers

import (
	"fmt"
	"gcombinator-news/internal/auth"
	"gcombinator-news/internal/middlewares"
	"net/http"
)

// GETCallbackHandler exchanges the authorization code for an access token and
// establishes the cookie session. The state query parameter is echoed by the
// provider but was never stored on our side, so it is logged and otherwise
// ignored; CSRF-state verification is out of scope for this demo.
func GETCallbackHandler(ctx *middlewares.AppContext) {
	query := ctx.Request.URL.Query()

	code := query.Get("code")
	if code == "" {
		ctx.Logger.Warn("OAuth callback missing authorization code")
		ctx.WriteText(http.StatusBadRequest, "Authorization code not found")
		return
	}

	ctx.Logger.Debug("OAuth callback received", "state", query.Get("state"))

	accessToken, err := ctx.OAuth.Exchange(ctx.Request.Context(), code)
	if err != nil {
		ctx.Logger.Error("Failed to exchange authorization code", "error", err)
		ctx.WriteText(http.StatusInternalServerError, fmt.Sprintf("OAuth error: %s", err))
		return
	}

	ctx.Logger.Info("User successfully authenticated")

	http.SetCookie(ctx.Response, auth.NewSessionCookie(ctx.Config.Sessions, accessToken))
	ctx.Redirect("/", http.StatusFound)
}
