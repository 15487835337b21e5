package handlers

import (
	"gcombinator-news/internal/auth"
	"gcombinator-news/internal/middlewares"
	"net/http"
)

// GETLogoutHandler clears the session cookie unconditionally. There is no
// server-side session to destroy and no token revocation at the provider.
func GETLogoutHandler(ctx *middlewares.AppContext) {
	http.SetCookie(ctx.Response, auth.ClearSessionCookie(ctx.Config.Sessions))

	ctx.Logger.Info("User logged out")

	ctx.Redirect("/", http.StatusFound)
}
