package handlers

import (
	"fmt"
	"gcombinator-news/internal/auth"
	"gcombinator-news/internal/middlewares"
	"gcombinator-news/internal/models"
	"net/http"
	"time"
)

type loginPageData struct {
	AuthorizeURL string
}

type profilePageData struct {
	User    *models.User
	Created string
}

// GETHomeHandler serves every path outside /callback and /logout: the profile
// view when an access_token cookie is present, the login view otherwise.
func GETHomeHandler(ctx *middlewares.AppContext) {
	cookies := auth.ParseCookies(ctx.Request.Header.Get("Cookie"))

	if accessToken := cookies[ctx.Config.Sessions.CookieName]; accessToken != "" {
		renderProfilePage(ctx, accessToken)
		return
	}

	renderLoginPage(ctx)
}

// renderProfilePage fetches the profile behind the token and renders it. The
// token is not validated locally; a rejected or expired token surfaces as a
// failed provider call, not as a fallback to the login page.
func renderProfilePage(ctx *middlewares.AppContext, accessToken string) {
	user, err := ctx.UserAPI.FetchUser(ctx.Request.Context(), accessToken)
	if err != nil {
		ctx.Logger.Error("Failed to fetch user info", "error", err)
		ctx.WriteText(http.StatusInternalServerError, fmt.Sprintf("Error loading user info: %s", err))
		return
	}

	data := profilePageData{User: user}
	if user.Created > 0 {
		data.Created = time.Unix(user.Created, 0).Format("January 2, 2006")
	}

	ctx.Logger.Debug("Rendering profile page", "username", user.Username)

	renderPage(ctx, "profile.html", data)
}

func renderLoginPage(ctx *middlewares.AppContext) {
	state := ctx.OAuth.GenerateState()
	authorizeURL := ctx.OAuth.AuthCodeURL(state)

	ctx.Logger.Debug("Rendering login page", "state", state)

	renderPage(ctx, "login.html", loginPageData{AuthorizeURL: authorizeURL})
}
