package handlers

import (
	"embed"
	"gcombinator-news/internal/middlewares"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

func renderPage(ctx *middlewares.AppContext, name string, data any) {
	ctx.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	ctx.Response.WriteHeader(http.StatusOK)

	if err := templates.ExecuteTemplate(ctx.Response, name, data); err != nil {
		ctx.Logger.Error("Failed to render page template", "template", name, "error", err)
	}
}
