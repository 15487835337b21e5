package handlers

import (
	"gcombinator-news/internal/middlewares"
	"net/http"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.SetJSONStatus(http.StatusOK, "OK")
}
