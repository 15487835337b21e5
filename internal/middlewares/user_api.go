package middlewares

import (
	"context"
	"gcombinator-news/internal/models"
)

//go:generate mockgen -source=user_api.go -destination=../mocks/user_api.go -package=mocks

// UserAPI fetches the profile behind a bearer token from the provider.
type UserAPI interface {
	FetchUser(ctx context.Context, accessToken string) (*models.User, error)
}
