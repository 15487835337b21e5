package middlewares

import (
	"context"
)

//go:generate mockgen -source=oauth_provider.go -destination=../mocks/oauth.go -package=mocks

// OAuthProvider is the relying-party side of the authorization code flow.
type OAuthProvider interface {
	// GenerateState returns a fresh random state parameter. The value is
	// embedded in the authorize URL but never stored, so callbacks are not
	// checked against it.
	GenerateState() string

	// AuthCodeURL builds the provider authorize URL carrying client_id,
	// redirect_uri, response_type=code and the given state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for an access token at the
	// provider token endpoint.
	Exchange(ctx context.Context, code string) (string, error)
}
