package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"gcombinator-news/internal/config"
	"gcombinator-news/internal/metrics"
	"gcombinator-news/internal/middlewares"
	"strings"

	"golang.org/x/oauth2"
)

const (
	authorizePath = "/authorize"
	tokenPath     = "/token"
)

const stateAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const stateLength = 13

// NewRealOAuthProvider creates the relying-party OAuth client for the
// configured provider. The provider is plain OAuth 2.0 with fixed endpoint
// paths, so no discovery round trip happens here.
func NewRealOAuthProvider(cfg config.OAuthConfig) middlewares.OAuthProvider {
	base := strings.TrimRight(cfg.ProviderURL, "/")

	oauth2Config := &oauth2.Config{
		ClientID:    cfg.ClientID,
		RedirectURL: cfg.RedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  base + authorizePath,
			TokenURL: base + tokenPath,
			// The provider expects client_id in the form body, not basic auth.
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	return &RealOAuthProvider{
		oauth2Config: oauth2Config,
	}
}

type RealOAuthProvider struct {
	oauth2Config *oauth2.Config
}

// GenerateState returns a random alphanumeric state parameter. The value is
// included in the authorize URL for each login page render but is never
// stored, so the callback cannot (and does not) verify it.
func (r *RealOAuthProvider) GenerateState() string {
	b := make([]byte, stateLength)
	_, _ = rand.Read(b)

	out := make([]byte, stateLength)
	for i, c := range b {
		out[i] = stateAlphabet[int(c)%len(stateAlphabet)]
	}

	return string(out)
}

func (r *RealOAuthProvider) AuthCodeURL(state string) string {
	return r.oauth2Config.AuthCodeURL(state)
}

// Exchange trades an authorization code for an access token. The token
// endpoint receives a form-encoded POST with grant_type=authorization_code,
// code, client_id and redirect_uri, and must answer with a JSON body carrying
// access_token. Failures are terminal for the request; nothing is retried.
func (r *RealOAuthProvider) Exchange(ctx context.Context, code string) (string, error) {
	token, err := r.oauth2Config.Exchange(ctx, code)
	if err != nil {
		metrics.TokenExchangesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", fmt.Errorf("failed to exchange code for token: %w", err)
	}

	if token.AccessToken == "" {
		metrics.TokenExchangesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return "", fmt.Errorf("no access token received")
	}

	metrics.TokenExchangesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return token.AccessToken, nil
}
