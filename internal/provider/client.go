package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"gcombinator-news/internal/metrics"
	"gcombinator-news/internal/models"
	"net/http"
	"strings"
)

const userInfoPath = "/api/user"

// Client talks to the provider's user-info API with a bearer token. The
// token is never inspected locally; the provider's answer is the only
// validity check a session gets.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

func (c *Client) FetchUser(ctx context.Context, accessToken string) (*models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+userInfoPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user info request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProfileFetchesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.ProfileFetchesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to fetch user info: provider returned status %d", resp.StatusCode)
	}

	var payload struct {
		User *models.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProfileFetchesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to parse user info response: %w", err)
	}

	if payload.User == nil {
		metrics.ProfileFetchesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("user info response contains no user object")
	}

	metrics.ProfileFetchesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return payload.User, nil
}
