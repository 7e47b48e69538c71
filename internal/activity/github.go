// Package activity polls the GitHub public-events feed as a proxy for
// verified coding activity.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// recentWindow is how far back events count as today's activity.
const recentWindow = 12 * time.Hour

// Client queries the GitHub events API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a GitHub activity client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://api.github.com",
	}
}

// event is the subset of a GitHub event we inspect.
type event struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Repo      struct {
		Name string `json:"name"`
	} `json:"repo"`
	Payload struct {
		Commits []struct {
			SHA string `json:"sha"`
		} `json:"commits"`
	} `json:"payload"`
}

// CheckRecentActivity reports whether the identity pushed code or opened
// pull requests within the recent window, with a short summary.
func (c *Client) CheckRecentActivity(ctx context.Context, identity string) (bool, string, error) {
	url := fmt.Sprintf("%s/users/%s/events/public", c.baseURL, identity)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, "", fmt.Errorf("failed to reach GitHub API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, "", fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var events []event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return false, "", fmt.Errorf("failed to decode events: %w", err)
	}

	cutoff := time.Now().Add(-recentWindow)
	var details []string
	for _, ev := range events {
		if ev.CreatedAt.Before(cutoff) {
			continue
		}
		switch ev.Type {
		case "PushEvent":
			details = append(details, fmt.Sprintf("Pushed %d commits to %s", len(ev.Payload.Commits), ev.Repo.Name))
		case "PullRequestEvent":
			details = append(details, fmt.Sprintf("PR activity in %s", ev.Repo.Name))
		}
	}

	if len(details) == 0 {
		return false, "No coding events in the last 12 hours.", nil
	}
	return true, strings.Join(details, "; "), nil
}
