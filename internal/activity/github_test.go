package activity

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.baseURL = srv.URL
	return c, srv
}

func TestCheckRecentActivity_FindsPushes(t *testing.T) {
	recent := time.Now().Add(-1 * time.Hour).Format(time.RFC3339)
	stale := time.Now().Add(-48 * time.Hour).Format(time.RFC3339)

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/ayoub/events/public", r.URL.Path)
		fmt.Fprintf(w, `[
			{"type": "PushEvent", "created_at": %q, "repo": {"name": "ayoub/shadow-system"}, "payload": {"commits": [{"sha": "a"}, {"sha": "b"}]}},
			{"type": "PullRequestEvent", "created_at": %q, "repo": {"name": "ayoub/other"}},
			{"type": "PushEvent", "created_at": %q, "repo": {"name": "ayoub/old"}, "payload": {"commits": [{"sha": "c"}]}},
			{"type": "WatchEvent", "created_at": %q, "repo": {"name": "ayoub/starred"}}
		]`, recent, recent, stale, recent)
	})
	defer srv.Close()

	found, summary, err := c.CheckRecentActivity(context.Background(), "ayoub")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, summary, "Pushed 2 commits to ayoub/shadow-system")
	assert.Contains(t, summary, "PR activity in ayoub/other")
	assert.NotContains(t, summary, "ayoub/old")
	assert.NotContains(t, summary, "ayoub/starred")
}

func TestCheckRecentActivity_NoRecentEvents(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	defer srv.Close()

	found, summary, err := c.CheckRecentActivity(context.Background(), "ayoub")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "No coding events in the last 12 hours.", summary)
}

func TestCheckRecentActivity_APIError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	defer srv.Close()

	_, _, err := c.CheckRecentActivity(context.Background(), "ayoub")
	assert.ErrorContains(t, err, "status 403")
}
