package audit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDayCalendar struct {
	events []string
	err    error
}

func (f *fakeDayCalendar) FetchTodayEvents(_ context.Context) ([]string, error) {
	return f.events, f.err
}

type fakeFeed struct {
	found   bool
	summary string
	err     error
}

func (f *fakeFeed) CheckRecentActivity(_ context.Context, _ string) (bool, string, error) {
	return f.found, f.summary, f.err
}

func TestCollectDayContext_AggregatesSignals(t *testing.T) {
	cal := &fakeDayCalendar{events: []string{"Gym 18:00"}}
	feed := &fakeFeed{found: true, summary: "3 pushes to shadow-system"}

	day := CollectDayContext(context.Background(), cal, feed, "ayoub")

	assert.Equal(t, []string{"Gym 18:00"}, day.Events)
	assert.True(t, day.ActivityFound)
	assert.Equal(t, "3 pushes to shadow-system", day.ActivitySummary)
}

func TestCollectDayContext_DegradesOnFailures(t *testing.T) {
	cal := &fakeDayCalendar{err: fmt.Errorf("calendar down")}
	feed := &fakeFeed{err: fmt.Errorf("api down")}

	day := CollectDayContext(context.Background(), cal, feed, "ayoub")

	assert.Empty(t, day.Events)
	assert.False(t, day.ActivityFound)
}

func TestCollectDayContext_SkipsMissingCollaborators(t *testing.T) {
	day := CollectDayContext(context.Background(), nil, nil, "")
	assert.Empty(t, day.Events)
	assert.False(t, day.ActivityFound)

	// Feed requires an identity; without one it is never consulted.
	feed := &fakeFeed{found: true}
	day = CollectDayContext(context.Background(), nil, feed, "")
	assert.False(t, day.ActivityFound)
}
