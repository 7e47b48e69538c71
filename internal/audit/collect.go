package audit

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Calendar is the external scheduling collaborator.
type Calendar interface {
	FetchTodayEvents(ctx context.Context) ([]string, error)
}

// ActivityFeed is the external commit-activity collaborator.
type ActivityFeed interface {
	CheckRecentActivity(ctx context.Context, identity string) (bool, string, error)
}

// DayContext aggregates the external signals fed into an audit.
type DayContext struct {
	Events          []string
	ActivityFound   bool
	ActivitySummary string
}

// CollectDayContext fetches calendar events and recent coding activity in
// parallel. Collaborator failures degrade to empty signals rather than
// aborting the audit.
func CollectDayContext(ctx context.Context, cal Calendar, feed ActivityFeed, identity string) *DayContext {
	day := &DayContext{}
	g, gCtx := errgroup.WithContext(ctx)

	if cal != nil {
		g.Go(func() error {
			events, err := cal.FetchTodayEvents(gCtx)
			if err != nil {
				fmt.Printf("Warning: calendar fetch failed: %v\n", err)
				return nil
			}
			day.Events = events
			return nil
		})
	}

	if feed != nil && identity != "" {
		g.Go(func() error {
			found, summary, err := feed.CheckRecentActivity(gCtx, identity)
			if err != nil {
				fmt.Printf("Warning: activity feed check failed: %v\n", err)
				return nil
			}
			day.ActivityFound = found
			day.ActivitySummary = summary
			return nil
		})
	}

	_ = g.Wait()
	return day
}
