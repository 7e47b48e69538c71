// Package calendar integrates with Google Calendar. When no credentials
// are configured the client degrades to mocked, deterministic output so
// the rest of the system keeps working offline.
package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// calendarID is the calendar all reads and writes target.
const calendarID = "primary"

// Client wraps the Google Calendar service.
type Client struct {
	svc *gcal.Service
}

// New creates a calendar client. An empty credentials path yields a
// mocked client rather than an error.
func New(ctx context.Context, credentialsPath string) (*Client, error) {
	if credentialsPath == "" {
		fmt.Println("Warning: no calendar credentials configured; calendar sync will be mocked.")
		return &Client{}, nil
	}

	svc, err := gcal.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// FetchTodayEvents returns summaries of today's events in start order.
func (c *Client) FetchTodayEvents(ctx context.Context) ([]string, error) {
	if c.svc == nil {
		return []string{
			"Mock Event: Sambo Training at 18:00",
			"Mock Event: Deep Work at 20:00",
		}, nil
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	events, err := c.svc.Events.List(calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	summaries := make([]string, 0, len(events.Items))
	for _, ev := range events.Items {
		start := ev.Start.DateTime
		if start == "" {
			start = ev.Start.Date
		}
		summaries = append(summaries, fmt.Sprintf("%s at %s", ev.Summary, start))
	}
	return summaries, nil
}

// BlockTime reserves a slot in the calendar. Fire and forget: callers do
// not rely on the created event.
func (c *Client) BlockTime(ctx context.Context, start, end time.Time, label string) error {
	if c.svc == nil {
		fmt.Printf("[MOCK] Blocking time: %s from %s to %s\n", label, start.Format(time.Kitchen), end.Format(time.Kitchen))
		return nil
	}

	_, err := c.svc.Events.Insert(calendarID, &gcal.Event{
		Summary:     label,
		Description: "Scheduled by Shadow System",
		Start:       &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}
