package onboarding

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayoub/shadow-system/internal/prompts"
)

// fallbackJobClass is assigned when class generation fails.
const fallbackJobClass = "Shadow Candidate"

// ProfileStore is the slice of the store the awaken protocol writes.
type ProfileStore interface {
	SetJobClass(ctx context.Context, jobClass string) error
}

// Awaken generates a job class from the user's stated goals and writes it
// to the profile. Generation failures fall back to a fixed class; only
// persistence failures propagate.
func Awaken(ctx context.Context, caller StructuredCaller, s ProfileStore, goals string) (string, error) {
	prompt := prompts.Format(prompts.MustGet("awaken.json", "job-class"), map[string]string{
		"Goals": goals,
	})

	jobClass := fallbackJobClass
	raw, err := caller.GenerateStructured(ctx, "", prompt)
	if err != nil {
		fmt.Printf("Class generation failed (%v). Using fallback class.\n", err)
	} else {
		var payload struct {
			JobClass string `json:"job_class"`
		}
		if err := json.Unmarshal([]byte(raw), &payload); err == nil && payload.JobClass != "" {
			jobClass = payload.JobClass
		}
	}

	if err := s.SetJobClass(ctx, jobClass); err != nil {
		return "", fmt.Errorf("failed to persist job class: %w", err)
	}
	return jobClass, nil
}
