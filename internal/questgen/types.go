package questgen

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/ayoub/shadow-system/internal/schemas"
)

// Payload is the structured quest the reasoning service is asked to
// produce.
type Payload struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description" validate:"required"`
	Difficulty        string `json:"difficulty" validate:"required,oneof=E D C B A S"`
	StatRewardType    string `json:"stat_reward_type" validate:"required"`
	StatRewardValue   int    `json:"stat_reward_value" validate:"gte=1"`
	CalendarEventName string `json:"calendar_event_name"`
}

var payloadValidator = validator.New()

// DefaultPayload is substituted whenever the structured payload cannot be
// obtained or parsed, so the pipeline always persists a quest.
func DefaultPayload() Payload {
	return Payload{
		Title:             "System Reboot",
		Description:       "The Oracle spoke in riddles. Perform manual diagnostics.",
		Difficulty:        "E",
		StatRewardType:    "Intelligence",
		StatRewardValue:   1,
		CalendarEventName: "[QUEST] System Reboot",
	}
}

// parsePayload decodes and validates a raw JSON payload. Any failure means
// the caller substitutes DefaultPayload.
func parsePayload(raw string) (Payload, error) {
	var p Payload
	if err := schemas.ValidateQuestPayload(raw); err != nil {
		return p, err
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return p, err
	}
	if err := payloadValidator.Struct(p); err != nil {
		return p, err
	}
	return p, nil
}
