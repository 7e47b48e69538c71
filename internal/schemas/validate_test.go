package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuestPayload_Valid(t *testing.T) {
	payload := `{
		"title": "Shadow Sprint",
		"description": "Run 5km before dawn.",
		"difficulty": "C",
		"stat_reward_type": "Strength",
		"stat_reward_value": 2
	}`
	assert.NoError(t, ValidateQuestPayload(payload))
}

func TestValidateQuestPayload_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "not even json"},
		{name: "missing title", payload: `{"description":"d","difficulty":"E","stat_reward_type":"Strength","stat_reward_value":1}`},
		{name: "bad difficulty", payload: `{"title":"t","description":"d","difficulty":"Z","stat_reward_type":"Strength","stat_reward_value":1}`},
		{name: "wrong value type", payload: `{"title":"t","description":"d","difficulty":"E","stat_reward_type":"Strength","stat_reward_value":"two"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuestPayload(tt.payload)
			require.Error(t, err)
		})
	}
}
