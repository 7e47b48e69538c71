package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare json passes through",
			input:    `{"title":"Run"}`,
			expected: `{"title":"Run"}`,
		},
		{
			name:     "fenced json",
			input:    "```json\n{\"title\":\"Run\"}\n```",
			expected: `{"title":"Run"}`,
		},
		{
			name:     "fence without language",
			input:    "```\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "preamble before object",
			input:    "Here is your quest:\n{\"title\":\"Run\"}",
			expected: `{"title":"Run"}`,
		},
		{
			name:     "preamble before array",
			input:    "Sure! [1, 2, 3]",
			expected: `[1, 2, 3]`,
		},
		{
			name:     "braces inside string literals",
			input:    `{"desc":"use {x} and \"quotes\""} trailing text`,
			expected: `{"desc":"use {x} and \"quotes\""}`,
		},
		{
			name:     "nested objects",
			input:    `prefix {"a":{"b":2}} suffix`,
			expected: `{"a":{"b":2}}`,
		},
		{
			name:     "plain prose unchanged",
			input:    "  no json here  ",
			expected: "no json here",
		},
		{
			name:     "unbalanced braces fall back to input",
			input:    `{"broken": `,
			expected: `{"broken":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
