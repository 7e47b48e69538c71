// Package llm provides the resilient orchestration layer over a ranked
// list of reasoning backends. Structured calls stick to the primary
// backend and retry only on rate limits; conversational calls fall
// through the full ranked list on any error.
package llm

import "time"

// Default ranked model list, strongest first. The same ranking is reused
// across every call site.
var defaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite-001",
}

// Config holds the orchestrator's backend ranking and retry policy.
type Config struct {
	// Models is the ranked backend list, strongest/cheapest first.
	Models []string
	// MaxAttempts bounds retries of a structured call on the primary model.
	MaxAttempts int
	// RetryDelay is the fixed sleep between rate-limited attempts.
	RetryDelay time.Duration
	// MaxToolRounds bounds directive round-trips within one exchange.
	MaxToolRounds int
}

// DefaultConfig returns the standard ranking and retry policy.
func DefaultConfig() *Config {
	return &Config{
		Models:        defaultModels,
		MaxAttempts:   3,
		RetryDelay:    10 * time.Second,
		MaxToolRounds: 4,
	}
}

// Primary returns the top-ranked model.
func (c *Config) Primary() string {
	if len(c.Models) == 0 {
		return ""
	}
	return c.Models[0]
}
