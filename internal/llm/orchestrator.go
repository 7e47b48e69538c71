package llm

import (
	"context"
	"fmt"
	"time"
)

// Orchestrator sequences calls across the ranked backend list. It is
// constructed once and passed into every policy entry point.
type Orchestrator struct {
	backend Backend
	cfg     *Config

	// sleep is swappable in tests.
	sleep func(time.Duration)
}

// NewOrchestrator wires a backend to the retry/fallback policy in cfg.
func NewOrchestrator(backend Backend, cfg *Config) *Orchestrator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Orchestrator{backend: backend, cfg: cfg, sleep: time.Sleep}
}

// GenerateStructured issues a structured (JSON) call against the primary
// backend only. Rate limits are retried up to MaxAttempts with a fixed
// delay; any other error is terminal for the call. The raw JSON text is
// returned; parsing and default substitution are the caller's concern.
func (o *Orchestrator) GenerateStructured(ctx context.Context, system, prompt string) (string, error) {
	model := o.cfg.Primary()
	if model == "" {
		return "", fmt.Errorf("no models configured")
	}

	req := Request{
		System:     system,
		Turns:      []Turn{{Role: RoleUser, Content: prompt}},
		JSONOutput: true,
	}

	var lastErr error
	for attempt := 1; attempt <= o.cfg.MaxAttempts; attempt++ {
		res, err := o.backend.Generate(ctx, model, req)
		if err == nil {
			return CleanJSONBlock(res.Text), nil
		}
		lastErr = err
		if !IsRateLimited(err) {
			return "", &APICallError{Model: model, Message: "structured generation failed", Cause: err}
		}
		if attempt < o.cfg.MaxAttempts {
			o.sleep(o.cfg.RetryDelay)
		}
	}
	return "", &APICallError{Model: model, Message: "rate limited after retries", Cause: lastErr}
}

// ConverseRequest is a conversational exchange: free-text output, optional
// tool definitions, and an optional runner that executes directives
// mid-exchange.
type ConverseRequest struct {
	System     string
	Turns      []Turn
	Tools      []ToolDef
	Runner     ToolRunner
	Attachment *Attachment
}

// Converse walks the ranked backend list, attempting each model exactly
// once and advancing on any error. The first model to produce a final
// textual reply wins; directive round-trips happen on that same model.
func (o *Orchestrator) Converse(ctx context.Context, req ConverseRequest) (string, error) {
	if len(o.cfg.Models) == 0 {
		return "", fmt.Errorf("no models configured")
	}

	var lastErr error
	for _, model := range o.cfg.Models {
		text, err := o.converseOn(ctx, model, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("all models exhausted: %w", lastErr)
}

// converseOn runs the exchange against one model, resubmitting tool
// results until the model produces a plain reply or the round cap hits.
func (o *Orchestrator) converseOn(ctx context.Context, model string, req ConverseRequest) (string, error) {
	turns := make([]Turn, len(req.Turns))
	copy(turns, req.Turns)

	raw := Request{
		System:     req.System,
		Tools:      req.Tools,
		Attachment: req.Attachment,
	}

	for round := 0; ; round++ {
		raw.Turns = turns
		res, err := o.backend.Generate(ctx, model, raw)
		if err != nil {
			return "", err
		}
		if len(res.Directives) == 0 || req.Runner == nil || round >= o.cfg.MaxToolRounds {
			return res.Text, nil
		}

		results := make([]ToolResult, 0, len(res.Directives))
		for _, d := range res.Directives {
			results = append(results, ToolResult{Name: d.Name, Response: req.Runner.Run(ctx, d)})
		}

		turns = append(turns, Turn{Role: RoleModel, Content: res.Text, Directives: res.Directives})
		turns = append(turns, Turn{Role: RoleUser, ToolResults: results})
		// The attachment belongs to the original user turn only.
		raw.Attachment = nil
	}
}
