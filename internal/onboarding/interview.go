// Package onboarding runs the Sovereign's three-question interview and
// seeds the database with the resulting genesis data.
package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/prompts"
	"github.com/ayoub/shadow-system/internal/store"
)

// genesisTrigger marks the interview's completion in the model's reply.
const genesisTrigger = "INITIATING GENESIS"

// Store is the slice of the progression store onboarding writes.
type Store interface {
	SeedGenesis(ctx context.Context, data *store.GenesisData) error
}

// Converser is the orchestrator's conversational surface.
type Converser interface {
	Converse(ctx context.Context, req llm.ConverseRequest) (string, error)
}

// StructuredCaller is the orchestrator's structured-generation surface.
type StructuredCaller interface {
	GenerateStructured(ctx context.Context, system, prompt string) (string, error)
}

// ChatResult is the outcome of one interview turn.
type ChatResult struct {
	Reply         string
	GenesisSeeded bool
}

// Interviewer drives the onboarding chat.
type Interviewer struct {
	store  Store
	conv   Converser
	caller StructuredCaller
}

// NewInterviewer wires onboarding to the store and the orchestrator.
func NewInterviewer(s Store, conv Converser, caller StructuredCaller) *Interviewer {
	return &Interviewer{store: s, conv: conv, caller: caller}
}

// ProcessTurn handles one interview exchange. When every backend is
// exhausted the rule-based backup protocol answers instead, so onboarding
// never dead-ends on an outage.
func (i *Interviewer) ProcessTurn(ctx context.Context, history []llm.Turn, message string) (*ChatResult, error) {
	turns := append(append([]llm.Turn{}, history...), llm.Turn{Role: llm.RoleUser, Content: message})

	reply, err := i.conv.Converse(ctx, llm.ConverseRequest{
		System: prompts.MustGet("onboarding.json", "interview-system"),
		Turns:  turns,
	})
	if err != nil {
		fmt.Printf("All models exhausted (%v). Engaging backup protocol.\n", err)
		return i.backupProtocol(ctx, history)
	}

	if !strings.Contains(reply, genesisTrigger) {
		return &ChatResult{Reply: reply}, nil
	}

	// Strip any raw JSON the model tacked onto the trigger line.
	userReply := strings.TrimSpace(strings.SplitN(reply, "```json", 2)[0])
	if userReply == "" {
		userReply = "ANALYSIS COMPLETE. INITIATING GENESIS..."
	}

	data := i.generateGenesis(ctx, turns)
	if err := i.store.SeedGenesis(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to seed genesis data: %w", err)
	}
	return &ChatResult{Reply: userReply, GenesisSeeded: true}, nil
}

// generateGenesis asks for the structured genesis payload, substituting
// the mock payload on any failure.
func (i *Interviewer) generateGenesis(ctx context.Context, turns []llm.Turn) *store.GenesisData {
	var transcript strings.Builder
	for _, t := range turns {
		fmt.Fprintf(&transcript, "%s: %s\n", t.Role, t.Content)
	}

	prompt := prompts.MustGet("onboarding.json", "genesis-request") +
		"\n\nInterview history:\n" + transcript.String()

	raw, err := i.caller.GenerateStructured(ctx, "", prompt)
	if err != nil {
		fmt.Printf("Genesis generation failed (%v). Using mock genesis data.\n", err)
		return MockGenesisData()
	}

	var data store.GenesisData
	if err := json.Unmarshal([]byte(raw), &data); err != nil || data.GrandGoal == "" {
		fmt.Println("Genesis payload unreadable. Using mock genesis data.")
		return MockGenesisData()
	}
	return &data
}

// backupProtocol produces rule-based replies keyed on the turn count, so
// the three-question flow still progresses offline.
func (i *Interviewer) backupProtocol(ctx context.Context, history []llm.Turn) (*ChatResult, error) {
	switch {
	case len(history) <= 2:
		return &ChatResult{Reply: "Data received. Rank recorded. [BACKUP PROTOCOL]\n\nWhat is the singular 'Great Quest' you must clear in the next 12 weeks?"}, nil
	case len(history) <= 4:
		return &ChatResult{Reply: "Objective logged. [BACKUP PROTOCOL]\n\nWhat is your primary 'Shadow' (weakness)? (e.g. Burnout, Procrastination)."}, nil
	default:
		if err := i.store.SeedGenesis(ctx, MockGenesisData()); err != nil {
			return nil, fmt.Errorf("failed to seed genesis data: %w", err)
		}
		return &ChatResult{Reply: "ANALYSIS COMPLETE. INITIATING GENESIS... (Offline Mode)", GenesisSeeded: true}, nil
	}
}

// MockGenesisData is the safe default profile used when generation fails.
func MockGenesisData() *store.GenesisData {
	return &store.GenesisData{
		GrandGoal:      "Survive the Shadow System",
		ShadowWeakness: "Rate Limits",
		Roadmap: map[string]string{
			"Week 1":  "System Calibration",
			"Week 2":  "Basic Training",
			"Week 3":  "Skill Acquisition",
			"Week 4":  "First Dungeon",
			"Week 12": "Ascension",
		},
		InitialQuests: []store.GenesisQuest{
			{Title: "Bypass Limitations", Difficulty: store.DifficultyD, RewardStat: "Intelligence"},
			{Title: "Manual Override", Difficulty: store.DifficultyE, RewardStat: "Vitality"},
			{Title: "Persistence", Difficulty: store.DifficultyC, RewardStat: "Strength"},
		},
	}
}
