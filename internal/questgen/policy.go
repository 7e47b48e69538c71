// Package questgen implements the daily quest generation policy: a three
// state machine over dungeon, recovery and normal modes.
package questgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayoub/shadow-system/internal/prompts"
	"github.com/ayoub/shadow-system/internal/store"
)

// recoveryTargetStat overrides the lowest stat when the vitality
// safeguard is active.
const recoveryTargetStat = "Vitality"

// dungeonQuestText is the fixed survival artifact emitted while the
// player is locked inside a dungeon. No backend call, no quest row.
const dungeonQuestText = `# ⛩️ DAILY QUEST: THE ARCHITECT'S DESCENT
**Status**: LOCKED (Dungeon Active)
**Objective**: Survival.
1. Complete a microservice module.
2. Complete 100 Sambo Throws.
**Penalty for Failure**: Stat Reset.
`

// Store is the slice of the progression store the policy reads and writes.
type Store interface {
	Profile(ctx context.Context) (*store.Profile, error)
	LowestStat(ctx context.Context) (store.Stat, error)
	CreateQuest(ctx context.Context, q store.Quest) (uuid.UUID, error)
}

// StructuredCaller is the orchestrator's structured-generation surface.
type StructuredCaller interface {
	GenerateStructured(ctx context.Context, system, prompt string) (string, error)
}

// Calendar is the external scheduling collaborator. Both methods are
// best-effort from this policy's perspective.
type Calendar interface {
	FetchTodayEvents(ctx context.Context) ([]string, error)
	BlockTime(ctx context.Context, start, end time.Time, label string) error
}

// ArtifactWriter persists the quest artifact document.
type ArtifactWriter interface {
	WriteDailyQuest(content string) error
}

// Generator runs the quest generation policy.
type Generator struct {
	store     Store
	caller    StructuredCaller
	calendar  Calendar
	artifacts ArtifactWriter

	// Recovery marks the external safeguard signal as active, forcing a
	// low-intensity Vitality quest.
	Recovery bool
}

// NewGenerator wires the policy to its collaborators. calendar may be nil.
func NewGenerator(s Store, caller StructuredCaller, calendar Calendar, artifacts ArtifactWriter) *Generator {
	return &Generator{store: s, caller: caller, calendar: calendar, artifacts: artifacts}
}

// Generate evaluates the state machine once, persists the resulting quest
// in non-dungeon modes, writes the quest artifact and returns its text.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	profile, err := g.store.Profile(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load profile: %w", err)
	}

	if profile.InDungeon {
		fmt.Println("⚔️ DUNGEON DETECTED. Protocol Locked: 'The Architect's Descent'")
		if err := g.artifacts.WriteDailyQuest(dungeonQuestText); err != nil {
			return "", err
		}
		return dungeonQuestText, nil
	}

	target, override, err := g.resolveTarget(ctx)
	if err != nil {
		return "", err
	}

	payload := g.requestPayload(ctx, target, override)

	deadline := endOfDay(time.Now())
	_, err = g.store.CreateQuest(ctx, store.Quest{
		Title:       payload.Title,
		Description: payload.Description,
		Difficulty:  store.Difficulty(payload.Difficulty),
		RewardStat:  payload.StatRewardType,
		RewardValue: payload.StatRewardValue,
		Deadline:    deadline,
	})
	if err != nil {
		return "", fmt.Errorf("failed to persist quest: %w", err)
	}

	g.blockCalendar(ctx, payload)

	artifact := renderArtifact(payload, target)
	if err := g.artifacts.WriteDailyQuest(artifact); err != nil {
		return "", err
	}
	return artifact, nil
}

// resolveTarget picks the stat the quest should address and the prompt
// override for recovery mode.
func (g *Generator) resolveTarget(ctx context.Context) (string, string, error) {
	if g.Recovery {
		fmt.Println("🛡️ VITALITY SAFEGUARD ACTIVE. Nerfing quest difficulty.")
		return recoveryTargetStat, prompts.MustGet("quest.json", "recovery-override"), nil
	}

	lowest, err := g.store.LowestStat(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to find lowest stat: %w", err)
	}
	fmt.Printf("Weakness detected: %s (%d)\n", lowest.Name, lowest.Value)
	return lowest.Name, "", nil
}

// requestPayload issues the structured call and substitutes the default
// payload on any failure to obtain or parse it.
func (g *Generator) requestPayload(ctx context.Context, target, override string) Payload {
	schedule := "Schedule is clear."
	if g.calendar != nil {
		if events, err := g.calendar.FetchTodayEvents(ctx); err == nil && len(events) > 0 {
			schedule = strings.Join(events, "; ")
		}
	}

	prompt := prompts.Format(prompts.MustGet("quest.json", "quest-master"), map[string]string{
		"TargetStat": target,
		"Schedule":   schedule,
		"Override":   override,
	})

	raw, err := g.caller.GenerateStructured(ctx, "", prompt)
	if err != nil {
		fmt.Printf("Oracle unavailable (%v). Substituting default quest.\n", err)
		return DefaultPayload()
	}

	payload, err := parsePayload(raw)
	if err != nil {
		fmt.Printf("Oracle spoke in riddles (%v). Substituting default quest.\n", err)
		return DefaultPayload()
	}

	// The reward targets the weakness regardless of what the model chose.
	payload.StatRewardType = target
	return payload
}

// blockCalendar reserves an evening slot for the quest. Fire and forget.
func (g *Generator) blockCalendar(ctx context.Context, payload Payload) {
	if g.calendar == nil || payload.CalendarEventName == "" {
		return
	}
	start := time.Date(time.Now().Year(), time.Now().Month(), time.Now().Day(), 20, 0, 0, 0, time.Local)
	if err := g.calendar.BlockTime(ctx, start, start.Add(time.Hour), payload.CalendarEventName); err != nil {
		fmt.Printf("Warning: failed to block calendar time: %v\n", err)
	}
}

func renderArtifact(p Payload, target string) string {
	return fmt.Sprintf(`# 📜 DAILY QUEST
**Target**: %s
**Rank**: %s
**Objective**: %s
**Reward**: +%d %s

---
*System generated based on weakness: %s*
`, p.Title, p.Difficulty, p.Description, p.StatRewardValue, p.StatRewardType, target)
}

func endOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
}
