package bridge

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/store"
)

// fakeStore records mutations and returns scripted results.
type fakeStore struct {
	statCalls  []string
	xpCalls    []int
	skillCalls []string

	statValue  int
	statErr    error
	xpResult   *store.XPResult
	xpErr      error
	skillErr   error
	ariseBndl  *store.AriseBundle
	ariseErr   error
}

func (f *fakeStore) UpdateStat(_ context.Context, name string, delta int, _ string) (int, error) {
	f.statCalls = append(f.statCalls, fmt.Sprintf("%s%+d", name, delta))
	return f.statValue, f.statErr
}

func (f *fakeStore) GrantXP(_ context.Context, amount int, _ string) (*store.XPResult, error) {
	f.xpCalls = append(f.xpCalls, amount)
	return f.xpResult, f.xpErr
}

func (f *fakeStore) UnlockSkill(_ context.Context, name, _ string) error {
	f.skillCalls = append(f.skillCalls, name)
	return f.skillErr
}

func (f *fakeStore) Arise(_ context.Context, _ string) (*store.AriseBundle, error) {
	return f.ariseBndl, f.ariseErr
}

func TestRun_UpdateStat(t *testing.T) {
	fs := &fakeStore{statValue: 12}
	b := New(fs)

	out := b.Run(context.Background(), llm.Directive{
		Name: DirectiveUpdateStat,
		Args: map[string]any{"stat_name": "Strength", "increment": float64(2), "reason": "Did pushups"},
	})

	assert.Equal(t, "SUCCESS: Strength updated by 2 (Did pushups). New Value: 12.", out)
	assert.Equal(t, []string{"Strength+2"}, fs.statCalls)
}

func TestRun_UpdateStat_MissingArgs(t *testing.T) {
	b := New(&fakeStore{})

	out := b.Run(context.Background(), llm.Directive{
		Name: DirectiveUpdateStat,
		Args: map[string]any{"increment": float64(2), "reason": "r"},
	})

	assert.Contains(t, out, "ERROR: Invalid arguments")
}

func TestRun_GrantXP(t *testing.T) {
	tests := []struct {
		name     string
		result   *store.XPResult
		expected string
	}{
		{
			name:     "plain gain",
			result:   &store.XPResult{NewXP: 500},
			expected: "XP Gained: 100. Total XP: 500.",
		},
		{
			name:     "level up",
			result:   &store.XPResult{NewXP: 50, NewLevel: 5, LeveledUp: true},
			expected: "XP Gained: 100. Total XP: 50. LEVEL UP! You are now Level 5!",
		},
		{
			name:     "job change unlocked",
			result:   &store.XPResult{NewXP: 20, NewLevel: 10, LeveledUp: true, JobChangeAvailable: true},
			expected: "XP Gained: 100. Total XP: 20. LEVEL UP! You are now Level 10! JOB CHANGE QUEST AVAILABLE: 'The Necromancer's Path'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(&fakeStore{xpResult: tt.result})
			out := b.Run(context.Background(), llm.Directive{
				Name: DirectiveGrantXP,
				Args: map[string]any{"amount": float64(100), "reason": "audit"},
			})
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRun_GrantXP_NoProfile(t *testing.T) {
	b := New(&fakeStore{xpErr: store.ErrProfileNotFound})
	out := b.Run(context.Background(), llm.Directive{
		Name: DirectiveGrantXP,
		Args: map[string]any{"amount": float64(10), "reason": "r"},
	})
	assert.Equal(t, "ERROR: Player profile not found.", out)
}

func TestRun_UnlockSkill(t *testing.T) {
	fs := &fakeStore{}
	b := New(fs)

	out := b.Run(context.Background(), llm.Directive{
		Name: DirectiveUnlockSkill,
		Args: map[string]any{"skill_name": "Iron Body", "reason": "30 days of training"},
	})

	assert.Equal(t, "SUCCESS: Skill 'Iron Body' UNLOCKED! (30 days of training)", out)
	assert.Equal(t, []string{"Iron Body"}, fs.skillCalls)
}

func TestRun_UnlockSkill_NotFound(t *testing.T) {
	b := New(&fakeStore{skillErr: store.ErrSkillNotFound})
	out := b.Run(context.Background(), llm.Directive{
		Name: DirectiveUnlockSkill,
		Args: map[string]any{"skill_name": "Flight", "reason": "r"},
	})
	assert.Equal(t, "ERROR: Skill 'Flight' not found.", out)
}

func TestRun_Arise(t *testing.T) {
	b := New(&fakeStore{ariseBndl: &store.AriseBundle{
		Problem: "distributed deadlock",
		XPSpent: 500,
		Feats: []store.Feat{
			{Title: "Slayer of Bugs", Description: "Fixed the race"},
		},
	}})

	out := b.Run(context.Background(), llm.Directive{
		Name: DirectiveArise,
		Args: map[string]any{"problem_description": "distributed deadlock"},
	})

	assert.Contains(t, out, "500 XP Deducted")
	assert.Contains(t, out, "SHADOW SOVEREIGN SUMMONED")
	assert.Contains(t, out, "Slayer of Bugs: Fixed the race")
	assert.Contains(t, out, "distributed deadlock")
}

func TestRun_Arise_PreconditionFailure(t *testing.T) {
	b := New(&fakeStore{ariseErr: &store.PreconditionError{Reason: "requires Level 10 (current: 3)"}})

	out := b.Run(context.Background(), llm.Directive{
		Name: DirectiveArise,
		Args: map[string]any{"problem_description": "p"},
	})

	assert.Equal(t, "FAILURE: precondition failed: requires Level 10 (current: 3)", out)
}

func TestRun_UnknownDirective(t *testing.T) {
	b := New(&fakeStore{})
	out := b.Run(context.Background(), llm.Directive{Name: "self_destruct"})
	assert.Equal(t, "ERROR: Unknown directive 'self_destruct'.", out)
}

func TestDefinitions_CoverEveryDirective(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 4)

	names := make(map[string]bool)
	for _, d := range defs {
		names[d.Name] = true
	}
	assert.True(t, names[DirectiveUpdateStat])
	assert.True(t, names[DirectiveGrantXP])
	assert.True(t, names[DirectiveUnlockSkill])
	assert.True(t, names[DirectiveArise])
}
