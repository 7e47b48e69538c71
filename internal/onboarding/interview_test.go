package onboarding

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/store"
)

type fakeGenesisStore struct {
	seeded *store.GenesisData
	err    error
}

func (f *fakeGenesisStore) SeedGenesis(_ context.Context, data *store.GenesisData) error {
	f.seeded = data
	return f.err
}

type fakeInterviewConverser struct {
	reply string
	err   error
}

func (f *fakeInterviewConverser) Converse(_ context.Context, _ llm.ConverseRequest) (string, error) {
	return f.reply, f.err
}

type fakeStructuredCaller struct {
	raw string
	err error
}

func (f *fakeStructuredCaller) GenerateStructured(_ context.Context, _, _ string) (string, error) {
	return f.raw, f.err
}

func TestProcessTurn_PlainReply(t *testing.T) {
	fs := &fakeGenesisStore{}
	i := NewInterviewer(fs, &fakeInterviewConverser{reply: "What is your current rank?"}, &fakeStructuredCaller{})

	result, err := i.ProcessTurn(context.Background(), nil, "I am ready.")
	require.NoError(t, err)

	assert.Equal(t, "What is your current rank?", result.Reply)
	assert.False(t, result.GenesisSeeded)
	assert.Nil(t, fs.seeded)
}

func TestProcessTurn_GenesisTriggerSeedsStore(t *testing.T) {
	fs := &fakeGenesisStore{}
	conv := &fakeInterviewConverser{reply: "ANALYSIS COMPLETE. INITIATING GENESIS...\n```json\n{\"ignored\": true}\n```"}
	caller := &fakeStructuredCaller{raw: `{
		"grand_goal": "Ship the compiler",
		"shadow_weakness": "Procrastination",
		"roadmap": {"Week 1": "Lexer"},
		"initial_quests": [
			{"title": "Write the lexer", "difficulty": "D", "reward_stat": "Intelligence"}
		]
	}`}
	i := NewInterviewer(fs, conv, caller)

	result, err := i.ProcessTurn(context.Background(), []llm.Turn{
		{Role: llm.RoleUser, Content: "E-rank"},
		{Role: llm.RoleModel, Content: "Noted."},
	}, "My weakness is procrastination.")
	require.NoError(t, err)

	assert.True(t, result.GenesisSeeded)
	// The raw JSON block never reaches the user.
	assert.Equal(t, "ANALYSIS COMPLETE. INITIATING GENESIS...", result.Reply)

	require.NotNil(t, fs.seeded)
	assert.Equal(t, "Ship the compiler", fs.seeded.GrandGoal)
	require.Len(t, fs.seeded.InitialQuests, 1)
	assert.Equal(t, "Write the lexer", fs.seeded.InitialQuests[0].Title)
}

func TestProcessTurn_GenesisFallsBackToMockData(t *testing.T) {
	fs := &fakeGenesisStore{}
	conv := &fakeInterviewConverser{reply: "INITIATING GENESIS"}
	caller := &fakeStructuredCaller{err: fmt.Errorf("rate limited after retries")}
	i := NewInterviewer(fs, conv, caller)

	result, err := i.ProcessTurn(context.Background(), nil, "done")
	require.NoError(t, err)

	assert.True(t, result.GenesisSeeded)
	require.NotNil(t, fs.seeded)
	assert.Equal(t, MockGenesisData().GrandGoal, fs.seeded.GrandGoal)
}

func TestProcessTurn_BackupProtocolProgresses(t *testing.T) {
	fs := &fakeGenesisStore{}
	conv := &fakeInterviewConverser{err: fmt.Errorf("all models exhausted: down")}
	i := NewInterviewer(fs, conv, &fakeStructuredCaller{})

	// First turn: the rank question.
	result, err := i.ProcessTurn(context.Background(), nil, "hello")
	require.NoError(t, err)
	assert.Contains(t, result.Reply, "Great Quest")
	assert.False(t, result.GenesisSeeded)

	// Deep into the interview: offline genesis.
	history := make([]llm.Turn, 6)
	result, err = i.ProcessTurn(context.Background(), history, "burnout")
	require.NoError(t, err)
	assert.True(t, result.GenesisSeeded)
	assert.Contains(t, result.Reply, "Offline Mode")
	require.NotNil(t, fs.seeded)
}

func TestProcessTurn_SeedFailurePropagates(t *testing.T) {
	fs := &fakeGenesisStore{err: fmt.Errorf("db down")}
	conv := &fakeInterviewConverser{reply: "INITIATING GENESIS"}
	caller := &fakeStructuredCaller{raw: `{"grand_goal": "X", "shadow_weakness": "Y"}`}
	i := NewInterviewer(fs, conv, caller)

	_, err := i.ProcessTurn(context.Background(), nil, "done")
	assert.ErrorContains(t, err, "failed to seed genesis data")
}
