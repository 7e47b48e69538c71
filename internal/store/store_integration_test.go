package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connectTestStore connects to the gated test database and provisions the
// schema. Skipped unless DATABASE_URL points at a disposable instance.
func connectTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}

	ctx := context.Background()
	s, err := Connect(ctx, databaseURL)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.InitSchema(ctx))
	return s, ctx
}

// resetProfile forces the singleton profile into a known state.
func resetProfile(t *testing.T, s *Store, ctx context.Context, level, xp int) {
	t.Helper()
	_, err := s.pool.Exec(ctx,
		`UPDATE player_profile SET level = $1, xp = $2, job_class = $3, is_in_dungeon = FALSE WHERE id = 1`,
		level, xp, JobClassCandidate,
	)
	require.NoError(t, err)
}

func TestGrantXP_Integration(t *testing.T) {
	s, ctx := connectTestStore(t)

	t.Run("increments by the granted amount", func(t *testing.T) {
		resetProfile(t, s, ctx, 1, 100)

		res, err := s.GrantXP(ctx, 50, "test grant")
		require.NoError(t, err)
		assert.Equal(t, 150, res.NewXP)
		assert.Equal(t, 1, res.NewLevel)
		assert.False(t, res.LeveledUp)
	})

	t.Run("crossing the threshold advances one level", func(t *testing.T) {
		resetProfile(t, s, ctx, 1, 950)

		res, err := s.GrantXP(ctx, 100, "test grant")
		require.NoError(t, err)
		assert.Equal(t, 1050, res.NewXP)
		assert.Equal(t, 2, res.NewLevel)
		assert.True(t, res.LeveledUp)

		profile, err := s.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, profile.Level)
		assert.Equal(t, 1050, profile.XP)
	})

	t.Run("overshooting several thresholds still advances one level", func(t *testing.T) {
		resetProfile(t, s, ctx, 1, 0)

		res, err := s.GrantXP(ctx, 5000, "test grant")
		require.NoError(t, err)
		assert.Equal(t, 2, res.NewLevel)
		assert.True(t, res.LeveledUp)
	})

	t.Run("negative grant clamps at zero", func(t *testing.T) {
		resetProfile(t, s, ctx, 1, 100)

		res, err := s.GrantXP(ctx, -500, "test penalty")
		require.NoError(t, err)
		assert.Equal(t, 0, res.NewXP)
	})
}

func TestArise_Integration(t *testing.T) {
	s, ctx := connectTestStore(t)

	t.Run("rejected below level 10 without mutation", func(t *testing.T) {
		resetProfile(t, s, ctx, 3, 900)

		_, err := s.Arise(ctx, "hard problem")
		require.Error(t, err)
		assert.True(t, IsPrecondition(err))

		profile, err := s.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 900, profile.XP)
	})

	t.Run("rejected on insufficient XP without mutation", func(t *testing.T) {
		resetProfile(t, s, ctx, 10, 100)

		_, err := s.Arise(ctx, "hard problem")
		require.Error(t, err)
		assert.True(t, IsPrecondition(err))

		profile, err := s.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 100, profile.XP)
	})

	t.Run("debits exactly 500 on success", func(t *testing.T) {
		resetProfile(t, s, ctx, 10, 600)

		bundle, err := s.Arise(ctx, "distributed deadlock")
		require.NoError(t, err)
		assert.Equal(t, 500, bundle.XPSpent)
		assert.Equal(t, "distributed deadlock", bundle.Problem)

		profile, err := s.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 100, profile.XP)
	})
}

func TestStore_Integration(t *testing.T) {
	s, ctx := connectTestStore(t)

	if _, err := s.Profile(ctx); err != nil && err != ErrProfileNotFound {
		t.Fatalf("profile read failed: %v", err)
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	t.Logf("loaded %d stats", len(stats))
}
