package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Arise cost and gate.
const (
	ariseCost     = 500
	ariseMinLevel = 10
	ariseFeatsMax = 5
)

// Profile returns the player profile.
func (s *Store) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	err := s.pool.QueryRow(ctx,
		`SELECT level, xp, job_class, is_in_dungeon FROM player_profile WHERE id = 1`,
	).Scan(&p.Level, &p.XP, &p.JobClass, &p.InDungeon)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &p, nil
}

// GrantXP adds amount to the player's XP (clamped at zero) and checks for
// a level up. The
// level-up threshold is level*1000 at the time of the call; the level
// advances by at most one per call, even when the grant overshoots
// multiple thresholds. Reaching level 10 as a candidate creates the job
// change quest as a side effect.
func (s *Store) GrantXP(ctx context.Context, amount int, reason string) (*XPResult, error) {
	var res XPResult
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var level, xp int
		var jobClass string
		err := tx.QueryRow(ctx,
			`SELECT level, xp, job_class FROM player_profile WHERE id = 1`,
		).Scan(&level, &xp, &jobClass)
		if err != nil {
			if err == pgx.ErrNoRows {
				return ErrProfileNotFound
			}
			return fmt.Errorf("failed to load profile: %w", err)
		}

		res.NewXP = xp + amount
		if res.NewXP < 0 {
			res.NewXP = 0
		}
		res.NewLevel = level

		threshold := level * 1000
		if res.NewXP >= threshold {
			res.LeveledUp = true
			res.NewLevel = level + 1

			if res.NewLevel == 10 && jobClass == JobClassCandidate {
				res.JobChangeAvailable = true
				if err := insertQuest(ctx, tx, Quest{
					ID:          uuid.New(),
					Title:       "JOB CHANGE: Survive the Penalty",
					Description: "Complete 100 Pushups, 100 Situps, 10km Run.",
					Difficulty:  DifficultyS,
					Status:      QuestActive,
					RewardStat:  "Strength",
					RewardValue: 10,
					Deadline:    time.Now().AddDate(1, 0, 0),
				}); err != nil {
					return err
				}
			}
		}

		_, err = tx.Exec(ctx,
			`UPDATE player_profile SET xp = $1, level = $2 WHERE id = 1`,
			res.NewXP, res.NewLevel,
		)
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		return appendAuditEntry(ctx, tx, fmt.Sprintf("XP Change: +%d", amount), reason)
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Arise debits 500 XP and returns a context bundle holding the player's
// recent completed quests plus the problem description. Requires level 10
// and at least 500 XP; a failed precondition leaves the profile untouched.
func (s *Store) Arise(ctx context.Context, problem string) (*AriseBundle, error) {
	bundle := &AriseBundle{Problem: problem, XPSpent: ariseCost}
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		var level, xp int
		err := tx.QueryRow(ctx,
			`SELECT level, xp FROM player_profile WHERE id = 1`,
		).Scan(&level, &xp)
		if err != nil {
			if err == pgx.ErrNoRows {
				return ErrProfileNotFound
			}
			return fmt.Errorf("failed to load profile: %w", err)
		}

		if level < ariseMinLevel {
			return &PreconditionError{Reason: fmt.Sprintf("'Arise' requires Level %d (Shadow Monarch Candidate)", ariseMinLevel)}
		}
		if xp < ariseCost {
			return &PreconditionError{Reason: fmt.Sprintf("insufficient XP for 'Arise' (requires %d, has %d)", ariseCost, xp)}
		}

		_, err = tx.Exec(ctx,
			`UPDATE player_profile SET xp = xp - $1 WHERE id = 1`, ariseCost,
		)
		if err != nil {
			return fmt.Errorf("failed to debit XP: %w", err)
		}

		rows, err := tx.Query(ctx,
			`SELECT title, description FROM quests WHERE status = $1 ORDER BY deadline DESC LIMIT $2`,
			QuestCompleted, ariseFeatsMax,
		)
		if err != nil {
			return fmt.Errorf("failed to load completed quests: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var f Feat
			if err := rows.Scan(&f.Title, &f.Description); err != nil {
				return fmt.Errorf("failed to scan quest: %w", err)
			}
			bundle.Feats = append(bundle.Feats, f)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to read completed quests: %w", err)
		}

		return appendAuditEntry(ctx, tx, "Skill Used: ARISE",
			fmt.Sprintf("Spent %d XP to solve: %s", ariseCost, problem))
	})
	if err != nil {
		return nil, err
	}
	return bundle, nil
}

// SetJobClass updates the player's job class (awaken protocol).
func (s *Store) SetJobClass(ctx context.Context, jobClass string) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE player_profile SET job_class = $1 WHERE id = 1`, jobClass,
		)
		if err != nil {
			return fmt.Errorf("failed to update job class: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrProfileNotFound
		}
		return appendAuditEntry(ctx, tx, "Job Class Change", jobClass)
	})
}

// RecoveryAdvised reports whether the fatigue/vitality balance calls for a
// recovery day. Missing stats default to fatigue 0, vitality 10.
func (s *Store) RecoveryAdvised(ctx context.Context) (bool, error) {
	fatigue, vitality := 0, 10
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM player_stats WHERE stat_name = 'Fatigue'`,
	).Scan(&fatigue)
	if err != nil && err != pgx.ErrNoRows {
		return false, fmt.Errorf("failed to load fatigue: %w", err)
	}
	err = s.pool.QueryRow(ctx,
		`SELECT value FROM player_stats WHERE stat_name = 'Vitality'`,
	).Scan(&vitality)
	if err != nil && err != pgx.ErrNoRows {
		return false, fmt.Errorf("failed to load vitality: %w", err)
	}
	return fatigue > vitality, nil
}
