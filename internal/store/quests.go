package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// insertQuest writes a quest row inside an existing transaction.
func insertQuest(ctx context.Context, tx pgx.Tx, q Quest) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO quests (id, title, description, difficulty, status, reward_stat, reward_value, deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		q.ID, q.Title, q.Description, q.Difficulty, q.Status, q.RewardStat, q.RewardValue, q.Deadline,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quest %q: %w", q.Title, err)
	}
	return nil
}

// CreateQuest inserts one ACTIVE quest and returns its generated ID.
func (s *Store) CreateQuest(ctx context.Context, q Quest) (uuid.UUID, error) {
	q.ID = uuid.New()
	q.Status = QuestActive
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		if err := insertQuest(ctx, tx, q); err != nil {
			return err
		}
		return appendAuditEntry(ctx, tx, fmt.Sprintf("Quest Created: %s", q.Title),
			fmt.Sprintf("Rank %s, +%d %s", q.Difficulty, q.RewardValue, q.RewardStat))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return q.ID, nil
}

// ActiveQuest returns the most recently created ACTIVE quest, or nil when
// there is none. At most one ACTIVE quest is a policy convention, not a
// store-enforced invariant.
func (s *Store) ActiveQuest(ctx context.Context) (*Quest, error) {
	var q Quest
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, description, difficulty, status, reward_stat, reward_value, deadline
		 FROM quests WHERE status = $1 ORDER BY deadline DESC LIMIT 1`,
		QuestActive,
	).Scan(&q.ID, &q.Title, &q.Description, &q.Difficulty, &q.Status, &q.RewardStat, &q.RewardValue, &q.Deadline)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load active quest: %w", err)
	}
	return &q, nil
}
