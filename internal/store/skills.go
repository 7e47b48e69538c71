package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// UnlockSkill marks the named skill as unlocked. Unknown names fail with
// ErrSkillNotFound; unlocking an already-unlocked skill is a no-op that
// still succeeds.
func (s *Store) UnlockSkill(ctx context.Context, name, reason string) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE skills SET is_unlocked = TRUE WHERE name = $1`, name,
		)
		if err != nil {
			return fmt.Errorf("failed to unlock skill %s: %w", name, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrSkillNotFound
		}
		return appendAuditEntry(ctx, tx, fmt.Sprintf("Skill Unlocked: %s", name), reason)
	})
}

// Skills returns all skill rows ordered by name.
func (s *Store) Skills(ctx context.Context) ([]Skill, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, is_unlocked FROM skills ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []Skill
	for rows.Next() {
		var sk Skill
		if err := rows.Scan(&sk.Name, &sk.Unlocked); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skills: %w", err)
	}
	return skills, nil
}
