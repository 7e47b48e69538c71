package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Defaults returned by LowestStat when the stat table is empty.
const (
	defaultLowestStatName  = "Strength"
	defaultLowestStatValue = 10
)

// UpdateStat applies delta to the named stat, creating it at zero on first
// reference, and returns the new value. Values are not clamped and may go
// negative.
func (s *Store) UpdateStat(ctx context.Context, name string, delta int, reason string) (int, error) {
	var newValue int
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO player_stats (stat_name, value) VALUES ($1, 0)
			 ON CONFLICT (stat_name) DO NOTHING`,
			name,
		)
		if err != nil {
			return fmt.Errorf("failed to ensure stat %s: %w", name, err)
		}

		err = tx.QueryRow(ctx,
			`UPDATE player_stats SET value = value + $1 WHERE stat_name = $2
			 RETURNING value`,
			delta, name,
		).Scan(&newValue)
		if err != nil {
			return fmt.Errorf("failed to update stat %s: %w", name, err)
		}

		return appendAuditEntry(ctx, tx, fmt.Sprintf("Stat Change: %s %+d", name, delta), reason)
	})
	if err != nil {
		return 0, err
	}
	return newValue, nil
}

// LowestStat returns the stat with the minimum value, breaking ties by
// name. An empty stat table yields the documented default pair.
func (s *Store) LowestStat(ctx context.Context) (Stat, error) {
	var st Stat
	err := s.pool.QueryRow(ctx,
		`SELECT stat_name, value FROM player_stats ORDER BY value ASC, stat_name ASC LIMIT 1`,
	).Scan(&st.Name, &st.Value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return Stat{Name: defaultLowestStatName, Value: defaultLowestStatValue}, nil
		}
		return Stat{}, fmt.Errorf("failed to load lowest stat: %w", err)
	}
	return st, nil
}

// Stats returns all stats ordered by name.
func (s *Store) Stats(ctx context.Context) ([]Stat, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT stat_name, value FROM player_stats ORDER BY stat_name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stats: %w", err)
	}
	defer rows.Close()

	var stats []Stat
	for rows.Next() {
		var st Stat
		if err := rows.Scan(&st.Name, &st.Value); err != nil {
			return nil, fmt.Errorf("failed to scan stat: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}
	return stats, nil
}
