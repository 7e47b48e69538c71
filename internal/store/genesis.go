package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GenesisQuest is an initial quest seeded during onboarding.
type GenesisQuest struct {
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	RewardStat string     `json:"reward_stat"`
}

// GenesisData is the onboarding payload persisted by SeedGenesis.
type GenesisData struct {
	GrandGoal      string            `json:"grand_goal"`
	ShadowWeakness string            `json:"shadow_weakness"`
	Roadmap        map[string]string `json:"roadmap"`
	InitialQuests  []GenesisQuest    `json:"initial_quests"`
}

// SeedGenesis writes the user context and the initial ACTIVE quests in a
// single transaction.
func (s *Store) SeedGenesis(ctx context.Context, data *GenesisData) error {
	roadmap, err := json.Marshal(data.Roadmap)
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	return s.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO user_context (grand_goal, shadow_weakness, roadmap_json)
			 VALUES ($1, $2, $3)`,
			data.GrandGoal, data.ShadowWeakness, roadmap,
		)
		if err != nil {
			return fmt.Errorf("failed to insert user context: %w", err)
		}

		for _, gq := range data.InitialQuests {
			if err := insertQuest(ctx, tx, Quest{
				ID:          uuid.New(),
				Title:       gq.Title,
				Description: "Genesis Mission",
				Difficulty:  gq.Difficulty,
				Status:      QuestActive,
				RewardStat:  gq.RewardStat,
				RewardValue: 2,
				Deadline:    time.Now().AddDate(0, 0, 7),
			}); err != nil {
				return err
			}
		}

		return appendAuditEntry(ctx, tx, "Genesis", data.GrandGoal)
	})
}

// UserContext returns the most recent genesis data, or nil when onboarding
// has not run.
func (s *Store) UserContext(ctx context.Context) (*UserContext, error) {
	var uc UserContext
	var roadmap []byte
	err := s.pool.QueryRow(ctx,
		`SELECT grand_goal, shadow_weakness, roadmap_json FROM user_context
		 ORDER BY id DESC LIMIT 1`,
	).Scan(&uc.GrandGoal, &uc.ShadowWeakness, &roadmap)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user context: %w", err)
	}
	if len(roadmap) > 0 {
		if err := json.Unmarshal(roadmap, &uc.Roadmap); err != nil {
			uc.Roadmap = map[string]string{}
		}
	}
	return &uc, nil
}
