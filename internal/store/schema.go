package store

import (
	"context"
	"fmt"
)

// schemaDDL creates every table the store touches. Idempotent.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS player_profile (
	id            INT PRIMARY KEY CHECK (id = 1),
	level         INT NOT NULL DEFAULT 1,
	xp            INT NOT NULL DEFAULT 0,
	job_class     TEXT NOT NULL DEFAULT 'Shadow Monarch Candidate',
	is_in_dungeon BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS player_stats (
	stat_name TEXT PRIMARY KEY,
	value     INT NOT NULL DEFAULT 10
);

CREATE TABLE IF NOT EXISTS quests (
	id           UUID PRIMARY KEY,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	difficulty   TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'ACTIVE',
	reward_stat  TEXT NOT NULL,
	reward_value INT NOT NULL DEFAULT 1,
	deadline     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS skills (
	name        TEXT PRIMARY KEY,
	is_unlocked BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS user_context (
	id              SERIAL PRIMARY KEY,
	grand_goal      TEXT NOT NULL,
	shadow_weakness TEXT NOT NULL,
	roadmap_json    JSONB
);

CREATE TABLE IF NOT EXISTS audit_logs (
	id           SERIAL PRIMARY KEY,
	content      TEXT NOT NULL,
	audit_result TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

INSERT INTO player_profile (id) VALUES (1) ON CONFLICT (id) DO NOTHING;
`

// seedSkills is the fixed skill tree, locked until earned.
var seedSkills = []string{
	"Iron Body",
	"Deep Focus",
	"Shadow Step",
	"Monarch's Domain",
}

// InitSchema creates the tables, the singleton profile row and the locked
// skill tree. Safe to run repeatedly.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	for _, name := range seedSkills {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO skills (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name,
		)
		if err != nil {
			return fmt.Errorf("failed to seed skill %s: %w", name, err)
		}
	}
	return nil
}
