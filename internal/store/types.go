package store

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty ranks quests from weakest (E) to strongest (S).
type Difficulty string

// Quest difficulty ranks.
const (
	DifficultyE Difficulty = "E"
	DifficultyD Difficulty = "D"
	DifficultyC Difficulty = "C"
	DifficultyB Difficulty = "B"
	DifficultyA Difficulty = "A"
	DifficultyS Difficulty = "S"
)

// Quest status values.
const (
	QuestActive    = "ACTIVE"
	QuestCompleted = "COMPLETED"
	QuestFailed    = "FAILED"
)

// JobClassCandidate is the pre-ascension placeholder class. Reaching level
// 10 while holding it unlocks the job change quest.
const JobClassCandidate = "Shadow Monarch Candidate"

// Profile is the single player profile row.
type Profile struct {
	Level     int    `json:"level"`
	XP        int    `json:"xp"`
	JobClass  string `json:"job_class"`
	InDungeon bool   `json:"in_dungeon"`
}

// Stat is a single named attribute value.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Quest is a persisted quest row.
type Quest struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Status      string     `json:"status"`
	RewardStat  string     `json:"reward_stat"`
	RewardValue int        `json:"reward_value"`
	Deadline    time.Time  `json:"deadline"`
}

// Skill is a persisted skill row.
type Skill struct {
	Name     string `json:"name"`
	Unlocked bool   `json:"unlocked"`
}

// UserContext holds the genesis data written once at onboarding.
type UserContext struct {
	GrandGoal      string            `json:"grand_goal"`
	ShadowWeakness string            `json:"shadow_weakness"`
	Roadmap        map[string]string `json:"roadmap"`
}

// XPResult reports the outcome of a GrantXP call.
type XPResult struct {
	NewXP              int
	NewLevel           int
	LeveledUp          bool
	JobChangeAvailable bool
}

// Feat is a completed quest summarized for the arise context bundle.
type Feat struct {
	Title       string
	Description string
}

// AriseBundle is the context returned by a successful Arise call, meant to
// be forwarded into a reasoning request.
type AriseBundle struct {
	Problem string
	Feats   []Feat
	XPSpent int
}
