package bridge

import "github.com/ayoub/shadow-system/internal/llm"

// Definitions returns the tool declarations bound to this bridge, in the
// shape the orchestrator attaches to a conversational call.
func Definitions() []llm.ToolDef {
	return []llm.ToolDef{
		{
			Name:        DirectiveUpdateStat,
			Description: "Updates one of the player's RPG stats (e.g. Strength, Intelligence, Fatigue) by a signed increment.",
			Params: []llm.ParamDef{
				{Name: "stat_name", Type: "string", Description: "Name of the stat to change.", Required: true},
				{Name: "increment", Type: "integer", Description: "Amount to increase or decrease.", Required: true},
				{Name: "reason", Type: "string", Description: "Reason for the update.", Required: true},
			},
		},
		{
			Name:        DirectiveGrantXP,
			Description: "Grants XP to the player and checks for a level up.",
			Params: []llm.ParamDef{
				{Name: "amount", Type: "integer", Description: "XP to grant.", Required: true},
				{Name: "reason", Type: "string", Description: "Reason for the grant.", Required: true},
			},
		},
		{
			Name:        DirectiveUnlockSkill,
			Description: "Unlocks a named skill once its threshold condition is met.",
			Params: []llm.ParamDef{
				{Name: "skill_name", Type: "string", Description: "Exact skill name.", Required: true},
				{Name: "reason", Type: "string", Description: "Condition that was met.", Required: true},
			},
		},
		{
			Name:        DirectiveArise,
			Description: "(Level 10+ only) Summons the Shadow Sovereign to solve a technical blocker. Costs 500 XP.",
			Params: []llm.ParamDef{
				{Name: "problem_description", Type: "string", Description: "The blocker to solve.", Required: true},
			},
		},
	}
}
