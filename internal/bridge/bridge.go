// Package bridge maps directives emitted by a reasoning backend onto
// progression store mutations. Directives run strictly in emission order;
// a failure mid-batch does not roll back earlier directives, since each
// store operation is independently atomic.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/store"
)

// Directive names understood by the bridge.
const (
	DirectiveUpdateStat  = "update_player_stats"
	DirectiveGrantXP     = "grant_xp"
	DirectiveUnlockSkill = "unlock_skill"
	DirectiveArise       = "arise"
)

// Store is the slice of the progression store the bridge drives.
type Store interface {
	UpdateStat(ctx context.Context, name string, delta int, reason string) (int, error)
	GrantXP(ctx context.Context, amount int, reason string) (*store.XPResult, error)
	UnlockSkill(ctx context.Context, name, reason string) error
	Arise(ctx context.Context, problem string) (*store.AriseBundle, error)
}

// Bridge executes directives against the store and reports each outcome
// as a textual result fed back into the ongoing exchange.
type Bridge struct {
	store Store
}

// New creates a bridge over the given store.
func New(s Store) *Bridge {
	return &Bridge{store: s}
}

// Run executes one directive synchronously. Failures, including
// business-rule violations, come back as descriptive strings so the
// backend can react before finalizing its reply.
func (b *Bridge) Run(ctx context.Context, d llm.Directive) string {
	switch d.Name {
	case DirectiveUpdateStat:
		return b.updateStat(ctx, d.Args)
	case DirectiveGrantXP:
		return b.grantXP(ctx, d.Args)
	case DirectiveUnlockSkill:
		return b.unlockSkill(ctx, d.Args)
	case DirectiveArise:
		return b.arise(ctx, d.Args)
	default:
		return fmt.Sprintf("ERROR: Unknown directive '%s'.", d.Name)
	}
}

func (b *Bridge) updateStat(ctx context.Context, args map[string]any) string {
	name, err := stringArg(args, "stat_name")
	if err != nil {
		return argError(err)
	}
	delta, err := intArg(args, "increment")
	if err != nil {
		return argError(err)
	}
	reason, err := stringArg(args, "reason")
	if err != nil {
		return argError(err)
	}

	newValue, err := b.store.UpdateStat(ctx, name, delta, reason)
	if err != nil {
		return fmt.Sprintf("ERROR: Failed to update stats - %v", err)
	}
	return fmt.Sprintf("SUCCESS: %s updated by %d (%s). New Value: %d.", name, delta, reason, newValue)
}

func (b *Bridge) grantXP(ctx context.Context, args map[string]any) string {
	amount, err := intArg(args, "amount")
	if err != nil {
		return argError(err)
	}
	reason, err := stringArg(args, "reason")
	if err != nil {
		return argError(err)
	}

	res, err := b.store.GrantXP(ctx, amount, reason)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return "ERROR: Player profile not found."
		}
		return fmt.Sprintf("ERROR: Failed to grant XP - %v", err)
	}

	msg := fmt.Sprintf("XP Gained: %d. Total XP: %d.", amount, res.NewXP)
	if res.LeveledUp {
		msg += fmt.Sprintf(" LEVEL UP! You are now Level %d!", res.NewLevel)
	}
	if res.JobChangeAvailable {
		msg += " JOB CHANGE QUEST AVAILABLE: 'The Necromancer's Path'."
	}
	return msg
}

func (b *Bridge) unlockSkill(ctx context.Context, args map[string]any) string {
	name, err := stringArg(args, "skill_name")
	if err != nil {
		return argError(err)
	}
	reason, err := stringArg(args, "reason")
	if err != nil {
		return argError(err)
	}

	if err := b.store.UnlockSkill(ctx, name, reason); err != nil {
		if errors.Is(err, store.ErrSkillNotFound) {
			return fmt.Sprintf("ERROR: Skill '%s' not found.", name)
		}
		return fmt.Sprintf("ERROR: Failed to unlock skill - %v", err)
	}
	return fmt.Sprintf("SUCCESS: Skill '%s' UNLOCKED! (%s)", name, reason)
}

func (b *Bridge) arise(ctx context.Context, args map[string]any) string {
	problem, err := stringArg(args, "problem_description")
	if err != nil {
		return argError(err)
	}

	bundle, err := b.store.Arise(ctx, problem)
	if err != nil {
		if store.IsPrecondition(err) {
			return fmt.Sprintf("FAILURE: %v", err)
		}
		return fmt.Sprintf("ERROR: Arise failed - %v", err)
	}
	return renderAriseBundle(bundle)
}

// renderAriseBundle formats the context bundle as the directive text
// forwarded into the high-effort reasoning request.
func renderAriseBundle(b *store.AriseBundle) string {
	var feats strings.Builder
	for _, f := range b.Feats {
		fmt.Fprintf(&feats, "- %s: %s\n", f.Title, f.Description)
	}

	return fmt.Sprintf(
		"SUCCESS: %d XP Deducted. SHADOW SOVEREIGN SUMMONED.\n"+
			"[SYSTEM DIRECTIVE]: You are the Shadow Monarch. The user calls upon you.\n\n"+
			"**USER CONTEXT (Past Feats)**:\n%s\n"+
			"**CURRENT PROBLEM**:\n%s\n\n"+
			"**COMMAND**: Provide a solution that aligns with their past trajectory. Code-complete. Dominant tone.",
		b.XPSpent, feats.String(), b.Problem)
}

func argError(err error) string {
	return fmt.Sprintf("ERROR: Invalid arguments - %v", err)
}

// stringArg extracts a required non-empty string argument.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing argument %q", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("argument %q must be a non-empty string", key)
	}
	return s, nil
}

// intArg extracts a required integer argument. JSON decoding hands
// numbers over as float64.
func intArg(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", key)
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("argument %q must be an integer", key)
	}
}
