package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/prompts"
	"github.com/ayoub/shadow-system/internal/store"
)

var ariseCmd = &cobra.Command{
	Use:   "arise [problem description]",
	Short: "Summon the Shadow Sovereign for a hard problem",
	Long:  "Spends 500 XP to summon high-effort reasoning. Requires Level 10+ and charges completed-quest feats into the request context.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runArise,
}

func init() {
	rootCmd.AddCommand(ariseCmd)
}

func runArise(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	problem := strings.Join(args, " ")

	cfg, err := loadRuntime(true)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	bundle, err := st.Arise(ctx, problem)
	if err != nil {
		if store.IsPrecondition(err) {
			fmt.Printf("FAILURE: %v\n", err)
			return nil
		}
		return fmt.Errorf("arise failed: %w", err)
	}

	fmt.Printf("⚡ %d XP deducted. SHADOW SOVEREIGN SUMMONED.\n\n", bundle.XPSpent)

	orch, err := newOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}

	answer, err := orch.Converse(ctx, llm.ConverseRequest{
		System: prompts.MustGet("audit.json", "sovereign-system"),
		Turns:  []llm.Turn{{Role: llm.RoleUser, Content: renderAriseRequest(bundle)}},
	})
	if err != nil {
		return fmt.Errorf("the Sovereign did not answer: %w", err)
	}

	fmt.Println(answer)
	return nil
}

// renderAriseRequest folds the player's feats into the high-effort
// request so the answer aligns with their trajectory.
func renderAriseRequest(b *store.AriseBundle) string {
	var feats strings.Builder
	for _, f := range b.Feats {
		fmt.Fprintf(&feats, "- %s: %s\n", f.Title, f.Description)
	}

	return fmt.Sprintf(
		"[SYSTEM DIRECTIVE]: You are the Shadow Monarch. The user calls upon you.\n\n"+
			"**USER CONTEXT (Past Feats)**:\n%s\n"+
			"**CURRENT PROBLEM**:\n%s\n\n"+
			"**COMMAND**: Provide a solution that aligns with their past trajectory. Code-complete. Dominant tone.",
		feats.String(), b.Problem)
}
