package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ayoub/shadow-system/internal/artifacts"
	"github.com/ayoub/shadow-system/internal/calendar"
	"github.com/ayoub/shadow-system/internal/config"
	"github.com/ayoub/shadow-system/internal/questgen"
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Generate today's daily quest",
	Long:  "Evaluates the quest policy (dungeon lock, recovery safeguard, lowest-stat targeting), persists the quest, blocks calendar time and writes the quest artifact.",
	RunE:  runQuest,
}

func init() {
	rootCmd.AddCommand(questCmd)
}

func runQuest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRuntime(true)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	orch, err := newOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}

	cal, err := calendar.New(ctx, cfg.CredentialsPath)
	if err != nil {
		return fmt.Errorf("failed to create calendar client: %w", err)
	}

	writer, err := newArtifactWriter(cfg)
	if err != nil {
		return err
	}

	gen := questgen.NewGenerator(st, orch, cal, writer)

	// Recovery is forced by the environment signal or advised by the
	// fatigue heuristic.
	if config.RecoveryModeActive() {
		fmt.Println("🌙 RECOVERY MODE forced via environment.")
		gen.Recovery = true
	} else if advised, err := st.RecoveryAdvised(ctx); err == nil && advised {
		fmt.Println("🌙 Fatigue exceeds Vitality. RECOVERY MODE engaged.")
		gen.Recovery = true
	}

	text, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("quest generation failed: %w", err)
	}

	fmt.Println(text)
	fmt.Printf("Quest artifact written to %s\n", writer.Path(artifacts.DailyQuestFile))
	return nil
}
