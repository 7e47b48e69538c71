package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayoub/shadow-system/internal/onboarding"
)

var awakenCmd = &cobra.Command{
	Use:   "awaken [goals]",
	Short: "Generate a job class from your stated goals",
	Long:  "Asks the System to derive a fitting job class from your goals and writes it to the player profile.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAwaken,
}

func init() {
	rootCmd.AddCommand(awakenCmd)
}

func runAwaken(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	goals := strings.Join(args, " ")

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

	jobClass, err := onboarding.Awaken(ctx, orch, st, goals)
	if err != nil {
		return err
	}

	fmt.Printf("🔥 AWAKENING COMPLETE. Your class: %s\n", jobClass)
	return nil
}
