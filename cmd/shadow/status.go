package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayoub/shadow-system/internal/observability"
	"github.com/ayoub/shadow-system/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the player status window",
	Long:  "Prints the player profile, attribute table, active quest and skill tree, and refreshes the HUD artifact.",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRuntime(false)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Profile(ctx)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return fmt.Errorf("no player found. Run 'shadow onboard' first")
		}
		return err
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		return err
	}

	quest, err := st.ActiveQuest(ctx)
	if err != nil {
		return err
	}

	skills, err := st.Skills(ctx)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintStatus(profile, stats)
	printer.PrintQuest(quest)
	printer.PrintSkills(skills)

	writer, err := newArtifactWriter(cfg)
	if err != nil {
		return err
	}
	if err := writer.WriteHUD(observability.RenderHUD(profile, stats)); err != nil {
		fmt.Printf("Warning: failed to write HUD artifact: %v\n", err)
	}

	return nil
}
