package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/onboarding"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Run the Sovereign's onboarding interview",
	Long:  "Runs the three-question interview interactively and seeds the database with the resulting genesis profile, roadmap and initial quests.",
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(_ *cobra.Command, _ []string) error {
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

	interviewer := onboarding.NewInterviewer(st, orch, orch)

	fmt.Println("--- SHADOW SYSTEM: GENESIS PROTOCOL ---")
	fmt.Println("The Sovereign will ask you three questions. Answer honestly.")
	fmt.Println("(Type 'quit' to abort.)")
	fmt.Println()

	var history []llm.Turn
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if strings.EqualFold(message, "quit") {
			fmt.Println("Genesis aborted.")
			return nil
		}

		result, err := interviewer.ProcessTurn(ctx, history, message)
		if err != nil {
			return fmt.Errorf("onboarding failed: %w", err)
		}

		fmt.Printf("\nSystem: %s\n\n", result.Reply)

		if result.GenesisSeeded {
			fmt.Println("✅ GENESIS COMPLETE. Run 'shadow status' to view your profile.")
			return nil
		}

		history = append(history,
			llm.Turn{Role: llm.RoleUser, Content: message},
			llm.Turn{Role: llm.RoleModel, Content: result.Reply},
		)
	}

	return nil
}
