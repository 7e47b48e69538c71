// Package main provides the entry point for the Shadow System CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shadow",
	Short: "Shadow System gamified progression engine",
	Long:  "Shadow System tracks a single player's levels, stats, quests and skills, generating daily quests and nightly audits through ranked reasoning backends.",
}

var configPath string

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
