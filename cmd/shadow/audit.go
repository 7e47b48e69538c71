package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ayoub/shadow-system/internal/activity"
	"github.com/ayoub/shadow-system/internal/audit"
	"github.com/ayoub/shadow-system/internal/bridge"
	"github.com/ayoub/shadow-system/internal/calendar"
	"github.com/ayoub/shadow-system/internal/llm"
)

var auditProofPath string

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the nightly audit",
	Long:  "Collects today's activity log interactively, gathers calendar and coding-activity signals, and lets the Sovereign update stats, XP and skills before delivering a verdict.",
	RunE:  runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditProofPath, "proof", "", "Path to an image submitted as quest-completion proof")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(_ *cobra.Command, _ []string) error {
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

	writer, err := newArtifactWriter(cfg)
	if err != nil {
		return err
	}

	logs := collectLogs(os.Stdin)

	// External signals are best-effort context, not audit input
	// requirements.
	cal, err := calendar.New(ctx, cfg.CredentialsPath)
	if err != nil {
		fmt.Printf("Warning: calendar unavailable: %v\n", err)
		cal = nil
	}
	day := audit.CollectDayContext(ctx, cal, activity.NewClient(), cfg.GitHubUsername)
	if len(day.Events) > 0 {
		logs = append(logs, fmt.Sprintf("Calendar events today: %s", strings.Join(day.Events, ", ")))
	}
	if day.ActivityFound {
		logs = append(logs, fmt.Sprintf("Verified coding activity: %s", day.ActivitySummary))
	}

	if len(logs) == 0 {
		return fmt.Errorf("nothing to audit: no log entries provided")
	}

	proof, err := loadProof(auditProofPath)
	if err != nil {
		fmt.Printf("Warning: %v. Proceeding without proof.\n", err)
		proof = nil
	}

	auditor := audit.NewAuditor(orch, bridge.Definitions(), bridge.New(st), writer)
	verdict := auditor.Run(ctx, logs, proof)

	fmt.Println()
	fmt.Println(verdict)
	return nil
}

// collectLogs reads log entries line by line until a blank line or
// "done".
func collectLogs(in *os.File) []string {
	fmt.Println("--- NIGHTLY AUDIT: report your day ---")
	fmt.Println("Enter completed tasks one per line. Blank line or 'done' to finish.")

	var logs []string
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.EqualFold(line, "done") {
			break
		}
		logs = append(logs, line)
	}
	return logs
}

// loadProof reads an optional proof image into an attachment.
func loadProof(path string) (*llm.Attachment, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read proof image: %w", err)
	}

	mimeType := "image/jpeg"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mimeType = "image/png"
	case ".webp":
		mimeType = "image/webp"
	}

	return &llm.Attachment{MIMEType: mimeType, Data: data}, nil
}
