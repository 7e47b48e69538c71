// Package audit implements the nightly audit policy: one conversational
// exchange that lets the reasoning service drive stat, XP and skill
// mutations through the tool bridge before delivering a verdict.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ayoub/shadow-system/internal/llm"
	"github.com/ayoub/shadow-system/internal/prompts"
)

// Converser is the orchestrator's conversational surface.
type Converser interface {
	Converse(ctx context.Context, req llm.ConverseRequest) (string, error)
}

// ArtifactWriter persists the verdict artifact document.
type ArtifactWriter interface {
	WriteVerdict(content string) error
}

// Auditor runs the nightly audit policy.
type Auditor struct {
	conv      Converser
	tools     []llm.ToolDef
	runner    llm.ToolRunner
	artifacts ArtifactWriter

	// now is swappable in tests.
	now func() time.Time
}

// NewAuditor wires the policy to the orchestrator and the tool bridge.
func NewAuditor(conv Converser, tools []llm.ToolDef, runner llm.ToolRunner, artifacts ArtifactWriter) *Auditor {
	return &Auditor{conv: conv, tools: tools, runner: runner, artifacts: artifacts, now: time.Now}
}

// Run audits a day's activity log. Directives emitted by the backend are
// executed in order before the verdict text is taken; the verdict is
// persisted as an artifact. Unrecoverable failures come back as a
// structured error string so the interactive caller always completes.
func (a *Auditor) Run(ctx context.Context, logs []string, proof *llm.Attachment) string {
	fmt.Println("--- SYSTEM: INITIATING NIGHTLY AUDIT ---")

	content := prompts.Format(prompts.MustGet("audit.json", "audit-request"), map[string]string{
		"Logs": strings.Join(logs, "; "),
	})
	if proof != nil {
		fmt.Println("--- 👁️ VISION: ANALYZING PROOF ---")
		content += "\n" + prompts.MustGet("audit.json", "proof-note")
	}

	verdict, err := a.conv.Converse(ctx, llm.ConverseRequest{
		System:     prompts.MustGet("audit.json", "sovereign-system"),
		Turns:      []llm.Turn{{Role: llm.RoleUser, Content: content}},
		Tools:      a.tools,
		Runner:     a.runner,
		Attachment: proof,
	})
	if err != nil {
		return fmt.Sprintf("SYSTEM ERROR: Audit failed. Reason: %v", err)
	}

	artifact := renderVerdict(verdict, a.now())
	if err := a.artifacts.WriteVerdict(artifact); err != nil {
		return fmt.Sprintf("SYSTEM ERROR: Failed to save verdict. Reason: %v", err)
	}
	return verdict
}

func renderVerdict(verdict string, ts time.Time) string {
	return fmt.Sprintf(`# 🌑 Shadow Sovereign Verdict
**Date**: %s

## Daily Analysis
%s

---
*System generated by the Shadow Sovereign*
`, ts.Format("2006-01-02 15:04:05"), verdict)
}
