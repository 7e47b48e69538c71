// Package observability provides formatted terminal output for player
// status and quest displays.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ayoub/shadow-system/internal/store"
)

// boxWidth is the default width for formatted output boxes.
const boxWidth = 60

// Printer handles formatted status output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStatus outputs the player profile and attribute table.
func (p *Printer) PrintStatus(profile *store.Profile, stats []store.Stat) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Class:  %s\n", profile.JobClass))
	sb.WriteString(fmt.Sprintf("Level:  %d\n", profile.Level))
	sb.WriteString(fmt.Sprintf("XP:     %d / %d\n", profile.XP, profile.Level*1000))
	if profile.InDungeon {
		sb.WriteString("STATE:  ⚠️ DUNGEON ACTIVE\n")
	}
	sb.WriteString("\n")
	for _, st := range stats {
		sb.WriteString(fmt.Sprintf("%-14s %d\n", st.Name, st.Value))
	}

	p.printBox("SHADOW SYSTEM — PLAYER STATUS", sb.String())
}

// PrintQuest outputs the active quest, if any.
func (p *Printer) PrintQuest(q *store.Quest) {
	if q == nil {
		p.printBox("ACTIVE QUEST", "None. The System is watching.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", q.Title))
	sb.WriteString(fmt.Sprintf("Rank:     %s\n", q.Difficulty))
	sb.WriteString(fmt.Sprintf("Reward:   +%d %s\n", q.RewardValue, q.RewardStat))
	sb.WriteString(fmt.Sprintf("Deadline: %s\n", q.Deadline.Format("2006-01-02 15:04")))
	sb.WriteString("\n")
	sb.WriteString(q.Description)

	p.printBox("ACTIVE QUEST", sb.String())
}

// PrintSkills outputs the skill tree with unlock markers.
func (p *Printer) PrintSkills(skills []store.Skill) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	for _, sk := range skills {
		marker := "🔒"
		if sk.Unlocked {
			marker = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, sk.Name))
	}

	p.printBox("SKILL TREE", sb.String())
}

// RenderHUD produces the plain-text HUD artifact content.
func RenderHUD(profile *store.Profile, stats []store.Stat) string {
	var sb strings.Builder
	sb.WriteString("SHADOW SYSTEM HUD\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n")
	sb.WriteString(fmt.Sprintf("Class  : %s\n", profile.JobClass))
	sb.WriteString(fmt.Sprintf("Level  : %d\n", profile.Level))
	sb.WriteString(fmt.Sprintf("XP     : %d / %d\n", profile.XP, profile.Level*1000))
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	for _, st := range stats {
		sb.WriteString(fmt.Sprintf("%-14s %d\n", st.Name, st.Value))
	}
	if profile.InDungeon {
		sb.WriteString(strings.Repeat("-", 40) + "\n")
		sb.WriteString("!! INSIDE DUNGEON !!\n")
	}
	return sb.String()
}
