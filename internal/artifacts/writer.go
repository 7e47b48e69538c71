// Package artifacts writes the plain-text documents produced by each run.
// Every artifact is overwritten in place; history lives in the audit log
// table, not on disk.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names.
const (
	DailyQuestFile = "DAILY_QUEST.md"
	VerdictFile    = "VERDICT.md"
	HUDFile        = "HUD.txt"
)

// Writer persists artifacts under a single directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteDailyQuest overwrites the quest artifact.
func (w *Writer) WriteDailyQuest(content string) error {
	return w.write(DailyQuestFile, content)
}

// WriteVerdict overwrites the verdict artifact.
func (w *Writer) WriteVerdict(content string) error {
	return w.write(VerdictFile, content)
}

// WriteHUD overwrites the HUD artifact.
func (w *Writer) WriteHUD(content string) error {
	return w.write(HUDFile, content)
}

// Path returns the absolute location of a named artifact.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

func (w *Writer) write(name, content string) error {
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", name, err)
	}
	return nil
}
