package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"codesnap/pkg/config"
	snaperrors "codesnap/pkg/errors"
	"codesnap/pkg/highlight"
)

var asciiFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

// ASCII renders the code payload as plain text inside a rounded box frame,
// with an optional breadcrumbs row and optional line numbers.
func ASCII(cfg *config.SnapshotConfig) (string, error) {
	c := cfg.Content.Code
	if c == nil {
		return "", snaperrors.NewValidationError("content", "ascii snapshots need code content", nil)
	}

	code := highlight.PrepareCode(c.Content)
	lines := strings.Split(code, "\n")

	widest := 0
	for _, l := range lines {
		widest = max(widest, runewidth.StringWidth(l))
	}
	frameWidth := max(widest, runewidth.StringWidth(c.FilePath)) + 2

	numberWidth := 0
	if c.StartLineNumber != nil {
		numberWidth = len(fmt.Sprint(*c.StartLineNumber + len(lines) - 1))
		frameWidth += 2 + numberWidth
	}

	var rows []string
	if cfg.CodeConfig.Breadcrumbs.Enable && c.FilePath != "" {
		rows = append(rows,
			" "+runewidth.FillRight(c.FilePath, frameWidth-1),
			strings.Repeat("─", frameWidth),
		)
	}
	for i, l := range lines {
		if c.StartLineNumber != nil {
			l = fmt.Sprintf("%*d %s", numberWidth, *c.StartLineNumber+i, l)
		}
		rows = append(rows, " "+runewidth.FillRight(l, frameWidth-2)+" ")
	}

	return asciiFrame.Render(strings.Join(rows, "\n")), nil
}

// SaveASCII writes an ASCII snapshot to path and returns the path written.
// A directory gets a timestamped .txt file.
func SaveASCII(content, path string) (string, error) {
	resolved, err := ResolveSavePath(path, ".txt", time.Now())
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".png", ".svg":
		return "", snaperrors.NewValidationError("output", "ascii snapshots are saved as text", nil)
	}

	if err := os.WriteFile(resolved, []byte(content+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("save ascii snapshot: %w", err)
	}
	return resolved, nil
}
