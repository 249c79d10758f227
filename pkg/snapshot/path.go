package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResolveSavePath expands "~" and "$HOME" and, when path names an existing
// directory, appends a timestamped file name like
// CodeSnap_2024-01-02_at_15:04:05.png with the given extension.
func ResolveSavePath(path, ext string, now time.Time) (string, error) {
	if strings.Contains(path, "~") || strings.Contains(path, "$HOME") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand home: %w", err)
		}
		path = strings.ReplaceAll(path, "$HOME", home)
		path = strings.ReplaceAll(path, "~", home)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, TimestampedName(now, ext)), nil
	}
	return path, nil
}

// TimestampedName is the file name used when saving into a directory.
func TimestampedName(now time.Time, ext string) string {
	return "CodeSnap_" + now.Format("2006-01-02_at_15:04:05") + ext
}
