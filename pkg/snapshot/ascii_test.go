package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codesnap/pkg/config"
)

func TestASCIIPlain(t *testing.T) {
	cfg := config.Default()
	cfg.Content = config.Content{Code: &config.Code{Content: "a := 1\nfmt.Println(a)\n"}}

	got, err := ASCII(cfg)
	require.NoError(t, err)

	want := strings.Join([]string{
		"╭────────────────╮",
		"│ a := 1         │",
		"│ fmt.Println(a) │",
		"╰────────────────╯",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestASCIILineNumbersAndBreadcrumbs(t *testing.T) {
	start := 9
	cfg := config.Default()
	cfg.CodeConfig.Breadcrumbs.Enable = true
	cfg.Content = config.Content{Code: &config.Code{
		Content:         "x\ny",
		StartLineNumber: &start,
		FilePath:        "main.go",
	}}

	got, err := ASCII(cfg)
	require.NoError(t, err)

	want := strings.Join([]string{
		"╭─────────────╮",
		"│ main.go     │",
		"│─────────────│",
		"│  9 x        │",
		"│ 10 y        │",
		"╰─────────────╯",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestASCIIRequiresCode(t *testing.T) {
	_, err := ASCII(config.Default())
	require.Error(t, err)
}

func TestSaveASCII(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveASCII("box", filepath.Join(dir, "snap.txt"))
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "box\n", string(data))

	path, err = SaveASCII("box", dir)
	require.NoError(t, err)
	assert.Equal(t, ".txt", filepath.Ext(path))

	_, err = SaveASCII("box", filepath.Join(dir, "snap.png"))
	require.Error(t, err)
}
