package highlight

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	snaperrors "codesnap/pkg/errors"
)

func TestPrepareCode(t *testing.T) {
	got := PrepareCode("func main() {\n\treturn\n}\n\n")
	want := "func main() {\n    return\n}"
	if got != want {
		t.Errorf("PrepareCode = %q, want %q", got, want)
	}
}

func TestHighlightPreservesText(t *testing.T) {
	h, err := NewHighlighter()
	if err != nil {
		t.Fatalf("NewHighlighter: %v", err)
	}
	theme, err := h.Theme("onedark")
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}

	code := "package main\n\nfunc main() {\n    println(\"hi\")\n}"
	spans, err := h.Highlight(code, "go", "", theme, "Go Mono")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}

	var b strings.Builder
	colours := map[string]bool{}
	for _, s := range spans {
		b.WriteString(s.Text)
		r, g, bl, _ := s.Color.RGBA()
		colours[string([]byte{byte(r >> 8), byte(g >> 8), byte(bl >> 8)})] = true
		if s.Family != "Go Mono" {
			t.Errorf("span family = %q, want Go Mono", s.Family)
		}
	}
	if b.String() != code {
		t.Errorf("concatenated spans = %q, want input code", b.String())
	}
	if len(colours) < 2 {
		t.Errorf("expected several token colours, got %d", len(colours))
	}
}

func TestLexerSelection(t *testing.T) {
	h, _ := NewHighlighter()

	tests := []struct {
		name, language, path, want string
	}{
		{"language hint", "rust", "", "Rust"},
		{"file name", "", "src/main.py", "Python"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Lexer(tt.language, tt.path, "").Config().Name
			if got != tt.want {
				t.Errorf("lexer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnknownLanguageStillTokenises(t *testing.T) {
	h, _ := NewHighlighter()
	theme, _ := h.Theme("onedark")

	spans, err := h.Highlight("some text", "no-such-language", "", theme, "")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if len(spans) == 0 {
		t.Error("expected spans from the fallback lexer")
	}
}

func TestMissingTheme(t *testing.T) {
	h, _ := NewHighlighter()
	_, err := h.Theme("definitely-not-a-theme")

	var resErr *snaperrors.ResourceError
	if !errors.As(err, &resErr) || resErr.Kind != snaperrors.ResourceTheme {
		t.Fatalf("expected theme ResourceError, got %v", err)
	}
}

func TestMissingThemeFolder(t *testing.T) {
	_, err := NewHighlighter("/no/such/themes")
	var resErr *snaperrors.ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected ResourceError, got %v", err)
	}
}

func TestThemeFolderLoadsXMLStyles(t *testing.T) {
	dir := t.TempDir()
	xml := `<style name="paper">
  <entry type="Background" style="bg:#fafafa #111111"/>
  <entry type="Keyword" style="bold #aa0000"/>
</style>`
	if err := os.WriteFile(filepath.Join(dir, "paper.xml"), []byte(xml), 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := NewHighlighter(dir)
	if err != nil {
		t.Fatalf("NewHighlighter: %v", err)
	}
	theme, err := h.Theme("paper")
	if err != nil {
		t.Fatalf("Theme: %v", err)
	}
	if got := theme.Background(); got != "#fafafa" {
		t.Errorf("background = %q, want #fafafa", got)
	}
}
