package highlight

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	snaperrors "codesnap/pkg/errors"
	"codesnap/pkg/text"
)

const tabWidth = 4

var defaultForeground = color.NRGBA{R: 0xab, G: 0xb2, B: 0xbf, A: 0xff}

// PrepareCode expands tabs and drops trailing newlines so line counts are exact.
func PrepareCode(code string) string {
	code = strings.ReplaceAll(code, "\t", strings.Repeat(" ", tabWidth))
	return strings.TrimRight(code, "\r\n")
}

// Theme wraps a chroma style.
type Theme struct {
	style *chroma.Style
}

// NewTheme wraps style.
func NewTheme(style *chroma.Style) *Theme {
	return &Theme{style: style}
}

func (t *Theme) Name() string {
	return t.style.Name
}

// Background returns the editor background as #rrggbb.
func (t *Theme) Background() string {
	bg := t.style.Get(chroma.Background).Background
	if !bg.IsSet() {
		return "#282c34"
	}
	return bg.String()
}

// Foreground returns the default text colour.
func (t *Theme) Foreground() color.NRGBA {
	fg := t.style.Get(chroma.Text).Colour
	if !fg.IsSet() {
		fg = t.style.Get(chroma.Background).Colour
	}
	if !fg.IsSet() {
		return defaultForeground
	}
	return color.NRGBA{R: fg.Red(), G: fg.Green(), B: fg.Blue(), A: 0xff}
}

// Highlighter tokenises code and maps tokens onto a theme.
type Highlighter struct {
	themes map[string]*chroma.Style
}

// NewHighlighter returns a Highlighter knowing the built-in chroma styles plus
// every .xml style found in themesFolders.
func NewHighlighter(themesFolders ...string) (*Highlighter, error) {
	h := &Highlighter{themes: make(map[string]*chroma.Style)}
	for name, style := range styles.Registry {
		h.themes[strings.ToLower(name)] = style
	}

	for _, folder := range themesFolders {
		if err := h.loadFolder(folder); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Highlighter) loadFolder(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return snaperrors.NewResourceError(snaperrors.ResourceTheme, dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := h.LoadThemeFile(path); err != nil {
			return err
		}
	}
	return nil
}

// LoadThemeFile registers a chroma XML style under its declared name and its file stem.
func (h *Highlighter) LoadThemeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return snaperrors.NewResourceError(snaperrors.ResourceTheme, path, err)
	}
	defer f.Close()

	style, err := chroma.NewXMLStyle(f)
	if err != nil {
		return snaperrors.NewResourceError(snaperrors.ResourceTheme, path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	h.themes[strings.ToLower(stem)] = style
	if style.Name != "" {
		h.themes[strings.ToLower(style.Name)] = style
	}
	return nil
}

// Theme looks up a theme by name.
func (h *Highlighter) Theme(name string) (*Theme, error) {
	style, ok := h.themes[strings.ToLower(name)]
	if !ok {
		return nil, snaperrors.NewResourceError(snaperrors.ResourceTheme, name, nil)
	}
	return NewTheme(style), nil
}

// Lexer picks a lexer from the language hint, then the file name, then the content.
func (h *Highlighter) Lexer(language, filePath, code string) chroma.Lexer {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil && filePath != "" {
		lexer = lexers.Match(filepath.Base(filePath))
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Highlight returns coloured spans for code in family.
func (h *Highlighter) Highlight(code, language, filePath string, theme *Theme, family string) ([]text.Span, error) {
	lexer := h.Lexer(language, filePath, code)
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, snaperrors.NewResourceError(snaperrors.ResourceSyntax, lexer.Config().Name, err)
	}

	fg := theme.Foreground()
	var spans []text.Span
	// Some lexers append a newline; never emit more than the input.
	remaining := len(code)
	for _, tok := range it.Tokens() {
		if remaining <= 0 {
			break
		}
		if len(tok.Value) > remaining {
			tok.Value = tok.Value[:remaining]
		}
		remaining -= len(tok.Value)
		if tok.Value == "" {
			continue
		}
		entry := theme.style.Get(tok.Type)

		var c color.Color = fg
		if entry.Colour.IsSet() {
			c = color.NRGBA{R: entry.Colour.Red(), G: entry.Colour.Green(), B: entry.Colour.Blue(), A: 0xff}
		}
		spans = append(spans, text.Span{
			Text:   tok.Value,
			Color:  c,
			Bold:   entry.Bold == chroma.Yes,
			Italic: entry.Italic == chroma.Yes,
			Family: family,
		})
	}
	return spans, nil
}

// ThemeNames lists every known theme.
func (h *Highlighter) ThemeNames() []string {
	names := make([]string, 0, len(h.themes))
	for name := range h.themes {
		names = append(names, name)
	}
	return names
}

func (t *Theme) String() string {
	return fmt.Sprintf("theme(%s)", t.Name())
}
