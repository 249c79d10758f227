package snapshot

import (
	"fmt"
	"strings"

	"codesnap/pkg/color"
	"codesnap/pkg/components"
	"codesnap/pkg/config"
	"codesnap/pkg/edges"
	"codesnap/pkg/layout"
	"codesnap/pkg/text"
)

const (
	windowRadius   = 12.0
	windowMinWidth = 350.0
	shadowOffsetY  = 21.0
)

// windowPadding is the editor padding inside the innermost window layer.
func windowPadding(cfg *config.SnapshotConfig) edges.Padding {
	p := edges.PaddingFromValue(14)
	if !cfg.Window.MacWindowBar {
		p.Top = 12
	}
	return p
}

func backgroundPadding(cfg *config.SnapshotConfig) edges.Padding {
	return edges.PaddingFromAxes(cfg.Window.Margin.X, cfg.Window.Margin.Y)
}

// lineCount counts the lines of prepared code. Empty code has none.
func lineCount(code string) int {
	if code == "" {
		return 0
	}
	return strings.Count(code, "\n") + 1
}

// window wraps body in the bordered, shadowed editor window and places it
// on the background together with the watermark.
func window(cfg *config.SnapshotConfig, theme layout.Theme, body ...layout.Component) (*layout.Container, error) {
	editorColor, err := color.ParseHex(theme.Background())
	if err != nil {
		return nil, fmt.Errorf("theme background: %w", err)
	}
	borderColor, err := color.ParseHex(cfg.Window.Border.Color)
	if err != nil {
		return nil, fmt.Errorf("window border: %w", err)
	}
	shadowColor, err := color.ParseHex(cfg.Window.Shadow.Color)
	if err != nil {
		return nil, fmt.Errorf("window shadow: %w", err)
	}

	header := layout.NewRow(
		components.NewMacTitleBar(cfg.Window.MacWindowBar),
		components.NewTitle(cfg.Title, cfg.Window.TitleConfig.FontFamily, cfg.Window.TitleConfig.Color),
	)
	children := append([]layout.Component{header}, body...)

	rect := components.NewRectWithBorder(
		windowRadius,
		editorColor,
		windowMinWidth,
		windowPadding(cfg),
		cfg.Window.Border.Width,
		borderColor,
		children...,
	).WithShadow(0, shadowOffsetY, cfg.Window.Shadow.Radius, shadowColor)

	bgPadding := backgroundPadding(cfg)
	return layout.NewContainer(
		components.NewBackground(bgPadding,
			rect,
			components.NewWatermark(cfg.Watermark, bgPadding.Bottom),
		),
	), nil
}

// CodeTree builds the node tree for a code payload. code must already be
// prepared and spans must cover it.
func CodeTree(cfg *config.SnapshotConfig, theme layout.Theme, code string, spans []text.Span) (*layout.Container, error) {
	c := cfg.Content.Code
	if c == nil {
		return nil, fmt.Errorf("code tree: configuration has no code content")
	}
	lines := lineCount(code)

	return window(cfg, theme,
		components.NewBreadcrumbs(
			c.FilePath,
			cfg.CodeConfig.Breadcrumbs.Enable,
			cfg.CodeConfig.Breadcrumbs.Separator,
			cfg.CodeConfig.Breadcrumbs.FontFamily,
			cfg.CodeConfig.Breadcrumbs.Color,
		),
		components.NewCodeBlock(
			components.NewHighlightCodeBlock(c.HighlightLines, lines, components.LineHeight, windowPadding(cfg)),
			components.NewLineNumber(c.StartLineNumber, lines, cfg.CodeConfig.FontFamily, cfg.LineNumberColor),
			components.NewCode(code, spans, cfg.CodeConfig.FontFamily),
		),
	)
}

// CommandOutputTree builds the node tree for a list of executed commands.
func CommandOutputTree(cfg *config.SnapshotConfig, theme layout.Theme) (*layout.Container, error) {
	out := cfg.Content.CommandOutput
	if len(out) == 0 {
		return nil, fmt.Errorf("command output tree: configuration has no command output")
	}

	body := make([]layout.Component, 0, 2*len(out))
	for _, entry := range out {
		body = append(body,
			components.NewCommandLineHeader(cfg.CommandOutputConfig, entry.FullCommand),
			components.NewCommandLineOutput(entry.Content, cfg.CommandOutputConfig.FontFamily),
		)
	}
	return window(cfg, theme, body...)
}
