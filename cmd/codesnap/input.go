package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"gopkg.in/yaml.v3"

	"codesnap/pkg/config"
	snaperrors "codesnap/pkg/errors"
	"codesnap/pkg/highlight"
)

// loadBase reads the config file when given, otherwise starts from defaults.
// Content is filled in from flags afterwards, so nothing is validated yet.
func loadBase(path string) (*config.SnapshotConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, snaperrors.NewParseError(path, 0, err)
	}
	cfg, err := config.ParseUnvalidated(data)
	if err != nil {
		var perr *snaperrors.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// buildConfig layers the command-line flags over the base configuration.
func buildConfig(ctx context.Context, opts *snapOptions, set flagSet, stdin io.Reader) (*config.SnapshotConfig, error) {
	cfg, err := loadBase(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	applyWindowFlags(cfg, opts, set)
	applyStyleFlags(cfg, opts, set)

	switch {
	case len(opts.Execute) > 0:
		if opts.FromFile != "" || set("from-code") {
			return nil, snaperrors.NewValidationError("execute", "--execute cannot be combined with --from-file or --from-code", nil)
		}
		out, err := runCommands(ctx, opts.Execute, opts.Skip)
		if err != nil {
			return nil, err
		}
		cfg.Content = config.Content{CommandOutput: out}
	case opts.FromFile != "" || set("from-code"):
		code, err := buildCode(opts, set, stdin)
		if err != nil {
			return nil, err
		}
		cfg.Content = config.Content{Code: code}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyWindowFlags(cfg *config.SnapshotConfig, opts *snapOptions, set flagSet) {
	w := &cfg.Window
	if set("mac-window-bar") {
		w.MacWindowBar = opts.MacWindowBar
	}
	if set("has-border") && !opts.HasBorder {
		w.Border.Width = 0
	}
	if set("border-color") {
		w.Border.Color = opts.BorderColor
	}
	if set("shadow-radius") {
		w.Shadow.Radius = opts.ShadowRadius
	}
	if set("shadow-color") {
		w.Shadow.Color = opts.ShadowColor
	}
	if set("margin-x") {
		w.Margin.X = opts.MarginX
	}
	if set("margin-y") {
		w.Margin.Y = opts.MarginY
	}
	if set("title-font-family") {
		w.TitleConfig.FontFamily = opts.TitleFontFamily
	}
	if set("title-color") {
		w.TitleConfig.Color = opts.TitleColor
	}
	if set("title") {
		cfg.Title = opts.Title
	}
}

func applyStyleFlags(cfg *config.SnapshotConfig, opts *snapOptions, set flagSet) {
	if set("scale-factor") {
		cfg.ScaleFactor = opts.ScaleFactor
	}
	if set("code-theme") {
		cfg.Theme = opts.Theme
	}
	if set("code-font-family") {
		cfg.CodeConfig.FontFamily = opts.CodeFontFamily
	}
	if set("line-number-color") {
		cfg.LineNumberColor = opts.LineNumberColor
	}
	cfg.ThemesFolders = append(cfg.ThemesFolders, opts.ThemesFolders...)
	cfg.FontsFolders = append(cfg.FontsFolders, opts.FontsFolders...)

	if set("background") {
		if preset, ok := config.Preset(opts.Background); ok {
			cfg.Background = preset
		} else {
			cfg.Background = config.Background{Solid: opts.Background}
		}
	}

	b := &cfg.CodeConfig.Breadcrumbs
	if set("has-breadcrumbs") {
		b.Enable = opts.HasBreadcrumbs
	}
	if set("breadcrumbs-separator") {
		b.Separator = opts.BreadcrumbsSeparator
	}
	if set("breadcrumbs-font-family") {
		b.FontFamily = opts.BreadcrumbsFontFamily
	}
	if set("breadcrumbs-color") {
		b.Color = opts.BreadcrumbsColor
	}

	if set("watermark") {
		if cfg.Watermark == nil {
			cfg.Watermark = &config.Watermark{FontFamily: config.DefaultWatermarkFont, Color: "#ffffff"}
		}
		cfg.Watermark.Content = opts.Watermark
	}
	if cfg.Watermark != nil {
		if set("watermark-font-family") {
			cfg.Watermark.FontFamily = opts.WatermarkFontFamily
		}
		if set("watermark-color") {
			cfg.Watermark.Color = opts.WatermarkColor
		}
	}
}

// buildCode reads the snippet, cuts it to --range and maps the highlight flags
// onto the cut snippet.
func buildCode(opts *snapOptions, set flagSet, stdin io.Reader) (*config.Code, error) {
	source, err := readSnippet(opts, set, stdin)
	if err != nil {
		return nil, err
	}
	source = highlight.PrepareCode(source)

	snippetRange, err := config.ParseRange(opts.Range, len(strings.Split(source, "\n")))
	if err != nil {
		return nil, err
	}
	snippet := config.CutLines(source, snippetRange)

	code := &config.Code{
		Content:  snippet,
		Language: opts.Language,
		FilePath: opts.FilePath,
	}
	if code.FilePath == "" {
		code.FilePath = opts.FromFile
	}

	if opts.HasLineNumber {
		start := opts.StartLineNumber
		if !set("start-line-number") {
			start = snippetRange.Start
		}
		code.StartLineNumber = &start
	}

	if opts.RawHighlightLines != "" {
		var lines []config.HighlightLine
		if err := yaml.Unmarshal([]byte(opts.RawHighlightLines), &lines); err != nil {
			return nil, snaperrors.NewParseError("--raw-highlight-lines", 0, err)
		}
		code.HighlightLines = append(code.HighlightLines, lines...)
	}

	marks := []struct {
		ranges []string
		color  string
	}{
		{optional(opts.HighlightRange), opts.HighlightColor},
		{opts.DeleteLines, opts.DeleteLineColor},
		{opts.AddLines, opts.AddLineColor},
	}
	for _, m := range marks {
		for _, raw := range m.ranges {
			line, err := config.HighlightRange(raw, m.color, snippet, snippetRange, opts.RelativeHighlightRange)
			if err != nil {
				return nil, err
			}
			code.HighlightLines = append(code.HighlightLines, line)
		}
	}
	return code, nil
}

func optional(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func readSnippet(opts *snapOptions, set flagSet, stdin io.Reader) (string, error) {
	if opts.FromFile != "" && set("from-code") {
		return "", snaperrors.NewValidationError("from_file", "only one of --from-file or --from-code can be given", nil)
	}

	if opts.FromFile != "" {
		info, err := os.Stat(opts.FromFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", opts.FromFile, err)
		}
		if info.IsDir() {
			return "", snaperrors.NewValidationError("from_file", opts.FromFile+" is a directory", nil)
		}
		data, err := os.ReadFile(opts.FromFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", opts.FromFile, err)
		}
		return string(data), nil
	}

	if opts.FromCode == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return opts.FromCode, nil
}

// runCommands runs each command through the shell and captures its output.
// With skip set the commands are only listed.
func runCommands(ctx context.Context, commands []string, skip bool) ([]config.CommandLineContent, error) {
	out := make([]config.CommandLineContent, 0, len(commands))
	for _, command := range commands {
		entry := config.CommandLineContent{FullCommand: command}
		if !skip {
			output, err := exec.CommandContext(ctx, "sh", "-c", command).CombinedOutput()
			if err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					return nil, fmt.Errorf("run %q: %w", command, err)
				}
			}
			entry.Content = string(output)
		}
		out = append(out, entry)
	}
	return out, nil
}
