package main

import (
	"github.com/spf13/cobra"
)

type snapOptions struct {
	ConfigPath string
	Output     string
	Type       string
	LogLevel   string
	Verbose    bool
	AssetsDir  string

	FromFile string
	FromCode string
	Execute  []string
	Skip     bool
	Range    string
	Language string
	FilePath string

	Theme          string
	CodeFontFamily string
	ThemesFolders  []string
	FontsFolders   []string

	HasBreadcrumbs        bool
	BreadcrumbsSeparator  string
	BreadcrumbsFontFamily string
	BreadcrumbsColor      string

	HasLineNumber   bool
	StartLineNumber int
	LineNumberColor string

	HighlightRange         string
	RelativeHighlightRange bool
	HighlightColor         string
	RawHighlightLines      string
	DeleteLines            []string
	DeleteLineColor        string
	AddLines               []string
	AddLineColor           string

	Watermark           string
	WatermarkFontFamily string
	WatermarkColor      string

	ShadowRadius    float64
	ShadowColor     string
	MacWindowBar    bool
	HasBorder       bool
	BorderColor     string
	MarginX         float64
	MarginY         float64
	Title           string
	TitleFontFamily string
	TitleColor      string
	ScaleFactor     int
	Background      string
}

// flagSet reports whether a flag was given on the command line.
type flagSet func(name string) bool

func newRootCmd() *cobra.Command {
	opts := &snapOptions{}

	cmd := &cobra.Command{
		Use:           "codesnap",
		Short:         "Generate beautiful snapshots of code and terminal output",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, opts, cmd.Flags().Changed)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.ConfigPath, "config", "", "Path to a YAML or JSON snapshot config")
	f.StringVarP(&opts.Output, "output", "o", "", "Output path (.png, .svg, or a directory); ascii snapshots print to stdout when empty")
	f.StringVar(&opts.Type, "type", "image", "Snapshot type: image or ascii")
	f.StringVar(&opts.AssetsDir, "assets-dir", "", "Cache folder for remote themes and fonts (default ~/.config/CodeSnap/remote_themes)")

	f.StringVarP(&opts.FromFile, "from-file", "f", "", "Path to the file to snapshot")
	f.StringVarP(&opts.FromCode, "from-code", "c", "", `Code snippet to snapshot, "-" reads stdin`)
	f.StringArrayVarP(&opts.Execute, "execute", "e", nil, "Run a command and snapshot its output (repeatable)")
	f.BoolVar(&opts.Skip, "skip", false, "Do not run --execute commands, only show them")
	f.StringVar(&opts.Range, "range", "", `Lines to show, e.g. "3:5", "3:", ":5"`)
	f.StringVarP(&opts.Language, "language", "l", "", "Language of the snippet")
	f.StringVar(&opts.FilePath, "file-path", "", "File path used for language detection and breadcrumbs")

	f.StringVar(&opts.Theme, "code-theme", "", `Syntax theme name, or "name@https://..." to download one`)
	f.StringVar(&opts.CodeFontFamily, "code-font-family", "", "Font family of the code")
	f.StringArrayVar(&opts.ThemesFolders, "themes-folder", nil, "Extra folder of chroma XML themes (repeatable)")
	f.StringArrayVar(&opts.FontsFolders, "fonts-folder", nil, "Extra folder of TTF fonts (repeatable)")

	f.BoolVar(&opts.HasBreadcrumbs, "has-breadcrumbs", false, "Show the file path above the code")
	f.StringVar(&opts.BreadcrumbsSeparator, "breadcrumbs-separator", "", "Separator between breadcrumb path segments")
	f.StringVar(&opts.BreadcrumbsFontFamily, "breadcrumbs-font-family", "", "Breadcrumbs font family")
	f.StringVar(&opts.BreadcrumbsColor, "breadcrumbs-color", "", "Breadcrumbs colour")

	f.BoolVar(&opts.HasLineNumber, "has-line-number", false, "Show line numbers")
	f.IntVar(&opts.StartLineNumber, "start-line-number", 1, "First line number")
	f.StringVar(&opts.LineNumberColor, "line-number-color", "", "Line number colour")

	f.StringVar(&opts.HighlightRange, "highlight-range", "", `Lines to highlight, e.g. "3:5"`)
	f.BoolVar(&opts.RelativeHighlightRange, "relative-highlight-range", false, "Count --highlight-range from the first shown line")
	f.StringVar(&opts.HighlightColor, "highlight-color", "#ffffff10", "Colour of --highlight-range")
	f.StringVar(&opts.RawHighlightLines, "raw-highlight-lines", "", `Highlight list, e.g. '[[1, "#ff000030"], [3, 5, "#00ff0030"]]'`)
	f.StringArrayVarP(&opts.DeleteLines, "delete-line", "d", nil, "Mark a line range as deleted (repeatable)")
	f.StringVar(&opts.DeleteLineColor, "delete-line-color", "#ff6b6b30", "Colour of deleted lines")
	f.StringArrayVarP(&opts.AddLines, "add-line", "a", nil, "Mark a line range as added (repeatable)")
	f.StringVar(&opts.AddLineColor, "add-line-color", "#2ecc7130", "Colour of added lines")

	f.StringVarP(&opts.Watermark, "watermark", "w", "", "Watermark text")
	f.StringVar(&opts.WatermarkFontFamily, "watermark-font-family", "", "Watermark font family")
	f.StringVar(&opts.WatermarkColor, "watermark-color", "", "Watermark colour")

	f.Float64Var(&opts.ShadowRadius, "shadow-radius", 0, "Window shadow blur radius")
	f.StringVar(&opts.ShadowColor, "shadow-color", "", "Window shadow colour")
	f.BoolVar(&opts.MacWindowBar, "mac-window-bar", true, "Show macOS window buttons")
	f.BoolVar(&opts.HasBorder, "has-border", true, "Draw the window border")
	f.StringVar(&opts.BorderColor, "border-color", "", "Window border colour")
	f.Float64Var(&opts.MarginX, "margin-x", 0, "Horizontal background margin")
	f.Float64Var(&opts.MarginY, "margin-y", 0, "Vertical background margin")
	f.StringVar(&opts.Title, "title", "", "Window title")
	f.StringVar(&opts.TitleFontFamily, "title-font-family", "", "Title font family")
	f.StringVar(&opts.TitleColor, "title-color", "", "Title colour")
	f.IntVar(&opts.ScaleFactor, "scale-factor", 3, "Pixels per logical unit")
	f.StringVar(&opts.Background, "background", "", "Background hex colour or preset name")

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Shorthand for --log-level debug")

	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
