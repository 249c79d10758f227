package config

const (
	DefaultScaleFactor   = 3
	DefaultWindowMargin  = 82.0
	DefaultTheme         = "onedark"
	DefaultFontFamily    = "Go Mono"
	DefaultWatermarkFont = "Go"
	DefaultLineNumber    = "#495162"
)

// Default returns a configuration with every optional field set.
// Content is left empty.
func Default() *SnapshotConfig {
	bg, _ := Preset(DefaultPreset)

	return &SnapshotConfig{
		Window: Window{
			Margin:       Margin{X: DefaultWindowMargin, Y: DefaultWindowMargin},
			TitleConfig:  TitleConfig{FontFamily: DefaultFontFamily, Color: "#aca9b2"},
			Border:       Border{Color: "#ffffff30", Width: 1},
			MacWindowBar: true,
			Shadow:       Shadow{Radius: 20, Color: "#0000004d"},
		},
		CommandOutputConfig: CommandOutputConfig{
			Prompt:         "❯",
			FontFamily:     DefaultFontFamily,
			PromptColor:    "#F78FB3",
			CommandColor:   "#98C379",
			StringArgColor: "#ff0000",
		},
		CodeConfig: CodeConfig{
			FontFamily: DefaultFontFamily,
			Breadcrumbs: Breadcrumbs{
				Separator:  "/",
				FontFamily: DefaultFontFamily,
				Color:      "#80848b",
			},
		},
		ScaleFactor:     DefaultScaleFactor,
		Theme:           DefaultTheme,
		Background:      bg,
		LineNumberColor: DefaultLineNumber,
	}
}

// applyDefaults fills fields that decoding may have cleared.
func (c *SnapshotConfig) applyDefaults() {
	def := Default()

	if c.Watermark != nil {
		if c.Watermark.FontFamily == "" {
			c.Watermark.FontFamily = DefaultWatermarkFont
		}
		if c.Watermark.Color == "" {
			c.Watermark.Color = "#ffffff"
		}
	}
	if c.Background.Solid == "" && c.Background.Gradient == nil {
		c.Background = def.Background
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.LineNumberColor == "" {
		c.LineNumberColor = def.LineNumberColor
	}
	if c.CodeConfig.FontFamily == "" {
		c.CodeConfig.FontFamily = def.CodeConfig.FontFamily
	}
	if c.CodeConfig.Breadcrumbs.Separator == "" {
		c.CodeConfig.Breadcrumbs.Separator = def.CodeConfig.Breadcrumbs.Separator
	}
	if c.CodeConfig.Breadcrumbs.Color == "" {
		c.CodeConfig.Breadcrumbs.Color = def.CodeConfig.Breadcrumbs.Color
	}
	if c.CodeConfig.Breadcrumbs.FontFamily == "" {
		c.CodeConfig.Breadcrumbs.FontFamily = def.CodeConfig.Breadcrumbs.FontFamily
	}
	if c.Window.TitleConfig.Color == "" {
		c.Window.TitleConfig.Color = def.Window.TitleConfig.Color
	}
	if c.Window.TitleConfig.FontFamily == "" {
		c.Window.TitleConfig.FontFamily = def.Window.TitleConfig.FontFamily
	}
	if c.Window.Border.Color == "" {
		c.Window.Border.Color = def.Window.Border.Color
	}
	if c.Window.Shadow.Color == "" {
		c.Window.Shadow.Color = def.Window.Shadow.Color
	}
	if c.CommandOutputConfig.FontFamily == "" {
		c.CommandOutputConfig.FontFamily = def.CommandOutputConfig.FontFamily
	}
	if c.CommandOutputConfig.PromptColor == "" {
		c.CommandOutputConfig.PromptColor = def.CommandOutputConfig.PromptColor
	}
	if c.CommandOutputConfig.CommandColor == "" {
		c.CommandOutputConfig.CommandColor = def.CommandOutputConfig.CommandColor
	}
	if c.CommandOutputConfig.StringArgColor == "" {
		c.CommandOutputConfig.StringArgColor = def.CommandOutputConfig.StringArgColor
	}
}

// HasWatermark reports whether a non-empty watermark is configured.
func (c *SnapshotConfig) HasWatermark() bool {
	return c.Watermark != nil && c.Watermark.Content != ""
}

// HasTitle reports whether a window title is configured.
func (c *SnapshotConfig) HasTitle() bool {
	return c.Title != ""
}
