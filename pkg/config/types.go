package config

// SnapshotConfig is the fully resolved input for one snapshot render.
type SnapshotConfig struct {
	Window              Window              `yaml:"window"`
	CommandOutputConfig CommandOutputConfig `yaml:"command_output_config"`
	CodeConfig          CodeConfig          `yaml:"code_config"`
	Watermark           *Watermark          `yaml:"watermark,omitempty"`
	Content             Content             `yaml:"content"`
	ScaleFactor         int                 `yaml:"scale_factor" validate:"gte=1"`
	ThemesFolders       []string            `yaml:"themes_folders,omitempty"`
	FontsFolders        []string            `yaml:"fonts_folders,omitempty"`
	Theme               string              `yaml:"theme" validate:"required"`
	Background          Background          `yaml:"background"`
	LineNumberColor     string              `yaml:"line_number_color" validate:"rgba_hex"`
	Title               string              `yaml:"title,omitempty"`
}

// Window describes the chrome drawn around the content.
type Window struct {
	Margin       Margin      `yaml:"margin"`
	TitleConfig  TitleConfig `yaml:"title_config"`
	Border       Border      `yaml:"border"`
	MacWindowBar bool        `yaml:"mac_window_bar"`
	Shadow       Shadow      `yaml:"shadow"`
}

// Margin is the background padding around the window.
type Margin struct {
	X float64 `yaml:"x" validate:"gte=0"`
	Y float64 `yaml:"y" validate:"gte=0"`
}

type TitleConfig struct {
	FontFamily string `yaml:"font_family"`
	Color      string `yaml:"color" validate:"rgba_hex"`
}

type Border struct {
	Color string  `yaml:"color" validate:"rgba_hex"`
	Width float64 `yaml:"width" validate:"gte=0"`
}

type Shadow struct {
	Radius float64 `yaml:"radius" validate:"gte=0"`
	Color  string  `yaml:"color" validate:"rgba_hex"`
}

// CommandOutputConfig styles the command-line payload.
type CommandOutputConfig struct {
	Prompt         string `yaml:"prompt"`
	FontFamily     string `yaml:"font_family"`
	PromptColor    string `yaml:"prompt_color" validate:"rgba_hex"`
	CommandColor   string `yaml:"command_color" validate:"rgba_hex"`
	StringArgColor string `yaml:"string_arg_color" validate:"rgba_hex"`
}

// CodeConfig styles the code payload.
type CodeConfig struct {
	FontFamily  string      `yaml:"font_family"`
	Breadcrumbs Breadcrumbs `yaml:"breadcrumbs"`
}

// Breadcrumbs shows the file path above the code when enabled.
type Breadcrumbs struct {
	Enable     bool   `yaml:"enable"`
	Separator  string `yaml:"separator"`
	FontFamily string `yaml:"font_family"`
	Color      string `yaml:"color" validate:"rgba_hex"`
}

// Watermark is a text label drawn below the window.
type Watermark struct {
	Content    string `yaml:"content"`
	FontFamily string `yaml:"font_family"`
	Color      string `yaml:"color" validate:"rgba_hex"`
}

// Content holds exactly one payload: Code, or a list of command outputs.
type Content struct {
	Code          *Code
	CommandOutput []CommandLineContent
}

// IsCode reports whether the payload is a code snippet.
func (c Content) IsCode() bool {
	return c.Code != nil
}

// Code is a code snippet with optional numbering and highlighted lines.
type Code struct {
	Content         string          `yaml:"content"`
	StartLineNumber *int            `yaml:"start_line_number,omitempty" validate:"omitempty,gte=1"`
	HighlightLines  []HighlightLine `yaml:"highlight_lines,omitempty" validate:"dive"`
	Language        string          `yaml:"language,omitempty"`
	FilePath        string          `yaml:"file_path,omitempty"`
}

// HighlightLine colours the 1-based inclusive line range [Start, End].
// A single line has Start == End.
type HighlightLine struct {
	Start int    `validate:"gte=1"`
	End   int    `validate:"gte=1"`
	Color string `validate:"rgba_hex"`
}

// CommandLineContent is one executed command and its captured output.
type CommandLineContent struct {
	FullCommand string `yaml:"full_command"`
	Content     string `yaml:"content"`
}

// Background is either a solid hex colour or a linear gradient.
type Background struct {
	Solid    string `validate:"omitempty,rgba_hex"`
	Gradient *LinearGradient
}

// IsGradient reports whether the background is a gradient.
func (b Background) IsGradient() bool {
	return b.Gradient != nil
}

type LinearGradient struct {
	Start GradientPoint  `yaml:"start"`
	End   GradientPoint  `yaml:"end"`
	Stops []GradientStop `yaml:"stops" validate:"min=2,dive"`
}

// GradientPoint is a gradient endpoint whose axes may reference the canvas edge.
type GradientPoint struct {
	X Dimension `yaml:"x"`
	Y Dimension `yaml:"y"`
}

// Dimension is a literal coordinate or the "max" canvas-edge sentinel.
type Dimension struct {
	Value float64
	Max   bool
}

// Num returns a literal Dimension.
func Num(v float64) Dimension {
	return Dimension{Value: v}
}

// MaxDimension returns the canvas-edge sentinel.
func MaxDimension() Dimension {
	return Dimension{Max: true}
}

// Resolve returns the literal value, or edge when the dimension is the sentinel.
func (d Dimension) Resolve(edge float64) float64 {
	if d.Max {
		return edge
	}
	return d.Value
}

type GradientStop struct {
	Position float64 `yaml:"position" validate:"gte=0,lte=1"`
	Color    string  `yaml:"color" validate:"rgba_hex"`
}
