package components

import (
	"strings"

	"codesnap/pkg/config"
	"codesnap/pkg/highlight"
	"codesnap/pkg/layout"
	"codesnap/pkg/render"
	"codesnap/pkg/text"
)

var commandLineMetrics = text.Metrics{FontSize: 12.5, LineHeight: 20}

// CommandLineHeader draws "prompt command args".
type CommandLineHeader struct {
	layout.Base
	Prompt  string
	Command string
	Args    string
	Config  config.CommandOutputConfig
}

// NewCommandLineHeader splits fullCommand into the command and its arguments.
func NewCommandLineHeader(cfg config.CommandOutputConfig, fullCommand string) *CommandLineHeader {
	h := &CommandLineHeader{Prompt: cfg.Prompt + " ", Config: cfg}
	fields := strings.Fields(fullCommand)
	if len(fields) > 0 {
		h.Command = fields[0] + " "
		h.Args = strings.Join(fields[1:], " ")
	}
	return h
}

func (h *CommandLineHeader) line() string {
	return h.Prompt + h.Command + h.Args
}

func (h *CommandLineHeader) Style(ctx *layout.Context) layout.RawStyle {
	w, ht := ctx.Fonts.MeasureText(commandLineMetrics, h.Config.FontFamily, h.line())
	return layout.DefaultStyle().WithSize(w, ht)
}

func (h *CommandLineHeader) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	promptColor, err := parseColor(h.Config.PromptColor)
	if err != nil {
		return err
	}
	commandColor, err := parseColor(h.Config.CommandColor)
	if err != nil {
		return err
	}

	family := h.Config.FontFamily
	spans := []text.Span{
		{Text: h.Prompt, Color: promptColor, Family: family},
		{Text: h.Command, Color: commandColor, Bold: true, Family: family},
		{Text: h.Args, Color: ctx.Theme.Foreground(), Family: family},
	}
	return ctx.Fonts.DrawText(r.Context(), params.X, params.Y, commandLineMetrics, spans)
}

// CommandLineOutput draws captured output, honouring ANSI colours.
// It is a stub node so each output keeps its own measured size.
type CommandLineOutput struct {
	layout.Base
	Output string
	Family string
}

func NewCommandLineOutput(output, family string) *CommandLineOutput {
	return &CommandLineOutput{Output: highlight.PrepareCode(output), Family: family}
}

func (o *CommandLineOutput) RenderCondition(ctx *layout.Context) bool {
	return o.Output != ""
}

func (o *CommandLineOutput) Style(ctx *layout.Context) layout.RawStyle {
	w, h := ctx.Fonts.MeasureText(commandLineMetrics, o.Family, highlight.StripANSI(o.Output))
	return layout.DefaultStyle().WithSize(w, h)
}

func (o *CommandLineOutput) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	return ctx.Fonts.DrawText(r.Context(), params.X, params.Y, commandLineMetrics, highlight.ParseANSI(o.Output, o.Family))
}
