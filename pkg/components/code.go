package components

import (
	"fmt"
	"strings"

	"codesnap/pkg/edges"
	"codesnap/pkg/layout"
	"codesnap/pkg/render"
	"codesnap/pkg/text"
)

// LineHeight is the height of one code line.
const LineHeight = 18.0

var (
	codeMetrics       = text.Metrics{FontSize: 12.5, LineHeight: LineHeight}
	lineNumberMetrics = text.Metrics{FontSize: 12.5, LineHeight: LineHeight}
)

// CodeBlock hosts the highlight overlay, line numbers and code as a row.
// It spans its parent's width.
type CodeBlock struct {
	layout.Base
}

func NewCodeBlock(children ...layout.Component) *CodeBlock {
	return &CodeBlock{Base: layout.Base{Nodes: children}}
}

func (c *CodeBlock) Style(ctx *layout.Context) layout.RawStyle {
	return layout.DefaultStyle().WithWidth(layout.Inherit()).WithHeight(layout.Dynamic())
}

// Code draws pre-highlighted code spans.
type Code struct {
	layout.Base
	Value  string
	Spans  []text.Span
	Family string
}

// NewCode returns a Code node for value rendered as spans.
func NewCode(value string, spans []text.Span, family string) *Code {
	return &Code{Value: value, Spans: spans, Family: family}
}

func (c *Code) Name() string {
	return "Code"
}

func (c *Code) Style(ctx *layout.Context) layout.RawStyle {
	w, h := ctx.Fonts.MeasureText(codeMetrics, c.Family, c.Value)
	return layout.DefaultStyle().WithSize(w, h)
}

func (c *Code) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	return ctx.Fonts.DrawText(r.Context(), params.X, params.Y, codeMetrics, c.Spans)
}

// LineNumber draws right-aligned line numbers next to the code.
type LineNumber struct {
	layout.Base
	Lines  []string
	Family string
	Color  string
}

// NewLineNumber numbers lineCount lines from start. A nil start hides the column.
func NewLineNumber(start *int, lineCount int, family, color string) *LineNumber {
	ln := &LineNumber{Family: family, Color: color}
	if start == nil || lineCount <= 0 {
		return ln
	}

	last := *start + lineCount - 1
	digits := len(fmt.Sprint(last))
	for n := *start; n <= last; n++ {
		ln.Lines = append(ln.Lines, fmt.Sprintf("%*d", digits, n))
	}
	return ln
}

func (l *LineNumber) RenderCondition(ctx *layout.Context) bool {
	return len(l.Lines) > 0
}

func (l *LineNumber) Style(ctx *layout.Context) layout.RawStyle {
	w, _ := ctx.Fonts.MeasureText(lineNumberMetrics, l.Family, l.Lines[len(l.Lines)-1])
	return layout.DefaultStyle().
		WithSize(w, float64(len(l.Lines))*LineHeight).
		WithMargin(edges.Margin{Right: 10})
}

func (l *LineNumber) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	c, err := parseColor(l.Color)
	if err != nil {
		return err
	}
	return ctx.Fonts.DrawText(r.Context(), params.X, params.Y, lineNumberMetrics, []text.Span{{
		Text:   strings.Join(l.Lines, "\n"),
		Color:  c,
		Family: l.Family,
	}})
}
