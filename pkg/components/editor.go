package components

import (
	"image/color"
	"strings"

	snapcolor "codesnap/pkg/color"
	"codesnap/pkg/edges"
	"codesnap/pkg/layout"
	"codesnap/pkg/render"
	"codesnap/pkg/text"
)

const controlButtonRadius = 6.0

var controlButtonColors = []color.Color{
	color.NRGBA{R: 255, G: 94, B: 87, A: 255},
	color.NRGBA{R: 255, G: 186, B: 46, A: 255},
	color.NRGBA{R: 43, G: 200, B: 65, A: 255},
}

func parseColor(hex string) (color.NRGBA, error) {
	return snapcolor.ParseHex(hex)
}

// MacTitleBar draws the three window control buttons.
type MacTitleBar struct {
	layout.Base
	Visible bool
}

func NewMacTitleBar(visible bool) *MacTitleBar {
	return &MacTitleBar{Visible: visible}
}

func (m *MacTitleBar) Name() string {
	return "MacTitleBar"
}

func (m *MacTitleBar) RenderCondition(ctx *layout.Context) bool {
	return m.Visible
}

func (m *MacTitleBar) Style(ctx *layout.Context) layout.RawStyle {
	diameter := controlButtonRadius * 2
	return layout.DefaultStyle().
		WithSize(diameter+2*25, diameter).
		WithMargin(edges.Margin{Bottom: 10})
}

func (m *MacTitleBar) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	const gap = 4.0
	cx := params.X + controlButtonRadius
	cy := params.Y + controlButtonRadius
	for i, c := range controlButtonColors {
		r.FillCircle(cx+float64(i)*(controlButtonRadius*2+gap), cy, controlButtonRadius, c)
	}
	return nil
}

var titleMetrics = text.Metrics{FontSize: 10, LineHeight: 12}

// Title draws the window title centred across the whole canvas.
type Title struct {
	layout.Base
	Text   string
	Family string
	Color  string
}

func NewTitle(title, family, color string) *Title {
	return &Title{Text: title, Family: family, Color: color}
}

func (t *Title) RenderCondition(ctx *layout.Context) bool {
	return t.Text != ""
}

func (t *Title) Style(ctx *layout.Context) layout.RawStyle {
	return layout.DefaultStyle().
		WithSize(6*float64(len(t.Text)), 12).
		WithMargin(edges.Margin{Bottom: 2})
}

func (t *Title) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	c, err := parseColor(t.Color)
	if err != nil {
		return err
	}
	canvasWidth := float64(r.Width()) / ctx.ScaleFactor
	return ctx.Fonts.DrawLine(r.Context(), 0, params.Y, canvasWidth, titleMetrics, text.Span{
		Text:   t.Text,
		Color:  c,
		Bold:   true,
		Family: t.Family,
	}, text.AlignCenter)
}

var breadcrumbsMetrics = text.Metrics{FontSize: 12, LineHeight: 15}

// Breadcrumbs shows the file path above the code.
type Breadcrumbs struct {
	layout.Base
	Path    string
	Enabled bool
	Family  string
	Color   string
}

// NewBreadcrumbs renders path with "/" replaced by separator.
func NewBreadcrumbs(path string, enabled bool, separator, family, color string) *Breadcrumbs {
	if separator != "" && separator != "/" {
		path = strings.ReplaceAll(path, "/", separator)
	}
	return &Breadcrumbs{Path: path, Enabled: enabled, Family: family, Color: color}
}

func (b *Breadcrumbs) RenderCondition(ctx *layout.Context) bool {
	return b.Enabled && b.Path != ""
}

func (b *Breadcrumbs) Style(ctx *layout.Context) layout.RawStyle {
	w, h := ctx.Fonts.MeasureText(breadcrumbsMetrics, b.Family, b.Path)
	return layout.DefaultStyle().WithSize(w, h)
}

func (b *Breadcrumbs) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	c, err := parseColor(b.Color)
	if err != nil {
		return err
	}
	return ctx.Fonts.DrawText(r.Context(), params.X, params.Y, breadcrumbsMetrics, []text.Span{{
		Text:   b.Path,
		Color:  c,
		Family: b.Family,
	}})
}
