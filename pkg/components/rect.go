package components

import (
	"image/color"

	"codesnap/pkg/edges"
	"codesnap/pkg/layout"
	"codesnap/pkg/render"
)

// Layer names of a bordered rect, outermost first.
const (
	RectUnderLayer  = "RectUnderLayer"
	RectBorderLayer = "RectBorderLayer"
	RectInnerLayer  = "RectInnerLayer"
)

// Rect is a filled rounded rectangle laid out as a column around its children.
type Rect struct {
	layout.Base
	Radius   float64
	MinWidth float64
	Padding  edges.Padding
	Color    color.Color
	Shadow   *render.Shadow
	name     string
}

// NewRect returns a Rect. An empty name makes it a stub.
func NewRect(radius float64, c color.Color, minWidth float64, padding edges.Padding, name string, children ...layout.Component) *Rect {
	if name == "" {
		name = layout.StubName
	}
	return &Rect{
		Base:     layout.Base{Nodes: children},
		Radius:   radius,
		MinWidth: minWidth,
		Padding:  padding,
		Color:    c,
		name:     name,
	}
}

// NewRectWithBorder nests three rects so the middle layer shows as a
// border of borderWidth on every side; children go in the innermost layer.
//
//	under  (radius r,      min carries 2×bw, padding bw, content colour)
//	border (radius r-bw,   min carries bw,   padding bw, border colour)
//	inner  (radius r-2×bw, min minWidth,     real padding, content colour)
func NewRectWithBorder(radius float64, c color.Color, minWidth float64, padding edges.Padding, borderWidth float64, borderColor color.Color, children ...layout.Component) *Rect {
	inner := NewRect(radius-2*borderWidth, c, minWidth, padding, RectInnerLayer, children...)
	border := NewRect(radius-borderWidth, borderColor, minWidth+borderWidth, edges.PaddingFromValue(borderWidth), RectBorderLayer, inner)
	return NewRect(radius, c, minWidth+2*borderWidth, edges.PaddingFromValue(borderWidth), RectUnderLayer, border)
}

// WithShadow attaches a drop shadow drawn beneath the rect.
func (r *Rect) WithShadow(offsetX, offsetY, blur float64, c color.Color) *Rect {
	r.Shadow = &render.Shadow{OffsetX: offsetX, OffsetY: offsetY, Blur: blur, Color: c}
	return r
}

func (r *Rect) Name() string {
	return r.name
}

func (r *Rect) Style(ctx *layout.Context) layout.RawStyle {
	return layout.DefaultStyle().
		WithMinWidth(r.MinWidth).
		WithAlign(layout.AlignColumn).
		WithPadding(r.Padding)
}

func (r *Rect) DrawSelf(rd *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	if r.Shadow != nil {
		bg := backgroundPadding(ctx)
		if err := rd.DrawShadow(params.X, params.Y, style.Width, style.Height, bg.Horizontal(), bg.Vertical(), *r.Shadow); err != nil {
			return err
		}
	}
	return rd.FillRoundedRect(params.X, params.Y, style.Width, style.Height, r.Radius, r.Color)
}

// backgroundPadding is the window margin expressed as padding.
func backgroundPadding(ctx *layout.Context) edges.Padding {
	if ctx.Config == nil {
		return edges.Padding{}
	}
	m := ctx.Config.Window.Margin
	return edges.PaddingFromAxes(m.X, m.Y)
}
