package components

import (
	"fmt"

	"codesnap/pkg/color"
	"codesnap/pkg/config"
	"codesnap/pkg/edges"
	snaperrors "codesnap/pkg/errors"
	"codesnap/pkg/layout"
	"codesnap/pkg/render"
)

// Background paints the whole canvas and pads its children by the window margin.
type Background struct {
	layout.Base
	Padding edges.Padding
}

func NewBackground(padding edges.Padding, children ...layout.Component) *Background {
	return &Background{Base: layout.Base{Nodes: children}, Padding: padding}
}

// HasBackground reports whether padding leaves any canvas area to paint.
func HasBackground(padding edges.Padding) bool {
	return padding.Horizontal() != 0 || padding.Vertical() != 0
}

func (b *Background) Name() string {
	return "Background"
}

func (b *Background) Style(ctx *layout.Context) layout.RawStyle {
	return layout.DefaultStyle().WithAlign(layout.AlignColumn).WithPadding(b.Padding)
}

func (b *Background) SelfRenderCondition(ctx *layout.Context) bool {
	return HasBackground(b.Padding)
}

func (b *Background) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	if ctx.Config == nil {
		return snaperrors.NewValidationError("background", "no snapshot configuration", nil)
	}
	fill, err := canvasFill(ctx.Config.Background, float64(r.Width()), float64(r.Height()))
	if err != nil {
		return err
	}
	r.FillCanvas(fill)
	return nil
}

// canvasFill resolves bg against a canvas of w×h device pixels.
func canvasFill(bg config.Background, w, h float64) (render.Fill, error) {
	if bg.Gradient == nil {
		c, err := color.ParseHex(bg.Solid)
		if err != nil {
			return render.Fill{}, fmt.Errorf("background: %w", err)
		}
		return render.Fill{Solid: c}, nil
	}

	g := bg.Gradient
	lg := &render.LinearGradient{
		X0: g.Start.X.Resolve(w),
		Y0: g.Start.Y.Resolve(h),
		X1: g.End.X.Resolve(w),
		Y1: g.End.Y.Resolve(h),
	}
	for _, stop := range g.Stops {
		c, err := color.ParseHex(stop.Color)
		if err != nil {
			return render.Fill{}, fmt.Errorf("background stop: %w", err)
		}
		lg.Stops = append(lg.Stops, render.ColorStop{Position: stop.Position, Color: c})
	}
	return render.Fill{Gradient: lg}, nil
}
