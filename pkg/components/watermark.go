package components

import (
	"codesnap/pkg/config"
	"codesnap/pkg/edges"
	"codesnap/pkg/layout"
	"codesnap/pkg/render"
	"codesnap/pkg/text"
)

var watermarkMetrics = text.Metrics{FontSize: 20, LineHeight: 20}

// Watermark draws a centred label below the window.
type Watermark struct {
	layout.Base
	Config *config.Watermark
}

// NewWatermark hides the label when wm is nil, empty, or the bottom
// background padding is too small to hold it.
func NewWatermark(wm *config.Watermark, bottomPadding float64) *Watermark {
	if wm == nil || wm.Content == "" || bottomPadding < config.DefaultWindowMargin {
		return &Watermark{}
	}
	return &Watermark{Config: wm}
}

func (w *Watermark) Name() string {
	return "Watermark"
}

func (w *Watermark) RenderCondition(ctx *layout.Context) bool {
	return w.Config != nil
}

func (w *Watermark) Style(ctx *layout.Context) layout.RawStyle {
	return layout.DefaultStyle().WithMargin(edges.Margin{Top: 50, Bottom: 22})
}

func (w *Watermark) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	c, err := parseColor(w.Config.Color)
	if err != nil {
		return err
	}
	canvasWidth := float64(r.Width()) / ctx.ScaleFactor
	return ctx.Fonts.DrawLine(r.Context(), 0, params.Y, canvasWidth, watermarkMetrics, text.Span{
		Text:   w.Config.Content,
		Color:  c,
		Italic: true,
		Family: w.Config.FontFamily,
	}, text.AlignCenter)
}
