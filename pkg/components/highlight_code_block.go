package components

import (
	"fmt"

	"codesnap/pkg/color"
	"codesnap/pkg/config"
	"codesnap/pkg/edges"
	"codesnap/pkg/layout"
	"codesnap/pkg/render"
)

// HighlightCodeBlock paints translucent bands behind highlighted code lines.
// It takes no space; it must precede the code text among its siblings.
type HighlightCodeBlock struct {
	layout.Base
	Lines         []config.HighlightLine
	LineCount     int
	LineHeight    float64
	EditorPadding edges.Padding
}

func NewHighlightCodeBlock(lines []config.HighlightLine, lineCount int, lineHeight float64, editorPadding edges.Padding) *HighlightCodeBlock {
	return &HighlightCodeBlock{
		Lines:         lines,
		LineCount:     lineCount,
		LineHeight:    lineHeight,
		EditorPadding: editorPadding,
	}
}

func (h *HighlightCodeBlock) RenderCondition(ctx *layout.Context) bool {
	return len(h.Lines) > 0
}

// Band is the logical rectangle covering one highlight entry.
type Band struct {
	X, Y, Width, Height float64
}

// Bands returns the rectangles for every entry relative to a code block
// drawn at params whose parent is parent. Entries entirely past the last
// line produce no band.
func (h *HighlightCodeBlock) Bands(params layout.RenderParams, parent layout.Style) []Band {
	bands := make([]Band, 0, len(h.Lines))
	for _, line := range h.Lines {
		start, end := line.Start, line.End
		if start > end {
			start, end = end, start
		}
		if end > h.LineCount {
			end = h.LineCount
		}
		height := float64(end-start+1) * h.LineHeight
		if height <= 0 {
			bands = append(bands, Band{})
			continue
		}
		bands = append(bands, Band{
			X:      params.X - h.EditorPadding.Left,
			Y:      params.Y + float64(start-1)*h.LineHeight,
			Width:  parent.Width,
			Height: height,
		})
	}
	return bands
}

func (h *HighlightCodeBlock) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	for i, band := range h.Bands(params, parent) {
		if band.Height <= 0 {
			continue
		}
		c, err := color.ParseHex(h.Lines[i].Color)
		if err != nil {
			return fmt.Errorf("highlight line %d: %w", i, err)
		}
		r.FillRect(band.X, band.Y, band.Width, band.Height, c)
	}
	return nil
}
