package render

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"

	snaperrors "codesnap/pkg/errors"
)

// Renderer owns the output raster and the global scale transform.
// Geometry passed to its drawing methods is in logical units.
type Renderer struct {
	context     *gg.Context
	scaleFactor float64
}

// NewRenderer allocates a width×height device-pixel raster.
func NewRenderer(width, height int, scaleFactor float64) *Renderer {
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	return &Renderer{context: gg.NewContext(width, height), scaleFactor: scaleFactor}
}

// Context returns the underlying drawing context.
func (r *Renderer) Context() *gg.Context {
	return r.context
}

// ScaleFactor returns the logical-to-device scale.
func (r *Renderer) ScaleFactor() float64 {
	return r.scaleFactor
}

// Width returns the raster width in device pixels.
func (r *Renderer) Width() int {
	return r.context.Width()
}

// Height returns the raster height in device pixels.
func (r *Renderer) Height() int {
	return r.context.Height()
}

// Image returns the rendered raster.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// EncodePNG writes the raster as PNG to w.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.context.Image())
}

func (r *Renderer) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := r.EncodePNG(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// RoundedRectPath appends a closed rounded rectangle to dc's current path.
// The radius is clamped to half the shorter side.
func RoundedRectPath(dc *gg.Context, x, y, w, h, radius float64) error {
	if math.IsNaN(w) || math.IsNaN(h) || math.IsNaN(radius) || w < 0 || h < 0 {
		return snaperrors.NewGeometryError("rounded rect", w, h, radius, "invalid dimensions")
	}

	r := math.Max(0, math.Min(radius, math.Min(w, h)/2))
	if r == 0 {
		dc.DrawRectangle(x, y, w, h)
		return nil
	}
	dc.DrawRoundedRectangle(x, y, w, h, r)
	return nil
}

// FillRoundedRect fills a rounded rectangle under the scale transform.
func (r *Renderer) FillRoundedRect(x, y, w, h, radius float64, c color.Color) error {
	dc := r.context
	dc.Push()
	defer dc.Pop()

	dc.Scale(r.scaleFactor, r.scaleFactor)
	if err := RoundedRectPath(dc, x, y, w, h, radius); err != nil {
		dc.ClearPath()
		return err
	}
	dc.SetColor(c)
	dc.Fill()
	return nil
}

// FillRect fills an axis-aligned rectangle under the scale transform.
func (r *Renderer) FillRect(x, y, w, h float64, c color.Color) {
	dc := r.context
	dc.Push()
	defer dc.Pop()

	dc.Scale(r.scaleFactor, r.scaleFactor)
	dc.DrawRectangle(x, y, w, h)
	dc.SetColor(c)
	dc.Fill()
}

// FillCircle fills a circle under the scale transform.
func (r *Renderer) FillCircle(cx, cy, radius float64, c color.Color) {
	dc := r.context
	dc.Push()
	defer dc.Pop()

	dc.Scale(r.scaleFactor, r.scaleFactor)
	dc.DrawCircle(cx, cy, radius)
	dc.SetColor(c)
	dc.Fill()
}
