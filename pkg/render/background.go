package render

import (
	"image/color"
	"sort"

	"github.com/fogleman/gg"
)

// ColorStop is one stop of a linear gradient.
type ColorStop struct {
	Position float64
	Color    color.Color
}

// LinearGradient runs between two device-pixel endpoints.
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []ColorStop
}

// Fill is either a solid colour or a linear gradient.
type Fill struct {
	Solid    color.Color
	Gradient *LinearGradient
}

func (f Fill) pattern() gg.Pattern {
	if f.Gradient != nil {
		g := gg.NewLinearGradient(f.Gradient.X0, f.Gradient.Y0, f.Gradient.X1, f.Gradient.Y1)
		for _, stop := range padStops(f.Gradient.Stops) {
			g.AddColorStop(stop.Position, stop.Color)
		}
		return g
	}
	if f.Solid == nil {
		return gg.NewSolidPattern(color.Transparent)
	}
	return gg.NewSolidPattern(f.Solid)
}

// FillCanvas paints f over the whole raster in device pixels.
// Gradients pad with their end colours beyond the stop range.
func (r *Renderer) FillCanvas(f Fill) {
	dc := r.context
	dc.Push()
	defer dc.Pop()

	dc.Identity()
	dc.SetFillStyle(f.pattern())
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()
}

// padStops repeats the outermost stop colours at 0 and 1 so the
// gradient clamps instead of extrapolating past its stop range.
func padStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return []ColorStop{{Position: 0, Color: color.Transparent}}
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	if first := sorted[0]; first.Position > 0 {
		sorted = append([]ColorStop{{Position: 0, Color: first.Color}}, sorted...)
	}
	if last := sorted[len(sorted)-1]; last.Position < 1 {
		sorted = append(sorted, ColorStop{Position: 1, Color: last.Color})
	}
	return sorted
}
