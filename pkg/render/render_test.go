package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"math"
	"testing"

	snaperrors "codesnap/pkg/errors"
)

func alphaAt(r *Renderer, x, y int) uint32 {
	_, _, _, a := r.Image().At(x, y).RGBA()
	return a
}

func TestFillRoundedRectLeavesCornersEmpty(t *testing.T) {
	r := NewRenderer(100, 100, 1)
	if err := r.FillRoundedRect(0, 0, 100, 100, 20, color.White); err != nil {
		t.Fatalf("FillRoundedRect: %v", err)
	}

	if a := alphaAt(r, 1, 1); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := alphaAt(r, 50, 50); a != 0xffff {
		t.Errorf("center alpha = %d, want opaque", a)
	}
	if a := alphaAt(r, 50, 1); a == 0 {
		t.Error("top edge midpoint should be painted")
	}
}

func TestFillRoundedRectPillAtOffset(t *testing.T) {
	r := NewRenderer(100, 60, 1)
	if err := r.FillRoundedRect(10, 10, 80, 40, 20, color.White); err != nil {
		t.Fatalf("FillRoundedRect: %v", err)
	}

	for _, p := range [][2]int{{50, 11}, {50, 48}, {11, 30}, {88, 30}, {50, 30}} {
		if a := alphaAt(r, p[0], p[1]); a == 0 {
			t.Errorf("pixel %v should be painted", p)
		}
	}
	for _, p := range [][2]int{{11, 11}, {88, 11}, {11, 48}, {88, 48}, {5, 30}} {
		if a := alphaAt(r, p[0], p[1]); a != 0 {
			t.Errorf("pixel %v alpha = %d, want 0", p, a)
		}
	}
}

func TestFillRoundedRectScales(t *testing.T) {
	r := NewRenderer(60, 60, 3)
	if err := r.FillRoundedRect(0, 0, 10, 10, 0, color.White); err != nil {
		t.Fatalf("FillRoundedRect: %v", err)
	}
	if a := alphaAt(r, 28, 28); a != 0xffff {
		t.Errorf("scaled interior alpha = %d, want opaque", a)
	}
	if a := alphaAt(r, 35, 35); a != 0 {
		t.Errorf("outside scaled rect alpha = %d, want 0", a)
	}
}

func TestRoundedRectInvalidGeometry(t *testing.T) {
	r := NewRenderer(10, 10, 1)

	tests := []struct {
		name string
		w, h float64
	}{
		{"negative width", -1, 5},
		{"negative height", 5, -1},
		{"nan width", math.NaN(), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.FillRoundedRect(0, 0, tt.w, tt.h, 2, color.White)
			var geomErr *snaperrors.GeometryError
			if !errors.As(err, &geomErr) {
				t.Fatalf("expected GeometryError, got %v", err)
			}
		})
	}
}

func TestRoundedRectClampsOversizedRadius(t *testing.T) {
	r := NewRenderer(40, 20, 1)
	if err := r.FillRoundedRect(0, 0, 40, 20, 100, color.White); err != nil {
		t.Fatalf("oversized radius should be clamped, got %v", err)
	}
	if a := alphaAt(r, 20, 10); a != 0xffff {
		t.Errorf("center alpha = %d, want opaque", a)
	}
}

func TestShadowBufferFadesAtEdges(t *testing.T) {
	for _, blur := range []float64{5, 10, 20, 30} {
		img, offX, offY, err := ShadowBuffer(200, 100, 164, 164, Shadow{
			OffsetY: 21,
			Blur:    blur,
			Color:   color.NRGBA{A: 80},
		})
		if err != nil {
			t.Fatalf("blur %v: %v", blur, err)
		}
		if offX != 82 || offY != 82 {
			t.Errorf("offsets = (%v, %v), want (82, 82)", offX, offY)
		}

		b := img.Bounds()
		if b.Dx() != 364 || b.Dy() != 264 {
			t.Fatalf("buffer size = %dx%d, want 364x264", b.Dx(), b.Dy())
		}
		for _, p := range [][2]int{{0, 0}, {b.Dx() - 1, 0}, {0, b.Dy() - 1}, {b.Dx() - 1, b.Dy() - 1}, {b.Dx() / 2, b.Dy() - 1}} {
			_, _, _, a := img.At(p[0], p[1]).RGBA()
			if a > 0x0100 {
				t.Errorf("blur %v: edge alpha at %v = %d, want ~0", blur, p, a)
			}
		}

		_, _, _, center := img.At(b.Dx()/2, b.Dy()/2).RGBA()
		if center == 0 {
			t.Errorf("blur %v: shadow center should be painted", blur)
		}
	}
}

func TestShadowBufferRejectsEmpty(t *testing.T) {
	if _, _, _, err := ShadowBuffer(0, 0, 0, 0, Shadow{Color: color.Black}); err == nil {
		t.Error("expected error for empty shadow buffer")
	}
}

func TestFillCanvasSolid(t *testing.T) {
	r := NewRenderer(8, 8, 2)
	r.FillCanvas(Fill{Solid: color.NRGBA{R: 255, A: 255}})

	for _, p := range [][2]int{{0, 0}, {7, 7}, {3, 5}} {
		got := color.NRGBAModel.Convert(r.Image().At(p[0], p[1])).(color.NRGBA)
		if got != (color.NRGBA{R: 255, A: 255}) {
			t.Errorf("pixel %v = %v, want opaque red", p, got)
		}
	}
}

func TestFillCanvasGradientPads(t *testing.T) {
	r := NewRenderer(100, 4, 1)
	start := color.NRGBA{R: 0x6b, G: 0xcb, B: 0xa5, A: 255}
	end := color.NRGBA{R: 0xca, G: 0xf4, B: 0xc2, A: 255}
	r.FillCanvas(Fill{Gradient: &LinearGradient{
		X0: 0, Y0: 0, X1: 100, Y1: 0,
		Stops: []ColorStop{{Position: 0.22, Color: start}, {Position: 0.95, Color: end}},
	}})

	left := color.NRGBAModel.Convert(r.Image().At(2, 2)).(color.NRGBA)
	if !nearColor(left, start) {
		t.Errorf("left pixel = %v, want padded start %v", left, start)
	}
	right := color.NRGBAModel.Convert(r.Image().At(99, 2)).(color.NRGBA)
	if !nearColor(right, end) {
		t.Errorf("right pixel = %v, want padded end %v", right, end)
	}
}

func TestEncodePNG(t *testing.T) {
	r := NewRenderer(4, 3, 1)
	r.FillCanvas(Fill{Solid: color.White})

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("decoded size = %v", img.Bounds())
	}
}

func nearColor(a, b color.NRGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 1 || y-x <= 1 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestPadStops(t *testing.T) {
	stops := padStops([]ColorStop{{Position: 0.95, Color: color.White}, {Position: 0.22, Color: color.Black}})
	if len(stops) != 4 {
		t.Fatalf("len = %d, want 4", len(stops))
	}
	if stops[0].Position != 0 || stops[0].Color != color.Black {
		t.Errorf("first stop = %+v, want black at 0", stops[0])
	}
	if stops[3].Position != 1 || stops[3].Color != color.White {
		t.Errorf("last stop = %+v, want white at 1", stops[3])
	}
}
