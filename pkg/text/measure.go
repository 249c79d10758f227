package text

import (
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Metrics describes the font size and line height used to lay out a text block.
type Metrics struct {
	FontSize   float64
	LineHeight float64
}

// Span is a run of text sharing one colour and style.
type Span struct {
	Text   string
	Color  color.Color
	Bold   bool
	Italic bool
	Family string
}

// Align positions a single line within the available width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Renderer measures and paints styled text. Coordinates are logical units;
// implementations apply their scale factor when painting.
type Renderer interface {
	MeasureText(m Metrics, family string, s string) (width, height float64)
	DrawText(dc *gg.Context, x, y float64, m Metrics, spans []Span) error
	DrawLine(dc *gg.Context, x, y, width float64, m Metrics, span Span, align Align) error
}

type faceKey struct {
	font *truetype.Font
	size float64
}

// FontRenderer implements Renderer on top of gg and freetype faces.
type FontRenderer struct {
	fonts       *FontSet
	scaleFactor float64
	faces       map[faceKey]font.Face
}

// NewFontRenderer returns a FontRenderer that paints at scaleFactor and
// loads extra fonts from the given folders.
func NewFontRenderer(scaleFactor float64, folders ...string) (*FontRenderer, error) {
	fonts, err := NewFontSet()
	if err != nil {
		return nil, err
	}
	for _, folder := range folders {
		if err := fonts.LoadFolder(folder); err != nil {
			return nil, err
		}
	}
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	return &FontRenderer{
		fonts:       fonts,
		scaleFactor: scaleFactor,
		faces:       make(map[faceKey]font.Face),
	}, nil
}

// Fonts exposes the underlying font registry.
func (r *FontRenderer) Fonts() *FontSet {
	return r.fonts
}

func (r *FontRenderer) face(family string, variant Variant, size float64) font.Face {
	f := r.fonts.Lookup(family, variant)
	key := faceKey{font: f, size: size}
	if face, ok := r.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	r.faces[key] = face
	return face
}

// MeasureText returns the logical width of the widest line and the total
// height (line count × line height) of s.
func (r *FontRenderer) MeasureText(m Metrics, family string, s string) (width, height float64) {
	face := r.face(family, VariantRegular, m.FontSize*r.scaleFactor)
	lines := strings.Split(s, "\n")

	maxWidth := 0.0
	for _, line := range lines {
		w := float64(font.MeasureString(face, line)) / 64
		maxWidth = math.Max(maxWidth, w)
	}

	return math.Ceil(maxWidth) / r.scaleFactor, float64(len(lines)) * m.LineHeight
}

// DrawText paints spans starting at the logical origin (x, y). Newlines in a
// span start a new line box of m.LineHeight.
func (r *FontRenderer) DrawText(dc *gg.Context, x, y float64, m Metrics, spans []Span) error {
	lineHeight := m.LineHeight * r.scaleFactor
	originX := x * r.scaleFactor
	cursorX := originX
	lineTop := y * r.scaleFactor

	for _, span := range spans {
		face := r.face(span.Family, VariantOf(span.Bold, span.Italic), m.FontSize*r.scaleFactor)
		dc.SetFontFace(face)
		dc.SetColor(span.Color)

		parts := strings.Split(span.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				cursorX = originX
				lineTop += lineHeight
			}
			if part == "" {
				continue
			}
			dc.DrawString(part, cursorX, baseline(face, lineTop, lineHeight))
			cursorX += float64(font.MeasureString(face, part)) / 64
		}
	}

	return nil
}

// DrawLine paints a single line of text, centred within width when align is AlignCenter.
func (r *FontRenderer) DrawLine(dc *gg.Context, x, y, width float64, m Metrics, span Span, align Align) error {
	face := r.face(span.Family, VariantOf(span.Bold, span.Italic), m.FontSize*r.scaleFactor)
	dc.SetFontFace(face)
	dc.SetColor(span.Color)

	px := x * r.scaleFactor
	if align == AlignCenter {
		textWidth := float64(font.MeasureString(face, span.Text)) / 64
		px += (width*r.scaleFactor - textWidth) / 2
	}

	lineHeight := m.LineHeight * r.scaleFactor
	dc.DrawString(span.Text, px, baseline(face, y*r.scaleFactor, lineHeight))
	return nil
}

// baseline vertically centres the face's ascent+descent within a line box.
func baseline(face font.Face, lineTop, lineHeight float64) float64 {
	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	descent := float64(metrics.Descent) / 64
	return lineTop + (lineHeight-(ascent+descent))/2 + ascent
}

var _ Renderer = (*FontRenderer)(nil)
