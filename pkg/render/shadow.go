package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	snaperrors "codesnap/pkg/errors"
)

// Shadow describes a drop shadow cast by a rect.
type Shadow struct {
	OffsetX float64
	OffsetY float64
	Blur    float64
	Color   color.Color
}

// ShadowBuffer paints a blurred solid rectangle of size w×h into an
// offscreen buffer enlarged by (padH, padV) so the blur can bleed without
// clipping. The returned offsets locate the host rect inside the buffer.
func ShadowBuffer(w, h, padH, padV float64, s Shadow) (img image.Image, offsetX, offsetY float64, err error) {
	if math.IsNaN(w) || math.IsNaN(h) || w < 0 || h < 0 {
		return nil, 0, 0, snaperrors.NewGeometryError("shadow", w, h, 0, "invalid dimensions")
	}

	bufW := w + padH
	bufH := h + padV
	if int(bufW) <= 0 || int(bufH) <= 0 {
		return nil, 0, 0, snaperrors.NewGeometryError("shadow", bufW, bufH, 0, "empty shadow buffer")
	}
	offsetX = (bufW - w) / 2
	offsetY = (bufH - h) / 2

	dc := gg.NewContext(int(bufW), int(bufH))
	dc.DrawRectangle(s.OffsetX+offsetX, s.OffsetY+offsetY, w, h)
	dc.SetColor(s.Color)
	dc.Fill()

	img = dc.Image()
	if s.Blur > 0 {
		img = imaging.Blur(img, s.Blur/3)
	}
	return img, offsetX, offsetY, nil
}

// DrawShadow composites a blurred shadow centred behind the host rect at
// (x, y) with logical size w×h.
func (r *Renderer) DrawShadow(x, y, w, h, padH, padV float64, s Shadow) error {
	img, offsetX, offsetY, err := ShadowBuffer(w, h, padH, padV, s)
	if err != nil {
		return err
	}

	dc := r.context
	dc.Push()
	defer dc.Pop()

	dc.Scale(r.scaleFactor, r.scaleFactor)
	dc.DrawImage(img, int(x-offsetX), int(y-offsetY))
	return nil
}
