package layout

import (
	"math"

	snaperrors "codesnap/pkg/errors"
	"codesnap/pkg/render"
)

// bytesPerPixel is the size of one RGBA raster pixel.
const bytesPerPixel = 4

// Container is the root of a snapshot tree.
type Container struct {
	Base
}

// NewContainer returns a root over children.
func NewContainer(children ...Component) *Container {
	return &Container{Base: Base{Nodes: children}}
}

// Measure runs the measurement pass and returns the root's logical size.
func (c *Container) Measure(ctx *Context) Style {
	return ParsedStyle(c, ctx, nil)
}

// DrawRoot measures the tree, allocates a raster of the measured size times
// the scale factor, and draws every node onto it. On error no raster is returned.
func (c *Container) DrawRoot(ctx *Context) (*render.Renderer, error) {
	style := c.Measure(ctx)

	width := math.Ceil(style.Width * ctx.ScaleFactor)
	height := math.Ceil(style.Height * ctx.ScaleFactor)
	if math.IsNaN(width) || math.IsNaN(height) || width < 1 || height < 1 {
		return nil, snaperrors.NewGeometryError("allocate raster", width, height, 0, "raster size out of range")
	}
	if width*height*bytesPerPixel > float64(math.MaxInt) {
		return nil, snaperrors.NewGeometryError("allocate raster", width, height, 0, "raster size overflows")
	}

	r := render.NewRenderer(int(width), int(height), ctx.ScaleFactor)
	if _, err := Draw(c, r, ctx, RenderParams{}, Style{}, Style{}); err != nil {
		return nil, err
	}

	return r, nil
}

// Row lays its children out left to right.
type Row struct {
	Base
}

// NewRow returns a row over children.
func NewRow(children ...Component) *Row {
	return &Row{Base: Base{Nodes: children}}
}

func (r *Row) Style(ctx *Context) RawStyle {
	return DefaultStyle().WithAlign(AlignRow)
}

// Column stacks its children top to bottom.
type Column struct {
	Base
}

// NewColumn returns a column over children.
func NewColumn(children ...Component) *Column {
	return &Column{Base: Base{Nodes: children}}
}

func (c *Column) Style(ctx *Context) RawStyle {
	return DefaultStyle().WithAlign(AlignColumn)
}
