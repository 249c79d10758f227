package edges

// Edge is the spacing contract shared by Padding and Margin.
type Edge interface {
	Horizontal() float64
	Vertical() float64
}

// Padding is the space between a component's border box and its children.
type Padding struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// PaddingFromValue returns a Padding with the same value on all four sides.
func PaddingFromValue(v float64) Padding {
	return Padding{Left: v, Right: v, Top: v, Bottom: v}
}

// PaddingFromAxes returns a Padding with x applied left/right and y applied top/bottom.
func PaddingFromAxes(x, y float64) Padding {
	return Padding{Left: x, Right: x, Top: y, Bottom: y}
}

// IsZero reports whether the padding adds no space on either axis.
func (p Padding) IsZero() bool {
	return p.Horizontal() == 0 && p.Vertical() == 0
}

// Margin is the space a component reserves outside its own box.
type Margin struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Horizontal returns Left + Right.
func (m Margin) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns Top + Bottom.
func (m Margin) Vertical() float64 {
	return m.Top + m.Bottom
}

// MarginFromValue returns a Margin with the same value on all four sides.
func MarginFromValue(v float64) Margin {
	return Margin{Left: v, Right: v, Top: v, Bottom: v}
}

var (
	_ Edge = Padding{}
	_ Edge = Margin{}
)
