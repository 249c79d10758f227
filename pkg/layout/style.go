package layout

import "codesnap/pkg/edges"

// SizeKind tags how a dimension is resolved.
type SizeKind int

const (
	// SizeDynamic derives the dimension from the node's children.
	SizeDynamic SizeKind = iota
	// SizeLiteral uses a fixed value.
	SizeLiteral
	// SizeInherit copies the parent's resolved dimension, falling back to dynamic.
	SizeInherit
)

// Size is a declared width or height.
type Size struct {
	Kind  SizeKind
	Value float64
}

// Literal returns a fixed Size.
func Literal(v float64) Size {
	return Size{Kind: SizeLiteral, Value: v}
}

// Dynamic returns a Size derived from children.
func Dynamic() Size {
	return Size{Kind: SizeDynamic}
}

// Inherit returns a Size copied from the parent.
func Inherit() Size {
	return Size{Kind: SizeInherit}
}

// Align controls how a node composes its children.
type Align int

const (
	AlignRow Align = iota
	AlignColumn
)

func (a Align) String() string {
	if a == AlignColumn {
		return "column"
	}
	return "row"
}

// RawStyle is what a node declares.
type RawStyle struct {
	Width    Size
	Height   Size
	MinWidth float64
	Align    Align
	Padding  edges.Padding
	Margin   edges.Margin
}

// DefaultStyle returns a dynamic, row-aligned style with no spacing.
func DefaultStyle() RawStyle {
	return RawStyle{}
}

// WithWidth sets the declared width.
func (s RawStyle) WithWidth(w Size) RawStyle {
	s.Width = w
	return s
}

// WithHeight sets the declared height.
func (s RawStyle) WithHeight(h Size) RawStyle {
	s.Height = h
	return s
}

// WithSize sets a literal width and height.
func (s RawStyle) WithSize(w, h float64) RawStyle {
	s.Width = Literal(w)
	s.Height = Literal(h)
	return s
}

// WithMinWidth sets the lower bound on the resolved outer width.
func (s RawStyle) WithMinWidth(w float64) RawStyle {
	s.MinWidth = w
	return s
}

// WithAlign sets the direction children flow in.
func (s RawStyle) WithAlign(a Align) RawStyle {
	s.Align = a
	return s
}

// WithPadding sets the inner spacing.
func (s RawStyle) WithPadding(p edges.Padding) RawStyle {
	s.Padding = p
	return s
}

// WithMargin sets the outer spacing.
func (s RawStyle) WithMargin(m edges.Margin) RawStyle {
	s.Margin = m
	return s
}

// Style is a resolved style. Width and Height already include the node's
// own padding and margin.
type Style struct {
	Width    float64
	Height   float64
	MinWidth float64
	Align    Align
	Padding  edges.Padding
	Margin   edges.Margin
}

// ResolveSize returns the numeric value of declared. inherited is nil when
// the caller has no parent to inherit from.
func ResolveSize(declared Size, dynamic float64, inherited *float64) float64 {
	switch declared.Kind {
	case SizeLiteral:
		return declared.Value
	case SizeInherit:
		if inherited != nil {
			return *inherited
		}
		return dynamic
	}
	return dynamic
}
