package layout

import (
	"math"

	"codesnap/pkg/render"
)

// ParsedStyle resolves c's style. parent is nil during measurement.
func ParsedStyle(c Component, ctx *Context, parent *Style) Style {
	name := c.Name()
	if cached, ok := ctx.styles[name]; ok && name != StubName {
		return cached
	}

	if !c.RenderCondition(ctx) {
		return Style{}
	}

	raw := DefaultStyle()
	if c.SelfRenderCondition(ctx) {
		raw = c.Style(ctx)
	}

	dynamicWidth, dynamicHeight := dynamicSize(c, ctx, raw.Align)

	var parentWidth, parentHeight *float64
	if parent != nil {
		parentWidth, parentHeight = &parent.Width, &parent.Height
	}

	width := ResolveSize(raw.Width, dynamicWidth, parentWidth) + raw.Padding.Horizontal() + raw.Margin.Horizontal()
	if width < raw.MinWidth {
		width = raw.MinWidth
	}
	height := ResolveSize(raw.Height, dynamicHeight, parentHeight) + raw.Padding.Vertical() + raw.Margin.Vertical()

	style := Style{
		Width:    width,
		Height:   height,
		MinWidth: raw.MinWidth,
		Align:    raw.Align,
		Padding:  raw.Padding,
		Margin:   raw.Margin,
	}
	ctx.styles[name] = style

	return style
}

// dynamicSize aggregates the children's measured sizes along align.
func dynamicSize(c Component, ctx *Context, align Align) (width, height float64) {
	for _, child := range c.Children() {
		s := ParsedStyle(child, ctx, nil)
		if align == AlignRow {
			width += s.Width
			height = math.Max(height, s.Height)
		} else {
			width = math.Max(width, s.Width)
			height += s.Height
		}
	}
	return width, height
}

// position places a node relative to the previous sibling in its parent's flow.
func position(parent, sibling, style Style, cursor RenderParams) RenderParams {
	if parent.Align == AlignRow {
		return RenderParams{
			X: cursor.X + sibling.Width + style.Margin.Left + sibling.Padding.Horizontal(),
			Y: cursor.Y + style.Margin.Top,
		}
	}
	return RenderParams{
		X: cursor.X + style.Margin.Left,
		Y: cursor.Y + style.Margin.Top + sibling.Height + sibling.Padding.Vertical(),
	}
}

// Draw positions c after sibling, draws it and its subtree, and returns c's origin.
// cursor is the previous sibling's origin, or the parent's content origin for a first child.
func Draw(c Component, r *render.Renderer, ctx *Context, cursor RenderParams, parent, sibling Style) (RenderParams, error) {
	style := ParsedStyle(c, ctx, &parent)
	params := position(parent, sibling, style, cursor)

	if !c.RenderCondition(ctx) {
		return params, nil
	}

	if c.SelfRenderCondition(ctx) {
		if err := c.DrawSelf(r, ctx, params, style, parent); err != nil {
			return params, err
		}
	}

	childCursor := RenderParams{X: params.X + style.Padding.Left, Y: params.Y + style.Padding.Top}
	childSibling := Style{}
	for _, child := range c.Children() {
		var err error
		childCursor, err = Draw(child, r, ctx, childCursor, style, childSibling)
		if err != nil {
			return params, err
		}
		childSibling = ParsedStyle(child, ctx, &style)
	}

	return params, nil
}
