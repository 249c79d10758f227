package layout

import (
	"image/color"

	"codesnap/pkg/config"
	"codesnap/pkg/render"
	"codesnap/pkg/text"
)

// StubName is the name of pure layout nodes. Styles of stub nodes are never cached.
const StubName = "STUB_COMPONENT"

// RenderParams is the absolute logical origin assigned to a node.
type RenderParams struct {
	X float64
	Y float64
}

// Component is a node of the snapshot tree.
type Component interface {
	Children() []Component
	// Name is the style cache key. Nodes that share a name share a resolved style.
	Name() string
	// RenderCondition false removes the node and its subtree from layout and drawing.
	RenderCondition(ctx *Context) bool
	// SelfRenderCondition false keeps the children but drops the node's own style and drawing.
	SelfRenderCondition(ctx *Context) bool
	Style(ctx *Context) RawStyle
	DrawSelf(r *render.Renderer, ctx *Context, params RenderParams, style, parent Style) error
}

// Base provides the default Component behaviour. Embed it and override what differs.
type Base struct {
	Nodes []Component
}

func (b *Base) Children() []Component {
	return b.Nodes
}

func (b *Base) Name() string {
	return StubName
}

func (b *Base) RenderCondition(ctx *Context) bool {
	return true
}

func (b *Base) SelfRenderCondition(ctx *Context) bool {
	return true
}

func (b *Base) Style(ctx *Context) RawStyle {
	return DefaultStyle()
}

func (b *Base) DrawSelf(r *render.Renderer, ctx *Context, params RenderParams, style, parent Style) error {
	return nil
}

// Theme is the subset of the syntax collaborator the components need.
type Theme interface {
	// Background is the editor background as a hex colour.
	Background() string
	Foreground() color.NRGBA
}

// Context is the state shared by one render: scale, configuration,
// collaborators and the per-render style cache.
type Context struct {
	ScaleFactor float64
	Config      *config.SnapshotConfig
	Theme       Theme
	Fonts       text.Renderer

	styles map[string]Style
}

// NewContext returns a Context with an empty style cache.
func NewContext(cfg *config.SnapshotConfig, theme Theme, fonts text.Renderer) *Context {
	scale := 1.0
	if cfg != nil && cfg.ScaleFactor > 0 {
		scale = float64(cfg.ScaleFactor)
	}
	return &Context{
		ScaleFactor: scale,
		Config:      cfg,
		Theme:       theme,
		Fonts:       fonts,
		styles:      make(map[string]Style),
	}
}

// CachedStyle returns the resolved style stored under name, if any.
func (ctx *Context) CachedStyle(name string) (Style, bool) {
	s, ok := ctx.styles[name]
	return s, ok
}
