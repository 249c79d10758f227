package components

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/fogleman/gg"

	"codesnap/pkg/config"
	"codesnap/pkg/edges"
	snaperrors "codesnap/pkg/errors"
	"codesnap/pkg/layout"
	"codesnap/pkg/render"
	"codesnap/pkg/text"
)

// fixedFonts measures every glyph as 7×lineHeight and records drawn text.
type fixedFonts struct {
	drawn []string
}

func (f *fixedFonts) MeasureText(m text.Metrics, family, s string) (float64, float64) {
	lines := strings.Split(s, "\n")
	widest := 0
	for _, l := range lines {
		if len(l) > widest {
			widest = len(l)
		}
	}
	return float64(widest) * 7, float64(len(lines)) * m.LineHeight
}

func (f *fixedFonts) DrawText(dc *gg.Context, x, y float64, m text.Metrics, spans []text.Span) error {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	f.drawn = append(f.drawn, b.String())
	return nil
}

func (f *fixedFonts) DrawLine(dc *gg.Context, x, y, width float64, m text.Metrics, span text.Span, align text.Align) error {
	f.drawn = append(f.drawn, span.Text)
	return nil
}

type fakeTheme struct{}

func (fakeTheme) Background() string      { return "#282c34" }
func (fakeTheme) Foreground() color.NRGBA { return color.NRGBA{R: 0xab, G: 0xb2, B: 0xbf, A: 0xff} }

func newTestContext() (*layout.Context, *fixedFonts) {
	cfg := config.Default()
	cfg.ScaleFactor = 1
	fonts := &fixedFonts{}
	return layout.NewContext(cfg, fakeTheme{}, fonts), fonts
}

// probe records where it was drawn.
type probe struct {
	layout.Base
	w, h  float64
	at    *layout.RenderParams
	calls int
}

func (p *probe) Style(ctx *layout.Context) layout.RawStyle {
	return layout.DefaultStyle().WithSize(p.w, p.h)
}

func (p *probe) DrawSelf(r *render.Renderer, ctx *layout.Context, params layout.RenderParams, style, parent layout.Style) error {
	p.calls++
	at := params
	p.at = &at
	return nil
}

func TestNestedBorderLayers(t *testing.T) {
	ctx, _ := newTestContext()
	content := color.NRGBA{R: 40, G: 44, B: 52, A: 255}
	border := color.NRGBA{R: 255, G: 255, B: 255, A: 48}

	child := &probe{w: 10, h: 10}
	under := NewRectWithBorder(12, content, 350, edges.PaddingFromValue(14), 1, border, child)
	mid := under.Children()[0].(*Rect)
	inner := mid.Children()[0].(*Rect)

	layers := []struct {
		rect     *Rect
		name     string
		radius   float64
		minWidth float64
		color    color.Color
	}{
		{under, RectUnderLayer, 12, 352, content},
		{mid, RectBorderLayer, 11, 351, border},
		{inner, RectInnerLayer, 10, 350, content},
	}
	for _, l := range layers {
		if l.rect.Name() != l.name {
			t.Errorf("name = %q, want %q", l.rect.Name(), l.name)
		}
		if l.rect.Radius != l.radius {
			t.Errorf("%s radius = %v, want %v", l.name, l.rect.Radius, l.radius)
		}
		if l.rect.MinWidth != l.minWidth {
			t.Errorf("%s min width = %v, want %v", l.name, l.rect.MinWidth, l.minWidth)
		}
		if l.rect.Color != l.color {
			t.Errorf("%s colour = %v, want %v", l.name, l.rect.Color, l.color)
		}
	}

	// Each layer is exactly 2×borderWidth larger than the one it contains.
	innerStyle := layout.ParsedStyle(inner, ctx, nil)
	midStyle := layout.ParsedStyle(mid, ctx, nil)
	underStyle := layout.ParsedStyle(under, ctx, nil)
	if innerStyle.Width != 350 {
		t.Errorf("inner width = %v, want 350", innerStyle.Width)
	}
	if midStyle.Width-innerStyle.Width != 2 || underStyle.Width-midStyle.Width != 2 {
		t.Errorf("widths = %v/%v/%v, want steps of 2", underStyle.Width, midStyle.Width, innerStyle.Width)
	}
	if midStyle.Height-innerStyle.Height != 2 || underStyle.Height-midStyle.Height != 2 {
		t.Errorf("heights = %v/%v/%v, want steps of 2", underStyle.Height, midStyle.Height, innerStyle.Height)
	}

	r := render.NewRenderer(400, 100, 1)
	if _, err := layout.Draw(under, r, ctx, layout.RenderParams{}, layout.Style{}, layout.Style{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	// Child sits inside both border insets plus the real padding.
	if child.at == nil || *child.at != (layout.RenderParams{X: 16, Y: 16}) {
		t.Errorf("child at %v, want {16 16}", child.at)
	}
}

func TestHighlightBands(t *testing.T) {
	h := NewHighlightCodeBlock(nil, 10, LineHeight, edges.Padding{Left: 14})
	parent := layout.Style{Width: 400}
	params := layout.RenderParams{X: 20, Y: 0}

	for line := 1; line <= 10; line++ {
		h.Lines = []config.HighlightLine{{Start: line, End: line, Color: "#ffffff10"}}
		b := h.Bands(params, parent)[0]
		if b.Y != float64(line-1)*18 || b.Height != 18 {
			t.Errorf("line %d band = %+v, want y=%v h=18", line, b, float64(line-1)*18)
		}
	}

	h.Lines = []config.HighlightLine{{Start: 3, End: 5, Color: "#ffffff10"}}
	b := h.Bands(params, parent)[0]
	if b.Y != 36 || b.Y+b.Height != 90 || b.Height != 54 {
		t.Errorf("range 3:5 band = %+v, want y 36..90", b)
	}
	if b.X != 6 || b.Width != 400 {
		t.Errorf("band x/width = %v/%v, want 6/400", b.X, b.Width)
	}

	h.Lines = []config.HighlightLine{{Start: 5, End: 3, Color: "#ffffff10"}}
	if swapped := h.Bands(params, parent)[0]; swapped != b {
		t.Errorf("reversed range band = %+v, want %+v", swapped, b)
	}

	h.Lines = []config.HighlightLine{{Start: 9, End: 40, Color: "#ffffff10"}}
	if clamped := h.Bands(params, parent)[0]; clamped.Height != 36 {
		t.Errorf("clamped band height = %v, want 36", clamped.Height)
	}

	h.Lines = []config.HighlightLine{{Start: 12, End: 14, Color: "#ffffff10"}}
	if past := h.Bands(params, parent)[0]; past.Height != 0 {
		t.Errorf("band past the end = %+v, want empty", past)
	}
}

func TestHighlightTakesNoSpace(t *testing.T) {
	ctx, _ := newTestContext()
	h := NewHighlightCodeBlock([]config.HighlightLine{{Start: 1, End: 2, Color: "#ff000020"}}, 3, LineHeight, edges.Padding{})
	if s := layout.ParsedStyle(h, ctx, nil); s.Width != 0 || s.Height != 0 {
		t.Errorf("highlight size = %vx%v, want 0x0", s.Width, s.Height)
	}
	if NewHighlightCodeBlock(nil, 3, LineHeight, edges.Padding{}).RenderCondition(ctx) {
		t.Error("empty highlight list should not render")
	}
}

func TestHighlightPaintsBand(t *testing.T) {
	ctx, _ := newTestContext()
	h := NewHighlightCodeBlock([]config.HighlightLine{{Start: 2, End: 2, Color: "#ff0000ff"}}, 3, LineHeight, edges.Padding{})
	r := render.NewRenderer(50, 60, 1)

	if err := h.DrawSelf(r, ctx, layout.RenderParams{}, layout.Style{}, layout.Style{Width: 50}); err != nil {
		t.Fatalf("DrawSelf: %v", err)
	}
	inside := color.NRGBAModel.Convert(r.Image().At(25, 27)).(color.NRGBA)
	if inside != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("band pixel = %v, want red", inside)
	}
	if _, _, _, a := r.Image().At(25, 10).RGBA(); a != 0 {
		t.Error("line 1 should not be painted")
	}
}

func TestBackgroundWithoutPaddingPassesThrough(t *testing.T) {
	ctx, _ := newTestContext()
	child := &probe{w: 30, h: 20}
	bg := NewBackground(edges.Padding{}, child)

	if bg.SelfRenderCondition(ctx) {
		t.Fatal("zero padding background must not paint itself")
	}
	s := layout.ParsedStyle(bg, ctx, nil)
	if s.Width != 30 || s.Height != 20 {
		t.Errorf("background = %vx%v, want child size 30x20", s.Width, s.Height)
	}

	r := render.NewRenderer(30, 20, 1)
	origin := layout.RenderParams{X: 5, Y: 7}
	params, err := layout.Draw(bg, r, ctx, origin, layout.Style{Align: layout.AlignColumn}, layout.Style{})
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if child.calls != 1 || *child.at != params {
		t.Errorf("child at %v, want background origin %v", child.at, params)
	}
	if _, _, _, a := r.Image().At(1, 1).RGBA(); a != 0 {
		t.Error("canvas should stay transparent")
	}
}

func TestBackgroundFillsCanvas(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Config.Background = config.Background{Solid: "#112233"}
	bg := NewBackground(edges.PaddingFromValue(10), &probe{w: 5, h: 5})

	root := layout.NewContainer(bg)
	r, err := root.DrawRoot(ctx)
	if err != nil {
		t.Fatalf("DrawRoot: %v", err)
	}
	if r.Width() != 25 || r.Height() != 25 {
		t.Fatalf("raster = %dx%d, want 25x25", r.Width(), r.Height())
	}
	for _, p := range [][2]int{{0, 0}, {24, 24}, {12, 12}} {
		got := color.NRGBAModel.Convert(r.Image().At(p[0], p[1])).(color.NRGBA)
		if got != (color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}) {
			t.Errorf("pixel %v = %v, want #112233", p, got)
		}
	}
}

func TestBackgroundWithoutConfigFails(t *testing.T) {
	ctx := layout.NewContext(nil, fakeTheme{}, &fixedFonts{})
	bg := NewBackground(edges.PaddingFromValue(10), &probe{w: 5, h: 5})

	r, err := layout.NewContainer(bg).DrawRoot(ctx)
	if r != nil {
		t.Error("no raster should be returned on error")
	}
	var verr *snaperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestCanvasFillResolvesMaxSentinel(t *testing.T) {
	bg, _ := config.Preset("bamboo")
	fill, err := canvasFill(bg, 300, 120)
	if err != nil {
		t.Fatalf("canvasFill: %v", err)
	}
	g := fill.Gradient
	if g == nil || g.X0 != 0 || g.Y0 != 0 || g.X1 != 300 || g.Y1 != 0 {
		t.Fatalf("gradient = %+v, want (0,0)->(300,0)", g)
	}
	if len(g.Stops) != 2 || g.Stops[0].Position != 0.22 {
		t.Errorf("stops = %+v", g.Stops)
	}
}

func TestRectShadowDrawsBeneath(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Config.Window.Margin = config.Margin{X: 40, Y: 40}

	rect := NewRect(8, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 0, edges.Padding{}, "Card", &probe{w: 60, h: 30}).
		WithShadow(0, 10, 10, color.NRGBA{A: 200})
	root := layout.NewContainer(NewBackground(edges.PaddingFromValue(40), rect))
	ctx.Config.Background = config.Background{Solid: "#00000000"}

	r, err := root.DrawRoot(ctx)
	if err != nil {
		t.Fatalf("DrawRoot: %v", err)
	}

	// Below the card, inside the shadow offset.
	if _, _, _, a := r.Image().At(70, 75).RGBA(); a == 0 {
		t.Error("expected shadow below the card")
	}
	// Card body is opaque white on top of the shadow.
	got := color.NRGBAModel.Convert(r.Image().At(70, 55)).(color.NRGBA)
	if got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("card pixel = %v, want white", got)
	}
}

func TestLineNumbers(t *testing.T) {
	ctx, fonts := newTestContext()
	start := 98
	ln := NewLineNumber(&start, 3, "Go Mono", "#495162")

	if want := []string{" 98", " 99", "100"}; strings.Join(ln.Lines, ",") != strings.Join(want, ",") {
		t.Errorf("lines = %q, want %q", ln.Lines, want)
	}
	s := layout.ParsedStyle(ln, ctx, nil)
	if s.Width != 3*7+10 || s.Height != 3*LineHeight {
		t.Errorf("line number style = %vx%v, want 31x54", s.Width, s.Height)
	}

	r := render.NewRenderer(10, 10, 1)
	if err := ln.DrawSelf(r, ctx, layout.RenderParams{}, s, layout.Style{}); err != nil {
		t.Fatalf("DrawSelf: %v", err)
	}
	if len(fonts.drawn) != 1 || fonts.drawn[0] != " 98\n 99\n100" {
		t.Errorf("drawn = %q", fonts.drawn)
	}

	if NewLineNumber(nil, 3, "", "#495162").RenderCondition(ctx) {
		t.Error("line numbers without a start must not render")
	}
}

func TestCodeBlockInheritsParentWidth(t *testing.T) {
	ctx, _ := newTestContext()
	code := NewCode("ab\ncd", nil, "Go Mono")
	block := NewCodeBlock(NewHighlightCodeBlock(nil, 2, LineHeight, edges.Padding{}), NewLineNumber(nil, 2, "", ""), code)

	measured := layout.ParsedStyle(block, ctx, nil)
	if measured.Width != 14 || measured.Height != 36 {
		t.Errorf("measured block = %vx%v, want 14x36", measured.Width, measured.Height)
	}

	parent := layout.Style{Width: 322, Height: 500}
	if s := layout.ParsedStyle(block, ctx, &parent); s.Width != 322 || s.Height != 36 {
		t.Errorf("block in parent = %vx%v, want 322x36", s.Width, s.Height)
	}
}

func TestCodeBlockRowPlacesCodeAfterNumbers(t *testing.T) {
	ctx, _ := newTestContext()
	start := 1
	codeProbe := &probe{w: 50, h: 36}
	block := NewCodeBlock(
		NewHighlightCodeBlock([]config.HighlightLine{{Start: 1, End: 1, Color: "#ffffff10"}}, 2, LineHeight, edges.Padding{}),
		NewLineNumber(&start, 2, "", "#495162"),
		codeProbe,
	)

	r := render.NewRenderer(200, 100, 1)
	if _, err := layout.Draw(block, r, ctx, layout.RenderParams{}, layout.Style{Width: 200, Align: layout.AlignColumn}, layout.Style{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	// One digit (7) plus the 10 right margin.
	if codeProbe.at == nil || codeProbe.at.X != 17 || codeProbe.at.Y != 0 {
		t.Errorf("code at %v, want x=17 y=0", codeProbe.at)
	}
}

func TestMacTitleBarAndTitle(t *testing.T) {
	ctx, fonts := newTestContext()

	bar := NewMacTitleBar(true)
	if s := layout.ParsedStyle(bar, ctx, nil); s.Width != 62 || s.Height != 22 {
		t.Errorf("title bar = %vx%v, want 62x22", s.Width, s.Height)
	}
	if NewMacTitleBar(false).RenderCondition(ctx) {
		t.Error("hidden title bar must not render")
	}

	title := NewTitle("main.go", "Go", "#aca9b2")
	if s := layout.ParsedStyle(title, ctx, nil); s.Width != 42 || s.Height != 14 {
		t.Errorf("title = %vx%v, want 42x14", s.Width, s.Height)
	}
	if NewTitle("", "Go", "#aca9b2").RenderCondition(ctx) {
		t.Error("empty title must not render")
	}

	r := render.NewRenderer(100, 40, 1)
	if err := bar.DrawSelf(r, ctx, layout.RenderParams{X: 0, Y: 0}, layout.Style{}, layout.Style{}); err != nil {
		t.Fatalf("bar DrawSelf: %v", err)
	}
	red := color.NRGBAModel.Convert(r.Image().At(6, 6)).(color.NRGBA)
	if red != (color.NRGBA{R: 255, G: 94, B: 87, A: 255}) {
		t.Errorf("first button = %v, want close red", red)
	}
	green := color.NRGBAModel.Convert(r.Image().At(6+2*16, 6)).(color.NRGBA)
	if green != (color.NRGBA{R: 43, G: 200, B: 65, A: 255}) {
		t.Errorf("third button = %v, want zoom green", green)
	}

	if err := title.DrawSelf(r, ctx, layout.RenderParams{}, layout.Style{}, layout.Style{}); err != nil {
		t.Fatalf("title DrawSelf: %v", err)
	}
	if len(fonts.drawn) != 1 || fonts.drawn[0] != "main.go" {
		t.Errorf("drawn = %q", fonts.drawn)
	}
}

func TestBreadcrumbs(t *testing.T) {
	ctx, _ := newTestContext()

	b := NewBreadcrumbs("pkg/layout/engine.go", true, " › ", "Go Mono", "#80848b")
	if b.Path != "pkg › layout › engine.go" {
		t.Errorf("path = %q", b.Path)
	}
	if !b.RenderCondition(ctx) {
		t.Error("enabled breadcrumbs with a path should render")
	}
	if s := layout.ParsedStyle(b, ctx, nil); s.Height != 15 {
		t.Errorf("breadcrumbs height = %v, want 15", s.Height)
	}

	if NewBreadcrumbs("", true, "/", "", "#80848b").RenderCondition(ctx) {
		t.Error("breadcrumbs without a path must not render")
	}
	if NewBreadcrumbs("a/b", false, "/", "", "#80848b").RenderCondition(ctx) {
		t.Error("disabled breadcrumbs must not render")
	}
}

func TestWatermarkVisibility(t *testing.T) {
	ctx, _ := newTestContext()
	wm := &config.Watermark{Content: "CodeSnap", FontFamily: "Go", Color: "#ffffff"}

	if !NewWatermark(wm, 82).RenderCondition(ctx) {
		t.Error("watermark should show with default padding")
	}
	if NewWatermark(wm, 40).RenderCondition(ctx) {
		t.Error("watermark should hide when the bottom padding is too small")
	}
	if NewWatermark(&config.Watermark{}, 82).RenderCondition(ctx) {
		t.Error("empty watermark should hide")
	}

	s := layout.ParsedStyle(NewWatermark(wm, 82), ctx, nil)
	if s.Height != 72 || s.Width != 0 {
		t.Errorf("watermark style = %vx%v, want 0x72", s.Width, s.Height)
	}
}

func TestCommandLine(t *testing.T) {
	ctx, fonts := newTestContext()
	cfg := ctx.Config.CommandOutputConfig

	h := NewCommandLineHeader(cfg, "git  status --short")
	if h.Prompt != "❯ " || h.Command != "git " || h.Args != "status --short" {
		t.Errorf("header = %q %q %q", h.Prompt, h.Command, h.Args)
	}
	if s := layout.ParsedStyle(h, ctx, nil); s.Height != 20 {
		t.Errorf("header height = %v, want 20", s.Height)
	}

	out := NewCommandLineOutput("\x1b[32mM\x1b[0m main.go\n?? new.go\n", "Go Mono")
	s := layout.ParsedStyle(out, ctx, nil)
	if s.Width != float64(len("?? new.go"))*7 || s.Height != 40 {
		t.Errorf("output = %vx%v, want %vx40", s.Width, s.Height, float64(len("?? new.go"))*7)
	}

	r := render.NewRenderer(10, 10, 1)
	if err := out.DrawSelf(r, ctx, layout.RenderParams{}, s, layout.Style{}); err != nil {
		t.Fatalf("DrawSelf: %v", err)
	}
	if fonts.drawn[len(fonts.drawn)-1] != "M main.go\n?? new.go" {
		t.Errorf("drawn = %q", fonts.drawn)
	}
}
