package snapshot

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codesnap/pkg/config"
	snaperrors "codesnap/pkg/errors"
	"codesnap/pkg/highlight"
	"codesnap/pkg/layout"
	"codesnap/pkg/logging"
	"codesnap/pkg/render"
	"codesnap/pkg/text"
)

// ImageSnapshot is a finished raster.
type ImageSnapshot struct {
	renderer *render.Renderer
}

// Render builds the tree for cfg's payload and draws it. The configuration
// must already be validated; log may be nil.
func Render(cfg *config.SnapshotConfig, log *logging.Logger) (*ImageSnapshot, error) {
	start := time.Now()

	hl, err := highlight.NewHighlighter(cfg.ThemesFolders...)
	if err != nil {
		return nil, err
	}
	theme, err := hl.Theme(cfg.Theme)
	if err != nil {
		return nil, err
	}
	fonts, err := text.NewFontRenderer(float64(cfg.ScaleFactor), cfg.FontsFolders...)
	if err != nil {
		return nil, err
	}

	var root *layout.Container
	kind := "command_output"
	if cfg.Content.IsCode() {
		kind = "code"
		code := highlight.PrepareCode(cfg.Content.Code.Content)
		spans, err := hl.Highlight(code, cfg.Content.Code.Language, cfg.Content.Code.FilePath, theme, cfg.CodeConfig.FontFamily)
		if err != nil {
			return nil, err
		}
		root, err = CodeTree(cfg, theme, code, spans)
		if err != nil {
			return nil, err
		}
	} else {
		root, err = CommandOutputTree(cfg, theme)
		if err != nil {
			return nil, err
		}
	}

	ctx := layout.NewContext(cfg, theme, fonts)
	size := root.Measure(ctx)
	log = log.WithFields(map[string]any{
		"kind":   kind,
		"theme":  theme.Name(),
		"width":  size.Width,
		"height": size.Height,
		"scale":  cfg.ScaleFactor,
	})

	r, err := root.DrawRoot(ctx)
	if err != nil {
		log.Error(err, "draw snapshot")
		return nil, err
	}
	log.Timed(start, "snapshot rendered")

	return &ImageSnapshot{renderer: r}, nil
}

// Image returns the raster.
func (s *ImageSnapshot) Image() image.Image {
	return s.renderer.Image()
}

// Size returns the raster size in device pixels.
func (s *ImageSnapshot) Size() (int, int) {
	return s.renderer.Width(), s.renderer.Height()
}

func (s *ImageSnapshot) EncodePNG(w io.Writer) error {
	return s.renderer.EncodePNG(w)
}

// EncodeSVG writes an SVG document embedding the PNG raster as a data URI.
// The result is not vector graphics.
func (s *ImageSnapshot) EncodeSVG(w io.Writer) error {
	var png bytes.Buffer
	if err := s.EncodePNG(&png); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><image href="data:image/png;base64,%s"/></svg>`,
		base64.StdEncoding.EncodeToString(png.Bytes()))
	return err
}

// Save resolves path, then writes PNG or SVG depending on its extension.
// It returns the path actually written.
func (s *ImageSnapshot) Save(path string) (string, error) {
	resolved, err := ResolveSavePath(path, ".png", time.Now())
	if err != nil {
		return "", err
	}

	var encode func(io.Writer) error
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".png":
		encode = s.EncodePNG
	case ".svg":
		encode = s.EncodeSVG
	default:
		return "", snaperrors.NewValidationError("output", "the save path must end with .png or .svg", nil)
	}

	if err := writeFile(resolved, encode); err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return resolved, nil
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := encode(bw); err != nil {
		return err
	}
	return bw.Flush()
}
