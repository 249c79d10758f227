package visualtest

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// UpdateEnv regenerates reference images when set to a non-empty value.
const UpdateEnv = "CODESNAP_UPDATE_REFERENCES"

// Solid returns a w×h raster filled with c.
func Solid(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

// Downscale resizes img by 1/factor with a box filter so rasters rendered
// at different scale factors can be compared.
func Downscale(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()/factor, b.Dy()/factor, imaging.Box)
}

// AssertMatchesReference compares img against the PNG at refPath and writes
// a diff next to it on mismatch. With UpdateEnv set the reference is
// rewritten instead.
func AssertMatchesReference(t testing.TB, img image.Image, refPath string, opts CompareOptions) {
	t.Helper()

	if os.Getenv(UpdateEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(refPath), 0o755); err != nil {
			t.Fatalf("create reference dir: %v", err)
		}
		if err := SavePNG(img, refPath); err != nil {
			t.Fatalf("update reference: %v", err)
		}
		t.Logf("updated reference %s", refPath)
		return
	}

	expected, err := LoadPNG(refPath)
	if err != nil {
		t.Fatalf("load reference: %v (set %s=1 to create it)", err, UpdateEnv)
	}

	result, err := Compare(img, expected, opts)
	if err != nil {
		t.Fatalf("compare with %s: %v", refPath, err)
	}
	if !result.Match {
		diffPath := refPath[:len(refPath)-len(filepath.Ext(refPath))] + ".diff.png"
		if err := SavePNG(DiffImage(img, expected, opts.Tolerance), diffPath); err != nil {
			t.Logf("save diff: %v", err)
		}
		t.Errorf("%s: %d of %d pixels differ (max channel difference %d), diff at %s",
			refPath, result.DifferentPixels, result.TotalPixels, result.MaxDifference, diffPath)
	}
}
