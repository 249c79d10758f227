package text

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	snaperrors "codesnap/pkg/errors"
)

// Family names of the bundled Go fonts.
const (
	DefaultMonoFamily = "Go Mono"
	DefaultSansFamily = "Go"
)

// Variant selects a face within a family.
type Variant int

const (
	VariantRegular Variant = iota
	VariantBold
	VariantItalic
	VariantBoldItalic
)

// VariantOf returns the variant for the given weight/style flags.
func VariantOf(bold, italic bool) Variant {
	switch {
	case bold && italic:
		return VariantBoldItalic
	case bold:
		return VariantBold
	case italic:
		return VariantItalic
	}
	return VariantRegular
}

// FontSet maps family names to parsed TrueType fonts.
type FontSet struct {
	families map[string]map[Variant]*truetype.Font
}

// NewFontSet returns a FontSet preloaded with the bundled Go fonts.
func NewFontSet() (*FontSet, error) {
	fs := &FontSet{families: make(map[string]map[Variant]*truetype.Font)}

	bundled := []struct {
		family  string
		variant Variant
		data    []byte
	}{
		{DefaultMonoFamily, VariantRegular, gomono.TTF},
		{DefaultMonoFamily, VariantBold, gomonobold.TTF},
		{DefaultMonoFamily, VariantItalic, gomonoitalic.TTF},
		{DefaultMonoFamily, VariantBoldItalic, gomonobolditalic.TTF},
		{DefaultSansFamily, VariantRegular, goregular.TTF},
		{DefaultSansFamily, VariantBold, gobold.TTF},
		{DefaultSansFamily, VariantItalic, goitalic.TTF},
		{DefaultSansFamily, VariantBoldItalic, gobolditalic.TTF},
	}
	for _, b := range bundled {
		f, err := truetype.Parse(b.data)
		if err != nil {
			return nil, snaperrors.NewResourceError(snaperrors.ResourceFont, b.family, err)
		}
		fs.add(b.family, b.variant, f)
	}

	return fs, nil
}

func (fs *FontSet) add(family string, variant Variant, f *truetype.Font) {
	key := strings.ToLower(family)
	if fs.families[key] == nil {
		fs.families[key] = make(map[Variant]*truetype.Font)
	}
	fs.families[key][variant] = f
}

// LoadFolder registers every .ttf file under dir by its embedded family name.
func (fs *FontSet) LoadFolder(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return snaperrors.NewResourceError(snaperrors.ResourceFont, dir, err)
	}
	if !info.IsDir() {
		return snaperrors.NewResourceError(snaperrors.ResourceFont, dir, fmt.Errorf("not a directory"))
	}

	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".ttf") {
			return nil
		}
		return fs.LoadFile(path)
	})
}

// LoadFile registers a single TrueType file.
func (fs *FontSet) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return snaperrors.NewResourceError(snaperrors.ResourceFont, path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return snaperrors.NewResourceError(snaperrors.ResourceFont, path, err)
	}

	family := f.Name(truetype.NameIDFontFamily)
	if family == "" {
		family = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	sub := strings.ToLower(f.Name(truetype.NameIDFontSubfamily))
	fs.add(family, VariantOf(strings.Contains(sub, "bold"), strings.Contains(sub, "italic") || strings.Contains(sub, "oblique")), f)
	return nil
}

// Has reports whether family is registered.
func (fs *FontSet) Has(family string) bool {
	_, ok := fs.families[strings.ToLower(family)]
	return ok
}

// Lookup returns the best face for family/variant, falling back to the
// family's regular face and then to the bundled monospace family.
func (fs *FontSet) Lookup(family string, variant Variant) *truetype.Font {
	for _, name := range []string{family, DefaultMonoFamily} {
		variants, ok := fs.families[strings.ToLower(name)]
		if !ok {
			continue
		}
		if f, ok := variants[variant]; ok {
			return f
		}
		if f, ok := variants[VariantRegular]; ok {
			return f
		}
	}
	return nil
}
