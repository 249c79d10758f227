package color

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	hexLength          = 7
	hexWithAlphaLength = 9
)

// IsValidHex reports whether s is a #rrggbb or #rrggbbaa colour.
func IsValidHex(s string) bool {
	if len(s) != hexLength && len(s) != hexWithAlphaLength {
		return false
	}
	if !strings.HasPrefix(s, "#") {
		return false
	}
	for _, ch := range s[1:] {
		if !isHexDigit(ch) {
			return false
		}
	}
	return true
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// ParseHex parses #rrggbb (opaque) or #rrggbbaa into a non-premultiplied colour.
func ParseHex(s string) (color.NRGBA, error) {
	if !IsValidHex(s) {
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %q", s)
	}

	c, err := colorful.Hex(s[:hexLength])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()

	alpha := uint64(255)
	if len(s) == hexWithAlphaLength {
		alpha, err = strconv.ParseUint(s[hexLength:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

// MustParseHex is ParseHex for compile-time constants; it panics on bad input.
func MustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToHex formats c as #rrggbbaa.
func ToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
