package highlight

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	snapcolor "codesnap/pkg/color"
	"codesnap/pkg/text"
)

// ANSI foreground palette indexed by SGR colour number (0-7 normal, 8-15 bright).
var ansiPalette = [16]string{
	"#4B4B4B", "#FF6F61", "#77DD77", "#FFEB3B", "#89CFF0", "#FF77FF", "#00FFFF", "#979EAB",
	"#696969", "#FF9999", "#99FF99", "#FFFF99", "#ADD8E6", "#FFB6C1", "#E0FFFF", "#F5F5F5",
}

const ansiDefaultForeground = 7

// ANSIColor returns the palette colour for SGR index i (0-15).
func ANSIColor(i int) color.NRGBA {
	if i < 0 || i >= len(ansiPalette) {
		i = ansiDefaultForeground
	}
	return snapcolor.MustParseHex(ansiPalette[i])
}

// StripANSI removes escape sequences from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// DisplayWidth returns the widest line of s in terminal cells, ignoring escapes.
func DisplayWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(StripANSI(s), "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

type sgrState struct {
	fg   int
	bold bool
}

// ParseANSI splits s into spans on SGR escape sequences. Foreground colours
// 30-37 and 90-97 and bold are honoured; other escape sequences are dropped.
func ParseANSI(s, family string) []text.Span {
	var spans []text.Span
	state := sgrState{fg: ansiDefaultForeground}
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		spans = append(spans, text.Span{
			Text:   buf.String(),
			Color:  ANSIColor(state.fg),
			Bold:   state.bold,
			Family: family,
		})
		buf.Reset()
	}

	for i := 0; i < len(s); {
		if s[i] != 0x1b {
			buf.WriteByte(s[i])
			i++
			continue
		}

		if i+1 < len(s) && s[i+1] == '[' {
			end := i + 2
			for end < len(s) && (s[end] < 0x40 || s[end] > 0x7e) {
				end++
			}
			if end >= len(s) {
				break
			}
			if s[end] == 'm' {
				flush()
				state = applySGR(state, s[i+2:end])
			}
			i = end + 1
			continue
		}

		// Non-CSI escape: skip ESC and its single following byte.
		i += 2
	}
	flush()

	return spans
}

func applySGR(state sgrState, params string) sgrState {
	if params == "" {
		return sgrState{fg: ansiDefaultForeground}
	}

	codes := strings.Split(params, ";")
	for i := 0; i < len(codes); i++ {
		n, err := strconv.Atoi(codes[i])
		if err != nil {
			continue
		}
		switch {
		case n == 0:
			state = sgrState{fg: ansiDefaultForeground}
		case n == 1:
			state.bold = true
		case n == 22:
			state.bold = false
		case n >= 30 && n <= 37:
			state.fg = n - 30
		case n == 39:
			state.fg = ansiDefaultForeground
		case n >= 90 && n <= 97:
			state.fg = n - 90 + 8
		case n == 38 || n == 48:
			// Extended colours are not in the palette; skip their arguments.
			if i+1 < len(codes) && codes[i+1] == "5" {
				i += 2
			} else if i+1 < len(codes) && codes[i+1] == "2" {
				i += 4
			}
		}
	}
	return state
}
