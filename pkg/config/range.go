package config

import (
	"fmt"
	"strconv"
	"strings"

	snaperrors "codesnap/pkg/errors"
)

const (
	rangeSeparator = ":"
	// DefaultRange selects every line.
	DefaultRange = "start:end"
)

// Range is a 1-based inclusive line range with Start <= End.
type Range struct {
	Start int
	End   int
}

// Size returns the number of lines covered by r.
func (r Range) Size() int {
	return r.End - r.Start + 1
}

// ParseRange parses "n", "a:b", "a:", ":b" or "start:end" against a snippet
// of lineCount lines. "start" is 1 and "end" is lineCount; reversed bounds are swapped.
func ParseRange(raw string, lineCount int) (Range, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultRange
	}
	switch {
	case strings.HasPrefix(raw, rangeSeparator):
		raw = "start" + raw
	case strings.HasSuffix(raw, rangeSeparator):
		raw = raw + "end"
	}

	points := strings.Split(raw, rangeSeparator)
	if len(points) != 1 && len(points) != 2 {
		return Range{}, snaperrors.NewValidationError("range", fmt.Sprintf("invalid range format %q", raw), nil)
	}

	start, err := parseRangePoint(points[0], lineCount)
	if err != nil {
		return Range{}, err
	}
	end := start
	if len(points) == 2 {
		if end, err = parseRangePoint(points[1], lineCount); err != nil {
			return Range{}, err
		}
	}

	if start > end {
		start, end = end, start
	}
	return Range{Start: start, End: end}, nil
}

func parseRangePoint(point string, lineCount int) (int, error) {
	switch point {
	case "start":
		return 1, nil
	case "end":
		return lineCount, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(point))
	if err != nil || n < 0 {
		return 0, snaperrors.NewValidationError("range", fmt.Sprintf("invalid range point %q", point), err)
	}
	return n, nil
}

// CutLines returns the lines of code covered by r.
func CutLines(code string, r Range) string {
	lines := strings.Split(code, "\n")

	start := r.Start - 1
	if start < 0 {
		start = 0
	}
	if start > len(lines) {
		start = len(lines)
	}
	end := r.End
	if end > len(lines) {
		end = len(lines)
	}
	if end < start {
		end = start
	}

	return strings.Join(lines[start:end], "\n")
}

// HighlightRange converts a raw highlight range into a HighlightLine for a
// snippet cut from snippetRange of the full source. Absolute ranges are
// given in source line numbers; relative ranges count from the snippet's first line.
func HighlightRange(raw, color string, snippet string, snippetRange Range, relative bool) (HighlightLine, error) {
	r, err := ParseRange(raw, len(strings.Split(snippet, "\n")))
	if err != nil {
		return HighlightLine{}, err
	}

	if relative {
		size := snippetRange.End - snippetRange.Start
		if r.End > size+1 {
			return HighlightLine{}, snaperrors.NewValidationError("highlight_range",
				fmt.Sprintf("the highlight end range should be less than or equal to %d", size+1), nil)
		}
		return HighlightLine{Start: r.Start, End: r.End, Color: color}, nil
	}

	if r.Start < snippetRange.Start {
		return HighlightLine{}, snaperrors.NewValidationError("highlight_range",
			fmt.Sprintf("the highlight start range should be greater than or equal to %d", snippetRange.Start), nil)
	}
	if r.End > snippetRange.End {
		return HighlightLine{}, snaperrors.NewValidationError("highlight_range",
			fmt.Sprintf("the highlight end range should be less than or equal to %d", snippetRange.End), nil)
	}

	offset := snippetRange.Start - 1
	return HighlightLine{Start: r.Start - offset, End: r.End - offset, Color: color}, nil
}
