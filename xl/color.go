package xl

import (
	"fmt"
	"strings"
)

// Color is an ARGB hex color as written to OOXML, e.g. "FFFF0000".
type Color string

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("FF%02X%02X%02X", r, g, b))
}

// ParseColor accepts "RRGGBB", "AARRGGBB", optionally prefixed with '#'.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return "", fmt.Errorf("%w: color %q", ErrFormat, s)
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return "", fmt.Errorf("%w: color %q", ErrFormat, s)
		}
	}
	h = strings.ToUpper(h)
	if len(h) == 6 {
		h = "FF" + h
	}
	return Color(h), nil
}

// canonical is the upper-case form used for comparison and output.
func (c Color) canonical() Color {
	return Color(strings.ToUpper(string(c)))
}

func (c Color) valid() bool {
	if len(c) != 8 {
		return false
	}
	_, err := ParseColor(string(c))
	return err == nil
}

// Frequently used colors.
const (
	ColorBlack  Color = "FF000000"
	ColorWhite  Color = "FFFFFFFF"
	ColorRed    Color = "FFFF0000"
	ColorGreen  Color = "FF00FF00"
	ColorBlue   Color = "FF0000FF"
	ColorYellow Color = "FFFFFF00"
)
