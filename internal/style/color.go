package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Transparent is accepted wherever a color is expected.
const Transparent = "transparent"

// ParseHex parses "#RRGGBB", "RRGGBB" or "transparent". Anything else yields def.
func ParseHex(s string, def color.RGBA) color.RGBA {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}

	if strings.EqualFold(s, Transparent) {
		return color.RGBA{}
	}

	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return def
	}

	r, err1 := strconv.ParseUint(s[0:2], 16, 8)
	g, err2 := strconv.ParseUint(s[2:4], 16, 8)
	b, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return def
	}

	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

// Hex formats c as "#RRGGBB", or "transparent" for a zero alpha.
func Hex(c color.RGBA) string {
	if c.A == 0 {
		return Transparent
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
