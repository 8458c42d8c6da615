package widgets

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)

// RGBA8 constructs a Color from red, green, blue, alpha bytes.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color.
func RGB(r, g, b uint8) Color { return RGBA8(r, g, b, 0xFF) }

// Alpha returns the alpha component from 0 (transparent) to 1 (opaque).
func (c Color) Alpha() float64 {
	return math.Round(float64(uint8(c>>24))/255*1000) / 1000
}

// Hex returns "#RRGGBB" for opaque colors and "#RRGGBBAA" otherwise.
func (c Color) Hex() string {
	r, g, b, a := uint8(c>>16), uint8(c>>8), uint8(c), uint8(c>>24)
	if a == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA". The leading "#" is
// optional.
func ParseColor(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "FF"
	}
	if len(s) != 8 {
		return 0, fmt.Errorf("color %q: want #RGB, #RRGGBB or #RRGGBBAA", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", hex, err)
	}
	rgba := uint32(v)
	return RGBA8(uint8(rgba>>24), uint8(rgba>>16), uint8(rgba>>8), uint8(rgba)), nil
}
