package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit per channel RGBA color. The alpha channel is kept as is.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	ColorBlack = Color{0x00, 0x00, 0x00, 0xff}
	ColorWhite = Color{0xff, 0xff, 0xff, 0xff}
	ColorBlue  = Color{0x00, 0x00, 0xff, 0xff}
)

// ColorFromARGB unpacks a 0xAARRGGBB color integer.
func ColorFromARGB(argb uint32) Color {
	return Color{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// ARGB packs the color into a 0xAARRGGBB integer.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String returns the color as #aarrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", c.ARGB())
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses #rgb, #rrggbb, #aarrggbb or a W3C color name such as
// "teal". Colors without an alpha component are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok {
		alpha := uint64(0xff)
		if len(hex) == 8 {
			a, err := strconv.ParseUint(hex[:2], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
			}
			alpha = a
			hex = hex[2:]
		}
		if len(hex) != 3 && len(hex) != 6 {
			return Color{}, fmt.Errorf("invalid color %q", s)
		}
		cf, err := colorful.Hex("#" + hex)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := cf.RGB255()
		return Color{R: r, G: g, B: b, A: uint8(alpha)}, nil
	}

	tc, ok := tcell.ColorNames[s]
	if !ok || !tc.Valid() {
		return Color{}, fmt.Errorf("unknown color name %q", s)
	}
	r, g, b := tc.RGB()
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}
