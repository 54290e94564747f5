package common

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is an unclamped color triplet. Sums of several colors may exceed 255;
// clamping only happens when the color is converted for display.
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

func (c RGB) Add(o RGB) RGB {
	return RGB{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Distance is the euclidean distance between two colors in RGB space.
func (c RGB) Distance(o RGB) float64 {
	dr := float64(c.R - o.R)
	dg := float64(c.G - o.G)
	db := float64(c.B - o.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// NRGBA converts to an opaque display color, clamping channels to 0..255.
func (c RGB) NRGBA() color.NRGBA {
	return c.WithAlpha(0xff)
}

func (c RGB) WithAlpha(a uint8) color.NRGBA {
	return color.NRGBA{R: clampChannel(c.R), G: clampChannel(c.G), B: clampChannel(c.B), A: a}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

// ParseColor resolves a CSS color name ("pink") or a "#rrggbb" hex string.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	c, ok := colornames.Map[s]
	if !ok {
		return RGB{}, fmt.Errorf("common: unknown color %q", s)
	}
	return RGB{R: int(c.R), G: int(c.G), B: int(c.B)}, nil
}

func parseHexColor(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("common: invalid hex color %q", s)
	}
	var r, g, b uint32
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("common: invalid hex color %q: %w", s, err)
	}
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// UnmarshalJSON accepts {"r":..,"g":..,"b":..}, a color name or a hex string.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseColor(name)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	type plain RGB
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("common: decode color: %w", err)
	}
	*c = RGB(p)
	return nil
}

// UnmarshalText lets YAML and flag values carry color names.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
