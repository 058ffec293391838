// Package colour implements the scheme derivation engine: it classifies
// extracted colours into reference hue families, computes per-family hue
// statistics, and synthesizes standardized 10-shade palettes from them.
package colour

import (
	"fmt"
	"math"
	"strings"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in HSL space.
// H is the hue in degrees (0-360), S and L are percentages (0-100).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// InvalidDistance is the sentinel returned by DistanceHex when either
// operand cannot be parsed, so batch comparisons degrade instead of failing.
const InvalidDistance = 999

// ParseHex parses a hex colour string into RGB.
// Accepts "#rrggbb" and the shorthand "#rgb"; the leading '#' is optional
// and parsing is case-insensitive.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(h) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = h[i]
			expanded[2*i+1] = h[i]
		}
		h = string(expanded)
	case 6:
		// Already full form.
	default:
		return RGB{}, fmt.Errorf("invalid hex colour %q: expected 3 or 6 digits, got %d", s, len(h))
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(h), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return RGB{R: r, G: g, B: b}, nil
}

// Distance calculates the Euclidean distance between two colours in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// DistanceHex calculates the RGB distance between two hex colour strings.
// Returns InvalidDistance if either string cannot be parsed.
func DistanceHex(a, b string) float64 {
	ra, err := ParseHex(a)
	if err != nil {
		return InvalidDistance
	}
	rb, err := ParseHex(b)
	if err != nil {
		return InvalidDistance
	}
	return Distance(ra, rb)
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		// Achromatic (grey).
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB converts HSL to RGB colour space.
func HSLToRGB(hsl HSL) RGB {
	s := clamp(hsl.S, 0, 100) / 100.0
	l := clamp(hsl.L, 0, 100) / 100.0

	if s == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, hsl.H+120)
	g := hueToRGB(p, q, hsl.H)
	b := hueToRGB(p, q, hsl.H-120)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// HexToHSL parses a hex colour string and converts it to HSL.
func HexToHSL(s string) (HSL, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// clamp restricts v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
