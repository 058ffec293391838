// Package colour provides circular hue arithmetic shared by the scheme
// derivation engine.
package colour

import "math"

// HueDistance calculates the angular distance between two hues on the colour
// wheel. Returns a value between 0 and 180 degrees (shortest path around the
// wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}

// NormalizeHue maps a hue angle to the range [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// CircularMean averages a set of hue angles by summing their unit vectors
// and converting the resultant back to an angle, which handles the 0°/360°
// seam correctly ({350, 10} averages to 0, not 180).
//
// When the resultant vector magnitude is near zero the direction is
// undefined (e.g. {0, 90, 180, 270}); the mean falls back to 0 so the result
// stays deterministic.
func CircularMean(hues []float64) float64 {
	if len(hues) == 0 {
		return 0
	}

	var sumX, sumY float64
	for _, h := range hues {
		rad := h * math.Pi / 180
		sumX += math.Cos(rad)
		sumY += math.Sin(rad)
	}

	n := float64(len(hues))
	avgX := sumX / n
	avgY := sumY / n

	// Undefined direction: the vectors cancel out.
	if math.Hypot(avgX, avgY) < 1e-9 {
		return 0
	}

	return NormalizeHue(math.Atan2(avgY, avgX) * 180 / math.Pi)
}

// InterpolateHue blends two hue angles by stepping factor of the way from h1
// to h2 along the shortest arc, wrapping at the 0°/360° seam. Every hue
// blend in the engine goes through this function.
func InterpolateHue(h1, h2, factor float64) float64 {
	h1 = NormalizeHue(h1)
	h2 = NormalizeHue(h2)

	diff := h2 - h1
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}

	return NormalizeHue(h1 + diff*factor)
}
