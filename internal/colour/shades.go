package colour

// ShadeLightness is the fixed lightness curve for the 10 output shades,
// lightest first. The steps are perceptually tuned rather than evenly
// spaced; the exact sequence is required for output parity with the
// reference palette's visual rhythm.
var ShadeLightness = [ShadeCount]float64{96, 90, 82, 70, 56, 45, 37, 29, 22, 16}

const (
	// Neutral shades ignore input statistics entirely.
	neutralShadeHue        = 210.0
	neutralShadeSaturation = 8.0

	// ZoneHueEpsilon is the minimum spread between zone hues before
	// three-zone interpolation is worth applying.
	ZoneHueEpsilon = 5.0
)

// Lightness breakpoints for selecting the interpolation zone of a shade.
const (
	highlightZoneMin = 75.0
	shadowZoneMax    = 40.0
)

// UsesZoneInterpolation reports whether shade synthesis for this analysis
// will interpolate hue across the three lightness zones. True only when the
// analysis is multi-zone and at least one pair of zone hues differs by more
// than ZoneHueEpsilon; identical zone hues degrade to the single mean hue.
func UsesZoneInterpolation(a GroupAnalysis) bool {
	if a.Family == FamilyGray || a.Mode != MultiZone {
		return false
	}
	z := a.Zones
	return HueDistance(z.Highlight, z.Midtone) > ZoneHueEpsilon ||
		HueDistance(z.Midtone, z.Shadow) > ZoneHueEpsilon ||
		HueDistance(z.Highlight, z.Shadow) > ZoneHueEpsilon
}

// SynthesizeShades generates the 10-step shade list for an analysed group.
// The chroma argument is the base chroma to modulate (the orchestration
// passes max(group chroma, overall mean chroma) so sparse groups still
// produce saturated shades).
func SynthesizeShades(a GroupAnalysis, chroma float64) [ShadeCount]string {
	var shades [ShadeCount]string

	if a.Family == FamilyGray {
		for i, l := range ShadeLightness {
			shades[i] = HSLToRGB(HSL{H: neutralShadeHue, S: neutralShadeSaturation, L: l}).Hex()
		}
		return shades
	}

	chroma = clamp(chroma, 0, 100)
	interpolate := UsesZoneInterpolation(a)
	baseHue := NormalizeHue(a.Hue)

	for i, l := range ShadeLightness {
		hue := baseHue
		if interpolate {
			hue = zoneHueAt(a.Zones, l)
		}

		shades[i] = HSLToRGB(HSL{
			H: hue,
			S: clamp(chroma*chromaFactor(l), 0, 100),
			L: clamp(l, 0, 100),
		}).Hex()
	}

	return shades
}

// zoneHueAt picks the hue for one lightness step by interpolating between
// the zone hues: shadow→midtone below the shadow breakpoint, midtone→
// highlight above the highlight breakpoint, and a two-half split between.
func zoneHueAt(z ZoneHues, l float64) float64 {
	switch {
	case l >= highlightZoneMin:
		factor := clamp((l-highlightZoneMin)/(ShadeLightness[0]-highlightZoneMin), 0, 1)
		return InterpolateHue(z.Midtone, z.Highlight, factor)
	case l >= shadowZoneMax:
		factor := (l - shadowZoneMax) / (highlightZoneMin - shadowZoneMax)
		if factor < 0.5 {
			return InterpolateHue(z.Shadow, z.Midtone, factor*2)
		}
		return InterpolateHue(z.Midtone, z.Highlight, (factor-0.5)*2)
	default:
		factor := clamp((l-ShadeLightness[ShadeCount-1])/(shadowZoneMax-ShadeLightness[ShadeCount-1]), 0, 1)
		return InterpolateHue(z.Shadow, z.Midtone, factor)
	}
}

// chromaFactor modulates chroma by lightness: saturation peaks in the
// midtones and rolls off toward both ends of the curve.
func chromaFactor(l float64) float64 {
	switch {
	case l > 85:
		return 0.7
	case l > 75:
		return 0.85
	case l > 35:
		return 1.0
	case l > 20:
		return 0.85
	default:
		return 0.7
	}
}
