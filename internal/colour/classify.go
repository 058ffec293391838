package colour

import "math"

// ChromaticSaturationMin is the saturation percentage below which a colour
// is treated as neutral regardless of its hue angle.
const ChromaticSaturationMin = 15.0

// Sample is one extracted colour as supplied by the caller. Count is the
// number of occurrences in the source material; the hue carried by the
// caller's record is informational only and the engine recomputes it from
// the hex value. The engine never mutates samples.
type Sample struct {
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

// ReferenceMatch maps a colour to its closest static reference table entry.
type ReferenceMatch struct {
	Family     Family  `json:"family"`
	ShadeIndex int     `json:"shadeIndex"`
	Hex        string  `json:"hex"`
	Distance   float64 `json:"distance"`
}

// Classify assigns a colour to its hue family. Low-saturation colours are
// perceptually colourless and always map to gray; everything else maps to
// the chromatic family with minimum circular hue distance, ties resolving
// to reference table order.
func Classify(hex string) (Family, error) {
	hsl, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}

	if hsl.S < ChromaticSaturationMin {
		return FamilyGray, nil
	}

	best := FamilyGray
	bestDist := math.MaxFloat64
	for _, rf := range ReferenceTable {
		if rf.Family == FamilyGray {
			continue
		}
		if d := HueDistance(hsl.H, rf.Hue); d < bestDist {
			bestDist = d
			best = rf.Family
		}
	}

	return best, nil
}

// GroupColors partitions samples into hue family groups. Every family is
// present in the result even when no sample maps to it; each parseable
// sample belongs to exactly one group. Unparseable samples are dropped.
func GroupColors(samples []Sample) map[Family][]Sample {
	groups := make(map[Family][]Sample, len(ReferenceTable))
	for _, rf := range ReferenceTable {
		groups[rf.Family] = nil
	}

	for _, s := range samples {
		family, err := Classify(s.Hex)
		if err != nil {
			continue
		}
		groups[family] = append(groups[family], s)
	}

	return groups
}

// NearestReferenceEntry maps a colour to its single closest entry in the
// static reference table: the family comes from hue classification and the
// shade index from the colour's lightness. This works against the fixed
// table and is available even when no schemes have been generated.
func NearestReferenceEntry(hex string) (ReferenceMatch, error) {
	family, err := Classify(hex)
	if err != nil {
		return ReferenceMatch{}, err
	}

	hsl, err := HexToHSL(hex)
	if err != nil {
		return ReferenceMatch{}, err
	}

	idx := int(math.Round((1 - hsl.L/100) * float64(ShadeCount-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > ShadeCount-1 {
		idx = ShadeCount - 1
	}

	ref, _ := ReferenceFor(family)
	shade := ref.Shades[idx]

	return ReferenceMatch{
		Family:     family,
		ShadeIndex: idx,
		Hex:        shade,
		Distance:   DistanceHex(hex, shade),
	}, nil
}
