package colour

// Default lightness thresholds for multi-zone partitioning.
const (
	DefaultHighlightMin = 66.0
	DefaultShadowMax    = 33.0
)

// Fixed statistics used when a group cannot supply its own.
const (
	neutralChroma     = 5.0
	fallbackChroma    = 50.0
	fallbackLightness = 50.0
	defaultLightness  = 50.0
)

// ZoneConfig controls multi-zone (triple-hue) analysis. When Enabled,
// chromatic members are partitioned by lightness into highlight
// (L >= HighlightMin), midtone, and shadow (L < ShadowMax) sub-groups, each
// contributing its own representative hue.
type ZoneConfig struct {
	Enabled      bool    `json:"enabled"`
	HighlightMin float64 `json:"highlightMin"`
	ShadowMax    float64 `json:"shadowMax"`
}

// DefaultZoneConfig returns the zone configuration defaults with multi-zone
// analysis disabled.
func DefaultZoneConfig() ZoneConfig {
	return ZoneConfig{
		Enabled:      false,
		HighlightMin: DefaultHighlightMin,
		ShadowMax:    DefaultShadowMax,
	}
}

// withDefaults backfills unset thresholds.
func (c ZoneConfig) withDefaults() ZoneConfig {
	if c.HighlightMin == 0 {
		c.HighlightMin = DefaultHighlightMin
	}
	if c.ShadowMax == 0 {
		c.ShadowMax = DefaultShadowMax
	}
	return c
}

// HueMode discriminates how a group's hue was estimated.
type HueMode int

const (
	// SingleHue means the analysis carries one representative hue.
	SingleHue HueMode = iota
	// MultiZone means the analysis additionally carries highlight, midtone,
	// and shadow hues derived from lightness sub-groups.
	MultiZone
)

// String returns the string representation of a HueMode.
func (m HueMode) String() string {
	switch m {
	case SingleHue:
		return "single"
	case MultiZone:
		return "multizone"
	default:
		return "unknown"
	}
}

// ZoneHues carries the three per-zone hues and the member hex lists that
// produced them. All three hues are defined whenever Mode is MultiZone;
// empty zones are back-filled during analysis.
type ZoneHues struct {
	Highlight float64 `json:"highlight"`
	Midtone   float64 `json:"midtone"`
	Shadow    float64 `json:"shadow"`

	HighlightMembers []string `json:"highlightMembers,omitempty"`
	MidtoneMembers   []string `json:"midtoneMembers,omitempty"`
	ShadowMembers    []string `json:"shadowMembers,omitempty"`
}

// GroupAnalysis is the derived statistics for one hue family group. Mode
// selects between the single-hue and multi-zone variants; Zones is only
// meaningful when Mode is MultiZone.
type GroupAnalysis struct {
	Family    Family   `json:"family"`
	Members   []string `json:"members"`
	Hue       float64  `json:"hue"`
	Chroma    float64  `json:"chroma"`
	Lightness float64  `json:"lightness"`
	Usage     int      `json:"usage"`
	Mode      HueMode  `json:"mode"`
	Zones     ZoneHues `json:"zones,omitzero"`
}

// memberHSL is a parsed group member.
type memberHSL struct {
	hex   string
	hsl   HSL
	count int
}

// hueStats is an estimated hue/chroma/lightness triple for a group.
type hueStats struct {
	hue       float64
	chroma    float64
	lightness float64
}

// chromaticFallbacks lists the estimation strategies for a chromatic family
// in the order they are tried. Each strategy documents its precondition and
// reports false when it does not apply, keeping the fallback policy
// auditable and testable in isolation.
var chromaticFallbacks = []func(family Family, chromatic []memberHSL) (hueStats, bool){
	statsFromChromaticMembers,
	statsFromReferenceTable,
}

// statsFromChromaticMembers averages hue (circular), saturation, and
// lightness over the chromatic members. Precondition: at least one member
// with saturation at or above ChromaticSaturationMin.
func statsFromChromaticMembers(_ Family, chromatic []memberHSL) (hueStats, bool) {
	if len(chromatic) == 0 {
		return hueStats{}, false
	}

	hues := make([]float64, len(chromatic))
	var sumS, sumL float64
	for i, m := range chromatic {
		hues[i] = m.hsl.H
		sumS += m.hsl.S
		sumL += m.hsl.L
	}

	n := float64(len(chromatic))
	return hueStats{
		hue:       CircularMean(hues),
		chroma:    sumS / n,
		lightness: sumL / n,
	}, true
}

// statsFromReferenceTable falls back to the family's static reference hue
// with neutral mid-range chroma and lightness. Precondition: none; this is
// the terminal strategy and always applies.
func statsFromReferenceTable(family Family, _ []memberHSL) (hueStats, bool) {
	ref, _ := ReferenceFor(family)
	return hueStats{hue: ref.Hue, chroma: fallbackChroma, lightness: fallbackLightness}, true
}

// AnalyzeGroup computes the hue statistics for one family group. Unparseable
// member colours are excluded from averaging and usage rather than aborting
// the analysis; the result is defined for every input including the empty
// group.
func AnalyzeGroup(members []Sample, family Family, cfg ZoneConfig) GroupAnalysis {
	cfg = cfg.withDefaults()

	parsed := make([]memberHSL, 0, len(members))
	hexes := make([]string, 0, len(members))
	usage := 0
	for _, s := range members {
		hsl, err := HexToHSL(s.Hex)
		if err != nil {
			continue
		}
		parsed = append(parsed, memberHSL{hex: s.Hex, hsl: hsl, count: s.Count})
		hexes = append(hexes, s.Hex)
		usage += s.Count
	}

	if family == FamilyGray {
		return analyzeNeutral(parsed, hexes, usage)
	}

	chromatic := make([]memberHSL, 0, len(parsed))
	for _, m := range parsed {
		if m.hsl.S >= ChromaticSaturationMin {
			chromatic = append(chromatic, m)
		}
	}

	var stats hueStats
	for _, estimate := range chromaticFallbacks {
		if s, ok := estimate(family, chromatic); ok {
			stats = s
			break
		}
	}

	analysis := GroupAnalysis{
		Family:    family,
		Members:   hexes,
		Hue:       stats.hue,
		Chroma:    stats.chroma,
		Lightness: stats.lightness,
		Usage:     usage,
		Mode:      SingleHue,
	}

	// Multi-zone hues only exist when at least one chromatic member can
	// anchor them; otherwise the reference fallback stays single-hue.
	if cfg.Enabled && len(chromatic) > 0 {
		analysis.Mode = MultiZone
		analysis.Zones = analyzeZones(chromatic, stats.hue, cfg)
	}

	return analysis
}

// analyzeNeutral computes statistics for the gray family: lightness is the
// arithmetic mean over all members, hue is pinned to the family anchor, and
// chroma is a low constant. Multi-zone analysis never applies to neutrals.
func analyzeNeutral(parsed []memberHSL, hexes []string, usage int) GroupAnalysis {
	ref, _ := ReferenceFor(FamilyGray)

	lightness := defaultLightness
	if len(parsed) > 0 {
		var sum float64
		for _, m := range parsed {
			sum += m.hsl.L
		}
		lightness = sum / float64(len(parsed))
	}

	return GroupAnalysis{
		Family:    FamilyGray,
		Members:   hexes,
		Hue:       ref.Hue,
		Chroma:    neutralChroma,
		Lightness: lightness,
		Usage:     usage,
		Mode:      SingleHue,
	}
}

// analyzeZones partitions chromatic members by lightness, computes a
// circular-mean hue per populated zone, back-fills empty zones, and blends
// the midtone hue halfway toward the circular midpoint of highlight and
// shadow so midtones act as a transition point between the two.
func analyzeZones(chromatic []memberHSL, overallHue float64, cfg ZoneConfig) ZoneHues {
	var highlight, midtone, shadow []memberHSL
	for _, m := range chromatic {
		switch {
		case m.hsl.L >= cfg.HighlightMin:
			highlight = append(highlight, m)
		case m.hsl.L < cfg.ShadowMax:
			shadow = append(shadow, m)
		default:
			midtone = append(midtone, m)
		}
	}

	zones := ZoneHues{
		HighlightMembers: memberHexes(highlight),
		MidtoneMembers:   memberHexes(midtone),
		ShadowMembers:    memberHexes(shadow),
	}

	type zone struct {
		hue     *float64
		members []memberHSL
	}
	// Back-fill priority order for empty zones. The order is arbitrary but
	// fixed for reproducible output.
	order := []zone{
		{&zones.Highlight, highlight},
		{&zones.Midtone, midtone},
		{&zones.Shadow, shadow},
	}

	populated := false
	for _, z := range order {
		if len(z.members) > 0 {
			*z.hue = zoneMeanHue(z.members)
			populated = true
		}
	}

	// Guarded: cannot happen while chromatic members exist, but an
	// all-empty partition collapses every zone to the overall mean.
	if !populated {
		zones.Highlight = overallHue
		zones.Midtone = overallHue
		zones.Shadow = overallHue
		return zones
	}

	for _, z := range order {
		if len(z.members) > 0 {
			continue
		}
		for _, src := range order {
			if len(src.members) > 0 {
				*z.hue = *src.hue
				break
			}
		}
	}

	zones.Midtone = InterpolateHue(zones.Midtone, InterpolateHue(zones.Shadow, zones.Highlight, 0.5), 0.5)

	return zones
}

// zoneMeanHue computes the circular-mean hue of one zone's members.
func zoneMeanHue(members []memberHSL) float64 {
	hues := make([]float64, len(members))
	for i, m := range members {
		hues[i] = m.hsl.H
	}
	return CircularMean(hues)
}

// memberHexes extracts the hex strings of a member list.
func memberHexes(members []memberHSL) []string {
	if len(members) == 0 {
		return nil
	}
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.hex
	}
	return out
}
