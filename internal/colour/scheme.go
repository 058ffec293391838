package colour

import (
	"sort"
	"strings"
)

// GeneratedScheme is one derived family palette: the 10 synthesized shades
// plus the analysis that produced them.
type GeneratedScheme struct {
	Family    Family             `json:"family"`
	Name      string             `json:"name"`
	Shades    [ShadeCount]string `json:"shades"`
	MultiZone bool               `json:"multiZone"`
	Analysis  GroupAnalysis      `json:"analysis"`
}

// SchemeReport is the full result of a scheme derivation run.
type SchemeReport struct {
	TotalColors      int                       `json:"totalColors"`
	Analyses         []GroupAnalysis           `json:"analyses"`
	Schemes          []GeneratedScheme         `json:"schemes"`
	ReferenceMatches map[string]ReferenceMatch `json:"referenceMatches"`
}

// AnalyzeScheme runs the full derivation pipeline over a colour collection:
// classification into hue family groups, per-group statistics, and shade
// synthesis for every group with real usage. The result is freshly
// allocated, nothing is cached, and identical inputs produce identical
// output (map iteration is fixed by sorting keys).
func AnalyzeScheme(samples map[string]Sample, cfg ZoneConfig) SchemeReport {
	keys := make([]string, 0, len(samples))
	for k := range samples {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]Sample, 0, len(samples))
	for _, k := range keys {
		ordered = append(ordered, samples[k])
	}

	groups := GroupColors(ordered)

	// Analyses in spectral order; empty groups contribute nothing.
	analyses := make([]GroupAnalysis, 0, len(ReferenceTable))
	for _, rf := range ReferenceTable {
		members := groups[rf.Family]
		if len(members) == 0 {
			continue
		}
		analyses = append(analyses, AnalyzeGroup(members, rf.Family, cfg))
	}

	// Overall mean chroma acts as a floor so sparsely-populated groups
	// still synthesize visually saturated shades.
	var meanChroma float64
	if len(analyses) > 0 {
		var sum float64
		for _, a := range analyses {
			sum += a.Chroma
		}
		meanChroma = sum / float64(len(analyses))
	}

	schemes := make([]GeneratedScheme, 0, len(analyses))
	for _, a := range analyses {
		if a.Usage <= 0 {
			// A family nothing actually uses is not an actionable scheme.
			continue
		}
		chroma := a.Chroma
		if meanChroma > chroma {
			chroma = meanChroma
		}
		schemes = append(schemes, GeneratedScheme{
			Family:    a.Family,
			Name:      displayName(a.Family),
			Shades:    SynthesizeShades(a, chroma),
			MultiZone: UsesZoneInterpolation(a),
			Analysis:  a,
		})
	}

	// Reference table matches are independent of grouping and keyed by the
	// sample's own hex value.
	refMatches := make(map[string]ReferenceMatch, len(ordered))
	for _, s := range ordered {
		match, err := NearestReferenceEntry(s.Hex)
		if err != nil {
			continue
		}
		refMatches[s.Hex] = match
	}

	return SchemeReport{
		TotalColors:      len(samples),
		Analyses:         analyses,
		Schemes:          schemes,
		ReferenceMatches: refMatches,
	}
}

// displayName renders a family identifier as a display name ("blue" -> "Blue").
func displayName(f Family) string {
	s := string(f)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
