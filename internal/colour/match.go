package colour

import (
	"fmt"
	"sort"
)

// SchemeMatch is the nearest scheme shade found for a query colour.
type SchemeMatch struct {
	Hex        string  `json:"hex"`
	Family     Family  `json:"family"`
	ShadeIndex int     `json:"shadeIndex"`
	Name       string  `json:"name"`
	Distance   float64 `json:"distance"`
}

// defaultMatch is the well-defined result when no schemes exist: black in
// the darkest neutral shade.
func defaultMatch(hex string) SchemeMatch {
	const black = "#000000"
	return SchemeMatch{
		Hex:        black,
		Family:     FamilyGray,
		ShadeIndex: ShadeCount - 1,
		Name:       matchName(FamilyGray, ShadeCount-1),
		Distance:   DistanceHex(hex, black),
	}
}

// NearestSchemeColor finds the scheme shade with minimum RGB distance to the
// query colour across every generated scheme. Ties resolve to the first
// shade encountered in scheme iteration order; an unparseable query degrades
// through the distance sentinel rather than failing.
func NearestSchemeColor(hex string, schemes []GeneratedScheme) SchemeMatch {
	if len(schemes) == 0 {
		return defaultMatch(hex)
	}

	var best SchemeMatch
	first := true
	for _, scheme := range schemes {
		for i, shade := range scheme.Shades {
			d := DistanceHex(hex, shade)
			if first || d < best.Distance {
				best = SchemeMatch{
					Hex:        shade,
					Family:     scheme.Family,
					ShadeIndex: i,
					Name:       matchName(scheme.Family, i),
					Distance:   d,
				}
				first = false
			}
		}
	}

	return best
}

// NearestSchemeColors returns the top n matches ranked ascending by RGB
// distance. The sort is stable so equidistant shades keep scheme iteration
// order.
func NearestSchemeColors(hex string, schemes []GeneratedScheme, n int) []SchemeMatch {
	if n <= 0 || len(schemes) == 0 {
		return nil
	}

	matches := make([]SchemeMatch, 0, len(schemes)*ShadeCount)
	for _, scheme := range schemes {
		for i, shade := range scheme.Shades {
			matches = append(matches, SchemeMatch{
				Hex:        shade,
				Family:     scheme.Family,
				ShadeIndex: i,
				Name:       matchName(scheme.Family, i),
				Distance:   DistanceHex(hex, shade),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if n > len(matches) {
		n = len(matches)
	}
	return matches[:n]
}

// NearestInFamily restricts the nearest-shade search to one family's
// generated scheme. Reports false when that family has no scheme.
func NearestInFamily(hex string, family Family, schemes []GeneratedScheme) (SchemeMatch, bool) {
	for _, scheme := range schemes {
		if scheme.Family != family {
			continue
		}
		return NearestSchemeColor(hex, []GeneratedScheme{scheme}), true
	}
	return SchemeMatch{}, false
}

// matchName builds the composite "family-shadeIndex" name.
func matchName(f Family, idx int) string {
	return fmt.Sprintf("%s-%d", f, idx)
}
