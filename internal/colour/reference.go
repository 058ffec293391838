package colour

// Family identifies one of the 13 standardized hue families.
type Family string

// The 12 chromatic families plus the neutral gray family.
const (
	FamilyRed    Family = "red"
	FamilyOrange Family = "orange"
	FamilyYellow Family = "yellow"
	FamilyLime   Family = "lime"
	FamilyGreen  Family = "green"
	FamilyTeal   Family = "teal"
	FamilyCyan   Family = "cyan"
	FamilyBlue   Family = "blue"
	FamilyIndigo Family = "indigo"
	FamilyViolet Family = "violet"
	FamilyGrape  Family = "grape"
	FamilyPink   Family = "pink"
	FamilyGray   Family = "gray"
)

// ShadeCount is the number of shades in every family palette, ordered
// lightest (index 0) to darkest (index 9).
const ShadeCount = 10

// ReferenceFamily is one entry of the static reference palette table: a
// family name, its reference hue angle, and a 10-step shade list used as the
// fallback reference colours.
type ReferenceFamily struct {
	Family Family            `json:"family"`
	Hue    float64           `json:"hue"`
	Shades [ShadeCount]string `json:"shades"`
}

// ReferenceTable is the fixed catalog of hue families in spectral order with
// gray last. The slice order is load-bearing: it is the classifier's
// iteration (and therefore tie-break) order and the display sort order.
// Never mutated after startup.
var ReferenceTable = []ReferenceFamily{
	{Family: FamilyRed, Hue: 0, Shades: [ShadeCount]string{
		"#fff5f5", "#ffe3e3", "#ffc9c9", "#ffa8a8", "#ff8787",
		"#ff6b6b", "#fa5252", "#f03e3e", "#e03131", "#c92a2a",
	}},
	{Family: FamilyOrange, Hue: 25, Shades: [ShadeCount]string{
		"#fff4e6", "#ffe8cc", "#ffd8a8", "#ffc078", "#ffa94d",
		"#ff922b", "#fd7e14", "#f76707", "#e8590c", "#d9480f",
	}},
	{Family: FamilyYellow, Hue: 44, Shades: [ShadeCount]string{
		"#fff9db", "#fff3bf", "#ffec99", "#ffe066", "#ffd43b",
		"#fcc419", "#fab005", "#f59f00", "#f08c00", "#e67700",
	}},
	{Family: FamilyLime, Hue: 83, Shades: [ShadeCount]string{
		"#f4fce3", "#e9fac8", "#d8f5a2", "#c0eb75", "#a9e34b",
		"#94d82d", "#82c91e", "#74b816", "#66a80f", "#5c940d",
	}},
	{Family: FamilyGreen, Hue: 120, Shades: [ShadeCount]string{
		"#ebfbee", "#d3f9d8", "#b2f2bb", "#8ce99a", "#69db7c",
		"#51cf66", "#40c057", "#37b24d", "#2f9e44", "#2b8a3e",
	}},
	{Family: FamilyTeal, Hue: 162, Shades: [ShadeCount]string{
		"#e6fcf5", "#c3fae8", "#96f2d7", "#63e6be", "#38d9a9",
		"#20c997", "#12b886", "#0ca678", "#099268", "#087f5b",
	}},
	{Family: FamilyCyan, Hue: 187, Shades: [ShadeCount]string{
		"#e3fafc", "#c5f6fa", "#99e9f2", "#66d9e8", "#3bc9db",
		"#22b8cf", "#15aabf", "#1098ad", "#0c8599", "#0b7285",
	}},
	{Family: FamilyBlue, Hue: 200, Shades: [ShadeCount]string{
		"#e7f5ff", "#d0ebff", "#a5d8ff", "#74c0fc", "#4dabf7",
		"#339af0", "#228be6", "#1c7ed6", "#1971c2", "#1864ab",
	}},
	{Family: FamilyIndigo, Hue: 242, Shades: [ShadeCount]string{
		"#edf2ff", "#dbe4ff", "#bac8ff", "#91a7ff", "#748ffc",
		"#5c7cfa", "#4c6ef5", "#4263eb", "#3b5bdb", "#364fc7",
	}},
	{Family: FamilyViolet, Hue: 260, Shades: [ShadeCount]string{
		"#f3f0ff", "#e5dbff", "#d0bfff", "#b197fc", "#9775fa",
		"#845ef7", "#7950f2", "#7048e8", "#6741d9", "#5f3dc4",
	}},
	{Family: FamilyGrape, Hue: 294, Shades: [ShadeCount]string{
		"#f8f0fc", "#f3d9fa", "#eebefa", "#e599f7", "#da77f2",
		"#cc5de8", "#be4bdb", "#ae3ec9", "#9c36b5", "#862e9c",
	}},
	{Family: FamilyPink, Hue: 328, Shades: [ShadeCount]string{
		"#fff0f6", "#ffdeeb", "#fcc2d7", "#faa2c1", "#f783ac",
		"#f06595", "#e64980", "#d6336c", "#c2255c", "#a61e4d",
	}},
	// Gray has no meaningful hue; the angle is a display/sort anchor only
	// and is excluded from chromatic classification.
	{Family: FamilyGray, Hue: 210, Shades: [ShadeCount]string{
		"#f8f9fa", "#f1f3f5", "#e9ecef", "#dee2e6", "#ced4da",
		"#adb5bd", "#868e96", "#495057", "#343a40", "#212529",
	}},
}

// ReferenceFor looks up the reference table entry for a family.
func ReferenceFor(f Family) (ReferenceFamily, bool) {
	for _, rf := range ReferenceTable {
		if rf.Family == f {
			return rf, true
		}
	}
	return ReferenceFamily{}, false
}

// SpectralRank returns the position of a family in the fixed spectral
// display order (chromatic families by reference hue, gray last). Unknown
// families sort after everything else.
func SpectralRank(f Family) int {
	for i, rf := range ReferenceTable {
		if rf.Family == f {
			return i
		}
	}
	return len(ReferenceTable)
}

// Families returns every family name in spectral order.
func Families() []Family {
	out := make([]Family, len(ReferenceTable))
	for i, rf := range ReferenceTable {
		out[i] = rf.Family
	}
	return out
}
