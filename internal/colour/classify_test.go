package colour

import (
	"testing"
)

// hsl builds a hex string from HSL components, which keeps test colours
// anchored to known hue angles.
func hsl(h, s, l float64) string {
	return HSLToRGB(HSL{H: h, S: s, L: l}).Hex()
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Family
	}{
		{name: "pure red", hex: "#ff0000", want: FamilyRed},
		{name: "orange hue", hex: hsl(25, 80, 50), want: FamilyOrange},
		{name: "yellow hue", hex: hsl(44, 80, 50), want: FamilyYellow},
		{name: "green hue", hex: hsl(120, 60, 45), want: FamilyGreen},
		{name: "teal hue", hex: hsl(162, 60, 45), want: FamilyTeal},
		{name: "blue hue", hex: hsl(200, 70, 50), want: FamilyBlue},
		// Hue 240 sits closer to the indigo reference (242) than blue (200).
		{name: "pure blue is indigo", hex: "#0000ff", want: FamilyIndigo},
		{name: "violet hue", hex: hsl(260, 60, 55), want: FamilyViolet},
		{name: "pink hue", hex: hsl(330, 70, 60), want: FamilyPink},
		{name: "mid grey", hex: "#888888", want: FamilyGray},
		{name: "white", hex: "#ffffff", want: FamilyGray},
		{name: "black", hex: "#000000", want: FamilyGray},
		// Saturation below the chromatic threshold is neutral regardless of
		// its nominal hue angle.
		{name: "washed out red", hex: hsl(0, 10, 50), want: FamilyGray},
		{name: "washed out blue", hex: hsl(200, 14, 50), want: FamilyGray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.hex)
			if err != nil {
				t.Fatalf("Classify(%q) error = %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.hex, got, tt.want)
			}
		})
	}
}

func TestClassifyInvalid(t *testing.T) {
	if _, err := Classify("not-a-colour"); err == nil {
		t.Error("Classify() with invalid hex expected error, got nil")
	}
}

func TestGroupColorsPartition(t *testing.T) {
	samples := []Sample{
		{Hex: "#ff0000", Count: 3},
		{Hex: hsl(200, 70, 50), Count: 1},
		{Hex: hsl(120, 60, 45), Count: 2},
		{Hex: "#888888", Count: 5},
		{Hex: hsl(330, 70, 60), Count: 1},
		{Hex: "bogus", Count: 9}, // dropped, not classified
	}

	groups := GroupColors(samples)

	// Every family key exists, including the empty ones.
	if len(groups) != len(ReferenceTable) {
		t.Fatalf("GroupColors() returned %d groups, want %d", len(groups), len(ReferenceTable))
	}
	for _, rf := range ReferenceTable {
		if _, ok := groups[rf.Family]; !ok {
			t.Errorf("GroupColors() missing family %s", rf.Family)
		}
	}

	// Each parseable sample lands in exactly one group.
	seen := make(map[string]int)
	total := 0
	for _, members := range groups {
		for _, m := range members {
			seen[m.Hex]++
			total++
		}
	}
	if total != len(samples)-1 {
		t.Errorf("partition covers %d samples, want %d", total, len(samples)-1)
	}
	for hex, n := range seen {
		if n != 1 {
			t.Errorf("sample %s appears %d times across groups, want 1", hex, n)
		}
	}
}

func TestNearestReferenceEntry(t *testing.T) {
	tests := []struct {
		name       string
		hex        string
		wantFamily Family
		wantIndex  int
	}{
		{name: "white maps to lightest grey", hex: "#ffffff", wantFamily: FamilyGray, wantIndex: 0},
		{name: "black maps to darkest grey", hex: "#000000", wantFamily: FamilyGray, wantIndex: 9},
		{name: "mid grey", hex: "#888888", wantFamily: FamilyGray, wantIndex: 4},
		{name: "dark blue", hex: hsl(200, 70, 40), wantFamily: FamilyBlue, wantIndex: 5},
		{name: "light green", hex: hsl(120, 60, 85), wantFamily: FamilyGreen, wantIndex: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NearestReferenceEntry(tt.hex)
			if err != nil {
				t.Fatalf("NearestReferenceEntry(%q) error = %v", tt.hex, err)
			}
			if got.Family != tt.wantFamily {
				t.Errorf("Family = %s, want %s", got.Family, tt.wantFamily)
			}
			if got.ShadeIndex != tt.wantIndex {
				t.Errorf("ShadeIndex = %d, want %d", got.ShadeIndex, tt.wantIndex)
			}

			ref, _ := ReferenceFor(tt.wantFamily)
			if got.Hex != ref.Shades[tt.wantIndex] {
				t.Errorf("Hex = %s, want table entry %s", got.Hex, ref.Shades[tt.wantIndex])
			}
			if got.Distance < 0 {
				t.Errorf("Distance = %f, want non-negative", got.Distance)
			}
		})
	}

	if _, err := NearestReferenceEntry(""); err == nil {
		t.Error("NearestReferenceEntry() with empty hex expected error, got nil")
	}
}

func TestSpectralRank(t *testing.T) {
	if SpectralRank(FamilyRed) != 0 {
		t.Errorf("SpectralRank(red) = %d, want 0", SpectralRank(FamilyRed))
	}
	if SpectralRank(FamilyGray) != len(ReferenceTable)-1 {
		t.Errorf("SpectralRank(gray) = %d, want %d", SpectralRank(FamilyGray), len(ReferenceTable)-1)
	}
	if SpectralRank(Family("mauve")) != len(ReferenceTable) {
		t.Errorf("SpectralRank(unknown) = %d, want %d", SpectralRank(Family("mauve")), len(ReferenceTable))
	}

	// Chromatic families are ordered by reference hue.
	prev := -1.0
	for _, rf := range ReferenceTable[:len(ReferenceTable)-1] {
		if rf.Hue <= prev {
			t.Errorf("reference table hue order broken at %s (%f after %f)", rf.Family, rf.Hue, prev)
		}
		prev = rf.Hue
	}
}
