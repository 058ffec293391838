package colour

import (
	"math"
	"reflect"
	"testing"
)

func TestAnalyzeSchemeEmptyInput(t *testing.T) {
	got := AnalyzeScheme(nil, DefaultZoneConfig())

	if got.TotalColors != 0 {
		t.Errorf("TotalColors = %d, want 0", got.TotalColors)
	}
	if len(got.Analyses) != 0 {
		t.Errorf("Analyses length = %d, want 0", len(got.Analyses))
	}
	if len(got.Schemes) != 0 {
		t.Errorf("Schemes length = %d, want 0", len(got.Schemes))
	}
	if len(got.ReferenceMatches) != 0 {
		t.Errorf("ReferenceMatches length = %d, want 0", len(got.ReferenceMatches))
	}
}

func TestAnalyzeSchemeUsageGating(t *testing.T) {
	samples := map[string]Sample{
		"used":   {Hex: hsl(200, 70, 50), Count: 4},
		"unused": {Hex: hsl(120, 60, 45), Count: 0},
	}

	got := AnalyzeScheme(samples, DefaultZoneConfig())

	// Both groups are analysed, but only the one with real usage produces
	// a scheme.
	if len(got.Analyses) != 2 {
		t.Fatalf("Analyses length = %d, want 2", len(got.Analyses))
	}
	if len(got.Schemes) != 1 {
		t.Fatalf("Schemes length = %d, want 1", len(got.Schemes))
	}
	if got.Schemes[0].Family != FamilyBlue {
		t.Errorf("scheme family = %s, want blue", got.Schemes[0].Family)
	}
	for _, a := range got.Analyses {
		if a.Family == FamilyGreen && a.Usage != 0 {
			t.Errorf("green usage = %d, want 0", a.Usage)
		}
	}
}

func TestAnalyzeSchemeSpectralOrder(t *testing.T) {
	samples := map[string]Sample{
		"b": {Hex: hsl(200, 70, 50), Count: 1},
		"g": {Hex: hsl(120, 60, 45), Count: 1},
		"r": {Hex: "#ff0000", Count: 1},
		"n": {Hex: "#888888", Count: 1},
	}

	got := AnalyzeScheme(samples, DefaultZoneConfig())

	want := []Family{FamilyRed, FamilyGreen, FamilyBlue, FamilyGray}
	if len(got.Analyses) != len(want) {
		t.Fatalf("Analyses length = %d, want %d", len(got.Analyses), len(want))
	}
	for i, a := range got.Analyses {
		if a.Family != want[i] {
			t.Errorf("Analyses[%d].Family = %s, want %s", i, a.Family, want[i])
		}
	}
}

func TestAnalyzeSchemeChromaFloor(t *testing.T) {
	// The overall mean chroma floors the synthesis chroma, so a weakly
	// saturated family still produces saturated shades.
	samples := map[string]Sample{
		"vivid": {Hex: hsl(0, 90, 50), Count: 1},
		"pale":  {Hex: hsl(200, 30, 50), Count: 1},
	}

	got := AnalyzeScheme(samples, DefaultZoneConfig())
	if len(got.Schemes) != 2 {
		t.Fatalf("Schemes length = %d, want 2", len(got.Schemes))
	}

	var blue GeneratedScheme
	for _, s := range got.Schemes {
		if s.Family == FamilyBlue {
			blue = s
		}
	}

	// Mean chroma of the two analyses is about 60; the blue mid shade must
	// use the floor, not its own chroma of 30.
	mid, err := HexToHSL(blue.Shades[4])
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mid.S-60) > 4 {
		t.Errorf("pale family mid-shade saturation = %f, want about 60 (overall mean)", mid.S)
	}
}

func TestAnalyzeSchemeReferenceMatches(t *testing.T) {
	blueHex := hsl(200, 70, 50)
	samples := map[string]Sample{
		"one": {Hex: blueHex, Count: 1},
		"two": {Hex: "#888888", Count: 2},
		"bad": {Hex: "oops", Count: 3},
	}

	got := AnalyzeScheme(samples, DefaultZoneConfig())

	if got.TotalColors != 3 {
		t.Errorf("TotalColors = %d, want 3", got.TotalColors)
	}
	if len(got.ReferenceMatches) != 2 {
		t.Fatalf("ReferenceMatches length = %d, want 2 (bad colour skipped)", len(got.ReferenceMatches))
	}
	m, ok := got.ReferenceMatches[blueHex]
	if !ok {
		t.Fatalf("ReferenceMatches missing key %s", blueHex)
	}
	if m.Family != FamilyBlue {
		t.Errorf("reference match family = %s, want blue", m.Family)
	}
}

func TestAnalyzeSchemeIdempotent(t *testing.T) {
	samples := map[string]Sample{
		"a": {Hex: hsl(200, 70, 80), Count: 2},
		"b": {Hex: hsl(210, 70, 30), Count: 1},
		"c": {Hex: "#888888", Count: 5},
		"d": {Hex: "#ff0000", Count: 1},
	}
	cfg := ZoneConfig{Enabled: true, HighlightMin: 66, ShadowMax: 33}

	first := AnalyzeScheme(samples, cfg)
	second := AnalyzeScheme(samples, cfg)

	if !reflect.DeepEqual(first, second) {
		t.Error("AnalyzeScheme() is not deterministic for identical input")
	}
}

func TestAnalyzeSchemeMultiZoneFlag(t *testing.T) {
	samples := map[string]Sample{
		"light": {Hex: hsl(218, 70, 80), Count: 1},
		"dark":  {Hex: hsl(200, 70, 25), Count: 1},
	}

	cfg := DefaultZoneConfig()
	cfg.Enabled = true

	got := AnalyzeScheme(samples, cfg)
	if len(got.Schemes) != 1 {
		t.Fatalf("Schemes length = %d, want 1", len(got.Schemes))
	}
	scheme := got.Schemes[0]
	if !scheme.MultiZone {
		t.Error("MultiZone = false, want true for spread zone hues")
	}
	if scheme.Analysis.Mode != MultiZone {
		t.Errorf("Analysis.Mode = %s, want multizone", scheme.Analysis.Mode)
	}

	// Lightest and darkest shades must carry different hues when highlight
	// and shadow hues differ by more than the epsilon.
	lightest, _ := HexToHSL(scheme.Shades[0])
	darkest, _ := HexToHSL(scheme.Shades[ShadeCount-1])
	if HueDistance(lightest.H, darkest.H) <= ZoneHueEpsilon {
		t.Errorf("lightest (%f) and darkest (%f) shade hues should differ", lightest.H, darkest.H)
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName(FamilyBlue); got != "Blue" {
		t.Errorf("displayName(blue) = %s, want Blue", got)
	}
	if got := displayName(Family("")); got != "" {
		t.Errorf("displayName(empty) = %q, want empty", got)
	}
}
