package export

import (
	"strings"
	"testing"

	"github.com/hueweave/hueweave/internal/colour"
)

func testSchemes(t *testing.T) []colour.GeneratedScheme {
	t.Helper()

	samples := map[string]colour.Sample{
		"primary": {Hex: "#228be6", Count: 3},
		"danger":  {Hex: "#f03e3e", Count: 1},
	}
	report := colour.AnalyzeScheme(samples, colour.DefaultZoneConfig())
	if len(report.Schemes) == 0 {
		t.Fatal("fixture produced no schemes")
	}
	return report.Schemes
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	want := []string{"css", "scss", "tailwind", "json"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], name)
		}
		if _, ok := r.Get(name); !ok {
			t.Errorf("Get(%s) not found", name)
		}
	}

	if _, ok := r.Get("yaml"); ok {
		t.Error("Get(yaml) = ok, want false")
	}
}

func TestCSSExport(t *testing.T) {
	out, err := NewCSS().Export(testSchemes(t))
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	s := string(out)
	for _, want := range []string{":root {", "--red-0:", "--red-9:", "--blue-0:", "--blue-9:"} {
		if !strings.Contains(s, want) {
			t.Errorf("CSS output missing %q", want)
		}
	}
}

func TestSCSSExport(t *testing.T) {
	out, err := NewSCSS().Export(testSchemes(t))
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	s := string(out)
	for _, want := range []string{"$red-0:", "$blue-5:", "$blue-9:"} {
		if !strings.Contains(s, want) {
			t.Errorf("SCSS output missing %q", want)
		}
	}
	if strings.Contains(s, "--") {
		t.Error("SCSS output contains CSS custom property syntax")
	}
}

func TestTailwindExport(t *testing.T) {
	out, err := NewTailwind().Export(testSchemes(t))
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	s := string(out)
	for _, want := range []string{"module.exports", `"blue": {`, "50:", "900:", "colors:"} {
		if !strings.Contains(s, want) {
			t.Errorf("Tailwind output missing %q", want)
		}
	}
}

func TestJSONExport(t *testing.T) {
	schemes := testSchemes(t)
	out, err := NewJSON().Export(schemes)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	s := string(out)
	if !strings.Contains(s, `"blue": [`) {
		t.Errorf("JSON output missing blue shade list: %s", s)
	}
	for _, scheme := range schemes {
		if !strings.Contains(s, scheme.Shades[0]) {
			t.Errorf("JSON output missing shade %s", scheme.Shades[0])
		}
	}
}

func TestExportEmptySchemeSet(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.Names() {
		e, _ := r.Get(name)
		if _, err := e.Export(nil); err != nil {
			t.Errorf("%s Export(nil) error = %v", name, err)
		}
	}
}
