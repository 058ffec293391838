package export

import (
	"encoding/json"
	"fmt"

	"github.com/hueweave/hueweave/internal/colour"
)

// CSS renders schemes as a :root custom-property block.
type CSS struct{}

// NewCSS creates the CSS exporter.
func NewCSS() *CSS { return &CSS{} }

// Name returns the exporter name.
func (e *CSS) Name() string { return "css" }

// FileName returns the conventional output file name.
func (e *CSS) FileName() string { return "variables.css" }

// Export renders the scheme set as CSS custom properties.
func (e *CSS) Export(schemes []colour.GeneratedScheme) ([]byte, error) {
	return renderTemplate("variables.css.tmpl", schemes)
}

// SCSS renders schemes as an SCSS variable block.
type SCSS struct{}

// NewSCSS creates the SCSS exporter.
func NewSCSS() *SCSS { return &SCSS{} }

// Name returns the exporter name.
func (e *SCSS) Name() string { return "scss" }

// FileName returns the conventional output file name.
func (e *SCSS) FileName() string { return "_variables.scss" }

// Export renders the scheme set as SCSS variables.
func (e *SCSS) Export(schemes []colour.GeneratedScheme) ([]byte, error) {
	return renderTemplate("variables.scss.tmpl", schemes)
}

// Tailwind renders schemes as a Tailwind config colour fragment with the
// conventional 50-900 shade keys.
type Tailwind struct{}

// NewTailwind creates the Tailwind exporter.
func NewTailwind() *Tailwind { return &Tailwind{} }

// Name returns the exporter name.
func (e *Tailwind) Name() string { return "tailwind" }

// FileName returns the conventional output file name.
func (e *Tailwind) FileName() string { return "tailwind.config.js" }

// Export renders the scheme set as a Tailwind configuration.
func (e *Tailwind) Export(schemes []colour.GeneratedScheme) ([]byte, error) {
	return renderTemplate("tailwind.config.js.tmpl", schemes)
}

// JSON renders schemes as a {family: [shades]} object.
type JSON struct{}

// NewJSON creates the JSON exporter.
func NewJSON() *JSON { return &JSON{} }

// Name returns the exporter name.
func (e *JSON) Name() string { return "json" }

// FileName returns the conventional output file name.
func (e *JSON) FileName() string { return "scheme.json" }

// Export renders the scheme set as JSON.
func (e *JSON) Export(schemes []colour.GeneratedScheme) ([]byte, error) {
	out := make(map[colour.Family][colour.ShadeCount]string, len(schemes))
	for _, s := range schemes {
		out[s.Family] = s.Shades
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode scheme JSON: %w", err)
	}
	return append(data, '\n'), nil
}
