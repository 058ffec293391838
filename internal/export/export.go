// Package export serializes generated schemes into stylesheet and
// configuration formats. Exporters are pure string formatting over a scheme
// set; no derivation logic lives here.
package export

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/hueweave/hueweave/internal/colour"
)

//go:embed *.tmpl
var templates embed.FS

// Exporter serializes a generated scheme set into one output format.
type Exporter interface {
	// Name returns the exporter's format name (e.g., "css", "tailwind").
	Name() string

	// FileName returns the conventional output file name for the format.
	FileName() string

	// Export renders the scheme set.
	Export(schemes []colour.GeneratedScheme) ([]byte, error)
}

// Registry holds the available exporters.
type Registry struct {
	exporters map[string]Exporter
	order     []string
}

// NewRegistry creates a registry with every built-in exporter registered.
func NewRegistry() *Registry {
	r := &Registry{exporters: make(map[string]Exporter)}
	r.Register(NewCSS())
	r.Register(NewSCSS())
	r.Register(NewTailwind())
	r.Register(NewJSON())
	return r
}

// Register adds an exporter to the registry.
func (r *Registry) Register(e Exporter) {
	if _, exists := r.exporters[e.Name()]; !exists {
		r.order = append(r.order, e.Name())
	}
	r.exporters[e.Name()] = e
}

// Get retrieves an exporter by format name.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[name]
	return e, ok
}

// Names returns the registered format names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// renderTemplate executes one embedded template over a scheme set.
func renderTemplate(name string, schemes []colour.GeneratedScheme) ([]byte, error) {
	content, err := templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Schemes []colour.GeneratedScheme
	}{Schemes: schemes}); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// templateFuncs returns the helper functions shared by the templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// tailwindKey maps a shade index to the Tailwind scale
		// (0 -> 50, 1 -> 100, ..., 9 -> 900).
		"tailwindKey": func(i int) int {
			if i == 0 {
				return 50
			}
			return i * 100
		},
	}
}
