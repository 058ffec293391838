// Package catalog loads and saves colour catalogs: JSON descriptions of the
// colours extracted from a codebase, keyed by arbitrary identifiers.
package catalog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/hueweave/hueweave/internal/colour"
)

// maxCatalogBytes bounds decompressed catalog size so a malformed archive
// cannot exhaust memory.
const maxCatalogBytes = 64 * 1024 * 1024

// Site records one place a colour was found in the source material.
type Site struct {
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Context string `json:"context,omitempty"`
}

// Entry is one catalog record. Hue and Category are caller-supplied
// metadata; the derivation engine recomputes hue from the hex value.
type Entry struct {
	Hex      string  `json:"hex"`
	Hue      float64 `json:"hue,omitempty"`
	Usage    []Site  `json:"usage,omitempty"`
	Count    int     `json:"count,omitempty"`
	Category string  `json:"category,omitempty"`
}

// Occurrences returns the entry's occurrence count: the number of usage
// sites, or the explicit count override when no sites are listed.
func (e Entry) Occurrences() int {
	if len(e.Usage) > 0 {
		return len(e.Usage)
	}
	return e.Count
}

// Catalog maps arbitrary string keys to colour entries.
type Catalog map[string]Entry

// Samples converts the catalog into the derivation engine's input form.
func (c Catalog) Samples() map[string]colour.Sample {
	samples := make(map[string]colour.Sample, len(c))
	for key, e := range c {
		samples[key] = colour.Sample{
			Hex:   e.Hex,
			Count: e.Occurrences(),
		}
	}
	return samples
}

// Load reads a catalog from a JSON file. Files ending in .gz or .xz are
// decompressed transparently.
func Load(path string) (Catalog, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path cannot be empty")
	}

	f, err := os.Open(path) // #nosec G304 - User-specified catalog path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	case ".xz":
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	}

	data, err := io.ReadAll(io.LimitReader(r, maxCatalogBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(data) > maxCatalogBytes {
		return nil, fmt.Errorf("catalog exceeds size limit of %d bytes", maxCatalogBytes)
	}

	return Parse(data)
}

// Parse decodes catalog JSON.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return c, nil
}

// Save writes a catalog as indented JSON.
func Save(path string, c Catalog) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - Catalog files are not sensitive
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}
