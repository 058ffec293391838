package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hueweave/hueweave/internal/catalog"
	"github.com/hueweave/hueweave/internal/colour"
	"github.com/hueweave/hueweave/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportZones   zoneFlags
	exportFormats []string
	exportDir     string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <catalog>",
	Short: "Export derived schemes as stylesheet files",
	Long: `Derive schemes from a catalog and write them out in one or more
stylesheet formats.

Examples:
  # Export CSS custom properties to the current directory
  hueweave export colours.json

  # Export several formats into a directory
  hueweave export --format css,scss,tailwind --output-dir theme/ colours.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportZones.register(exportCmd.Flags())
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", []string{"css"},
		"formats to export (css, scss, tailwind, json)")
	exportCmd.Flags().StringVarP(&exportDir, "output-dir", "o", ".", "directory to write files into")
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	report := colour.AnalyzeScheme(cat.Samples(), exportZones.config())
	if len(report.Schemes) == 0 {
		return fmt.Errorf("catalog produced no schemes to export")
	}

	registry := export.NewRegistry()
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, name := range exportFormats {
		exporter, ok := registry.Get(name)
		if !ok {
			return fmt.Errorf("unknown export format: %s (supported: %s)",
				name, strings.Join(registry.Names(), ", "))
		}

		data, err := exporter.Export(report.Schemes)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", name, err)
		}

		path := filepath.Join(exportDir, exporter.FileName())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("exported scheme", "format", name, "path", path)
	}
	return nil
}
