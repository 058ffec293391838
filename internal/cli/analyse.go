package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hueweave/hueweave/internal/catalog"
	"github.com/hueweave/hueweave/internal/colour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	analyseZones   zoneFlags
	analyseFormat  string
	analyseOutput  string
	analysePreview string
)

// analyseCmd represents the analyse command
var analyseCmd = &cobra.Command{
	Use:     "analyse <catalog>",
	Aliases: []string{"analyze"},
	Short:   "Derive colour schemes from a colour catalog",
	Long: `Analyse a colour catalog and derive a scheme per hue family.

Each catalog colour is classified into one of thirteen hue families. For
every family that is actually used, hueweave measures the mean hue,
saturation and lightness of its members and synthesizes a ten-shade ramp
around those measurements.

Catalogs may be plain JSON or compressed with gzip or xz.

Examples:
  # Analyse a catalog and print the derived schemes
  hueweave analyse colours.json

  # Interpolate hues across lightness zones
  hueweave analyse --multizone colours.json.gz

  # Emit the full report as JSON
  hueweave analyse --format json colours.json

  # Write the report to a file
  hueweave analyse -f json -o report.json colours.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyse,
}

func init() {
	analyseZones.register(analyseCmd.Flags())
	analyseCmd.Flags().StringVarP(&analyseFormat, "format", "f", "text", "output format (text, json)")
	analyseCmd.Flags().StringVarP(&analyseOutput, "output", "o", "", "output file (default: stdout)")
	analyseCmd.Flags().StringVar(&analysePreview, "preview", "auto", "show colour swatches (auto, always, never)")
}

// runAnalyse executes the analyse command.
func runAnalyse(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("catalog loaded", "path", args[0], "colours", len(cat))

	report := colour.AnalyzeScheme(cat.Samples(), analyseZones.config())
	logger.Debug("analysis complete",
		"families", len(report.Analyses), "schemes", len(report.Schemes))

	var out []byte
	switch analyseFormat {
	case "text":
		out = []byte(formatReport(report, previewEnabled(analysePreview, analyseOutput)))
	case "json":
		out, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown format: %s (supported: text, json)", analyseFormat)
	}

	return writeOutput(analyseOutput, out)
}

// formatReport renders the scheme report as human-readable text.
func formatReport(report colour.SchemeReport, swatches bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analysed %d colours across %d families\n\n",
		report.TotalColors, len(report.Analyses))

	for _, a := range report.Analyses {
		fmt.Fprintf(&b, "%s: %d colours, hue %.1f, chroma %.1f, lightness %.1f",
			a.Family, a.Usage, a.Hue, a.Chroma, a.Lightness)
		if a.Mode == colour.MultiZone {
			fmt.Fprintf(&b, " (zones: highlight %.1f, midtone %.1f, shadow %.1f)",
				a.Zones.Highlight, a.Zones.Midtone, a.Zones.Shadow)
		}
		b.WriteByte('\n')
	}

	if len(report.Schemes) > 0 {
		b.WriteByte('\n')
	}
	for _, s := range report.Schemes {
		fmt.Fprintf(&b, "%s", s.Name)
		if s.MultiZone {
			b.WriteString(" (multi-zone)")
		}
		b.WriteByte('\n')
		if swatches {
			fmt.Fprintf(&b, "  %s\n", colour.SwatchRow(s.Shades[:], 3))
		}
		for i, hex := range s.Shades {
			fmt.Fprintf(&b, "  %s-%d: %s\n", s.Family, i, hex)
		}
	}

	return b.String()
}

// previewEnabled decides whether to render ANSI swatches. In auto mode
// swatches appear only when writing to a terminal.
func previewEnabled(mode, outputPath string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return outputPath == "" && term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote output", "path", path)
	return nil
}
