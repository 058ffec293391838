package cli

import (
	"fmt"

	"github.com/hueweave/hueweave/internal/catalog"
	"github.com/hueweave/hueweave/internal/colour"
	"github.com/hueweave/hueweave/internal/extract"
	"github.com/hueweave/hueweave/internal/image"
	"github.com/spf13/cobra"
)

var (
	extractColours int
	extractOutput  string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour catalog from an image",
	Long: `Extract the dominant colours of an image into a colour catalog.

Pixels are clustered in RGB space and each cluster becomes a catalog
entry whose count is the cluster's pixel coverage, so the analyse,
match and export commands weigh image colours the same way they weigh
colours counted from a codebase.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 16 colours and print the catalog
  hueweave extract wallpaper.jpg

  # Extract 8 colours into a catalog file
  hueweave extract --colours 8 --output colours.json wallpaper.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 16, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "catalog file to write (default: stdout)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	img, err := image.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	cfg := extract.DefaultConfig()
	cfg.Colors = extractColours

	samples, err := extract.Colors(img, cfg)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extraction complete", "path", args[0], "colours", len(samples))

	cat := make(catalog.Catalog, len(samples))
	for _, s := range samples {
		entry := catalog.Entry{Hex: s.Hex, Count: s.Count}
		if hsl, err := colour.HexToHSL(s.Hex); err == nil {
			entry.Hue = hsl.H
		}
		if family, err := colour.Classify(s.Hex); err == nil {
			entry.Category = string(family)
		}
		cat[s.Hex] = entry
	}

	if extractOutput == "" {
		for _, s := range samples {
			fmt.Printf("%s %s %d\n", colour.PreviewHex(s.Hex, 2), s.Hex, s.Count)
		}
		return nil
	}

	if err := catalog.Save(extractOutput, cat); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	logger.Info("wrote catalog", "path", extractOutput, "colours", len(cat))
	return nil
}
