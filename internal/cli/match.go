package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hueweave/hueweave/internal/catalog"
	"github.com/hueweave/hueweave/internal/colour"
	"github.com/spf13/cobra"
)

var (
	matchZones  zoneFlags
	matchFamily string
	matchTop    int
	matchFormat string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <catalog> <colour>",
	Short: "Find the nearest scheme colours for a colour",
	Long: `Derive schemes from a catalog and find the scheme shades nearest to a
query colour by RGB distance.

Examples:
  # Nearest scheme colour
  hueweave match colours.json "#1c7ed6"

  # Five nearest, ranked
  hueweave match --top 5 colours.json "#1c7ed6"

  # Restrict the search to one family
  hueweave match --family blue colours.json "#1c7ed6"`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	matchZones.register(matchCmd.Flags())
	matchCmd.Flags().StringVar(&matchFamily, "family", "", "restrict matching to one hue family")
	matchCmd.Flags().IntVarP(&matchTop, "top", "n", 1, "number of matches to report")
	matchCmd.Flags().StringVarP(&matchFormat, "format", "f", "text", "output format (text, json)")
}

// runMatch executes the match command.
func runMatch(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	query := args[1]

	report := colour.AnalyzeScheme(cat.Samples(), matchZones.config())

	var matches []colour.SchemeMatch
	if matchFamily != "" {
		m, ok := colour.NearestInFamily(query, colour.Family(matchFamily), report.Schemes)
		if !ok {
			return fmt.Errorf("no derived scheme for family %q", matchFamily)
		}
		matches = []colour.SchemeMatch{m}
	} else if matchTop > 1 {
		matches = colour.NearestSchemeColors(query, report.Schemes, matchTop)
	} else {
		matches = []colour.SchemeMatch{colour.NearestSchemeColor(query, report.Schemes)}
	}

	switch matchFormat {
	case "text":
		var b strings.Builder
		for _, m := range matches {
			fmt.Fprintf(&b, "%s %s (distance %.1f)\n", m.Name, m.Hex, m.Distance)
		}
		fmt.Print(b.String())
	case "json":
		out, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode matches: %w", err)
		}
		fmt.Println(string(out))
	default:
		return fmt.Errorf("unknown format: %s (supported: text, json)", matchFormat)
	}
	return nil
}
