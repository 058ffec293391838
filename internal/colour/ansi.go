package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 4
)

// Preview returns an ANSI-coloured swatch for a colour, width characters
// wide, using a truecolor background block.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewHex returns a swatch for a hex colour string, or a plain
// placeholder when the colour cannot be parsed.
func PreviewHex(hex string, width int) string {
	rgb, err := ParseHex(hex)
	if err != nil {
		if width <= 0 {
			width = defaultWidth
		}
		return strings.Repeat("?", width)
	}
	return Preview(rgb, width)
}

// SwatchRow renders a row of swatches for a shade list.
func SwatchRow(shades []string, width int) string {
	parts := make([]string, len(shades))
	for i, s := range shades {
		parts[i] = PreviewHex(s, width)
	}
	return strings.Join(parts, "")
}
