package cli

import (
	"github.com/hueweave/hueweave/internal/colour"
	"github.com/spf13/pflag"
)

// zoneFlags holds the multi-zone analysis flags shared by the commands that
// run the derivation pipeline.
type zoneFlags struct {
	multiZone    bool
	highlightMin float64
	shadowMax    float64
}

func (z *zoneFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&z.multiZone, "multizone", false, "interpolate hues across highlight, midtone and shadow zones")
	fs.Float64Var(&z.highlightMin, "highlight-threshold", colour.DefaultHighlightMin, "minimum lightness for the highlight zone")
	fs.Float64Var(&z.shadowMax, "shadow-threshold", colour.DefaultShadowMax, "maximum lightness for the shadow zone")
}

func (z *zoneFlags) config() colour.ZoneConfig {
	return colour.ZoneConfig{
		Enabled:      z.multiZone,
		HighlightMin: z.highlightMin,
		ShadowMax:    z.shadowMax,
	}
}
