// Hueweave - a colour scheme derivation tool
//
// Hueweave groups colours into hue families, measures how each family is
// used, and synthesizes complete shade ramps ready for theming.
package main

import (
	"github.com/hueweave/hueweave/internal/cli"
)

func main() {
	cli.Execute()
}
