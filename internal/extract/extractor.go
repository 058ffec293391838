// Package extract derives colour samples from images, as an alternative
// producer of the scheme engine's input alongside codebase catalogs.
package extract

import (
	"fmt"
	"image"

	"github.com/hueweave/hueweave/internal/colour"
)

// Config holds colour extraction settings.
type Config struct {
	// Colors is the number of clusters to extract.
	Colors int

	// MaxIterations bounds the k-means refinement loop.
	MaxIterations int

	// Convergence stops iteration once no centroid moves further than this
	// RGB distance.
	Convergence float64

	// MaxSamples limits how many pixels are sampled from large images.
	MaxSamples int
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		Colors:        16,
		MaxIterations: 20,
		Convergence:   2.0,
		MaxSamples:    5000,
	}
}

// Validate validates the extraction configuration.
func (c Config) Validate() error {
	if c.Colors < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.Colors)
	}
	if c.Colors > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", c.Colors)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1, got %d", c.MaxIterations)
	}
	return nil
}

// Colors extracts the dominant colours of an image by k-means clustering in
// RGB space. Each returned sample's count is the number of sampled pixels
// in its cluster, so occurrence counts reflect how much of the image the
// colour covers. Extraction is deterministic for a given image and config.
func Colors(img image.Image, cfg Config) ([]colour.Sample, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pixels := samplePixels(img, cfg.MaxSamples)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	return cluster(pixels, cfg), nil
}

// samplePixels collects up to maxSamples pixels from the image using grid
// sampling, which keeps extraction fast on large inputs.
func samplePixels(img image.Image, maxSamples int) []colour.RGB {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return nil
	}
	if maxSamples < 1 {
		maxSamples = 1
	}

	step := 1
	for (bounds.Dx()/step)*(bounds.Dy()/step) > maxSamples {
		step++
	}

	pixels := make([]colour.RGB, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, colour.RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return pixels
}
