package extract

import (
	"math"
	"sort"

	"github.com/hueweave/hueweave/internal/colour"
)

type centroid struct {
	r, g, b float64
}

// cluster runs k-means over the sampled pixels and returns one sample per
// non-empty cluster, ordered by descending count with hex as tie-break.
func cluster(pixels []colour.RGB, cfg Config) []colour.Sample {
	k := cfg.Colors
	if k > len(pixels) {
		k = len(pixels)
	}

	centroids := initialCentroids(pixels, k)
	assignments := make([]int, len(pixels))

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		for i, p := range pixels {
			assignments[i] = nearestCentroid(p, centroids)
		}

		moved := recompute(pixels, assignments, centroids)
		if moved <= cfg.Convergence {
			break
		}
	}

	counts := make([]int, len(centroids))
	for _, a := range assignments {
		counts[a]++
	}

	samples := make([]colour.Sample, 0, len(centroids))
	for i, c := range centroids {
		if counts[i] == 0 {
			continue
		}
		rgb := colour.RGB{R: clampByte(c.r), G: clampByte(c.g), B: clampByte(c.b)}
		samples = append(samples, colour.Sample{Hex: rgb.Hex(), Count: counts[i]})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		if samples[i].Count != samples[j].Count {
			return samples[i].Count > samples[j].Count
		}
		return samples[i].Hex < samples[j].Hex
	})
	return samples
}

// initialCentroids seeds clusters from evenly spaced pixels so repeated runs
// over the same image produce identical results.
func initialCentroids(pixels []colour.RGB, k int) []centroid {
	centroids := make([]centroid, k)
	for i := range centroids {
		p := pixels[i*len(pixels)/k]
		centroids[i] = centroid{r: float64(p.R), g: float64(p.G), b: float64(p.B)}
	}
	return centroids
}

func nearestCentroid(p colour.RGB, centroids []centroid) int {
	best := 0
	bestDist := sqDist(p, centroids[0])
	for i := 1; i < len(centroids); i++ {
		if d := sqDist(p, centroids[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// recompute moves each centroid to the mean of its assigned pixels and
// returns the largest distance any centroid moved. Empty clusters keep
// their previous position.
func recompute(pixels []colour.RGB, assignments []int, centroids []centroid) float64 {
	sums := make([]centroid, len(centroids))
	counts := make([]int, len(centroids))
	for i, p := range pixels {
		a := assignments[i]
		sums[a].r += float64(p.R)
		sums[a].g += float64(p.G)
		sums[a].b += float64(p.B)
		counts[a]++
	}

	maxMoved := 0.0
	for i := range centroids {
		if counts[i] == 0 {
			continue
		}
		next := centroid{
			r: sums[i].r / float64(counts[i]),
			g: sums[i].g / float64(counts[i]),
			b: sums[i].b / float64(counts[i]),
		}
		dr := next.r - centroids[i].r
		dg := next.g - centroids[i].g
		db := next.b - centroids[i].b
		moved := math.Sqrt(dr*dr + dg*dg + db*db)
		if moved > maxMoved {
			maxMoved = moved
		}
		centroids[i] = next
	}
	return maxMoved
}

func sqDist(p colour.RGB, c centroid) float64 {
	dr := float64(p.R) - c.r
	dg := float64(p.G) - c.g
	db := float64(p.B) - c.b
	return dr*dr + dg*dg + db*db
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
