package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DensityEstimate is a Gaussian kernel density estimate evaluated on a fixed
// grid, for the plotting/reporting layer to render.
type DensityEstimate struct {
	// X is the evaluation grid, ascending.
	X []float64
	// Density holds the estimated density at each grid point.
	Density []float64
	// Bandwidth is the kernel bandwidth used (Silverman's rule).
	Bandwidth float64
}

// KernelDensity estimates the density of results on a grid of the given size.
// The grid spans [min−3h, max+3h] so the tails decay visibly. Returns a zero
// estimate for empty input or a non-positive grid size.
func KernelDensity(results []float64, gridSize int) DensityEstimate {
	if len(results) == 0 || gridSize <= 0 {
		return DensityEstimate{}
	}

	minV := math.Inf(1)
	maxV := math.Inf(-1)
	for _, v := range results {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	h := silvermanBandwidth(results)

	lo := minV - 3*h
	hi := maxV + 3*h
	if gridSize == 1 {
		hi = lo
	}

	kernel := distuv.Normal{Mu: 0, Sigma: 1}
	n := float64(len(results))

	est := DensityEstimate{
		X:         make([]float64, gridSize),
		Density:   make([]float64, gridSize),
		Bandwidth: h,
	}
	step := 0.0
	if gridSize > 1 {
		step = (hi - lo) / float64(gridSize-1)
	}
	for i := 0; i < gridSize; i++ {
		x := lo + step*float64(i)
		sum := 0.0
		for _, v := range results {
			sum += kernel.Prob((x - v) / h)
		}
		est.X[i] = x
		est.Density[i] = sum / (n * h)
	}
	return est
}

// silvermanBandwidth is Silverman's rule of thumb, 1.06·σ·n^(−1/5), with a
// small floor so point-mass inputs still produce a finite density.
func silvermanBandwidth(results []float64) float64 {
	sd := stat.StdDev(results, nil)
	h := 1.06 * sd * math.Pow(float64(len(results)), -0.2)
	if h <= 0 || math.IsNaN(h) {
		return 1e-3
	}
	return h
}
