package simulate

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"macro-scenario-risk/internal/model"
)

// Draw is one sampled realization of the three inputs to the Taylor rule
// inversion. Produced per iteration and consumed immediately; not retained.
type Draw struct {
	NominalRate     float64
	LogRealGDP      float64
	LogPotentialGDP float64
}

// Sampler draws realizations from three independent normal distributions
// parameterized by one scenario's moments. All three distributions share a
// single random source, so the draw order is part of the reproducibility
// contract: nominal rate, then log real GDP, then log potential GDP, every
// iteration. Reordering would silently change seeded output.
type Sampler struct {
	rate         distuv.Normal
	realGDP      distuv.Normal
	potentialGDP distuv.Normal
}

// NewSampler builds a sampler over moments using src for all draws. A zero
// standard deviation degenerates to a point mass at the mean, which is valid.
func NewSampler(m model.ScenarioMoments, src rand.Source) *Sampler {
	return &Sampler{
		rate:         distuv.Normal{Mu: m.RateMean, Sigma: m.RateSD, Src: src},
		realGDP:      distuv.Normal{Mu: m.LogRealGDPMean, Sigma: m.LogRealGDPSD, Src: src},
		potentialGDP: distuv.Normal{Mu: m.LogPotentialGDPMean, Sigma: m.LogPotentialGDPSD, Src: src},
	}
}

// Draw consumes exactly three normal variates from the shared source, in the
// documented order.
func (s *Sampler) Draw() Draw {
	return Draw{
		NominalRate:     s.rate.Rand(),
		LogRealGDP:      s.realGDP.Rand(),
		LogPotentialGDP: s.potentialGDP.Rand(),
	}
}
