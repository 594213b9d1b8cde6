// Package simulate contains the Monte Carlo engine: scenario sampling and the
// closed-form Taylor rule inversion applied per draw.
package simulate

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"macro-scenario-risk/internal/model"
)

// ErrInvalidIterationCount is returned when a run is requested with a
// non-positive iteration count.
var ErrInvalidIterationCount = errors.New("iterations must be positive")

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes one Monte Carlo pass: iterations independent draws under the
// given moments, each inverted through the Taylor rule, collected in draw
// order. The random source is created here from seed, never ambient, so two
// calls with identical arguments produce identical output element-for-element
// regardless of what else has run. A run either completes all iterations or
// fails before producing any results.
func (e *Engine) Run(iterations int, constants model.TaylorRuleConstants, m model.ScenarioMoments, seed uint64) ([]float64, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterationCount, iterations)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid moments: %w", err)
	}

	sampler := NewSampler(m, rand.NewSource(seed))

	results := make([]float64, iterations)
	for i := 0; i < iterations; i++ {
		d := sampler.Draw()
		results[i] = InvertTaylorRule(d.NominalRate, constants, d.LogRealGDP, d.LogPotentialGDP)
	}
	return results, nil
}
