// Package moments derives per-scenario sampling moments from a historical panel.
package moments

import (
	"errors"
	"fmt"
	"math"

	"macro-scenario-risk/internal/model"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData is returned when the panel cannot support moment
// estimation: fewer than 2 records (sample standard deviation undefined) or a
// non-positive GDP value (log undefined).
var ErrInsufficientData = errors.New("insufficient data for moment estimation")

// Estimate computes ScenarioMoments for the requested scenario.
//
// Baseline uses the sample mean and standard deviation of log real GDP
// directly. Stressed halves the log real GDP mean and doubles its standard
// deviation. This is a fixed stress policy, not a statistically derived shock;
// it is kept as-is deliberately. Rate and log potential GDP moments are shared
// by both scenarios.
func Estimate(panel *model.HistoricalPanel, scenario model.Scenario) (model.ScenarioMoments, error) {
	if panel == nil || panel.Len() < 2 {
		n := 0
		if panel != nil {
			n = panel.Len()
		}
		return model.ScenarioMoments{}, fmt.Errorf("%w: need at least 2 records, got %d", ErrInsufficientData, n)
	}

	logReal, err := logColumn(panel.RealGDPs(), "real_gdp")
	if err != nil {
		return model.ScenarioMoments{}, err
	}
	logPotential, err := logColumn(panel.PotentialGDPs(), "potential_gdp")
	if err != nil {
		return model.ScenarioMoments{}, err
	}

	rateMean, rateSD := stat.MeanStdDev(panel.NominalRates(), nil)
	logRealMean, logRealSD := stat.MeanStdDev(logReal, nil)
	logPotMean, logPotSD := stat.MeanStdDev(logPotential, nil)

	if scenario == model.ScenarioStressed {
		logRealMean /= 2
		logRealSD *= 2
	}

	return model.ScenarioMoments{
		Scenario:            scenario,
		RateMean:            rateMean,
		RateSD:              rateSD,
		LogRealGDPMean:      logRealMean,
		LogRealGDPSD:        logRealSD,
		LogPotentialGDPMean: logPotMean,
		LogPotentialGDPSD:   logPotSD,
	}, nil
}

func logColumn(vals []float64, name string) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		if v <= 0 {
			return nil, fmt.Errorf("%w: %s[%d] = %g must be > 0", ErrInsufficientData, name, i, v)
		}
		out[i] = math.Log(v)
	}
	return out, nil
}
