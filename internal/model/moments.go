package model

import "errors"

// ScenarioMoments parameterizes the three sampling distributions for one
// scenario. Rate and potential-GDP moments are identical across scenarios;
// only the log real GDP moments differ between baseline and stressed.
type ScenarioMoments struct {
	Scenario Scenario

	RateMean float64
	RateSD   float64

	LogRealGDPMean float64
	LogRealGDPSD   float64

	LogPotentialGDPMean float64
	LogPotentialGDPSD   float64
}

func (m ScenarioMoments) Validate() error {
	if m.RateSD < 0 || m.LogRealGDPSD < 0 || m.LogPotentialGDPSD < 0 {
		return errors.New("standard deviations must be >= 0")
	}
	return nil
}

// TaylorRuleConstants are the exogenous terms of the rule, fixed for the
// lifetime of a run. RStar is the real equilibrium rate, PiStar the target
// inflation rate, both in percent.
type TaylorRuleConstants struct {
	RStar  float64
	PiStar float64
}
