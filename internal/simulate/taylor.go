package simulate

import "macro-scenario-risk/internal/model"

// InvertTaylorRule solves the standard Taylor rule
//
//	i = r* + 1.5π − 0.5π* + 0.5(y − y*)
//
// for the inflation rate π, given a nominal rate draw and the output gap in
// logs:
//
//	π = (i − r* + 0.5π* − 0.5(y − y*)) / 1.5
//
// The 1.5 divisor is the inflation-gap weight of the rule; 0.5 weights both
// the target-inflation term and the output gap. Total over all real inputs.
func InvertTaylorRule(nominalRate float64, c model.TaylorRuleConstants, logRealGDP, logPotentialGDP float64) float64 {
	return (nominalRate - c.RStar + 0.5*c.PiStar - 0.5*(logRealGDP-logPotentialGDP)) / 1.5
}
