package model

import "fmt"

// Scenario names a distributional assumption set for a simulation run.
// Keep these values stable; they are intended for CSV and API output.
type Scenario string

const (
	ScenarioBaseline Scenario = "baseline"
	ScenarioStressed Scenario = "stressed"
)

// Scenarios lists the supported scenarios in canonical order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioBaseline, ScenarioStressed}
}

func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case ScenarioBaseline:
		return ScenarioBaseline, nil
	case ScenarioStressed:
		return ScenarioStressed, nil
	default:
		return "", fmt.Errorf("unsupported scenario: %q", s)
	}
}
