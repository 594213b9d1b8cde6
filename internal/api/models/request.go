package models

import "macro-scenario-risk/internal/model"

// SimulateRequest represents the request body for running a scenario analysis.
// The panel is the cleaned quarterly table produced by the caller's data
// pipeline; the server performs no fetching or alignment.
type SimulateRequest struct {
	Panel     []model.QuarterRecord `json:"panel" binding:"required"`
	Constants ConstantsConfig       `json:"constants"`
	Options   SimulateOptions       `json:"options"`
}

// ConstantsConfig supplies the exogenous Taylor rule terms.
type ConstantsConfig struct {
	RStar  float64 `json:"r_star"`
	PiStar float64 `json:"pi_star"`
}

// SimulateOptions contains optional simulation parameters.
type SimulateOptions struct {
	Iterations      int      `json:"iterations,omitempty"`       // default: 10000
	Seed            *uint64  `json:"seed,omitempty"`             // default: time-based
	ConfidenceLevel float64  `json:"confidence_level,omitempty"` // default: 0.05
	Scenarios       []string `json:"scenarios,omitempty"`        // default: baseline, stressed

	IncludeDistribution bool `json:"include_distribution,omitempty"` // default: false
	DensityGridSize     int  `json:"density_grid_size,omitempty"`    // 0 = no density output
}

// RiskRequest represents a request to tail-analyze an existing distribution.
type RiskRequest struct {
	Results         []float64 `json:"results" binding:"required"`
	ConfidenceLevel float64   `json:"confidence_level" binding:"required"`
}
