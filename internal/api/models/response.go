package models

// SimulateResponse represents the response from a scenario analysis run.
type SimulateResponse struct {
	Iterations      int              `json:"iterations"`
	Seed            uint64           `json:"seed"`
	ConfidenceLevel float64          `json:"confidence_level"`
	Scenarios       []ScenarioResult `json:"scenarios"`
	Comparison      *Comparison      `json:"comparison,omitempty"`
}

// ScenarioResult contains one scenario's outputs.
type ScenarioResult struct {
	Scenario     string    `json:"scenario"`
	Moments      Moments   `json:"moments"`
	Summary      Summary   `json:"summary"`
	Risk         RiskStats `json:"risk"`
	Density      *Density  `json:"density,omitempty"`
	Distribution []float64 `json:"distribution,omitempty"`
}

// Moments mirrors the per-scenario sampling moments for transparency.
type Moments struct {
	RateMean            float64 `json:"rate_mean"`
	RateSD              float64 `json:"rate_sd"`
	LogRealGDPMean      float64 `json:"log_real_gdp_mean"`
	LogRealGDPSD        float64 `json:"log_real_gdp_sd"`
	LogPotentialGDPMean float64 `json:"log_potential_gdp_mean"`
	LogPotentialGDPSD   float64 `json:"log_potential_gdp_sd"`
}

// Summary is the five-number summary plus mean.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// RiskStats carries VaR/CVaR. CVaR fields are null when the strict tail
// beyond the corresponding VaR is empty (defined-undefined, not an error).
type RiskStats struct {
	ConfidenceLevel float64  `json:"confidence_level"`
	LowerVaR        float64  `json:"lower_var"`
	UpperVaR        float64  `json:"upper_var"`
	LowerCVaR       *float64 `json:"lower_cvar"`
	UpperCVaR       *float64 `json:"upper_cvar"`
}

// Density is a kernel density estimate sampled on a grid.
type Density struct {
	X         []float64 `json:"x"`
	Density   []float64 `json:"density"`
	Bandwidth float64   `json:"bandwidth"`
}

// Comparison contrasts the baseline and stressed distributions.
type Comparison struct {
	MeanShift float64 `json:"mean_shift"`
	IQRRatio  float64 `json:"iqr_ratio"`
}

// ScenarioInfo describes one supported scenario for discovery endpoints.
type ScenarioInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
