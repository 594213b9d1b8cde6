package handlers

import (
	"errors"
	"net/http"
	"time"

	"macro-scenario-risk/internal/analysis"
	"macro-scenario-risk/internal/api/models"
	"macro-scenario-risk/internal/model"
	"macro-scenario-risk/internal/moments"
	"macro-scenario-risk/internal/risk"
	"macro-scenario-risk/internal/simulate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SimulateHandler handles scenario-analysis requests
type SimulateHandler struct {
	engine *simulate.Engine
	logger *zap.Logger
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler(logger *zap.Logger) *SimulateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulateHandler{engine: simulate.New(), logger: logger}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	panel, err := model.NewHistoricalPanel(req.Panel)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PANEL",
				Message: err.Error(),
			},
		})
		return
	}

	opts := req.Options
	if opts.Iterations == 0 {
		opts.Iterations = 10000
	}
	if opts.ConfidenceLevel == 0 {
		opts.ConfidenceLevel = 0.05
	}
	if len(opts.Scenarios) == 0 {
		for _, s := range model.Scenarios() {
			opts.Scenarios = append(opts.Scenarios, string(s))
		}
	}
	seed := uint64(time.Now().UnixNano())
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	constants := model.TaylorRuleConstants{RStar: req.Constants.RStar, PiStar: req.Constants.PiStar}

	resp := models.SimulateResponse{
		Iterations:      opts.Iterations,
		Seed:            seed,
		ConfidenceLevel: opts.ConfidenceLevel,
	}

	distributions := map[model.Scenario][]float64{}
	for _, name := range opts.Scenarios {
		scenario, err := model.ParseScenario(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_SCENARIO",
					Message: err.Error(),
				},
			})
			return
		}

		m, err := moments.Estimate(panel, scenario)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INSUFFICIENT_DATA",
					Message: err.Error(),
				},
			})
			return
		}

		// Each scenario reseeds independently, so results do not depend on
		// the order scenarios are listed in.
		results, err := h.engine.Run(opts.Iterations, constants, m, seed)
		if err != nil {
			code := "SIMULATION_ERROR"
			status := http.StatusInternalServerError
			if errors.Is(err, simulate.ErrInvalidIterationCount) {
				code = "INVALID_ITERATIONS"
				status = http.StatusBadRequest
			}
			c.JSON(status, models.ErrorResponse{
				Error: models.ErrorDetail{Code: code, Message: err.Error()},
			})
			return
		}
		distributions[scenario] = results

		rep, err := risk.Analyze(results, opts.ConfidenceLevel)
		if err != nil {
			code := "RISK_ERROR"
			if errors.Is(err, risk.ErrInvalidConfidenceLevel) {
				code = "INVALID_CONFIDENCE_LEVEL"
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{Code: code, Message: err.Error()},
			})
			return
		}

		sr := models.ScenarioResult{
			Scenario: string(scenario),
			Moments: models.Moments{
				RateMean:            m.RateMean,
				RateSD:              m.RateSD,
				LogRealGDPMean:      m.LogRealGDPMean,
				LogRealGDPSD:        m.LogRealGDPSD,
				LogPotentialGDPMean: m.LogPotentialGDPMean,
				LogPotentialGDPSD:   m.LogPotentialGDPSD,
			},
			Summary: toSummary(analysis.Summarize(results)),
			Risk:    toRiskStats(rep),
		}
		if opts.DensityGridSize > 0 {
			kde := analysis.KernelDensity(results, opts.DensityGridSize)
			sr.Density = &models.Density{X: kde.X, Density: kde.Density, Bandwidth: kde.Bandwidth}
		}
		if opts.IncludeDistribution {
			sr.Distribution = results
		}
		resp.Scenarios = append(resp.Scenarios, sr)
	}

	if b, ok := distributions[model.ScenarioBaseline]; ok {
		if s, ok := distributions[model.ScenarioStressed]; ok {
			cmp := analysis.Compare(b, s)
			resp.Comparison = &models.Comparison{MeanShift: cmp.MeanShift, IQRRatio: cmp.IQRRatio}
		}
	}

	h.logger.Info("simulation complete",
		zap.Int("iterations", opts.Iterations),
		zap.Uint64("seed", seed),
		zap.Int("scenarios", len(resp.Scenarios)),
	)
	c.JSON(http.StatusOK, resp)
}

func toSummary(s analysis.Summary) models.Summary {
	return models.Summary{
		Count:  s.Count,
		Min:    s.Min,
		Q1:     s.Q1,
		Median: s.Median,
		Mean:   s.Mean,
		Q3:     s.Q3,
		Max:    s.Max,
	}
}

func toRiskStats(rep risk.TailRiskReport) models.RiskStats {
	out := models.RiskStats{
		ConfidenceLevel: rep.ConfidenceLevel,
		LowerVaR:        rep.LowerVaR,
		UpperVaR:        rep.UpperVaR,
	}
	if rep.LowerCVaRValid {
		v := rep.LowerCVaR
		out.LowerCVaR = &v
	}
	if rep.UpperCVaRValid {
		v := rep.UpperCVaR
		out.UpperCVaR = &v
	}
	return out
}
