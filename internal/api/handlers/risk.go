package handlers

import (
	"errors"
	"net/http"

	"macro-scenario-risk/internal/api/models"
	"macro-scenario-risk/internal/risk"

	"github.com/gin-gonic/gin"
)

// RiskHandler handles standalone tail-analysis requests
type RiskHandler struct{}

// NewRiskHandler creates a new risk handler
func NewRiskHandler() *RiskHandler {
	return &RiskHandler{}
}

// AnalyzeRisk handles POST /api/v1/risk
func (h *RiskHandler) AnalyzeRisk(c *gin.Context) {
	var req models.RiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	rep, err := risk.Analyze(req.Results, req.ConfidenceLevel)
	if err != nil {
		code := "RISK_ERROR"
		switch {
		case errors.Is(err, risk.ErrInvalidConfidenceLevel):
			code = "INVALID_CONFIDENCE_LEVEL"
		case errors.Is(err, risk.ErrEmptyDistribution):
			code = "EMPTY_DISTRIBUTION"
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: code, Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, toRiskStats(rep))
}
