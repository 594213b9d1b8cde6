package handlers

import (
	"net/http"

	"macro-scenario-risk/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles scenario discovery requests
type ScenarioHandler struct{}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{
		{
			Name:        "baseline",
			Description: "Sampling moments taken directly from the historical panel.",
		},
		{
			Name:        "stressed",
			Description: "Log real GDP mean halved and standard deviation doubled; rate and potential GDP moments unchanged. Fixed stress policy.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
