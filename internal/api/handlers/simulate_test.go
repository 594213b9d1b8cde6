package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macro-scenario-risk/internal/api/models"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/simulate", NewSimulateHandler(nil).RunSimulation)
	r.POST("/api/v1/risk", NewRiskHandler().AnalyzeRisk)
	r.GET("/api/v1/scenarios", NewScenarioHandler().ListScenarios)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func samplePanel() []map[string]any {
	return []map[string]any{
		{"date": "2019-01-01T00:00:00Z", "nominal_rate": 2.40, "real_gdp": 18950.3, "potential_gdp": 19023.1},
		{"date": "2019-04-01T00:00:00Z", "nominal_rate": 2.40, "real_gdp": 19020.6, "potential_gdp": 19110.0},
		{"date": "2019-07-01T00:00:00Z", "nominal_rate": 2.10, "real_gdp": 19141.7, "potential_gdp": 19196.9},
		{"date": "2019-10-01T00:00:00Z", "nominal_rate": 1.75, "real_gdp": 19253.9, "potential_gdp": 19284.5},
	}
}

func TestRunSimulation(t *testing.T) {
	r := newRouter()

	t.Run("runs both scenarios", func(t *testing.T) {
		seed := uint64(2)
		req := map[string]any{
			"panel":     samplePanel(),
			"constants": map[string]any{"r_star": 2.0, "pi_star": 2.0},
			"options": map[string]any{
				"iterations": 2000,
				"seed":       seed,
			},
		}
		w := doJSON(t, r, http.MethodPost, "/api/v1/simulate", req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp models.SimulateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, 2000, resp.Iterations)
		assert.Equal(t, seed, resp.Seed)
		require.Len(t, resp.Scenarios, 2)
		assert.Equal(t, "baseline", resp.Scenarios[0].Scenario)
		assert.Equal(t, "stressed", resp.Scenarios[1].Scenario)
		require.NotNil(t, resp.Comparison)

		base := resp.Scenarios[0]
		stressed := resp.Scenarios[1]
		assert.InDelta(t, base.Moments.LogRealGDPMean/2, stressed.Moments.LogRealGDPMean, 1e-9)
		assert.InDelta(t, base.Moments.LogRealGDPSD*2, stressed.Moments.LogRealGDPSD, 1e-9)
		assert.Equal(t, 2000, base.Summary.Count)
		assert.LessOrEqual(t, base.Risk.LowerVaR, base.Risk.UpperVaR)
	})

	t.Run("identical seeds produce identical output", func(t *testing.T) {
		req := map[string]any{
			"panel": samplePanel(),
			"options": map[string]any{
				"iterations":           500,
				"seed":                 7,
				"include_distribution": true,
				"scenarios":            []string{"baseline"},
			},
		}
		w1 := doJSON(t, r, http.MethodPost, "/api/v1/simulate", req)
		w2 := doJSON(t, r, http.MethodPost, "/api/v1/simulate", req)
		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
		assert.Equal(t, w1.Body.String(), w2.Body.String())
	})

	t.Run("density output when requested", func(t *testing.T) {
		req := map[string]any{
			"panel": samplePanel(),
			"options": map[string]any{
				"iterations":        200,
				"seed":              1,
				"density_grid_size": 64,
				"scenarios":         []string{"baseline"},
			},
		}
		w := doJSON(t, r, http.MethodPost, "/api/v1/simulate", req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.SimulateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Scenarios, 1)
		require.NotNil(t, resp.Scenarios[0].Density)
		assert.Len(t, resp.Scenarios[0].Density.X, 64)
	})

	t.Run("rejects missing panel", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/simulate", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown scenario", func(t *testing.T) {
		req := map[string]any{
			"panel":   samplePanel(),
			"options": map[string]any{"scenarios": []string{"doom"}},
		}
		w := doJSON(t, r, http.MethodPost, "/api/v1/simulate", req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_SCENARIO")
	})

	t.Run("rejects short panel", func(t *testing.T) {
		req := map[string]any{
			"panel": samplePanel()[:1],
		}
		w := doJSON(t, r, http.MethodPost, "/api/v1/simulate", req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "INSUFFICIENT_DATA")
	})
}

func TestAnalyzeRisk(t *testing.T) {
	r := newRouter()

	t.Run("point mass reports null CVaRs", func(t *testing.T) {
		results := make([]float64, 100)
		for i := range results {
			results[i] = 5.0
		}
		w := doJSON(t, r, http.MethodPost, "/api/v1/risk", map[string]any{
			"results":          results,
			"confidence_level": 0.05,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.RiskStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 5.0, resp.LowerVaR)
		assert.Equal(t, 5.0, resp.UpperVaR)
		assert.Nil(t, resp.LowerCVaR)
		assert.Nil(t, resp.UpperCVaR)
	})

	t.Run("rejects invalid confidence", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/risk", map[string]any{
			"results":          []float64{1, 2, 3},
			"confidence_level": 2.0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CONFIDENCE_LEVEL")
	})
}

func TestListScenarios(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/scenarios", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "baseline")
	assert.Contains(t, w.Body.String(), "stressed")
}
