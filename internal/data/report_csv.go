package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"macro-scenario-risk/internal/analysis"
	"macro-scenario-risk/internal/model"
	"macro-scenario-risk/internal/risk"
)

// ScenarioReportRow is one scenario's combined summary and tail statistics,
// the primary tabular artifact of a run.
type ScenarioReportRow struct {
	Scenario model.Scenario
	Summary  analysis.Summary
	Risk     risk.TailRiskReport
}

func WriteReportCSV(path string, rows []ScenarioReportRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"scenario",
		"count",
		"min",
		"q1",
		"median",
		"mean",
		"q3",
		"max",
		"confidence_level",
		"lower_var",
		"upper_var",
		"lower_cvar",
		"upper_cvar",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			string(r.Scenario),
			strconv.Itoa(r.Summary.Count),
			fmtFloat(r.Summary.Min),
			fmtFloat(r.Summary.Q1),
			fmtFloat(r.Summary.Median),
			fmtFloat(r.Summary.Mean),
			fmtFloat(r.Summary.Q3),
			fmtFloat(r.Summary.Max),
			fmtFloat(r.Risk.ConfidenceLevel),
			fmtFloat(r.Risk.LowerVaR),
			fmtFloat(r.Risk.UpperVaR),
			fmtCVaR(r.Risk.LowerCVaR, r.Risk.LowerCVaRValid),
			fmtCVaR(r.Risk.UpperCVaR, r.Risk.UpperCVaRValid),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

// WriteDistributionCSV writes one simulated inflation value per row, in draw
// order, for downstream histogram/density rendering.
func WriteDistributionCSV(path string, scenario model.Scenario, results []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"index", "scenario", "inflation"}); err != nil {
		return err
	}
	for i, v := range results {
		row := []string{strconv.Itoa(i), string(scenario), fmtFloat(v)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// LoadDistributionCSV reads a distribution CSV produced by
// WriteDistributionCSV back into memory, preserving draw order.
func LoadDistributionCSV(path string) (model.Scenario, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return "", nil, fmt.Errorf("%s: no draws", path)
	}

	scenario := model.Scenario(rows[1][1])
	results := make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 3 {
			return "", nil, fmt.Errorf("%s: row %d has %d fields, want 3", path, i+2, len(row))
		}
		v, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return "", nil, fmt.Errorf("%s: row %d: %w", path, i+2, err)
		}
		results = append(results, v)
	}
	return scenario, results, nil
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

// Undefined CVaRs (empty strict tail) are written as empty cells, not zeros.
func fmtCVaR(x float64, valid bool) string {
	if !valid {
		return ""
	}
	return fmtFloat(x)
}
