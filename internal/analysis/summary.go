// Package analysis produces descriptive summaries and density estimates used
// to compare scenario result distributions.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"macro-scenario-risk/internal/risk"
)

// Summary is a five-number summary plus the mean for one result distribution.
// Quartiles use the same empirical-quantile convention as the tail analyzer so
// that reports are internally consistent.
type Summary struct {
	Count  int
	Min    float64
	Q1     float64
	Median float64
	Mean   float64
	Q3     float64
	Max    float64
}

func Summarize(results []float64) Summary {
	s := Summary{Count: len(results)}
	if len(results) == 0 {
		return s
	}
	sorted := make([]float64, len(results))
	copy(sorted, results)
	sort.Float64s(sorted)

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q1 = risk.QuantileSorted(sorted, 0.25)
	s.Median = risk.QuantileSorted(sorted, 0.5)
	s.Q3 = risk.QuantileSorted(sorted, 0.75)
	s.Mean = stat.Mean(sorted, nil)
	return s
}

// Comparison pairs the baseline and stressed summaries with simple shift
// measures for tabular output.
type Comparison struct {
	Baseline Summary
	Stressed Summary

	// MeanShift is stressed mean minus baseline mean.
	MeanShift float64
	// IQRRatio is the stressed interquartile range over the baseline's;
	// 0 when the baseline IQR is zero.
	IQRRatio float64
}

func Compare(baseline, stressed []float64) Comparison {
	b := Summarize(baseline)
	s := Summarize(stressed)
	c := Comparison{
		Baseline:  b,
		Stressed:  s,
		MeanShift: s.Mean - b.Mean,
	}
	if iqr := b.Q3 - b.Q1; iqr != 0 {
		c.IQRRatio = (s.Q3 - s.Q1) / iqr
	}
	return c
}
