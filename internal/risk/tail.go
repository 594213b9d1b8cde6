// Package risk computes two-sided tail statistics (VaR and CVaR) over a
// simulated result distribution.
package risk

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidConfidenceLevel is returned when the confidence level does
	// not lie strictly between 0 and 1.
	ErrInvalidConfidenceLevel = errors.New("confidence level must be in (0, 1)")

	// ErrEmptyDistribution is returned when tail analysis is requested on an
	// empty result distribution.
	ErrEmptyDistribution = errors.New("result distribution is empty")
)

// TailRiskReport holds two-sided tail statistics for one distribution.
//
// LowerCVaR/UpperCVaR are the means of the observations strictly beyond the
// corresponding VaR. With small samples or extreme confidence levels a strict
// tail can be empty; that is a defined "no observations" outcome, reported via
// the Valid flags rather than as an error or a zero.
type TailRiskReport struct {
	ConfidenceLevel float64

	LowerVaR float64
	UpperVaR float64

	LowerCVaR      float64
	LowerCVaRValid bool
	UpperCVaR      float64
	UpperCVaRValid bool
}

// Analyze computes the report for results at the given two-sided confidence
// level: the lower VaR is the confidence/2 quantile, the upper VaR the
// 1-confidence/2 quantile, both via linear interpolation between order
// statistics (the type-7 empirical quantile).
func Analyze(results []float64, confidence float64) (TailRiskReport, error) {
	if confidence <= 0 || confidence >= 1 {
		return TailRiskReport{}, fmt.Errorf("%w: got %g", ErrInvalidConfidenceLevel, confidence)
	}
	if len(results) == 0 {
		return TailRiskReport{}, ErrEmptyDistribution
	}

	sorted := make([]float64, len(results))
	copy(sorted, results)
	sort.Float64s(sorted)

	lowerVaR := QuantileSorted(sorted, confidence/2)
	upperVaR := QuantileSorted(sorted, 1-confidence/2)

	rep := TailRiskReport{
		ConfidenceLevel: confidence,
		LowerVaR:        lowerVaR,
		UpperVaR:        upperVaR,
	}

	// Strict inequalities: observations exactly at the VaR are not tail members.
	var lowerTail, upperTail []float64
	for _, v := range sorted {
		if v < lowerVaR {
			lowerTail = append(lowerTail, v)
		}
		if v > upperVaR {
			upperTail = append(upperTail, v)
		}
	}
	if len(lowerTail) > 0 {
		rep.LowerCVaR = stat.Mean(lowerTail, nil)
		rep.LowerCVaRValid = true
	}
	if len(upperTail) > 0 {
		rep.UpperCVaR = stat.Mean(upperTail, nil)
		rep.UpperCVaRValid = true
	}
	return rep, nil
}

// QuantileSorted returns the q-quantile of an ascending-sorted slice using
// linear interpolation between order statistics. q outside [0,1] clamps to the
// extremes; an empty slice yields NaN.
func QuantileSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
