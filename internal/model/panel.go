package model

import (
	"errors"
	"fmt"
	"time"
)

// QuarterRecord is one row of the cleaned quarterly panel.
// Units:
// - NominalRate: percent (annualized policy rate)
// - RealGDP, PotentialGDP: levels (billions of chained dollars); must be > 0
//   before logs are taken downstream.
type QuarterRecord struct {
	Date         time.Time `json:"date"`
	NominalRate  float64   `json:"nominal_rate"`
	RealGDP      float64   `json:"real_gdp"`
	PotentialGDP float64   `json:"potential_gdp"`
}

// HistoricalPanel is the aligned quarterly input to the analysis. Upstream
// cleaning (frequency alignment, interpolation, joins) happens before this
// point; the panel is read-only once constructed.
type HistoricalPanel struct {
	Records []QuarterRecord
}

func NewHistoricalPanel(records []QuarterRecord) (*HistoricalPanel, error) {
	p := &HistoricalPanel{Records: records}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *HistoricalPanel) Validate() error {
	if p == nil {
		return errors.New("panel is nil")
	}
	for i, r := range p.Records {
		if r.Date.IsZero() {
			return fmt.Errorf("record %d: date is missing", i)
		}
		if i > 0 && !p.Records[i-1].Date.Before(r.Date) {
			return fmt.Errorf("record %d: dates must be strictly increasing (%s then %s)",
				i, p.Records[i-1].Date.Format("2006-01-02"), r.Date.Format("2006-01-02"))
		}
	}
	return nil
}

func (p *HistoricalPanel) Len() int { return len(p.Records) }

// NominalRates returns the rate column in panel order.
func (p *HistoricalPanel) NominalRates() []float64 {
	out := make([]float64, len(p.Records))
	for i, r := range p.Records {
		out[i] = r.NominalRate
	}
	return out
}

// RealGDPs returns the real GDP column in panel order.
func (p *HistoricalPanel) RealGDPs() []float64 {
	out := make([]float64, len(p.Records))
	for i, r := range p.Records {
		out[i] = r.RealGDP
	}
	return out
}

// PotentialGDPs returns the potential GDP column in panel order.
func (p *HistoricalPanel) PotentialGDPs() []float64 {
	out := make([]float64, len(p.Records))
	for i, r := range p.Records {
		out[i] = r.PotentialGDP
	}
	return out
}
