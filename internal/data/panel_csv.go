package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"macro-scenario-risk/internal/model"
)

// panel CSV columns, in order.
var panelHeader = []string{"date", "nominal_rate", "real_gdp", "potential_gdp"}

// LoadPanelCSV reads a cleaned quarterly panel from a CSV file with columns
// date, nominal_rate, real_gdp, potential_gdp. Dates accept RFC3339,
// 2006-01-02, or quarter notation like 2020Q1 (mapped to the quarter's first
// day). Panel invariants are validated on construction.
func LoadPanelCSV(path string) (*model.HistoricalPanel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records := make([]model.QuarterRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(panelHeader) {
			return nil, fmt.Errorf("%s: row %d has %d fields, want %d", path, i+2, len(row), len(panelHeader))
		}
		date, err := ParsePanelDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+2, err)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: nominal_rate: %w", path, i+2, err)
		}
		realGDP, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: real_gdp: %w", path, i+2, err)
		}
		potGDP, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: potential_gdp: %w", path, i+2, err)
		}
		records = append(records, model.QuarterRecord{
			Date:         date,
			NominalRate:  rate,
			RealGDP:      realGDP,
			PotentialGDP: potGDP,
		})
	}

	return model.NewHistoricalPanel(records)
}

func checkHeader(got []string) error {
	if len(got) != len(panelHeader) {
		return fmt.Errorf("header has %d columns, want %d", len(got), len(panelHeader))
	}
	for i, want := range panelHeader {
		if strings.TrimSpace(strings.ToLower(got[i])) != want {
			return fmt.Errorf("header column %d is %q, want %q", i, got[i], want)
		}
	}
	return nil
}

// ParsePanelDate parses the date formats accepted in panel files.
func ParsePanelDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	// Quarter notation: 2020Q1 .. 2020Q4.
	if len(s) == 6 && (s[4] == 'Q' || s[4] == 'q') {
		year, err := strconv.Atoi(s[:4])
		if err == nil {
			q := int(s[5] - '0')
			if q >= 1 && q <= 4 {
				month := time.Month((q-1)*3 + 1)
				return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
