package data

import (
	"encoding/json"
	"os"

	"macro-scenario-risk/internal/model"
)

// PanelFile matches the JSON shape produced by the upstream cleaning step.
//
// Example:
//
//	{
//	  "data": [
//	    {"date": "2019-01-01T00:00:00Z", "nominal_rate": 2.4, "real_gdp": 18950.3, "potential_gdp": 19023.1}
//	  ]
//	}
type PanelFile struct {
	Data []model.QuarterRecord `json:"data"`
}

func LoadPanelJSON(path string) (*model.HistoricalPanel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf PanelFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, err
	}
	return model.NewHistoricalPanel(pf.Data)
}
