package tabular

import (
	"strconv"

	"artreport/domain/art"
	"artreport/internal/errors"
)

// Column names of the indicator source.
const (
	ColCountry   = "country"
	ColAlpha3    = "alpha_3_code"
	ColIndicator = "indicator"
	ColYear      = "time_period"
	ColObsValue  = "obs_value"
)

// ParseIndicators converts a structurally parsed table into indicator
// records. A missing required column is a LoadError; a blank or non-numeric
// obs_value is not, the record just carries HasObs=false.
func ParseIndicators(t *Table) ([]art.IndicatorRecord, error) {
	if missing := t.RequireColumns(ColCountry, ColAlpha3, ColIndicator, ColYear, ColObsValue); missing != "" {
		return nil, errors.LoadErrorf("indicator table is missing required column %q", missing)
	}

	records := make([]art.IndicatorRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		year, err := strconv.Atoi(row[ColYear])
		if err != nil {
			return nil, errors.LoadErrorf("indicator row %d: time_period %q is not an integer", i+1, row[ColYear])
		}

		rec := art.IndicatorRecord{
			Country:   row[ColCountry],
			Alpha3:    row[ColAlpha3],
			Indicator: row[ColIndicator],
			Year:      year,
		}
		if v, err := strconv.ParseFloat(row[ColObsValue], 64); err == nil {
			rec.ObsValue = v
			rec.HasObs = true
		}
		records = append(records, rec)
	}

	return records, nil
}
