package pipeline

import (
	"artreport/domain/art"
)

// SelectLatest keeps, for each country, every record whose year equals that
// country's maximum reported year. Two passes: first compute the max year
// per alpha-3 code, then filter against it. Ties at the max year are passed
// through unchanged; downstream consumers keyed by country must tolerate
// more than one surviving row.
func SelectLatest(records []art.MergedRecord) []art.MergedRecord {
	maxYear := make(map[string]int, len(records))
	for _, rec := range records {
		if year, ok := maxYear[rec.Alpha3]; !ok || rec.Year > year {
			maxYear[rec.Alpha3] = rec.Year
		}
	}

	latest := make([]art.MergedRecord, 0, len(maxYear))
	for _, rec := range records {
		if rec.Year == maxYear[rec.Alpha3] {
			latest = append(latest, rec)
		}
	}
	return latest
}
