package pipeline

import (
	"sort"

	"artreport/domain/art"
	"artreport/domain/report"
)

// YearlyTotals sums the observed value per reporting year over every
// country, across the full time range rather than just the latest year.
// Missing observations are excluded from the sum, never counted as zero.
// The output is ordered ascending by year with no duplicate years.
func YearlyTotals(records []art.IndicatorRecord) []report.YearlyTotal {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, rec := range records {
		if !rec.HasObs {
			continue
		}
		sums[rec.Year] += rec.ObsValue
		counts[rec.Year]++
	}

	years := make([]int, 0, len(sums))
	for year := range sums {
		years = append(years, year)
	}
	sort.Ints(years)

	totals := make([]report.YearlyTotal, 0, len(years))
	for _, year := range years {
		totals = append(totals, report.YearlyTotal{
			Year:      year,
			Total:     sums[year],
			Countries: counts[year],
		})
	}
	return totals
}
