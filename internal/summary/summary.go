// Package summary computes the descriptive statistics quoted in the report
// narrative.
package summary

import (
	"artreport/domain/art"

	"github.com/montanaflynn/stats"
)

// Stats describes the latest-year view of the indicator.
type Stats struct {
	Countries  int
	Total      float64
	Mean       float64
	Median     float64
	Q25        float64
	Q75        float64
	Min        float64
	Max        float64
	TopCountry string
}

// Describe summarizes the observed values of the latest-year records.
// Records without an observation are excluded. An empty eligible set yields
// the zero Stats.
func Describe(latest []art.MergedRecord) Stats {
	values := make([]float64, 0, len(latest))
	top := ""
	topValue := 0.0
	for _, rec := range latest {
		if !rec.HasObs {
			continue
		}
		values = append(values, rec.ObsValue)
		if top == "" || rec.ObsValue > topValue {
			top = rec.Country
			topValue = rec.ObsValue
		}
	}
	if len(values) == 0 {
		return Stats{}
	}

	total, _ := stats.Sum(values)
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)
	q25, _ := stats.Percentile(values, 25)
	q75, _ := stats.Percentile(values, 75)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	return Stats{
		Countries:  len(values),
		Total:      total,
		Mean:       mean,
		Median:     median,
		Q25:        q25,
		Q75:        q75,
		Min:        min,
		Max:        max,
		TopCountry: top,
	}
}
