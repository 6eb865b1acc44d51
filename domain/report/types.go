// Package report defines the derived views consumed by the renderers and
// the manifest describing a report run.
package report

import (
	"time"

	"artreport/domain/art"

	"github.com/google/uuid"
)

// ScatterPoint is one (GDP per capita, observed value) pair surviving the
// missing-field drop.
type ScatterPoint struct {
	Country      string
	Alpha3       string
	GDPPerCapita float64
	ObsValue     float64
}

// ScatterFit is the OLS fit over the scatter pairs. Descriptive only: the
// fit drives the trend line on the chart and nothing downstream.
type ScatterFit struct {
	Slope     float64
	Intercept float64
	StdErr    float64 // residual standard error
	R2        float64
	N         int
}

// Predict returns the fitted value at x.
func (f ScatterFit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// YearlyTotal is the sum of all non-missing observations reported for one
// year, across every country.
type YearlyTotal struct {
	Year      int
	Total     float64
	Countries int
}

// DerivedViews bundles the four aggregator outputs for one run.
type DerivedViews struct {
	Latest  []art.MergedRecord
	Ranking []art.MergedRecord
	Points  []ScatterPoint
	Fit     ScatterFit
	Yearly  []YearlyTotal
}

// RunManifest captures what one report run read, kept, and dropped.
type RunManifest struct {
	RunID            string    `json:"run_id"`
	StartedAt        time.Time `json:"started_at"`
	DurationMs       int64     `json:"duration_ms"`
	IndicatorRows    int       `json:"indicator_rows"`
	FilteredRows     int       `json:"filtered_rows"`
	MetadataRows     int       `json:"metadata_rows"`
	JoinMisses       int       `json:"join_misses"`
	GeometryRows     int       `json:"geometry_rows"`
	ResolutionMisses int       `json:"resolution_misses"`
	LatestRows       int       `json:"latest_rows"`
	RankedRows       int       `json:"ranked_rows"`
	ScatterPairs     int       `json:"scatter_pairs"`
	YearsCovered     int       `json:"years_covered"`
}

// NewRunManifest creates a manifest with a time-ordered run ID.
func NewRunManifest() *RunManifest {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &RunManifest{
		RunID:     id.String(),
		StartedAt: time.Now().UTC(),
	}
}

// Finish records the elapsed time since StartedAt.
func (m *RunManifest) Finish() {
	m.DurationMs = time.Since(m.StartedAt).Milliseconds()
}
