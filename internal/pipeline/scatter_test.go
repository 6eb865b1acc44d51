package pipeline

import (
	"math"
	"testing"

	"artreport/domain/art"
)

func mergedPair(country, alpha3 string, gdp, obs float64) art.MergedRecord {
	return art.MergedRecord{
		IndicatorRecord: indicatorRow(country, alpha3, 2019, obs),
		GDPPerCapita:    gdp,
		HasGDP:          true,
		Matched:         true,
	}
}

func TestScatterPairs_DropsIncompleteRecords(t *testing.T) {
	noGDP := art.MergedRecord{IndicatorRecord: indicatorRow("Kenya", "KEN", 2019, 60000)}
	noObs := mergedPair("Chad", "TCD", 700, 0)
	noObs.HasObs = false

	records := []art.MergedRecord{
		mergedPair("Mozambique", "MOZ", 540, 120000),
		noGDP,
		noObs,
	}

	points, _ := ScatterPairs(records)

	if len(points) != 1 {
		t.Fatalf("expected 1 surviving pair, got %d", len(points))
	}
	if points[0].Alpha3 != "MOZ" {
		t.Errorf("wrong survivor: %s", points[0].Alpha3)
	}
	if len(points) > len(records) {
		t.Error("output larger than input")
	}
}

func TestScatterPairs_PerfectLineRecovered(t *testing.T) {
	// obs = 1000 + 5 * gdp exactly; the fit must recover both coefficients
	// with zero residual error.
	records := []art.MergedRecord{
		mergedPair("A", "AAA", 100, 1500),
		mergedPair("B", "BBB", 200, 2000),
		mergedPair("C", "CCC", 400, 3000),
		mergedPair("D", "DDD", 800, 5000),
	}

	_, fit := ScatterPairs(records)

	if math.Abs(fit.Slope-5) > 1e-9 {
		t.Errorf("slope: got %f, want 5", fit.Slope)
	}
	if math.Abs(fit.Intercept-1000) > 1e-9 {
		t.Errorf("intercept: got %f, want 1000", fit.Intercept)
	}
	if fit.StdErr > 1e-9 {
		t.Errorf("stderr: got %f, want 0", fit.StdErr)
	}
	if math.Abs(fit.R2-1) > 1e-9 {
		t.Errorf("R2: got %f, want 1", fit.R2)
	}
	if fit.N != 4 {
		t.Errorf("N: got %d, want 4", fit.N)
	}
}

func TestScatterPairs_TooFewPointsDegrades(t *testing.T) {
	records := []art.MergedRecord{
		mergedPair("A", "AAA", 100, 1500),
		mergedPair("B", "BBB", 200, 2000),
	}

	points, fit := ScatterPairs(records)

	if len(points) != 2 {
		t.Fatalf("pairs still emitted, got %d", len(points))
	}
	if fit.Slope != 0 || fit.Intercept != 0 {
		t.Errorf("fit should be zero below 3 points: %+v", fit)
	}
	if fit.N != 2 {
		t.Errorf("N: got %d, want 2", fit.N)
	}
}
