package pipeline

import (
	"math"
	"testing"

	"artreport/domain/art"
)

func TestYearlyTotals_SpecScenario(t *testing.T) {
	records := []art.IndicatorRecord{
		indicatorRow("Mozambique", "MOZ", 2015, 80000),
		indicatorRow("Mozambique", "MOZ", 2019, 120000),
		indicatorRow("Kenya", "KEN", 2015, 50000),
	}

	totals := YearlyTotals(records)

	if len(totals) != 2 {
		t.Fatalf("expected 2 years, got %d", len(totals))
	}
	if totals[0].Year != 2015 || totals[0].Total != 130000 {
		t.Errorf("2015 total: got (%d, %f), want (2015, 130000)", totals[0].Year, totals[0].Total)
	}
	if totals[1].Year != 2019 || totals[1].Total != 120000 {
		t.Errorf("2019 total: got (%d, %f), want (2019, 120000)", totals[1].Year, totals[1].Total)
	}
}

func TestYearlyTotals_SumPreservedUnderRegrouping(t *testing.T) {
	records := []art.IndicatorRecord{
		indicatorRow("Mozambique", "MOZ", 2015, 80000),
		indicatorRow("Mozambique", "MOZ", 2019, 120000),
		indicatorRow("Kenya", "KEN", 2015, 50000),
		indicatorRow("Kenya", "KEN", 2019, 60000),
	}
	missing := indicatorRow("Chad", "TCD", 2019, 999)
	missing.HasObs = false
	records = append(records, missing)

	var want float64
	for _, rec := range records {
		if rec.HasObs {
			want += rec.ObsValue
		}
	}

	var got float64
	for _, yt := range YearlyTotals(records) {
		got += yt.Total
	}

	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("regrouping changed the sum: got %f, want %f", got, want)
	}
}

func TestYearlyTotals_YearsStrictlyAscendingNoDuplicates(t *testing.T) {
	records := []art.IndicatorRecord{
		indicatorRow("Kenya", "KEN", 2019, 1),
		indicatorRow("Kenya", "KEN", 2015, 1),
		indicatorRow("Mozambique", "MOZ", 2017, 1),
		indicatorRow("Mozambique", "MOZ", 2015, 1),
	}

	totals := YearlyTotals(records)

	for i := 1; i < len(totals); i++ {
		if totals[i].Year <= totals[i-1].Year {
			t.Fatalf("years not strictly ascending: %d after %d", totals[i].Year, totals[i-1].Year)
		}
	}
}

func TestYearlyTotals_MissingNeverCountsAsZero(t *testing.T) {
	missing := indicatorRow("Chad", "TCD", 2020, 0)
	missing.HasObs = false

	totals := YearlyTotals([]art.IndicatorRecord{missing})

	if len(totals) != 0 {
		t.Fatalf("a year with only missing values should not appear, got %+v", totals)
	}
}
