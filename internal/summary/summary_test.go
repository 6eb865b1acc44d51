package summary

import (
	"testing"

	"artreport/domain/art"
)

func record(country string, value float64, has bool) art.MergedRecord {
	return art.MergedRecord{
		IndicatorRecord: art.IndicatorRecord{
			Country:  country,
			ObsValue: value,
			HasObs:   has,
		},
	}
}

func TestDescribe(t *testing.T) {
	stats := Describe([]art.MergedRecord{
		record("Mozambique", 120000, true),
		record("Kenya", 60000, true),
		record("Uganda", 30000, true),
		record("Chad", 0, false),
	})

	if stats.Countries != 3 {
		t.Errorf("Countries = %d, want 3", stats.Countries)
	}
	if stats.Total != 210000 {
		t.Errorf("Total = %f, want 210000", stats.Total)
	}
	if stats.Mean != 70000 {
		t.Errorf("Mean = %f, want 70000", stats.Mean)
	}
	if stats.Median != 60000 {
		t.Errorf("Median = %f, want 60000", stats.Median)
	}
	if stats.TopCountry != "Mozambique" {
		t.Errorf("TopCountry = %q", stats.TopCountry)
	}
	if stats.Min != 30000 || stats.Max != 120000 {
		t.Errorf("Min/Max = %f/%f", stats.Min, stats.Max)
	}
}

func TestDescribe_EmptyInput(t *testing.T) {
	stats := Describe(nil)
	if stats != (Stats{}) {
		t.Errorf("empty input should yield zero stats, got %+v", stats)
	}
}
