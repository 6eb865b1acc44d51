// Package testkit builds synthetic source tables for tests: a small set of
// countries with deterministic indicator values, matching metadata, and a
// toy geometry of one square polygon per country.
package testkit

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"artreport/domain/art"
)

// Country is one synthetic country fixture.
type Country struct {
	Name   string
	Alpha3 string
	GDP    float64
}

// Countries is the default fixture set. Names and codes are real so the
// geo resolver can be exercised against them.
var Countries = []Country{
	{"Mozambique", "MOZ", 540},
	{"South Africa", "ZAF", 6100},
	{"Kenya", "KEN", 1900},
	{"Uganda", "UGA", 880},
	{"Tanzania", "TZA", 1100},
	{"Zimbabwe", "ZWE", 1400},
	{"Zambia", "ZMB", 1200},
	{"Malawi", "MWI", 610},
	{"Nigeria", "NGA", 2400},
	{"Ethiopia", "ETH", 920},
	{"Botswana", "BWA", 7200},
	{"Lesotho", "LSO", 1100},
}

// Indicators generates one record per country and year for the given label.
// Values are a deterministic function of country index and year, so runs
// are reproducible.
func Indicators(label string, years []int) []art.IndicatorRecord {
	var records []art.IndicatorRecord
	for i, c := range Countries {
		for _, year := range years {
			records = append(records, art.IndicatorRecord{
				Country:   c.Name,
				Alpha3:    c.Alpha3,
				Indicator: label,
				Year:      year,
				ObsValue:  float64((i+1)*10000 + (year-2000)*500),
				HasObs:    true,
			})
		}
	}
	return records
}

// Metadata generates one metadata record per fixture country.
func Metadata() []art.MetadataRecord {
	records := make([]art.MetadataRecord, 0, len(Countries))
	for _, c := range Countries {
		records = append(records, art.MetadataRecord{
			Country:      c.Name,
			Alpha3:       c.Alpha3,
			GDPPerCapita: c.GDP,
			HasGDP:       true,
		})
	}
	return records
}

// WriteIndicatorCSV writes the indicator fixture as a CSV source file.
func WriteIndicatorCSV(path, label string, years []int) error {
	rows := [][]string{{"country", "alpha_3_code", "indicator", "time_period", "obs_value"}}
	for _, rec := range Indicators(label, years) {
		rows = append(rows, []string{
			rec.Country,
			rec.Alpha3,
			rec.Indicator,
			strconv.Itoa(rec.Year),
			strconv.FormatFloat(rec.ObsValue, 'f', -1, 64),
		})
	}
	return writeCSV(path, rows)
}

// WriteMetadataCSV writes the metadata fixture as a CSV source file.
func WriteMetadataCSV(path string) error {
	rows := [][]string{{"country", "alpha_3_code", "GDP per capita (constant 2015 US$)"}}
	for _, c := range Countries {
		rows = append(rows, []string{
			c.Name,
			c.Alpha3,
			strconv.FormatFloat(c.GDP, 'f', -1, 64),
		})
	}
	return writeCSV(path, rows)
}

// WriteGeometryCSV writes one unit-square polygon per fixture country,
// laid out on a grid.
func WriteGeometryCSV(path string) error {
	rows := [][]string{{"region", "long", "lat", "group", "order"}}
	for i, c := range Countries {
		x := float64(i%4) * 2
		y := float64(i/4) * 2
		corners := [][2]float64{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}}
		for j, corner := range corners {
			rows = append(rows, []string{
				c.Name,
				fmt.Sprintf("%.1f", corner[0]),
				fmt.Sprintf("%.1f", corner[1]),
				strconv.Itoa(i + 1),
				strconv.Itoa(j + 1),
			})
		}
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
