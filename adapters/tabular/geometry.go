package tabular

import (
	"strconv"

	"artreport/domain/art"
	"artreport/internal/errors"
)

// Column names of the map geometry source.
const (
	ColRegion = "region"
	ColLong   = "long"
	ColLat    = "lat"
	ColGroup  = "group"
	ColOrder  = "order"
)

// ParseGeometry converts a parsed table into map polygon vertices. Alpha3
// is left empty here; the resolver fills it in afterwards.
func ParseGeometry(t *Table) ([]art.GeometryRecord, error) {
	if missing := t.RequireColumns(ColRegion, ColLong, ColLat, ColGroup, ColOrder); missing != "" {
		return nil, errors.LoadErrorf("geometry table is missing required column %q", missing)
	}

	records := make([]art.GeometryRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		long, err := strconv.ParseFloat(row[ColLong], 64)
		if err != nil {
			return nil, errors.LoadErrorf("geometry row %d: long %q is not numeric", i+1, row[ColLong])
		}
		lat, err := strconv.ParseFloat(row[ColLat], 64)
		if err != nil {
			return nil, errors.LoadErrorf("geometry row %d: lat %q is not numeric", i+1, row[ColLat])
		}
		group, err := strconv.Atoi(row[ColGroup])
		if err != nil {
			return nil, errors.LoadErrorf("geometry row %d: group %q is not an integer", i+1, row[ColGroup])
		}
		order, err := strconv.Atoi(row[ColOrder])
		if err != nil {
			return nil, errors.LoadErrorf("geometry row %d: order %q is not an integer", i+1, row[ColOrder])
		}

		records = append(records, art.GeometryRecord{
			Region: row[ColRegion],
			Long:   long,
			Lat:    lat,
			Group:  group,
			Order:  order,
		})
	}

	return records, nil
}
