package tabular

import (
	"strconv"

	"artreport/domain/art"
	"artreport/internal/errors"
)

// ColGDPPerCapita is the metadata column holding GDP per capita.
const ColGDPPerCapita = "GDP per capita (constant 2015 US$)"

// ParseMetadata converts a parsed table into metadata records. The left join
// downstream assumes at most one metadata row per alpha-3 code, so a
// duplicate code is reported as a LoadError rather than silently inflating
// join cardinality.
func ParseMetadata(t *Table) ([]art.MetadataRecord, error) {
	if missing := t.RequireColumns(ColCountry, ColAlpha3, ColGDPPerCapita); missing != "" {
		return nil, errors.LoadErrorf("metadata table is missing required column %q", missing)
	}

	seen := make(map[string]int, len(t.Rows))
	records := make([]art.MetadataRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		alpha3 := row[ColAlpha3]
		if prev, dup := seen[alpha3]; dup && alpha3 != "" {
			return nil, errors.LoadErrorf("metadata rows %d and %d share alpha_3_code %q", prev+1, i+1, alpha3)
		}
		seen[alpha3] = i

		rec := art.MetadataRecord{
			Country: row[ColCountry],
			Alpha3:  alpha3,
		}
		if v, err := strconv.ParseFloat(row[ColGDPPerCapita], 64); err == nil {
			rec.GDPPerCapita = v
			rec.HasGDP = true
		}

		// Keep the remaining columns verbatim.
		for _, h := range t.Headers {
			switch h {
			case ColCountry, ColAlpha3, ColGDPPerCapita:
			default:
				if rec.Extra == nil {
					rec.Extra = make(map[string]string)
				}
				rec.Extra[h] = row[h]
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
