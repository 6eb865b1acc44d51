// Package pipeline holds the pure transforms between the loaded source
// tables and the derived views the renderers consume. Every function is a
// side-effect-free, order-preserving transform over fully materialized
// input; rows with data-quality problems are excluded, never patched.
package pipeline

import (
	"artreport/domain/art"
)

// FilterIndicator keeps only the rows whose indicator field exactly equals
// the target label. Unmatched rows are dropped silently; absence of the
// indicator for a country is expected, not an error.
func FilterIndicator(records []art.IndicatorRecord, label string) []art.IndicatorRecord {
	filtered := make([]art.IndicatorRecord, 0, len(records))
	for _, rec := range records {
		if rec.Indicator == label {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// LeftJoin joins indicator rows to metadata on the compound key
// (alpha_3_code, country). Every indicator row appears exactly once in the
// output; a join miss keeps the row with its metadata fields missing.
// Metadata is unique per key (enforced at load time), so the join never
// changes cardinality.
func LeftJoin(records []art.IndicatorRecord, metadata []art.MetadataRecord) []art.MergedRecord {
	byKey := make(map[string]art.MetadataRecord, len(metadata))
	for _, meta := range metadata {
		byKey[meta.Key()] = meta
	}

	merged := make([]art.MergedRecord, 0, len(records))
	for _, rec := range records {
		out := art.MergedRecord{IndicatorRecord: rec}
		if meta, ok := byKey[rec.Key()]; ok {
			out.GDPPerCapita = meta.GDPPerCapita
			out.HasGDP = meta.HasGDP
			out.Matched = true
		}
		merged = append(merged, out)
	}
	return merged
}

// CountJoinMisses returns how many merged rows had no metadata match.
func CountJoinMisses(merged []art.MergedRecord) int {
	misses := 0
	for _, rec := range merged {
		if !rec.Matched {
			misses++
		}
	}
	return misses
}
