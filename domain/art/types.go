// Package art holds the record types flowing through the report pipeline.
// All records are read-only facts: materialized once per run, never updated.
package art

// IndicatorRecord is one reported observation of the ART indicator for a
// country and year. ObsValue is only meaningful when HasObs is true; a
// missing observation is never coerced to zero.
type IndicatorRecord struct {
	Country   string
	Alpha3    string
	Indicator string
	Year      int
	ObsValue  float64
	HasObs    bool
}

// MetadataRecord is one country's economic metadata. Alpha3 is the natural
// join key and is unique within a loaded metadata table.
type MetadataRecord struct {
	Country      string
	Alpha3       string
	GDPPerCapita float64
	HasGDP       bool

	// Extra keeps any additional metadata columns verbatim.
	Extra map[string]string
}

// MergedRecord is an indicator row left-joined to its country metadata.
// Matched is false on a join miss, in which case the metadata fields stay
// at their zero values and HasGDP is false.
type MergedRecord struct {
	IndicatorRecord

	GDPPerCapita float64
	HasGDP       bool
	Matched      bool
}

// GeometryRecord is one vertex of a map polygon. Region names come from the
// geometry source and carry no country code; Alpha3 is filled in by the
// resolver and stays empty when the name cannot be resolved.
type GeometryRecord struct {
	Region string
	Long   float64
	Lat    float64
	Group  int
	Order  int
	Alpha3 string
}

// Key returns the compound join key used for all code-keyed operations.
func (r IndicatorRecord) Key() string {
	return r.Alpha3 + "|" + r.Country
}

// Key returns the compound join key for a metadata row.
func (r MetadataRecord) Key() string {
	return r.Alpha3 + "|" + r.Country
}
