package tabular

// Table is a structurally parsed source: a header row plus every data row
// verbatim, keyed by trimmed header name. No filtering or transformation
// happens at this layer.
type Table struct {
	Headers []string
	Rows    []Row
}

// Row maps a header name to the raw cell text for one data row.
type Row map[string]string

// HasColumn reports whether the table declares the given header.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// RequireColumns returns the first declared header missing from the table,
// or "" when all are present.
func (t *Table) RequireColumns(names ...string) string {
	for _, name := range names {
		if !t.HasColumn(name) {
			return name
		}
	}
	return ""
}
