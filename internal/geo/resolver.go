// Package geo resolves free-text country and region names to ISO 3166-1
// alpha-3 codes. Resolution is a total, deterministic lookup that fails
// open: an unknown name yields a miss, never an error.
package geo

import (
	"strings"
)

// normalized index over alpha3ByName plus aliases, built once at process
// start.
var alpha3ByNormalized map[string]string

func init() {
	alpha3ByNormalized = make(map[string]string, len(alpha3ByName)+len(aliases))
	for name, code := range alpha3ByName {
		alpha3ByNormalized[normalize(name)] = code
	}
	for alias, canonical := range aliases {
		if code, ok := alpha3ByName[canonical]; ok {
			alpha3ByNormalized[normalize(alias)] = code
		}
	}
}

// normalize lowercases a name and strips the punctuation that varies
// between sources.
func normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.NewReplacer(".", "", ",", "", "'", "", "’", "", "(", "", ")", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Resolver maps names to alpha-3 codes and counts unresolved names for
// diagnostics.
type Resolver struct {
	misses     int
	missedName map[string]int
}

// NewResolver creates a resolver backed by the static country table.
func NewResolver() *Resolver {
	return &Resolver{missedName: make(map[string]int)}
}

// Resolve returns the alpha-3 code for a name. The second return is false
// when the name is unknown; callers must exclude such rows from code-keyed
// joins rather than invent a code.
func (r *Resolver) Resolve(name string) (string, bool) {
	if code, ok := alpha3ByNormalized[normalize(name)]; ok {
		return code, true
	}
	r.misses++
	r.missedName[name]++
	return "", false
}

// Misses returns how many lookups failed since the resolver was created.
func (r *Resolver) Misses() int {
	return r.misses
}

// MissedNames returns each unresolved name with its lookup count.
func (r *Resolver) MissedNames() map[string]int {
	return r.missedName
}
