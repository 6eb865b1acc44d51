package geo

import (
	"testing"
)

func TestResolve_CanonicalNames(t *testing.T) {
	r := NewResolver()

	cases := map[string]string{
		"Mozambique":   "MOZ",
		"South Africa": "ZAF",
		"Ivory Coast":  "CIV",
		"USA":          "USA",
		"UK":           "GBR",
	}
	for name, want := range cases {
		code, ok := r.Resolve(name)
		if !ok || code != want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", name, code, ok, want)
		}
	}
	if r.Misses() != 0 {
		t.Errorf("canonical lookups counted %d misses", r.Misses())
	}
}

func TestResolve_AliasesAndNormalization(t *testing.T) {
	r := NewResolver()

	cases := map[string]string{
		"Cote d'Ivoire":                "CIV",
		"United States of America":     "USA",
		"united kingdom":               "GBR",
		"  Viet Nam ":                  "VNM",
		"Tanzania, United Republic of": "TZA",
		"Swaziland":                    "SWZ",
		"Congo, Dem. Rep.":             "COD",
	}
	for name, want := range cases {
		code, ok := r.Resolve(name)
		if !ok || code != want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", name, code, ok, want)
		}
	}
}

func TestResolve_UnknownNameFailsOpen(t *testing.T) {
	r := NewResolver()

	code, ok := r.Resolve("Atlantis")
	if ok || code != "" {
		t.Fatalf("Resolve(Atlantis) = %q, %v; want miss", code, ok)
	}

	r.Resolve("Atlantis")
	r.Resolve("Narnia")

	if r.Misses() != 3 {
		t.Errorf("Misses() = %d, want 3", r.Misses())
	}
	if r.MissedNames()["Atlantis"] != 2 {
		t.Errorf("Atlantis miss count = %d, want 2", r.MissedNames()["Atlantis"])
	}
}

func TestResolve_Deterministic(t *testing.T) {
	a := NewResolver()
	b := NewResolver()

	for _, name := range []string{"Kenya", "Russian Federation", "Nowhere", "Brazil"} {
		codeA, okA := a.Resolve(name)
		codeB, okB := b.Resolve(name)
		if codeA != codeB || okA != okB {
			t.Errorf("Resolve(%q) diverged: (%q,%v) vs (%q,%v)", name, codeA, okA, codeB, okB)
		}
	}
}
