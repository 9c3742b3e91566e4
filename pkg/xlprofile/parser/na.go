// Package parser reads workbook sheets into typed tables.
package parser

// defaultNATokens are the strings recognised as missing data regardless of
// the caller's own markers.
var defaultNATokens = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a",
	"nan", "null",
}

// NASet is a set of cell texts treated as missing values.
type NASet map[string]struct{}

// NewNASet returns the default missing tokens plus the given extra markers.
func NewNASet(extra ...string) NASet {
	set := make(NASet, len(defaultNATokens)+len(extra))
	for _, s := range defaultNATokens {
		set[s] = struct{}{}
	}
	for _, s := range extra {
		set[s] = struct{}{}
	}
	return set
}

// Contains reports whether s is a missing-value token.
func (n NASet) Contains(s string) bool {
	_, ok := n[s]
	return ok
}
