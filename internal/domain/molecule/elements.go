package molecule

import (
	"sort"
	"strings"

	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

// Element holds the periodic-table facts needed by perception and descriptor
// code.
type Element struct {
	Symbol           string
	AtomicNumber     int
	Period           int
	ValenceElectrons int
}

// elements covers the main-group elements through period 5.
var elements = map[string]Element{
	"H":  {"H", 1, 1, 1},
	"He": {"He", 2, 1, 2},
	"Li": {"Li", 3, 2, 1},
	"Be": {"Be", 4, 2, 2},
	"B":  {"B", 5, 2, 3},
	"C":  {"C", 6, 2, 4},
	"N":  {"N", 7, 2, 5},
	"O":  {"O", 8, 2, 6},
	"F":  {"F", 9, 2, 7},
	"Ne": {"Ne", 10, 2, 8},
	"Na": {"Na", 11, 3, 1},
	"Mg": {"Mg", 12, 3, 2},
	"Al": {"Al", 13, 3, 3},
	"Si": {"Si", 14, 3, 4},
	"P":  {"P", 15, 3, 5},
	"S":  {"S", 16, 3, 6},
	"Cl": {"Cl", 17, 3, 7},
	"Ar": {"Ar", 18, 3, 8},
	"K":  {"K", 19, 4, 1},
	"Ca": {"Ca", 20, 4, 2},
	"Ga": {"Ga", 31, 4, 3},
	"Ge": {"Ge", 32, 4, 4},
	"As": {"As", 33, 4, 5},
	"Se": {"Se", 34, 4, 6},
	"Br": {"Br", 35, 4, 7},
	"Kr": {"Kr", 36, 4, 8},
	"Rb": {"Rb", 37, 5, 1},
	"Sr": {"Sr", 38, 5, 2},
	"In": {"In", 49, 5, 3},
	"Sn": {"Sn", 50, 5, 4},
	"Sb": {"Sb", 51, 5, 5},
	"Te": {"Te", 52, 5, 6},
	"I":  {"I", 53, 5, 7},
	"Xe": {"Xe", 54, 5, 8},
}

// LookupElement returns the element for a symbol.  Lookup is exact: "CL" is
// not "Cl".
func LookupElement(symbol string) (Element, error) {
	e, ok := elements[symbol]
	if !ok {
		return Element{}, errors.New(errors.CodeElementUnknown, "unknown element symbol").
			WithDetail("symbol=" + symbol)
	}
	return e, nil
}

// IsKnownElement reports whether symbol is in the element table.
func IsKnownElement(symbol string) bool {
	_, ok := elements[symbol]
	return ok
}

// NormalizeSymbol turns "CL" or "cl" into "Cl".
func NormalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// KnownElements returns every symbol in the table, ordered by atomic number.
func KnownElements() []string {
	out := make([]string, 0, len(elements))
	for sym := range elements {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool {
		return elements[out[i]].AtomicNumber < elements[out[j]].AtomicNumber
	})
	return out
}
