package atomtype

import (
	"fmt"
	"sort"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

// Catalog is the read-only lookup the Matcher resolves names against.
// Implementations must be safe for concurrent use.
type Catalog interface {
	// Get returns the record named name, or an error for which
	// errors.IsNotFound reports true.
	Get(name string) (AtomType, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// Table — immutable in-memory Catalog
// ─────────────────────────────────────────────────────────────────────────────

// Table is an immutable Catalog built once and shared by reference.  It has
// no setters; concurrent reads need no locking.
type Table struct {
	version string
	byName  map[string]AtomType
	names   []string
}

// NewTable builds a table from records.  Empty and duplicate names are
// rejected.
func NewTable(version string, types ...AtomType) (*Table, error) {
	t := &Table{
		version: version,
		byName:  make(map[string]AtomType, len(types)),
		names:   make([]string, 0, len(types)),
	}
	for i, at := range types {
		if at.Name == "" {
			return nil, errors.InvalidParam("atom type name must not be empty").
				WithDetail(fmt.Sprintf("index=%d", i))
		}
		if _, dup := t.byName[at.Name]; dup {
			return nil, errors.New(errors.CodeAtomTypeDuplicate, "duplicate atom type").
				WithDetail("name=" + at.Name)
		}
		t.byName[at.Name] = at
		t.names = append(t.names, at.Name)
	}
	sort.Strings(t.names)
	return t, nil
}

// MustNewTable is NewTable for static data; it panics on error.
func MustNewTable(version string, types ...AtomType) *Table {
	t, err := NewTable(version, types...)
	if err != nil {
		panic(err)
	}
	return t
}

// Get implements Catalog.  The returned record is a copy.
func (t *Table) Get(name string) (AtomType, error) {
	at, ok := t.byName[name]
	if !ok {
		return AtomType{}, errors.New(errors.CodeAtomTypeNotFound, "atom type not in catalog").
			WithDetail("name=" + name)
	}
	return at, nil
}

// Version identifies the reference dataset the table was built from.
func (t *Table) Version() string { return t.version }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.names) }

// Names returns every record name in sorted order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// All returns every record, sorted by name.
func (t *Table) All() []AtomType {
	out := make([]AtomType, 0, len(t.names))
	for _, n := range t.names {
		out = append(out, t.byName[n])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in reference data
// ─────────────────────────────────────────────────────────────────────────────

// DefaultCatalogVersion tags the built-in records.
const DefaultCatalogVersion = "2007.07"

func builtinTypes() []AtomType {
	return []AtomType{
		{Name: CarbonSP3, Symbol: "C", AtomicNumber: 6, Hybridization: molecule.HybridizationSP3,
			FormalNeighbourCount: 4, Valency: 4},
		{Name: CarbonSP2, Symbol: "C", AtomicNumber: 6, Hybridization: molecule.HybridizationSP2,
			FormalNeighbourCount: 3, PiBondCount: 1, Valency: 4},
		{Name: CarbonSP, Symbol: "C", AtomicNumber: 6, Hybridization: molecule.HybridizationSP,
			FormalNeighbourCount: 2, PiBondCount: 2, Valency: 4},
		{Name: "C.plus.sp2", Symbol: "C", AtomicNumber: 6, Hybridization: molecule.HybridizationSP2,
			FormalCharge: 1, FormalNeighbourCount: 3, Valency: 3},
		{Name: "C.minus.sp3", Symbol: "C", AtomicNumber: 6, Hybridization: molecule.HybridizationSP3,
			FormalCharge: -1, FormalNeighbourCount: 3, LonePairCount: 1, Valency: 3},
		{Name: "H", Symbol: "H", AtomicNumber: 1, FormalNeighbourCount: 1, Valency: 1},
		{Name: "N.sp3", Symbol: "N", AtomicNumber: 7, Hybridization: molecule.HybridizationSP3,
			FormalNeighbourCount: 3, LonePairCount: 1, Valency: 3},
		{Name: "N.sp2", Symbol: "N", AtomicNumber: 7, Hybridization: molecule.HybridizationSP2,
			FormalNeighbourCount: 2, PiBondCount: 1, LonePairCount: 1, Valency: 3},
		{Name: "O.sp3", Symbol: "O", AtomicNumber: 8, Hybridization: molecule.HybridizationSP3,
			FormalNeighbourCount: 2, LonePairCount: 2, Valency: 2},
		{Name: "O.sp2", Symbol: "O", AtomicNumber: 8, Hybridization: molecule.HybridizationSP2,
			FormalNeighbourCount: 1, PiBondCount: 1, LonePairCount: 2, Valency: 2},
	}
}

// NewDefaultTable returns a fresh table holding the built-in records.
func NewDefaultTable() *Table {
	return MustNewTable(DefaultCatalogVersion, builtinTypes()...)
}

//Personal.AI order the ending
