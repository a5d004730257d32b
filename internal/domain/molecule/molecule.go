package molecule

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

// Molecule is a molecular graph: an ordered list of atoms, the bonds between
// them, and the lone pairs localised on them.
type Molecule struct {
	// ID uniquely identifies the molecule within a run.
	ID string

	// Title is the name read from the source file; may be empty.
	Title string

	atoms     []*Atom
	bonds     []*Bond
	lonePairs []*LonePair

	index      map[*Atom]int
	atomBonds  map[int][]int
	properties map[string]string
}

// New returns an empty molecule with a fresh UUID.
func New(title string) *Molecule {
	return &Molecule{
		ID:         uuid.NewString(),
		Title:      title,
		index:      make(map[*Atom]int),
		atomBonds:  make(map[int][]int),
		properties: make(map[string]string),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────────────────────────────────────

// AddAtom appends a to the molecule and returns its zero-based index.
func (m *Molecule) AddAtom(a *Atom) (int, error) {
	if a == nil {
		return -1, errors.InvalidParam("atom must not be nil")
	}
	if _, dup := m.index[a]; dup {
		return -1, errors.InvalidParam("atom already belongs to the molecule")
	}
	idx := len(m.atoms)
	m.atoms = append(m.atoms, a)
	m.index[a] = idx
	return idx, nil
}

// AddBond connects the atoms at zero-based indices begin and end.
func (m *Molecule) AddBond(begin, end int, order BondOrder) (*Bond, error) {
	if begin == end {
		return nil, errors.New(errors.CodeBondEndpointsInvalid, "bond endpoints must differ").
			WithDetail(fmt.Sprintf("atom=%d", begin))
	}
	if begin < 0 || begin >= len(m.atoms) || end < 0 || end >= len(m.atoms) {
		return nil, errors.New(errors.CodeBondEndpointsInvalid, "bond endpoint out of range").
			WithDetail(fmt.Sprintf("begin=%d end=%d atoms=%d", begin, end, len(m.atoms)))
	}
	b := &Bond{Begin: m.atoms[begin], End: m.atoms[end], Order: order}
	id := len(m.bonds)
	m.bonds = append(m.bonds, b)
	m.atomBonds[begin] = append(m.atomBonds[begin], id)
	m.atomBonds[end] = append(m.atomBonds[end], id)
	return b, nil
}

// AddLonePair places a lone pair on the atom at the given index.
func (m *Molecule) AddLonePair(atomIdx int) (*LonePair, error) {
	if atomIdx < 0 || atomIdx >= len(m.atoms) {
		return nil, errors.InvalidParam("lone pair atom index out of range").
			WithDetail(fmt.Sprintf("index=%d", atomIdx))
	}
	lp := NewLonePair(m.atoms[atomIdx])
	m.lonePairs = append(m.lonePairs, lp)
	return lp, nil
}

// SetProperty stores a free-form key/value pair (e.g. an SD data item).
func (m *Molecule) SetProperty(key, value string) {
	m.properties[key] = value
}

// Property returns a stored property.
func (m *Molecule) Property(key string) (string, bool) {
	v, ok := m.properties[key]
	return v, ok
}

// PropertyKeys returns the stored property keys in sorted order.
func (m *Molecule) PropertyKeys() []string {
	keys := make([]string, 0, len(m.properties))
	for k := range m.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ─────────────────────────────────────────────────────────────────────────────
// Atom and bond access
// ─────────────────────────────────────────────────────────────────────────────

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int { return len(m.atoms) }

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int { return len(m.bonds) }

// Atoms returns the atoms in insertion order.  The slice is a copy.
func (m *Molecule) Atoms() []*Atom {
	out := make([]*Atom, len(m.atoms))
	copy(out, m.atoms)
	return out
}

// Bonds returns the bonds in insertion order.  The slice is a copy.
func (m *Molecule) Bonds() []*Bond {
	out := make([]*Bond, len(m.bonds))
	copy(out, m.bonds)
	return out
}

// Atom returns the atom at a zero-based index.
func (m *Molecule) Atom(idx int) (*Atom, error) {
	if idx < 0 || idx >= len(m.atoms) {
		return nil, errors.InvalidParam("atom index out of range").
			WithDetail(fmt.Sprintf("index=%d atoms=%d", idx, len(m.atoms)))
	}
	return m.atoms[idx], nil
}

// IndexOf returns the zero-based index of a, or -1 if a is not in the molecule.
func (m *Molecule) IndexOf(a *Atom) int {
	if idx, ok := m.index[a]; ok {
		return idx
	}
	return -1
}

// Contains reports whether a belongs to the molecule.
func (m *Molecule) Contains(a *Atom) bool {
	_, ok := m.index[a]
	return ok
}

func (m *Molecule) indexOrErr(a *Atom) (int, error) {
	if a == nil {
		return -1, errors.InvalidParam("atom must not be nil")
	}
	idx, ok := m.index[a]
	if !ok {
		return -1, errors.New(errors.CodeAtomNotInMolecule, "atom does not belong to the molecule").
			WithDetail(fmt.Sprintf("symbol=%s molecule=%s", a.Symbol, m.ID))
	}
	return idx, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Connectivity queries
// ─────────────────────────────────────────────────────────────────────────────

// ConnectedBonds returns the bonds incident to a, in insertion order.
func (m *Molecule) ConnectedBonds(a *Atom) ([]*Bond, error) {
	idx, err := m.indexOrErr(a)
	if err != nil {
		return nil, err
	}
	ids := m.atomBonds[idx]
	out := make([]*Bond, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.bonds[id])
	}
	return out, nil
}

// ConnectedBondsCount returns the degree of a.
func (m *Molecule) ConnectedBondsCount(a *Atom) (int, error) {
	idx, err := m.indexOrErr(a)
	if err != nil {
		return 0, err
	}
	return len(m.atomBonds[idx]), nil
}

// ConnectedAtoms returns the neighbours of a.
func (m *Molecule) ConnectedAtoms(a *Atom) ([]*Atom, error) {
	bonds, err := m.ConnectedBonds(a)
	if err != nil {
		return nil, err
	}
	out := make([]*Atom, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, b.Other(a))
	}
	return out, nil
}

// MaximumBondOrder returns the highest order among the bonds incident to a.
// An atom without bonds yields BondOrderUnset and no error; an incident bond
// whose order is unset is reported as CodeBondOrderUndefined.
func (m *Molecule) MaximumBondOrder(a *Atom) (BondOrder, error) {
	bonds, err := m.ConnectedBonds(a)
	if err != nil {
		return BondOrderUnset, err
	}
	max := BondOrderUnset
	for _, b := range bonds {
		if !b.Order.IsSet() {
			return BondOrderUnset, errors.New(errors.CodeBondOrderUndefined, "connected bond has no order").
				WithDetail(fmt.Sprintf("atom=%d symbol=%s", m.index[a], a.Symbol))
		}
		if b.Order > max {
			max = b.Order
		}
	}
	return max, nil
}

// BondOrderSum returns the sum of the orders of the bonds incident to a.
func (m *Molecule) BondOrderSum(a *Atom) (int, error) {
	bonds, err := m.ConnectedBonds(a)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, b := range bonds {
		if !b.Order.IsSet() {
			return 0, errors.New(errors.CodeBondOrderUndefined, "connected bond has no order").
				WithDetail(fmt.Sprintf("atom=%d symbol=%s", m.index[a], a.Symbol))
		}
		sum += b.Order.Valence()
	}
	return sum, nil
}

// HydrogenCount returns the number of hydrogens on a: its implicit count plus
// every explicit hydrogen neighbour.
func (m *Molecule) HydrogenCount(a *Atom) (int, error) {
	neighbours, err := m.ConnectedAtoms(a)
	if err != nil {
		return 0, err
	}
	if a.ImplicitHydrogenCount < 0 {
		return 0, errors.New(errors.CodeHydrogenCountUnknown, "implicit hydrogen count is negative").
			WithDetail(fmt.Sprintf("atom=%d count=%d", m.index[a], a.ImplicitHydrogenCount))
	}
	count := a.ImplicitHydrogenCount
	for _, n := range neighbours {
		if n.Symbol == "H" {
			count++
		}
	}
	return count, nil
}

// LonePairCount returns the number of lone pairs on a.
func (m *Molecule) LonePairCount(a *Atom) (int, error) {
	if _, err := m.indexOrErr(a); err != nil {
		return 0, err
	}
	n := 0
	for _, lp := range m.lonePairs {
		if lp.Contains(a) {
			n++
		}
	}
	return n, nil
}

// LonePairs returns every lone pair in the molecule.  The slice is a copy.
func (m *Molecule) LonePairs() []*LonePair {
	out := make([]*LonePair, len(m.lonePairs))
	copy(out, m.lonePairs)
	return out
}

// Formula returns the Hill-system molecular formula including implicit
// hydrogens (carbon first, then hydrogen, then the rest alphabetically).
func (m *Molecule) Formula() string {
	counts := make(map[string]int)
	for _, a := range m.atoms {
		counts[a.Symbol]++
		if a.ImplicitHydrogenCount > 0 {
			counts["H"] += a.ImplicitHydrogenCount
		}
	}
	var order []string
	if counts["C"] > 0 {
		order = append(order, "C")
		if counts["H"] > 0 {
			order = append(order, "H")
		}
	}
	var rest []string
	for sym := range counts {
		if sym == "C" || (sym == "H" && counts["C"] > 0) {
			continue
		}
		rest = append(rest, sym)
	}
	sort.Strings(rest)
	order = append(order, rest...)

	var out []byte
	for _, sym := range order {
		out = append(out, sym...)
		if counts[sym] > 1 {
			out = append(out, fmt.Sprint(counts[sym])...)
		}
	}
	return string(out)
}

//Personal.AI order the ending
