package atomtype

import (
	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
)

// Graph is the read-only view of a molecule that perception needs.
// *molecule.Molecule satisfies it.
type Graph interface {
	Contains(a *molecule.Atom) bool
	ConnectedBondsCount(a *molecule.Atom) (int, error)
	MaximumBondOrder(a *molecule.Atom) (molecule.BondOrder, error)
	ConnectedBonds(a *molecule.Atom) ([]*molecule.Bond, error)
}

// LocalContext is the derived neighbourhood summary of one atom.
type LocalContext struct {
	Degree          int
	MaxBondOrder    molecule.BondOrder
	DoubleBondCount int
}

// Context gives a rule lazy access to one atom's attributes and local
// context.  Each graph property is read at most once, so a rule sees one
// consistent snapshot for the whole call.  A Context belongs to a single
// perception call and is not safe for concurrent use.
type Context struct {
	graph Graph
	atom  *molecule.Atom

	degree     int
	degreeRead bool

	maxOrder     molecule.BondOrder
	maxOrderRead bool

	doubles     int
	doublesRead bool
}

// NewContext binds a context to atom within g.
func NewContext(g Graph, atom *molecule.Atom) *Context {
	return &Context{graph: g, atom: atom}
}

// Atom returns the atom under perception.
func (c *Context) Atom() *molecule.Atom { return c.atom }

// Symbol returns the element symbol.
func (c *Context) Symbol() string { return c.atom.Symbol }

// Hybridization returns the declared hybridization, possibly unset.
func (c *Context) Hybridization() molecule.Hybridization { return c.atom.Hybridization }

// FormalCharge returns the declared formal charge, possibly unset.
func (c *Context) FormalCharge() molecule.FormalCharge { return c.atom.FormalCharge }

// Degree returns the number of connected bonds.
func (c *Context) Degree() (int, error) {
	if !c.degreeRead {
		d, err := c.graph.ConnectedBondsCount(c.atom)
		if err != nil {
			return 0, err
		}
		c.degree, c.degreeRead = d, true
	}
	return c.degree, nil
}

// MaxBondOrder returns the highest connected bond order; BondOrderUnset when
// the atom has no bonds.
func (c *Context) MaxBondOrder() (molecule.BondOrder, error) {
	if !c.maxOrderRead {
		o, err := c.graph.MaximumBondOrder(c.atom)
		if err != nil {
			return molecule.BondOrderUnset, err
		}
		c.maxOrder, c.maxOrderRead = o, true
	}
	return c.maxOrder, nil
}

// DoubleBondCount returns the number of connected bonds of exactly double
// order.
func (c *Context) DoubleBondCount() (int, error) {
	if !c.doublesRead {
		bonds, err := c.graph.ConnectedBonds(c.atom)
		if err != nil {
			return 0, err
		}
		n := 0
		for _, b := range bonds {
			if b.Order == molecule.BondOrderDouble {
				n++
			}
		}
		c.doubles, c.doublesRead = n, true
	}
	return c.doubles, nil
}

// Local reads the full local context.
func (c *Context) Local() (LocalContext, error) {
	d, err := c.Degree()
	if err != nil {
		return LocalContext{}, err
	}
	o, err := c.MaxBondOrder()
	if err != nil {
		return LocalContext{}, err
	}
	n, err := c.DoubleBondCount()
	if err != nil {
		return LocalContext{}, err
	}
	return LocalContext{Degree: d, MaxBondOrder: o, DoubleBondCount: n}, nil
}

// ExtractLocalContext computes the local context of atom within g.
func ExtractLocalContext(g Graph, atom *molecule.Atom) (LocalContext, error) {
	if err := checkArgs(g, atom); err != nil {
		return LocalContext{}, err
	}
	return NewContext(g, atom).Local()
}

//Personal.AI order the ending
