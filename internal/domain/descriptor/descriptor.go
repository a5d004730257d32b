// Package descriptor computes per-atom numeric descriptors over the molecular
// graph.  A descriptor never fails loudly: when a value cannot be computed it
// returns NaN together with the error, and the caller decides how to degrade.
package descriptor

import (
	"math"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
)

// Vendor is reported in every Specification.
const Vendor = "KeyIP-AtomType"

// Specification identifies a descriptor implementation.
type Specification struct {
	Reference                string
	ImplementationTitle      string
	ImplementationIdentifier string
	Vendor                   string
}

// Value is the result of one calculation.
type Value struct {
	Specification Specification
	Names         []string
	Result        float64
	Err           error
}

// Failed reports whether the calculation produced an error.
func (v Value) Failed() bool { return v.Err != nil }

// AtomicDescriptor calculates one value for an atom within a molecule.
type AtomicDescriptor interface {
	Specification() Specification
	Names() []string
	Calculate(atom *molecule.Atom, mol *molecule.Molecule) Value
}

func dummy(d AtomicDescriptor, err error) Value {
	return Value{
		Specification: d.Specification(),
		Names:         d.Names(),
		Result:        math.NaN(),
		Err:           err,
	}
}

func result(d AtomicDescriptor, v float64) Value {
	return Value{Specification: d.Specification(), Names: d.Names(), Result: v}
}

// Names returns the first name of every descriptor, in order.
func Names(ds []AtomicDescriptor) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		if n := d.Names(); len(n) > 0 {
			out = append(out, n[0])
		}
	}
	return out
}

//Personal.AI order the ending
