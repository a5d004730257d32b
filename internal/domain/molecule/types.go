package molecule

import "strconv"

// ─────────────────────────────────────────────────────────────────────────────
// Hybridization
// ─────────────────────────────────────────────────────────────────────────────

// Hybridization is the declared electronic geometry of an atom.  The zero value
// is HybridizationUnset, meaning nothing was declared; it is a distinct state
// and never a synonym for any concrete geometry.
type Hybridization int

const (
	HybridizationUnset Hybridization = iota
	HybridizationSP
	HybridizationSP2
	HybridizationSP3
	HybridizationSP3D1
	HybridizationSP3D2
	HybridizationSP3D3
	HybridizationPlanar3
)

var hybridizationNames = map[Hybridization]string{
	HybridizationUnset:   "unset",
	HybridizationSP:      "sp",
	HybridizationSP2:     "sp2",
	HybridizationSP3:     "sp3",
	HybridizationSP3D1:   "sp3d1",
	HybridizationSP3D2:   "sp3d2",
	HybridizationSP3D3:   "sp3d3",
	HybridizationPlanar3: "planar3",
}

func (h Hybridization) String() string {
	if s, ok := hybridizationNames[h]; ok {
		return s
	}
	return "hybridization(" + strconv.Itoa(int(h)) + ")"
}

// IsSet reports whether a hybridization was declared.
func (h Hybridization) IsSet() bool { return h != HybridizationUnset }

// ParseHybridization converts a name such as "sp2" into a Hybridization.
// The second result is false for unrecognised names.
func ParseHybridization(s string) (Hybridization, bool) {
	for h, name := range hybridizationNames {
		if name == s {
			return h, true
		}
	}
	return HybridizationUnset, false
}

// ─────────────────────────────────────────────────────────────────────────────
// BondOrder
// ─────────────────────────────────────────────────────────────────────────────

// BondOrder classifies the strength of a bond.  Values compare numerically:
// Single < Double < Triple < Quadruple.  BondOrderUnset marks a bond whose
// order is not known.
type BondOrder int

const (
	BondOrderUnset BondOrder = iota
	BondOrderSingle
	BondOrderDouble
	BondOrderTriple
	// BondOrderQuadruple is the above-triple sentinel.
	BondOrderQuadruple
)

func (o BondOrder) String() string {
	switch o {
	case BondOrderUnset:
		return "unset"
	case BondOrderSingle:
		return "single"
	case BondOrderDouble:
		return "double"
	case BondOrderTriple:
		return "triple"
	case BondOrderQuadruple:
		return "quadruple"
	}
	return "order(" + strconv.Itoa(int(o)) + ")"
}

// IsSet reports whether the order is known.
func (o BondOrder) IsSet() bool { return o != BondOrderUnset }

// AboveTriple reports whether the order exceeds a triple bond.
func (o BondOrder) AboveTriple() bool { return o > BondOrderTriple }

// Valence is the number of electron pairs the order contributes to each end.
func (o BondOrder) Valence() int { return int(o) }

// ─────────────────────────────────────────────────────────────────────────────
// FormalCharge
// ─────────────────────────────────────────────────────────────────────────────

// FormalCharge is an optional integer charge.  The zero value is unset, which
// is distinct from an explicit charge of zero.
type FormalCharge struct {
	value int
	set   bool
}

// ChargeUnset is the unset formal charge.
var ChargeUnset = FormalCharge{}

// Charge returns an explicitly set formal charge.
func Charge(v int) FormalCharge { return FormalCharge{value: v, set: true} }

// Value returns the charge and whether it was set.
func (c FormalCharge) Value() (int, bool) { return c.value, c.set }

// IsSet reports whether the charge was explicitly set.
func (c FormalCharge) IsSet() bool { return c.set }

// IsNonZero reports whether the charge is set and different from zero.
func (c FormalCharge) IsNonZero() bool { return c.set && c.value != 0 }

// OrZero returns the charge, or 0 when unset.
func (c FormalCharge) OrZero() int { return c.value }

func (c FormalCharge) String() string {
	if !c.set {
		return "unset"
	}
	if c.value > 0 {
		return "+" + strconv.Itoa(c.value)
	}
	return strconv.Itoa(c.value)
}

//Personal.AI order the ending
