package atomtype

import (
	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
)

// Carbon atom-type names.
const (
	CarbonSP  = "C.sp"
	CarbonSP2 = "C.sp2"
	CarbonSP3 = "C.sp3"
)

// maxCarbonDegree is the highest connectivity the carbon rules perceive.
const maxCarbonDegree = 4

// CarbonRules returns the carbon rule set.
func CarbonRules() RuleSet {
	return RuleSet{
		Element:  "C",
		Produces: []string{CarbonSP, CarbonSP2, CarbonSP3},
		Perceive: perceiveCarbon,
	}
}

// perceiveCarbon applies the carbon decision tree.  Branches are ordered and
// the first one that applies decides: declared hybridization, then formal
// charge, then degree, then bond orders.
//
// A declared SP hybridization yields no match rather than C.sp.  Only SP2 and
// SP3 are recognised once a hybridization is declared, and the bond-order
// branches are not consulted.
func perceiveCarbon(c *Context) (string, error) {
	if c.Symbol() != "C" {
		return "", nil
	}

	if h := c.Hybridization(); h.IsSet() {
		switch h {
		case molecule.HybridizationSP2:
			return CarbonSP2, nil
		case molecule.HybridizationSP3:
			return CarbonSP3, nil
		}
		return "", nil
	}

	if c.FormalCharge().IsNonZero() {
		return "", nil
	}

	degree, err := c.Degree()
	if err != nil {
		return "", err
	}
	if degree > maxCarbonDegree {
		return "", nil
	}

	maxOrder, err := c.MaxBondOrder()
	if err != nil {
		return "", err
	}
	switch {
	case maxOrder.AboveTriple():
		return "", nil
	case maxOrder == molecule.BondOrderTriple:
		return CarbonSP, nil
	case maxOrder == molecule.BondOrderDouble:
		doubles, err := c.DoubleBondCount()
		if err != nil {
			return "", err
		}
		switch doubles {
		case 2:
			// cumulated, e.g. the central carbon of an allene
			return CarbonSP, nil
		case 1:
			return CarbonSP2, nil
		}
		return "", nil
	}
	return CarbonSP3, nil
}

//Personal.AI order the ending
