package atomtype

import (
	"fmt"
	"sort"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Perception
// ─────────────────────────────────────────────────────────────────────────────

// Perception is the result of one perception call: a catalog record, or
// NoMatch.  It is never partially populated.
type Perception struct {
	atomType AtomType
	matched  bool
}

// NoMatch is the "unperceived" result.
var NoMatch = Perception{}

// Matched wraps a catalog record.
func Matched(t AtomType) Perception {
	return Perception{atomType: t, matched: true}
}

// AtomType returns the matched record; the boolean is false for NoMatch.
func (p Perception) AtomType() (AtomType, bool) { return p.atomType, p.matched }

// IsMatch reports whether an atom type was assigned.
func (p Perception) IsMatch() bool { return p.matched }

// Name returns the matched type name, or "" for NoMatch.
func (p Perception) Name() string { return p.atomType.Name }

func (p Perception) String() string {
	if !p.matched {
		return "unperceived"
	}
	return p.atomType.Name
}

// ─────────────────────────────────────────────────────────────────────────────
// Options
// ─────────────────────────────────────────────────────────────────────────────

type matcherOptions struct {
	ruleSets    []RuleSet
	skipDefault bool
}

// Option configures a Matcher.
type Option func(*matcherOptions)

// WithRuleSet registers an additional element rule set.
func WithRuleSet(rs RuleSet) Option {
	return func(o *matcherOptions) { o.ruleSets = append(o.ruleSets, rs) }
}

// WithoutDefaultRuleSets leaves out DefaultRuleSets.
func WithoutDefaultRuleSets() Option {
	return func(o *matcherOptions) { o.skipDefault = true }
}

// ─────────────────────────────────────────────────────────────────────────────
// Matcher
// ─────────────────────────────────────────────────────────────────────────────

// Matcher dispatches atoms to the rule set registered for their element.  It
// holds no mutable state and is safe for concurrent use.
type Matcher struct {
	catalog Catalog
	rules   map[string]RuleSet
}

// NewMatcher builds a matcher over catalog.  Every name a rule set declares
// in Produces must exist in the catalog; a missing one is reported as
// CodeAtomTypeCatalogDrift.
func NewMatcher(catalog Catalog, opts ...Option) (*Matcher, error) {
	if catalog == nil {
		return nil, errors.InvalidParam("catalog must not be nil")
	}
	o := &matcherOptions{}
	for _, opt := range opts {
		opt(o)
	}
	sets := o.ruleSets
	if !o.skipDefault {
		sets = append(DefaultRuleSets(), sets...)
	}

	m := &Matcher{catalog: catalog, rules: make(map[string]RuleSet, len(sets))}
	for _, rs := range sets {
		if rs.Element == "" || rs.Perceive == nil {
			return nil, errors.New(errors.CodeRuleSetInvalid, "rule set needs an element and a rule").
				WithDetail("element=" + rs.Element)
		}
		if _, dup := m.rules[rs.Element]; dup {
			return nil, errors.New(errors.CodeRuleSetDuplicate, "element already has a rule set").
				WithDetail("element=" + rs.Element)
		}
		for _, name := range rs.Produces {
			if _, err := catalog.Get(name); err != nil {
				return nil, driftError(rs.Element, name, err)
			}
		}
		m.rules[rs.Element] = rs
	}
	return m, nil
}

// Elements returns the symbols with a registered rule set, sorted.
func (m *Matcher) Elements() []string {
	out := make([]string, 0, len(m.rules))
	for el := range m.rules {
		out = append(out, el)
	}
	sort.Strings(out)
	return out
}

// Catalog returns the catalog the matcher resolves names against.
func (m *Matcher) Catalog() Catalog { return m.catalog }

// FindMatchingAtomType perceives atom within g.  An element without a rule
// set, or an atom no branch covers, yields NoMatch and a nil error.  An atom
// outside g, an unreadable bond order, or a rule naming a type the catalog
// lacks yields an error.
func (m *Matcher) FindMatchingAtomType(g Graph, atom *molecule.Atom) (Perception, error) {
	if err := checkArgs(g, atom); err != nil {
		return NoMatch, err
	}
	rs, ok := m.rules[atom.Symbol]
	if !ok {
		return NoMatch, nil
	}
	name, err := rs.Perceive(NewContext(g, atom))
	if err != nil {
		return NoMatch, errors.Wrap(err, errors.CodeUnknown, "failed to read atom context").
			WithDetail(fmt.Sprintf("element=%s", atom.Symbol))
	}
	if name == "" {
		return NoMatch, nil
	}
	at, err := m.catalog.Get(name)
	if err != nil {
		return NoMatch, driftError(rs.Element, name, err)
	}
	return Matched(at), nil
}

func checkArgs(g Graph, atom *molecule.Atom) error {
	if g == nil {
		return errors.InvalidParam("graph must not be nil")
	}
	if atom == nil {
		return errors.InvalidParam("atom must not be nil")
	}
	if !g.Contains(atom) {
		return errors.New(errors.CodeAtomNotInMolecule, "atom does not belong to the molecule").
			WithDetail("symbol=" + atom.Symbol)
	}
	return nil
}

func driftError(element, name string, cause error) error {
	return errors.Wrap(cause, errors.CodeAtomTypeCatalogDrift, "rule set names an atom type the catalog lacks").
		WithDetail(fmt.Sprintf("element=%s name=%s", element, name))
}

//Personal.AI order the ending
