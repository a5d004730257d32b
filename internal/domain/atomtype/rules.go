package atomtype

// Rule classifies the atom behind c.  It returns the chosen atom-type name,
// "" for no match, or an error when a graph property cannot be read.  A rule
// never consults the catalog; the Matcher resolves the name.
type Rule func(c *Context) (string, error)

// RuleSet is the ordered decision procedure for one element.  Adding an
// element means registering another RuleSet with the Matcher.
type RuleSet struct {
	// Element is the symbol the rule set is dispatched on.
	Element string

	// Produces lists every name Perceive can return.  The Matcher checks
	// them against the catalog at construction.
	Produces []string

	Perceive Rule
}

// DefaultRuleSets returns the rule sets registered by NewMatcher unless
// WithoutDefaultRuleSets is given.
func DefaultRuleSets() []RuleSet {
	return []RuleSet{CarbonRules()}
}

//Personal.AI order the ending
