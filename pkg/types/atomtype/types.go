// Package atomtype defines the report DTOs produced by atom-type perception
// and rendered by the CLI.  No domain logic lives here, only plain data types
// that are safe to import from any layer.
package atomtype

import (
	"fmt"
	"math"
	"strconv"
)

// ─────────────────────────────────────────────────────────────────────────────
// AtomStatus
// ─────────────────────────────────────────────────────────────────────────────

// AtomStatus is the outcome of perceiving one atom.
type AtomStatus string

const (
	// StatusMatched means an atom type was assigned.
	StatusMatched AtomStatus = "matched"

	// StatusUnperceived means no rule covers the atom.  This is a valid
	// classification, not an error.
	StatusUnperceived AtomStatus = "unperceived"

	// StatusFailed means perception hit an internal inconsistency.
	StatusFailed AtomStatus = "failed"
)

// MoleculeStatus summarises a whole molecule.
type MoleculeStatus string

const (
	// MoleculeComplete: every atom was matched.
	MoleculeComplete MoleculeStatus = "complete"
	// MoleculePartial: no failures, at least one unperceived atom.
	MoleculePartial MoleculeStatus = "partial"
	// MoleculeFailed: at least one atom failed.
	MoleculeFailed MoleculeStatus = "failed"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reports
// ─────────────────────────────────────────────────────────────────────────────

// AtomAssignment is the perception result of one atom.
type AtomAssignment struct {
	Index         int        `json:"index" yaml:"index"`
	Symbol        string     `json:"symbol" yaml:"symbol"`
	Status        AtomStatus `json:"status" yaml:"status"`
	AtomType      string     `json:"atom_type,omitempty" yaml:"atom_type,omitempty"`
	Hybridization string     `json:"hybridization,omitempty" yaml:"hybridization,omitempty"`
	Degree        int        `json:"degree" yaml:"degree"`
	MaxBondOrder  string     `json:"max_bond_order,omitempty" yaml:"max_bond_order,omitempty"`
	ErrorCode     string     `json:"error_code,omitempty" yaml:"error_code,omitempty"`
	Error         string     `json:"error,omitempty" yaml:"error,omitempty"`
}

// MoleculeReport collects the assignments of every atom of one molecule.
type MoleculeReport struct {
	MoleculeID  string           `json:"molecule_id" yaml:"molecule_id"`
	Title       string           `json:"title,omitempty" yaml:"title,omitempty"`
	Formula     string           `json:"formula,omitempty" yaml:"formula,omitempty"`
	Status      MoleculeStatus   `json:"status" yaml:"status"`
	Matched     int              `json:"matched" yaml:"matched"`
	Unperceived int              `json:"unperceived" yaml:"unperceived"`
	Failed      int              `json:"failed" yaml:"failed"`
	Atoms       []AtomAssignment `json:"atoms" yaml:"atoms"`
}

// Add appends an assignment and updates the counters and status.
func (r *MoleculeReport) Add(a AtomAssignment) {
	r.Atoms = append(r.Atoms, a)
	switch a.Status {
	case StatusMatched:
		r.Matched++
	case StatusUnperceived:
		r.Unperceived++
	case StatusFailed:
		r.Failed++
	}
	r.Status = r.computeStatus()
}

func (r *MoleculeReport) computeStatus() MoleculeStatus {
	switch {
	case r.Failed > 0:
		return MoleculeFailed
	case r.Unperceived > 0:
		return MoleculePartial
	}
	return MoleculeComplete
}

// TableHeaders returns the column headers of TableRows.
func (r *MoleculeReport) TableHeaders() []string {
	return []string{"#", "Symbol", "Status", "Atom Type", "Error"}
}

// TableRows renders one row per atom.
func (r *MoleculeReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Atoms))
	for _, a := range r.Atoms {
		errText := a.ErrorCode
		if a.Error != "" {
			errText = a.Error
		}
		rows = append(rows, []string{
			strconv.Itoa(a.Index + 1), a.Symbol, string(a.Status), a.AtomType, errText,
		})
	}
	return rows
}

// Summary is a one-line description of the report.
func (r *MoleculeReport) Summary() string {
	name := r.Title
	if name == "" {
		name = r.MoleculeID
	}
	return fmt.Sprintf("%s: %d atoms, %d matched, %d unperceived, %d failed (%s)",
		name, len(r.Atoms), r.Matched, r.Unperceived, r.Failed, r.Status)
}

// BatchReport is the result of perceiving several molecules.
type BatchReport struct {
	Molecules []*MoleculeReport `json:"molecules" yaml:"molecules"`
	Total     int               `json:"total" yaml:"total"`
	Complete  int               `json:"complete" yaml:"complete"`
	Partial   int               `json:"partial" yaml:"partial"`
	Failed    int               `json:"failed" yaml:"failed"`
}

// NewBatchReport tallies reports by status.  Nil entries are skipped.
func NewBatchReport(reports []*MoleculeReport) *BatchReport {
	b := &BatchReport{Molecules: make([]*MoleculeReport, 0, len(reports))}
	for _, r := range reports {
		if r == nil {
			continue
		}
		b.Molecules = append(b.Molecules, r)
		switch r.Status {
		case MoleculeComplete:
			b.Complete++
		case MoleculePartial:
			b.Partial++
		case MoleculeFailed:
			b.Failed++
		}
	}
	b.Total = len(b.Molecules)
	return b
}

// ─────────────────────────────────────────────────────────────────────────────
// Catalog and descriptor listings
// ─────────────────────────────────────────────────────────────────────────────

// CatalogEntry is one catalog record as listed by the CLI.
type CatalogEntry struct {
	Name          string `json:"name" yaml:"name"`
	Symbol        string `json:"symbol" yaml:"symbol"`
	Hybridization string `json:"hybridization" yaml:"hybridization"`
	FormalCharge  int    `json:"formal_charge" yaml:"formal_charge"`
	Neighbours    int    `json:"neighbours" yaml:"neighbours"`
	PiBonds       int    `json:"pi_bonds" yaml:"pi_bonds"`
	LonePairs     int    `json:"lone_pairs" yaml:"lone_pairs"`
}

// CatalogListing is the full catalog as listed by the CLI.
type CatalogListing struct {
	Version string         `json:"version" yaml:"version"`
	Entries []CatalogEntry `json:"entries" yaml:"entries"`
}

// TableHeaders returns the column headers of TableRows.
func (c *CatalogListing) TableHeaders() []string {
	return []string{"Name", "Symbol", "Hybridization", "Charge", "Neighbours", "Pi Bonds", "Lone Pairs"}
}

// TableRows renders one row per entry.
func (c *CatalogListing) TableRows() [][]string {
	rows := make([][]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		rows = append(rows, []string{
			e.Name, e.Symbol, e.Hybridization,
			strconv.Itoa(e.FormalCharge), strconv.Itoa(e.Neighbours),
			strconv.Itoa(e.PiBonds), strconv.Itoa(e.LonePairs),
		})
	}
	return rows
}

// DescriptorValue is one descriptor result for one atom.  Value is NaN when
// the descriptor could not be computed; Error then says why, if anything
// failed.  Text carries the rendered value so NaN survives JSON encoding.
type DescriptorValue struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"-" yaml:"-"`
	Text  string  `json:"value" yaml:"value"`
	Error string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDescriptorValue builds a DescriptorValue; err may be nil.
func NewDescriptorValue(name string, v float64, err error) DescriptorValue {
	d := DescriptorValue{Name: name, Value: v}
	d.Text = d.Display()
	if err != nil {
		d.Error = err.Error()
	}
	return d
}

// Display renders Value with four decimals, or "NaN".
func (d DescriptorValue) Display() string {
	if math.IsNaN(d.Value) {
		return "NaN"
	}
	return strconv.FormatFloat(d.Value, 'f', 4, 64)
}

// AtomDescriptors holds every descriptor result for one atom.
type AtomDescriptors struct {
	Index  int               `json:"index" yaml:"index"`
	Symbol string            `json:"symbol" yaml:"symbol"`
	Values []DescriptorValue `json:"values" yaml:"values"`
}

// DescriptorReport holds the descriptor results for one molecule.
type DescriptorReport struct {
	MoleculeID string            `json:"molecule_id" yaml:"molecule_id"`
	Title      string            `json:"title,omitempty" yaml:"title,omitempty"`
	Names      []string          `json:"names" yaml:"names"`
	Atoms      []AtomDescriptors `json:"atoms" yaml:"atoms"`
}

// TableHeaders returns "#", "Symbol" and one column per descriptor.
func (r *DescriptorReport) TableHeaders() []string {
	return append([]string{"#", "Symbol"}, r.Names...)
}

// TableRows renders one row per atom.
func (r *DescriptorReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Atoms))
	for _, a := range r.Atoms {
		row := []string{strconv.Itoa(a.Index + 1), a.Symbol}
		for _, v := range a.Values {
			row = append(row, v.Display())
		}
		rows = append(rows, row)
	}
	return rows
}

//Personal.AI order the ending
