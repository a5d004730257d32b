// Package molfile reads MDL V2000 mol blocks and multi-record SD files into
// molecule.Molecule graphs.
//
// Supported: the header block, the counts line, the atom block (coordinates,
// symbol, charge code), the bond block (single, double and triple orders),
// "M  CHG" property lines, SD data items, and "$$$$" record separators.
// V3000 blocks and aromatic or query bond orders are rejected with
// CodeMolfileUnsupported.
package molfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
	"github.com/turtacn/KeyIP-AtomType/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
)

const (
	recordSeparator = "$$$$"
	endOfBlock      = "M  END"
	chargeProperty  = "M  CHG"
)

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used for per-record debug output.
func WithLogger(l logging.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithImplicitHydrogens controls whether implicit hydrogen counts are derived
// from default valences.  Enabled by default.
func WithImplicitHydrogens(enabled bool) Option {
	return func(r *Reader) { r.hydrogenate = enabled }
}

// Reader reads molecules one record at a time.
type Reader struct {
	sc          *bufio.Scanner
	line        int
	record      int
	hydrogenate bool
	logger      logging.Logger
}

// NewReader wraps src.
func NewReader(src io.Reader, opts ...Option) *Reader {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	r := &Reader{sc: sc, hydrogenate: true, logger: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next returns the next molecule, or io.EOF when the input is exhausted.
func (r *Reader) Next() (*molecule.Molecule, error) {
	lines, start, err := r.readRecord()
	if err != nil {
		return nil, err
	}
	r.record++
	mol, err := parseRecord(lines, start)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnknown, "failed to read molecule").
			WithDetail(fmt.Sprintf("record=%d", r.record))
	}
	if r.hydrogenate {
		if err := Hydrogenate(mol); err != nil {
			return nil, err
		}
	}
	r.logger.Debug("molecule read",
		logging.String(logging.FieldMoleculeID, mol.ID),
		logging.String("title", mol.Title),
		logging.Int("atoms", mol.AtomCount()),
		logging.Int("bonds", mol.BondCount()))
	return mol, nil
}

// ReadAll reads every remaining molecule.
func (r *Reader) ReadAll() ([]*molecule.Molecule, error) {
	var out []*molecule.Molecule
	for {
		mol, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, mol)
	}
}

// readRecord collects the lines up to the next separator.  It returns io.EOF
// when only blank lines remain.
func (r *Reader) readRecord() ([]string, int, error) {
	var lines []string
	start := r.line + 1
	blank := true
	for r.sc.Scan() {
		r.line++
		text := strings.TrimRight(r.sc.Text(), "\r")
		if strings.HasPrefix(text, recordSeparator) {
			if blank {
				lines, start = nil, r.line+1
				continue
			}
			return lines, start, nil
		}
		if strings.TrimSpace(text) != "" {
			blank = false
		}
		lines = append(lines, text)
	}
	if err := r.sc.Err(); err != nil {
		return nil, 0, errors.Wrap(err, errors.CodeMolfileParseFailed, "failed to read input")
	}
	if blank {
		return nil, 0, io.EOF
	}
	return lines, start, nil
}

// ParseFile reads every molecule in the file at path.
func ParseFile(path string, opts ...Option) ([]*molecule.Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeMolfileParseFailed, "failed to open molfile").
			WithDetail("path=" + path)
	}
	defer f.Close()
	return NewReader(f, opts...).ReadAll()
}

// ParseString reads a single mol block.
func ParseString(block string, opts ...Option) (*molecule.Molecule, error) {
	mol, err := NewReader(strings.NewReader(block), opts...).Next()
	if err == io.EOF {
		return nil, errors.New(errors.CodeMolfileParseFailed, "empty mol block")
	}
	return mol, err
}

// ─────────────────────────────────────────────────────────────────────────────
// Record parsing
// ─────────────────────────────────────────────────────────────────────────────

func parseErr(line int, msg string) *errors.AppError {
	return errors.New(errors.CodeMolfileParseFailed, msg).WithDetail(fmt.Sprintf("line=%d", line))
}

func field(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return strings.TrimSpace(s[from:to])
}

func atoi(s string, line int, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, parseErr(line, "invalid "+what).WithCause(err)
	}
	return n, nil
}

func atof(s string, line int, what string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, parseErr(line, "invalid "+what).WithCause(err)
	}
	return f, nil
}

// chargeCodes maps the atom-block charge field to a formal charge.  Code 4
// (doublet radical) carries no charge.
var chargeCodes = map[int]int{0: 0, 1: 3, 2: 2, 3: 1, 4: 0, 5: -1, 6: -2, 7: -3}

func parseRecord(lines []string, start int) (*molecule.Molecule, error) {
	if len(lines) < 4 {
		return nil, parseErr(start, "mol block needs a header and a counts line")
	}
	counts := lines[3]
	countsLine := start + 3
	if strings.Contains(counts, "V3000") {
		return nil, errors.New(errors.CodeMolfileUnsupported, "V3000 mol blocks are not supported").
			WithDetail(fmt.Sprintf("line=%d", countsLine))
	}
	natoms, err := atoi(field(counts, 0, 3), countsLine, "atom count")
	if err != nil {
		return nil, err
	}
	nbonds, err := atoi(field(counts, 3, 6), countsLine, "bond count")
	if err != nil {
		return nil, err
	}
	if natoms < 0 || nbonds < 0 {
		return nil, parseErr(countsLine, "negative atom or bond count")
	}
	if len(lines) < 4+natoms+nbonds {
		return nil, parseErr(countsLine, "record is shorter than its counts line declares")
	}

	mol := molecule.New(strings.TrimSpace(lines[0]))

	for i := 0; i < natoms; i++ {
		ln := lines[4+i]
		lineNo := start + 4 + i
		if len(ln) < 34 {
			return nil, parseErr(lineNo, "atom line too short")
		}
		a, err := parseAtom(ln, lineNo)
		if err != nil {
			return nil, err
		}
		if _, err := mol.AddAtom(a); err != nil {
			return nil, err
		}
	}

	for i := 0; i < nbonds; i++ {
		ln := lines[4+natoms+i]
		lineNo := start + 4 + natoms + i
		if len(ln) < 9 {
			return nil, parseErr(lineNo, "bond line too short")
		}
		if err := parseBond(mol, ln, lineNo); err != nil {
			return nil, err
		}
	}

	rest := lines[4+natoms+nbonds:]
	restStart := start + 4 + natoms + nbonds
	n, err := parseProperties(mol, rest, restStart)
	if err != nil {
		return nil, err
	}
	parseDataItems(mol, rest[n:])
	return mol, nil
}

func parseAtom(ln string, lineNo int) (*molecule.Atom, error) {
	x, err := atof(field(ln, 0, 10), lineNo, "x coordinate")
	if err != nil {
		return nil, err
	}
	y, err := atof(field(ln, 10, 20), lineNo, "y coordinate")
	if err != nil {
		return nil, err
	}
	z, err := atof(field(ln, 20, 30), lineNo, "z coordinate")
	if err != nil {
		return nil, err
	}
	symbol := field(ln, 31, 34)
	if symbol == "" {
		return nil, parseErr(lineNo, "missing atom symbol")
	}

	a := molecule.NewAtom(symbol)
	a.X, a.Y, a.Z = x, y, z

	code := 0
	if raw := field(ln, 36, 39); raw != "" {
		if code, err = atoi(raw, lineNo, "charge code"); err != nil {
			return nil, err
		}
	}
	charge, ok := chargeCodes[code]
	if !ok {
		return nil, parseErr(lineNo, "unknown charge code").WithDetail(fmt.Sprintf("line=%d code=%d", lineNo, code))
	}
	a.FormalCharge = molecule.Charge(charge)
	return a, nil
}

func parseBond(mol *molecule.Molecule, ln string, lineNo int) error {
	begin, err := atoi(field(ln, 0, 3), lineNo, "bond begin atom")
	if err != nil {
		return err
	}
	end, err := atoi(field(ln, 3, 6), lineNo, "bond end atom")
	if err != nil {
		return err
	}
	code, err := atoi(field(ln, 6, 9), lineNo, "bond order")
	if err != nil {
		return err
	}
	var order molecule.BondOrder
	switch code {
	case 1:
		order = molecule.BondOrderSingle
	case 2:
		order = molecule.BondOrderDouble
	case 3:
		order = molecule.BondOrderTriple
	default:
		return errors.New(errors.CodeMolfileUnsupported, "unsupported bond order").
			WithDetail(fmt.Sprintf("line=%d order=%d", lineNo, code))
	}
	if _, err := mol.AddBond(begin-1, end-1, order); err != nil {
		return errors.Wrap(err, errors.CodeUnknown, "invalid bond").
			WithDetail(fmt.Sprintf("line=%d", lineNo))
	}
	return nil
}

// parseProperties handles the property block up to "M  END" and returns the
// number of lines consumed.  Any "M  CHG" line resets every atom-block charge
// first.
func parseProperties(mol *molecule.Molecule, lines []string, start int) (int, error) {
	reset := false
	for i, ln := range lines {
		if strings.HasPrefix(ln, endOfBlock) {
			return i + 1, nil
		}
		if !strings.HasPrefix(ln, chargeProperty) {
			continue
		}
		if !reset {
			for _, a := range mol.Atoms() {
				a.FormalCharge = molecule.Charge(0)
			}
			reset = true
		}
		if err := parseChargeLine(mol, ln, start+i); err != nil {
			return 0, err
		}
	}
	return len(lines), nil
}

func parseChargeLine(mol *molecule.Molecule, ln string, lineNo int) error {
	fields := strings.Fields(ln)
	if len(fields) < 3 {
		return parseErr(lineNo, "malformed M  CHG line")
	}
	n, err := atoi(fields[2], lineNo, "M  CHG entry count")
	if err != nil {
		return err
	}
	if len(fields) < 3+2*n {
		return parseErr(lineNo, "M  CHG line has fewer entries than declared")
	}
	for k := 0; k < n; k++ {
		idx, err := atoi(fields[3+2*k], lineNo, "M  CHG atom number")
		if err != nil {
			return err
		}
		val, err := atoi(fields[4+2*k], lineNo, "M  CHG value")
		if err != nil {
			return err
		}
		a, err := mol.Atom(idx - 1)
		if err != nil {
			return parseErr(lineNo, "M  CHG atom number out of range").WithCause(err)
		}
		a.FormalCharge = molecule.Charge(val)
	}
	return nil
}

// parseDataItems stores SD "> <name>" items as molecule properties.
func parseDataItems(mol *molecule.Molecule, lines []string) {
	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		if !strings.HasPrefix(ln, ">") {
			continue
		}
		open, shut := strings.Index(ln, "<"), strings.LastIndex(ln, ">")
		if open < 0 || shut <= open {
			continue
		}
		name := ln[open+1 : shut]
		var value []string
		for i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			i++
			value = append(value, lines[i])
		}
		mol.SetProperty(name, strings.Join(value, "\n"))
	}
}

//Personal.AI order the ending
