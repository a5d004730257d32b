// Package perception provides the application-level service that runs atom-type
// perception over whole molecules and batches of molecules, turning per-atom
// outcomes into reports, log lines and metrics.
package perception

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/turtacn/KeyIP-AtomType/internal/config"
	"github.com/turtacn/KeyIP-AtomType/internal/domain/atomtype"
	"github.com/turtacn/KeyIP-AtomType/internal/domain/descriptor"
	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
	"github.com/turtacn/KeyIP-AtomType/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/KeyIP-AtomType/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
	types "github.com/turtacn/KeyIP-AtomType/pkg/types/atomtype"
)

// Perceiver classifies one atom within its molecule.  *atomtype.Matcher
// satisfies it.
type Perceiver interface {
	FindMatchingAtomType(g atomtype.Graph, atom *molecule.Atom) (atomtype.Perception, error)
}

// Service defines the perception application operations.
type Service interface {
	// PerceiveMolecule perceives every atom of mol.  Per-atom failures are
	// recorded in the report; only a nil molecule or a cancelled context
	// yields an error.
	PerceiveMolecule(ctx context.Context, mol *molecule.Molecule) (*types.MoleculeReport, error)

	// PerceiveBatch perceives mols concurrently and returns the reports in
	// input order.  With fail-fast enabled the first molecule containing a
	// failed atom cancels the batch and its failure is returned.
	PerceiveBatch(ctx context.Context, mols []*molecule.Molecule) (*types.BatchReport, error)

	// Describe calculates every descriptor for every atom of mol.
	Describe(ctx context.Context, mol *molecule.Molecule, ds []descriptor.AtomicDescriptor) (*types.DescriptorReport, error)
}

type serviceImpl struct {
	perceiver Perceiver
	logger    logging.Logger
	metrics   *prometheus.PerceptionMetrics
	cfg       config.PerceptionConfig
}

// NewService creates a perception service.  A nil logger falls back to
// logging.Default; metrics may be nil.
func NewService(perceiver Perceiver, logger logging.Logger, metrics *prometheus.PerceptionMetrics, cfg config.PerceptionConfig) (Service, error) {
	if perceiver == nil {
		return nil, errors.InvalidParam("perceiver must not be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &serviceImpl{
		perceiver: perceiver,
		logger:    logger.Named("perception"),
		metrics:   metrics,
		cfg:       cfg,
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Single molecule
// ─────────────────────────────────────────────────────────────────────────────

func (s *serviceImpl) PerceiveMolecule(ctx context.Context, mol *molecule.Molecule) (*types.MoleculeReport, error) {
	res, err := s.perceive(ctx, mol)
	if err != nil {
		return nil, err
	}
	return res.report, nil
}

// moleculeResult is a perceived molecule together with the first per-atom
// failure, which only fail-fast batches act on.
type moleculeResult struct {
	report       *types.MoleculeReport
	firstFailure error
}

func (s *serviceImpl) perceive(ctx context.Context, mol *molecule.Molecule) (moleculeResult, error) {
	if mol == nil {
		return moleculeResult{}, errors.InvalidParam("molecule must not be nil")
	}
	start := time.Now()
	log := s.logger.With(logging.String("molecule_id", mol.ID), logging.String("title", mol.Title))

	res := moleculeResult{report: &types.MoleculeReport{
		MoleculeID: mol.ID,
		Title:      mol.Title,
		Formula:    mol.Formula(),
		Status:     types.MoleculeComplete,
		Atoms:      make([]types.AtomAssignment, 0, mol.AtomCount()),
	}}
	report := res.report

	for i, atom := range mol.Atoms() {
		if err := ctx.Err(); err != nil {
			return moleculeResult{}, errors.Wrap(err, errors.CodeCanceled, "perception cancelled").
				WithDetail(fmt.Sprintf("molecule=%s atom=%d", mol.ID, i))
		}

		assignment, err := s.perceiveAtom(mol, i, atom)
		if err != nil {
			fields := append(logging.ErrorFields(err),
				logging.Int("atom_index", i), logging.String("symbol", atom.Symbol))
			if errors.IsFailureCode(errors.GetCode(err)) {
				log.Warn("atom perception failed", fields...)
			} else {
				log.Error("unexpected perception error", fields...)
			}
			if res.firstFailure == nil {
				res.firstFailure = errors.Wrap(err, errors.CodeUnknown, "atom perception failed").
					WithDetail(fmt.Sprintf("molecule=%s atom=%d", mol.ID, i))
			}
		}
		report.Add(assignment)
	}

	s.metrics.RecordMolecule(string(report.Status))
	log.Debug("molecule perceived",
		logging.String("status", string(report.Status)),
		logging.Int("atoms", len(report.Atoms)),
		logging.Int("matched", report.Matched),
		logging.Int("unperceived", report.Unperceived),
		logging.Int("failed", report.Failed),
		logging.Duration("duration", time.Since(start)))
	return res, nil
}

func (s *serviceImpl) perceiveAtom(mol *molecule.Molecule, idx int, atom *molecule.Atom) (types.AtomAssignment, error) {
	a := types.AtomAssignment{Index: idx, Symbol: atom.Symbol}

	start := time.Now()
	p, err := s.perceiver.FindMatchingAtomType(mol, atom)
	elapsed := time.Since(start)

	if err == nil {
		if lc, lerr := atomtype.ExtractLocalContext(mol, atom); lerr == nil {
			a.Degree = lc.Degree
			if lc.MaxBondOrder.IsSet() {
				a.MaxBondOrder = lc.MaxBondOrder.String()
			}
		}
	}

	switch {
	case err != nil:
		a.Status = types.StatusFailed
		a.ErrorCode = string(errors.GetCode(err))
		a.Error = err.Error()
		s.metrics.RecordPerception(atom.Symbol, prometheus.OutcomeFailed, elapsed)
	case p.IsMatch():
		at, _ := p.AtomType()
		a.Status = types.StatusMatched
		a.AtomType = at.Name
		if at.Hybridization.IsSet() {
			a.Hybridization = at.Hybridization.String()
		}
		s.metrics.RecordPerception(atom.Symbol, prometheus.OutcomeMatched, elapsed)
	default:
		a.Status = types.StatusUnperceived
		s.metrics.RecordPerception(atom.Symbol, prometheus.OutcomeUnperceived, elapsed)
	}
	return a, err
}

// ─────────────────────────────────────────────────────────────────────────────
// Batch
// ─────────────────────────────────────────────────────────────────────────────

func (s *serviceImpl) PerceiveBatch(ctx context.Context, mols []*molecule.Molecule) (*types.BatchReport, error) {
	start := time.Now()
	reports := make([]*types.MoleculeReport, len(mols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for i, mol := range mols {
		g.Go(func() error {
			s.metrics.BatchStarted()
			defer s.metrics.BatchFinished()

			res, err := s.perceive(gctx, mol)
			if err != nil {
				return errors.Wrap(err, errors.CodeUnknown, "batch perception stopped").
					WithDetail(fmt.Sprintf("index=%d", i))
			}
			reports[i] = res.report
			if s.cfg.FailFast && res.firstFailure != nil {
				return res.firstFailure
			}
			return nil
		})
	}
	err := g.Wait()

	batch := types.NewBatchReport(reports)
	if err != nil {
		s.logger.Error("batch perception aborted", append(logging.ErrorFields(err),
			logging.Int("molecules", len(mols)), logging.Int("completed", batch.Total))...)
		return batch, err
	}
	s.logger.Info("batch perceived",
		logging.Int("molecules", batch.Total),
		logging.Int("complete", batch.Complete),
		logging.Int("partial", batch.Partial),
		logging.Int("failed", batch.Failed),
		logging.Duration("duration", time.Since(start)))
	return batch, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Descriptors
// ─────────────────────────────────────────────────────────────────────────────

func (s *serviceImpl) Describe(ctx context.Context, mol *molecule.Molecule, ds []descriptor.AtomicDescriptor) (*types.DescriptorReport, error) {
	if mol == nil {
		return nil, errors.InvalidParam("molecule must not be nil")
	}
	names := descriptor.Names(ds)
	if len(names) != len(ds) {
		return nil, errors.InvalidParam("every descriptor must declare a name")
	}
	defer logging.LogOperationDuration(s.logger, "describe", time.Now(),
		logging.String("molecule_id", mol.ID), logging.Int("descriptors", len(ds)))

	report := &types.DescriptorReport{
		MoleculeID: mol.ID,
		Title:      mol.Title,
		Names:      names,
		Atoms:      make([]types.AtomDescriptors, 0, mol.AtomCount()),
	}
	for i, atom := range mol.Atoms() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.CodeCanceled, "descriptor calculation cancelled")
		}
		row := types.AtomDescriptors{Index: i, Symbol: atom.Symbol}
		for j, d := range ds {
			v := d.Calculate(atom, mol)
			if v.Failed() {
				s.logger.Debug("descriptor failed", append(logging.ErrorFields(v.Err),
					logging.String("descriptor", names[j]), logging.Int("atom_index", i))...)
			}
			row.Values = append(row.Values, types.NewDescriptorValue(names[j], v.Result, v.Err))
		}
		report.Atoms = append(report.Atoms, row)
	}
	return report, nil
}

//Personal.AI order the ending
