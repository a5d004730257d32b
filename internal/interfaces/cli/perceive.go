package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/turtacn/KeyIP-AtomType/internal/application/perception"
	"github.com/turtacn/KeyIP-AtomType/internal/config"
	"github.com/turtacn/KeyIP-AtomType/internal/domain/atomtype"
	"github.com/turtacn/KeyIP-AtomType/internal/infrastructure/molfile"
	"github.com/turtacn/KeyIP-AtomType/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/KeyIP-AtomType/internal/infrastructure/monitoring/prometheus"
	types "github.com/turtacn/KeyIP-AtomType/pkg/types/atomtype"
)

type perceiveOptions struct {
	metricsAddr string
	failFast    bool
	concurrency int
	noHydrogens bool
}

// NewPerceiveCmd creates the perceive command.
func NewPerceiveCmd() *cobra.Command {
	opts := &perceiveOptions{}
	cmd := &cobra.Command{
		Use:   "perceive <file.sdf|file.mol>",
		Short: "Assign atom types to every atom of every molecule in a molfile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPerceive(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address while running")
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop at the first molecule with a failed atom")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "molecules perceived in parallel (default from config)")
	cmd.Flags().BoolVar(&opts.noHydrogens, "no-implicit-hydrogens", false, "do not derive implicit hydrogen counts")
	return cmd
}

func runPerceive(cmd *cobra.Command, path string, opts *perceiveOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	cfg := cliCtx.Config
	logger := cliCtx.Logger

	mols, err := molfile.ParseFile(path,
		molfile.WithLogger(logger),
		molfile.WithImplicitHydrogens(!opts.noHydrogens))
	if err != nil {
		return err
	}

	addr := opts.metricsAddr
	if addr == "" {
		addr = cfg.Metrics.Addr
	}
	collector, err := newCollector(cfg, addr != "", logger)
	if err != nil {
		return err
	}
	if addr != "" {
		stop, err := serveMetrics(addr, collector, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	pcfg := cfg.Perception
	if opts.failFast {
		pcfg.FailFast = true
	}
	if opts.concurrency > 0 {
		pcfg.Concurrency = opts.concurrency
	}

	matcher, err := atomtype.NewMatcher(atomtype.NewDefaultTable())
	if err != nil {
		return err
	}
	svc, err := perception.NewService(matcher, logger, prometheus.NewPerceptionMetrics(collector), pcfg)
	if err != nil {
		return err
	}

	batch, batchErr := svc.PerceiveBatch(cmd.Context(), mols)
	if batch != nil {
		if err := printBatch(cmd, batch); err != nil {
			return err
		}
	}
	return batchErr
}

func newCollector(cfg *config.Config, serving bool, logger logging.Logger) (prometheus.MetricsCollector, error) {
	if !cfg.Metrics.Enabled && !serving {
		return prometheus.NewNoopCollector(), nil
	}
	return prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            cfg.Metrics.Namespace,
		EnableGoMetrics:      true,
		EnableProcessMetrics: true,
	}, logger)
}

// serveMetrics starts a /metrics endpoint and returns a function that shuts
// it down.
func serveMetrics(addr string, collector prometheus.MetricsCollector, logger logging.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server stopped", logging.ErrorFields(err)...)
		}
	}()
	logger.Info("serving metrics", logging.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
		<-done
	}, nil
}

func printBatch(cmd *cobra.Command, batch *types.BatchReport) error {
	cliCtx, _ := GetCLIContext(cmd)
	if cliCtx != nil && cliCtx.OutputFormat == OutputTable {
		out := cmd.OutOrStdout()
		for _, r := range batch.Molecules {
			fmt.Fprintf(out, "%s\n", r.Summary())
			fmt.Fprint(out, FormatTable(r.TableHeaders(), r.TableRows()))
			fmt.Fprintln(out)
		}
		return nil
	}
	return PrintResult(cmd, batch, func() string { return batchText(batch) })
}

func batchText(batch *types.BatchReport) string {
	var sb strings.Builder
	for _, r := range batch.Molecules {
		fmt.Fprintf(&sb, "%s [%s]\n", moleculeName(r), statusColor(string(r.Status)))
		for _, a := range r.Atoms {
			label := a.AtomType
			switch a.Status {
			case types.StatusUnperceived:
				label = "-"
			case types.StatusFailed:
				label = a.ErrorCode
			}
			fmt.Fprintf(&sb, "  %3d %-3s %-11s %s\n", a.Index+1, a.Symbol, statusColor(string(a.Status)), label)
		}
	}
	fmt.Fprintf(&sb, "%d molecules: %d complete, %d partial, %d failed\n",
		batch.Total, batch.Complete, batch.Partial, batch.Failed)
	return sb.String()
}

func moleculeName(r *types.MoleculeReport) string {
	if r.Title != "" {
		return r.Title
	}
	return r.MoleculeID
}

func statusColor(s string) string {
	switch s {
	case string(types.StatusMatched), string(types.MoleculeComplete):
		return color.GreenString(s)
	case string(types.StatusUnperceived), string(types.MoleculePartial):
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}

//Personal.AI order the ending
