package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/KeyIP-AtomType/internal/application/perception"
	"github.com/turtacn/KeyIP-AtomType/internal/domain/atomtype"
	"github.com/turtacn/KeyIP-AtomType/internal/domain/descriptor"
	"github.com/turtacn/KeyIP-AtomType/internal/infrastructure/molfile"
	types "github.com/turtacn/KeyIP-AtomType/pkg/types/atomtype"
)

// NewDescribeCmd creates the describe command.
func NewDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <file.sdf|file.mol>",
		Short: "Calculate per-atom Kier-Hall electronegativity and hybridization descriptors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args[0])
		},
	}
}

func runDescribe(cmd *cobra.Command, path string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	mols, err := molfile.ParseFile(path, molfile.WithLogger(cliCtx.Logger))
	if err != nil {
		return err
	}

	matcher, err := atomtype.NewMatcher(atomtype.NewDefaultTable())
	if err != nil {
		return err
	}
	hyb, err := descriptor.NewAtomTypeHybridization(matcher)
	if err != nil {
		return err
	}
	ds := []descriptor.AtomicDescriptor{descriptor.NewKierHall(), hyb}

	svc, err := perception.NewService(matcher, cliCtx.Logger, nil, cliCtx.Config.Perception)
	if err != nil {
		return err
	}

	reports := make([]*types.DescriptorReport, 0, len(mols))
	for _, mol := range mols {
		r, err := svc.Describe(cmd.Context(), mol, ds)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	if cliCtx.OutputFormat == OutputTable || cliCtx.OutputFormat == OutputText {
		out := cmd.OutOrStdout()
		for _, r := range reports {
			fmt.Fprintln(out, descriptorTitle(r))
			fmt.Fprint(out, FormatTable(r.TableHeaders(), r.TableRows()))
			fmt.Fprintln(out)
		}
		return nil
	}
	return PrintResult(cmd, reports, nil)
}

func descriptorTitle(r *types.DescriptorReport) string {
	name := r.Title
	if name == "" {
		name = r.MoleculeID
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(r.Names, ", "))
}

//Personal.AI order the ending
