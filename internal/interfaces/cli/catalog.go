package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/KeyIP-AtomType/internal/domain/atomtype"
	"github.com/turtacn/KeyIP-AtomType/internal/domain/molecule"
	"github.com/turtacn/KeyIP-AtomType/pkg/errors"
	types "github.com/turtacn/KeyIP-AtomType/pkg/types/atomtype"
)

// NewCatalogCmd creates the catalog command.
func NewCatalogCmd() *cobra.Command {
	var element, hybridization string
	cmd := &cobra.Command{
		Use:   "catalog [name]",
		Short: "List the built-in atom type catalog, or show one entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := atomtype.NewDefaultTable()
			if len(args) == 1 {
				t, err := table.Get(args[0])
				if err != nil {
					return err
				}
				listing := &types.CatalogListing{Version: table.Version(), Entries: []types.CatalogEntry{catalogEntry(t)}}
				return PrintResult(cmd, listing, func() string { return t.String() + "\n" })
			}
			hyb := molecule.HybridizationUnset
			if hybridization != "" {
				h, ok := molecule.ParseHybridization(strings.ToLower(hybridization))
				if !ok {
					return errors.InvalidParam(fmt.Sprintf("unknown hybridization %q", hybridization))
				}
				hyb = h
			}
			listing := buildListing(table, element, hyb)
			return PrintResult(cmd, listing, func() string { return listingText(listing) })
		},
	}
	cmd.Flags().StringVar(&element, "element", "", "only list types of this element symbol")
	cmd.Flags().StringVar(&hybridization, "hybridization", "", "only list types of this hybridization (sp, sp2, sp3, ...)")
	return cmd
}

func buildListing(table *atomtype.Table, element string, hyb molecule.Hybridization) *types.CatalogListing {
	listing := &types.CatalogListing{Version: table.Version()}
	for _, t := range table.All() {
		if element != "" && !strings.EqualFold(t.Symbol, element) {
			continue
		}
		if hyb.IsSet() && t.Hybridization != hyb {
			continue
		}
		listing.Entries = append(listing.Entries, catalogEntry(t))
	}
	return listing
}

func catalogEntry(t atomtype.AtomType) types.CatalogEntry {
	return types.CatalogEntry{
		Name:          t.Name,
		Symbol:        t.Symbol,
		Hybridization: t.Hybridization.String(),
		FormalCharge:  t.FormalCharge,
		Neighbours:    t.FormalNeighbourCount,
		PiBonds:       t.PiBondCount,
		LonePairs:     t.LonePairCount,
	}
}

func listingText(listing *types.CatalogListing) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "atom type catalog %s (%d entries)\n", listing.Version, len(listing.Entries))
	for _, e := range listing.Entries {
		fmt.Fprintf(&sb, "  %-12s %-2s %-7s charge=%+d neighbours=%d\n",
			e.Name, e.Symbol, e.Hybridization, e.FormalCharge, e.Neighbours)
	}
	return sb.String()
}

//Personal.AI order the ending
