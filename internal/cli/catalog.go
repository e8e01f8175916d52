package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
)

// newCatalogCommand creates the catalog command with subcommands
func newCatalogCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List crops and fertilisers",
		Long:  `Print the crop catalog the planner runs against.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			cat := svc.Catalog()

			doc := catalog.Document{Crops: cat.Crops(), Fertilisers: cat.Fertilisers()}
			return a.emit(cmd.OutOrStdout(), doc, func(w io.Writer) { printCatalog(w, cat) })
		},
	}

	cmd.AddCommand(newCatalogResolveCommand(a))

	return cmd
}

// newCatalogResolveCommand creates the catalog resolve subcommand
func newCatalogResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>",
		Short: "Find the crop a name refers to",
		Long:  `Resolve a display name, crop code or near miss to a catalog crop.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			kind, err := svc.Catalog().Resolve(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", catalog.DisplayName(string(kind)), kind)
			return nil
		},
	}
}

func printCatalog(w io.Writer, cat *catalog.Table) {
	t := newTable(w)
	fmt.Fprintln(t, "Crop\tSize\tBonus\tGrows\tRegrows\tYield\tCrop\tSeed\tPreserve")
	fmt.Fprintln(t, "────\t────\t─────\t─────\t───────\t─────\t────\t────\t────────")
	for _, c := range cat.Crops() {
		regrows := "-"
		if c.ReharvestLimit > 0 {
			regrows = fmt.Sprintf("%dx every %dd", c.ReharvestLimit, c.ReharvestCooldown)
		}
		name := c.Name
		if name == "" {
			name = catalog.DisplayName(string(c.Kind))
		}
		fmt.Fprintf(t, "%s\t%d\t%s\t%dd\t%s\t%d/%d\t%s\t%s\t%s\n",
			name, c.Footprint, c.Bonus, c.GrowthDays, regrows, c.Base, c.WithBonus,
			formatGold(c.CropPrice.Base), formatGold(c.SeedPrice.Base), formatGold(c.PreservePrice.Base))
	}
	t.Flush()

	fmt.Fprintln(w, "\nFertilisers:")
	t = newTable(w)
	for _, f := range cat.Fertilisers() {
		name := f.Name
		if name == "" {
			name = catalog.DisplayName(string(f.Kind))
		}
		fmt.Fprintf(t, "  %s\t%s\n", name, f.Bonus)
	}
	t.Flush()
}
