package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/planner"
)

// newValueCommand creates the value command
func newValueCommand(a *app) *cobra.Command {
	var plan planFlags

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Value a layout's harvests in gold",
		Long: `Simulate the layout and convert each day's harvest into the product the
plan's crop options ask for, carrying remainders between days.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := plan.load(cmd)
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}

			rep, err := svc.Value(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("valuation failed: %w", err)
			}

			return a.emit(cmd.OutOrStdout(), rep, func(w io.Writer) { printValue(w, rep) })
		},
	}
	plan.register(cmd)

	return cmd
}

func printValue(w io.Writer, rep *planner.ValueReport) {
	fmt.Fprintf(w, "Save code: %s\n\n", rep.SaveCode)

	t := newTable(w)
	fmt.Fprintln(t, "Day\tCrop\tProduct\tAmount\tUnits\tCarry\tGold")
	fmt.Fprintln(t, "───\t────\t───────\t──────\t─────\t─────\t────")
	for _, day := range rep.Valuation.Days {
		for _, e := range day.Entries {
			name := catalog.DisplayName(string(e.Crop))
			if e.Star {
				name += " *"
			}
			fmt.Fprintf(t, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
				day.Day, name, e.Product, e.Amount, e.Units, e.Remainder, formatGold(e.Gold))
		}
	}
	t.Flush()

	if len(rep.Remainders) > 0 {
		fmt.Fprintln(w, "\nLeft over:")
		t = newTable(w)
		for _, e := range rep.Remainders {
			name := catalog.DisplayName(string(e.Crop))
			if e.Star {
				name += " *"
			}
			fmt.Fprintf(t, "  %s\t%d\n", name, e.Remainder)
		}
		t.Flush()
	}

	fmt.Fprintf(w, "\nTotal: %s\n", formatGold(rep.Valuation.Total))
}
