package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/GardenPlanner_Go/internal/planner"
)

// newProduceCommand creates the produce command
func newProduceCommand(a *app) *cobra.Command {
	var (
		plan   planFlags
		ledger bool
	)

	cmd := &cobra.Command{
		Use:   "produce",
		Short: "Run the harvest through seeders and preserve jars",
		Long: `Simulate the layout, then feed each harvest day to the crafter roster the
plan's crop options and strategy describe. Prints per-crafter utilisation and
the total gold the production is worth.`,
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

			rep, err := svc.Produce(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("production failed: %w", err)
			}

			return a.emit(cmd.OutOrStdout(), rep, func(w io.Writer) { printProduce(w, rep, ledger) })
		},
	}
	plan.register(cmd)
	cmd.Flags().BoolVar(&ledger, "ledger", false, "Print the day by day ledger")

	return cmd
}

func printProduce(w io.Writer, rep *planner.ProduceReport, withLedger bool) {
	p := rep.Production

	fmt.Fprintf(w, "Save code: %s\n", rep.SaveCode)
	fmt.Fprintf(w, "Strategy:  %s\n", p.Strategy)
	fmt.Fprintf(w, "Crafters:  %d seeders, %d preserve jars\n", p.Seeders, p.Jars)
	fmt.Fprintf(w, "Days:      %d\n\n", p.Days)

	if len(p.Crafters) > 0 {
		t := newTable(w)
		fmt.Fprintln(t, "ID\tKind\tPinned\tBusy\tIdle\tUtilisation\tConversions\tGold")
		fmt.Fprintln(t, "──\t────\t──────\t────\t────\t───────────\t───────────\t────")
		for _, c := range p.Crafters {
			pin := "-"
			if c.Pin != nil {
				pin = string(c.Pin.Crop)
				if c.Pin.Star {
					pin += "*"
				}
			}
			fmt.Fprintf(t, "%d\t%s\t%s\t%s\t%s\t%.1f%%\t%d\t%s\n",
				c.ID, c.Kind, pin,
				formatMinutes(c.ElapsedMinutes), formatMinutes(c.IdleMinutes),
				c.Utilisation, c.Conversions, formatGold(c.GoldGenerated))
		}
		t.Flush()
		fmt.Fprintln(w)
	}

	if withLedger {
		t := newTable(w)
		fmt.Fprintln(t, "Day\tProduce\tCosts\tGold")
		fmt.Fprintln(t, "───\t───────\t─────\t────")
		for _, day := range rep.Ledger {
			fmt.Fprintf(t, "%d\t%s\t%s\t%s\n", day.Day, formatStacks(day.Produce), formatStacks(day.Costs), formatGold(day.Gold))
		}
		t.Flush()
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Shipped raw: %d (%d drained at the end)\n", p.RawShipped, p.Drained)
	if p.Charged > 0 {
		fmt.Fprintf(w, "Charged:     %d crops\n", p.Charged)
	}
	fmt.Fprintf(w, "Total value: %s\n", formatGold(p.TotalValue))
}
