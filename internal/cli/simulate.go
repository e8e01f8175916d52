package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/harvest"
	"github.com/osse101/GardenPlanner_Go/internal/planner"
)

// newSimulateCommand creates the simulate command
func newSimulateCommand(a *app) *cobra.Command {
	var plan planFlags

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a layout's harvests day by day",
		Long: `Decode a save code and simulate the garden's harvests. Prints the layout
summary, every harvest day and the final inventory.`,
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

			rep, err := svc.Simulate(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			return a.emit(cmd.OutOrStdout(), rep, func(w io.Writer) { printSimulate(w, rep) })
		},
	}
	plan.register(cmd)

	return cmd
}

func printSimulate(w io.Writer, rep *planner.SimulateReport) {
	printSummary(w, rep.SaveCode, rep.Summary)
	fmt.Fprintln(w)
	printHarvest(w, rep.Harvest)
}

// printHarvest renders the harvest log and the inventory it adds up to
func printHarvest(w io.Writer, res *harvest.Result) {
	fmt.Fprintf(w, "Horizon: %d days, last harvest on day %d\n\n", res.Horizon, res.LastDay)

	if len(res.Log) == 0 {
		fmt.Fprintln(w, "Nothing is harvested.")
		return
	}

	t := newTable(w)
	fmt.Fprintln(t, "Day\tCrop\tHarvested\tReplant")
	fmt.Fprintln(t, "───\t────\t─────────\t───────")
	for _, rec := range res.Log {
		for _, crop := range rec.Crops.Crops() {
			replant := "-"
			if y, ok := rec.Replant[crop]; ok && !y.IsZero() {
				replant = formatYield(y)
			}
			fmt.Fprintf(t, "%d\t%s\t%s\t%s\n", rec.Day, catalog.DisplayName(string(crop)), formatYield(rec.Crops[crop]), replant)
		}
	}
	t.Flush()

	fmt.Fprintln(w, "\nInventory:")
	t = newTable(w)
	for _, crop := range res.Inventory.Crops() {
		fmt.Fprintf(t, "  %s\t%s\n", catalog.DisplayName(string(crop)), formatYield(res.Inventory[crop]))
	}
	t.Flush()

	if len(res.Seeds) > 0 {
		fmt.Fprintln(w, "\nReplant seeds left over:")
		t = newTable(w)
		for _, crop := range harvestSeedCrops(res) {
			fmt.Fprintf(t, "  %s\t%d\n", catalog.DisplayName(string(crop)), res.Seeds[crop])
		}
		t.Flush()
	}
}

func harvestSeedCrops(res *harvest.Result) []domain.CropKind {
	crops := make([]domain.CropKind, 0, len(res.Seeds))
	for crop := range res.Seeds {
		crops = append(crops, crop)
	}
	sort.Slice(crops, func(i, j int) bool { return crops[i] < crops[j] })
	return crops
}
