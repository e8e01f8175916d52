package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
	"github.com/osse101/GardenPlanner_Go/internal/domain"
	"github.com/osse101/GardenPlanner_Go/internal/garden"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatGold renders an amount of gold with thousands separators
func formatGold(n int) string {
	return humanize.Comma(int64(n)) + "g"
}

// formatMinutes renders crafter minutes as hours and minutes
func formatMinutes(m int) string {
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", m/60, m%60)
}

func formatYield(y domain.Yield) string {
	if y.Star == 0 {
		return humanize.Comma(int64(y.Base))
	}
	return fmt.Sprintf("%s (+%s star)", humanize.Comma(int64(y.Base)), humanize.Comma(int64(y.Star)))
}

func formatStacks(stacks []domain.Stack) string {
	if len(stacks) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(stacks))
	for _, s := range stacks {
		name := s.Name
		if s.Star {
			name += "*"
		}
		parts = append(parts, fmt.Sprintf("%d %s", s.Count, name))
	}
	return strings.Join(parts, ", ")
}

// printSummary renders the garden's footprint counts and bonus coverage
func printSummary(w io.Writer, code string, s garden.Summary) {
	fmt.Fprintf(w, "Save code:  %s\n", code)
	fmt.Fprintf(w, "Plots:      %d (%d active)\n", s.Plots, s.ActivePlots)
	fmt.Fprintf(w, "Tiles used: %d in %d footprints\n", s.TilesUsed, s.Footprints)

	if len(s.Crops) > 0 {
		fmt.Fprintf(w, "Crops:      %s\n", joinCounts(s.Crops))
	}
	if len(s.Fertilisers) > 0 {
		fmt.Fprintf(w, "Fertiliser: %s\n", joinCounts(s.Fertilisers))
	}
	if len(s.BonusCoverage) > 0 {
		fmt.Fprintf(w, "Bonuses:    %s\n", joinCounts(s.BonusCoverage))
	}
}

func joinCounts[K ~string](m map[K]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s x%d", catalog.DisplayName(k), m[K(k)]))
	}
	return strings.Join(parts, ", ")
}
