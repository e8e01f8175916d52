package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/GardenPlanner_Go/internal/planner"
)

// newNormalizeCommand creates the normalize command
func newNormalizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <save-code>",
		Short: "Rewrite a save code in the current format",
		Long: `Decode a save code of any supported version and print it re-encoded in the
current version, together with a summary of the layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}

			rep, err := svc.Normalize(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("normalize failed: %w", err)
			}

			return a.emit(cmd.OutOrStdout(), rep, func(w io.Writer) { printNormalize(w, rep) })
		},
	}
}

func printNormalize(w io.Writer, rep *planner.NormalizeReport) {
	printSummary(w, rep.SaveCode, rep.Summary)
	if rep.Upgraded {
		fmt.Fprintf(w, "Upgraded:   from %s\n", rep.SourceVersion)
	}
}
