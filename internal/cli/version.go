package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/GardenPlanner_Go/internal/handler"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := handler.CurrentVersion()
			fmt.Fprintf(cmd.OutOrStdout(), "planner %s (%s, commit %s, built %s)\n", v.Version, v.GoVersion, v.GitCommit, v.BuildTime)
		},
	}
}
