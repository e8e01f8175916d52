package cli

import (
	"github.com/spf13/cobra"

	"github.com/osse101/GardenPlanner_Go/internal/catalog"
)

// newSchemaCommand creates the schema command
func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of catalog files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := catalog.Schema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(doc, '\n'))
			return err
		},
	}
}
