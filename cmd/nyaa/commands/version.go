package commands

import (
	"fmt"

	"github.com/felipemarinho97/nyaa-indexer/consts"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the build version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", consts.Name, consts.Version())
		},
	}
}
