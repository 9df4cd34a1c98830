package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/felipemarinho97/nyaa-indexer/logging"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:           "nyaa",
		Short:         "nyaa lists torrents from nyaa.si and sukebei.nyaa.si.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.InitLoggerTo(cmd.ErrOrStderr(), logLevel, "console")
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error).")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newCategoriesCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func ExecuteContext(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}
