package commands

import (
	"fmt"
	"io"

	"github.com/felipemarinho97/nyaa-indexer/category"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	var site string
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Lists the category codes and names of a site.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch site {
			case "nyaa":
				renderCategories(cmd.OutOrStdout(), category.NyaaCategories())
			case "sukebei":
				renderCategories(cmd.OutOrStdout(), category.SukebeiCategories())
			default:
				return fmt.Errorf("unknown site %q", site)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&site, "site", "nyaa", "Site whose categories to list (nyaa or sukebei).")
	return cmd
}

func renderCategories[C interface {
	category.Category
	Name() string
}](out io.Writer, cs []C) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Code", "Name"})
	for _, c := range cs {
		t.AppendRow(table.Row{c.String(), c.Name()})
	}
	t.Render()
}
