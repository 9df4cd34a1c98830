package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/felipemarinho97/nyaa-indexer/category"
	"github.com/felipemarinho97/nyaa-indexer/client"
	"github.com/felipemarinho97/nyaa-indexer/config"
	"github.com/felipemarinho97/nyaa-indexer/query"
	"github.com/felipemarinho97/nyaa-indexer/requester"
	"github.com/felipemarinho97/nyaa-indexer/schema"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	site     string
	baseURL  string
	page     uint32
	sort     string
	order    string
	filter   string
	category string
	json     bool
	timeout  config.Duration
}

func newSearchCmd() *cobra.Command {
	opts := searchOptions{timeout: config.Duration{Duration: 30 * time.Second}}
	cmd := &cobra.Command{
		Use:   "search [terms...]",
		Short: "Lists one page of torrents matching the terms.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " "), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.site, "site", "nyaa", "Site to list (nyaa or sukebei).")
	flags.StringVar(&opts.baseURL, "base-url", "", "Override the site address, e.g. for a mirror.")
	flags.Uint32Var(&opts.page, "page", 1, "Page number.")
	flags.StringVar(&opts.sort, "sort", "seeders", "Sort column (comments, size, date, seeders, leechers, downloads).")
	flags.StringVar(&opts.order, "order", "desc", "Sort order (asc or desc).")
	flags.StringVar(&opts.filter, "filter", "none", "Filter (none, no-remakes, trusted-only).")
	flags.StringVar(&opts.category, "category", "all", "Category code or name, see the categories command.")
	flags.BoolVar(&opts.json, "json", false, "Print the torrents as JSON.")
	flags.Var(&opts.timeout, "timeout", "HTTP timeout, e.g. 45s or 2m.")
	return cmd
}

func runSearch(ctx context.Context, out io.Writer, terms string, opts searchOptions) error {
	req := requester.NewRequester(opts.timeout.Duration)
	switch opts.site {
	case "nyaa":
		c := client.NewNyaa(req)
		if opts.baseURL != "" {
			c = client.New[category.Nyaa](opts.baseURL, req)
		}
		return search(ctx, out, c, terms, opts, category.ParseNyaa)
	case "sukebei":
		c := client.NewSukebei(req)
		if opts.baseURL != "" {
			c = client.New[category.Sukebei](opts.baseURL, req)
		}
		return search(ctx, out, c, terms, opts, category.ParseSukebei)
	default:
		return fmt.Errorf("unknown site %q", opts.site)
	}
}

func search[C category.Category](ctx context.Context, out io.Writer, c *client.Client[C], terms string, opts searchOptions, parseCategory func(string) (C, error)) error {
	s, err := query.ParseSort(opts.sort)
	if err != nil {
		return err
	}
	o, err := query.ParseSortOrder(opts.order)
	if err != nil {
		return err
	}
	f, err := query.ParseFilter(opts.filter)
	if err != nil {
		return err
	}
	cat, err := parseCategory(opts.category)
	if err != nil {
		return err
	}

	q := query.NewBuilder[C]().
		Search(terms).
		Page(opts.page).
		Sort(s).
		SortOrder(o).
		Filter(f).
		Category(cat).
		Build()

	torrents, err := c.Get(ctx, q)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(torrents)
	}
	renderTorrents(out, torrents)
	return nil
}

func renderTorrents(out io.Writer, torrents []schema.Torrent) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Title", "Size", "Date", "S", "L", "D", "Link"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Title", WidthMax: 60},
		{Name: "S", Align: text.AlignRight},
		{Name: "L", Align: text.AlignRight},
		{Name: "D", Align: text.AlignRight},
	})
	for _, it := range torrents {
		t.AppendRow(table.Row{
			it.Title,
			it.Size.String(),
			it.Date.Format(time.DateTime),
			it.Seeders,
			it.Leechers,
			it.Downloads,
			it.Link,
		})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d torrents", len(torrents))})
	t.Render()
}
