package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/felipemarinho97/nyaa-indexer/category"
	"github.com/felipemarinho97/nyaa-indexer/extractor"
	"github.com/felipemarinho97/nyaa-indexer/logging"
	"github.com/felipemarinho97/nyaa-indexer/query"
	"github.com/felipemarinho97/nyaa-indexer/requester"
	"github.com/felipemarinho97/nyaa-indexer/schema"
)

const (
	NyaaURL    = "https://nyaa.si"
	SukebeiURL = "https://sukebei.nyaa.si"
)

// Fetcher retrieves the body of a page as text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Client lists one site whose categories are described by C.
type Client[C category.Category] struct {
	baseURL   string
	fetcher   Fetcher
	extractor *extractor.Extractor
}

// New lists the site at baseURL. A trailing slash is ignored.
func New[C category.Category](baseURL string, f Fetcher) *Client[C] {
	return &Client[C]{
		baseURL:   strings.TrimRight(baseURL, "/"),
		fetcher:   f,
		extractor: extractor.New(),
	}
}

func NewNyaa(f Fetcher) *Client[category.Nyaa] {
	return New[category.Nyaa](NyaaURL, f)
}

func NewSukebei(f Fetcher) *Client[category.Sukebei] {
	return New[category.Sukebei](SukebeiURL, f)
}

func (c *Client[C]) BaseURL() string {
	return c.baseURL
}

// URL returns the listing address for q.
func (c *Client[C]) URL(q query.Query[C]) string {
	return fmt.Sprintf("%s/?%s", c.baseURL, q.Encode())
}

// Get fetches the listing for q and extracts its rows. Extraction only runs
// after a successful fetch.
func (c *Client[C]) Get(ctx context.Context, q query.Query[C]) ([]schema.Torrent, error) {
	url := c.URL(q)
	logging.DebugWithContext(ctx).Str("url", url).Msg("Fetching listing")

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		var tErr *requester.TransportError
		if errors.As(err, &tErr) {
			return nil, err
		}
		return nil, &requester.TransportError{URL: url, Err: err}
	}

	torrents, err := c.extractor.Extract(body, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", url, err)
	}
	return torrents, nil
}
