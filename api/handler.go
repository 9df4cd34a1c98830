package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/felipemarinho97/nyaa-indexer/category"
	"github.com/felipemarinho97/nyaa-indexer/logging"
	"github.com/felipemarinho97/nyaa-indexer/monitoring"
	"github.com/felipemarinho97/nyaa-indexer/query"
	"github.com/felipemarinho97/nyaa-indexer/requester"
	"github.com/felipemarinho97/nyaa-indexer/schema"
)

// Lister fetches one listing page. It is implemented by *client.Client.
type Lister[C category.Category] interface {
	Get(ctx context.Context, q query.Query[C]) ([]schema.Torrent, error)
	BaseURL() string
}

// Store remembers which torrents were already served.
type Store interface {
	Unseen(ctx context.Context, scope string, torrents []schema.Torrent) ([]schema.Torrent, error)
}

type IndexerMeta struct {
	Label string
	URL   string
}

type PostProcessorFunc func(*Indexer, *http.Request, IndexerMeta, []schema.IndexedTorrent) []schema.IndexedTorrent

type Indexer struct {
	nyaa           Lister[category.Nyaa]
	sukebei        Lister[category.Sukebei]
	nyaaMeta       IndexerMeta
	sukebeiMeta    IndexerMeta
	store          Store
	metrics        *monitoring.Metrics
	postProcessors []PostProcessorFunc
}

type Option func(*Indexer)

// WithPostProcessors replaces the default post-processor chain.
func WithPostProcessors(p ...PostProcessorFunc) Option {
	return func(i *Indexer) {
		i.postProcessors = p
	}
}

type Response struct {
	Results []schema.IndexedTorrent `json:"results"`
	Count   int                     `json:"count"`
}

// NewIndexer wires the listing clients to the HTTP handlers. store may be nil,
// in which case new_only is ignored.
func NewIndexer(nyaa Lister[category.Nyaa], sukebei Lister[category.Sukebei], store Store, metrics *monitoring.Metrics, opts ...Option) *Indexer {
	i := &Indexer{
		nyaa:        nyaa,
		sukebei:     sukebei,
		nyaaMeta:    IndexerMeta{Label: "nyaa", URL: nyaa.BaseURL()},
		sukebeiMeta: IndexerMeta{Label: "sukebei", URL: sukebei.BaseURL()},
		store:       store,
		metrics:     metrics,
		postProcessors: []PostProcessorFunc{
			EnrichMagnet,
			AddSimilarityCheck,
			FilterSeen,
		},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func serveListing[C category.Category](i *Indexer, w http.ResponseWriter, r *http.Request, meta IndexerMeta, lister Lister[C], parseCategory func(string) (C, error)) {
	start := time.Now()
	defer func() {
		i.metrics.IndexerDuration.WithLabelValues(meta.Label).Observe(time.Since(start).Seconds())
		i.metrics.IndexerRequests.WithLabelValues(meta.Label).Inc()
	}()

	// supported query params: q, page, sort, order, filter, category, filter_results, new_only
	q, err := parseQuery(r.URL.Query(), parseCategory)
	if err != nil {
		i.writeError(w, r, meta, http.StatusBadRequest, err)
		return
	}

	torrents, err := lister.Get(r.Context(), q)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, requester.ErrTransport) {
			status = http.StatusBadGateway
		}
		i.writeError(w, r, meta, status, err)
		return
	}
	i.metrics.IndexerRows.WithLabelValues(meta.Label).Add(float64(len(torrents)))

	indexedTorrents := schema.NewIndexedTorrents(torrents)

	// Apply post-processors
	postProcessedTorrents := indexedTorrents
	for _, processor := range i.postProcessors {
		postProcessedTorrents = processor(i, r, meta, postProcessedTorrents)
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(Response{
		Results: postProcessedTorrents,
		Count:   len(postProcessedTorrents),
	})
	if err != nil {
		logging.ErrorWithRequest(r).Err(err).Msg("Failed to encode response")
	}
}

func parseQuery[C category.Category](params url.Values, parseCategory func(string) (C, error)) (query.Query[C], error) {
	b := query.NewBuilder[C]().Search(params.Get("q"))

	if v := params.Get("page"); v != "" {
		page, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return query.Query[C]{}, fmt.Errorf("invalid page %q", v)
		}
		b = b.Page(uint32(page))
	}
	if v := params.Get("sort"); v != "" {
		s, err := query.ParseSort(v)
		if err != nil {
			return query.Query[C]{}, err
		}
		b = b.Sort(s)
	}
	if v := params.Get("order"); v != "" {
		o, err := query.ParseSortOrder(v)
		if err != nil {
			return query.Query[C]{}, err
		}
		b = b.SortOrder(o)
	}
	if v := params.Get("filter"); v != "" {
		f, err := query.ParseFilter(v)
		if err != nil {
			return query.Query[C]{}, err
		}
		b = b.Filter(f)
	}
	if v := params.Get("category"); v != "" {
		c, err := parseCategory(v)
		if err != nil {
			return query.Query[C]{}, err
		}
		b = b.Category(c)
	}
	return b.Build(), nil
}

func (i *Indexer) writeError(w http.ResponseWriter, r *http.Request, meta IndexerMeta, status int, err error) {
	i.metrics.IndexerErrors.WithLabelValues(meta.Label).Inc()
	if status >= http.StatusInternalServerError {
		logging.ErrorWithRequest(r).Err(err).Str("indexer", meta.Label).Msg("Indexer request failed")
	} else {
		logging.WarnWithRequest(r).Err(err).Str("indexer", meta.Label).Msg("Bad indexer request")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); err != nil {
		logging.ErrorWithRequest(r).Err(err).Msg("Failed to encode error response")
	}
}
