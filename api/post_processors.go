package handler

import (
	"math"
	"net/http"
	"slices"
	"strings"

	"github.com/felipemarinho97/nyaa-indexer/logging"
	"github.com/felipemarinho97/nyaa-indexer/magnet"
	"github.com/felipemarinho97/nyaa-indexer/schema"
	"github.com/felipemarinho97/nyaa-indexer/utils"
	"github.com/hbollon/go-edlib"
)

var titleSeparators = strings.NewReplacer(".", " ", "_", " ")

// EnrichMagnet fills the info hash and trackers from each magnet link.
func EnrichMagnet(_ *Indexer, r *http.Request, _ IndexerMeta, torrents []schema.IndexedTorrent) []schema.IndexedTorrent {
	for i, it := range torrents {
		m, err := magnet.ParseMagnetUri(it.MagnetURL)
		if err != nil {
			logging.DebugWithRequest(r).Err(err).Str("link", it.Link).Msg("Skipping magnet enrichment")
			continue
		}
		torrents[i].InfoHash = m.InfoHash.String()
		if m.Trackers != nil {
			torrents[i].Trackers = m.Trackers
		}
	}
	return torrents
}

// AddSimilarityCheck scores every title against q. With filter_results set,
// titles sharing nothing with q are dropped.
func AddSimilarityCheck(_ *Indexer, r *http.Request, _ IndexerMeta, torrents []schema.IndexedTorrent) []schema.IndexedTorrent {
	q := strings.ToLower(r.URL.Query().Get("q"))
	if q == "" {
		return torrents
	}

	for i, it := range torrents {
		title := titleSeparators.Replace(strings.ToLower(it.Title))
		splitLength := 2
		s := edlib.JaccardSimilarity(title, q, splitLength)
		if math.IsNaN(float64(s)) {
			s = 0
		}
		torrents[i].Similarity = s
	}

	// remove the ones with zero similarity
	if r.URL.Query().Get("filter_results") != "" {
		torrents = utils.Filter(torrents, func(it schema.IndexedTorrent) bool {
			return it.Similarity > 0
		})
	}

	// sort by similarity, keeping the site order for ties
	slices.SortStableFunc(torrents, func(a, b schema.IndexedTorrent) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		default:
			return 0
		}
	})

	return torrents
}

// FilterSeen keeps only the torrents never served before by this indexer when
// new_only is set. If the store fails the torrents are returned unfiltered.
func FilterSeen(i *Indexer, r *http.Request, meta IndexerMeta, torrents []schema.IndexedTorrent) []schema.IndexedTorrent {
	if i.store == nil || r.URL.Query().Get("new_only") == "" {
		return torrents
	}

	plain := make([]schema.Torrent, len(torrents))
	for n, it := range torrents {
		plain[n] = it.Torrent
	}
	fresh, err := i.store.Unseen(r.Context(), meta.Label, schema.Uniq(plain))
	if err != nil {
		logging.ErrorWithRequest(r).Err(err).Str("indexer", meta.Label).Msg("Failed to filter seen torrents")
		return torrents
	}

	freshLinks := make(map[string]struct{}, len(fresh))
	for _, t := range fresh {
		freshLinks[t.Link] = struct{}{}
	}
	// a link repeated in the page is only fresh the first time
	res := utils.Filter(torrents, func(it schema.IndexedTorrent) bool {
		if _, ok := freshLinks[it.Link]; ok {
			delete(freshLinks, it.Link)
			return true
		}
		return false
	})

	i.metrics.SeenMisses.WithLabelValues(meta.Label).Add(float64(len(res)))
	i.metrics.SeenHits.WithLabelValues(meta.Label).Add(float64(len(torrents) - len(res)))
	return res
}
