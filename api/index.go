package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/felipemarinho97/nyaa-indexer/category"
	"github.com/felipemarinho97/nyaa-indexer/consts"
	"github.com/felipemarinho97/nyaa-indexer/logging"
)

type IndexerMetaResponse struct {
	Label      string   `json:"label"`
	URL        string   `json:"url"`
	Path       string   `json:"path"`
	Categories []string `json:"categories"`
}

var queryParams = map[string]string{
	"q":              "search terms",
	"page":           "page number, starting at 1",
	"sort":           "comments, size, date, seeders, leechers or downloads",
	"order":          "asc or desc",
	"filter":         "0 (none), 1 (no-remakes) or 2 (trusted-only)",
	"category":       "category code (1_2) or name (anime-english-translated)",
	"filter_results": "drop results that share nothing with q",
	"new_only":       "only results not served before by this indexer",
}

// HandlerIndex describes the indexers, their site addresses and the accepted
// query parameters.
func (i *Indexer) HandlerIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"time":   time.Now().Format(time.RFC850),
		"build":  consts.GetBuildInfo(),
		"params": queryParams,
		"endpoints": []IndexerMetaResponse{
			{Label: i.nyaaMeta.Label, URL: i.nyaaMeta.URL, Path: "/indexers/nyaa", Categories: names(category.NyaaCategories())},
			{Label: i.sukebeiMeta.Label, URL: i.sukebeiMeta.URL, Path: "/indexers/sukebei", Categories: names(category.SukebeiCategories())},
		},
	})
	if err != nil {
		logging.ErrorWithRequest(r).Err(err).Msg("Failed to encode index")
	}
}

func names[C interface{ Name() string }](cs []C) []string {
	out := make([]string, len(cs))
	for n, c := range cs {
		out[n] = c.Name()
	}
	return out
}
