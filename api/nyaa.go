package handler

import (
	"net/http"

	"github.com/felipemarinho97/nyaa-indexer/category"
)

func (i *Indexer) HandlerNyaaIndexer(w http.ResponseWriter, r *http.Request) {
	serveListing(i, w, r, i.nyaaMeta, i.nyaa, category.ParseNyaa)
}

func (i *Indexer) HandlerSukebeiIndexer(w http.ResponseWriter, r *http.Request) {
	serveListing(i, w, r, i.sukebeiMeta, i.sukebei, category.ParseSukebei)
}
