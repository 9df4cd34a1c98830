package schema

// IndexedTorrent is a listing row as served by the indexer API.
type IndexedTorrent struct {
	Torrent
	InfoHash   string   `json:"info_hash"`
	Trackers   []string `json:"trackers"`
	Similarity float32  `json:"similarity"`
}

func NewIndexedTorrents(torrents []Torrent) []IndexedTorrent {
	out := make([]IndexedTorrent, len(torrents))
	for i, t := range torrents {
		out[i] = IndexedTorrent{Torrent: t, Trackers: []string{}}
	}
	return out
}
