package schema

import "time"

// Torrent is one row of a listing page.
type Torrent struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	MagnetURL string    `json:"magnet_url"`
	Date      time.Time `json:"date"`
	Seeders   uint32    `json:"seeders"`
	Leechers  uint32    `json:"leechers"`
	Downloads uint32    `json:"downloads"`
	Size      Size      `json:"size"`
}

// Equal reports whether both torrents point to the same detail link. The
// other fields are ignored.
func (t Torrent) Equal(o Torrent) bool {
	return t.Link == o.Link
}

// Uniq drops every torrent whose link already appeared earlier in the slice.
func Uniq(torrents []Torrent) []Torrent {
	seen := make(map[string]struct{}, len(torrents))
	res := make([]Torrent, 0, len(torrents))
	for _, t := range torrents {
		if _, ok := seen[t.Link]; ok {
			continue
		}
		seen[t.Link] = struct{}{}
		res = append(res, t)
	}
	return res
}
