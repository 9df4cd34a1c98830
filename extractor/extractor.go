// Package extractor turns a nyaa listing page into torrents.
package extractor

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/felipemarinho97/nyaa-indexer/schema"
)

// Instants outside [minTimestamp, maxTimestamp] (years 1 to 9999) fall back
// to the Unix epoch.
const (
	minTimestamp int64 = -62135596800
	maxTimestamp int64 = 253402300799
)

// Extractor holds the compiled row selectors. It is safe for concurrent use.
type Extractor struct {
	rows      cascadia.Selector
	title     cascadia.Selector
	links     cascadia.Selector
	size      cascadia.Selector
	date      cascadia.Selector
	seeders   cascadia.Selector
	leechers  cascadia.Selector
	downloads cascadia.Selector
}

func New() *Extractor {
	return &Extractor{
		rows:      cascadia.MustCompile("table > tbody > tr"),
		title:     cascadia.MustCompile("td:nth-of-type(2) > a"),
		links:     cascadia.MustCompile("td:nth-of-type(3) > a"),
		size:      cascadia.MustCompile("td:nth-of-type(4)"),
		date:      cascadia.MustCompile("td:nth-of-type(5)"),
		seeders:   cascadia.MustCompile("td:nth-of-type(6)"),
		leechers:  cascadia.MustCompile("td:nth-of-type(7)"),
		downloads: cascadia.MustCompile("td:nth-of-type(8)"),
	}
}

// Extract parses a listing document. Relative detail links are prefixed with
// baseURL. The first row that cannot be extracted aborts the whole call, so
// callers get every row or an error.
func (e *Extractor) Extract(document, baseURL string) ([]schema.Torrent, error) {
	return e.ExtractReader(strings.NewReader(document), baseURL)
}

func (e *Extractor) ExtractReader(r io.Reader, baseURL string) ([]schema.Torrent, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	rows := doc.FindMatcher(e.rows)
	torrents := make([]schema.Torrent, 0, rows.Length())
	for i := 0; i < rows.Length(); i++ {
		t, err := e.extractRow(rows.Eq(i), i+1, baseURL)
		if err != nil {
			return nil, err
		}
		torrents = append(torrents, t)
	}
	return torrents, nil
}

func (e *Extractor) extractRow(row *goquery.Selection, n int, baseURL string) (schema.Torrent, error) {
	var t schema.Torrent

	title := row.FindMatcher(e.title).Last()
	if title.Length() == 0 {
		return t, &SelectorError{Row: n, Field: "title"}
	}
	t.Title = title.Text()

	links := row.FindMatcher(e.links)
	href, ok := links.First().Attr("href")
	if !ok {
		return t, &SelectorError{Row: n, Field: "link"}
	}
	t.Link = baseURL + href

	magnet, ok := links.Last().Attr("href")
	if !ok {
		return t, &SelectorError{Row: n, Field: "magnet"}
	}
	t.MagnetURL = magnet

	sizeCell := row.FindMatcher(e.size).First()
	if sizeCell.Length() == 0 {
		return t, &SelectorError{Row: n, Field: "size"}
	}
	size, err := schema.ParseSize(strings.TrimSpace(sizeCell.Text()))
	if err != nil {
		return t, fmt.Errorf("row %d: %w", n, err)
	}
	t.Size = size

	date, err := e.extractDate(row, n)
	if err != nil {
		return t, err
	}
	t.Date = date

	if t.Seeders, err = e.extractCount(row, e.seeders, n, "seeders"); err != nil {
		return t, err
	}
	if t.Leechers, err = e.extractCount(row, e.leechers, n, "leechers"); err != nil {
		return t, err
	}
	if t.Downloads, err = e.extractCount(row, e.downloads, n, "downloads"); err != nil {
		return t, err
	}

	return t, nil
}

func (e *Extractor) extractDate(row *goquery.Selection, n int) (time.Time, error) {
	raw, ok := row.FindMatcher(e.date).First().Attr("data-timestamp")
	if !ok {
		return time.Time{}, &SelectorError{Row: n, Field: "date"}
	}

	ts, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return time.Unix(0, 0).UTC(), nil
		}
		return time.Time{}, &IntegerParsingError{Row: n, Field: "date", Text: raw, Err: err}
	}
	if ts < minTimestamp || ts > maxTimestamp {
		return time.Unix(0, 0).UTC(), nil
	}
	return time.UnixMilli(ts * 1000).UTC(), nil
}

func (e *Extractor) extractCount(row *goquery.Selection, sel cascadia.Selector, n int, field string) (uint32, error) {
	cell := row.FindMatcher(sel).First()
	if cell.Length() == 0 {
		return 0, &SelectorError{Row: n, Field: field}
	}

	text := strings.TrimSpace(cell.Text())
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, &IntegerParsingError{Row: n, Field: field, Text: text, Err: err}
	}
	return uint32(v), nil
}
