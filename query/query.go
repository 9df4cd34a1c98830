// Package query models a listing search and renders it as a URL query string.
package query

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/felipemarinho97/nyaa-indexer/category"
)

type Sort uint8

const (
	SortComments Sort = iota
	SortSize
	SortDate
	SortSeeders
	SortLeechers
	SortDownloads
)

func (s Sort) String() string {
	switch s {
	case SortComments:
		return "comments"
	case SortSize:
		return "size"
	case SortDate:
		return "date"
	case SortSeeders:
		return "seeders"
	case SortLeechers:
		return "leechers"
	case SortDownloads:
		return "downloads"
	default:
		return fmt.Sprintf("Sort(%d)", uint8(s))
	}
}

func ParseSort(s string) (Sort, error) {
	switch s {
	case "comments":
		return SortComments, nil
	case "size":
		return SortSize, nil
	case "date":
		return SortDate, nil
	case "seeders":
		return SortSeeders, nil
	case "leechers":
		return SortLeechers, nil
	case "downloads":
		return SortDownloads, nil
	default:
		return SortSeeders, fmt.Errorf("invalid sort %q", s)
	}
}

type SortOrder uint8

const (
	Ascending SortOrder = iota
	Descending
)

func (o SortOrder) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("SortOrder(%d)", uint8(o))
	}
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return Descending, fmt.Errorf("invalid sort order %q", s)
	}
}

// Filter values are sent as their numeric code.
type Filter uint8

const (
	NoFilter Filter = iota
	NoRemakes
	TrustedOnly
)

func (f Filter) String() string {
	return strconv.Itoa(int(f))
}

// ParseFilter accepts the numeric code ("0".."2") or the names
// "none", "no-remakes" and "trusted-only".
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "0", "none":
		return NoFilter, nil
	case "1", "no-remakes":
		return NoRemakes, nil
	case "2", "trusted-only":
		return TrustedOnly, nil
	default:
		return NoFilter, fmt.Errorf("invalid filter %q", s)
	}
}

// Query is an immutable listing search. Use a Builder to create one.
type Query[C category.Category] struct {
	search   string
	page     uint32
	sort     Sort
	order    SortOrder
	filter   Filter
	category C
}

// New returns the default query: every listing of the taxonomy, first page,
// most seeded first.
func New[C category.Category]() Query[C] {
	return NewBuilder[C]().Build()
}

func (q Query[C]) Search() string { return q.search }
func (q Query[C]) Page() uint32 { return q.page }
func (q Query[C]) Sort() Sort { return q.sort }
func (q Query[C]) SortOrder() SortOrder { return q.order }
func (q Query[C]) Filter() Filter { return q.filter }
func (q Query[C]) Category() C { return q.category }

// Render returns "q=<search>&p=<page>&s=<sort>&o=<order>&f=<filter>&c=<category>".
// The search term is not escaped.
func (q Query[C]) Render() string {
	return q.render(q.search)
}

// Encode is Render with the search term escaped for use in a URL.
func (q Query[C]) Encode() string {
	return q.render(url.QueryEscape(q.search))
}

func (q Query[C]) String() string {
	return q.Render()
}

func (q Query[C]) render(search string) string {
	return fmt.Sprintf("q=%s&p=%d&s=%s&o=%s&f=%s&c=%s",
		search, q.page, q.sort, q.order, q.filter, q.category)
}

// Builder accumulates query fields. Every setter returns a modified copy, so
// a Builder can be shared and extended without affecting other chains.
type Builder[C category.Category] struct {
	q Query[C]
}

func NewBuilder[C category.Category]() Builder[C] {
	return Builder[C]{q: Query[C]{
		page:     1,
		sort:     SortSeeders,
		order:    Descending,
		filter:   NoFilter,
		category: category.Default[C](),
	}}
}

func (b Builder[C]) Search(search string) Builder[C] {
	b.q.search = search
	return b
}

func (b Builder[C]) Page(page uint32) Builder[C] {
	b.q.page = page
	return b
}

func (b Builder[C]) Sort(sort Sort) Builder[C] {
	b.q.sort = sort
	return b
}

func (b Builder[C]) SortOrder(order SortOrder) Builder[C] {
	b.q.order = order
	return b
}

func (b Builder[C]) Filter(filter Filter) Builder[C] {
	b.q.filter = filter
	return b
}

func (b Builder[C]) Category(c C) Builder[C] {
	b.q.category = c
	return b
}

func (b Builder[C]) Build() Query[C] {
	return b.q
}
