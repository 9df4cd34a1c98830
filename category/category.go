// Package category holds the closed category taxonomies of the nyaa sites.
package category

import (
	"fmt"
	"strings"
)

// Category is a site taxonomy. String returns the wire code ("1_4") and the
// zero value of every taxonomy is its "All" member ("0_0").
type Category interface {
	comparable
	fmt.Stringer
}

// Default returns the "All" member of the taxonomy C.
func Default[C Category]() C {
	var c C
	return c
}

// Parse finds the member of a taxonomy whose wire code or name matches s.
// Names are matched case-insensitively.
func Parse[C Category](s string, members []C, name func(C) string) (C, error) {
	s = strings.TrimSpace(s)
	for _, c := range members {
		if c.String() == s || strings.EqualFold(name(c), s) {
			return c, nil
		}
	}
	var zero C
	return zero, fmt.Errorf("unknown category %q", s)
}
