package domain

import "sort"

// URLSet is a set of distinct URL strings. Uniqueness is exact string
// equality: no normalisation is applied, so "https://a/" and "https://a" are
// different members.
type URLSet map[string]struct{}

// NewURLSet returns a set holding the given URLs.
func NewURLSet(urls ...string) URLSet {
	s := make(URLSet, len(urls))
	s.Add(urls...)

	return s
}

// Add inserts the given URLs, ignoring ones already present.
func (s URLSet) Add(urls ...string) {
	for _, u := range urls {
		s[u] = struct{}{}
	}
}

// Has reports whether u is a member of the set.
func (s URLSet) Has(u string) bool {
	_, ok := s[u]

	return ok
}

// Len returns the number of members.
func (s URLSet) Len() int { return len(s) }

// Sorted returns the members in ascending byte order, which for UTF-8 text is
// also ascending code point order.
func (s URLSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for u := range s {
		out = append(out, u)
	}
	sort.Strings(out)

	return out
}
