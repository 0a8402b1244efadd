// Package filter narrows a URL set down to entries mentioning any of a list of
// keywords.
package filter

import (
	"strings"
	"xurl/pkg/domain"
)

// Apply returns the URLs containing at least one of terms as a case-insensitive
// substring. With no terms the input set is returned unchanged. Otherwise a new
// set is built and urls is left untouched.
func Apply(urls domain.URLSet, terms []string) domain.URLSet {
	if len(terms) == 0 {
		return urls
	}

	lowered := make([]string, len(terms))
	for i, term := range terms {
		lowered[i] = strings.ToLower(term)
	}

	out := domain.NewURLSet()
	for u := range urls {
		if Matches(u, lowered) {
			out.Add(u)
		}
	}

	return out
}

// Matches reports whether u contains any of the already lower-cased terms.
func Matches(u string, loweredTerms []string) bool {
	lu := strings.ToLower(u)
	for _, term := range loweredTerms {
		if strings.Contains(lu, term) {
			return true
		}
	}

	return false
}
