package filter_test

import (
	"strings"
	"testing"
	"xurl/pkg/domain"
	"xurl/pkg/filter"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	all := domain.NewURLSet(
		"https://api.example.com/v1/data",
		"http://cdn.test.org/x.js",
		"https://github.com/org/repo",
		"https://project.FIREBASEIO.com/",
	)

	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{
			name:  "nil terms is identity",
			terms: nil,
			want:  all.Sorted(),
		},
		{
			name:  "empty terms is identity",
			terms: []string{},
			want:  all.Sorted(),
		},
		{
			name:  "single term",
			terms: []string{"cdn"},
			want:  []string{"http://cdn.test.org/x.js"},
		},
		{
			name:  "terms are ORed",
			terms: []string{"github", "cdn"},
			want:  []string{"http://cdn.test.org/x.js", "https://github.com/org/repo"},
		},
		{
			name:  "case insensitive on both sides",
			terms: []string{"FirebaseIO"},
			want:  []string{"https://project.FIREBASEIO.com/"},
		},
		{
			name:  "term matches anywhere including scheme",
			terms: []string{"HTTP://"},
			want:  []string{"http://cdn.test.org/x.js"},
		},
		{
			name:  "nothing matches",
			terms: []string{"gitlab", "amazonaws"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, filter.Apply(all, tt.terms).Sorted())
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	all := domain.NewURLSet("https://a.example", "https://b.example")

	_ = filter.Apply(all, []string{"a."})

	require.Equal(t, 2, all.Len())
}

// Every URL is kept iff the term list is empty or some term is a
// case-insensitive substring of it.
func TestApply_RetentionRule(t *testing.T) {
	urls := []string{
		"https://s3.amazonaws.com/bucket",
		"https://gitlab.com/x",
		"http://GITEA.local/y",
		"https://example.org",
	}
	termLists := [][]string{nil, {"git"}, {"AMAZON", "org"}, {"zzz"}, {""}}

	for _, terms := range termLists {
		got := filter.Apply(domain.NewURLSet(urls...), terms)
		for _, u := range urls {
			keep := len(terms) == 0
			for _, term := range terms {
				if strings.Contains(strings.ToLower(u), strings.ToLower(term)) {
					keep = true
				}
			}
			require.Equal(t, keep, got.Has(u), "url %q terms %q", u, terms)
		}
	}
}
