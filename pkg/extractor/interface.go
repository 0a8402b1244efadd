// Package extractor pulls http(s) URLs out of text and out of whole file
// trees, merging them into a deduplicated domain.URLSet.
package extractor

import (
	"context"
	"xurl/pkg/domain"
	"xurl/pkg/treescan"
)

// Extractor collects the distinct URLs found under a filesystem root.
//
//go:generate mockgen -package mockextractor -source=interface.go -destination=mock/mockextractor.go *
type Extractor interface {
	// Extract scans root (a directory or a single file) and returns every
	// distinct URL found, along with statistics about the files visited.
	Extract(ctx context.Context, root string) (domain.URLSet, treescan.Stats, error)
}
