package extractor

import (
	"context"
	"fmt"
	"xurl/pkg/domain"
	"xurl/pkg/logger"
	"xurl/pkg/treescan"

	"go.uber.org/zap"
)

// treeExtractor is the Extractor backed by treescan.
type treeExtractor struct{}

// Extract walks root with treescan and merges the matches of every readable
// file into one set. File contents are not retained after matching.
func (treeExtractor) Extract(ctx context.Context, root string) (domain.URLSet, treescan.Stats, error) {
	urls := domain.NewURLSet()

	stats, err := treescan.Scan(ctx, root, func(f treescan.File) {
		found := Find(f.Text)
		if len(found) > 0 && logger.IsDebug(ctx) {
			logger.Debug(ctx, "urls found in file", zap.String("path", f.Path), zap.Int("count", len(found)))
		}
		urls.Add(found...)
	})
	if err != nil {
		return nil, stats, fmt.Errorf("could not scan tree: %w", err)
	}

	return urls, stats, nil
}

// Ensure treeExtractor conforms to the Extractor interface at compile time.
var _ Extractor = treeExtractor{}

// New returns an Extractor that reads files from the local filesystem.
func New() Extractor {
	return treeExtractor{}
}
