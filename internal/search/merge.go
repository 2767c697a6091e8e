package search

import (
	"go.uber.org/zap"

	"github.com/sells-group/legal-search/internal/model"
)

// Merge combines the targeted and primary result sets, de-duplicating by URL.
// Targeted results are kept first: they come from the more specific query, so
// on a URL collision the targeted set's version survives and ranks earlier
// downstream.
//
// Error policy: a primary failure propagates; a targeted failure alone falls
// back silently to the primary set.
func Merge(targeted, primary []model.SearchResult, targetedErr, primaryErr error) ([]model.SearchResult, error) {
	if primaryErr != nil {
		return nil, primaryErr
	}
	if targetedErr != nil {
		zap.L().Warn("search: targeted query failed, using primary results only",
			zap.Error(targetedErr),
		)
		return primary, nil
	}

	seen := make(map[string]struct{}, len(targeted)+len(primary))
	merged := make([]model.SearchResult, 0, len(targeted)+len(primary))

	for _, set := range [][]model.SearchResult{targeted, primary} {
		for _, r := range set {
			if _, ok := seen[r.URL]; ok {
				continue
			}
			seen[r.URL] = struct{}{}
			merged = append(merged, r)
		}
	}

	return merged, nil
}
