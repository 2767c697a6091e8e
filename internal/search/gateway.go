package search

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/legal-search/internal/model"
	"github.com/sells-group/legal-search/pkg/serp"
)

// Gateway is the external search capability: given a query and a result
// count, return an ordered list of raw results or a typed error. Calls may
// block on network I/O, so callers dispatch them off the synchronous path and
// bound latency through the context.
type Gateway interface {
	Search(ctx context.Context, query string, num int) ([]model.SearchResult, error)
}

// SerpGateway adapts the SerpAPI client to the Gateway interface.
type SerpGateway struct {
	client serp.Client
}

// NewSerpGateway creates a gateway backed by the given SerpAPI client.
func NewSerpGateway(client serp.Client) *SerpGateway {
	return &SerpGateway{client: client}
}

func (g *SerpGateway) Search(ctx context.Context, query string, num int) ([]model.SearchResult, error) {
	resp, err := g.client.Search(ctx, query, serp.WithNum(num))
	if err != nil {
		return nil, eris.Wrap(err, "search: gateway query")
	}

	results := make([]model.SearchResult, 0, len(resp.OrganicResults))
	for _, r := range resp.OrganicResults {
		results = append(results, model.SearchResult{
			Title:   r.Title,
			URL:     r.Link,
			Snippet: r.Snippet,
		})
	}
	return results, nil
}
