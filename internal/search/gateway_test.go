package search

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/legal-search/pkg/serp"
)

type fakeSerpClient struct {
	resp *serp.SearchResponse
	err  error
	num  int
}

func (f *fakeSerpClient) Search(ctx context.Context, query string, opts ...serp.SearchOption) (*serp.SearchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestSerpGateway(t *testing.T) {
	t.Run("maps_organic_results", func(t *testing.T) {
		client := &fakeSerpClient{resp: &serp.SearchResponse{
			OrganicResults: []serp.OrganicResult{
				{Title: "Employment Agreement", Link: "https://sec.gov/x.pdf", Snippet: "a contract"},
			},
		}}

		results, err := NewSerpGateway(client).Search(context.Background(), "q", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Employment Agreement", results[0].Title)
		assert.Equal(t, "https://sec.gov/x.pdf", results[0].URL)
		assert.Equal(t, "a contract", results[0].Snippet)
	})

	t.Run("wraps_client_error", func(t *testing.T) {
		client := &fakeSerpClient{err: eris.New("quota exceeded")}

		results, err := NewSerpGateway(client).Search(context.Background(), "q", 10)
		require.Error(t, err)
		assert.Nil(t, results)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("empty_results_not_an_error", func(t *testing.T) {
		client := &fakeSerpClient{resp: &serp.SearchResponse{}}

		results, err := NewSerpGateway(client).Search(context.Background(), "q", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
