// Package pipeline orchestrates contract analysis and the similar-contract
// search: analyze, build both queries, search concurrently, merge, rank.
package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/legal-search/internal/analyzer"
	"github.com/sells-group/legal-search/internal/model"
	"github.com/sells-group/legal-search/internal/rank"
	"github.com/sells-group/legal-search/internal/search"
)

// Pipeline runs the contract analysis and similar-document search. It holds
// no mutable state; concurrent invocations are independent.
type Pipeline struct {
	gateway search.Gateway
}

// New creates a pipeline over the given search gateway.
func New(gateway search.Gateway) *Pipeline {
	return &Pipeline{gateway: gateway}
}

// AnalyzeAndSearch analyzes the contract text and finds similar documents.
// Analysis is pure and never fails for non-empty input; a primary-search
// failure is returned as the error for the transport layer to render, while a
// targeted-search failure degrades to primary-only results. Input validation
// (minimum length) is the caller's responsibility.
func (p *Pipeline) AnalyzeAndSearch(ctx context.Context, contractText string) (*model.Result, error) {
	zap.L().Info("pipeline: analyzing contract text", zap.Int("length", len(contractText)))

	analysis := analyzer.Analyze(contractText)
	zap.L().Info("pipeline: contract analysis complete",
		zap.String("contract_type", analysis.ContractType),
		zap.String("location", analysis.Location),
	)

	primaryQuery := search.PrimaryQuery(analysis)
	targetedQuery := search.TargetedQuery(analysis)
	zap.L().Debug("pipeline: search queries built",
		zap.String("primary", primaryQuery),
		zap.String("targeted", targetedQuery),
	)

	// The two searches have no data dependency; run them concurrently. Each
	// goroutine captures its own error so a failure in one cannot cancel the
	// other: the merge policy needs both outcomes.
	var (
		primaryResults, targetedResults []model.SearchResult
		primaryErr, targetedErr         error
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		primaryResults, primaryErr = p.gateway.Search(ctx, primaryQuery, search.PrimaryResultCount)
		return nil
	})
	g.Go(func() error {
		targetedResults, targetedErr = p.gateway.Search(ctx, targetedQuery, search.TargetedResultCount)
		return nil
	})
	_ = g.Wait()

	merged, err := search.Merge(targetedResults, primaryResults, targetedErr, primaryErr)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: similar contract search")
	}

	return &model.Result{
		Analysis:         analysis,
		SimilarContracts: rank.Rank(merged, analysis),
	}, nil
}

// Status reports the fixed liveness payload.
func (p *Pipeline) Status() model.Status {
	return model.OnlineStatus()
}
