// Package rank classifies merged search results and orders them for
// presentation: direct documents first, then web pages, capped and annotated
// with a deterministic relevance tier.
package rank

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/legal-search/internal/model"
)

// maxResults caps how many classified results are returned.
const maxResults = 12

// Relevance tier thresholds on the fixed point rubric.
const (
	highThreshold   = 4
	mediumThreshold = 2
)

// Rank prioritizes, caps, classifies, and formats the merged results. Output
// order is the final rank.
func Rank(results []model.SearchResult, analysis model.ContractAnalysis) []model.SimilarContract {
	if len(results) == 0 {
		zap.L().Warn("rank: no legal documents found in search results")
		return []model.SimilarContract{}
	}

	prioritized := Prioritize(results)
	if len(prioritized) > maxResults {
		prioritized = prioritized[:maxResults]
	}

	docs := make([]model.SimilarContract, 0, len(prioritized))
	for _, r := range prioritized {
		title := r.Title
		if title == "" {
			title = "Untitled Document"
		}
		snippet := r.Snippet
		if snippet == "" {
			snippet = "No description available"
		}

		linkType := LinkType(r.URL, title)
		domain := Domain(r.URL)

		docs = append(docs, model.SimilarContract{
			Title:                title,
			URL:                  r.URL,
			Snippet:              snippet,
			ContractType:         analysis.ContractType,
			Location:             analysis.Location,
			RelevanceScore:       Relevance(title, snippet, analysis),
			Source:               SourceInfo(domain, linkType),
			LinkType:             linkType,
			Domain:               domain,
			ClickableDescription: ClickableDescription(title, linkType),
		})
	}

	zap.L().Debug("rank: formatted legal documents", zap.Int("count", len(docs)))
	return docs
}

// Prioritize partitions results into likely direct documents and plain web
// pages, keeping relative order within each group, documents first.
func Prioritize(results []model.SearchResult) []model.SearchResult {
	var directDocs, webPages []model.SearchResult
	for _, r := range results {
		if IsDirectDocumentLink(r.URL, r.Title) {
			directDocs = append(directDocs, r)
		} else {
			webPages = append(webPages, r)
		}
	}
	return append(directDocs, webPages...)
}

// Relevance computes the result's tier from the fixed rubric: +3 for a
// contract type match, +2 for a location match, +1 per key term found in the
// title+snippet text. The location check runs even against the sentinel; the
// sentinel text never occurs in real snippets, so it scores as a no-op.
func Relevance(title, snippet string, analysis model.ContractAnalysis) string {
	text := strings.ToLower(title + " " + snippet)

	score := 0
	if strings.Contains(text, strings.ToLower(analysis.ContractType)) {
		score += 3
	}
	if strings.Contains(text, strings.ToLower(analysis.Location)) {
		score += 2
	}
	for _, term := range analysis.KeyTerms {
		if strings.Contains(text, strings.ToLower(term)) {
			score++
		}
	}

	switch {
	case score >= highThreshold:
		return model.RelevanceHigh
	case score >= mediumThreshold:
		return model.RelevanceMedium
	default:
		return model.RelevanceLow
	}
}
