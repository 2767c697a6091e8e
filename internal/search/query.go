// Package search builds retrieval queries from a contract analysis, runs them
// against the external search gateway, and merges the result sets.
package search

import (
	"strings"

	"github.com/sells-group/legal-search/internal/model"
)

// Result counts requested per retrieval strategy.
const (
	PrimaryResultCount  = 15
	TargetedResultCount = 10
)

// Fixed scoping blocks appended to every query of the respective strategy.
const (
	primarySiteScope  = "site:sec.gov OR site:courts.gov OR site:justia.com OR site:findlaw.com OR site:lawinsider.com OR site:contractstandards.com"
	targetedSiteScope = "site:lawinsider.com OR site:contractstandards.com OR site:sec.gov OR site:docracy.com"
)

// PrimaryQuery builds the broad contract-type query: quoted type phrase with a
// document format filter, the location and up to two substantial key terms
// when available, plus legal boilerplate and site scoping.
func PrimaryQuery(a model.ContractAnalysis) string {
	parts := []string{
		quote(a.ContractType+" contract") + " filetype:pdf OR filetype:doc OR filetype:docx",
	}

	if a.Location != "" && a.Location != model.LocationNotSpecified {
		parts = append(parts, quote(a.Location))
	}

	if !isFallbackTerms(a.KeyTerms) {
		added := 0
		for _, term := range a.KeyTerms {
			if added == 2 {
				break
			}
			// Very short terms add noise without narrowing the search.
			if len(term) > 3 {
				parts = append(parts, quote(term))
				added++
			}
		}
	}

	parts = append(parts,
		"agreement template",
		"legal document sample",
		"contract form",
		primarySiteScope,
	)

	return strings.Join(parts, " ")
}

// TargetedQuery builds the direct-document query aimed at template
// repositories.
func TargetedQuery(a model.ContractAnalysis) string {
	parts := []string{
		quote(a.ContractType + " contract template"),
		"filetype:pdf OR filetype:doc",
		targetedSiteScope,
	}

	if a.Location != "" && a.Location != model.LocationNotSpecified {
		parts = append(parts, quote(a.Location))
	}

	return strings.Join(parts, " ")
}

func quote(s string) string {
	return `"` + s + `"`
}

func isFallbackTerms(terms []string) bool {
	return len(terms) == 1 && terms[0] == model.StandardTerms
}
