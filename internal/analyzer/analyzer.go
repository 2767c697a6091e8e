// Package analyzer extracts structured contract metadata from free text using
// fixed regex and keyword tables. Every extractor is a pure function with a
// documented fallback; unparseable text degrades to sentinels, never errors.
package analyzer

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/legal-search/internal/model"
)

const (
	maxKeyTerms = 5
	maxParties  = 3
)

var titleCaser = cases.Title(language.AmericanEnglish)

// Analyze runs the full extractor set over the contract text and assembles
// the resulting ContractAnalysis.
func Analyze(contractText string) model.ContractAnalysis {
	contractType := ContractType(contractText)

	analysis := model.ContractAnalysis{
		Location:      Location(contractText),
		ContractType:  contractType,
		KeyTerms:      KeyTerms(contractText),
		Parties:       Parties(contractText),
		SubjectMatter: SubjectMatter(contractType),
		Jurisdiction:  Jurisdiction(contractText),
	}

	zap.L().Debug("analyzer: analysis complete",
		zap.String("contract_type", analysis.ContractType),
		zap.String("location", analysis.Location),
		zap.Int("key_terms", len(analysis.KeyTerms)),
	)

	return analysis
}

// Location returns the first location phrase matched by the location pattern
// table, or the "Location not specified" sentinel.
func Location(text string) string {
	for _, p := range locationPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return model.LocationNotSpecified
}

// ContractType scores each category by the number of its keywords present in
// the lowercased text and returns the category with the strictly highest
// count. Ties resolve to the earliest category in table order; zero hits
// across all categories returns the general fallback.
func ContractType(text string) string {
	lower := strings.ToLower(text)

	best := model.TypeGeneral
	bestScore := 0
	for _, entry := range contractTypeKeywords {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.Type
			bestScore = score
		}
	}

	return best
}

// KeyTerms collects labeled-field clauses (term, payment, effective date,
// termination date) across all key-term patterns, keeping at most five.
func KeyTerms(text string) []string {
	var terms []string
	for _, p := range keyTermPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			terms = append(terms, strings.TrimSpace(m[1]))
		}
	}

	if len(terms) == 0 {
		return []string{model.StandardTerms}
	}
	if len(terms) > maxKeyTerms {
		terms = terms[:maxKeyTerms]
	}
	return terms
}

// Parties extracts entity names from party-definition clauses. Candidates
// shorter than 3 or longer than 99 characters are dropped; at most three
// survive.
func Parties(text string) []string {
	var parties []string
	for _, p := range partyPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			for _, group := range m[1:] {
				if group != "" {
					parties = append(parties, strings.TrimSpace(group))
				}
			}
		}
	}

	var cleaned []string
	for _, p := range parties {
		if len(p) > 2 && len(p) < 100 {
			cleaned = append(cleaned, p)
		}
	}

	if len(cleaned) == 0 {
		return []string{model.PartiesNotSpecified}
	}
	if len(cleaned) > maxParties {
		cleaned = cleaned[:maxParties]
	}
	return cleaned
}

// SubjectMatter derives a human-readable subject line from the contract type.
func SubjectMatter(contractType string) string {
	if s, ok := subjectMatterByType[contractType]; ok {
		return s
	}
	return titleCaser.String(strings.ReplaceAll(contractType, "_", " ")) + " agreement"
}

// Jurisdiction returns the first governing-law phrase matched, or the empty
// string when nothing matches. Unlike Location there is no sentinel; absence
// is meaningful and serializes as an omitted field.
func Jurisdiction(text string) string {
	for _, p := range jurisdictionPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
