package analyzer

import "regexp"

// Pattern tables are compiled once at init and never mutated. Each extractor
// tries its patterns in declaration order; the first match wins.

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:State of|Province of|in the (?:city|state|province) of)\s+([A-Z][a-zA-Z\s]+)`),
	regexp.MustCompile(`(?i)(?:located in|situated in|based in)\s+([A-Z][a-zA-Z\s]+)`),
	// City, ST abbreviation form.
	regexp.MustCompile(`(?i)([A-Z][a-z]+,\s*[A-Z]{2})`),
	// Generic "A, B" country form.
	regexp.MustCompile(`(?i)([A-Z][a-zA-Z\s]+,\s*[A-Z][a-zA-Z\s]+)`),
}

var keyTermPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:term|duration|period)(?:\s+of)?\s*:\s*([^.]+)`),
	regexp.MustCompile(`(?i)(?:payment|fee|amount)(?:\s+of)?\s*:\s*([^.]+)`),
	regexp.MustCompile(`(?i)(?:effective|start|begin)(?:\s+date)?\s*:\s*([^.]+)`),
	regexp.MustCompile(`(?i)(?:termination|end|expir)(?:\s+date)?\s*:\s*([^.]+)`),
}

var partyPatterns = []*regexp.Regexp{
	// Two capture groups; both sides of the "between X and Y" clause are kept.
	regexp.MustCompile(`(?i)(?:between|by and between)\s+([^,]+),?\s+(?:and|&)\s+([^,]+)`),
	regexp.MustCompile(`(?i)(?:party|parties)(?:\s+named)?\s*:\s*([^.]+)`),
	regexp.MustCompile(`(?i)(?:contractor|client|company|corporation|individual)(?:\s+named)?\s*:\s*([^.]+)`),
}

var jurisdictionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:governed by|under the laws of|jurisdiction of)\s+([^.]+)`),
	regexp.MustCompile(`(?i)(?:courts of|in the courts of)\s+([^.]+)`),
	regexp.MustCompile(`(?i)(?:laws of the (?:State|Province) of)\s+([^.]+)`),
}

// contractTypeKeywords maps each category to its indicator keywords. Order is
// significant: ties in keyword hit counts resolve to the earliest entry, so the
// table is a slice rather than a map (Go map iteration order is randomized).
var contractTypeKeywords = []struct {
	Type     string
	Keywords []string
}{
	{"employment", []string{"employment", "employee", "employer", "job", "salary", "wages", "position"}},
	{"lease", []string{"lease", "rent", "tenant", "landlord", "premises", "property"}},
	{"purchase", []string{"purchase", "buy", "sell", "sale", "buyer", "seller", "goods"}},
	{"service", []string{"service", "services", "provider", "client", "work", "perform"}},
	{"partnership", []string{"partnership", "partner", "joint venture", "collaborate"}},
	{"nda", []string{"confidential", "non-disclosure", "proprietary", "trade secret"}},
	{"license", []string{"license", "licensing", "intellectual property", "copyright", "patent"}},
}

// subjectMatterByType holds the fixed derivations for the contract types with
// bespoke phrasing; unmapped types get a generic title-cased fallback.
var subjectMatterByType = map[string]string{
	"employment": "Employment agreement - employment contract",
	"lease":      "Property lease agreement - lease contract",
	"purchase":   "Purchase/sale agreement - purchase contract",
}
