package rank

import (
	"net/url"
	"strings"

	"github.com/sells-group/legal-search/internal/model"
)

// Fixed indicator tables. All matching is lowercase substring containment.

var documentExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

// linkTypeExtensions is the narrower set used for link-type classification;
// plain text files classify as resources, not direct documents.
var linkTypeExtensions = []string{".pdf", ".doc", ".docx"}

var urlDocIndicators = []string{
	"download", "document", "file", "attachment", "forms",
	"templates", "samples", "examples", "contracts",
}

var titleDocIndicators = []string{
	"download", "pdf", "template", "form", "sample",
	"example", "document", "[pdf]", "(pdf)", ".pdf",
}

var legalSites = []string{
	"sec.gov", "courts.gov", "lawinsider.com", "contractstandards.com",
	"findlaw.com", "justia.com", "docracy.com", "lawdepot.com",
}

var templateKeywords = []string{"template", "form", "sample"}

var legalDatabaseSites = []string{"sec.gov", "lawinsider.com", "contractstandards.com"}

// sourceDescriptions maps known domains to their display labels.
var sourceDescriptions = map[string]string{
	"sec.gov":               "SEC Filing",
	"courts.gov":            "Court System",
	"lawinsider.com":        "Law Insider Database",
	"contractstandards.com": "Contract Standards",
	"findlaw.com":           "FindLaw Resource",
	"justia.com":            "Justia Legal Portal",
	"docracy.com":           "Docracy Templates",
	"lawdepot.com":          "LawDepot Forms",
}

// IsDirectDocumentLink reports whether the URL/title pair likely points at a
// downloadable document rather than a web page.
func IsDirectDocumentLink(rawURL, title string) bool {
	urlLower := strings.ToLower(rawURL)
	titleLower := strings.ToLower(title)

	if containsAny(urlLower, documentExtensions...) {
		return true
	}
	if containsAny(urlLower, urlDocIndicators...) {
		return true
	}
	if containsAny(titleLower, titleDocIndicators...) {
		return true
	}
	return containsAny(urlLower, legalSites...)
}

// LinkType classifies a result by ordered first-match-wins checks.
func LinkType(rawURL, title string) string {
	urlLower := strings.ToLower(rawURL)
	titleLower := strings.ToLower(title)

	switch {
	case containsAny(urlLower, linkTypeExtensions...):
		return model.LinkDirectDocument
	case containsAny(urlLower, templateKeywords...) || containsAny(titleLower, templateKeywords...):
		return model.LinkTemplateForm
	case containsAny(urlLower, legalDatabaseSites...):
		return model.LinkLegalDatabase
	case strings.Contains(urlLower, "courts.gov") || strings.Contains(titleLower, "court"):
		return model.LinkCourtDocument
	default:
		return model.LinkLegalResource
	}
}

// Domain extracts the URL's host with any leading "www." stripped. Unparsable
// or host-less URLs yield "Unknown"; classification never fails on bad input.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Unknown"
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// SourceInfo formats the display source as "<label> (<link type>)", falling
// back to the bare domain when it has no known label.
func SourceInfo(domain, linkType string) string {
	if label, ok := sourceDescriptions[domain]; ok {
		return label + " (" + linkType + ")"
	}
	return domain + " (" + linkType + ")"
}

// ClickableDescription renders the user-facing link line for a result.
func ClickableDescription(title, linkType string) string {
	switch linkType {
	case model.LinkDirectDocument:
		return "📄 Direct Download: " + title
	case model.LinkTemplateForm:
		return "📝 Template/Form: " + title
	case model.LinkLegalDatabase:
		return "🏛️ Legal Database Entry: " + title
	case model.LinkCourtDocument:
		return "⚖️ Court Document: " + title
	default:
		return "🔗 Legal Resource: " + title
	}
}

// containsAny checks if s contains any of the given substrings.
func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
