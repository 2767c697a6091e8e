package model

// Contract type tags assigned by the analyzer. Anything that matches none of
// the keyword tables falls back to TypeGeneral.
const (
	TypeEmployment  = "employment"
	TypeLease       = "lease"
	TypePurchase    = "purchase"
	TypeService     = "service"
	TypePartnership = "partnership"
	TypeNDA         = "nda"
	TypeLicense     = "license"
	TypeGeneral     = "general contract"
)

// Sentinel values substituted when an extractor finds no match. Extraction
// misses are never errors; the pipeline degrades to these placeholders.
const (
	LocationNotSpecified = "Location not specified"
	PartiesNotSpecified  = "Parties not specified"
	StandardTerms        = "Standard contract terms"
)

// ContractAnalysis is the structured record extracted from raw contract text.
// All fields are fully computed before the record is returned; it is never
// mutated afterwards. Jurisdiction is the only field that may be absent.
type ContractAnalysis struct {
	Location      string   `json:"location"`
	ContractType  string   `json:"contract_type"`
	KeyTerms      []string `json:"key_terms"`
	Parties       []string `json:"parties"`
	SubjectMatter string   `json:"subject_matter"`
	Jurisdiction  string   `json:"jurisdiction,omitempty"`
}

// SearchResult is one raw organic result from the search gateway. URL is the
// de-duplication key across result sets.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"link"`
	Snippet string `json:"snippet"`
}

// Relevance tiers produced by the fixed scoring rubric.
const (
	RelevanceHigh   = "High"
	RelevanceMedium = "Medium"
	RelevanceLow    = "Low"
)

// Link type classifications, checked first-match-wins in this order.
const (
	LinkDirectDocument = "Direct Document"
	LinkTemplateForm   = "Template/Form"
	LinkLegalDatabase  = "Legal Database"
	LinkCourtDocument  = "Court Document"
	LinkLegalResource  = "Legal Resource"
)

// SimilarContract is one classified, ranked search result. Records are created
// once per surviving merged result and never mutated; slice order is the rank.
type SimilarContract struct {
	Title                string `json:"title"`
	URL                  string `json:"url"`
	Snippet              string `json:"snippet"`
	ContractType         string `json:"contract_type"`
	Location             string `json:"location"`
	RelevanceScore       string `json:"relevance_score"`
	Source               string `json:"source"`
	LinkType             string `json:"link_type"`
	Domain               string `json:"domain"`
	ClickableDescription string `json:"clickable_description"`
}

// Result is the pipeline's final payload.
type Result struct {
	Analysis         ContractAnalysis  `json:"analysis"`
	SimilarContracts []SimilarContract `json:"similar_contracts"`
}

// Status is the fixed liveness payload for the status tool/endpoint.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OnlineStatus returns the record reported while the service is up.
func OnlineStatus() Status {
	return Status{Status: "online", Message: "Legal contract search service is running"}
}
