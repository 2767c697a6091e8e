package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/legal-search/internal/model"
)

func analysisFixture() model.ContractAnalysis {
	return model.ContractAnalysis{
		Location:      "California",
		ContractType:  "employment",
		KeyTerms:      []string{"twelve months", "$5,000 monthly", "ab"},
		Parties:       []string{"Acme Corp", "Widget LLC"},
		SubjectMatter: "Employment agreement - employment contract",
		Jurisdiction:  "the State of California",
	}
}

func TestPrimaryQuery(t *testing.T) {
	t.Run("full_analysis", func(t *testing.T) {
		q := PrimaryQuery(analysisFixture())

		assert.Contains(t, q, `"employment contract" filetype:pdf OR filetype:doc OR filetype:docx`)
		assert.Contains(t, q, `"California"`)
		assert.Contains(t, q, `"twelve months"`)
		assert.Contains(t, q, `"$5,000 monthly"`)
		// Terms of three characters or fewer are skipped.
		assert.NotContains(t, q, `"ab"`)
		assert.Contains(t, q, "agreement template")
		assert.Contains(t, q, "legal document sample")
		assert.Contains(t, q, "contract form")
		assert.Contains(t, q, "site:sec.gov OR site:courts.gov OR site:justia.com OR site:findlaw.com OR site:lawinsider.com OR site:contractstandards.com")
	})

	t.Run("sentinel_location_omitted", func(t *testing.T) {
		a := analysisFixture()
		a.Location = model.LocationNotSpecified
		q := PrimaryQuery(a)

		assert.NotContains(t, q, model.LocationNotSpecified)
	})

	t.Run("fallback_terms_omitted", func(t *testing.T) {
		a := analysisFixture()
		a.KeyTerms = []string{model.StandardTerms}
		q := PrimaryQuery(a)

		assert.NotContains(t, q, model.StandardTerms)
	})

	t.Run("at_most_two_terms", func(t *testing.T) {
		a := analysisFixture()
		a.KeyTerms = []string{"first term", "second term", "third term"}
		q := PrimaryQuery(a)

		assert.Contains(t, q, `"first term"`)
		assert.Contains(t, q, `"second term"`)
		assert.NotContains(t, q, `"third term"`)
	})
}

func TestTargetedQuery(t *testing.T) {
	t.Run("template_phrase_and_sites", func(t *testing.T) {
		q := TargetedQuery(analysisFixture())

		assert.Contains(t, q, `"employment contract template"`)
		assert.Contains(t, q, "filetype:pdf OR filetype:doc")
		assert.Contains(t, q, "site:lawinsider.com OR site:contractstandards.com OR site:sec.gov OR site:docracy.com")
		assert.Contains(t, q, `"California"`)
	})

	t.Run("sentinel_location_omitted", func(t *testing.T) {
		a := analysisFixture()
		a.Location = model.LocationNotSpecified
		q := TargetedQuery(a)

		assert.NotContains(t, q, model.LocationNotSpecified)
	})
}
