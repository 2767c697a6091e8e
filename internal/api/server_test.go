package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/legal-search/internal/config"
	"github.com/sells-group/legal-search/internal/model"
	"github.com/sells-group/legal-search/internal/pipeline"
)

const sampleContract = `
This Employment Agreement is entered into between TechCorp Inc. and John Smith.
The Employee shall receive a salary for the position described herein. This
Agreement shall be governed by the laws of the State of California.
`

type fakeGateway struct {
	results []model.SearchResult
	err     error
}

func (f *fakeGateway) Search(ctx context.Context, query string, num int) ([]model.SearchResult, error) {
	return f.results, f.err
}

func newTestServer(gw *fakeGateway) *httptest.Server {
	srv := NewServer(pipeline.New(gw), config.ServerConfig{
		MinTextLength:  50,
		RequestTimeout: 5,
	})
	return httptest.NewServer(srv.Router())
}

func postAnalyze(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/legal/analyze", "application/json",
		bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHandleAnalyze(t *testing.T) {
	t.Run("returns_analysis_and_similar_contracts", func(t *testing.T) {
		srv := newTestServer(&fakeGateway{results: []model.SearchResult{
			{Title: "Employment Agreement", URL: "https://sec.gov/x.pdf", Snippet: "California employment"},
		}})
		defer srv.Close()

		body, err := json.Marshal(map[string]string{"contract_text": sampleContract})
		require.NoError(t, err)

		resp := postAnalyze(t, srv, string(body))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var result model.Result
		decodeBody(t, resp, &result)
		assert.Equal(t, "employment", result.Analysis.ContractType)
		assert.Equal(t, "California", result.Analysis.Location)
		require.NotEmpty(t, result.SimilarContracts)
		assert.Equal(t, "Employment Agreement", result.SimilarContracts[0].Title)
	})

	t.Run("rejects_short_text", func(t *testing.T) {
		srv := newTestServer(&fakeGateway{})
		defer srv.Close()

		resp := postAnalyze(t, srv, `{"contract_text": "too short"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Contains(t, body["error"], "at least 50 characters")
	})

	t.Run("rejects_whitespace_padding", func(t *testing.T) {
		srv := newTestServer(&fakeGateway{})
		defer srv.Close()

		padded := `{"contract_text": "` + strings.Repeat(" ", 60) + `hi"}`
		resp := postAnalyze(t, srv, padded)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects_invalid_json", func(t *testing.T) {
		srv := newTestServer(&fakeGateway{})
		defer srv.Close()

		resp := postAnalyze(t, srv, `{not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "invalid request body", body["error"])
	})

	t.Run("search_failure_is_bad_gateway", func(t *testing.T) {
		srv := newTestServer(&fakeGateway{err: eris.New("quota exceeded")})
		defer srv.Close()

		body, err := json.Marshal(map[string]string{"contract_text": sampleContract})
		require.NoError(t, err)

		resp := postAnalyze(t, srv, string(body))
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var payload map[string]string
		decodeBody(t, resp, &payload)
		assert.Contains(t, payload["error"], "quota exceeded")
	})
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&fakeGateway{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/legal/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "legal-search-api", body["service"])
}

func TestHandleRoot(t *testing.T) {
	srv := newTestServer(&fakeGateway{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Legal Search API", body["message"])
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(&fakeGateway{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/legal/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
