package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *Config) *Server {
	t.Helper()
	return NewServer(cfg, NewChecker(cfg))
}

func TestHandleCheckRejectsInvalidClaim(t *testing.T) {
	srv := newTestServer(t, newTestConfig(t))

	body := strings.NewReader(`{"claim": "short"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/check", body)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, invalidClaimMessage, resp["error"])
}

func TestHandleCheckRejectsBadBody(t *testing.T) {
	srv := newTestServer(t, newTestConfig(t))

	req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// Everything unavailable: evidence gathering must fall back to the synthetic
// records and analysis must degrade rather than error.
func TestHandleCheckEndToEndAllSourcesDown(t *testing.T) {
	cfg := newTestConfig(t)
	srv := newTestServer(t, cfg)

	claim := "Scientists discover new planet made entirely of diamonds"
	body, err := json.Marshal(map[string]string{"claim": claim})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result CheckResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, claim, result.Claim)

	require.Len(t, result.Sources, 3)
	for _, source := range result.Sources {
		assert.Contains(t, source.Title, claim)
	}

	require.NotNil(t, result.Analysis)
	assert.Equal(t, 0, result.Analysis.CredibilityScore)
	assert.Equal(t, VerdictAnalysisFailed, result.Analysis.Verdict)
	assert.Equal(t, ConfidenceLow, result.Analysis.Confidence)
	assert.NotNil(t, result.Analysis.KeyFindings)
	assert.NotNil(t, result.Analysis.RedFlags)
	assert.NotNil(t, result.Analysis.SupportingEvidence)
}

func TestHandleCheckServesRepeatFromCache(t *testing.T) {
	content := `{"credibility_score": 6, "verdict": "Mixed Evidence", "confidence": "Medium", "explanation": "Sources disagree."}`
	model := fakeModelServer(t, content)
	defer model.Close()

	cfg := newTestConfig(t)
	cfg.OpenAIBaseURL = model.URL + "/v1"
	srv := newTestServer(t, cfg)

	doCheck := func() CheckResult {
		body := strings.NewReader(`{"claim": "a claim that is long enough"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/check", body)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var result CheckResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		return result
	}

	first := doCheck()
	assert.False(t, first.Cached)
	assert.Equal(t, VerdictMixedEvidence, first.Analysis.Verdict)

	second := doCheck()
	assert.True(t, second.Cached)
	assert.Equal(t, first.ID, second.ID)
}

func TestHandleAnalyzeFormWarnsOnInvalidClaim(t *testing.T) {
	srv := newTestServer(t, newTestConfig(t))

	form := strings.NewReader("claim=short")
	req := httptest.NewRequest(http.MethodPost, "/analyze", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), invalidClaimMessage)
}

func TestHandleHome(t *testing.T) {
	srv := newTestServer(t, newTestConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ClaimScope")
	assert.Contains(t, rec.Body.String(), `name="claim"`)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, newTestConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, AppVersion, resp["version"])
}

func TestHandleStatus(t *testing.T) {
	srv := newTestServer(t, newTestConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string   `json:"status"`
		Metrics *Metrics `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Status)
	require.NotNil(t, resp.Metrics)
	assert.GreaterOrEqual(t, resp.Metrics.GoroutineCount, 1)
}
