// cmd/claimscope/types.go
package main

import "time"

// SearchResult is one piece of external web evidence. Immutable once created;
// order within a result set reflects source ranking and is preserved
// end-to-end.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// ClaimAnalysis is the structured credibility judgment for a claim. Every
// instance carries all seven fields; the list fields are never nil.
type ClaimAnalysis struct {
	CredibilityScore   int      `json:"credibility_score"`
	Verdict            string   `json:"verdict"`
	Confidence         string   `json:"confidence"`
	Explanation        string   `json:"explanation"`
	KeyFindings        []string `json:"key_findings"`
	RedFlags           []string `json:"red_flags"`
	SupportingEvidence []string `json:"supporting_evidence"`
}

// CheckResult is the full record returned to callers: the claim, the evidence
// it was judged against, and the analysis.
type CheckResult struct {
	ID        string         `json:"id"`
	Claim     string         `json:"claim"`
	Sources   []SearchResult `json:"sources"`
	Analysis  *ClaimAnalysis `json:"analysis"`
	Cached    bool           `json:"cached"`
	CheckedAt time.Time      `json:"checked_at"`
}

// Degraded reports whether the analysis step failed outright
func (r *CheckResult) Degraded() bool {
	return r.Analysis != nil && r.Analysis.Verdict == VerdictAnalysisFailed
}
