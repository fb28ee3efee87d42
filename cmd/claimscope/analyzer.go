// cmd/claimscope/analyzer.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are a fact-checking assistant that analyzes news claims for credibility.
Your task is to evaluate claims based on available evidence and provide a structured analysis.
Be objective, thorough, and base your assessment on the information provided.
Always respond with a JSON object containing the analysis.`

const analysisPromptTemplate = `Analyze the following claim for credibility based on the search results provided.

CLAIM: %s

SEARCH RESULTS:
%s

Please provide your analysis as a JSON object with the following structure:
{
    "credibility_score": <integer from 0-10>,
    "verdict": "<Likely True/Likely False/Uncertain/Mixed Evidence>",
    "confidence": "<High/Medium/Low>",
    "explanation": "<detailed explanation of your analysis>",
    "key_findings": ["<finding 1>", "<finding 2>", ...],
    "red_flags": ["<red flag 1>", "<red flag 2>", ...],
    "supporting_evidence": ["<evidence 1>", "<evidence 2>", ...]
}

Consider:
- Consistency across sources
- Source credibility
- Presence of factual information vs opinion
- Any obvious signs of misinformation
- Date and relevance of information`

// Analyzer judges claim credibility with a generative model
type Analyzer struct {
	cfg    *Config
	client *openai.Client
}

// NewAnalyzer creates an analyzer from explicit configuration
func NewAnalyzer(cfg *Config) *Analyzer {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &Analyzer{
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

// AnalyzeClaim builds the prompt from the evidence, makes a single model call
// and normalizes the response. It never returns an error: any failure yields
// a degraded record with verdict "Analysis Failed".
func (a *Analyzer) AnalyzeClaim(ctx context.Context, claim string, results []SearchResult) *ClaimAnalysis {
	ctx, cancel := context.WithTimeout(ctx, AnalysisTimeout)
	defer cancel()

	prompt := fmt.Sprintf(analysisPromptTemplate, claim, prepareContext(results))

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.cfg.ModelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: float32(a.cfg.Temperature),
	})
	if err != nil {
		RecordError("analyzer", NewError(ErrorTypeAnalysis, ErrAnalysisRequest, "model call failed", err))
		return failedAnalysis(err)
	}
	if len(resp.Choices) == 0 {
		err := fmt.Errorf("model returned no choices")
		RecordError("analyzer", err)
		return failedAnalysis(err)
	}

	return parseAnalysis(resp.Choices[0].Message.Content)
}

// prepareContext renders evidence as numbered source blocks, preserving order
func prepareContext(results []SearchResult) string {
	parts := make([]string, 0, len(results))
	for i, r := range results {
		parts = append(parts, fmt.Sprintf("Source %d: %s\nURL: %s\nSummary: %s\n", i+1, r.Title, r.Link, r.Snippet))
	}
	return strings.Join(parts, "\n")
}

// parseAnalysis turns raw model output into a ClaimAnalysis. Non-JSON output
// is not discarded: the model's prose becomes the explanation of an uncertain
// record.
func parseAnalysis(text string) *ClaimAnalysis {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(extractJSON(text)), &raw); err != nil {
		return &ClaimAnalysis{
			CredibilityScore:   5,
			Verdict:            VerdictUncertain,
			Confidence:         ConfidenceMedium,
			Explanation:        text,
			KeyFindings:        []string{},
			RedFlags:           []string{},
			SupportingEvidence: []string{},
		}
	}
	return normalizeAnalysis(raw)
}

// extractJSON pulls the JSON payload out of a model response that may wrap it
// in a code fence or surround it with prose. Tried in order: fenced block,
// first-to-last brace span, the whole text verbatim.
func extractJSON(text string) string {
	if idx := strings.Index(text, "```json"); idx != -1 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			return strings.TrimSpace(rest[:end])
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

// normalizeAnalysis fills defaults for missing keys and clamps the score.
// Pure: behaves the same however the map was obtained.
func normalizeAnalysis(raw map[string]interface{}) *ClaimAnalysis {
	analysis := &ClaimAnalysis{
		CredibilityScore:   5,
		Verdict:            VerdictUncertain,
		Confidence:         ConfidenceMedium,
		Explanation:        "Analysis could not be completed",
		KeyFindings:        []string{},
		RedFlags:           []string{},
		SupportingEvidence: []string{},
	}

	if v, ok := raw["verdict"].(string); ok && v != "" {
		analysis.Verdict = v
	}
	if v, ok := raw["confidence"].(string); ok && v != "" {
		analysis.Confidence = v
	}
	if v, ok := raw["explanation"].(string); ok && v != "" {
		analysis.Explanation = v
	}
	if v, ok := raw["credibility_score"]; ok {
		analysis.CredibilityScore = coerceScore(v)
	}
	analysis.KeyFindings = toStringList(raw["key_findings"])
	analysis.RedFlags = toStringList(raw["red_flags"])
	analysis.SupportingEvidence = toStringList(raw["supporting_evidence"])

	return analysis
}

// coerceScore converts whatever the model produced for credibility_score into
// an int in [0, 10]. Strings are parsed; anything unparseable falls back to
// the neutral 5.
func coerceScore(v interface{}) int {
	score := 5
	switch n := v.(type) {
	case float64:
		score = int(n)
	case int:
		score = n
	case json.Number:
		if parsed, err := n.Int64(); err == nil {
			score = int(parsed)
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			score = parsed
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return score
}

// toStringList converts a decoded JSON array into a string slice, dropping
// non-string members. Never nil.
func toStringList(v interface{}) []string {
	out := []string{}
	items, ok := v.([]interface{})
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// failedAnalysis is the degraded record returned when the model call itself
// fails
func failedAnalysis(err error) *ClaimAnalysis {
	return &ClaimAnalysis{
		CredibilityScore:   0,
		Verdict:            VerdictAnalysisFailed,
		Confidence:         ConfidenceLow,
		Explanation:        fmt.Sprintf("Could not complete analysis: %v", err),
		KeyFindings:        []string{},
		RedFlags:           []string{},
		SupportingEvidence: []string{},
	}
}
