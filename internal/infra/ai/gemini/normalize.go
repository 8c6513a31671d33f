package gemini

import (
	"encoding/json"
	"strconv"
	"strings"

	"google.golang.org/genai"

	domain "github.com/bryanwahyu/scrutinizer/internal/domain/analysis"
)

// fallbackSummary is shown when the model returns neither structured JSON nor
// any raw text at all.
const fallbackSummary = "Model returned an unexpected format; showing raw output."

const parseWarning = "could not parse structured response from the model; showing a best-effort analysis"

type extractor func(raw string) (map[string]any, bool)

// Normalize converts one raw endpoint response into the canonical Result.
// The response envelope varies across SDK versions and occasional malformed
// completions, so extraction walks an ordered fallback chain and never fails:
// the structured payload first, then best-effort JSON recovery from raw text,
// then a fabricated minimal result that carries the raw text verbatim.
func Normalize(resp *genai.GenerateContentResponse) *domain.Result {
	raw := responseText(resp)

	var mapping map[string]any
	for _, extract := range []extractor{structuredPayload, looseJSON} {
		if m, ok := extract(raw); ok {
			mapping = m
			break
		}
	}

	var res *domain.Result
	if mapping != nil {
		res = fromMapping(mapping)
	} else {
		summary := raw
		if strings.TrimSpace(summary) == "" {
			summary = fallbackSummary
		}
		res = &domain.Result{
			DeceptionScore:          0,
			ScamScore:               0,
			RiskLevel:               "UNKNOWN",
			Summary:                 summary,
			RedFlagTimelineMarkdown: "",
			Degraded:                true,
			Warnings:                []string{parseWarning},
		}
	}

	// Thought fragments are attached regardless of which path produced the
	// main mapping. Extraction failures just mean no trace.
	if thoughts := collectThoughts(resp); thoughts != "" {
		res.ReasoningMarkdown = thoughts
	}
	return res
}

// responseText concatenates the non-thought text parts of the first
// candidate. Any structural surprise yields an empty string.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

// collectThoughts concatenates thought fragments in their original order.
func collectThoughts(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if p != nil && p.Thought && p.Text != "" {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// structuredPayload decodes the schema-constrained JSON emitted by the model.
// Some completions wrap the object in a candidate list; the first mapping of
// a non-empty list is accepted.
func structuredPayload(raw string) (map[string]any, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return nil, false
	}
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case []any:
		if len(t) > 0 {
			if m, ok := t[0].(map[string]any); ok {
				return m, true
			}
		}
	}
	return nil, false
}

// looseJSON recovers a mapping from raw text that wraps the JSON in markdown
// fences or surrounding prose. Accepts only a decoded mapping.
func looseJSON(raw string) (map[string]any, bool) {
	payload := strings.TrimSpace(raw)
	if strings.HasPrefix(payload, "```") {
		payload = strings.TrimPrefix(payload, "```json")
		payload = strings.TrimPrefix(payload, "```")
		if i := strings.LastIndex(payload, "```"); i >= 0 {
			payload = payload[:i]
		}
		payload = strings.TrimSpace(payload)
	}
	if !json.Valid([]byte(payload)) {
		start := strings.Index(payload, "{")
		end := strings.LastIndex(payload, "}")
		if start < 0 || end <= start {
			return nil, false
		}
		payload = payload[start : end+1]
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return nil, false
	}
	return m, true
}

// fromMapping builds the canonical result from a decoded mapping. Scores are
// clamped here, and scam_score mirrors deception_score when absent -- the
// mirror is computed once, never stored independently upstream.
func fromMapping(m map[string]any) *domain.Result {
	res := &domain.Result{
		RiskLevel:                stringField(m, "risk_level"),
		Summary:                  stringField(m, "summary"),
		RedFlagTimelineMarkdown:  stringField(m, "red_flag_timeline_markdown"),
		AdviceMarkdown:           stringField(m, "advice_markdown"),
		MathRealityCheckMarkdown: stringField(m, "math_reality_check_markdown"),
		MathTableMarkdown:        stringField(m, "math_table_markdown"),
	}
	res.DeceptionScore = scoreField(m, "deception_score", 0)
	res.ScamScore = scoreField(m, "scam_score", res.DeceptionScore)
	return res
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// scoreField coerces a possibly missing, non-integer, or out-of-range value
// into a clamped [0,100] integer.
func scoreField(m map[string]any, key string, fallback int) int {
	v, ok := m[key]
	if !ok || v == nil {
		return fallback
	}
	switch t := v.(type) {
	case float64:
		return domain.ClampScore(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return domain.ClampScore(f)
		}
	}
	return fallback
}
