package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func respOf(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func textPart(s string) *genai.Part    { return &genai.Part{Text: s} }
func thoughtPart(s string) *genai.Part { return &genai.Part{Text: s, Thought: true} }

func TestNormalizeStructuredPayload(t *testing.T) {
	resp := respOf(textPart(`{
		"deception_score": 87,
		"risk_level": "HIGH",
		"summary": "Classic Ponzi structure with guaranteed daily returns.",
		"red_flag_timeline_markdown": "- 00:12 promises 3% daily\n- 01:04 urgency push",
		"advice_markdown": "Do not send funds.",
		"math_reality_check_markdown": "3% daily compounds to 4,848% annually.",
		"math_table_markdown": "| Promised | Realistic |\n|---|---|\n| 3%/day | 7%/yr |"
	}`))

	res := Normalize(resp)
	require.NotNil(t, res)
	assert.Equal(t, 87, res.DeceptionScore)
	assert.Equal(t, 87, res.ScamScore, "scam_score mirrors deception_score when absent")
	assert.Equal(t, "HIGH", res.RiskLevel)
	assert.Equal(t, "Classic Ponzi structure with guaranteed daily returns.", res.Summary)
	assert.Contains(t, res.RedFlagTimelineMarkdown, "3% daily")
	assert.Contains(t, res.MathTableMarkdown, "Promised")
	assert.False(t, res.Degraded)
	assert.Empty(t, res.Warnings)
}

func TestNormalizeScamScoreKeptWhenPresent(t *testing.T) {
	resp := respOf(textPart(`{"deception_score": 40, "scam_score": 55, "risk_level": "MEDIUM", "summary": "s", "red_flag_timeline_markdown": ""}`))

	res := Normalize(resp)
	assert.Equal(t, 40, res.DeceptionScore)
	assert.Equal(t, 55, res.ScamScore)
}

func TestNormalizeScoreClamping(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"above range", `{"deception_score": 187.6, "risk_level": "HIGH", "summary": "s", "red_flag_timeline_markdown": ""}`, 100},
		{"below range", `{"deception_score": -5, "risk_level": "LOW", "summary": "s", "red_flag_timeline_markdown": ""}`, 0},
		{"fractional rounds", `{"deception_score": 42.4, "risk_level": "MEDIUM", "summary": "s", "red_flag_timeline_markdown": ""}`, 42},
		{"numeric string", `{"deception_score": "73", "risk_level": "HIGH", "summary": "s", "red_flag_timeline_markdown": ""}`, 73},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Normalize(respOf(textPart(tc.raw)))
			assert.Equal(t, tc.want, res.DeceptionScore)
			assert.Equal(t, tc.want, res.ScamScore)
		})
	}
}

func TestNormalizeMissingScoreDefaultsToZero(t *testing.T) {
	resp := respOf(textPart(`{"risk_level": "LOW", "summary": "benign", "red_flag_timeline_markdown": ""}`))

	res := Normalize(resp)
	assert.Equal(t, 0, res.DeceptionScore)
	assert.Equal(t, 0, res.ScamScore)
	assert.False(t, res.Degraded)
}

func TestNormalizeListPayloadTakesFirstMapping(t *testing.T) {
	resp := respOf(textPart(`[{"deception_score": 61, "risk_level": "HIGH", "summary": "first", "red_flag_timeline_markdown": ""}, {"deception_score": 2}]`))

	res := Normalize(resp)
	assert.Equal(t, 61, res.DeceptionScore)
	assert.Equal(t, "first", res.Summary)
}

func TestNormalizeFencedJSON(t *testing.T) {
	resp := respOf(textPart("```json\n{\"deception_score\": 66, \"risk_level\": \"HIGH\", \"summary\": \"fenced\", \"red_flag_timeline_markdown\": \"- flag\"}\n```"))

	res := Normalize(resp)
	assert.Equal(t, 66, res.DeceptionScore)
	assert.Equal(t, "fenced", res.Summary)
	assert.False(t, res.Degraded)
}

func TestNormalizeJSONEmbeddedInProse(t *testing.T) {
	resp := respOf(textPart(`Here is my analysis: {"deception_score": 92, "risk_level": "HIGH", "summary": "embedded", "red_flag_timeline_markdown": ""} hope that helps.`))

	res := Normalize(resp)
	assert.Equal(t, 92, res.DeceptionScore)
	assert.Equal(t, "embedded", res.Summary)
}

func TestNormalizeRefusalFabricatesResult(t *testing.T) {
	resp := respOf(textPart("Sorry, I cannot comply."))

	res := Normalize(resp)
	assert.Equal(t, 0, res.DeceptionScore)
	assert.Equal(t, "UNKNOWN", res.RiskLevel)
	assert.Equal(t, "Sorry, I cannot comply.", res.Summary)
	assert.True(t, res.Degraded)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "could not parse")
}

func TestNormalizeEmptyResponse(t *testing.T) {
	res := Normalize(&genai.GenerateContentResponse{})

	assert.Equal(t, "UNKNOWN", res.RiskLevel)
	assert.Equal(t, fallbackSummary, res.Summary)
	assert.True(t, res.Degraded)
}

func TestNormalizeCollectsThoughtsInOrder(t *testing.T) {
	resp := respOf(
		thoughtPart("First I inspect the promised returns. "),
		thoughtPart("Then I check the urgency cues."),
		textPart(`{"deception_score": 80, "risk_level": "HIGH", "summary": "s", "red_flag_timeline_markdown": ""}`),
	)

	res := Normalize(resp)
	assert.Equal(t, "First I inspect the promised returns. Then I check the urgency cues.", res.ReasoningMarkdown)
	assert.Equal(t, 80, res.DeceptionScore)
}

func TestNormalizeThoughtsExcludedFromPayloadText(t *testing.T) {
	// A thought fragment that happens to contain JSON must not shadow the
	// real payload.
	resp := respOf(
		thoughtPart(`{"deception_score": 1}`),
		textPart(`{"deception_score": 77, "risk_level": "HIGH", "summary": "s", "red_flag_timeline_markdown": ""}`),
	)

	res := Normalize(resp)
	assert.Equal(t, 77, res.DeceptionScore)
	assert.Equal(t, `{"deception_score": 1}`, res.ReasoningMarkdown)
}

func TestNormalizeNoThoughtsLeavesReasoningEmpty(t *testing.T) {
	resp := respOf(textPart(`{"deception_score": 10, "risk_level": "LOW", "summary": "s", "red_flag_timeline_markdown": ""}`))

	res := Normalize(resp)
	assert.Empty(t, res.ReasoningMarkdown)
}

func TestNormalizeThoughtsAttachedToDegradedResult(t *testing.T) {
	resp := respOf(
		thoughtPart("I am unsure about this one."),
		textPart("plain refusal text"),
	)

	res := Normalize(resp)
	assert.True(t, res.Degraded)
	assert.Equal(t, "I am unsure about this one.", res.ReasoningMarkdown)
	assert.Equal(t, "plain refusal text", res.Summary)
}
