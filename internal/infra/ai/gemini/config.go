package gemini

import (
	"google.golang.org/genai"

	"github.com/bryanwahyu/scrutinizer/internal/infra/ai/prompt"
)

const defaultModel = "gemini-3-pro-preview"

// Fixed sampling parameters for every analysis call.
const (
	temperature float32 = 1.0
	topP        float32 = 0.9
)

// BuildConfig assembles the full request configuration: persona instruction,
// output schema, tool list, sampling parameters, and the thinking directive.
// Pure construction, no side effects.
//
// Code execution is powerful for text/link analysis but can conflict with
// some media MIME types, so it is enabled selectively. Google Search
// grounding is on for all requests.
func BuildConfig(includeCodeExecution bool) *genai.GenerateContentConfig {
	tools := []*genai.Tool{
		{GoogleSearch: &genai.GoogleSearch{}},
	}
	if includeCodeExecution {
		tools = append(tools, &genai.Tool{CodeExecution: &genai.ToolCodeExecution{}})
	}

	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.GetSystemPrompt(), genai.RoleUser),
		Tools:             tools,
		ThinkingConfig: &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingLevel:   genai.ThinkingLevelHigh,
		},
		// Ask the model to return a structured JSON payload we can render.
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema(),
		Temperature:      genai.Ptr(temperature),
		TopP:             genai.Ptr(topP),
	}
}

func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"deception_score": {
				Type:        genai.TypeInteger,
				Minimum:     genai.Ptr(0.0),
				Maximum:     genai.Ptr(100.0),
				Description: "Overall deception / scam likelihood from 0 (benign) to 100 (highly deceptive).",
			},
			"scam_score": {
				Type:        genai.TypeInteger,
				Minimum:     genai.Ptr(0.0),
				Maximum:     genai.Ptr(100.0),
				Description: "Alias for deception_score, used specifically for the deception meter UI.",
			},
			"risk_level": {
				Type:        genai.TypeString,
				Description: "Short label like LOW, MEDIUM, HIGH summarizing the risk.",
			},
			"summary": {
				Type:        genai.TypeString,
				Description: "Short natural-language summary of why this score was assigned.",
			},
			"red_flag_timeline_markdown": {
				Type:        genai.TypeString,
				Description: "Chronological bullet list in markdown with timestamps or sections and red flags.",
			},
			"advice_markdown": {
				Type:        genai.TypeString,
				Description: "Optional markdown with practical safety advice for the viewer/reader.",
			},
			"math_reality_check_markdown": {
				Type:        genai.TypeString,
				Description: "Optional markdown narrative explaining numeric reasoning that exposes scams.",
			},
			"math_table_markdown": {
				Type:        genai.TypeString,
				Description: "Optional markdown table showing key math comparisons (e.g., promised vs realistic returns).",
			},
		},
		Required: []string{"deception_score", "risk_level", "summary", "red_flag_timeline_markdown"},
	}
}
