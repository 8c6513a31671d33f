package analysis

import "math"

// AnalysisID identifier type
type AnalysisID string

// Result is the canonical record built from one model response. It is
// constructed fresh per request and discarded after rendering; nothing is
// persisted.
type Result struct {
	DeceptionScore           int      `json:"deception_score"`
	ScamScore                int      `json:"scam_score"`
	RiskLevel                string   `json:"risk_level"`
	Summary                  string   `json:"summary"`
	RedFlagTimelineMarkdown  string   `json:"red_flag_timeline_markdown"`
	AdviceMarkdown           string   `json:"advice_markdown,omitempty"`
	MathRealityCheckMarkdown string   `json:"math_reality_check_markdown,omitempty"`
	MathTableMarkdown        string   `json:"math_table_markdown,omitempty"`
	ReasoningMarkdown        string   `json:"reasoning_markdown,omitempty"`
	Degraded                 bool     `json:"degraded,omitempty"`
	Warnings                 []string `json:"warnings,omitempty"`
}

// MediaFile is one uploaded asset: filename, the type declared by the
// browser, and the raw bytes.
type MediaFile struct {
	Name         string
	DeclaredMIME string
	Data         []byte
}

// MediaInput is the media-path request: one or more files plus optional
// free-text context from the user.
type MediaInput struct {
	Files        []MediaFile
	ContextNotes string
}

// TextInput is the link/text-path request. At least one field must be set.
type TextInput struct {
	Link string
	Text string
}

// ClampScore rounds and clamps a raw score into [0,100]. Upstream values may
// be out of range or non-integer; the clamped value is what gets displayed.
func ClampScore(v float64) int {
	s := int(math.Round(v))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
