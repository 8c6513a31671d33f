package presentation

import (
	"fmt"
	"html"
	"strings"

	domain "github.com/bryanwahyu/scrutinizer/internal/domain/analysis"
)

// Score meter banding. The 30/60 boundaries and colors are fixed display
// configuration; keep them exactly for compatibility with the existing UI.
const (
	mediumBandMin = 30
	highBandMin   = 60

	colorLow    = "#16a34a"
	colorMedium = "#f97316"
	colorHigh   = "#dc2626"
)

const emptyTimelinePlaceholder = "_No clear red flags identified._"

const degradedBanner = "Could not parse a structured response from the model; this is a best-effort analysis."

// Section is one rendered panel of the analysis output.
type Section struct {
	Title       string `json:"title"`
	HTML        string `json:"html"`
	Collapsible bool   `json:"collapsible,omitempty"`
}

// View is the render plan for one analysis result: the clamped score meter
// plus the panels in their fixed display order.
type View struct {
	Score     int       `json:"score"`
	Band      string    `json:"band"`
	Color     string    `json:"color"`
	RiskLevel string    `json:"risk_level"`
	Degraded  bool      `json:"degraded,omitempty"`
	Sections  []Section `json:"sections"`
}

// Build assembles the view for one result. Order is fixed: score meter,
// reasoning (if any), summary (if any), math reality check (if any), the
// red-flag timeline (always), then advice (if any). Only presence checks and
// clamping happen here.
func Build(res *domain.Result) *View {
	// The meter prefers scam_score; the normalizer guarantees it mirrors
	// deception_score when the model omitted it.
	score := domain.ClampScore(float64(res.ScamScore))
	band, color := bandFor(score)

	v := &View{
		Score:     score,
		Band:      band,
		Color:     color,
		RiskLevel: strings.ToUpper(strings.TrimSpace(res.RiskLevel)),
		Degraded:  res.Degraded,
	}

	if reasoning := strings.TrimSpace(res.ReasoningMarkdown); reasoning != "" {
		v.Sections = append(v.Sections, Section{
			Title:       "Forensic Reasoning (Thinking Process)",
			HTML:        RenderMarkdown(reasoning),
			Collapsible: true,
		})
	}

	if summary := strings.TrimSpace(res.Summary); summary != "" {
		v.Sections = append(v.Sections, Section{
			Title: "Forensic Summary",
			HTML:  RenderMarkdown(summary),
		})
	}

	mathMD := strings.TrimSpace(res.MathRealityCheckMarkdown)
	mathTable := strings.TrimSpace(res.MathTableMarkdown)
	if mathMD != "" || mathTable != "" {
		var b strings.Builder
		if mathMD != "" {
			b.WriteString(RenderMarkdown(mathMD))
		}
		if mathTable != "" {
			b.WriteString(RenderMarkdown(mathTable))
		}
		v.Sections = append(v.Sections, Section{
			Title: "Math Reality Check",
			HTML:  b.String(),
		})
	}

	timeline := strings.TrimSpace(res.RedFlagTimelineMarkdown)
	if timeline == "" {
		timeline = emptyTimelinePlaceholder
	}
	v.Sections = append(v.Sections, Section{
		Title: "Red Flag Timeline",
		HTML:  RenderMarkdown(timeline),
	})

	if advice := strings.TrimSpace(res.AdviceMarkdown); advice != "" {
		v.Sections = append(v.Sections, Section{
			Title: "Forensic Safety Briefing",
			HTML:  RenderMarkdown(advice),
		})
	}

	return v
}

func bandFor(score int) (string, string) {
	switch {
	case score < mediumBandMin:
		return "low", colorLow
	case score < highBandMin:
		return "medium", colorMedium
	default:
		return "high", colorHigh
	}
}

// HTMLFragment renders the view as a fragment the UI page injects directly.
// Section HTML comes from goldmark (raw model HTML already escaped); every
// other interpolated value is escaped here.
func (v *View) HTMLFragment() string {
	var b strings.Builder

	if v.Degraded {
		fmt.Fprintf(&b, `<div class="warning-banner">%s</div>`, html.EscapeString(degradedBanner))
	}

	b.WriteString(`<div class="score-container">`)
	fmt.Fprintf(&b, `<div class="score-label">Deception Score: <span>%d/100</span> — %s</div>`,
		v.Score, html.EscapeString(v.RiskLevel))
	fmt.Fprintf(&b,
		`<div class="score-bar-outer"><div class="score-bar-inner band-%s" style="width: %d%%; background: %s;"></div></div>`,
		v.Band, v.Score, v.Color)
	b.WriteString(`</div>`)

	for _, s := range v.Sections {
		if s.Collapsible {
			fmt.Fprintf(&b,
				`<details class="panel" open><summary>%s</summary><div class="panel-body">%s</div></details>`,
				html.EscapeString(s.Title), s.HTML)
			continue
		}
		fmt.Fprintf(&b,
			`<section class="panel"><h3>%s</h3><div class="panel-body">%s</div></section>`,
			html.EscapeString(s.Title), s.HTML)
	}

	return b.String()
}
