package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/bryanwahyu/scrutinizer/internal/domain/analysis"
)

// Clock abstraction supaya gampang ditest
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Service implements the two analysis use-cases. It is stateless across
// requests; the only session-scoped value is the fallback credential.
type Service struct {
	Analyzer domain.Analyzer
	Clock    Clock

	// FallbackCredential is used when a request carries no key of its own
	// (config value or GEMINI_API_KEY / GOOGLE_API_KEY).
	FallbackCredential string
}

//
// ==== USE CASES ====
//

// MediaCommand triggers analysis of one batch of uploaded media files.
type MediaCommand struct {
	Credential   string
	Files        []domain.MediaFile
	ContextNotes string
}

// TextCommand triggers analysis of a suspicious link and/or text snippet.
type TextCommand struct {
	Credential string
	Link       string
	Text       string
}

// Report wraps one analysis result with request metadata. Reports are
// returned to the caller and then discarded; there is no history.
type Report struct {
	ID         string         `json:"id"`
	AnalyzedAt time.Time      `json:"analyzed_at"`
	DurationMS int64          `json:"duration_ms"`
	Analysis   *domain.Result `json:"analysis"`
}

// AnalyzeMedia validates the batch, then runs one synchronous inference call
// covering every file together. Validation failures never reach the endpoint.
func (s *Service) AnalyzeMedia(ctx context.Context, cmd MediaCommand) (*Report, error) {
	cred := s.credential(cmd.Credential)
	if cred == "" {
		return nil, domain.ErrMissingCredential
	}
	if len(cmd.Files) == 0 {
		return nil, domain.ErrNoMediaFiles
	}

	start := s.Clock.Now()
	res, err := s.Analyzer.AnalyzeMedia(ctx, cred, domain.MediaInput{
		Files:        cmd.Files,
		ContextNotes: strings.TrimSpace(cmd.ContextNotes),
	})
	if err != nil {
		return nil, err
	}
	return s.report(start, res), nil
}

// AnalyzeText validates the link/text pair and runs one inference call.
func (s *Service) AnalyzeText(ctx context.Context, cmd TextCommand) (*Report, error) {
	cred := s.credential(cmd.Credential)
	if cred == "" {
		return nil, domain.ErrMissingCredential
	}
	link := strings.TrimSpace(cmd.Link)
	text := strings.TrimSpace(cmd.Text)
	if link == "" && text == "" {
		return nil, domain.ErrNoTextInput
	}

	start := s.Clock.Now()
	res, err := s.Analyzer.AnalyzeText(ctx, cred, domain.TextInput{Link: link, Text: text})
	if err != nil {
		return nil, err
	}
	return s.report(start, res), nil
}

// credential prefers the key supplied with the request, then the fallback.
// An empty result is a pre-flight error, never silently substituted.
func (s *Service) credential(supplied string) string {
	if v := strings.TrimSpace(supplied); v != "" {
		return v
	}
	return s.FallbackCredential
}

func (s *Service) report(start time.Time, res *domain.Result) *Report {
	return &Report{
		ID:         uuid.New().String(),
		AnalyzedAt: start,
		DurationMS: s.Clock.Now().Sub(start).Milliseconds(),
		Analysis:   res,
	}
}
