package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/scrutinizer/internal/domain/analysis"
)

type fakeAnalyzer struct {
	lastCredential string
	lastMedia      domain.MediaInput
	lastText       domain.TextInput
	result         *domain.Result
	err            error
}

func (f *fakeAnalyzer) AnalyzeMedia(ctx context.Context, credential string, in domain.MediaInput) (*domain.Result, error) {
	f.lastCredential = credential
	f.lastMedia = in
	return f.result, f.err
}

func (f *fakeAnalyzer) AnalyzeText(ctx context.Context, credential string, in domain.TextInput) (*domain.Result, error) {
	f.lastCredential = credential
	f.lastText = in
	return f.result, f.err
}

type fakeClock struct {
	times []time.Time
	idx   int
}

func (c *fakeClock) Now() time.Time {
	t := c.times[c.idx]
	if c.idx < len(c.times)-1 {
		c.idx++
	}
	return t
}

func okResult() *domain.Result {
	return &domain.Result{DeceptionScore: 50, ScamScore: 50, RiskLevel: "MEDIUM", Summary: "s"}
}

func newService(a domain.Analyzer, fallback string) *Service {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &Service{
		Analyzer:           a,
		Clock:              &fakeClock{times: []time.Time{start, start.Add(2300 * time.Millisecond)}},
		FallbackCredential: fallback,
	}
}

func TestAnalyzeMediaMissingCredential(t *testing.T) {
	svc := newService(&fakeAnalyzer{result: okResult()}, "")

	_, err := svc.AnalyzeMedia(context.Background(), MediaCommand{
		Files: []domain.MediaFile{{Name: "a.mp4"}},
	})
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestAnalyzeMediaNoFiles(t *testing.T) {
	svc := newService(&fakeAnalyzer{result: okResult()}, "key")

	_, err := svc.AnalyzeMedia(context.Background(), MediaCommand{})
	assert.ErrorIs(t, err, domain.ErrNoMediaFiles)
}

func TestAnalyzeMediaReport(t *testing.T) {
	fa := &fakeAnalyzer{result: okResult()}
	svc := newService(fa, "")

	rep, err := svc.AnalyzeMedia(context.Background(), MediaCommand{
		Credential:   "user-key",
		Files:        []domain.MediaFile{{Name: "a.mp4", Data: []byte{1}}},
		ContextNotes: "  he promised returns  ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, int64(2300), rep.DurationMS)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), rep.AnalyzedAt)
	assert.Same(t, fa.result, rep.Analysis)
	assert.Equal(t, "user-key", fa.lastCredential)
	assert.Equal(t, "he promised returns", fa.lastMedia.ContextNotes)
}

func TestAnalyzeMediaFallbackCredential(t *testing.T) {
	fa := &fakeAnalyzer{result: okResult()}
	svc := newService(fa, "server-key")

	_, err := svc.AnalyzeMedia(context.Background(), MediaCommand{
		Files: []domain.MediaFile{{Name: "a.mp4"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "server-key", fa.lastCredential)
}

func TestAnalyzeMediaSuppliedCredentialWins(t *testing.T) {
	fa := &fakeAnalyzer{result: okResult()}
	svc := newService(fa, "server-key")

	_, err := svc.AnalyzeMedia(context.Background(), MediaCommand{
		Credential: "  user-key  ",
		Files:      []domain.MediaFile{{Name: "a.mp4"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "user-key", fa.lastCredential)
}

func TestAnalyzeTextRequiresLinkOrText(t *testing.T) {
	svc := newService(&fakeAnalyzer{result: okResult()}, "key")

	_, err := svc.AnalyzeText(context.Background(), TextCommand{Link: "  ", Text: "\n"})
	assert.ErrorIs(t, err, domain.ErrNoTextInput)
}

func TestAnalyzeTextTrimsInput(t *testing.T) {
	fa := &fakeAnalyzer{result: okResult()}
	svc := newService(fa, "key")

	_, err := svc.AnalyzeText(context.Background(), TextCommand{
		Link: " https://evil.example ",
		Text: " act now ",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://evil.example", fa.lastText.Link)
	assert.Equal(t, "act now", fa.lastText.Text)
}

func TestAnalyzeTextPropagatesAnalyzerError(t *testing.T) {
	boom := errors.New("upstream down")
	svc := newService(&fakeAnalyzer{err: boom}, "key")

	_, err := svc.AnalyzeText(context.Background(), TextCommand{Link: "https://x.example"})
	assert.ErrorIs(t, err, boom)
}
