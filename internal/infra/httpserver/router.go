package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/bryanwahyu/scrutinizer/internal/application/analysis"
	domain "github.com/bryanwahyu/scrutinizer/internal/domain/analysis"
	"github.com/bryanwahyu/scrutinizer/internal/middleware"
	"github.com/bryanwahyu/scrutinizer/internal/presentation"
	"github.com/bryanwahyu/scrutinizer/internal/status"
)

type Router struct {
	svc         *appanalysis.Service
	maxUploadMB int
}

// Options tunes request limits and rate limiting for the router.
type Options struct {
	MaxUploadMB   int
	RatePerMinute int
	Burst         int
}

func NewRouter(svc *appanalysis.Service, opts Options) http.Handler {
	r := &Router{svc: svc, maxUploadMB: opts.MaxUploadMB}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Gemini-Key"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.CredentialMiddleware)
	if opts.RatePerMinute > 0 {
		mux.Use(middleware.RateLimitMiddleware(opts.Burst, opts.RatePerMinute))
	}

	mux.Get("/", r.handleIndex)
	mux.Get("/health", middleware.HealthHandler(nil))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/analyze/media", r.wrap(r.handleAnalyzeMedia))
		rt.Post("/analyze/text", r.wrap(r.handleAnalyzeText))
		rt.Get("/forensic/status", r.wrap(r.handleForensicStatus))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequest marks caller mistakes so wrap maps them to 400.
type badRequest struct{ err error }

func (b badRequest) Error() string { return b.err.Error() }
func (b badRequest) Unwrap() error { return b.err }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			var br badRequest
			switch {
			case errors.As(err, &br),
				errors.Is(err, domain.ErrNoMediaFiles),
				errors.Is(err, domain.ErrNoTextInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, domain.ErrMissingCredential):
				http.Error(w, "missing gemini api key: supply X-Gemini-Key or configure a server key", http.StatusUnauthorized)
			case errors.Is(err, domain.ErrQuotaExceeded):
				middleware.IncrementAnalysesFailed()
				http.Error(w, "gemini quota exceeded, try again later", http.StatusTooManyRequests)
			default:
				middleware.IncrementAnalysesFailed()
				http.Error(w, err.Error(), http.StatusBadGateway)
			}
		}
	}
}

// analyzeResponse is the envelope for both analyze endpoints: the raw
// normalized analysis plus a server-rendered HTML fragment for the page.
type analyzeResponse struct {
	ID         string         `json:"id"`
	AnalyzedAt string         `json:"analyzed_at"`
	DurationMS int64          `json:"duration_ms"`
	Analysis   *domain.Result `json:"analysis"`
	HTML       string         `json:"html"`
	Degraded   bool           `json:"degraded,omitempty"`
	Warnings   []string       `json:"warnings,omitempty"`
}

func (r *Router) writeReport(w http.ResponseWriter, rep *appanalysis.Report) error {
	middleware.IncrementAnalyses()
	if rep.Analysis.Degraded {
		middleware.IncrementAnalysesDegraded()
	}

	view := presentation.Build(rep.Analysis)
	resp := analyzeResponse{
		ID:         rep.ID,
		AnalyzedAt: rep.AnalyzedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		DurationMS: rep.DurationMS,
		Analysis:   rep.Analysis,
		HTML:       view.HTMLFragment(),
		Degraded:   rep.Analysis.Degraded,
		Warnings:   rep.Analysis.Warnings,
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(resp)
}

// POST /v1/analyze/media
// multipart/form-data: files[] (one or more), context (optional free text)
func (r *Router) handleAnalyzeMedia(w http.ResponseWriter, req *http.Request) error {
	maxBytes := int64(r.maxUploadMB) << 20
	req.Body = http.MaxBytesReader(w, req.Body, maxBytes)

	if err := req.ParseMultipartForm(maxBytes); err != nil {
		return badRequest{fmt.Errorf("invalid multipart form: %w", err)}
	}

	cred := middleware.GetCredentialFromContext(req.Context())
	if cred == "" {
		cred = req.FormValue("api_key")
	}

	var files []domain.MediaFile
	if req.MultipartForm != nil {
		for _, fh := range req.MultipartForm.File["files"] {
			if err := middleware.ValidateMediaFilename(fh.Filename); err != nil {
				return badRequest{err}
			}
			f, err := fh.Open()
			if err != nil {
				return badRequest{fmt.Errorf("open upload %s: %w", fh.Filename, err)}
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return badRequest{fmt.Errorf("read upload %s: %w", fh.Filename, err)}
			}
			files = append(files, domain.MediaFile{
				Name:         fh.Filename,
				DeclaredMIME: fh.Header.Get("Content-Type"),
				Data:         data,
			})
		}
	}

	rep, err := r.svc.AnalyzeMedia(req.Context(), appanalysis.MediaCommand{
		Credential:   cred,
		Files:        files,
		ContextNotes: middleware.SanitizeString(req.FormValue("context")),
	})
	if err != nil {
		return err
	}
	return r.writeReport(w, rep)
}

// POST /v1/analyze/text
// Body: {"link": "...", "text": "..."} (at least one required)
func (r *Router) handleAnalyzeText(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Link string `json:"link"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest{fmt.Errorf("invalid json body: %w", err)}
	}

	if body.Link != "" {
		if err := middleware.ValidateLink(body.Link); err != nil {
			return badRequest{err}
		}
	}

	rep, err := r.svc.AnalyzeText(req.Context(), appanalysis.TextCommand{
		Credential: middleware.GetCredentialFromContext(req.Context()),
		Link:       body.Link,
		Text:       middleware.SanitizeString(body.Text),
	})
	if err != nil {
		return err
	}
	return r.writeReport(w, rep)
}

// GET /v1/forensic/status
// Polled by the page while an analysis request is in flight.
func (r *Router) handleForensicStatus(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]string{
		"message": status.Message(),
		"tip":     status.Tip(),
	})
}

// GET /
func (r *Router) handleIndex(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}
