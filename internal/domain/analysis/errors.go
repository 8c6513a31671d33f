package analysis

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// Pre-flight validation errors. These are reported to the user before any
// request is issued.
var (
	ErrMissingCredential = errors.New("missing gemini api key")
	ErrNoMediaFiles      = errors.New("at least one media file is required")
	ErrNoTextInput       = errors.New("at least a link or some text is required")
)
