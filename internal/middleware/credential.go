package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	// CredentialKey holds the caller-supplied Gemini API key for this request.
	CredentialKey contextKey = "gemini_key"
)

// CredentialMiddleware extracts the per-request Gemini API key and stores it
// in the request context. The key never touches logs or metrics. Requests
// without a key pass through; the application layer decides whether a
// server-side fallback applies.
func CredentialMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(r.Header.Get("X-Gemini-Key"))
		if key == "" {
			// Multipart forms are parsed later by the handler; FormValue is
			// safe to call here only for urlencoded bodies, so limit the
			// fallback to the query string.
			key = strings.TrimSpace(r.URL.Query().Get("api_key"))
		}

		if key != "" {
			ctx := context.WithValue(r.Context(), CredentialKey, key)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

// GetCredentialFromContext extracts the Gemini API key from context
func GetCredentialFromContext(ctx context.Context) string {
	if key, ok := ctx.Value(CredentialKey).(string); ok {
		return key
	}
	return ""
}
