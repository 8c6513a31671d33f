package middleware

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Input validation and sanitization utilities

// allowedMediaExtensions lists the upload types the analysis pipeline accepts.
var allowedMediaExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateLink validates and sanitizes user-submitted links
func ValidateLink(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("link cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid link format: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid link scheme: %s (allowed: http, https)", u.Scheme)
	}

	if u.Hostname() == "" {
		return fmt.Errorf("link is missing a host")
	}

	return nil
}

// ValidateMediaFilename checks the upload extension against the allowed list
func ValidateMediaFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Block path traversal in uploaded names
	if strings.Contains(name, "..") || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("invalid characters in filename")
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !allowedMediaExtensions[ext] {
		return fmt.Errorf("unsupported media type: %s (allowed: mp4, mov, mkv, webm, mp3, wav, m4a, jpg, jpeg, png)", ext)
	}

	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}
