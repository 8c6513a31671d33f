package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"google.golang.org/genai"

	domain "github.com/bryanwahyu/scrutinizer/internal/domain/analysis"
	"github.com/bryanwahyu/scrutinizer/internal/infra/ai/prompt"
)

// Client adapts the hosted Gemini endpoint to the domain Analyzer port. The
// credential is supplied per call, so the SDK client is built per request and
// nothing is shared across invocations.
type Client struct {
	Model string
}

func NewClient(model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{Model: model}
}

// AnalyzeMedia bundles the whole batch into one call: instructional prompt,
// optional context notes, then the media parts in upload order. Code
// execution is skipped on this path to avoid MIME restrictions in that tool.
func (c *Client) AnalyzeMedia(ctx context.Context, credential string, in domain.MediaInput) (*domain.Result, error) {
	cli, err := c.connect(ctx, credential)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(in.Files))
	for i, f := range in.Files {
		labels[i] = prompt.MediaLabel(i, f.Name)
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt.GetMediaPrompt(labels))}
	if in.ContextNotes != "" {
		parts = append(parts, genai.NewPartFromText(prompt.GetContextPrompt(in.ContextNotes)))
	}
	for _, f := range in.Files {
		parts = append(parts, c.mediaPart(ctx, cli, f))
	}

	return c.generate(ctx, cli, parts, false)
}

// AnalyzeText sends the instructional prompt plus the user artifacts block.
// Both Google Search and code execution are enabled on this path.
func (c *Client) AnalyzeText(ctx context.Context, credential string, in domain.TextInput) (*domain.Result, error) {
	cli, err := c.connect(ctx, credential)
	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt.GetTextPrompt()),
		genai.NewPartFromText(prompt.GetTextPayload(in.Link, in.Text)),
	}

	return c.generate(ctx, cli, parts, true)
}

func (c *Client) connect(ctx context.Context, credential string) (*genai.Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  credential,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return cli, nil
}

// mediaPart turns one uploaded file into a content part. When a MIME type can
// be inferred from the filename, the bytes go to the files API and the part
// carries the returned reference; an upload failure falls back to inline
// bytes. Files without an inferable type bypass the files API entirely.
func (c *Client) mediaPart(ctx context.Context, cli *genai.Client, f domain.MediaFile) *genai.Part {
	guessed := mime.TypeByExtension(filepath.Ext(f.Name))
	if guessed != "" {
		file, err := cli.Files.Upload(ctx, bytes.NewReader(f.Data), &genai.UploadFileConfig{
			MIMEType:    guessed,
			DisplayName: f.Name,
		})
		if err == nil {
			return genai.NewPartFromURI(file.URI, file.MIMEType)
		}
		log.Printf("files api upload failed for %s, sending inline bytes: %v", f.Name, err)
		return genai.NewPartFromBytes(f.Data, guessed)
	}

	mimeType := f.DeclaredMIME
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return genai.NewPartFromBytes(f.Data, mimeType)
}

// generate issues the single synchronous call and normalizes the response.
// Transport failures are terminal for the request; there is no retry.
func (c *Client) generate(ctx context.Context, cli *genai.Client, parts []*genai.Part, includeCodeExecution bool) (*domain.Result, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := cli.Models.GenerateContent(ctx, c.Model, contents, BuildConfig(includeCodeExecution))
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %s", domain.ErrQuotaExceeded, apiErr.Message)
		}
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	res := Normalize(resp)
	for _, warn := range res.Warnings {
		log.Printf("analysis warning: %s", warn)
	}
	return res, nil
}
