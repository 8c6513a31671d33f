package analysis

import "context"

// Analyzer port for the hosted inference endpoint. Implementations build one
// request configuration per call, issue a single synchronous generate-content
// call, and normalize whatever shape comes back into a Result.
type Analyzer interface {
	AnalyzeMedia(ctx context.Context, credential string, in MediaInput) (*Result, error)
	AnalyzeText(ctx context.Context, credential string, in TextInput) (*Result, error)
}
