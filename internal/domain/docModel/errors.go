package docModel

import "errors"

// Extraction and Q&A failure taxonomy. Callers test with errors.Is; lower
// layers wrap these with the underlying cause.
var (
	ErrUnsupportedFormat   = errors.New("unsupported document format")
	ErrCorruptDocument     = errors.New("document could not be parsed")
	ErrNoDocumentLoaded    = errors.New("no document loaded")
	ErrUpstreamUnavailable = errors.New("language model service unavailable")
)
