package session

import (
	"context"
	"time"

	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/internal/extract"
	"github.com/akolanti/FinDocAPI/internal/finmetrics"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
)

type extractFunc func(docModel.UploadedDocument) (docModel.ExtractedContent, error)

// Context owns one user's session: the currently loaded content, the metric
// record derived from it, and the transcript. One session is driven by one
// request at a time; there is no internal locking because there is no sharing.
type Context struct {
	id            string
	content       docModel.ExtractedContent
	metrics       docModel.MetricRecord
	loaded        bool
	transcripts   docModel.TranscriptStore
	clearOnUpload bool
	extractFn     extractFunc
	logger        *logger_i.Logger
}

func NewContext(id string, transcripts docModel.TranscriptStore) *Context {
	return newContextWithExtractor(id, transcripts, extract.Extract)
}

func newContextWithExtractor(id string, transcripts docModel.TranscriptStore, fn extractFunc) *Context {
	return &Context{
		id:            id,
		transcripts:   transcripts,
		clearOnUpload: config.ClearTranscriptOnUpload,
		extractFn:     fn,
		logger:        logger_i.NewLogger("Session").With("session Id", id),
	}
}

func (c *Context) ID() string {
	return c.id
}

// Load extracts the document, derives its metric record, and replaces the
// session content. On extraction failure the previously loaded content and
// metrics stay in place, so a failed re-upload does not destroy a working
// session.
func (c *Context) Load(ctx context.Context, doc docModel.UploadedDocument) error {
	content, err := c.extractFn(doc)
	if err != nil {
		c.logger.Error("Load failed, keeping previous content", "doc", doc.Name, "error", err)
		return err
	}

	c.content = content
	c.metrics = finmetrics.Detect(content)
	c.loaded = true

	if c.clearOnUpload {
		if err := c.transcripts.Init(ctx, c.id); err != nil {
			c.logger.Error("Failed to reset transcript", "error", err)
		}
	}
	c.logger.Info("Document loaded", "doc", doc.Name, "kind", content.Kind, "metrics detected", c.metrics.Len())
	return nil
}

// Content returns the currently loaded content, or ErrNoDocumentLoaded before
// the first successful Load.
func (c *Context) Content() (docModel.ExtractedContent, error) {
	if !c.loaded {
		return docModel.ExtractedContent{}, docModel.ErrNoDocumentLoaded
	}
	return c.content, nil
}

// Metrics is always derived from the currently loaded content - never stale
// across a reload.
func (c *Context) Metrics() (docModel.MetricRecord, error) {
	if !c.loaded {
		return docModel.MetricRecord{}, docModel.ErrNoDocumentLoaded
	}
	return c.metrics, nil
}

func (c *Context) AppendTurn(ctx context.Context, question string, answer string) error {
	if !c.loaded {
		return docModel.ErrNoDocumentLoaded
	}
	return c.transcripts.Append(ctx, c.id, docModel.ConversationTurn{
		Question: question,
		Answer:   answer,
		AskedAt:  time.Now().UTC(),
	})
}

func (c *Context) Transcript(ctx context.Context) ([]docModel.ConversationTurn, error) {
	return c.transcripts.History(ctx, c.id)
}
