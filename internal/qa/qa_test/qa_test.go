package qa_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akolanti/FinDocAPI/internal/data/store"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/internal/qa"
	"github.com/akolanti/FinDocAPI/internal/session"
)

func loadedSession(t *testing.T, text string) *session.Context {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}

	sess := session.NewContext("qa-sess", store.InitInMemoryTranscriptStore())
	err := sess.Load(context.Background(), docModel.UploadedDocument{
		Name: "doc.txt",
		Kind: docModel.TextDoc,
		Path: path,
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return sess
}

func TestAsk_BeforeLoadFails(t *testing.T) {
	sess := session.NewContext("empty-sess", store.InitInMemoryTranscriptStore())
	s := qa.NewService(&MockProvider{})
	ctx := context.Background()

	_, err := s.Ask(ctx, sess, "what is the revenue?")
	if !errors.Is(err, docModel.ErrNoDocumentLoaded) {
		t.Fatalf("expected ErrNoDocumentLoaded, got %v", err)
	}

	turns, _ := sess.Transcript(ctx)
	if len(turns) != 0 {
		t.Errorf("transcript must stay empty, got %d turns", len(turns))
	}
}

func TestAsk_AppendsTurnsInCallOrder(t *testing.T) {
	sess := loadedSession(t, "Revenue: $1,200,000")
	ctx := context.Background()

	answers := map[string]string{
		"what is the revenue?": "Revenue is $1.2M.",
		"is it audited?":       "The document does not say.",
	}
	s := qa.NewService(&MockProvider{
		OnGenerate: func(ctx context.Context, prompt string) (string, error) {
			for q, a := range answers {
				if strings.Contains(prompt, q) {
					return a, nil
				}
			}
			return "", errors.New("unexpected prompt")
		},
	})

	first, err := s.Ask(ctx, sess, "what is the revenue?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	second, err := s.Ask(ctx, sess, "is it audited?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	if first != "Revenue is $1.2M." || second != "The document does not say." {
		t.Errorf("answers mismatch: %q / %q", first, second)
	}

	turns, err := sess.Transcript(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected exactly 2 turns, got %d", len(turns))
	}
	if turns[0].Question != "what is the revenue?" || turns[0].Answer != "Revenue is $1.2M." {
		t.Errorf("first turn mismatch: %+v", turns[0])
	}
	if turns[1].Question != "is it audited?" || turns[1].Answer != "The document does not say." {
		t.Errorf("second turn mismatch: %+v", turns[1])
	}
}

func TestAsk_UpstreamFailure(t *testing.T) {
	sess := loadedSession(t, "Revenue: 1")
	ctx := context.Background()

	s := qa.NewService(&MockProvider{
		OnGenerate: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("connection refused")
		},
	})

	_, err := s.Ask(ctx, sess, "anything?")
	if !errors.Is(err, docModel.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}

	turns, _ := sess.Transcript(ctx)
	if len(turns) != 0 {
		t.Errorf("failed ask must not touch the transcript, got %d turns", len(turns))
	}
}

func TestAsk_PromptEmbedsContentAndQuestion(t *testing.T) {
	sess := loadedSession(t, "Expenses (500,000)")
	ctx := context.Background()

	var captured string
	s := qa.NewService(&MockProvider{
		OnGenerate: func(ctx context.Context, prompt string) (string, error) {
			captured = prompt
			return "ok", nil
		},
	})

	if _, err := s.Ask(ctx, sess, "how much was spent?"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(captured, "Expenses (500,000)") {
		t.Error("prompt must embed the document content")
	}
	if !strings.Contains(captured, "how much was spent?") {
		t.Error("prompt must embed the literal question")
	}
}

func TestBuildPrompt_TruncatesLongContext(t *testing.T) {
	content := docModel.ExtractedContent{
		Kind: docModel.ContentText,
		Text: strings.Repeat("Revenue: 100\n", 10000),
	}

	prompt := qa.BuildPrompt(content, "q")
	if len(prompt) >= len(content.Text) {
		t.Error("oversized context must be truncated")
	}
	if !strings.Contains(prompt, "[document truncated]") {
		t.Error("truncation marker missing")
	}
}

func TestRenderContent_Tables(t *testing.T) {
	content := docModel.ExtractedContent{
		Kind: docModel.ContentTable,
		Tables: []docModel.Table{
			{
				Sheet:   "Balance",
				Headers: []string{"Item", "Amount"},
				Rows: [][]docModel.Cell{
					{{Raw: "Total Assets"}, {Raw: "2,400,000"}},
				},
			},
		},
	}

	rendered := qa.RenderContent(content)
	if !strings.Contains(rendered, "### Balance") {
		t.Error("sheet heading missing")
	}
	if !strings.Contains(rendered, "Item\tAmount") {
		t.Error("headers row missing")
	}
	if !strings.Contains(rendered, "Total Assets\t2,400,000") {
		t.Error("data row missing")
	}
}
