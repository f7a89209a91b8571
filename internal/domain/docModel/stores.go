package docModel

import "context"

// TranscriptStore persists the per-session conversation transcript. Backed by
// Redis when it is reachable, by process memory otherwise.
type TranscriptStore interface {
	Init(ctx context.Context, sessionId string) error
	Append(ctx context.Context, sessionId string, turn ConversationTurn) error
	History(ctx context.Context, sessionId string) ([]ConversationTurn, error)
	Clear(ctx context.Context, sessionId string) error
}
