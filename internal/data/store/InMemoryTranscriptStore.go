package store

import (
	"context"
	"sync"

	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem TranscriptStore")

type InMemoryTranscriptStore struct {
	mu    *sync.RWMutex
	turns map[string][]docModel.ConversationTurn
}

func InitInMemoryTranscriptStore() *InMemoryTranscriptStore {
	return &InMemoryTranscriptStore{
		mu:    new(sync.RWMutex),
		turns: make(map[string][]docModel.ConversationTurn),
	}
}

func (s *InMemoryTranscriptStore) Init(ctx context.Context, sessionId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[sessionId] = make([]docModel.ConversationTurn, 0)
	return nil
}

func (s *InMemoryTranscriptStore) Append(ctx context.Context, sessionId string, turn docModel.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[sessionId] = append(s.turns[sessionId], turn)
	inMemLogger.Debug("Saved turn", "session Id", sessionId)
	return nil
}

func (s *InMemoryTranscriptStore) History(ctx context.Context, sessionId string) ([]docModel.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.turns[sessionId]
	out := make([]docModel.ConversationTurn, len(stored))
	copy(out, stored)
	return out, nil
}

func (s *InMemoryTranscriptStore) Clear(ctx context.Context, sessionId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.turns, sessionId)
	return nil
}
