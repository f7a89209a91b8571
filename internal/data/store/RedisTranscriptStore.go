package store

import (
	"context"
	"encoding/json"

	"github.com/akolanti/FinDocAPI/internal/config"
	"github.com/akolanti/FinDocAPI/internal/data/redisStore"
	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
)

type RedisTranscriptStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisTranscriptStore returns nil when Redis is offline; main falls back
// to the in-memory store.
func GetRedisTranscriptStore(ctx context.Context) *RedisTranscriptStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisTranscriptStore)
	if inner == nil {
		return nil
	}
	return &RedisTranscriptStore{
		store:  inner,
		logger: logger_i.NewLogger("TranscriptStore"),
	}
}

func (s *RedisTranscriptStore) Init(ctx context.Context, sessionId string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sessionId)
	log.Debug("Initializing transcript")
	return s.store.Del(ctx, sessionId)
}

func (s *RedisTranscriptStore) Append(ctx context.Context, sessionId string, turn docModel.ConversationTurn) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sessionId)

	data, err := json.Marshal(turn)
	if err != nil {
		log.Error("Error marshalling turn", "error", err)
		return err
	}
	if err := s.store.ListPush(ctx, sessionId, data); err != nil {
		log.Error("error saving turn", "error", err)
		return err
	}
	log.Debug("Saved turn")
	return s.store.Expire(ctx, sessionId, config.RedisTranscriptStoreTTL)
}

func (s *RedisTranscriptStore) History(ctx context.Context, sessionId string) ([]docModel.ConversationTurn, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sessionId)
	log.Debug("Getting transcript")

	raw, err := s.store.ListGetAll(ctx, sessionId)
	if err != nil {
		log.Error("Error getting transcript", "error", err)
		return nil, err
	}

	turns := make([]docModel.ConversationTurn, 0, len(raw))
	for _, item := range raw {
		var turn docModel.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			log.Error("Skipping malformed turn", "error", err)
			continue
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *RedisTranscriptStore) Clear(ctx context.Context, sessionId string) error {
	return s.store.Del(ctx, sessionId)
}

// TestTranscriptStore wires an externally-owned store; only for tests.
func TestTranscriptStore(inner *redisStore.Store) *RedisTranscriptStore {
	return &RedisTranscriptStore{
		store:  inner,
		logger: logger_i.NewLogger("test transcript store"),
	}
}
