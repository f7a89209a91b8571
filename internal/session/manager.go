package session

import (
	"context"
	"sync"

	"github.com/akolanti/FinDocAPI/internal/domain/docModel"
	"github.com/akolanti/FinDocAPI/internal/metrics"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
	"github.com/google/uuid"
)

// Manager is the registry of live sessions. The lock protects registry
// membership only; each Context is owned by one request at a time.
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]*Context
	transcripts docModel.TranscriptStore
	logger      *logger_i.Logger
}

func NewManager(transcripts docModel.TranscriptStore) *Manager {
	return &Manager{
		sessions:    make(map[string]*Context),
		transcripts: transcripts,
		logger:      logger_i.NewLogger("SessionManager"),
	}
}

func (m *Manager) Create(ctx context.Context) (*Context, error) {
	id := uuid.New().String()
	sess := NewContext(id, m.transcripts)

	if err := m.transcripts.Init(ctx, id); err != nil {
		m.logger.Error("Failed initializing transcript", "session Id", id, "error", err)
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	metrics.IncrementActiveSessions()
	m.logger.Info("Created session", "session Id", id)
	return sess, nil
}

func (m *Manager) Get(id string) (*Context, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}
