package infra_memory_history

import (
	"context"
	"sync"

	"github.com/moviemind/core/internal/model"
)

// Store is an in-process conversation buffer used when no Redis is
// configured. Append-only per session.
type Store struct {
	mu    sync.RWMutex
	turns map[model.SessionID][]model.ConversationTurn
}

func New() *Store {
	return &Store{
		turns: make(map[model.SessionID][]model.ConversationTurn),
	}
}

func (s *Store) Append(ctx context.Context, sessionID model.SessionID, t model.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns[sessionID] = append(s.turns[sessionID], t)
	return nil
}

func (s *Store) Turns(ctx context.Context, sessionID model.SessionID) ([]model.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[sessionID]
	out := make([]model.ConversationTurn, len(turns))
	copy(out, turns)
	return out, nil
}
