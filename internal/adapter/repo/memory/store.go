package memory

import (
	"sync"

	"manorfall/internal/app/ports"
	"manorfall/internal/domain/manor"
)

// Store keeps whole sessions in process memory: the dev-mode and test
// backend. The tx manager's lock doubles as the transaction boundary; repo
// calls made outside a transaction take the lock for themselves.
type Store struct {
	mu         sync.RWMutex
	states     map[string]manor.GameState
	dispatches map[string]ports.DispatchRecord
}

func NewStore() *Store {
	return &Store{
		states:     make(map[string]manor.GameState),
		dispatches: make(map[string]ports.DispatchRecord),
	}
}

func dispatchKey(sessionID, key string) string {
	return sessionID + "::" + key
}

func (s *Store) SeedState(state manor.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.SessionID] = state
}
