package memory

import (
	"context"

	"manorfall/internal/app/ports"
	"manorfall/internal/domain/manor"
)

type GameStateRepo struct {
	store *Store
}

func NewGameStateRepo(store *Store) GameStateRepo {
	return GameStateRepo{store: store}
}

func (r GameStateRepo) GetBySessionID(ctx context.Context, sessionID string) (manor.GameState, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	state, ok := r.store.states[sessionID]
	if !ok {
		return manor.GameState{}, ports.ErrNotFound
	}
	return state.Clone(), nil
}

func (r GameStateRepo) SaveWithVersion(ctx context.Context, state manor.GameState, expectedVersion int64) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	current, ok := r.store.states[state.SessionID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.states[state.SessionID] = state.Clone()
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.states[state.SessionID] = state.Clone()
	return nil
}
