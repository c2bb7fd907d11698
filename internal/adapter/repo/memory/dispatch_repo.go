package memory

import (
	"context"

	"manorfall/internal/app/ports"
)

type DispatchRepo struct {
	store *Store
}

func NewDispatchRepo(store *Store) DispatchRepo {
	return DispatchRepo{store: store}
}

func (r DispatchRepo) GetByIdempotencyKey(ctx context.Context, sessionID, key string) (*ports.DispatchRecord, error) {
	if !inTx(ctx) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	record, ok := r.store.dispatches[dispatchKey(sessionID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := record
	return &copy, nil
}

func (r DispatchRepo) SaveDispatch(ctx context.Context, record ports.DispatchRecord) error {
	if !inTx(ctx) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	k := dispatchKey(record.SessionID, record.IdempotencyKey)
	if _, exists := r.store.dispatches[k]; exists {
		return ports.ErrConflict
	}
	r.store.dispatches[k] = record
	return nil
}
