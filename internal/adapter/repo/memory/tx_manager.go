package memory

import "context"

// TxManager serializes whole use-case closures on the store's write lock and
// marks the context so repo calls inside the closure skip their own locking.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(withTx(ctx))
}
