package ports

import (
	"context"
	"time"

	"manorfall/internal/domain/manor"
)

type GameStateRepository interface {
	GetBySessionID(ctx context.Context, sessionID string) (manor.GameState, error)
	SaveWithVersion(ctx context.Context, state manor.GameState, expectedVersion int64) error
}

// DispatchRecord captures one applied reducer dispatch for idempotent
// replay: re-sending the same key returns the recorded snapshot instead of
// reducing twice.
type DispatchRecord struct {
	SessionID      string
	IdempotencyKey string
	ActionType     string
	State          manor.GameState
	AppliedAt      time.Time
}

type DispatchRepository interface {
	GetByIdempotencyKey(ctx context.Context, sessionID, key string) (*DispatchRecord, error)
	SaveDispatch(ctx context.Context, record DispatchRecord) error
}
