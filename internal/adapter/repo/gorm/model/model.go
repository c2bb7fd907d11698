package model

import "time"

// GameStateRow stores one session's snapshot as opaque JSON. The reducer
// core never sees these rows; it hands over a serializable aggregate and the
// repo treats it as a blob plus a version for optimistic locking.
type GameStateRow struct {
	SessionID string    `gorm:"column:session_id;primaryKey"`
	Snapshot  []byte    `gorm:"column:snapshot;type:jsonb"`
	Version   int64     `gorm:"column:version"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (GameStateRow) TableName() string { return "game_states" }

type DispatchRow struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID      string    `gorm:"column:session_id"`
	IdempotencyKey string    `gorm:"column:idempotency_key"`
	ActionType     string    `gorm:"column:action_type"`
	Snapshot       []byte    `gorm:"column:snapshot;type:jsonb"`
	AppliedAt      time.Time `gorm:"column:applied_at"`
}

func (DispatchRow) TableName() string { return "dispatches" }
