package session

import (
	"manorfall/internal/app/game"
	"manorfall/internal/domain/manor"
)

type NewGameRequest struct {
	SessionID string `json:"session_id"`
}

type DispatchRequest struct {
	SessionID      string      `json:"session_id"`
	IdempotencyKey string      `json:"idempotency_key,omitempty"`
	Action         game.Action `json:"action"`
}

type Response struct {
	State manor.GameState `json:"state"`
}
