package observe

import (
	"context"
	"errors"
	"strings"
	"time"

	"manorfall/internal/app/ports"
	"manorfall/internal/app/stateview"
	"manorfall/internal/domain/manor"
)

var ErrInvalidRequest = errors.New("invalid observe request")

type Request struct {
	SessionID string `json:"session_id"`
}

type Response struct {
	State       manor.GameState             `json:"state"`
	Now         time.Time                   `json:"now"`
	Slots       []stateview.SlotSummary     `json:"slots"`
	Hand        []manor.CardInstance        `json:"hand"`
	Exploration []stateview.ExplorationNote `json:"exploration"`
}

// UseCase is the read side: a snapshot plus its selector projections,
// stamped with the server clock the countdowns were computed against.
type UseCase struct {
	States  ports.GameStateRepository
	Content *manor.Content
	Now     func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	state, err := u.States.GetBySessionID(ctx, req.SessionID)
	if err != nil {
		return Response{}, err
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()
	content := u.Content
	if content == nil {
		content = manor.DefaultContent()
	}
	return Response{
		State:       state,
		Now:         now,
		Slots:       stateview.SlotSummaries(state, now),
		Hand:        stateview.HandCards(state),
		Exploration: stateview.ExplorationAvailability(state, content),
	}, nil
}
