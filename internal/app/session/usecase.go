package session

import (
	"context"
	"errors"
	"strings"

	"manorfall/internal/app/game"
	"manorfall/internal/app/ports"
)

var (
	ErrInvalidRequest = errors.New("invalid session request")
	ErrSessionExists  = errors.New("session already exists")
)

// UseCase wraps the pure reducer with persistence: load the session's
// snapshot, reduce, save with an optimistic version check. Dispatches carry
// an optional idempotency key; replays return the recorded snapshot without
// reducing again.
type UseCase struct {
	TxManager  ports.TxManager
	States     ports.GameStateRepository
	Dispatches ports.DispatchRepository
	Metrics    ports.DispatchMetrics
	Engine     game.Engine
}

func (u UseCase) NewGame(ctx context.Context, req NewGameRequest) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return Response{}, ErrInvalidRequest
	}
	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.States.GetBySessionID(txCtx, req.SessionID); err == nil {
			return ErrSessionExists
		} else if !errors.Is(err, ports.ErrNotFound) {
			return err
		}
		state, err := u.Engine.NewGame(req.SessionID)
		if err != nil {
			return err
		}
		if err := u.States.SaveWithVersion(txCtx, state, 0); err != nil {
			return err
		}
		out = Response{State: state}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u UseCase) Dispatch(ctx context.Context, req DispatchRequest) (Response, error) {
	if strings.TrimSpace(req.SessionID) == "" || req.Action.Type == "" {
		return Response{}, ErrInvalidRequest
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if req.IdempotencyKey != "" {
			record, err := u.Dispatches.GetByIdempotencyKey(txCtx, req.SessionID, req.IdempotencyKey)
			if err != nil && !errors.Is(err, ports.ErrNotFound) {
				return err
			}
			if record != nil {
				out = Response{State: record.State}
				return nil
			}
		}

		state, err := u.States.GetBySessionID(txCtx, req.SessionID)
		if err != nil {
			return err
		}
		expected := state.Version
		next := u.Engine.Reduce(state, req.Action)
		next.Version = expected + 1
		if err := u.States.SaveWithVersion(txCtx, next, expected); err != nil {
			return err
		}
		if req.IdempotencyKey != "" {
			record := ports.DispatchRecord{
				SessionID:      req.SessionID,
				IdempotencyKey: req.IdempotencyKey,
				ActionType:     string(req.Action.Type),
				State:          next,
				AppliedAt:      next.UpdatedAt,
			}
			if err := u.Dispatches.SaveDispatch(txCtx, record); err != nil {
				return err
			}
		}
		out = Response{State: next}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(string(req.Action.Type))
	}
	return out, nil
}
