package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"manorfall/internal/adapter/repo/gorm/model"
	"manorfall/internal/app/ports"
	"manorfall/internal/domain/manor"

	"gorm.io/gorm"
)

type DispatchRepo struct {
	db *gorm.DB
}

func NewDispatchRepo(db *gorm.DB) DispatchRepo {
	return DispatchRepo{db: db}
}

func (r DispatchRepo) GetByIdempotencyKey(ctx context.Context, sessionID, key string) (*ports.DispatchRecord, error) {
	var row model.DispatchRow
	err := getDBFromCtx(ctx, r.db).
		Where("session_id = ? AND idempotency_key = ?", sessionID, key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var state manor.GameState
	if err := json.Unmarshal(row.Snapshot, &state); err != nil {
		return nil, err
	}
	return &ports.DispatchRecord{
		SessionID:      row.SessionID,
		IdempotencyKey: row.IdempotencyKey,
		ActionType:     row.ActionType,
		State:          state,
		AppliedAt:      row.AppliedAt,
	}, nil
}

func (r DispatchRepo) SaveDispatch(ctx context.Context, record ports.DispatchRecord) error {
	snapshot, err := json.Marshal(record.State)
	if err != nil {
		return err
	}
	row := model.DispatchRow{
		SessionID:      record.SessionID,
		IdempotencyKey: record.IdempotencyKey,
		ActionType:     record.ActionType,
		Snapshot:       snapshot,
		AppliedAt:      record.AppliedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}
