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

type GameStateRepo struct {
	db *gorm.DB
}

func NewGameStateRepo(db *gorm.DB) GameStateRepo {
	return GameStateRepo{db: db}
}

func (r GameStateRepo) GetBySessionID(ctx context.Context, sessionID string) (manor.GameState, error) {
	var row model.GameStateRow
	if err := getDBFromCtx(ctx, r.db).Where("session_id = ?", sessionID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return manor.GameState{}, ports.ErrNotFound
		}
		return manor.GameState{}, err
	}
	var state manor.GameState
	if err := json.Unmarshal(row.Snapshot, &state); err != nil {
		return manor.GameState{}, err
	}
	state.SessionID = sessionID
	state.Version = row.Version
	return state, nil
}

func (r GameStateRepo) SaveWithVersion(ctx context.Context, state manor.GameState, expectedVersion int64) error {
	snapshot, err := json.Marshal(state)
	if err != nil {
		return err
	}
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		row := model.GameStateRow{
			SessionID: state.SessionID,
			Snapshot:  snapshot,
			Version:   state.Version,
			UpdatedAt: state.UpdatedAt,
		}
		return db.Create(&row).Error
	}

	res := db.Model(&model.GameStateRow{}).
		Where("session_id = ? AND version = ?", state.SessionID, expectedVersion).
		Updates(map[string]any{
			"snapshot":   snapshot,
			"version":    state.Version,
			"updated_at": state.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}
