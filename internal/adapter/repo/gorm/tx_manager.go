package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a use-case closure inside one database transaction. The
// open tx rides the context, so repos invoked from the closure join it
// instead of issuing standalone statements.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
