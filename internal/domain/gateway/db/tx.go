package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager runs a unit of work inside one database transaction. Gateways
// called with the context handed to fn share that transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type GormTxManager struct {
	DB *gorm.DB
}

var _ TxManager = (*GormTxManager)(nil)

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{DB: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// A nested call joins the transaction already present in ctx.
func (manager *GormTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return manager.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or db scoped to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
