package repository

import (
	"context"

	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"gorm.io/gorm"
)

type txKey struct{}

// gormTransactor implements domain.Transactor using GORM transactions.
type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor bound to db.
func NewTransactor(db *gorm.DB) domain.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction runs fn in a transaction carried by ctx. Nested calls join the outer transaction.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction stored in ctx, or db bound to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
