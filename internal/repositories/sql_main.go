// Package repositories persists parsed message records to PostgreSQL.
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	log     *zap.Logger
	common  sqlRepo

	mr *messageRepository
}

func NewSQLRepository(dbWrite, dbRead *sql.DB, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		log:     log,
	}
	rtx.common.r = rtx
	rtx.mr = (*messageRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetMessageRepository() MessageRepository
}

var _ SQLRepository = (*Repository)(nil)

// Atomic runs steps inside one database transaction, committing on success
// and rolling back on error or panic.
func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			r.log.Error("database transaction panic", zap.Error(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			r.log.Warn("database transaction rollback", zap.Error(err))
		} else {
			if err = tx.Commit(); err != nil && errors.Is(err, sql.ErrTxDone) {
				err = nil
			}
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetMessageRepository() MessageRepository {
	return r.mr
}
