package tr

import (
	"context"

	"github.com/DRSN-tech/soares-modas/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txKey struct{}

// Querier — общее подмножество pgx.Tx и pgxpool.Pool.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Manager выполняет функцию в рамках одной транзакции.
type Manager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// PgxManager открывает транзакции поверх пула pgx.
type PgxManager struct {
	db transaction.Transactional
}

func NewPgxManager(db transaction.Transactional) *PgxManager {
	return &PgxManager{db: db}
}

// Do открывает транзакцию, кладёт её в контекст и коммитит после успешного fn.
// При ошибке транзакция откатывается.
func (m *PgxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	const op = "PgxManager.Do"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, m.db)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	pgxTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		return e.Wrap(op, e.ErrTransactionNotFound)
	}

	if err = fn(context.WithValue(ctx, txKey{}, pgxTx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}

// TxOrPool возвращает транзакцию из контекста, если она есть, иначе пул.
func TxOrPool(ctx context.Context, pool Querier) Querier {
	if tx, err := TxFromCtx(ctx); err == nil {
		return tx
	}
	return pool
}
