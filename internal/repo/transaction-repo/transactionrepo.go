package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
	"github.com/Amitjang/XAlISS-SERVER/internal/schedule"
)

const (
	uniqueViolation      = "23505"
	collectionConstraint = "transactions_contract_due_date_uidx"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// IsCollected reports whether any transaction tagged with the contract was
// created during the calendar day of dueDate.
func (r *Repository) IsCollected(ctx context.Context, contractID int64, dueDate time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM transactions
            WHERE contract_id = $1 AND created_at >= $2 AND created_at <= $3
        )
    `
	var done bool
	err := r.db.QueryRow(ctx, query, contractID, schedule.StartOfDay(dueDate), schedule.EndOfDay(dueDate)).Scan(&done)
	if err != nil {
		zap.L().Error("can't check collection", zap.Int64("contract_id", contractID), zap.Error(err))
		return false, domain.NewPersistenceError("check collection", err)
	}
	return done, nil
}

// SumForContract adds up amounts of transactions tagged with the contract and
// created in [from, to).
func (r *Repository) SumForContract(ctx context.Context, contractID int64, from, to time.Time) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE contract_id = $1 AND created_at >= $2 AND created_at < $3
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, contractID, from, to).Scan(&total); err != nil {
		zap.L().Error("can't sum contract transactions", zap.Int64("contract_id", contractID), zap.Error(err))
		return decimal.Zero, domain.NewPersistenceError("sum transactions", err)
	}
	return total, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `
        INSERT INTO transactions (amount, sender_type, sender_id, receiver_type, receiver_id, contract_id, due_date, kind, ledger_ref, memo)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, t.Amount,
		string(t.Sender.Kind), t.Sender.ID, string(t.Receiver.Kind), t.Receiver.ID,
		t.ContractID, t.DueDate, string(t.Kind), t.LedgerRef, t.Memo,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == collectionConstraint &&
			t.ContractID != nil && t.DueDate != nil {
			return &domain.AlreadyCollectedError{ContractID: *t.ContractID, DueDate: *t.DueDate}
		}
		zap.L().Error("can't save transaction", zap.Error(err))
		return domain.NewPersistenceError("save transaction", err)
	}
	return nil
}
