package historyrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
)

// MaxErrorLen matches the width of the error column.
const MaxErrorLen = 300

type table struct {
	name       string
	partyCol   string
	percentCol string
}

var (
	feesTable  = table{name: "fees_history", partyCol: "user_id", percentCol: "fees_percentage"}
	bonusTable = table{name: "bonus_history", partyCol: "agent_id", percentCol: "bonus_percentage"}
)

// tableFor picks fees_history for users and bonus_history for agents.
func tableFor(p domain.Party) (table, error) {
	switch p.Kind {
	case domain.PartyUser:
		return feesTable, nil
	case domain.PartyAgent:
		return bonusTable, nil
	default:
		return table{}, fmt.Errorf("no history table for party kind %q", p.Kind)
	}
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Find returns the record for the contract, counterparty and month-end date,
// or nil when no step has been attempted yet.
func (r *Repository) Find(ctx context.Context, contractID int64, counterparty domain.Party, monthEnd time.Time) (*domain.MonthlyRecord, error) {
	t, err := tableFor(counterparty)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
        SELECT id, saving_type, %s, total_amount, amount, payment_status, error, created_at, updated_at
        FROM %s
        WHERE contract_id = $1 AND %s = $2 AND date = $3
    `, t.percentCol, t.name, t.partyCol)

	rec := domain.MonthlyRecord{ContractID: contractID, Counterparty: counterparty, MonthEnd: monthEnd}
	var savingType string
	err = r.db.QueryRow(ctx, query, contractID, counterparty.ID, monthEnd).Scan(
		&rec.ID, &savingType, &rec.Percentage, &rec.TotalAmount, &rec.Amount, &rec.Settled, &rec.Error,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't read history", zap.String("table", t.name), zap.Int64("contract_id", contractID), zap.Error(err))
		return nil, domain.NewPersistenceError("read "+t.name, err)
	}
	rec.SavingType = domain.Cadence(savingType)
	return &rec, nil
}

// Upsert writes the outcome of one month-end step. A rerun overwrites amounts,
// status and error of the existing row.
func (r *Repository) Upsert(ctx context.Context, rec *domain.MonthlyRecord) error {
	t, err := tableFor(rec.Counterparty)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
        INSERT INTO %[1]s (contract_id, %[2]s, date, saving_type, %[3]s, total_amount, amount, payment_status, error)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (contract_id, %[2]s, date) DO UPDATE
        SET %[3]s = EXCLUDED.%[3]s,
            total_amount = EXCLUDED.total_amount,
            amount = EXCLUDED.amount,
            payment_status = EXCLUDED.payment_status,
            error = EXCLUDED.error,
            updated_at = now()
        RETURNING id, created_at, updated_at
    `, t.name, t.partyCol, t.percentCol)

	rec.Error = Truncate(rec.Error)
	err = r.db.QueryRow(ctx, query, rec.ContractID, rec.Counterparty.ID, rec.MonthEnd, string(rec.SavingType),
		rec.Percentage, rec.TotalAmount, rec.Amount, rec.Settled, rec.Error,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		zap.L().Error("can't upsert history", zap.String("table", t.name), zap.Int64("contract_id", rec.ContractID), zap.Error(err))
		return domain.NewPersistenceError("upsert "+t.name, err)
	}
	return nil
}

// Truncate cuts s to MaxErrorLen runes.
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxErrorLen {
		return s
	}
	return string(r[:MaxErrorLen])
}
