package contractrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
)

const contractColumns = `id, user_id, agent_id, saving_type, amount, duration, first_payment_date, end_date, address, comment, is_cancelled, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanContract(row pgx.Row) (domain.Contract, error) {
	var c domain.Contract
	var savingType string
	err := row.Scan(&c.ID, &c.UserID, &c.AgentID, &savingType, &c.Amount, &c.Duration,
		&c.FirstPaymentDate, &c.EndDate, &c.Address, &c.Comment, &c.IsCancelled, &c.CreatedAt)
	c.SavingType = domain.Cadence(savingType)
	return c, err
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`

	c, err := scanContract(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't find contract", zap.Int64("contract_id", id), zap.Error(err))
		return nil, domain.NewPersistenceError("find contract", err)
	}
	return &c, nil
}

// FindActive lists contracts that are not cancelled and whose end date is on
// or after today.
func (r *Repository) FindActive(ctx context.Context, today time.Time) ([]domain.Contract, error) {
	query := `
        SELECT ` + contractColumns + `
        FROM contracts
        WHERE is_cancelled = FALSE AND end_date >= $1
        ORDER BY id
    `
	return r.list(ctx, "find active contracts", query, today)
}

func (r *Repository) FindActiveByAgent(ctx context.Context, agentID int64, today time.Time) ([]domain.Contract, error) {
	query := `
        SELECT ` + contractColumns + `
        FROM contracts
        WHERE agent_id = $1 AND is_cancelled = FALSE AND end_date >= $2
        ORDER BY id
    `
	return r.list(ctx, "find agent contracts", query, agentID, today)
}

func (r *Repository) list(ctx context.Context, op, query string, args ...any) ([]domain.Contract, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query contracts", zap.String("op", op), zap.Error(err))
		return nil, domain.NewPersistenceError(op, err)
	}
	defer rows.Close()

	contracts := make([]domain.Contract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			zap.L().Error("can't scan contract row", zap.String("op", op), zap.Error(err))
			return nil, domain.NewPersistenceError(op, err)
		}
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError(op, err)
	}
	return contracts, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Contract) error {
	query := `
        INSERT INTO contracts (user_id, agent_id, saving_type, amount, duration, first_payment_date, end_date, address, comment)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, c.UserID, c.AgentID, string(c.SavingType), c.Amount, c.Duration,
			c.FirstPaymentDate, c.EndDate, c.Address, c.Comment).Scan(&c.ID, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't create contract", zap.Int64("user_id", c.UserID), zap.Error(err))
			return domain.NewPersistenceError("create contract", err)
		}
		return nil
	})
}

// Cancel flags the contract. History rows stay untouched.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	query := `UPDATE contracts SET is_cancelled = TRUE WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't cancel contract", zap.Int64("contract_id", id), zap.Error(err))
		return domain.NewPersistenceError("cancel contract", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LockForCollection serializes collections of one contract until the
// surrounding transaction ends. It must run inside txManager.Begin.
func (r *Repository) LockForCollection(ctx context.Context, contractID int64) error {
	query := `SELECT pg_advisory_xact_lock($1)`

	if _, err := r.db.Exec(ctx, query, contractID); err != nil {
		zap.L().Error("can't lock contract", zap.Int64("contract_id", contractID), zap.Error(err))
		return domain.NewPersistenceError("lock contract", err)
	}
	return nil
}

func (r *Repository) CountActive(ctx context.Context, today time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM contracts WHERE is_cancelled = FALSE AND end_date >= $1`

	var n int64
	if err := r.db.QueryRow(ctx, query, today).Scan(&n); err != nil {
		zap.L().Error("can't count contracts", zap.Error(err))
		return 0, domain.NewPersistenceError("count contracts", err)
	}
	return n, nil
}
