package partyrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
)

const (
	userColumns  = `id, name, dial_code, phone_number, account_id, agent_id, device_token, device_type, created_at`
	agentColumns = `id, name, dial_code, phone_number, account_id, bonus_wallet_id, pin_hash, device_token, device_type, created_at`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id).Scan(
		&u.ID, &u.Name, &u.DialCode, &u.PhoneNumber, &u.AccountID, &u.AgentID, &u.DeviceToken, &u.DeviceType, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't find user", zap.Int64("user_id", id), zap.Error(err))
		return nil, domain.NewPersistenceError("find user", err)
	}
	return &u, nil
}

func (repo *Repository) FindAgent(ctx context.Context, id int64) (*domain.Agent, error) {
	return repo.findAgent(ctx, "SELECT "+agentColumns+" FROM agents WHERE id = $1", id)
}

func (repo *Repository) FindAgentByPhone(ctx context.Context, dialCode, phone string) (*domain.Agent, error) {
	return repo.findAgent(ctx, "SELECT "+agentColumns+" FROM agents WHERE dial_code = $1 AND phone_number = $2", dialCode, phone)
}

func (repo *Repository) findAgent(ctx context.Context, query string, args ...any) (*domain.Agent, error) {
	var a domain.Agent
	err := repo.db.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.Name, &a.DialCode, &a.PhoneNumber, &a.AccountID, &a.BonusWalletID, &a.PinHash, &a.DeviceToken, &a.DeviceType, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't find agent", zap.Error(err))
		return nil, domain.NewPersistenceError("find agent", err)
	}
	return &a, nil
}

// SetAgentBonusWallet stores the wallet only if none was recorded yet and
// returns the wallet that is on file afterwards.
func (repo *Repository) SetAgentBonusWallet(ctx context.Context, agentID int64, walletID string) (string, error) {
	query := `
		UPDATE agents
		SET bonus_wallet_id = CASE WHEN bonus_wallet_id = '' THEN $2 ELSE bonus_wallet_id END
		WHERE id = $1
		RETURNING bonus_wallet_id
	`
	var stored string
	err := repo.db.QueryRow(ctx, query, agentID, walletID).Scan(&stored)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		zap.L().Error("can't save bonus wallet", zap.Int64("agent_id", agentID), zap.Error(err))
		return "", domain.NewPersistenceError("set bonus wallet", err)
	}
	return stored, nil
}

func (repo *Repository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, domain.NewPersistenceError("count users", err)
	}
	return n, nil
}

func (repo *Repository) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE created_at >= $1", since).Scan(&n); err != nil {
		zap.L().Error("can't count new users", zap.Error(err))
		return 0, domain.NewPersistenceError("count users since", err)
	}
	return n, nil
}
