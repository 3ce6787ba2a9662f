package partyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
)

var createdAt = time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_FindUser(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		want      *domain.User
		wantErr   error
	}{
		{
			name: "User found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "dial_code", "phone_number", "account_id", "agent_id", "device_token", "device_type", "created_at"}).
					AddRow(int64(3), "Diop", "+221", "771234567", "GUSER", int64(2), "", "", createdAt)
				mock.ExpectQuery(query).WithArgs(int64(3)).WillReturnRows(rows)
			},
			want: &domain.User{ID: 3, Name: "Diop", DialCode: "+221", PhoneNumber: "771234567", AccountID: "GUSER", AgentID: 2, CreatedAt: createdAt},
		},
		{
			name: "User not found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(3)).WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(3)).WillReturnError(errors.New("database error"))
			},
			wantErr: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.FindUser(context.Background(), 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func agentRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "dial_code", "phone_number", "account_id", "bonus_wallet_id", "pin_hash", "device_token", "device_type", "created_at"}).
		AddRow(int64(2), "Fall", "+221", "770000000", "GAGENT", "", "$2a$hash", "tok", "android", createdAt)
}

func TestRepository_FindAgent(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM agents WHERE id = $1")).WithArgs(int64(2)).WillReturnRows(agentRows())
	a, err := repo.FindAgent(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "GAGENT", a.AccountID)
	assert.True(t, a.CanReceivePush())

	mock.ExpectQuery(regexp.QuoteMeta("FROM agents WHERE id = $1")).WithArgs(int64(9)).WillReturnError(pgx.ErrNoRows)
	_, err = repo.FindAgent(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindAgentByPhone(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM agents WHERE dial_code = $1 AND phone_number = $2")).
		WithArgs("+221", "770000000").WillReturnRows(agentRows())
	a, err := repo.FindAgentByPhone(context.Background(), "+221", "770000000")
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.ID)
	assert.Equal(t, "$2a$hash", a.PinHash)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetAgentBonusWallet(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE agents SET bonus_wallet_id = CASE WHEN bonus_wallet_id = '' THEN $2 ELSE bonus_wallet_id END WHERE id = $1")

	t.Run("first wallet wins", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(2), "GNEW").
			WillReturnRows(pgxmock.NewRows([]string{"bonus_wallet_id"}).AddRow("GOLD"))
		got, err := repo.SetAgentBonusWallet(context.Background(), 2, "GNEW")
		assert.NoError(t, err)
		assert.Equal(t, "GOLD", got)
	})

	t.Run("unknown agent", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(9), "GNEW").WillReturnError(pgx.ErrNoRows)
		_, err := repo.SetAgentBonusWallet(context.Background(), 9, "GNEW")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountUsers(t *testing.T) {
	repo, mock := NewMock(t)
	since := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(42)))
	n, err := repo.CountUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE created_at >= $1")).WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))
	n, err = repo.CountUsersSince(context.Background(), since)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).WillReturnError(errors.New("boom"))
	_, err = repo.CountUsers(context.Background())
	assert.ErrorIs(t, err, domain.ErrPersistence)

	assert.NoError(t, mock.ExpectationsWereMet())
}
