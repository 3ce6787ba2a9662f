package contractrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
)

var columns = []string{"id", "user_id", "agent_id", "saving_type", "amount", "duration", "first_payment_date", "end_date", "address", "comment", "is_cancelled", "created_at"}

var (
	start   = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end     = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	created = time.Date(2023, time.December, 30, 9, 0, 0, 0, time.UTC)
	today   = time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func contractRow(rows *pgxmock.Rows, id int64, cancelled bool) *pgxmock.Rows {
	return rows.AddRow(id, int64(10), int64(20), "monthly", "500.0000000", "3M", start, end, "Dakar", "", cancelled, created)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
		want      *domain.Contract
	}{
		{
			name: "found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(1)).
					WillReturnRows(contractRow(pgxmock.NewRows(columns), 1, false))
			},
			want: &domain.Contract{
				ID: 1, UserID: 10, AgentID: 20, SavingType: domain.CadenceMonthly,
				Duration: "3M", FirstPaymentDate: start, EndDate: end, Address: "Dakar", CreatedAt: created,
			},
		},
		{
			name: "missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(errors.New("database error"))
			},
			wantErr: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.FindByID(context.Background(), 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.True(t, got.Amount.Equal(decimal.NewFromInt(500)))
				got.Amount = decimal.Decimal{}
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`FROM contracts WHERE is_cancelled = FALSE AND end_date >= $1 ORDER BY id`)

	t.Run("returns rows", func(t *testing.T) {
		rows := pgxmock.NewRows(columns)
		contractRow(rows, 1, false)
		contractRow(rows, 2, false)
		mock.ExpectQuery(query).WithArgs(today).WillReturnRows(rows)

		got, err := repo.FindActive(context.Background(), today)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(today).WillReturnRows(pgxmock.NewRows(columns))

		got, err := repo.FindActive(context.Background(), today)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(today).WillReturnError(errors.New("boom"))

		got, err := repo.FindActive(context.Background(), today)
		assert.ErrorIs(t, err, domain.ErrPersistence)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActiveByAgent(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`FROM contracts WHERE agent_id = $1 AND is_cancelled = FALSE AND end_date >= $2 ORDER BY id`)

	mock.ExpectQuery(query).WithArgs(int64(20), today).
		WillReturnRows(contractRow(pgxmock.NewRows(columns), 5, false))

	got, err := repo.FindActiveByAgent(context.Background(), 20, today)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(20), got[0].AgentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock, tx := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO contracts (user_id, agent_id, saving_type, amount, duration, first_payment_date, end_date, address, comment) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "created",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).
						WithArgs(int64(10), int64(20), "monthly", pgxmock.AnyArg(), "3M", start, end, "Dakar", "").
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), created))
					return fn(ctx)
				})
			},
		},
		{
			name: "database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			c := &domain.Contract{
				UserID: 10, AgentID: 20, SavingType: domain.CadenceMonthly, Amount: decimal.NewFromInt(500),
				Duration: "3M", FirstPaymentDate: start, EndDate: end, Address: "Dakar",
			}
			err := repo.Create(context.Background(), c)

			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrPersistence)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(9), c.ID)
				assert.Equal(t, created, c.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE contracts SET is_cancelled = TRUE WHERE id = $1`)

	mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Cancel(context.Background(), 1))

	mock.ExpectExec(query).WithArgs(int64(2)).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Cancel(context.Background(), 2), domain.ErrNotFound)

	mock.ExpectExec(query).WithArgs(int64(3)).WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, repo.Cancel(context.Background(), 3), domain.ErrPersistence)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockForCollection(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1)`)

	mock.ExpectExec(query).WithArgs(int64(4)).WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, repo.LockForCollection(context.Background(), 4))

	mock.ExpectExec(query).WithArgs(int64(4)).WillReturnError(errors.New("lock timeout"))
	assert.ErrorIs(t, repo.LockForCollection(context.Background(), 4), domain.ErrPersistence)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountActive(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM contracts WHERE is_cancelled = FALSE AND end_date >= $1`)).
		WithArgs(today).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	n, err := repo.CountActive(context.Background(), today)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
