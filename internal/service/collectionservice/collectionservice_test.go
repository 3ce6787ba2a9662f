package collectionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
	"github.com/Amitjang/XAlISS-SERVER/pkg/ledger"
)

type mocks struct {
	contracts    *MockContractRepo
	transactions *MockTransactionRepo
	parties      *MockPartyRepo
	ledger       *MockLedger
	notifier     *MockNotifier
	txManager    *pg.MockTXManager
}

var (
	now   = time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)
	today = time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		contracts:    NewMockContractRepo(ctrl),
		transactions: NewMockTransactionRepo(ctrl),
		parties:      NewMockPartyRepo(ctrl),
		ledger:       NewMockLedger(ctrl),
		notifier:     NewMockNotifier(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	service := New(m.contracts, m.transactions, m.parties, m.ledger, m.notifier, m.txManager, Config{
		Location:      time.UTC,
		Asset:         "native",
		LedgerTimeout: time.Second,
	})
	service.now = func() time.Time { return now }
	return service, m
}

// weekly contract whose anchor weekday is today's weekday
func dueToday() domain.Contract {
	return domain.Contract{
		ID: 1, UserID: 3, AgentID: 2, SavingType: domain.CadenceWeekly,
		Amount:           decimal.NewFromInt(500),
		FirstPaymentDate: day(2024, time.May, 1),
		EndDate:          day(2024, time.June, 11),
		Address:          "Medina",
	}
}

func TestService_AuthorizeCollection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		contract  domain.Contract
		prepare   func(m *mocks)
		wantAllow bool
		wantTag   *ContractTag
		wantErr   error
	}{
		{
			name:     "due today and not collected",
			contract: dueToday(),
			prepare: func(m *mocks) {
				m.transactions.EXPECT().IsCollected(ctx, int64(1), today).Return(false, nil)
			},
			wantAllow: true,
			wantTag:   &ContractTag{ContractID: 1, DueDate: today},
		},
		{
			name:     "due today and already collected",
			contract: dueToday(),
			prepare: func(m *mocks) {
				m.transactions.EXPECT().IsCollected(ctx, int64(1), today).Return(true, nil)
			},
			wantAllow: false,
			wantErr:   domain.ErrAlreadyCollected,
		},
		{
			name: "not due today",
			contract: func() domain.Contract {
				c := dueToday()
				c.FirstPaymentDate = day(2024, time.May, 2)
				return c
			}(),
			prepare:   func(m *mocks) {},
			wantAllow: true,
		},
		{
			name: "cancelled contract passes untagged",
			contract: func() domain.Contract {
				c := dueToday()
				c.IsCancelled = true
				return c
			}(),
			prepare:   func(m *mocks) {},
			wantAllow: true,
		},
		{
			name: "ended contract passes untagged",
			contract: func() domain.Contract {
				c := dueToday()
				c.FirstPaymentDate = day(2024, time.April, 1)
				c.EndDate = day(2024, time.May, 14)
				return c
			}(),
			prepare:   func(m *mocks) {},
			wantAllow: true,
		},
		{
			name:     "lookup failure never allows",
			contract: dueToday(),
			prepare: func(m *mocks) {
				m.transactions.EXPECT().IsCollected(ctx, int64(1), today).
					Return(false, domain.NewPersistenceError("is collected", errors.New("boom")))
			},
			wantErr: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			c := tt.contract
			m.contracts.EXPECT().FindByID(ctx, int64(1)).Return(&c, nil)
			tt.prepare(m)

			auth, err := service.AuthorizeCollection(ctx, 1, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if errors.Is(tt.wantErr, domain.ErrAlreadyCollected) {
					require.NotNil(t, auth)
					assert.False(t, auth.Allow)
					assert.Equal(t, "already collected for date 2024-05-15", auth.Reason)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllow, auth.Allow)
			assert.Equal(t, tt.wantTag, auth.Tag)
		})
	}

	t.Run("unknown contract", func(t *testing.T) {
		service, m := NewMock(t)
		m.contracts.EXPECT().FindByID(ctx, int64(9)).Return(nil, domain.ErrNotFound)

		_, err := service.AuthorizeCollection(ctx, 9, now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_AuthorizeAgentCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("own contract", func(t *testing.T) {
		service, m := NewMock(t)
		c := dueToday()
		m.contracts.EXPECT().FindByID(ctx, int64(1)).Return(&c, nil)
		m.transactions.EXPECT().IsCollected(ctx, int64(1), today).Return(false, nil)

		auth, err := service.AuthorizeAgentCollection(ctx, 2, 1, now)
		require.NoError(t, err)
		assert.True(t, auth.Allow)
		assert.Equal(t, &ContractTag{ContractID: 1, DueDate: today}, auth.Tag)
	})

	t.Run("contract of another agent", func(t *testing.T) {
		service, m := NewMock(t)
		c := dueToday()
		m.contracts.EXPECT().FindByID(ctx, int64(1)).Return(&c, nil)

		auth, err := service.AuthorizeAgentCollection(ctx, 9, 1, now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, auth)
	})

	t.Run("unknown contract", func(t *testing.T) {
		service, m := NewMock(t)
		m.contracts.EXPECT().FindByID(ctx, int64(4)).Return(nil, domain.ErrNotFound)

		_, err := service.AuthorizeAgentCollection(ctx, 2, 4, now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_AuthorizeTwiceAfterRecording(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)
	c := dueToday()

	m.contracts.EXPECT().FindByID(ctx, int64(1)).Return(&c, nil).Times(2)
	gomock.InOrder(
		m.transactions.EXPECT().IsCollected(ctx, int64(1), today).Return(false, nil),
		m.transactions.EXPECT().IsCollected(ctx, int64(1), today).Return(true, nil),
	)

	first, err := service.AuthorizeCollection(ctx, 1, now)
	require.NoError(t, err)
	assert.True(t, first.Allow)
	assert.NotNil(t, first.Tag)

	second, err := service.AuthorizeCollection(ctx, 1, now)
	assert.ErrorIs(t, err, domain.ErrAlreadyCollected)
	assert.False(t, second.Allow)
}

func TestService_ListTodaysPendingCollections(t *testing.T) {
	ctx := context.Background()
	service, m := NewMock(t)

	pending := dueToday()

	collected := dueToday()
	collected.ID = 2

	notDue := dueToday()
	notDue.ID = 3
	notDue.FirstPaymentDate = day(2024, time.May, 3)

	ended := dueToday()
	ended.ID = 4
	ended.SavingType = domain.CadenceDaily
	ended.FirstPaymentDate = day(2024, time.April, 1)
	ended.EndDate = day(2024, time.May, 14)

	cancelled := dueToday()
	cancelled.ID = 5
	cancelled.SavingType = domain.CadenceDaily
	cancelled.IsCancelled = true

	broken := dueToday()
	broken.ID = 6
	broken.SavingType = "yearly"

	m.contracts.EXPECT().FindActiveByAgent(ctx, int64(2), today).
		Return([]domain.Contract{pending, collected, notDue, ended, cancelled, broken}, nil)
	m.transactions.EXPECT().IsCollected(ctx, int64(1), today).Return(false, nil)
	m.transactions.EXPECT().IsCollected(ctx, int64(2), today).Return(true, nil)

	got, err := service.ListTodaysPendingCollections(ctx, 2, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestService_PendingCollections(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup error aborts", func(t *testing.T) {
		service, m := NewMock(t)
		m.contracts.EXPECT().FindActive(ctx, today).Return([]domain.Contract{dueToday()}, nil)
		m.transactions.EXPECT().IsCollected(ctx, int64(1), today).Return(false, errors.New("boom"))

		_, err := service.PendingCollections(ctx, now)
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		service, m := NewMock(t)
		m.contracts.EXPECT().FindActive(ctx, today).Return(nil, nil)

		got, err := service.PendingCollections(ctx, now)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func expectTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })
}

func expectParties(m *mocks) {
	m.parties.EXPECT().FindAgent(gomock.Any(), int64(2)).Return(&domain.Agent{ID: 2, AccountID: "GAGENT"}, nil)
	m.parties.EXPECT().FindUser(gomock.Any(), int64(3)).
		Return(&domain.User{ID: 3, Name: "Diop", DialCode: "+221", PhoneNumber: "771234567", AccountID: "GUSER"}, nil)
}

func TestService_Collect(t *testing.T) {
	ctx := context.Background()

	t.Run("tagged collection", func(t *testing.T) {
		service, m := NewMock(t)
		c := dueToday()
		expectTx(m)
		m.contracts.EXPECT().LockForCollection(gomock.Any(), int64(1)).Return(nil)
		m.contracts.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&c, nil)
		m.transactions.EXPECT().IsCollected(gomock.Any(), int64(1), today).Return(false, nil)
		expectParties(m)
		m.ledger.EXPECT().SubmitTransfer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr ledger.Transfer) (string, error) {
				assert.Equal(t, "GAGENT", tr.From)
				assert.Equal(t, "GUSER", tr.To)
				assert.Equal(t, "native", tr.Asset)
				assert.True(t, tr.Amount.Equal(decimal.NewFromInt(500)))
				assert.Equal(t, MemoCollection, tr.Memo)
				return "hash", nil
			})
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.ledger.EXPECT().LoadAccount(gomock.Any(), "GUSER").Return(&ledger.Account{
			ID: "GUSER", Balances: []ledger.Balance{{Asset: "native", Balance: "3000.0000000"}},
		}, nil)
		m.notifier.EXPECT().SMS(gomock.Any(), "+221", "771234567", "saving_collection", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, vars map[string]string) error {
				assert.Equal(t, "Diop", vars["customer_last_name"])
				assert.Equal(t, "500", vars["amount_collected"])
				assert.Equal(t, "3000", vars["account_balance"])
				assert.Equal(t, "3", vars["number_of_collect_remaining"])
				assert.Equal(t, "3000", vars["total_ammount_saved_by_end_of_contract"])
				assert.Equal(t, "2024-05-22", vars["date_of_next_collect"])
				return nil
			})

		txn, err := service.Collect(ctx, CollectionRequest{AgentID: 2, ContractID: 1})
		require.NoError(t, err)
		require.NotNil(t, txn.ContractID)
		assert.Equal(t, int64(1), *txn.ContractID)
		assert.Equal(t, today, *txn.DueDate)
		assert.Equal(t, domain.TransactionCollection, txn.Kind)
		assert.Equal(t, domain.AgentParty(2), txn.Sender)
		assert.Equal(t, domain.UserParty(3), txn.Receiver)
		assert.Equal(t, "hash", txn.LedgerRef)
	})

	t.Run("untagged when not due", func(t *testing.T) {
		service, m := NewMock(t)
		c := dueToday()
		c.FirstPaymentDate = day(2024, time.May, 2)
		expectTx(m)
		m.contracts.EXPECT().LockForCollection(gomock.Any(), int64(1)).Return(nil)
		m.contracts.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&c, nil)
		expectParties(m)
		m.ledger.EXPECT().SubmitTransfer(gomock.Any(), gomock.Any()).Return("hash", nil)
		m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.ledger.EXPECT().LoadAccount(gomock.Any(), "GUSER").Return(nil, ledger.ErrAccountNotFound)
		m.notifier.EXPECT().SMS(gomock.Any(), "+221", "771234567", "saving_collection", gomock.Any()).Return(errors.New("broker down"))

		txn, err := service.Collect(ctx, CollectionRequest{AgentID: 2, ContractID: 1, Amount: decimal.NewFromInt(250)})
		require.NoError(t, err)
		assert.Nil(t, txn.ContractID)
		assert.Nil(t, txn.DueDate)
		assert.Equal(t, domain.TransactionPayment, txn.Kind)
		assert.True(t, txn.Amount.Equal(decimal.NewFromInt(250)))
	})

	t.Run("duplicate is rejected before the transfer", func(t *testing.T) {
		service, m := NewMock(t)
		c := dueToday()
		expectTx(m)
		m.contracts.EXPECT().LockForCollection(gomock.Any(), int64(1)).Return(nil)
		m.contracts.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&c, nil)
		m.transactions.EXPECT().IsCollected(gomock.Any(), int64(1), today).Return(true, nil)

		_, err := service.Collect(ctx, CollectionRequest{AgentID: 2, ContractID: 1})
		var dup *domain.AlreadyCollectedError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, today, dup.DueDate)
	})

	t.Run("other agent's contract", func(t *testing.T) {
		service, m := NewMock(t)
		c := dueToday()
		expectTx(m)
		m.contracts.EXPECT().LockForCollection(gomock.Any(), int64(1)).Return(nil)
		m.contracts.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&c, nil)

		_, err := service.Collect(ctx, CollectionRequest{AgentID: 7, ContractID: 1})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ledger unavailable records nothing", func(t *testing.T) {
		service, m := NewMock(t)
		c := dueToday()
		expectTx(m)
		m.contracts.EXPECT().LockForCollection(gomock.Any(), int64(1)).Return(nil)
		m.contracts.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&c, nil)
		m.transactions.EXPECT().IsCollected(gomock.Any(), int64(1), today).Return(false, nil)
		expectParties(m)
		m.ledger.EXPECT().SubmitTransfer(gomock.Any(), gomock.Any()).Return("", domain.ErrLedgerUnavailable)

		_, err := service.Collect(ctx, CollectionRequest{AgentID: 2, ContractID: 1})
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})

	t.Run("negative amount", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Collect(ctx, CollectionRequest{AgentID: 2, ContractID: 1, Amount: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestService_Calendar(t *testing.T) {
	service, _ := NewMock(t)
	c := domain.Contract{SavingType: domain.CadenceMonthly, FirstPaymentDate: day(2024, time.January, 1), EndDate: day(2024, time.March, 1)}

	got, err := service.Calendar(c)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2024, time.January, 1), day(2024, time.February, 1), day(2024, time.March, 1)}, got)
}
