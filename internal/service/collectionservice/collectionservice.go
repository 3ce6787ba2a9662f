package collectionservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/pg"
	"github.com/Amitjang/XAlISS-SERVER/internal/schedule"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/notifyservice"
	"github.com/Amitjang/XAlISS-SERVER/pkg/ledger"
	"github.com/Amitjang/XAlISS-SERVER/pkg/metrics"
)

//go:generate mockgen -source=collectionservice.go -destination=mock_collectionservice.go -package=collectionservice

const (
	MemoCollection = "Savings collection"
	dateLayout     = "2006-01-02"
)

type ContractRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Contract, error)
	FindActive(ctx context.Context, today time.Time) ([]domain.Contract, error)
	FindActiveByAgent(ctx context.Context, agentID int64, today time.Time) ([]domain.Contract, error)
	LockForCollection(ctx context.Context, contractID int64) error
}

type TransactionRepo interface {
	IsCollected(ctx context.Context, contractID int64, dueDate time.Time) (bool, error)
	Create(ctx context.Context, t *domain.Transaction) error
}

type PartyRepo interface {
	FindUser(ctx context.Context, id int64) (*domain.User, error)
	FindAgent(ctx context.Context, id int64) (*domain.Agent, error)
}

type Ledger interface {
	LoadAccount(ctx context.Context, accountID string) (*ledger.Account, error)
	SubmitTransfer(ctx context.Context, t ledger.Transfer) (string, error)
}

type Notifier interface {
	SMS(ctx context.Context, dialCode, phone, template string, vars map[string]string) error
}

type Config struct {
	Location      *time.Location
	Asset         string
	LedgerTimeout time.Duration
}

// ContractTag links a payment to the due date it settles.
type ContractTag struct {
	ContractID int64     `json:"contract_id"`
	DueDate    time.Time `json:"due_date"`
}

// Authorization is the verdict of the collection gate. Allow without a Tag
// means the payment goes through as an ordinary transfer.
type Authorization struct {
	Allow  bool         `json:"allow"`
	Tag    *ContractTag `json:"tag,omitempty"`
	Reason string       `json:"reason,omitempty"`
}

type CollectionRequest struct {
	AgentID    int64
	ContractID int64
	// Amount defaults to the contract's nominal amount when zero.
	Amount decimal.Decimal
}

type Service struct {
	contracts    ContractRepo
	transactions TransactionRepo
	parties      PartyRepo
	ledger       Ledger
	notifier     Notifier
	txManager    pg.TXManager
	cfg          Config
	now          func() time.Time
}

func New(contracts ContractRepo, transactions TransactionRepo, parties PartyRepo, ledger Ledger, notifier Notifier, txManager pg.TXManager, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		contracts:    contracts,
		transactions: transactions,
		parties:      parties,
		ledger:       ledger,
		notifier:     notifier,
		txManager:    txManager,
		cfg:          cfg,
		now:          time.Now,
	}
}

// Today returns local midnight of the current day in the configured zone.
func (s *Service) Today() time.Time {
	return s.normalize(s.now())
}

func (s *Service) normalize(t time.Time) time.Time {
	return schedule.StartOfDay(t.In(s.cfg.Location))
}

// localize rebuilds the contract's DATE columns as local midnights.
func (s *Service) localize(c domain.Contract) domain.Contract {
	c.FirstPaymentDate = schedule.DateIn(c.FirstPaymentDate, s.cfg.Location)
	c.EndDate = schedule.DateIn(c.EndDate, s.cfg.Location)
	return c
}

// Calendar returns every due date of the contract.
func (s *Service) Calendar(c domain.Contract) ([]time.Time, error) {
	c = s.localize(c)
	return schedule.GenerateDueDates(c.SavingType, c.FirstPaymentDate, c.EndDate)
}

func (s *Service) closestDue(c domain.Contract, today time.Time) (due time.Time, dueToday bool, err error) {
	calendar, err := schedule.GenerateDueDates(c.SavingType, c.FirstPaymentDate, c.EndDate)
	if err != nil {
		return time.Time{}, false, err
	}
	due, ok := schedule.ClosestDueDate(today, calendar)
	if !ok {
		return time.Time{}, false, nil
	}
	return due, schedule.IsDueToday(due, today), nil
}

// ListTodaysPendingCollections returns the agent's contracts that are due
// today and have no recorded collection for today's due date.
func (s *Service) ListTodaysPendingCollections(ctx context.Context, agentID int64, today time.Time) ([]domain.Contract, error) {
	today = s.normalize(today)
	contracts, err := s.contracts.FindActiveByAgent(ctx, agentID, today)
	if err != nil {
		return nil, err
	}
	return s.pending(ctx, contracts, today)
}

// PendingCollections is ListTodaysPendingCollections across all agents.
func (s *Service) PendingCollections(ctx context.Context, today time.Time) ([]domain.Contract, error) {
	today = s.normalize(today)
	contracts, err := s.contracts.FindActive(ctx, today)
	if err != nil {
		return nil, err
	}
	return s.pending(ctx, contracts, today)
}

func (s *Service) pending(ctx context.Context, contracts []domain.Contract, today time.Time) ([]domain.Contract, error) {
	result := make([]domain.Contract, 0)
	for _, c := range contracts {
		local := s.localize(c)
		if !local.Active(today) {
			continue
		}
		due, dueToday, err := s.closestDue(local, today)
		if err != nil {
			zap.L().Warn("skipping contract with invalid schedule", zap.Int64("contract_id", c.ID), zap.Error(err))
			continue
		}
		if !dueToday {
			continue
		}
		collected, err := s.transactions.IsCollected(ctx, c.ID, due)
		if err != nil {
			return nil, err
		}
		if !collected {
			result = append(result, c)
		}
	}
	return result, nil
}

// AuthorizeCollection decides whether a payment for the contract may proceed
// today and whether it settles today's due date.
func (s *Service) AuthorizeCollection(ctx context.Context, contractID int64, today time.Time) (*Authorization, error) {
	c, err := s.contracts.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return s.authorize(ctx, *c, s.normalize(today))
}

// AuthorizeAgentCollection runs the gate for a contract handled by agentID.
// Contracts of other agents are reported as not found.
func (s *Service) AuthorizeAgentCollection(ctx context.Context, agentID, contractID int64, today time.Time) (*Authorization, error) {
	c, err := s.contracts.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c.AgentID != agentID {
		return nil, domain.ErrNotFound
	}
	return s.authorize(ctx, *c, s.normalize(today))
}

func (s *Service) authorize(ctx context.Context, c domain.Contract, today time.Time) (*Authorization, error) {
	c = s.localize(c)
	if !c.Active(today) {
		return &Authorization{Allow: true}, nil
	}

	due, dueToday, err := s.closestDue(c, today)
	if err != nil {
		return nil, err
	}
	if !dueToday {
		return &Authorization{Allow: true}, nil
	}

	collected, err := s.transactions.IsCollected(ctx, c.ID, due)
	if err != nil {
		return nil, err
	}
	if collected {
		dup := &domain.AlreadyCollectedError{ContractID: c.ID, DueDate: due}
		return &Authorization{Allow: false, Reason: dup.Error()}, dup
	}
	return &Authorization{Allow: true, Tag: &ContractTag{ContractID: c.ID, DueDate: due}}, nil
}

// Collect moves the payment from the agent's wallet to the user's wallet and
// records it. The gate and the write run under a per-contract lock so that two
// concurrent collections cannot both settle the same due date.
func (s *Service) Collect(ctx context.Context, req CollectionRequest) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	today := s.Today()

	var (
		txn      *domain.Transaction
		contract domain.Contract
		user     *domain.User
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.contracts.LockForCollection(ctx, req.ContractID); err != nil {
			return err
		}
		c, err := s.contracts.FindByID(ctx, req.ContractID)
		if err != nil {
			return err
		}
		if c.AgentID != req.AgentID {
			return domain.ErrNotFound
		}
		contract = *c

		amount := req.Amount
		if amount.IsZero() {
			amount = c.Amount
		}

		auth, err := s.authorize(ctx, *c, today)
		if err != nil {
			return err
		}

		agent, err := s.parties.FindAgent(ctx, c.AgentID)
		if err != nil {
			return err
		}
		user, err = s.parties.FindUser(ctx, c.UserID)
		if err != nil {
			return err
		}

		t := &domain.Transaction{
			Amount:   amount,
			Sender:   domain.AgentParty(agent.ID),
			Receiver: domain.UserParty(user.ID),
			Kind:     domain.TransactionPayment,
			Memo:     MemoCollection,
		}
		if auth.Tag != nil {
			contractID, due := auth.Tag.ContractID, auth.Tag.DueDate
			t.ContractID = &contractID
			t.DueDate = &due
			t.Kind = domain.TransactionCollection
		}

		ref, err := s.transfer(ctx, ledger.Transfer{
			ID:     uuid.New(),
			From:   agent.AccountID,
			To:     user.AccountID,
			Asset:  s.cfg.Asset,
			Amount: amount,
			Memo:   MemoCollection,
		})
		if err != nil {
			return err
		}
		t.LedgerRef = ref

		if err := s.transactions.Create(ctx, t); err != nil {
			zap.L().Error("ledger transfer submitted but not recorded",
				zap.Int64("contract_id", c.ID),
				zap.String("ledger_ref", ref),
				zap.Error(err),
			)
			return err
		}
		txn = t
		return nil
	})
	if err != nil {
		metrics.IncCollection(outcomeOf(err))
		zap.L().Warn("collection failed", zap.Int64("contract_id", req.ContractID), zap.Int64("agent_id", req.AgentID), zap.Error(err))
		return nil, err
	}

	if txn.ContractID != nil {
		metrics.IncCollection("tagged")
	} else {
		metrics.IncCollection("untagged")
	}
	zap.L().Info("payment collected",
		zap.Int64("contract_id", req.ContractID),
		zap.Bool("tagged", txn.ContractID != nil),
		zap.String("amount", txn.Amount.String()),
	)
	s.notifyCollected(ctx, s.localize(contract), user, txn, today)
	return txn, nil
}

func (s *Service) transfer(ctx context.Context, t ledger.Transfer) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.LedgerTimeout)
	defer cancel()
	return s.ledger.SubmitTransfer(ctx, t)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyCollected):
		return "duplicate"
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return "ledger_unavailable"
	default:
		return "failed"
	}
}

// notifyCollected sends the saving_collection SMS. Failures are only logged.
func (s *Service) notifyCollected(ctx context.Context, c domain.Contract, user *domain.User, t *domain.Transaction, today time.Time) {
	calendar, err := schedule.GenerateDueDates(c.SavingType, c.FirstPaymentDate, c.EndDate)
	if err != nil {
		return
	}
	remaining := 0
	next := "-"
	for _, d := range calendar {
		if d.After(today) {
			if remaining == 0 {
				next = d.Format(dateLayout)
			}
			remaining++
		}
	}

	balance := "-"
	lctx, cancel := context.WithTimeout(ctx, s.cfg.LedgerTimeout)
	defer cancel()
	if acc, err := s.ledger.LoadAccount(lctx, user.AccountID); err == nil {
		balance = acc.BalanceOf(s.cfg.Asset).String()
	} else {
		zap.L().Warn("can't load balance for collection sms", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	vars := map[string]string{
		"customer_last_name":                     user.Name,
		"amount_collected":                       t.Amount.String(),
		"account_balance":                        balance,
		"number_of_collect_remaining":            strconv.Itoa(remaining),
		"total_ammount_saved_by_end_of_contract": c.Amount.Mul(decimal.NewFromInt(int64(len(calendar)))).String(),
		"date_of_next_collect":                   next,
	}
	if err := s.notifier.SMS(ctx, user.DialCode, user.PhoneNumber, notifyservice.TemplateSavingCollection, vars); err != nil {
		zap.L().Warn("collection sms not sent", zap.Int64("contract_id", c.ID), zap.Error(err))
	}
}
