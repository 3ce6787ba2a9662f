package reconcileservice

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/schedule"
	"github.com/Amitjang/XAlISS-SERVER/pkg/ledger"
	"github.com/Amitjang/XAlISS-SERVER/pkg/metrics"
)

//go:generate mockgen -source=reconcileservice.go -destination=mock_reconcileservice.go -package=reconcileservice

const (
	MemoFee   = "Monthly Fees deduction"
	MemoBonus = "Monthly bonus"

	BonusTitle = "Monthly bonus received"
)

var (
	ErrAlreadyRunning = errors.New("reconciliation already running")
	ErrMonthNotEnded  = errors.New("month has not ended yet")

	// transferNamespace scopes the deterministic transfer ids of month-end
	// steps so a rerun replays the same ledger transfer.
	transferNamespace = uuid.MustParse("8f4f2c1e-5a55-4c1b-9a57-3c1e7d0b6a10")
)

type Status string

const (
	StatusSettled        Status = "settled"
	StatusAlreadySettled Status = "already_settled"
	StatusFailed         Status = "failed"
)

type ContractRepo interface {
	FindActive(ctx context.Context, today time.Time) ([]domain.Contract, error)
}

type TransactionRepo interface {
	SumForContract(ctx context.Context, contractID int64, from, to time.Time) (decimal.Decimal, error)
}

type HistoryRepo interface {
	Find(ctx context.Context, contractID int64, counterparty domain.Party, monthEnd time.Time) (*domain.MonthlyRecord, error)
	Upsert(ctx context.Context, rec *domain.MonthlyRecord) error
}

type PartyRepo interface {
	FindUser(ctx context.Context, id int64) (*domain.User, error)
	FindAgent(ctx context.Context, id int64) (*domain.Agent, error)
	SetAgentBonusWallet(ctx context.Context, agentID int64, walletID string) (string, error)
}

type Ledger interface {
	SubmitTransfer(ctx context.Context, t ledger.Transfer) (string, error)
	CreateAccount(ctx context.Context) (string, error)
}

type Notifier interface {
	Push(ctx context.Context, n *domain.Notification) error
}

type Config struct {
	Location      *time.Location
	LedgerTimeout time.Duration
}

// Outcome summarizes the month-end steps of one contract.
type Outcome struct {
	ContractID  int64           `json:"contract_id"`
	MonthEnd    time.Time       `json:"month_end"`
	Total       decimal.Decimal `json:"total"`
	Fee         decimal.Decimal `json:"fee"`
	FeeStatus   Status          `json:"fee_status"`
	BonusStatus Status          `json:"bonus_status"`
	Err         string          `json:"error,omitempty"`
}

type Service struct {
	contracts    ContractRepo
	transactions TransactionRepo
	history      HistoryRepo
	parties      PartyRepo
	ledger       Ledger
	notifier     Notifier
	fees         FeeSchedule
	cfg          Config
	now          func() time.Time
	running      atomic.Bool
}

func New(contracts ContractRepo, transactions TransactionRepo, history HistoryRepo, parties PartyRepo,
	ledger Ledger, notifier Notifier, fees FeeSchedule, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		contracts:    contracts,
		transactions: transactions,
		history:      history,
		parties:      parties,
		ledger:       ledger,
		notifier:     notifier,
		fees:         fees,
		cfg:          cfg,
		now:          time.Now,
	}
}

// RunMonthlyReconciliation settles fees and bonuses for the current month.
func (s *Service) RunMonthlyReconciliation(ctx context.Context) ([]Outcome, error) {
	return s.RunForMonth(ctx, s.now())
}

// RunForMonth settles the month containing day. Contracts are selected as
// active on day. Each contract is handled on its own and a failure never
// stops the batch. A month is settled only once its last day has come.
func (s *Service) RunForMonth(ctx context.Context, day time.Time) ([]Outcome, error) {
	day = schedule.StartOfDay(day.In(s.cfg.Location))
	monthStart := schedule.StartOfMonth(day)
	monthEnd := schedule.LastDayOfMonth(day)
	if monthEnd.After(schedule.StartOfDay(s.now().In(s.cfg.Location))) {
		return nil, fmt.Errorf("%w: %s", ErrMonthNotEnded, monthEnd.Format("2006-01-02"))
	}

	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer s.running.Store(false)

	started := time.Now()
	nextMonth := monthStart.AddDate(0, 1, 0)

	contracts, err := s.contracts.FindActive(ctx, day)
	if err != nil {
		metrics.ObserveJob("month_end", "error", time.Since(started))
		return nil, err
	}

	zap.L().Info("month-end reconciliation started",
		zap.String("month_end", monthEnd.Format("2006-01-02")),
		zap.Int("contracts", len(contracts)),
	)

	outcomes := make([]Outcome, 0, len(contracts))
	for _, c := range contracts {
		if err := ctx.Err(); err != nil {
			metrics.ObserveJob("month_end", "cancelled", time.Since(started))
			return outcomes, err
		}
		out := s.reconcile(ctx, c, monthStart, monthEnd, nextMonth)
		if out.Err != "" {
			zap.L().Warn("contract reconciliation incomplete",
				zap.Int64("contract_id", c.ID),
				zap.String("fee_status", string(out.FeeStatus)),
				zap.String("bonus_status", string(out.BonusStatus)),
				zap.String("error", out.Err),
			)
		}
		outcomes = append(outcomes, out)
	}

	metrics.ObserveJob("month_end", "ok", time.Since(started))
	zap.L().Info("month-end reconciliation finished", zap.Int("contracts", len(outcomes)))
	return outcomes, nil
}

func (s *Service) reconcile(ctx context.Context, c domain.Contract, monthStart, monthEnd, nextMonth time.Time) Outcome {
	out := Outcome{ContractID: c.ID, MonthEnd: monthEnd}

	total, err := s.transactions.SumForContract(ctx, c.ID, monthStart, nextMonth)
	if err != nil {
		out.FeeStatus, out.BonusStatus, out.Err = StatusFailed, StatusFailed, err.Error()
		return out
	}
	fee, rate, err := s.fees.Fee(c, total)
	if err != nil {
		out.FeeStatus, out.BonusStatus, out.Err = StatusFailed, StatusFailed, err.Error()
		return out
	}
	out.Total = total

	base := domain.MonthlyRecord{
		ContractID:  c.ID,
		MonthEnd:    monthEnd,
		SavingType:  c.SavingType,
		Percentage:  rate,
		TotalAmount: total,
		Amount:      fee,
	}

	var feeErr, bonusErr error
	out.FeeStatus, out.Fee, feeErr = s.settle(ctx, "fee", base, domain.UserParty(c.UserID), func(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
		return s.chargeFee(ctx, c.UserID, amount, id)
	})
	out.BonusStatus, _, bonusErr = s.settle(ctx, "bonus", base, domain.AgentParty(c.AgentID), func(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
		return s.payBonus(ctx, c.AgentID, amount, id)
	})
	if err := errors.Join(feeErr, bonusErr); err != nil {
		out.Err = err.Error()
	}
	return out
}

// settle runs one month-end step unless a successful record already exists
// and stores its outcome. A step that failed before is retried with the
// amount on its record, so its transfer id never covers two amounts.
func (s *Service) settle(ctx context.Context, step string, base domain.MonthlyRecord, counterparty domain.Party,
	pay func(ctx context.Context, transferID uuid.UUID, amount decimal.Decimal) error) (Status, decimal.Decimal, error) {
	prev, err := s.history.Find(ctx, base.ContractID, counterparty, base.MonthEnd)
	if err != nil {
		metrics.IncSettlement(step, string(StatusFailed))
		return StatusFailed, base.Amount, fmt.Errorf("%s: %w", step, err)
	}
	if prev != nil && prev.Settled {
		metrics.IncSettlement(step, string(StatusAlreadySettled))
		return StatusAlreadySettled, prev.Amount, nil
	}

	rec := base
	rec.Counterparty = counterparty
	if prev != nil && prev.Amount.IsPositive() {
		rec.Percentage, rec.TotalAmount, rec.Amount = prev.Percentage, prev.TotalAmount, prev.Amount
	}
	payErr := pay(ctx, transferID(base.ContractID, counterparty, base.MonthEnd), rec.Amount)
	rec.Settled = payErr == nil
	if payErr != nil {
		rec.Error = payErr.Error()
	}

	if err := s.history.Upsert(ctx, &rec); err != nil {
		metrics.IncSettlement(step, string(StatusFailed))
		return StatusFailed, rec.Amount, fmt.Errorf("%s: %w", step, errors.Join(payErr, err))
	}
	if payErr != nil {
		metrics.IncSettlement(step, string(StatusFailed))
		return StatusFailed, rec.Amount, fmt.Errorf("%s: %w", step, payErr)
	}
	metrics.IncSettlement(step, string(StatusSettled))
	return StatusSettled, rec.Amount, nil
}

// transferID is stable for a contract, counterparty and month so that a
// retried step is recognized by the ledger as a replay.
func transferID(contractID int64, p domain.Party, monthEnd time.Time) uuid.UUID {
	var step string
	switch p.Kind {
	case domain.PartyUser:
		step = "fee"
	case domain.PartyAgent:
		step = "bonus"
	}
	key := fmt.Sprintf("%s:%d:%d:%s", step, contractID, p.ID, monthEnd.Format("2006-01-02"))
	return uuid.NewSHA1(transferNamespace, []byte(key))
}

func (s *Service) chargeFee(ctx context.Context, userID int64, fee decimal.Decimal, id uuid.UUID) error {
	user, err := s.parties.FindUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("error getting user by id: %d: %w", userID, err)
	}
	_, err = s.submit(ctx, ledger.Transfer{
		ID:     id,
		From:   user.AccountID,
		To:     s.fees.HouseWallet,
		Asset:  s.fees.Asset,
		Amount: fee,
		Memo:   MemoFee,
	})
	if errors.Is(err, ledger.ErrAccountNotFound) {
		return fmt.Errorf("no account found for user with phone number: %s %s: %w", user.DialCode, user.PhoneNumber, err)
	}
	return err
}

func (s *Service) payBonus(ctx context.Context, agentID int64, bonus decimal.Decimal, id uuid.UUID) error {
	if !bonus.IsPositive() {
		return fmt.Errorf("bonus cannot be less than or equal to zero: %w", domain.ErrInvalidAmount)
	}
	agent, err := s.parties.FindAgent(ctx, agentID)
	if err != nil {
		return fmt.Errorf("error getting agent by id: %d: %w", agentID, err)
	}
	if err := s.ensureBonusWallet(ctx, agent); err != nil {
		return err
	}

	_, err = s.submit(ctx, ledger.Transfer{
		ID:     id,
		From:   s.fees.HouseWallet,
		To:     agent.BonusWalletID,
		Asset:  s.fees.Asset,
		Amount: bonus,
		Memo:   MemoBonus,
	})
	if err != nil {
		return fmt.Errorf("error sending bonus to agent [%d]: %w", agent.ID, err)
	}

	s.notifyBonus(ctx, agent, bonus)
	return nil
}

// ensureBonusWallet opens the agent's bonus wallet on first use.
func (s *Service) ensureBonusWallet(ctx context.Context, agent *domain.Agent) error {
	if agent.BonusWalletID != "" {
		return nil
	}
	lctx, cancel := context.WithTimeout(ctx, s.cfg.LedgerTimeout)
	defer cancel()
	walletID, err := s.ledger.CreateAccount(lctx)
	if err != nil {
		return fmt.Errorf("error creating bonus wallet for agent: %d: %w", agent.ID, err)
	}
	stored, err := s.parties.SetAgentBonusWallet(ctx, agent.ID, walletID)
	if err != nil {
		return fmt.Errorf("error updating agent: %d bonus wallet: %w", agent.ID, err)
	}
	agent.BonusWalletID = stored
	zap.L().Info("bonus wallet opened", zap.Int64("agent_id", agent.ID), zap.String("wallet", stored))
	return nil
}

func (s *Service) submit(ctx context.Context, t ledger.Transfer) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.LedgerTimeout)
	defer cancel()
	return s.ledger.SubmitTransfer(ctx, t)
}

func (s *Service) notifyBonus(ctx context.Context, agent *domain.Agent, bonus decimal.Decimal) {
	n := &domain.Notification{
		Recipient:   domain.AgentParty(agent.ID),
		Title:       BonusTitle,
		Body:        fmt.Sprintf("%s monthly bonus received for this month.", bonus.String()),
		DeviceToken: agent.DeviceToken,
		DeviceType:  agent.DeviceType,
	}
	if err := s.notifier.Push(ctx, n); err != nil {
		zap.L().Warn("bonus notification not sent", zap.Int64("agent_id", agent.ID), zap.Error(err))
	}
}
