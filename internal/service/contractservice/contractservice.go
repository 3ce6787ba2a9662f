package contractservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/schedule"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/notifyservice"
)

//go:generate mockgen -source=contractservice.go -destination=mock_contractservice.go -package=contractservice

var ErrInvalidContract = errors.New("invalid contract")

type ContractRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Contract, error)
	Create(ctx context.Context, c *domain.Contract) error
	Cancel(ctx context.Context, id int64) error
	CountActive(ctx context.Context, today time.Time) (int64, error)
}

type PartyRepo interface {
	FindUser(ctx context.Context, id int64) (*domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
	CountUsersSince(ctx context.Context, since time.Time) (int64, error)
}

type Notifier interface {
	SMS(ctx context.Context, dialCode, phone, template string, vars map[string]string) error
}

type CreateRequest struct {
	UserID           int64
	SavingType       domain.Cadence
	Amount           decimal.Decimal
	Duration         string
	FirstPaymentDate time.Time
	Address          string
	Comment          string
}

type Schedule struct {
	Contract domain.Contract
	DueDates []time.Time
}

type Stats struct {
	Customers       int64 `json:"customers"`
	CustomersToday  int64 `json:"customers_today"`
	ActiveContracts int64 `json:"active_contracts"`
}

type Service struct {
	contracts ContractRepo
	parties   PartyRepo
	notifier  Notifier
	loc       *time.Location
	now       func() time.Time
}

func New(contracts ContractRepo, parties PartyRepo, notifier Notifier, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		contracts: contracts,
		parties:   parties,
		notifier:  notifier,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *Service) today() time.Time {
	return schedule.StartOfDay(s.now().In(s.loc))
}

// Create opens a contract for one of the agent's customers. The end date is
// derived from the duration code.
func (s *Service) Create(ctx context.Context, agentID int64, req CreateRequest) (*domain.Contract, error) {
	if !req.SavingType.Valid() {
		return nil, fmt.Errorf("%w: unknown saving type %q", ErrInvalidContract, req.SavingType)
	}
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	first := schedule.DateIn(req.FirstPaymentDate, s.loc)
	if first.Before(s.today()) {
		return nil, fmt.Errorf("%w: first payment date is in the past", ErrInvalidContract)
	}
	end, err := schedule.EndDate(first, req.Duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContract, err)
	}
	if !end.After(first) {
		return nil, fmt.Errorf("%w: end date must be after first payment date", ErrInvalidContract)
	}

	user, err := s.parties.FindUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.AgentID != agentID {
		return nil, domain.ErrNotFound
	}

	c := &domain.Contract{
		UserID:           user.ID,
		AgentID:          agentID,
		SavingType:       req.SavingType,
		Amount:           req.Amount,
		Duration:         req.Duration,
		FirstPaymentDate: first,
		EndDate:          end,
		Address:          req.Address,
		Comment:          req.Comment,
	}
	if err := s.contracts.Create(ctx, c); err != nil {
		return nil, err
	}
	zap.L().Info("contract created", zap.Int64("contract_id", c.ID), zap.Int64("agent_id", agentID), zap.String("saving_type", string(c.SavingType)))

	s.notifySubscription(ctx, c, user)
	return c, nil
}

func (s *Service) notifySubscription(ctx context.Context, c *domain.Contract, user *domain.User) {
	calendar, err := schedule.GenerateDueDates(c.SavingType, c.FirstPaymentDate, c.EndDate)
	if err != nil {
		return
	}
	vars := map[string]string{
		"customer_last_name":                    user.Name,
		"type_of_saving":                        string(c.SavingType),
		"date_of_beginning":                     c.FirstPaymentDate.Format("2006-01-02"),
		"date_of_end":                           c.EndDate.Format("2006-01-02"),
		"amount":                                c.Amount.String(),
		"total_ammount_to_save_during_contract": c.Amount.Mul(decimal.NewFromInt(int64(len(calendar)))).String(),
	}
	if err := s.notifier.SMS(ctx, user.DialCode, user.PhoneNumber, notifyservice.TemplateContractSubscription, vars); err != nil {
		zap.L().Warn("subscription sms not sent", zap.Int64("contract_id", c.ID), zap.Error(err))
	}
}

// Get returns the contract if it belongs to the agent.
func (s *Service) Get(ctx context.Context, agentID, id int64) (*domain.Contract, error) {
	c, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.AgentID != agentID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) Cancel(ctx context.Context, agentID, id int64) error {
	if _, err := s.Get(ctx, agentID, id); err != nil {
		return err
	}
	if err := s.contracts.Cancel(ctx, id); err != nil {
		return err
	}
	zap.L().Info("contract cancelled", zap.Int64("contract_id", id), zap.Int64("agent_id", agentID))
	return nil
}

// Schedule returns the contract together with all of its due dates.
func (s *Service) Schedule(ctx context.Context, agentID, id int64) (*Schedule, error) {
	c, err := s.Get(ctx, agentID, id)
	if err != nil {
		return nil, err
	}
	dates, err := schedule.GenerateDueDates(c.SavingType, schedule.DateIn(c.FirstPaymentDate, s.loc), schedule.DateIn(c.EndDate, s.loc))
	if err != nil {
		return nil, err
	}
	return &Schedule{Contract: *c, DueDates: dates}, nil
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	today := s.today()
	customers, err := s.parties.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	customersToday, err := s.parties.CountUsersSince(ctx, today)
	if err != nil {
		return nil, err
	}
	active, err := s.contracts.CountActive(ctx, today)
	if err != nil {
		return nil, err
	}
	return &Stats{Customers: customers, CustomersToday: customersToday, ActiveContracts: active}, nil
}
