package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

func (c Cadence) Valid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	default:
		return false
	}
}

type PartyKind string

const (
	PartyAgent PartyKind = "agent"
	PartyUser  PartyKind = "user"
)

// Party identifies either side of a value movement.
type Party struct {
	Kind PartyKind `db:"kind"`
	ID   int64     `db:"id"`
}

func AgentParty(id int64) Party { return Party{Kind: PartyAgent, ID: id} }
func UserParty(id int64) Party  { return Party{Kind: PartyUser, ID: id} }

type Contract struct {
	ID               int64           `db:"id"`
	UserID           int64           `db:"user_id"`
	AgentID          int64           `db:"agent_id"`
	SavingType       Cadence         `db:"saving_type"`
	Amount           decimal.Decimal `db:"amount"`
	Duration         string          `db:"duration"`
	FirstPaymentDate time.Time       `db:"first_payment_date"`
	EndDate          time.Time       `db:"end_date"`
	Address          string          `db:"address"`
	Comment          string          `db:"comment"`
	IsCancelled      bool            `db:"is_cancelled"`
	CreatedAt        time.Time       `db:"created_at"`
}

// Active reports whether the contract still takes part in scheduling on the
// given day. today must already be normalized to the start of its day.
func (c Contract) Active(today time.Time) bool {
	return !c.IsCancelled && !c.EndDate.Before(today)
}

type TransactionKind string

const (
	TransactionPayment    TransactionKind = "payment"
	TransactionCollection TransactionKind = "collection"
)

type Transaction struct {
	ID         int64           `db:"id"`
	Amount     decimal.Decimal `db:"amount"`
	Sender     Party           `db:"sender"`
	Receiver   Party           `db:"receiver"`
	ContractID *int64          `db:"contract_id"`
	DueDate    *time.Time      `db:"due_date"`
	Kind       TransactionKind `db:"kind"`
	LedgerRef  string          `db:"ledger_ref"`
	Memo       string          `db:"memo"`
	CreatedAt  time.Time       `db:"created_at"`
}

// MonthlyRecord is a fee row (counterparty is the user) or a bonus row
// (counterparty is the agent) for one contract and one month-end date.
type MonthlyRecord struct {
	ID           int64           `db:"id"`
	ContractID   int64           `db:"contract_id"`
	Counterparty Party           `db:"counterparty"`
	MonthEnd     time.Time       `db:"date"`
	SavingType   Cadence         `db:"saving_type"`
	Percentage   decimal.Decimal `db:"percentage"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	Amount       decimal.Decimal `db:"amount"`
	Settled      bool            `db:"payment_status"`
	Error        string          `db:"error"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type User struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	DialCode    string    `db:"dial_code"`
	PhoneNumber string    `db:"phone_number"`
	AccountID   string    `db:"account_id"`
	AgentID     int64     `db:"agent_id"`
	DeviceToken string    `db:"device_token"`
	DeviceType  string    `db:"device_type"`
	CreatedAt   time.Time `db:"created_at"`
}

type Agent struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	DialCode      string    `db:"dial_code"`
	PhoneNumber   string    `db:"phone_number"`
	AccountID     string    `db:"account_id"`
	BonusWalletID string    `db:"bonus_wallet_id"`
	PinHash       string    `db:"pin_hash"`
	DeviceToken   string    `db:"device_token"`
	DeviceType    string    `db:"device_type"`
	CreatedAt     time.Time `db:"created_at"`
}

func (a Agent) CanReceivePush() bool {
	return a.DeviceToken != "" && a.DeviceType != ""
}

type Notification struct {
	ID          int64             `db:"id"`
	Recipient   Party             `db:"recipient"`
	Title       string            `db:"title"`
	Body        string            `db:"body"`
	ImageURL    string            `db:"image_url"`
	Data        map[string]string `db:"data"`
	DeviceToken string            `db:"device_token"`
	DeviceType  string            `db:"device_type"`
	Topic       string            `db:"topic"`
	CreatedAt   time.Time         `db:"created_at"`
}
