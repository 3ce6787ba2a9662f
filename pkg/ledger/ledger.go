// Package ledger talks to the custodial wallet gateway that holds agent, user
// and house balances.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/pkg/clients"
	"github.com/Amitjang/XAlISS-SERVER/pkg/metrics"
)

// Amounts travel with the precision the gateway settles at.
const amountPrecision = 7

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrRejected        = errors.New("ledger rejected request")
)

type Transfer struct {
	ID     uuid.UUID
	From   string
	To     string
	Asset  string
	Amount decimal.Decimal
	Memo   string
}

type Account struct {
	ID       string    `json:"id"`
	Balances []Balance `json:"balances"`
}

type Balance struct {
	Asset   string `json:"asset"`
	Balance string `json:"balance"`
}

// BalanceOf returns the balance held in asset, or zero when the account has
// no such line.
func (a Account) BalanceOf(asset string) decimal.Decimal {
	for _, b := range a.Balances {
		if b.Asset == asset {
			d, err := decimal.NewFromString(b.Balance)
			if err != nil {
				return decimal.Zero
			}
			return d
		}
	}
	return decimal.Zero
}

type transferRequest struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
	Memo   string `json:"memo,omitempty"`
}

type transferResponse struct {
	ID   string `json:"id"`
	Hash string `json:"hash"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type Client struct {
	baseURL string
	http    clients.HTTPClientI
	timeout time.Duration
}

func New(baseURL string, client clients.HTTPClientI, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    client,
		timeout: timeout,
	}
}

func (c *Client) LoadAccount(ctx context.Context, accountID string) (*Account, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	code, body, err := c.http.Get(ctx, c.baseURL+"/accounts/"+url.PathEscape(accountID), nil)
	err = c.classify("load_account", start, code, body, err)
	if err != nil {
		if code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		return nil, err
	}

	var acc Account
	if err := json.Unmarshal(body, &acc); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &acc, nil
}

func (c *Client) CreateAccount(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	code, body, err := c.http.Post(ctx, c.baseURL+"/accounts", nil, []byte(`{}`))
	if err := c.classify("create_account", start, code, body, err); err != nil {
		return "", err
	}

	var acc Account
	if err := json.Unmarshal(body, &acc); err != nil {
		return "", fmt.Errorf("decode account: %w", err)
	}
	if acc.ID == "" {
		return "", errors.New("ledger returned an account without id")
	}
	return acc.ID, nil
}

// SubmitTransfer moves value between two wallets. The transfer id makes the
// call idempotent on the gateway side: a replay answers 409 and is treated as
// success.
func (c *Client) SubmitTransfer(ctx context.Context, t Transfer) (string, error) {
	if !t.Amount.IsPositive() {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidAmount, t.Amount.StringFixed(amountPrecision))
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	payload, err := json.Marshal(transferRequest{
		ID:     t.ID.String(),
		From:   t.From,
		To:     t.To,
		Asset:  t.Asset,
		Amount: t.Amount.StringFixed(amountPrecision),
		Memo:   t.Memo,
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	code, body, err := c.http.Post(ctx, c.baseURL+"/transfers", nil, payload)
	if code == http.StatusConflict && err == nil {
		zap.L().Info("transfer already applied", zap.String("transfer_id", t.ID.String()))
		metrics.ObserveLedgerCall("submit_transfer", "replayed", time.Since(start))
		return t.ID.String(), nil
	}
	if err := c.classify("submit_transfer", start, code, body, err); err != nil {
		if code == http.StatusNotFound {
			return "", fmt.Errorf("%w: %s", ErrAccountNotFound, t.From)
		}
		return "", err
	}

	var resp transferResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode transfer: %w", err)
	}
	if resp.Hash != "" {
		return resp.Hash, nil
	}
	return t.ID.String(), nil
}

// classify turns a transport result into an error. Network failures, timeouts
// and 5xx answers wrap domain.ErrLedgerUnavailable so callers can retry later.
func (c *Client) classify(op string, start time.Time, code int, body []byte, err error) error {
	switch {
	case err != nil:
		metrics.ObserveLedgerCall(op, "unavailable", time.Since(start))
		zap.L().Warn("ledger call failed", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", domain.ErrLedgerUnavailable, op, err)
	case code >= http.StatusInternalServerError:
		metrics.ObserveLedgerCall(op, "unavailable", time.Since(start))
		return fmt.Errorf("%w: %s: status %d", domain.ErrLedgerUnavailable, op, code)
	case code >= http.StatusBadRequest:
		metrics.ObserveLedgerCall(op, "rejected", time.Since(start))
		var e errorResponse
		_ = json.Unmarshal(body, &e)
		if code == http.StatusNotFound {
			return ErrAccountNotFound
		}
		return fmt.Errorf("%w: %s: status %d: %s", ErrRejected, op, code, e.Message)
	default:
		metrics.ObserveLedgerCall(op, "ok", time.Since(start))
		return nil
	}
}
