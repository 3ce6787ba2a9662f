package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/collectionservice"
)

const DateLayout = "2006-01-02"

type CollectRequestDTO struct {
	ContractID int64 `json:"contract_id" example:"12"`
	// Amount is optional and defaults to the contract amount.
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
}

type TransactionResponseDTO struct {
	ID         int64           `json:"id"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	Kind       string          `json:"kind" example:"collection"`
	ContractID *int64          `json:"contract_id,omitempty"`
	DueDate    string          `json:"due_date,omitempty" example:"2024-05-15"`
	LedgerRef  string          `json:"ledger_ref"`
	CreatedAt  string          `json:"created_at,omitempty" example:"2024-05-15T10:04:05Z"`
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponseDTO {
	resp := TransactionResponseDTO{
		ID:         t.ID,
		Amount:     t.Amount,
		Kind:       string(t.Kind),
		ContractID: t.ContractID,
		LedgerRef:  t.LedgerRef,
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(DateLayout)
	}
	if !t.CreatedAt.IsZero() {
		resp.CreatedAt = t.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

type AuthorizationResponseDTO struct {
	Allow      bool   `json:"allow"`
	ContractID *int64 `json:"contract_id,omitempty"`
	DueDate    string `json:"due_date,omitempty" example:"2024-05-15"`
	Reason     string `json:"reason,omitempty" example:"already collected for date 2024-05-15"`
}

func NewAuthorizationResponse(a *collectionservice.Authorization) AuthorizationResponseDTO {
	resp := AuthorizationResponseDTO{Allow: a.Allow, Reason: a.Reason}
	if a.Tag != nil {
		id := a.Tag.ContractID
		resp.ContractID = &id
		resp.DueDate = a.Tag.DueDate.Format(DateLayout)
	}
	return resp
}
