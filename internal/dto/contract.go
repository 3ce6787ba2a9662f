package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
)

type CreateContractRequestDTO struct {
	UserID           int64           `json:"user_id" example:"3"`
	SavingType       string          `json:"saving_type" example:"weekly"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	Duration         string          `json:"duration" example:"6M"`
	FirstPaymentDate string          `json:"first_payment_date" example:"2024-06-01"`
	Address          string          `json:"address" example:"Medina, Dakar"`
	Comment          string          `json:"comment"`
}

type ContractResponseDTO struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	AgentID          int64           `json:"agent_id"`
	SavingType       string          `json:"saving_type" example:"weekly"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"string" example:"500"`
	Duration         string          `json:"duration" example:"6M"`
	FirstPaymentDate string          `json:"first_payment_date" example:"2024-06-01"`
	EndDate          string          `json:"end_date" example:"2024-11-30"`
	Address          string          `json:"address"`
	Comment          string          `json:"comment"`
	IsCancelled      bool            `json:"is_cancelled"`
}

func NewContractResponse(c domain.Contract) ContractResponseDTO {
	return ContractResponseDTO{
		ID:               c.ID,
		UserID:           c.UserID,
		AgentID:          c.AgentID,
		SavingType:       string(c.SavingType),
		Amount:           c.Amount,
		Duration:         c.Duration,
		FirstPaymentDate: c.FirstPaymentDate.Format(DateLayout),
		EndDate:          c.EndDate.Format(DateLayout),
		Address:          c.Address,
		Comment:          c.Comment,
		IsCancelled:      c.IsCancelled,
	}
}

func NewContractList(contracts []domain.Contract) []ContractResponseDTO {
	resp := make([]ContractResponseDTO, 0, len(contracts))
	for _, c := range contracts {
		resp = append(resp, NewContractResponse(c))
	}
	return resp
}

type ScheduleResponseDTO struct {
	Contract ContractResponseDTO `json:"contract"`
	DueDates []string            `json:"due_dates" example:"2024-06-01,2024-07-01"`
}

func NewScheduleResponse(c domain.Contract, dates []time.Time) ScheduleResponseDTO {
	resp := ScheduleResponseDTO{Contract: NewContractResponse(c), DueDates: make([]string, 0, len(dates))}
	for _, d := range dates {
		resp.DueDates = append(resp.DueDates, d.Format(DateLayout))
	}
	return resp
}
