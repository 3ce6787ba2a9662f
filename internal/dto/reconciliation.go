package dto

import (
	"github.com/Amitjang/XAlISS-SERVER/internal/service/reconcileservice"
)

type ReconciliationResponseDTO struct {
	MonthEnd string                     `json:"month_end" example:"2024-02-29"`
	Outcomes []reconcileservice.Outcome `json:"outcomes"`
	Failed   int                        `json:"failed"`
}

func NewReconciliationResponse(monthEnd string, outcomes []reconcileservice.Outcome) ReconciliationResponseDTO {
	resp := ReconciliationResponseDTO{MonthEnd: monthEnd, Outcomes: outcomes}
	if resp.Outcomes == nil {
		resp.Outcomes = []reconcileservice.Outcome{}
	}
	for _, o := range outcomes {
		if o.FeeStatus == reconcileservice.StatusFailed || o.BonusStatus == reconcileservice.StatusFailed {
			resp.Failed++
		}
	}
	return resp
}
