package reconcileservice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// FeeSchedule holds the monthly fee percentage per cadence and the house
// wallet that collects fees and pays bonuses.
type FeeSchedule struct {
	Rates       map[domain.Cadence]decimal.Decimal
	HouseWallet string
	Asset       string
	// DailySurcharge adds one period's nominal amount to the fee of daily
	// contracts.
	DailySurcharge bool
}

func NewFeeSchedule(daily, weekly, monthly float64, houseWallet, asset string) FeeSchedule {
	return FeeSchedule{
		Rates: map[domain.Cadence]decimal.Decimal{
			domain.CadenceDaily:   decimal.NewFromFloat(daily),
			domain.CadenceWeekly:  decimal.NewFromFloat(weekly),
			domain.CadenceMonthly: decimal.NewFromFloat(monthly),
		},
		HouseWallet:    houseWallet,
		Asset:          asset,
		DailySurcharge: true,
	}
}

func (f FeeSchedule) Rate(c domain.Cadence) (decimal.Decimal, error) {
	rate, ok := f.Rates[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("no fee rate for cadence %q", c)
	}
	return rate, nil
}

// Fee is total*rate/100, plus the contract amount for daily contracts when
// the surcharge is enabled. The result is rounded to ledger precision.
func (f FeeSchedule) Fee(c domain.Contract, total decimal.Decimal) (fee, rate decimal.Decimal, err error) {
	rate, err = f.Rate(c.SavingType)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	fee = total.Mul(rate).Div(hundred)
	if f.DailySurcharge && c.SavingType == domain.CadenceDaily {
		fee = fee.Add(c.Amount)
	}
	return fee.Round(7), rate, nil
}
