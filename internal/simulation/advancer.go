package simulation

import (
	"BaselExplorer/internal/calculator"
	"BaselExplorer/internal/model"
)

// Policy constants of the year advancer.
const (
	DividendPayoutRatio = 0.5   // half of gross profit is always distributed
	NormalProvisionRate = 0.008 // of total assets
	StressProvisionRate = 0.04
)

// AdvanceYear computes the bank one year on from state. It has no side
// effects; the caller decides whether to commit the result.
//
// params.GrowthRatePercent is expected inside the policy bounds (see
// Policy.Clamp) and params.ROAPercent to be non-negative. Every step is
// rounded to one decimal place except the capital delta.
func AdvanceYear(state model.BankState, params model.YearParams) model.YearTransition {
	newAssets := calculator.Round1(state.Assets * (1 + params.GrowthRatePercent/100))
	grossProfit := calculator.Round1(newAssets * (params.ROAPercent / 100))
	dividends := calculator.Round1(grossProfit * DividendPayoutRatio)
	provision := calculator.Round1(newAssets * provisionRate(params.Stress))

	capitalDelta := grossProfit - provision - dividends
	newCapital := calculator.Round1(state.Capital + capitalDelta)

	return model.YearTransition{
		NewCapital:   newCapital,
		NewAssets:    newAssets,
		CAR:          calculator.CAR(newCapital, newAssets, state.RWAFraction),
		Leverage:     calculator.Leverage(newCapital, newAssets),
		CapitalDelta: capitalDelta,
		Dividends:    dividends,
		Provision:    provision,
		GrossProfit:  grossProfit,
	}
}

func provisionRate(stress bool) float64 {
	if stress {
		return StressProvisionRate
	}
	return NormalProvisionRate
}
