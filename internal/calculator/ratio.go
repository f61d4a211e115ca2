package calculator

import "BaselExplorer/internal/model"

// Basel III thresholds, in percent unless noted.
const (
	MinimumCAR         = 8.0
	BufferCAR          = 10.5
	MinimumLeverage    = 3.0
	CapitalRequirement = 0.08 // fraction of RWA
)

// CapitalAdequacy returns capital / rwa * 100.
// A non-positive rwa yields 0 rather than an error.
func CapitalAdequacy(capital, rwa float64) float64 {
	if rwa <= 0 {
		return 0
	}
	return capital / rwa * 100
}

// LeverageRatio returns capital / assets * 100, or 0 when assets <= 0.
func LeverageRatio(capital, assets float64) float64 {
	if assets <= 0 {
		return 0
	}
	return capital / assets * 100
}

// CAR is the rounded capital adequacy ratio of a bank whose risk-weighted
// assets are a fixed fraction of total assets.
func CAR(capital, assets, rwaFraction float64) float64 {
	return Round1(CapitalAdequacy(capital, assets*rwaFraction))
}

// Leverage is the rounded leverage ratio.
func Leverage(capital, assets float64) float64 {
	return Round1(LeverageRatio(capital, assets))
}

// ClassifyCAR maps a CAR to its regulatory band.
func ClassifyCAR(car float64) model.CARStatus {
	switch {
	case car >= BufferCAR:
		return model.CARAdequate
	case car >= MinimumCAR:
		return model.CARAboveMinimum
	default:
		return model.CARBelowMinimum
	}
}

// ClassifyLeverage maps a leverage ratio to its regulatory band.
func ClassifyLeverage(leverage float64) model.LeverageStatus {
	if leverage >= MinimumLeverage {
		return model.LeverageAdequate
	}
	return model.LeverageBelowRequirement
}
