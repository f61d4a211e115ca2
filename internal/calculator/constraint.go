package calculator

import "BaselExplorer/internal/model"

// DualConstraint is the risk-based versus leverage comparison for one balance sheet.
type DualConstraint struct {
	Capital    float64                 `json:"capital"`
	Assets     float64                 `json:"assets"`
	RWAPercent float64                 `json:"rwa_percent"`
	RWA        float64                 `json:"rwa"`
	CAR        float64                 `json:"car"`
	Leverage   float64                 `json:"leverage"`
	Binding    model.BindingConstraint `json:"binding"`
}

// EvaluateDualConstraint computes both ratios unrounded and reports which
// rule the bank fails. The CAR is judged against the 10.5% buffer.
func EvaluateDualConstraint(capital, assets, rwaPercent float64) DualConstraint {
	rwa := assets * (rwaPercent / 100)
	car := CapitalAdequacy(capital, rwa)
	leverage := LeverageRatio(capital, assets)

	carOK := car >= BufferCAR
	levOK := leverage >= MinimumLeverage

	var binding model.BindingConstraint
	switch {
	case carOK && levOK:
		binding = model.ConstraintNone
	case !carOK && !levOK:
		binding = model.ConstraintBoth
	case !carOK:
		binding = model.ConstraintRiskBased
	default:
		binding = model.ConstraintLeverage
	}

	return DualConstraint{
		Capital:    capital,
		Assets:     assets,
		RWAPercent: rwaPercent,
		RWA:        rwa,
		CAR:        car,
		Leverage:   leverage,
		Binding:    binding,
	}
}
