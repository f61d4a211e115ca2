package model

// CARStatus classifies a capital adequacy ratio against Basel III thresholds.
type CARStatus string

const (
	CARAdequate     CARStatus = "ADEQUATE"
	CARAboveMinimum CARStatus = "ABOVE_MINIMUM"
	CARBelowMinimum CARStatus = "BELOW_MINIMUM"
)

// Label returns a human readable description.
func (s CARStatus) Label() string {
	switch s {
	case CARAdequate:
		return "well capitalised"
	case CARAboveMinimum:
		return "above minimum but below buffer"
	case CARBelowMinimum:
		return "below regulatory minimum"
	}
	return "unknown"
}

// LeverageStatus classifies a leverage ratio.
type LeverageStatus string

const (
	LeverageAdequate         LeverageStatus = "ADEQUATE"
	LeverageBelowRequirement LeverageStatus = "BELOW_REQUIREMENT"
)

func (s LeverageStatus) Label() string {
	if s == LeverageAdequate {
		return "adequate"
	}
	return "below requirement"
}

// BindingConstraint names which of the two capital rules a bank is failing.
type BindingConstraint string

const (
	ConstraintNone      BindingConstraint = "NONE"
	ConstraintRiskBased BindingConstraint = "RISK_BASED"
	ConstraintLeverage  BindingConstraint = "LEVERAGE"
	ConstraintBoth      BindingConstraint = "BOTH"
)
