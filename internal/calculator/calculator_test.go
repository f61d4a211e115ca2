package calculator

import (
	"math"
	"testing"

	"BaselExplorer/internal/model"
)

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{8.96, 9.0},
		{44.800000000000004, 44.8},
		{1120.0000000000002, 1120.0},
		{0.25, 0.2},
		{0.35, 0.3}, // 0.35 is stored just below the midpoint
		{0.75, 0.8},
		{-22.4, -22.4},
		{13.399999999999999, 13.4},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRound1_NonFinite(t *testing.T) {
	if !math.IsNaN(Round1(math.NaN())) {
		t.Error("expected NaN to pass through")
	}
	if !math.IsInf(Round1(math.Inf(1)), 1) {
		t.Error("expected +Inf to pass through")
	}
}

func TestCARAndLeverage(t *testing.T) {
	if got := CAR(163.4, 1120, 0.70); got != 20.8 {
		t.Errorf("CAR = %v, want 20.8", got)
	}
	if got := Leverage(163.4, 1120); got != 14.6 {
		t.Errorf("Leverage = %v, want 14.6", got)
	}
}

func TestCARLeverageIdentity(t *testing.T) {
	cases := []struct{ capital, assets, frac float64 }{
		{150, 1000, 0.70},
		{80, 2500, 0.45},
		{12, 100, 1.0},
	}
	for _, c := range cases {
		car := CapitalAdequacy(c.capital, c.assets*c.frac)
		lev := LeverageRatio(c.capital, c.assets)
		if math.Abs(car/lev-1/c.frac) > 1e-9 {
			t.Errorf("car/leverage = %v, want %v", car/lev, 1/c.frac)
		}
	}
}

func TestRatios_ZeroDenominator(t *testing.T) {
	if got := CAR(100, 0, 0.7); got != 0 {
		t.Errorf("CAR with zero assets = %v, want 0", got)
	}
	if got := CAR(100, 1000, 0); got != 0 {
		t.Errorf("CAR with zero rwa fraction = %v, want 0", got)
	}
	if got := Leverage(100, 0); got != 0 {
		t.Errorf("Leverage with zero assets = %v, want 0", got)
	}
}

func TestClassifyCAR_Boundaries(t *testing.T) {
	tests := []struct {
		car  float64
		want model.CARStatus
	}{
		{25, model.CARAdequate},
		{10.5, model.CARAdequate},
		{10.4, model.CARAboveMinimum},
		{8.0, model.CARAboveMinimum},
		{7.9, model.CARBelowMinimum},
		{0, model.CARBelowMinimum},
	}
	for _, tt := range tests {
		if got := ClassifyCAR(tt.car); got != tt.want {
			t.Errorf("ClassifyCAR(%v) = %s, want %s", tt.car, got, tt.want)
		}
	}
}

func TestClassifyLeverage_Boundaries(t *testing.T) {
	if got := ClassifyLeverage(3.0); got != model.LeverageAdequate {
		t.Errorf("ClassifyLeverage(3.0) = %s", got)
	}
	if got := ClassifyLeverage(2.9); got != model.LeverageBelowRequirement {
		t.Errorf("ClassifyLeverage(2.9) = %s", got)
	}
}

func TestEvaluateDualConstraint(t *testing.T) {
	tests := []struct {
		name                    string
		capital, assets, rwaPct float64
		want                    model.BindingConstraint
	}{
		// car = 100/1050*100 = 9.5, leverage = 6.7
		{"risk based binds", 100, 1500, 70, model.ConstraintRiskBased},
		// car = 100/2000*100 = 5, leverage = 2
		{"both violated", 100, 5000, 40, model.ConstraintBoth},
		// car = 140/1000*100 = 14, leverage = 2.8
		{"leverage binds", 140, 5000, 20, model.ConstraintLeverage},
		{"both satisfied", 300, 1500, 70, model.ConstraintNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := EvaluateDualConstraint(tt.capital, tt.assets, tt.rwaPct)
			if dc.Binding != tt.want {
				t.Errorf("binding = %s, want %s (car=%.2f lev=%.2f)", dc.Binding, tt.want, dc.CAR, dc.Leverage)
			}
		})
	}
}

func TestEvaluateDualConstraint_ZeroRWA(t *testing.T) {
	dc := EvaluateDualConstraint(100, 1500, 0)
	if dc.CAR != 0 {
		t.Errorf("CAR = %v, want 0 for zero RWA", dc.CAR)
	}
	if dc.Binding != model.ConstraintRiskBased {
		t.Errorf("binding = %s, want RISK_BASED", dc.Binding)
	}
}
