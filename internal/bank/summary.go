package bank

import (
	"math"

	"BaselExplorer/internal/calculator"
	"BaselExplorer/internal/model"
)

// Outcome is the verdict on a run.
type Outcome string

const (
	OutcomeInProgress   Outcome = "IN_PROGRESS"
	OutcomeSurvived     Outcome = "SURVIVED"
	OutcomeIntervention Outcome = "INTERVENTION"
)

// Summary aggregates the committed history of a run.
type Summary struct {
	Years         int               `json:"years"`
	Last          *model.YearRecord `json:"last,omitempty"`
	LastStatus    *RegulatoryStatus `json:"last_status,omitempty"`
	MinCAR        float64           `json:"min_car"`
	MinLeverage   float64           `json:"min_leverage"`
	CapitalChange float64           `json:"capital_change"` // last capital minus initial capital
	AssetChange   float64           `json:"asset_change"`
	BreachYears   []int             `json:"breach_years"` // below the CAR buffer or the leverage minimum
	CARSeries     []float64         `json:"car_series"`
	Complete      bool              `json:"complete"`
	Outcome       Outcome           `json:"outcome"`
}

// RegulatoryStatus pairs the two classifications of a year.
type RegulatoryStatus struct {
	CAR      model.CARStatus      `json:"car"`
	Leverage model.LeverageStatus `json:"leverage"`
}

// Compliant reports whether both ratios are at or above their requirement.
func (r RegulatoryStatus) Compliant() bool {
	return r.CAR == model.CARAdequate && r.Leverage == model.LeverageAdequate
}

// StatusOf classifies a committed record.
func StatusOf(rec model.YearRecord) RegulatoryStatus {
	return RegulatoryStatus{
		CAR:      calculator.ClassifyCAR(rec.CAR),
		Leverage: calculator.ClassifyLeverage(rec.Leverage),
	}
}

// Summarize aggregates state.History. The run is complete once the year
// counter has moved past horizonEnd.
func Summarize(state model.BankState, horizonEnd int) Summary {
	sum := Summary{
		Years:       len(state.History),
		BreachYears: []int{},
		CARSeries:   make([]float64, 0, len(state.History)),
		Complete:    state.Year > horizonEnd,
		Outcome:     OutcomeInProgress,
	}
	if len(state.History) == 0 {
		return sum
	}

	sum.MinCAR = math.Inf(1)
	sum.MinLeverage = math.Inf(1)
	for _, rec := range state.History {
		sum.MinCAR = math.Min(sum.MinCAR, rec.CAR)
		sum.MinLeverage = math.Min(sum.MinLeverage, rec.Leverage)
		sum.CARSeries = append(sum.CARSeries, rec.CAR)
		if !StatusOf(rec).Compliant() {
			sum.BreachYears = append(sum.BreachYears, rec.Year)
		}
	}

	last := state.History[len(state.History)-1]
	status := StatusOf(last)
	sum.Last = &last
	sum.LastStatus = &status
	sum.CapitalChange = calculator.Round1(last.Capital - state.InitialCapital)
	sum.AssetChange = calculator.Round1(last.Assets - state.InitialAssets)

	if sum.Complete {
		if status.Compliant() {
			sum.Outcome = OutcomeSurvived
		} else {
			sum.Outcome = OutcomeIntervention
		}
	}
	return sum
}
