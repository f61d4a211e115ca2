package provisioning

import "BaselExplorer/internal/model"

// Horizon of the credit-cycle simulation.
const (
	FirstYear = 2025
	Years     = 5
)

// LossGivenDefault is applied to every defaulted exposure.
const LossGivenDefault = 0.5

// IFRS9BaseRate is the 12-month expected loss provisioned each year under
// IFRS 9, as a fraction of the loan book.
const IFRS9BaseRate = 0.01

// pdTable holds annual probabilities of default, in percent.
var pdTable = map[model.Scenario][Years]float64{
	model.ScenarioBoom:      {0.5, 0.4, 0.3, 0.4, 0.5},
	model.ScenarioNormal:    {1.0, 1.2, 1.5, 1.8, 1.6},
	model.ScenarioRecession: {2.0, 3.5, 6.0, 12.0, 8.0},
}

// Recession loss recognition profiles. IFRS 9 front-loads the expected
// loss, IAS 39 books it once incurred.
var (
	frontProportions = [Years]float64{0.35, 0.30, 0.20, 0.10, 0.05}
	backProportions  = [Years]float64{0.00, 0.05, 0.15, 0.35, 0.45}
)

// PDs returns the probability-of-default path of s.
func PDs(s model.Scenario) [Years]float64 {
	return pdTable[s]
}

// Bounds of the simulator inputs.
const (
	MinBook = 100.0
	MaxBook = 2000.0
	MinRate = 10.0
	MaxRate = 25.0
)
