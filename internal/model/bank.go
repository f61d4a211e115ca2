package model

// BankState is the simulated bank at the start of Year.
type BankState struct {
	Year        int          `json:"year"`
	Capital     float64      `json:"capital"`      // $M equity capital
	Assets      float64      `json:"assets"`       // $M total assets
	RWAFraction float64      `json:"rwa_fraction"` // 0.0 ~ 1.0, fixed for the run
	History     []YearRecord `json:"history"`

	StartYear      int     `json:"start_year"`
	InitialCapital float64 `json:"initial_capital"`
	InitialAssets  float64 `json:"initial_assets"`
}

// YearRecord is the snapshot taken when a year is committed.
type YearRecord struct {
	Year        int     `json:"year"`
	Capital     float64 `json:"capital"`
	Assets      float64 `json:"assets"`
	CAR         float64 `json:"car"`      // percent
	Leverage    float64 `json:"leverage"` // percent
	RWAFraction float64 `json:"rwa_fraction"`
}

// YearParams are the decisions taken for one simulated year.
type YearParams struct {
	GrowthRatePercent float64 `json:"growth_rate_percent"`
	ROAPercent        float64 `json:"roa_percent"`
	Stress            bool    `json:"stress"`
}

// Metrics holds the regulatory ratios derived for a year.
type Metrics struct {
	CAR      float64 `json:"car"`
	Leverage float64 `json:"leverage"`
}

// YearTransition is the outcome of advancing a state by one year.
type YearTransition struct {
	NewCapital   float64 `json:"new_capital"`
	NewAssets    float64 `json:"new_assets"`
	CAR          float64 `json:"car"`
	Leverage     float64 `json:"leverage"`
	CapitalDelta float64 `json:"capital_delta"`
	Dividends    float64 `json:"dividends"`
	Provision    float64 `json:"provision"`
	GrossProfit  float64 `json:"gross_profit"`
}

// Metrics returns the ratios of the transition.
func (t YearTransition) Metrics() Metrics {
	return Metrics{CAR: t.CAR, Leverage: t.Leverage}
}
