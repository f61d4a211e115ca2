package model

// Portfolio is an asset allocation in $M across the standardised risk buckets.
type Portfolio struct {
	Cash      float64 `json:"cash"`
	GovBonds  float64 `json:"gov_bonds"`
	Mortgages float64 `json:"mortgages"`
	CorpLoans float64 `json:"corp_loans"`
	HighYield float64 `json:"high_yield"`
	Unrated   float64 `json:"unrated"`
}

// Allocations returns the buckets in risk-weight order.
func (p Portfolio) Allocations() []float64 {
	return []float64{p.Cash, p.GovBonds, p.Mortgages, p.CorpLoans, p.HighYield, p.Unrated}
}
