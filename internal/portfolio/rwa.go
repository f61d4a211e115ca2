package portfolio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"BaselExplorer/internal/calculator"
	"BaselExplorer/internal/model"
)

// Bucket is a standardised-approach asset class with its risk weight.
type Bucket struct {
	Name   string
	Weight decimal.Decimal
}

// Buckets lists the asset classes in the order of model.Portfolio.Allocations.
var Buckets = []Bucket{
	{Name: "Cash", Weight: decimal.Zero},
	{Name: "Government bonds", Weight: decimal.RequireFromString("0.10")},
	{Name: "Mortgages", Weight: decimal.RequireFromString("0.50")},
	{Name: "Corporate IG", Weight: decimal.RequireFromString("1.00")},
	{Name: "High-yield", Weight: decimal.RequireFromString("1.20")},
	{Name: "Unrated", Weight: decimal.RequireFromString("1.50")},
}

// Book size in $M and the equity held against it.
const (
	BookSize       = 100
	InitialCapital = 12
)

// NoRiskCAR is reported when the portfolio carries no risk-weighted assets.
const NoRiskCAR = 100.0

// Contribution is one bucket's share of the RWA.
type Contribution struct {
	Name       string  `json:"name"`
	Allocation float64 `json:"allocation"`
	Weight     float64 `json:"weight"`
	RWA        float64 `json:"rwa"`
}

// Result is the evaluation of a portfolio.
type Result struct {
	Total           float64         `json:"total"` // $M, reported as BookSize when allocations drift
	RWA             float64         `json:"rwa"`
	RequiredCapital float64         `json:"required_capital"`
	CAR             float64         `json:"car"`
	Status          model.CARStatus `json:"status"`
	Contributions   []Contribution  `json:"contributions"`
	Warning         string          `json:"warning,omitempty"`
}

// Evaluate computes risk-weighted assets, the 8% minimum capital and the
// CAR of a bank holding InitialCapital against p. Negative allocations are
// treated as zero and reported in Result.Warning.
func Evaluate(p model.Portfolio) Result {
	allocs := p.Allocations()
	var clamped []string
	for i, a := range allocs {
		if !(a >= 0) {
			allocs[i] = 0
			clamped = append(clamped, Buckets[i].Name)
		}
	}
	rwa := decimal.Zero
	total := decimal.Zero
	contribs := make([]Contribution, len(Buckets))

	for i, b := range Buckets {
		alloc := decimal.NewFromFloat(allocs[i])
		part := alloc.Mul(b.Weight)
		rwa = rwa.Add(part)
		total = total.Add(alloc)
		contribs[i] = Contribution{
			Name:       b.Name,
			Allocation: allocs[i],
			Weight:     b.Weight.InexactFloat64(),
			RWA:        part.InexactFloat64(),
		}
	}

	required := rwa.Mul(decimal.NewFromFloat(calculator.CapitalRequirement))

	car := NoRiskCAR
	if rwa.IsPositive() {
		car = decimal.NewFromInt(InitialCapital).Div(rwa).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	res := Result{
		Total:           total.InexactFloat64(),
		RWA:             rwa.InexactFloat64(),
		RequiredCapital: required.InexactFloat64(),
		CAR:             car,
		Status:          calculator.ClassifyCAR(car),
		Contributions:   contribs,
	}
	var warnings []string
	if len(clamped) > 0 {
		warnings = append(warnings, "negative allocations set to zero: "+strings.Join(clamped, ", "))
	}
	if !total.Equal(decimal.NewFromInt(BookSize)) {
		warnings = append(warnings, fmt.Sprintf("allocations total $%sM, adjust to $%dM", total.String(), BookSize))
		res.Total = BookSize
	}
	res.Warning = strings.Join(warnings, "; ")
	return res
}
