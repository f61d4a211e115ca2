package simulation

import (
	"fmt"
	"math"

	"BaselExplorer/internal/model"
)

// Policy bounds the decisions a player may take in one year.
type Policy struct {
	GrowthMin float64 // percent
	GrowthMax float64
	ROAMin    float64 // percent
	ROAMax    float64
}

// DefaultPolicy mirrors the slider ranges of the classroom tool.
func DefaultPolicy() Policy {
	return Policy{GrowthMin: -20, GrowthMax: 60, ROAMin: 0, ROAMax: 8}
}

// Validate checks the bounds are usable. A growth floor at or below -100%
// would allow assets to reach zero.
func (p Policy) Validate() error {
	if p.GrowthMin > p.GrowthMax {
		return fmt.Errorf("growth bounds inverted: [%v, %v]", p.GrowthMin, p.GrowthMax)
	}
	if p.GrowthMin <= -100 {
		return fmt.Errorf("growth floor must be above -100%%, got %v", p.GrowthMin)
	}
	if p.ROAMin < 0 || p.ROAMin > p.ROAMax {
		return fmt.Errorf("roa bounds invalid: [%v, %v]", p.ROAMin, p.ROAMax)
	}
	return nil
}

// Clamp forces params inside the policy bounds.
func (p Policy) Clamp(params model.YearParams) model.YearParams {
	params.GrowthRatePercent = clamp(params.GrowthRatePercent, p.GrowthMin, p.GrowthMax)
	params.ROAPercent = clamp(params.ROAPercent, p.ROAMin, p.ROAMax)
	return params
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
