package scoring

import (
	"fmt"
	"math"
)

// Weights defines the relative importance of each scoring component.
// All weights must sum to 1.0 (within a 0.001 tolerance). A Weights value is
// constructed once and passed into the engine; there is no mutable global.
type Weights struct {
	CompanySize       float64
	Engagement        float64
	BudgetFit         float64
	DecisionAuthority float64
	Timeline          float64
	DataQuality       float64
	Behavioral        float64
}

// DefaultWeights returns the production weight distribution.
func DefaultWeights() Weights {
	return Weights{
		CompanySize:       0.20,
		Engagement:        0.25,
		BudgetFit:         0.15,
		DecisionAuthority: 0.15,
		Timeline:          0.10,
		DataQuality:       0.10,
		Behavioral:        0.05,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.CompanySize + w.Engagement + w.BudgetFit +
		w.DecisionAuthority + w.Timeline + w.DataQuality + w.Behavioral
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{
		w.CompanySize, w.Engagement, w.BudgetFit,
		w.DecisionAuthority, w.Timeline, w.DataQuality, w.Behavioral,
	} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}
