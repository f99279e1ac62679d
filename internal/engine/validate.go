package engine

import "github.com/theirongolddev/mburn/internal/model"

// MaxCorrelation is the upper bound for Params.Correlation. The copula's
// correlation matrix is positive definite by construction for strengths in
// [0, MaxCorrelation]; values beyond are rejected rather than clamped.
const MaxCorrelation = 0.95

// ValidateParams checks every parameter against its documented domain.
// It returns an error wrapping ErrInvalidParameter naming the first
// offending input.
func ValidateParams(p model.Params) error {
	if p.Trials < 1 {
		return invalidf("trials must be at least 1, got %d", p.Trials)
	}
	if p.Correlation < 0 || p.Correlation > MaxCorrelation {
		return invalidf("correlation must be in [0, %.2f], got %g", MaxCorrelation, p.Correlation)
	}
	if p.FoodMin > p.FoodMode {
		return invalidf("food minimum %g exceeds mode %g", p.FoodMin, p.FoodMode)
	}
	if p.FoodMode > p.FoodMax {
		return invalidf("food mode %g exceeds maximum %g", p.FoodMode, p.FoodMax)
	}
	if p.FoodMin == p.FoodMax {
		return invalidf("food minimum and maximum are both %g; the range must be non-empty", p.FoodMin)
	}
	if p.TransportWidth <= 0 {
		return invalidf("transport width must be positive, got %g", p.TransportWidth)
	}
	if p.LifestyleSigma <= 0 {
		return invalidf("lifestyle sigma must be positive, got %g", p.LifestyleSigma)
	}
	if p.ShockProb < 0 || p.ShockProb > 1 {
		return invalidf("shock probability must be in [0, 1], got %g", p.ShockProb)
	}
	if p.ShockCost < 0 {
		return invalidf("shock cost must be non-negative, got %g", p.ShockCost)
	}
	if p.HousingStddev <= 0 {
		return invalidf("housing stddev must be positive, got %g", p.HousingStddev)
	}
	return nil
}
