package fatigue

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fatigue/stats/spectral"
)

var (
	// ErrInvalidMoment is spectral.ErrInvalidMoment re-exported.
	ErrInvalidMoment = spectral.ErrInvalidMoment

	ErrInvalidMaterialParameter = errors.New("invalid material fatigue parameter")
	ErrGammaDomain              = errors.New("gamma function pole")

	// ErrInfiniteLife accompanies a +Inf life when the damage intensity is zero.
	ErrInfiniteLife = errors.New("zero damage intensity: infinite life")

	// ErrInvalidDamage reports a NaN, infinite or negative damage intensity,
	// e.g. overflow of sqrt(2*m0)^k for very large k.
	ErrInvalidDamage = errors.New("damage intensity is not a finite positive number")

	ErrNoConvergence  = errors.New("no admissible root for zhao-baker coefficient")
	ErrUnknownMethod  = errors.New("unknown estimation method")
	ErrLengthMismatch = errors.New("dst and input must have same length")
)

func validateMaterial(c, k float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return fmt.Errorf("C must be finite and > 0: %v: %w", c, ErrInvalidMaterialParameter)
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return fmt.Errorf("k must be finite: %v: %w", k, ErrInvalidMaterialParameter)
	}
	return validateGammaArg(1 + k/2)
}

// validateGammaArg rejects the poles of Γ (0, -1, -2, ...).
func validateGammaArg(x float64) error {
	if x <= 0 && x == math.Trunc(x) {
		return fmt.Errorf("gamma(%v): %w", x, ErrGammaDomain)
	}
	return nil
}

// lifeFromDamage inverts a damage intensity.
func lifeFromDamage(d float64) (float64, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0, fmt.Errorf("damage intensity %v: %w", d, ErrInvalidDamage)
	}
	if d == 0 {
		return math.Inf(1), ErrInfiniteLife
	}
	t := 1 / d
	if math.IsInf(t, 1) {
		return t, ErrInfiniteLife
	}
	return t, nil
}
