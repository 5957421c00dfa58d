package spectral

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMoment reports a spectral statistics bundle that cannot describe
// a real stress process (negative, non-finite or degenerate moments).
var ErrInvalidMoment = errors.New("invalid spectral moment")

// Stats holds precomputed spectral statistics of a stress-response process.
type Stats struct {
	M0   float64 // zeroth moment (variance) [MPa^2]
	M075 float64 // 0.75-order moment
	M150 float64 // 1.5-order moment
	Nu   float64 // expected zero-up-crossing rate [1/s]

	// Irregularity parameters. Zero means not provided; only the
	// Zhao-Baker estimators require them.
	Alpha2   float64 // m2 / sqrt(m0*m4)
	PeakRate float64 // expected peak rate [1/s]
}

func checkField(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite: %v: %w", name, v, ErrInvalidMoment)
	}
	if v < 0 {
		return fmt.Errorf("%s must be >= 0: %v: %w", name, v, ErrInvalidMoment)
	}
	return nil
}

// Validate checks the moments and crossing rate used by the alpha075
// estimator. M0 and M150 must be strictly positive.
func (s Stats) Validate() error {
	if err := s.ValidateVariance(); err != nil {
		return err
	}
	if err := checkField("m075", s.M075); err != nil {
		return err
	}
	if err := checkField("m150", s.M150); err != nil {
		return err
	}
	if s.M150 == 0 {
		return fmt.Errorf("m150 must be > 0: %w", ErrInvalidMoment)
	}
	if s.M0*s.M150 <= 0 {
		return fmt.Errorf("m0*m150 underflows to zero: %w", ErrInvalidMoment)
	}
	return nil
}

// ValidateVariance checks only M0 and Nu, which is all a narrow-band
// estimate needs.
func (s Stats) ValidateVariance() error {
	if err := checkField("m0", s.M0); err != nil {
		return err
	}
	if s.M0 == 0 {
		return fmt.Errorf("m0 must be > 0: %w", ErrInvalidMoment)
	}
	return checkField("nu", s.Nu)
}

// ValidateIrregularity checks Alpha2 and PeakRate.
func (s Stats) ValidateIrregularity() error {
	if math.IsNaN(s.Alpha2) || s.Alpha2 <= 0 || s.Alpha2 > 1 {
		return fmt.Errorf("alpha2 must be in (0,1]: %v: %w", s.Alpha2, ErrInvalidMoment)
	}
	if math.IsNaN(s.PeakRate) || math.IsInf(s.PeakRate, 0) || s.PeakRate <= 0 {
		return fmt.Errorf("peak rate must be > 0: %v: %w", s.PeakRate, ErrInvalidMoment)
	}
	return nil
}

// Alpha075 returns the bandwidth parameter m075 / sqrt(m0*m150).
// It lies in (0,1] for moments taken from one consistent spectrum.
func (s Stats) Alpha075() (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s.M075 / math.Sqrt(s.M0*s.M150), nil
}
