package fatigue

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fatigue/stats/spectral"
	"github.com/cwbudde/algo-vecmath"
)

// Alpha075SweepC writes the alpha075 life for each coefficient cs[i] into
// dst[i] at a fixed exponent k. Life is linear in C, so the unit-C life is
// evaluated once and scaled.
//
// If the statistics give zero damage, dst is filled with +Inf and
// ErrInfiniteLife is returned. s and cs are only read.
func Alpha075SweepC(dst []float64, s spectral.Stats, cs []float64, k float64) error {
	if len(dst) != len(cs) {
		return fmt.Errorf("%d != %d: %w", len(dst), len(cs), ErrLengthMismatch)
	}
	for i, c := range cs {
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			return fmt.Errorf("cs[%d] = %v: %w", i, c, ErrInvalidMaterialParameter)
		}
	}

	unit, err := Alpha075Life(s, 1, k)
	if errors.Is(err, ErrInfiniteLife) {
		for i := range dst {
			dst[i] = math.Inf(1)
		}
		return err
	}
	if err != nil {
		return err
	}

	vecmath.ScaleBlock(dst, cs, unit)
	return nil
}
