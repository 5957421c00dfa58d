package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fatigue/stats/spectral"
)

// DeterministicStats generates n internally consistent statistics bundles
// with a fixed seed. Alpha075 lies in [0.2, 0.95], Alpha2 = Alpha075^6 and
// all rates are positive.
func DeterministicStats(seed int64, n int) []spectral.Stats {
	rng := rand.New(rand.NewSource(seed))
	out := make([]spectral.Stats, n)
	for i := range out {
		m0 := 0.1 + rng.Float64()*100
		m150 := 0.1 + rng.Float64()*50
		a075 := 0.2 + rng.Float64()*0.75
		out[i] = spectral.Stats{
			M0:       m0,
			M075:     a075 * math.Sqrt(m0*m150),
			M150:     m150,
			Nu:       0.5 + rng.Float64()*100,
			Alpha2:   math.Pow(a075, 6),
			PeakRate: 1 + rng.Float64()*200,
		}
	}
	return out
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}
