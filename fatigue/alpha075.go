package fatigue

import (
	"math"

	"github.com/cwbudde/algo-fatigue/stats/spectral"
)

// Alpha075Life returns the fatigue life estimated with the Benasciutti-Tovo
// alpha075 method:
//
//	a075 = m075 / sqrt(m0*m150)
//	D_NB = nu * sqrt(2*m0)^k * Γ(1 + k/2) / C
//	T    = 1 / (a075^2 * D_NB)
func Alpha075Life(s spectral.Stats, c, k float64) (float64, error) {
	a075, err := s.Alpha075()
	if err != nil {
		return 0, err
	}
	if err := validateMaterial(c, k); err != nil {
		return 0, err
	}
	return lifeFromDamage(a075 * a075 * narrowBandDamage(s.M0, s.Nu, c, k))
}

// NarrowBandLife returns the life predicted by the narrow-band (Rayleigh)
// approximation, T = 1 / D_NB. Only M0 and Nu are read.
func NarrowBandLife(s spectral.Stats, c, k float64) (float64, error) {
	if err := s.ValidateVariance(); err != nil {
		return 0, err
	}
	if err := validateMaterial(c, k); err != nil {
		return 0, err
	}
	return lifeFromDamage(narrowBandDamage(s.M0, s.Nu, c, k))
}

func narrowBandDamage(m0, nu, c, k float64) float64 {
	return nu * math.Pow(math.Sqrt(2*m0), k) * math.Gamma(1+k/2) / c
}
