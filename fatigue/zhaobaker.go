package fatigue

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fatigue/internal/polyroot"
	"github.com/cwbudde/algo-fatigue/stats/spectral"
	"github.com/cwbudde/algo-vecmath"
)

// ZhaoBakerVariant selects the coefficient set of the Zhao-Baker method.
type ZhaoBakerVariant int

const (
	// ZhaoBakerBase is tuned for 2 <= k <= 6.
	ZhaoBakerBase ZhaoBakerVariant = iota
	// ZhaoBakerImproved is tuned for k = 3 and also reads m075.
	ZhaoBakerImproved
)

func (v ZhaoBakerVariant) String() string {
	switch v {
	case ZhaoBakerBase:
		return "base"
	case ZhaoBakerImproved:
		return "improved"
	default:
		return fmt.Sprintf("ZhaoBakerVariant(%d)", int(v))
	}
}

// ZhaoBakerCoefficients are the Weibull scale a, shape b and weight w of the
// Zhao-Baker cycle amplitude distribution.
type ZhaoBakerCoefficients struct {
	A, B, W float64
}

// ZhaoBakerCoeffs computes the distribution coefficients for s.
func ZhaoBakerCoeffs(s spectral.Stats, v ZhaoBakerVariant) (ZhaoBakerCoefficients, error) {
	if v != ZhaoBakerBase && v != ZhaoBakerImproved {
		return ZhaoBakerCoefficients{}, fmt.Errorf("zhao-baker variant %d: %w", int(v), ErrUnknownMethod)
	}
	if err := s.ValidateVariance(); err != nil {
		return ZhaoBakerCoefficients{}, err
	}
	if err := s.ValidateIrregularity(); err != nil {
		return ZhaoBakerCoefficients{}, err
	}

	al2 := s.Alpha2
	b := 1.1
	if al2 >= 0.9 {
		b = 1.1 + 9*(al2-0.9)
	}
	// Ideal narrow band: the Weibull term has zero weight.
	if al2 == 1 {
		return ZhaoBakerCoefficients{A: 1, B: b, W: 0}, nil
	}

	a := 8 - 7*al2
	if v == ZhaoBakerImproved {
		a075, err := s.Alpha075()
		if err != nil {
			return ZhaoBakerCoefficients{}, err
		}
		ro := 0.28
		if a075 >= 0.5 {
			ro = -0.4154 + 1.392*a075
		}
		p, err := zhaoBakerRoot(al2, b, ro)
		if err != nil {
			return ZhaoBakerCoefficients{}, err
		}
		a = math.Pow(p, -b)
	}

	w := (1 - al2) / (1 - math.Sqrt(2/math.Pi)*math.Gamma(1+1/b)*math.Pow(a, -1/b))
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ZhaoBakerCoefficients{}, fmt.Errorf("weight %v: %w", w, ErrNoConvergence)
	}
	return ZhaoBakerCoefficients{A: a, B: b, W: w}, nil
}

// zhaoBakerRoot returns the smallest positive root of
//
//	Γ(1+3/b)(1-al2) p^3 + 3Γ(1+1/b)(ro*al2-1) p + 3*sqrt(π/2)*al2*(1-ro) = 0.
func zhaoBakerRoot(al2, b, ro float64) (float64, error) {
	coeff := []float64{
		math.Gamma(1+3/b) * (1 - al2),
		0,
		3 * math.Gamma(1+1/b) * (ro*al2 - 1),
		3 * math.Sqrt(math.Pi/2) * al2 * (1 - ro),
	}
	p, err := polyroot.SmallestPositiveRoot(coeff)
	if err != nil {
		return 0, fmt.Errorf("al2=%v ro=%v: %w: %w", al2, ro, ErrNoConvergence, err)
	}
	return p, nil
}

// ZhaoBakerLife returns the fatigue life estimated with the Zhao-Baker
// method:
//
//	d = m_p/C * m0^(k/2) * (w*a^(-k/b)*Γ(1+k/b) + (1-w)*2^(k/2)*Γ(1+k/2))
//	T = 1 / d
func ZhaoBakerLife(s spectral.Stats, c, k float64, v ZhaoBakerVariant) (float64, error) {
	coeffs, err := ZhaoBakerCoeffs(s, v)
	if err != nil {
		return 0, err
	}
	if err := validateMaterial(c, k); err != nil {
		return 0, err
	}
	if err := validateGammaArg(1 + k/coeffs.B); err != nil {
		return 0, err
	}

	a, b, w := coeffs.A, coeffs.B, coeffs.W
	weibull := w * math.Pow(a, -k/b) * math.Gamma(1+k/b)
	rayleigh := (1 - w) * math.Pow(2, 0.5*k) * math.Gamma(1+0.5*k)
	d := s.PeakRate / c * math.Pow(s.M0, 0.5*k) * (weibull + rayleigh)
	return lifeFromDamage(d)
}

// ZhaoBakerPDF evaluates the cycle amplitude probability density at each
// stress amplitude. Negative amplitudes have zero density.
func ZhaoBakerPDF(s spectral.Stats, stress []float64, v ZhaoBakerVariant) ([]float64, error) {
	coeffs, err := ZhaoBakerCoeffs(s, v)
	if err != nil {
		return nil, err
	}

	sigma := math.Sqrt(s.M0)
	out := make([]float64, len(stress))
	if len(out) == 0 {
		return out, nil
	}
	vecmath.ScaleBlock(out, stress, 1/sigma)

	a, b, w := coeffs.A, coeffs.B, coeffs.W
	for i, z := range out {
		if z <= 0 {
			out[i] = 0
			continue
		}
		weibull := w * (a * b / sigma) * math.Pow(z, b-1) * math.Exp(-a*math.Pow(z, b))
		rayleigh := (1 - w) * (z / sigma) * math.Exp(-0.5*z*z)
		out[i] = weibull + rayleigh
	}
	return out, nil
}
