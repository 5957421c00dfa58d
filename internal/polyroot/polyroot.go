// Package polyroot finds roots of the low-order polynomials that appear in
// fatigue distribution coefficient equations.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ErrNoPositiveRoot is returned when a real polynomial has no real root > 0.
var ErrNoPositiveRoot = errors.New("polyroot: no positive real root")

// RealTol is the relative tolerance on the imaginary part below which a
// complex root is accepted as real.
const RealTol = 1e-9

// SmallestPositiveRoot returns the smallest real root > 0 of a polynomial
// with real coefficients in descending power order. Candidates from
// [DurandKerner] are polished with Newton steps on the real axis.
func SmallestPositiveRoot(coeff []float64) (float64, error) {
	c := make([]complex128, len(coeff))
	for i, v := range coeff {
		c[i] = complex(v, 0)
	}

	roots, err := DurandKerner(c)
	if err != nil {
		return 0, err
	}

	best := math.Inf(1)
	for _, r := range roots {
		re := real(r)
		if math.Abs(imag(r)) > RealTol*math.Max(1, math.Abs(re)) {
			continue
		}
		re = polishReal(coeff, re)
		if re > 0 && re < best {
			best = re
		}
	}
	if math.IsInf(best, 1) {
		return 0, ErrNoPositiveRoot
	}
	return best, nil
}

func polishReal(coeff []float64, x float64) float64 {
	const steps = 4
	for range steps {
		p, dp := evalWithDerivative(coeff, x)
		if dp == 0 {
			break
		}
		next := x - p/dp
		if math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		x = next
	}
	return x
}

// evalWithDerivative evaluates p(x) and p'(x) with Horner's method.
func evalWithDerivative(coeff []float64, x float64) (float64, float64) {
	p, dp := coeff[0], 0.0
	for i := 1; i < len(coeff); i++ {
		dp = dp*x + p
		p = p*x + coeff[i]
	}
	return p, dp
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}
