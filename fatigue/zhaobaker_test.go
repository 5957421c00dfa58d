package fatigue

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fatigue/internal/testutil"
	"github.com/cwbudde/algo-fatigue/stats/spectral"
)

func TestZhaoBakerCoeffsBase(t *testing.T) {
	got, err := ZhaoBakerCoeffs(refStats, ZhaoBakerBase)
	if err != nil {
		t.Fatalf("ZhaoBakerCoeffs error: %v", err)
	}
	testutil.RequireRelNearlyEqual(t, got.A, 3.1, relTol)
	testutil.RequireRelNearlyEqual(t, got.B, 1.1, relTol)
	testutil.RequireRelNearlyEqual(t, got.W, 0.4139388127699821, relTol)
}

func TestZhaoBakerCoeffsImprovedSolvesCubic(t *testing.T) {
	for i, s := range append([]spectral.Stats{refStats}, testutil.DeterministicStats(4, 32)...) {
		got, err := ZhaoBakerCoeffs(s, ZhaoBakerImproved)
		if err != nil {
			t.Fatalf("stats %d: %v", i, err)
		}

		a075, _ := s.Alpha075()
		ro := 0.28
		if a075 >= 0.5 {
			ro = -0.4154 + 1.392*a075
		}
		b := got.B
		p := math.Pow(got.A, -1/b)
		residual := math.Gamma(1+3/b)*(1-s.Alpha2)*p*p*p +
			3*math.Gamma(1+1/b)*(ro*s.Alpha2-1)*p +
			3*math.Sqrt(math.Pi/2)*s.Alpha2*(1-ro)
		if math.Abs(residual) > 1e-9 {
			t.Fatalf("stats %d: cubic residual %v at p=%v", i, residual, p)
		}
	}
}

func TestZhaoBakerCoeffsShape(t *testing.T) {
	s := refStats
	s.Alpha2 = 0.95
	got, err := ZhaoBakerCoeffs(s, ZhaoBakerBase)
	if err != nil {
		t.Fatalf("ZhaoBakerCoeffs error: %v", err)
	}
	testutil.RequireRelNearlyEqual(t, got.B, 1.1+9*0.05, relTol)
}

func TestZhaoBakerCoeffsNarrowBand(t *testing.T) {
	s := refStats
	s.Alpha2 = 1
	for _, v := range []ZhaoBakerVariant{ZhaoBakerBase, ZhaoBakerImproved} {
		got, err := ZhaoBakerCoeffs(s, v)
		if err != nil {
			t.Fatalf("%v: %v", v, err)
		}
		if got.W != 0 {
			t.Fatalf("%v: weight = %v, want 0", v, got.W)
		}
	}
}

func TestZhaoBakerLifeReference(t *testing.T) {
	tests := []struct {
		v    ZhaoBakerVariant
		want float64
	}{
		{ZhaoBakerBase, 875267813.3923625},
		{ZhaoBakerImproved, 907439763.4433851},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got, err := ZhaoBakerLife(refStats, 2e11, 3, tt.v)
			if err != nil {
				t.Fatalf("ZhaoBakerLife error: %v", err)
			}
			testutil.RequireRelNearlyEqual(t, got, tt.want, 1e-8)
		})
	}
}

func TestZhaoBakerLifeRayleighLimit(t *testing.T) {
	// With w = 0 the damage reduces to narrow band with m_p in place of nu.
	s := refStats
	s.Alpha2 = 1
	s.PeakRate = s.Nu
	got, err := ZhaoBakerLife(s, 2e11, 3, ZhaoBakerBase)
	if err != nil {
		t.Fatalf("ZhaoBakerLife error: %v", err)
	}
	nb, err := NarrowBandLife(s, 2e11, 3)
	if err != nil {
		t.Fatalf("NarrowBandLife error: %v", err)
	}
	testutil.RequireRelNearlyEqual(t, got, nb, relTol)
}

func TestZhaoBakerLifeScalesWithC(t *testing.T) {
	t1, err := ZhaoBakerLife(refStats, 1e11, 4, ZhaoBakerImproved)
	if err != nil {
		t.Fatalf("ZhaoBakerLife error: %v", err)
	}
	t2, err := ZhaoBakerLife(refStats, 2e11, 4, ZhaoBakerImproved)
	if err != nil {
		t.Fatalf("ZhaoBakerLife error: %v", err)
	}
	testutil.RequireRelNearlyEqual(t, t2, 2*t1, relTol)
}

func TestZhaoBakerLifeErrors(t *testing.T) {
	noIrregularity := spectral.Stats{M0: 4, M075: 1.8, M150: 1, Nu: 10}

	tests := []struct {
		name string
		s    spectral.Stats
		c, k float64
		v    ZhaoBakerVariant
		want error
	}{
		{"missing alpha2", noIrregularity, 2e11, 3, ZhaoBakerBase, ErrInvalidMoment},
		{"zero m0", spectral.Stats{Alpha2: 0.5, PeakRate: 1}, 2e11, 3, ZhaoBakerBase, ErrInvalidMoment},
		{"improved needs m150", spectral.Stats{M0: 4, Alpha2: 0.5, PeakRate: 1}, 2e11, 3, ZhaoBakerImproved, ErrInvalidMoment},
		{"zero C", refStats, 0, 3, ZhaoBakerBase, ErrInvalidMaterialParameter},
		{"gamma pole", refStats, 2e11, -2, ZhaoBakerBase, ErrGammaDomain},
		{"unknown variant", refStats, 2e11, 3, ZhaoBakerVariant(9), ErrUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ZhaoBakerLife(tt.s, tt.c, tt.k, tt.v)
			testutil.RequireErrorIs(t, err, tt.want)
		})
	}
}

func TestZhaoBakerRootNoAdmissibleRoot(t *testing.T) {
	// The local minimum of the cubic stays above zero.
	if _, err := zhaoBakerRoot(0.1, 1.1, -3); !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("error = %v, want ErrNoConvergence", err)
	}
}

func TestZhaoBakerImprovedInconsistentBandwidth(t *testing.T) {
	// alpha2 = 0.5 needs alpha075 >= ~0.73 for a positive root.
	s := spectral.Stats{M0: 4, M075: 1.2, M150: 1, Nu: 10, Alpha2: 0.5, PeakRate: 12}
	_, err := ZhaoBakerLife(s, 2e11, 3, ZhaoBakerImproved)
	testutil.RequireErrorIs(t, err, ErrNoConvergence)

	if _, err := ZhaoBakerLife(s, 2e11, 3, ZhaoBakerBase); err != nil {
		t.Fatalf("base variant error: %v", err)
	}
}

func TestZhaoBakerPDFReference(t *testing.T) {
	got, err := ZhaoBakerPDF(refStats, []float64{1, 2, 5}, ZhaoBakerBase)
	if err != nil {
		t.Fatalf("ZhaoBakerPDF error: %v", err)
	}
	want := []float64{0.2843523622094521, 0.2095262200316118, 0.0323455434294452}
	testutil.RequireSliceRelNearlyEqual(t, got, want, relTol)
}

func TestZhaoBakerPDFNormalised(t *testing.T) {
	for _, v := range []ZhaoBakerVariant{ZhaoBakerBase, ZhaoBakerImproved} {
		const n = 200001
		stress := testutil.Linspace(0, 40, n)
		pdf, err := ZhaoBakerPDF(refStats, stress, v)
		if err != nil {
			t.Fatalf("%v: %v", v, err)
		}
		testutil.RequireFinite(t, pdf...)

		h := stress[1] - stress[0]
		area := 0.5 * (pdf[0] + pdf[n-1])
		for _, p := range pdf[1 : n-1] {
			area += p
		}
		area *= h
		if math.Abs(area-1) > 1e-3 {
			t.Fatalf("%v: area = %v, want 1", v, area)
		}
	}
}

func TestZhaoBakerPDFNonPositiveStress(t *testing.T) {
	got, err := ZhaoBakerPDF(refStats, []float64{-1, 0}, ZhaoBakerImproved)
	if err != nil {
		t.Fatalf("ZhaoBakerPDF error: %v", err)
	}
	if got[0] != 0 || got[1] != 0 {
		t.Fatalf("pdf = %v, want zeros", got)
	}
}
