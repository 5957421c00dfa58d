package testutil

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// RelErr returns |got-want| / |want|, or |got| when want is zero.
func RelErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

// RequireRelNearlyEqual fails t if got differs from want by more than rel
// relative error. Two infinities of the same sign compare equal.
func RequireRelNearlyEqual(t *testing.T, got, want, rel float64) {
	t.Helper()
	if math.IsInf(want, 0) || math.IsInf(got, 0) {
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
		return
	}
	if e := RelErr(got, want); !(e <= rel) {
		t.Fatalf("got %v, want %v (rel err %v > %v)", got, want, e, rel)
	}
}

// RequireSliceRelNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds rel relative error.
func RequireSliceRelNearlyEqual(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if e := RelErr(got[i], want[i]); !(e <= rel) {
			t.Fatalf("index %d: got %v, want %v (rel err %v > %v)", i, got[i], want[i], e, rel)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data ...float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireErrorIs fails t unless errors.Is(err, target).
func RequireErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v", err, target)
	}
}

// MaxRelDiff returns the maximum relative difference between two slices.
// Returns an error if the slices differ in length.
func MaxRelDiff(got, want []float64) (float64, error) {
	if len(got) != len(want) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	maxDiff := 0.0
	for i := range got {
		if d := RelErr(got[i], want[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
