package fatigue

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-fatigue/stats/spectral"
)

// Method identifies a spectral fatigue-life estimator.
type Method int

const (
	MethodAlpha075 Method = iota
	MethodNarrowBand
	MethodZhaoBakerBase
	MethodZhaoBakerImproved
)

var methodNames = [...]string{
	MethodAlpha075:          "alpha075",
	MethodNarrowBand:        "narrowband",
	MethodZhaoBakerBase:     "zhao-baker-base",
	MethodZhaoBakerImproved: "zhao-baker",
}

// Methods returns all known methods in declaration order.
func Methods() []Method {
	out := make([]Method, len(methodNames))
	for i := range out {
		out[i] = Method(i)
	}
	return out
}

func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod looks up a method by its String name, ignoring case.
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

// Estimate dispatches to the estimator selected by m.
func Estimate(m Method, s spectral.Stats, mat Material) (float64, error) {
	switch m {
	case MethodAlpha075:
		return Alpha075Life(s, mat.C, mat.K)
	case MethodNarrowBand:
		return NarrowBandLife(s, mat.C, mat.K)
	case MethodZhaoBakerBase:
		return ZhaoBakerLife(s, mat.C, mat.K, ZhaoBakerBase)
	case MethodZhaoBakerImproved:
		return ZhaoBakerLife(s, mat.C, mat.K, ZhaoBakerImproved)
	default:
		return 0, fmt.Errorf("%v: %w", m, ErrUnknownMethod)
	}
}
