package resample

import (
	"strings"

	"github.com/rhenanbartels/rri-rqa-analysis/common"
	"gonum.org/v1/gonum/interp"
)

// Method selects the interpolant fitted through the irregular samples.
type Method string

const (
	// NaturalCubic is an exact cubic spline with zero second derivative at both ends.
	NaturalCubic Method = "natural"
	// NotAKnotCubic matches the boundary behaviour of FITPACK splrep with s=0.
	NotAKnotCubic Method = "not-a-knot"
	AkimaSpline   Method = "akima"
	Linear        Method = "linear"
)

const DefaultMethod = NaturalCubic

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if m == "" {
		return DefaultMethod, nil
	}
	if _, err := m.newPredictor(); err != nil {
		return "", err
	}
	return m, nil
}

// MinPoints is the smallest number of samples the method can interpolate.
func (m Method) MinPoints() int {
	if m == Linear {
		return 2
	}
	return 4
}

func (m Method) newPredictor() (interp.FittablePredictor, error) {
	switch m {
	case NaturalCubic:
		return &interp.NaturalCubic{}, nil
	case NotAKnotCubic:
		return &interp.NotAKnotCubic{}, nil
	case AkimaSpline:
		return &interp.AkimaSpline{}, nil
	case Linear:
		return &interp.PiecewiseLinear{}, nil
	}
	return nil, common.Wrap(common.ErrorInvalidValue, "unknown interpolation method %q", string(m))
}
