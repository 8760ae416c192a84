package radiometer

import (
	"math"

	"github.com/ja7ad/radiometer/pkg/numeric"
)

// FluxModel holds the coefficients [c0, c1, c2, ...] of a logarithmic
// polynomial flux model, c0 being the constant term:
//
//	S(hz) = 10^(c0 + c1*x + c2*x^2 + ...),  x = log10(hz/nu1)
type FluxModel []float64

// Eval returns the model flux density at hz for reference frequency nu1.
func (m FluxModel) Eval(hz, nu1 float64) float64 {
	x := numeric.Log10Ratio(hz, nu1)
	return math.Pow(10, numeric.Horner(m, x))
}

// Validate reports whether the model can be evaluated meaningfully.
func (m FluxModel) Validate() error {
	if len(m) == 0 {
		return ErrNoCoefficients
	}
	if !numeric.AllFinite(m...) {
		return ErrNonFinite
	}
	return nil
}

// ModelFlux evaluates model at the frequency given by WithFrequency against
// the reference given by WithReferenceFrequency. Either one left unset reads
// ReferenceFrequency().
func ModelFlux(model FluxModel, opts ...Option) float64 {
	o := resolve(opts)
	hz, nu1 := o.hz, o.nu1
	if !o.hzSet || !o.nu1Set {
		ref := ReferenceFrequency()
		if !o.hzSet {
			hz = ref
		}
		if !o.nu1Set {
			nu1 = ref
		}
	}
	return model.Eval(hz, nu1)
}
