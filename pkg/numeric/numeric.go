package numeric

import "math"

// Horner evaluates c[0] + c[1]*x + c[2]*x^2 + ... .
// An empty coefficient slice evaluates to 0.
func Horner(c []float64, x float64) float64 {
	if len(c) == 0 {
		return 0
	}
	p := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		p = p*x + c[i]
	}
	return p
}

// ClampMin floors x at lo. There is no upper bound, and NaN passes through
// unchanged.
func ClampMin(x, lo float64) float64 {
	if x < lo {
		return lo
	}
	return x
}

// Log10Ratio returns log10(a/b). Non-positive ratios give NaN or -Inf.
func Log10Ratio(a, b float64) float64 {
	return math.Log10(a / b)
}

// AllFinite reports whether no element of xs is NaN or ±Inf.
func AllFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
