package radiometer

import "math"

// effectiveArea returns eta*pi*d^2/4 in m^2.
func effectiveArea(diameter, eta float64) float64 {
	return eta * math.Pi * diameter * diameter / 4
}

// attenuation returns exp(-tau*airmass).
func attenuation(tau, airmass float64) float64 {
	return math.Exp(-tau * airmass)
}

// ApparentFlux converts an apparent black-body temperature k (K) into the
// flux density (Jy) seen by an antenna of the given diameter (m):
//
//	S = 2*Kb*JyPerJ*k / (a*att)
//
// Honors WithEfficiency, WithOpacity and WithAirmass.
func ApparentFlux(k, diameter float64, opts ...Option) float64 {
	o := resolve(opts)
	a := effectiveArea(diameter, o.eta)
	att := attenuation(o.tau, o.airmass)
	return (2 * Kb * JyPerJ * k) / (a * att)
}

// ApparentTemperature is the inverse of ApparentFlux: it converts a flux
// density s (Jy) into the apparent temperature (K).
func ApparentTemperature(s, diameter float64, opts ...Option) float64 {
	o := resolve(opts)
	a := effectiveArea(diameter, o.eta)
	att := attenuation(o.tau, o.airmass)
	return s * a * att / (2 * Kb * JyPerJ)
}
