// Package radiometer computes system temperature (Tsys) and related
// radiometric quantities from calibrator ON/OFF power measurements.
//
// Overview
//
//   - Flux models:
//     ModelFlux(model, opts...) evaluates a calibrator flux model of the form
//     10^(c0 + c1*x + c2*x^2 + ...), x = log10(hz/nu1).
//
//   - Aperture conversion:
//     ApparentFlux(k, diameter, opts...)        Kelvin  -> Jansky
//     ApparentTemperature(s, diameter, opts...) Jansky  -> Kelvin
//     Both share a = eta*pi*d^2/4 and att = exp(-tau*airmass).
//
//   - ON/OFF calibration:
//     TcalOnOff(pon, poff, tsys, opts...)                 -> Tcal
//     TsysOnOff(pon, poff, tcal, opts...)                 -> Tsys
//     TsysOnOffFromFlux(pon, poff, scal, diameter, opts...) -> Tsys
//     with y = (pon-poff)/poff = Tcal/(Tsky+Tsys).
//
// Options (all optional, defaults in brackets):
//
//	WithEfficiency(eta)        [1.0]
//	WithOpacity(tau)           [0.0]
//	WithAirmass(airmass)       [1.0]
//	WithSkyTemperature(tsky)   [Tcmb]
//	WithClip(clip)             [true]
//	WithFrequency(hz)          [ReferenceFrequency()]
//	WithReferenceFrequency(nu1)[ReferenceFrequency()]
//
// Options that an operation does not use are ignored.
//
// # Numeric behavior
//
// Every function follows IEEE-754 semantics: poff == 0, pon == poff,
// diameter == 0 or a non-positive frequency produce ±Inf or NaN instead of
// an error. Callers that need validation must do it before calling in.
// Clipping floors results at zero and never bounds them from above.
//
// # Reference frequency
//
// The process-wide reference frequency starts at DefaultReferenceHz and may
// be replaced with SetReferenceFrequency. Reads and writes are atomic, but
// passing WithFrequency/WithReferenceFrequency explicitly is preferred in
// concurrent code and tests.
package radiometer
