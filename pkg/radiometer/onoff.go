package radiometer

import "github.com/ja7ad/radiometer/pkg/numeric"

// OnOffRatio returns y = (pon - poff) / poff.
//
// With power linear in temperature, power = G*(Tsky + Tsys + Tcal) ON and
// G*(Tsky + Tsys) OFF, this is Tcal / (Tsky + Tsys).
func OnOffRatio(pon, poff float64) float64 {
	return (pon - poff) / poff
}

func clip(x float64, o options) float64 {
	if o.clip {
		return numeric.ClampMin(x, 0)
	}
	return x
}

// TcalOnOff derives the calibrator temperature from ON/OFF powers and a known
// system temperature tsys (K):
//
//	Tcal = y * (tsky + tsys)
//
// Honors WithSkyTemperature and WithClip.
func TcalOnOff(pon, poff, tsys float64, opts ...Option) float64 {
	o := resolve(opts)
	y := OnOffRatio(pon, poff)
	return clip(y*(o.tsky+tsys), o)
}

// TsysOnOff derives the system temperature from ON/OFF powers and a known
// calibrator temperature tcal (K):
//
//	Tsys = tcal / y - tsky
//
// Honors WithSkyTemperature and WithClip.
func TsysOnOff(pon, poff, tcal float64, opts ...Option) float64 {
	o := resolve(opts)
	y := OnOffRatio(pon, poff)
	return clip(tcal/y-o.tsky, o)
}

// TsysOnOffFromFlux is TsysOnOff for a calibrator of known flux density scal
// (Jy). The calibrator temperature is obtained with ApparentTemperature for
// an antenna of the given diameter (m), so all options of both apply.
func TsysOnOffFromFlux(pon, poff, scal, diameter float64, opts ...Option) float64 {
	tcal := ApparentTemperature(scal, diameter, opts...)
	return TsysOnOff(pon, poff, tcal, opts...)
}
