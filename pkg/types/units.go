package types

import (
	"fmt"
	"math"
)

// Hertz is a frequency in Hz.
type Hertz float64

// Kelvin is a temperature in K.
type Kelvin float64

// Jansky is a spectral flux density in Jy (1e-26 W/m^2/Hz).
type Jansky float64

// Humanized returns a human-readable string with automatic unit (Hz, kHz, MHz, GHz).
func (h Hertz) Humanized() string {
	v := float64(h)
	a := math.Abs(v)
	switch {
	case a >= 1e9:
		return fmt.Sprintf("%.3f GHz", v/1e9)
	case a >= 1e6:
		return fmt.Sprintf("%.3f MHz", v/1e6)
	case a >= 1e3:
		return fmt.Sprintf("%.3f kHz", v/1e3)
	default:
		return fmt.Sprintf("%.3f Hz", v)
	}
}

// MHz returns the frequency in megahertz.
func (h Hertz) MHz() float64 { return float64(h) / 1e6 }

// GHz returns the frequency in gigahertz.
func (h Hertz) GHz() float64 { return float64(h) / 1e9 }

// Humanized returns a human-readable temperature (mK below 1 K).
func (k Kelvin) Humanized() string {
	v := float64(k)
	if a := math.Abs(v); a > 0 && a < 1 {
		return fmt.Sprintf("%.3f mK", v*1e3)
	}
	return fmt.Sprintf("%.3f K", v)
}

// Humanized returns a human-readable flux density (mJy, Jy, kJy).
func (j Jansky) Humanized() string {
	v := float64(j)
	a := math.Abs(v)
	switch {
	case a >= 1e3:
		return fmt.Sprintf("%.3f kJy", v/1e3)
	case a > 0 && a < 1:
		return fmt.Sprintf("%.3f mJy", v*1e3)
	default:
		return fmt.Sprintf("%.3f Jy", v)
	}
}

// WattsPerM2Hz returns the flux density in SI units.
func (j Jansky) WattsPerM2Hz() float64 { return float64(j) * 1e-26 }
