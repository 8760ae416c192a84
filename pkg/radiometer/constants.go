package radiometer

import (
	"math"
	"sync/atomic"
)

const (
	// Kb is the Boltzmann constant in J/K.
	Kb = 1.380469e-23
	// JyPerJ converts W/m^2/Hz to Jansky.
	JyPerJ = 1e26
	// Tcmb is the default sky temperature at the OFF position (K).
	Tcmb = 2.728
	// DefaultReferenceHz is the initial reference frequency of flux models.
	DefaultReferenceHz = 1e6
)

var referenceHz atomic.Uint64

func init() {
	referenceHz.Store(math.Float64bits(DefaultReferenceHz))
}

// ReferenceFrequency returns the current process-wide reference frequency in Hz.
func ReferenceFrequency() float64 {
	return math.Float64frombits(referenceHz.Load())
}

// SetReferenceFrequency replaces the process-wide reference frequency and
// returns the previous value, so callers can restore it.
func SetReferenceFrequency(hz float64) float64 {
	return math.Float64frombits(referenceHz.Swap(math.Float64bits(hz)))
}
