package radiometer

import "errors"

var (
	// ErrNoCoefficients indicates that a flux model has no coefficients.
	ErrNoCoefficients = errors.New("radiometer: flux model has no coefficients")

	// ErrNonFinite indicates that a coefficient is NaN or ±Inf.
	ErrNonFinite = errors.New("radiometer: non-finite coefficient")
)
