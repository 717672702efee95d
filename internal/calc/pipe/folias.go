package pipe

import "math"

// FoliasM is the bulging factor used by Modified B31G. The quadratic form
// stops being monotonic past z = 50, so the standard switches to a linear
// tail there.
func FoliasM(z float64) (float64, error) {
	if z < 0 {
		return 0, &DomainError{Quantity: "length parameter z", Value: z}
	}
	if z > 50 {
		return 0.032*z + 3.3, nil
	}
	return math.Sqrt(1 + 0.6275*z - 0.003375*z*z), nil
}

// LengthCorrectionQ is the DNV RP F101 length-correction factor,
// monotonically increasing for all z >= 0.
func LengthCorrectionQ(z float64) (float64, error) {
	if z < 0 {
		return 0, &DomainError{Quantity: "length parameter z", Value: z}
	}
	return math.Sqrt(1 + 0.31*z), nil
}
