package life

import (
	"errors"

	pipe "Pipeguard/internal/calc/pipe"
)

// DepthTolMM is the convergence tolerance of the critical-depth search.
const DepthTolMM = 1e-4

const maxBisectIter = 100

// RatioFunc returns an assessment method's repair ratio (ERF or utilization)
// for a hypothetical defect depth, all other inputs held fixed.
type RatioFunc func(depthMM float64) (float64, error)

// Projection is the remaining-life estimate for a growing defect.
type Projection struct {
	CriticalDepthMM float64 `json:"critical_depth_mm"`
	AllowanceMM     float64 `json:"corrosion_allowance_mm"`
	Years           float64 `json:"years"`
	Unbounded       bool    `json:"unbounded"`
	// Applicable is false when the corrosion rate is zero: with no growth
	// model there is nothing to project.
	Applicable bool `json:"applicable"`
}

// CriticalDepth finds the defect depth on (0, t) at which ratio reaches 1.0.
// The ratio is monotonically increasing in depth, so a bracketed bisection is
// enough. Returns NoCriticalDepthError when no root exists in the wall.
func CriticalDepth(ratio RatioFunc, wallThicknessMM float64) (float64, error) {
	r0, err := ratio(0)
	if err != nil {
		return 0, err
	}
	if r0 >= 1.0 {
		return 0, &pipe.NoCriticalDepthError{AtZeroDepth: true}
	}

	f := func(d float64) (float64, error) {
		r, err := ratio(d)
		return r - 1.0, err
	}
	// Stay strictly inside the wall: depth = t is outside every method's
	// valid envelope.
	hi := wallThicknessMM * (1 - 1e-9)
	root, err := pipe.Bisect(f, 0, hi, DepthTolMM, maxBisectIter)
	if errors.Is(err, pipe.ErrNotBracketed) {
		return 0, &pipe.NoCriticalDepthError{}
	}
	return root, err
}

// Estimate turns a critical depth into a time-to-repair projection under a
// constant corrosion rate. A zero rate yields a not-applicable projection; a
// defect already past critical yields zero years.
func Estimate(criticalDepthMM, currentDepthMM, rateMMYr float64) Projection {
	allowance := criticalDepthMM - currentDepthMM
	if rateMMYr <= 0 {
		return Projection{
			CriticalDepthMM: criticalDepthMM,
			AllowanceMM:     allowance,
		}
	}
	if allowance <= 0 {
		return Projection{
			CriticalDepthMM: criticalDepthMM,
			AllowanceMM:     allowance,
			Years:           0,
			Applicable:      true,
		}
	}
	return Projection{
		CriticalDepthMM: criticalDepthMM,
		AllowanceMM:     allowance,
		Years:           allowance / rateMMYr,
		Applicable:      true,
	}
}

// Unlimited is the projection for a defect that never becomes critical
// within the wall thickness.
func Unlimited(wallThicknessMM, currentDepthMM, rateMMYr float64) Projection {
	return Projection{
		CriticalDepthMM: wallThicknessMM,
		AllowanceMM:     wallThicknessMM - currentDepthMM,
		Unbounded:       true,
		Applicable:      rateMMYr > 0,
	}
}
