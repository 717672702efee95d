package pipe

import "fmt"

// InvalidInputError reports a violated physical invariant on the input data.
// No calculation proceeds once one is raised.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// DomainError reports a derived quantity outside its mathematically valid
// range. Unreachable with validated inputs, guarded anyway.
type DomainError struct {
	Quantity string
	Value    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s = %g out of valid domain", e.Quantity, e.Value)
}

// SingularityError means the failure-stress denominator went non-positive:
// the defect is outside the model's valid envelope. Never clamped.
type SingularityError struct {
	Method string
}

func (e *SingularityError) Error() string {
	return fmt.Sprintf("%s: defect too severe, method not applicable", e.Method)
}

// NoCriticalDepthError means the critical-depth search could not bracket a
// root on (0, t).
type NoCriticalDepthError struct {
	// AtZeroDepth: the ratio is already >= 1 with no defect at all, which
	// points at inconsistent input (pressure exceeds intact capacity).
	// Otherwise the ratio stays < 1 up to full wall loss and the defect can
	// never become critical.
	AtZeroDepth bool
}

func (e *NoCriticalDepthError) Error() string {
	if e.AtZeroDepth {
		return "no critical depth: already unsafe at zero defect depth"
	}
	return "no critical depth: defect never becomes critical within wall thickness"
}
