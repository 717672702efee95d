package pipe

import (
	"errors"
	"fmt"
)

// ErrNotBracketed is returned by Bisect when f does not change sign over the
// given interval.
var ErrNotBracketed = errors.New("root not bracketed")

// Bisect finds x in [lo, hi] with f(x) = 0 for a monotonically increasing f.
// It stops once the bracket is narrower than tol or after maxIter halvings.
// Errors from f abort the search.
func Bisect(f func(float64) (float64, error), lo, hi, tol float64, maxIter int) (float64, error) {
	if hi <= lo {
		return 0, fmt.Errorf("bisect: bad interval [%g, %g]", lo, hi)
	}
	flo, err := f(lo)
	if err != nil {
		return 0, err
	}
	fhi, err := f(hi)
	if err != nil {
		return 0, err
	}
	if flo > 0 || fhi < 0 {
		return 0, ErrNotBracketed
	}
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}

	for i := 0; i < maxIter && hi-lo > tol; i++ {
		mid := lo + (hi-lo)/2
		fmid, err := f(mid)
		if err != nil {
			return 0, err
		}
		if fmid < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2, nil
}
