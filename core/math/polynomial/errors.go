package polynomial

import "errors"

var (
	ErrNoCoefficients = errors.New("polynomial: at least one coefficient is required")
	ErrNoShares       = errors.New("polynomial: at least one share is required")
	ErrDuplicateIndex = errors.New("polynomial: share indices must be pairwise distinct")
	ErrZeroIndex      = errors.New("polynomial: share index is the zero element")
)
