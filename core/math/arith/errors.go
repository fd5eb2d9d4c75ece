package arith

import "errors"

var (
	ErrInvalidModulus = errors.New("arith: modulus must be at least 2")
	ErrZeroDivisor    = errors.New("arith: inverse of the zero element")
)
