package core

import "errors"

var (
	ErrInvalidDiscount     = errors.New("discount must lie in [0, 1)")
	ErrInvalidTolerance    = errors.New("tolerance must be a non-negative number")
	ErrNotConverged        = errors.New("sweep limit reached before convergence")
	ErrInvalidDistribution = errors.New("outcome probabilities do not sum to 1")
	ErrUnknownState        = errors.New("unknown state")
)
