package core

import (
	"fmt"
	"math"
)

// SolverConfig holds the parameters shared by the dynamic programming solvers
type SolverConfig struct {
	// Tolerance is the convergence threshold on the largest change of a
	// state value within one sweep
	Tolerance float64
	// Discount is applied to future rewards and must lie in [0, 1)
	Discount float64
	// MaxSweeps bounds the number of sweeps of a single evaluation or value
	// iteration run. 0 means unbounded.
	MaxSweeps int
}

func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Tolerance: 1e-6,
		Discount:  0.9,
		MaxSweeps: 0,
	}
}

func (c SolverConfig) Validate() error {
	if err := ValidateDiscount(c.Discount); err != nil {
		return err
	}
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, c.Tolerance)
	}
	if c.MaxSweeps < 0 {
		return fmt.Errorf("max sweeps must not be negative: %d", c.MaxSweeps)
	}
	return nil
}

// ValidateDiscount checks 0 <= gamma < 1
func ValidateDiscount(gamma float64) error {
	if !(gamma >= 0.0 && gamma < 1.0) {
		return fmt.Errorf("%w: %v", ErrInvalidDiscount, gamma)
	}
	return nil
}
