package model

import "fmt"

// ConvergenceError reports that a series solver could not satisfy its
// truncation criterion within the configured term budget. No result is
// returned alongside this error.
type ConvergenceError struct {
	TermsAttempted int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("convergence failed after %d terms", e.TermsAttempted)
}

// NumericalInstabilityError reports a non-finite or otherwise unusable
// intermediate value produced mid-calculation. The calculation aborts
// rather than returning a poisoned result.
type NumericalInstabilityError struct {
	Description string
}

func (e *NumericalInstabilityError) Error() string {
	return "numerical instability detected: " + e.Description
}
