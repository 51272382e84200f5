// Package validation provides parameter-range checking for physics models.
// It separates errors (non-physical inputs that block computation) from
// warnings (valid inputs outside a solver's well-characterized regime,
// attached to result metadata but never blocking).
package validation

import (
	"fmt"
	"math"
)

// OutOfRangeError reports a parameter outside its physically valid range.
// It is fatal: computation must not proceed.
type OutOfRangeError struct {
	Parameter string
	Value     float64
	Min       float64
	Max       float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s = %g is out of valid range [%g, %g]",
		e.Parameter, e.Value, e.Min, e.Max)
}

// Checker accumulates range checks for one model's parameters.
// Errors stop at the first failure; warnings accumulate in order.
type Checker struct {
	err      error
	warnings []string
}

// NewChecker creates an empty checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Positive requires value > 0.
func (c *Checker) Positive(parameter string, value float64) *Checker {
	if c.err == nil && value <= 0 {
		c.err = &OutOfRangeError{
			Parameter: parameter,
			Value:     value,
			Min:       0,
			Max:       math.Inf(1),
		}
	}
	return c
}

// NonNegative requires value >= 0.
func (c *Checker) NonNegative(parameter string, value float64) *Checker {
	if c.err == nil && value < 0 {
		c.err = &OutOfRangeError{
			Parameter: parameter,
			Value:     value,
			Min:       0,
			Max:       math.Inf(1),
		}
	}
	return c
}

// InRange requires min <= value <= max.
func (c *Checker) InRange(parameter string, value, min, max float64) *Checker {
	if c.err == nil && (value < min || value > max) {
		c.err = &OutOfRangeError{
			Parameter: parameter,
			Value:     value,
			Min:       min,
			Max:       max,
		}
	}
	return c
}

// Finite requires the value to be a finite number.
func (c *Checker) Finite(parameter string, value float64) *Checker {
	if c.err == nil && (math.IsNaN(value) || math.IsInf(value, 0)) {
		c.err = &OutOfRangeError{
			Parameter: parameter,
			Value:     value,
			Min:       math.Inf(-1),
			Max:       math.Inf(1),
		}
	}
	return c
}

// WarnOutside records a warning when value falls outside (min, max).
// Warnings never fail the checker.
func (c *Checker) WarnOutside(parameter string, value, min, max float64, format string, args ...any) *Checker {
	if value <= min || value >= max {
		c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
	}
	return c
}

// WarnIf records a warning when cond is true.
func (c *Checker) WarnIf(cond bool, format string, args ...any) *Checker {
	if cond {
		c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
	}
	return c
}

// Err returns the first fatal error, or nil.
func (c *Checker) Err() error {
	return c.err
}

// Warnings returns accumulated warnings in the order raised.
func (c *Checker) Warnings() []string {
	return c.warnings
}
