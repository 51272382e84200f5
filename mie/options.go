package mie

// Options contains series solver configuration parameters.
type Options struct {
	// TruncationTol stops the series once a term's contribution drops
	// below this fraction of the largest term seen so far.
	TruncationTol float64

	// MaxTerms is the hard cap on series length. A size parameter whose
	// required truncation order exceeds this cap fails with a
	// convergence error before any series work begins.
	MaxTerms int
}

// DefaultOptions returns default solver options.
// These are balanced settings suitable for most particle sizes.
func DefaultOptions() *Options {
	return &Options{
		TruncationTol: 1e-8,
		MaxTerms:      2000,
	}
}

// StrictOptions returns options for high-precision results.
// Use these when publishing numbers or validating against references.
func StrictOptions() *Options {
	return &Options{
		TruncationTol: 1e-12,
		MaxTerms:      5000,
	}
}

// FastOptions returns options optimized for speed over accuracy.
// Use these for interactive sweeps where many points are evaluated.
func FastOptions() *Options {
	return &Options{
		TruncationTol: 1e-6,
		MaxTerms:      500,
	}
}
