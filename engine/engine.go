// Package engine orchestrates single-point and spectrum evaluation of
// optical calculations. It validates requests, delegates to the Mie
// solver, fans spectrum requests out across a worker pool, and memoizes
// results in a shared cache.
package engine

import (
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nanocalc/go-nanocalc/mie"
	"github.com/nanocalc/go-nanocalc/model"
	"github.com/nanocalc/go-nanocalc/units"
)

// CalculationRequest is the atomic unit of work: one sphere, one
// wavelength. It is a value type; two requests with equal fields are the
// same request, which is what makes it usable as a cache key.
type CalculationRequest struct {
	Radius     units.Nanometers
	Wavelength units.Wavelength
	NParticle  units.RefractiveIndex
	NMedium    float64
}

// Options contains engine configuration parameters.
type Options struct {
	// Workers bounds the spectrum fan-out. Zero means one worker per
	// logical CPU.
	Workers int

	// Solver configures the underlying Mie series; nil uses defaults.
	Solver *mie.Options
}

// DefaultOptions returns default engine options.
func DefaultOptions() *Options {
	return &Options{
		Workers: runtime.NumCPU(),
		Solver:  mie.DefaultOptions(),
	}
}

// Engine evaluates calculation requests over the Mie solver. The cache
// is constructed with the engine and torn down with it; it never holds
// state beyond the engine's lifetime.
type Engine struct {
	opts  *Options
	cache *ResultCache
	log   zerolog.Logger
}

// New creates an engine. Nil options select defaults.
func New(opts *Options) *Engine {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Solver == nil {
		opts.Solver = mie.DefaultOptions()
	}
	return &Engine{
		opts:  opts,
		cache: NewResultCache(),
		log:   zerolog.Nop(),
	}
}

// WithLogger sets the engine's logger.
func (e *Engine) WithLogger(log zerolog.Logger) *Engine {
	e.log = log
	return e
}

// Cache returns the engine's result cache for inspection.
func (e *Engine) Cache() *ResultCache {
	return e.cache
}

// Calculate evaluates a single request, consulting the cache first.
// Validation errors surface before any series work begins.
func (e *Engine) Calculate(req CalculationRequest) (*model.OpticalResult, error) {
	if cached := e.cache.Get(req); cached != nil {
		return cached, nil
	}

	m := mie.NewModel(req.Radius, req.Wavelength, req.NParticle, req.NMedium).
		WithOptions(e.opts.Solver)
	res, err := m.Calculate()
	if err != nil {
		return nil, err
	}

	e.cache.Put(req, res)
	return res, nil
}

// CalculateSpectrum evaluates the template request at every wavelength in
// order. The wavelengths are independent units of work mapped across the
// worker pool; the returned slice is always index-aligned with the input
// regardless of completion order. An error at any wavelength aborts the
// whole spectrum and surfaces the error for the lowest failing index.
func (e *Engine) CalculateSpectrum(template CalculationRequest, wavelengths []units.Wavelength) ([]*model.OpticalResult, error) {
	jobID := uuid.New()
	start := time.Now()
	e.log.Debug().
		Stringer("job", jobID).
		Int("wavelengths", len(wavelengths)).
		Int("workers", e.opts.Workers).
		Msg("spectrum started")

	results := make([]*model.OpticalResult, len(wavelengths))
	errs := make([]error, len(wavelengths))

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.opts.Workers)
	for i, wl := range wavelengths {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, wavelength units.Wavelength) {
			defer wg.Done()
			defer func() { <-sem }()
			req := template
			req.Wavelength = wavelength
			results[idx], errs[idx] = e.Calculate(req)
		}(i, wl)
	}
	wg.Wait()

	// Surface the first error in input order so repeated runs fail
	// deterministically.
	for i, err := range errs {
		if err != nil {
			e.log.Debug().
				Stringer("job", jobID).
				Int("index", i).
				Err(err).
				Msg("spectrum aborted")
			return nil, err
		}
	}

	e.log.Debug().
		Stringer("job", jobID).
		Dur("elapsed", time.Since(start)).
		Msg("spectrum finished")
	return results, nil
}
