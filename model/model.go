// Package model defines the capability interfaces shared by all physics
// models and the result types they produce. The compute engine depends on
// these interfaces only; it never inspects a concrete model. New domains
// are added by implementing the capability set, without touching existing
// code.
package model

import "github.com/nanocalc/go-nanocalc/units"

// PhysicsModel is the base capability set every physical model satisfies.
type PhysicsModel interface {
	// Name is the human-readable model name.
	Name() string

	// Describe is a short description of what the model calculates.
	Describe() string

	// Validate checks input parameters before any calculation.
	// A non-nil error means the inputs are non-physical and the
	// calculation must not run.
	Validate() error

	// Warnings reports non-fatal parameter-range concerns. They are
	// attached to result metadata and never block computation.
	Warnings() []string
}

// OpticalModel calculates optical response at one wavelength or across a
// spectrum.
type OpticalModel interface {
	PhysicsModel

	// Calculate evaluates the model at its configured wavelength.
	Calculate() (*OpticalResult, error)

	// CalculateSpectrum evaluates across the given wavelengths.
	// The returned slice is index-aligned with the input.
	CalculateSpectrum(wavelengths []units.Wavelength) ([]*OpticalResult, error)
}

// ThermalModel calculates size-dependent thermal transport properties.
type ThermalModel interface {
	PhysicsModel

	// Calculate evaluates the model at its configured temperature.
	Calculate() (*ThermalResult, error)

	// CalculateTemperatureSweep evaluates across the given temperatures.
	CalculateTemperatureSweep(temperatures []units.Kelvin) ([]*ThermalResult, error)
}

// ElectronicModel calculates size-dependent electronic structure properties.
type ElectronicModel interface {
	PhysicsModel

	// Calculate evaluates the model at its configured diameter.
	Calculate() (*ElectronicResult, error)

	// CalculateSizeSweep evaluates across the given diameters.
	CalculateSizeSweep(diameters []units.Nanometers) ([]*ElectronicResult, error)
}
