// Package units defines unit-tagged numeric types for physical quantities.
// Each quantity gets its own Go type so that mixing incompatible units is a
// compile error rather than a silent scaling bug. Conversions between
// compatible units are explicit named methods, never implicit.
package units

import (
	"fmt"

	"github.com/nanocalc/go-nanocalc/constants"
)

// Nanometers is a length in nanometers.
type Nanometers float64

// Meters converts to meters.
func (n Nanometers) Meters() float64 {
	return float64(n) * constants.NmToM
}

// Micrometers converts to micrometers.
func (n Nanometers) Micrometers() Micrometers {
	return Micrometers(float64(n) * 1e-3)
}

// Micrometers is a length in micrometers.
type Micrometers float64

// Nanometers converts to nanometers.
func (m Micrometers) Nanometers() Nanometers {
	return Nanometers(float64(m) * 1e3)
}

// Wavelength is an optical wavelength in nanometers.
type Wavelength float64

// Meters converts to meters.
func (w Wavelength) Meters() float64 {
	return float64(w) * constants.NmToM
}

// EnergyEV returns the photon energy in electron volts.
func (w Wavelength) EnergyEV() ElectronVolts {
	return ElectronVolts(constants.PhotonEnergyEV(float64(w)))
}

// FrequencyHz returns the optical frequency in Hz.
func (w Wavelength) FrequencyHz() float64 {
	return constants.CNmPerS / float64(w)
}

// Kelvin is an absolute temperature.
type Kelvin float64

// Celsius converts to degrees Celsius.
func (k Kelvin) Celsius() float64 {
	return float64(k) - 273.15
}

// ElectronVolts is an energy in electron volts.
type ElectronVolts float64

// Joules converts to joules.
func (e ElectronVolts) Joules() float64 {
	return float64(e) * constants.EVToJoule
}

// WattsPerMeterKelvin is a thermal conductivity.
type WattsPerMeterKelvin float64

// RefractiveIndex is a complex refractive index n + ik.
// The imaginary part k is the extinction coefficient; for lossless media
// it is zero. Values are immutable.
type RefractiveIndex struct {
	N float64 // real part
	K float64 // extinction coefficient
}

// NewRefractiveIndex builds a refractive index from its parts.
func NewRefractiveIndex(n, k float64) RefractiveIndex {
	return RefractiveIndex{N: n, K: k}
}

// Complex returns the index as a complex128.
func (r RefractiveIndex) Complex() complex128 {
	return complex(r.N, r.K)
}

// Permittivity returns the relative permittivity ε = (n + ik)².
func (r RefractiveIndex) Permittivity() complex128 {
	c := r.Complex()
	return c * c
}

// String formats the index in the conventional n + ki form.
func (r RefractiveIndex) String() string {
	return fmt.Sprintf("%.4f + %.4fi", r.N, r.K)
}
