// Package constants provides CODATA 2018 physical constants.
// All values are in SI units unless the name says otherwise.
// These are the single source of these literals; other packages
// must never restate them inline.
package constants

import "math"

// Speed of light in vacuum [m/s] (exact).
const C = 2.99792458e8

// Speed of light [nm/s].
const CNmPerS = 2.99792458e17

// Planck constant [J·s] (exact).
const H = 6.62607015e-34

// Reduced Planck constant ħ [J·s].
const Hbar = 1.054571817e-34

// Boltzmann constant [J/K] (exact).
const KB = 1.380649e-23

// Elementary charge [C] (exact).
const E = 1.602176634e-19

// Electron mass [kg].
const ElectronMass = 9.1093837015e-31

// Proton mass [kg].
const ProtonMass = 1.67262192369e-27

// Avogadro constant [1/mol] (exact).
const Avogadro = 6.02214076e23

// Vacuum permittivity ε₀ [F/m].
const Epsilon0 = 8.8541878128e-12

// Vacuum permeability μ₀ [H/m].
const Mu0 = 1.25663706212e-6

// Fine structure constant α (dimensionless).
const Alpha = 7.2973525693e-3

// Rydberg energy [eV].
const RydbergEV = 13.605693122994

// Bohr radius [m].
const BohrRadius = 5.29177210903e-11

// Bohr radius [nm].
const BohrRadiusNm = 0.05291772109

// Conversion factors between common unit systems.
const (
	// EVToJoule converts electron volts to joules.
	EVToJoule = 1.602176634e-19

	// JouleToEV converts joules to electron volts.
	JouleToEV = 6.241509074e18

	// NmToM converts nanometers to meters.
	NmToM = 1e-9

	// MToNm converts meters to nanometers.
	MToNm = 1e9

	// HCEVNm is the h·c product in eV·nm, useful for photon energy.
	HCEVNm = 1239.84193

	// AmuToKg converts atomic mass units to kilograms.
	AmuToKg = 1.66053906660e-27
)

// ThermalEnergy300KEV is k_B·T at 300 K in eV.
const ThermalEnergy300KEV = 0.02585

// PhotonEnergyEV returns the photon energy in eV for a wavelength in nm.
func PhotonEnergyEV(wavelengthNm float64) float64 {
	return HCEVNm / wavelengthNm
}

// ThermalDeBroglieNm returns the thermal de Broglie wavelength in nm
// for a particle of the given mass [kg] at temperature [K].
func ThermalDeBroglieNm(massKg, temperatureK float64) float64 {
	lambda := H / math.Sqrt(2.0*math.Pi*massKg*KB*temperatureK)
	return lambda * MToNm
}

// PlasmaWavelengthNm converts a plasma frequency given as an energy in eV
// to the corresponding free-space wavelength in nm.
func PlasmaWavelengthNm(omegaPEV float64) float64 {
	return HCEVNm / omegaPEV
}
