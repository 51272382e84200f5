// Package electronic implements the Brus effective-mass model for
// size-dependent bandgap widening in semiconductor nanoparticles.
// Quantum confinement raises the gap as 1/r² while the electron-hole
// Coulomb attraction lowers it as 1/r.
package electronic

import (
	"math"

	"github.com/nanocalc/go-nanocalc/constants"
	"github.com/nanocalc/go-nanocalc/model"
	"github.com/nanocalc/go-nanocalc/units"
	"github.com/nanocalc/go-nanocalc/validation"
)

var _ model.ElectronicModel = (*Model)(nil)

// Model holds the inputs for one bandgap calculation.
type Model struct {
	Diameter units.Nanometers

	// BulkBandgap is the bulk material bandgap.
	BulkBandgap units.ElectronVolts

	// ElectronMass and HoleMass are effective masses in units of m_e.
	ElectronMass float64
	HoleMass     float64

	// Dielectric is the relative permittivity of the material.
	Dielectric float64
}

// NewModel creates an electronic confinement model.
func NewModel(diameter units.Nanometers, bulkBandgap units.ElectronVolts, electronMass, holeMass, dielectric float64) *Model {
	return &Model{
		Diameter:     diameter,
		BulkBandgap:  bulkBandgap,
		ElectronMass: electronMass,
		HoleMass:     holeMass,
		Dielectric:   dielectric,
	}
}

// Name implements model.PhysicsModel.
func (m *Model) Name() string {
	return "Brus quantum confinement"
}

// Describe implements model.PhysicsModel.
func (m *Model) Describe() string {
	return "Size-dependent bandgap of semiconductor nanoparticles via the Brus effective-mass approximation"
}

// Validate implements model.PhysicsModel.
func (m *Model) Validate() error {
	return validation.NewChecker().
		Finite("diameter", float64(m.Diameter)).
		Positive("diameter", float64(m.Diameter)).
		Positive("bulk_bandgap", float64(m.BulkBandgap)).
		Positive("electron_mass", m.ElectronMass).
		Positive("hole_mass", m.HoleMass).
		Positive("dielectric", m.Dielectric).
		Err()
}

// Warnings implements model.PhysicsModel.
func (m *Model) Warnings() []string {
	return validation.NewChecker().
		WarnIf(m.Diameter < 1.0,
			"diameter %.3g nm approaches atomic scale; effective-mass approximation unreliable", float64(m.Diameter)).
		Warnings()
}

// ExcitonBohrRadius returns the material exciton Bohr radius [nm].
func (m *Model) ExcitonBohrRadius() float64 {
	mu := m.ElectronMass * m.HoleMass / (m.ElectronMass + m.HoleMass)
	return m.Dielectric / mu * constants.BohrRadiusNm
}

// Calculate evaluates the model at its configured diameter.
func (m *Model) Calculate() (*model.ElectronicResult, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m.at(m.Diameter), nil
}

// CalculateSizeSweep evaluates across the given diameters.
// The returned slice is index-aligned with the input; the first failing
// diameter aborts the sweep.
func (m *Model) CalculateSizeSweep(diameters []units.Nanometers) ([]*model.ElectronicResult, error) {
	results := make([]*model.ElectronicResult, len(diameters))
	for i, d := range diameters {
		point := *m
		point.Diameter = d
		res, err := point.Calculate()
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}

// at evaluates the Brus expression at diameter d. Inputs were validated.
func (m *Model) at(d units.Nanometers) *model.ElectronicResult {
	r := float64(d) / 2.0 * constants.NmToM

	// Confinement term: (ħ²π²/2r²)(1/m_e* + 1/m_h*), in eV.
	confinement := constants.Hbar * constants.Hbar * math.Pi * math.Pi /
		(2.0 * constants.ElectronMass * r * r) *
		(1.0/m.ElectronMass + 1.0/m.HoleMass) / constants.E

	// Coulomb term: -1.786 e²/(4πε₀ε_r r), in eV.
	coulomb := -1.786 * constants.E /
		(4.0 * math.Pi * constants.Epsilon0 * m.Dielectric * r)

	aB := m.ExcitonBohrRadius()
	ratio := float64(d) / 2.0 / aB

	regime := model.ConfinementIntermediate
	switch {
	case ratio < 0.5:
		regime = model.ConfinementStrong
	case ratio > 2.0:
		regime = model.ConfinementWeak
	}

	return &model.ElectronicResult{
		Diameter:          float64(d),
		Bandgap:           float64(m.BulkBandgap) + confinement + coulomb,
		BulkBandgap:       float64(m.BulkBandgap),
		ConfinementEnergy: confinement,
		CoulombCorrection: coulomb,
		ExcitonBohrRadius: aB,
		Regime:            regime,
		Metadata: model.ElectronicMetadata{
			EffectiveMass:      m.ElectronMass * m.HoleMass / (m.ElectronMass + m.HoleMass),
			DielectricConstant: m.Dielectric,
			ModelType:          "brus",
			Warnings:           m.Warnings(),
		},
	}
}
