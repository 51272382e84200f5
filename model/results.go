package model

import "math"

// OpticalResult holds the optical response at a single wavelength.
// Efficiencies are dimensionless; cross-sections are in nm².
// Results are immutable once produced.
type OpticalResult struct {
	Wavelength float64 `json:"wavelength"` // nm

	QSca float64 `json:"qSca"` // scattering efficiency
	QAbs float64 `json:"qAbs"` // absorption efficiency
	QExt float64 `json:"qExt"` // extinction efficiency

	CSca float64 `json:"cSca"` // scattering cross-section [nm²]
	CAbs float64 `json:"cAbs"` // absorption cross-section [nm²]
	CExt float64 `json:"cExt"` // extinction cross-section [nm²]

	Metadata OpticalMetadata `json:"metadata"`
}

// OpticalMetadata records how an optical result was obtained.
type OpticalMetadata struct {
	// SizeParameter is x = 2πr/λ.
	SizeParameter float64 `json:"sizeParameter"`

	// NumTerms is the number of series terms actually used.
	NumTerms int `json:"numTerms"`

	// Converged reports whether the series truncation criterion was
	// satisfied before the term budget ran out. A false value is
	// surfaced to callers, never hidden.
	Converged bool `json:"converged"`

	// Warnings holds non-fatal range warnings, in the order raised.
	Warnings []string `json:"warnings,omitempty"`
}

// ConservationDefect returns |Q_ext - (Q_sca + Q_abs)|.
// Energy conservation requires this to vanish.
func (r *OpticalResult) ConservationDefect() float64 {
	return math.Abs(r.QExt - (r.QSca + r.QAbs))
}

// ThermalResult holds size-dependent thermal transport properties.
type ThermalResult struct {
	Temperature float64 `json:"temperature"` // K

	KappaEff  float64 `json:"kappaEff"`  // effective conductivity [W/(m·K)]
	KappaBulk float64 `json:"kappaBulk"` // bulk conductivity for comparison

	// ReductionFactor is KappaEff / KappaBulk.
	ReductionFactor float64 `json:"reductionFactor"`

	// MeanFreePath is the phonon mean free path [nm].
	MeanFreePath float64 `json:"meanFreePath"`

	Metadata ThermalMetadata `json:"metadata"`
}

// ThermalMetadata records how a thermal result was obtained.
type ThermalMetadata struct {
	// SizeToMFPRatio is d / λ_mfp.
	SizeToMFPRatio float64 `json:"sizeToMfpRatio"`

	// DominantMechanism names the dominant phonon scattering mechanism.
	DominantMechanism string `json:"dominantMechanism,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// ConfinementRegime classifies quantum confinement strength relative to
// the exciton Bohr radius.
type ConfinementRegime string

const (
	ConfinementWeak         ConfinementRegime = "weak"         // r >> a_B
	ConfinementIntermediate ConfinementRegime = "intermediate" // r ≈ a_B
	ConfinementStrong       ConfinementRegime = "strong"       // r << a_B
)

// ElectronicResult holds size-dependent electronic structure properties.
type ElectronicResult struct {
	Diameter float64 `json:"diameter"` // nm

	Bandgap     float64 `json:"bandgap"`     // eV
	BulkBandgap float64 `json:"bulkBandgap"` // eV

	// ConfinementEnergy is the kinetic confinement contribution [eV].
	ConfinementEnergy float64 `json:"confinementEnergy"`

	// CoulombCorrection is the electron-hole attraction correction [eV].
	// It is negative.
	CoulombCorrection float64 `json:"coulombCorrection"`

	// ExcitonBohrRadius is the material exciton Bohr radius [nm].
	ExcitonBohrRadius float64 `json:"excitonBohrRadius"`

	Regime ConfinementRegime `json:"regime"`

	Metadata ElectronicMetadata `json:"metadata"`
}

// ElectronicMetadata records how an electronic result was obtained.
type ElectronicMetadata struct {
	// EffectiveMass is the reduced effective mass used, in units of m_e.
	EffectiveMass float64 `json:"effectiveMass"`

	// DielectricConstant is the relative permittivity used.
	DielectricConstant float64 `json:"dielectricConstant"`

	// ModelType names the approximation (e.g. "brus").
	ModelType string `json:"modelType"`

	Warnings []string `json:"warnings,omitempty"`
}
