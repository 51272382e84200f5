package mie

import (
	"math"

	"github.com/nanocalc/go-nanocalc/model"
)

// Rayleigh evaluates the closed-form Rayleigh approximation (x << 1) for
// the model's inputs. It is the small-particle limit of the full series
// and is used both as a cheap estimate and as a convergence reference.
func (m *Model) Rayleigh() (*model.OpticalResult, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	x := m.SizeParameter()
	mRel := m.NParticle.Complex() / complex(m.NMedium, 0)

	m2 := mRel * mRel
	factor := (m2 - 1) / (m2 + 2)

	qSca := (8.0 / 3.0) * math.Pow(x, 4) *
		(real(factor)*real(factor) + imag(factor)*imag(factor))
	qAbs := 4.0 * x * imag(factor)
	qExt := qSca + qAbs

	warnings := m.Warnings()
	if x > 1.0 {
		warnings = append(warnings,
			"size parameter x > 1; Rayleigh approximation is unreliable, use the full series")
	}

	area := math.Pi * float64(m.Radius) * float64(m.Radius)
	return &model.OpticalResult{
		Wavelength: float64(m.Wavelength),
		QSca:       qSca,
		QAbs:       qAbs,
		QExt:       qExt,
		CSca:       qSca * area,
		CAbs:       qAbs * area,
		CExt:       qExt * area,
		Metadata: model.OpticalMetadata{
			SizeParameter: x,
			NumTerms:      1,
			Converged:     true,
			Warnings:      warnings,
		},
	}, nil
}
