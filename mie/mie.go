// Package mie implements Mie theory for light scattering by a homogeneous
// sphere. It computes scattering, absorption, and extinction efficiencies
// and cross-sections by truncated series expansion over the Mie
// coefficients a_n, b_n.
//
// The series is evaluated with the standard stable scheme: the logarithmic
// derivative of the Riccati-Bessel function at the complex argument mx is
// recursed downward (the numerically stable direction), while the
// Riccati-Bessel functions at the real argument x are recursed forward
// from n=0.
package mie

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/nanocalc/go-nanocalc/model"
	"github.com/nanocalc/go-nanocalc/units"
	"github.com/nanocalc/go-nanocalc/validation"
)

var _ model.OpticalModel = (*Model)(nil)

// Model holds the inputs for one Mie calculation: a homogeneous sphere of
// the given radius embedded in a lossless medium, illuminated at a single
// wavelength.
type Model struct {
	Radius     units.Nanometers
	Wavelength units.Wavelength

	// NParticle is the complex refractive index of the particle at
	// Wavelength.
	NParticle units.RefractiveIndex

	// NMedium is the real refractive index of the surrounding medium.
	NMedium float64

	opts *Options
}

// NewModel creates a Mie model with default solver options.
func NewModel(radius units.Nanometers, wavelength units.Wavelength, nParticle units.RefractiveIndex, nMedium float64) *Model {
	return &Model{
		Radius:     radius,
		Wavelength: wavelength,
		NParticle:  nParticle,
		NMedium:    nMedium,
		opts:       DefaultOptions(),
	}
}

// WithOptions sets custom solver options.
func (m *Model) WithOptions(opts *Options) *Model {
	m.opts = opts
	return m
}

// Name implements model.PhysicsModel.
func (m *Model) Name() string {
	return "Mie scattering"
}

// Describe implements model.PhysicsModel.
func (m *Model) Describe() string {
	return "Scattering, absorption, and extinction of spherical nanoparticles by Mie series expansion"
}

// SizeParameter returns x = 2πr/λ.
func (m *Model) SizeParameter() float64 {
	return 2.0 * math.Pi * float64(m.Radius) / float64(m.Wavelength)
}

// Validate checks that the inputs are physical. Non-positive radius,
// wavelength, or medium index, and a negative extinction coefficient are
// all fatal.
func (m *Model) Validate() error {
	return validation.NewChecker().
		Finite("radius", float64(m.Radius)).
		Finite("wavelength", float64(m.Wavelength)).
		Positive("radius", float64(m.Radius)).
		Positive("wavelength", float64(m.Wavelength)).
		Positive("n_medium", m.NMedium).
		NonNegative("k_particle", m.NParticle.K).
		Err()
}

// Warnings reports inputs that are physically valid but outside the
// solver's well-characterized regime. They never block computation.
func (m *Model) Warnings() []string {
	x := m.SizeParameter()
	return validation.NewChecker().
		WarnOutside("size_parameter", x, 0.01, 1000.0,
			"size parameter x=%.4g outside well-characterized range (0.01, 1000)", x).
		WarnIf(m.NParticle.K > 5.0,
			"very high absorption (k=%.4g); results may lose precision", m.NParticle.K).
		Warnings()
}

// Calculate evaluates the Mie series at the configured wavelength.
func (m *Model) Calculate() (*model.OpticalResult, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	x := m.SizeParameter()
	mRel := m.NParticle.Complex() / complex(m.NMedium, 0)

	qSca, qExt, terms, converged, err := series(x, mRel, m.opts)
	if err != nil {
		return nil, err
	}
	qAbs := qExt - qSca

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
			NumTerms:      terms,
			Converged:     converged,
			Warnings:      m.Warnings(),
		},
	}, nil
}

// CalculateSpectrum evaluates the model across the given wavelengths.
// The refractive indices are held fixed; callers with dispersive materials
// should rebuild the model per wavelength from tabulated data. The first
// failing wavelength aborts the whole spectrum.
func (m *Model) CalculateSpectrum(wavelengths []units.Wavelength) ([]*model.OpticalResult, error) {
	results := make([]*model.OpticalResult, len(wavelengths))
	for i, wl := range wavelengths {
		point := *m
		point.Wavelength = wl
		res, err := point.Calculate()
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}

// series sums the Mie series for size parameter x and relative refractive
// index mRel. It returns Q_sca, Q_ext, the number of terms used, and
// whether the truncation criterion was satisfied before the term budget
// ran out.
func series(x float64, mRel complex128, opts *Options) (qSca, qExt float64, terms int, converged bool, err error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Wiscombe truncation criterion.
	nMax := int(math.Ceil(x + 4.0*math.Cbrt(x) + 2.0))
	if nMax > opts.MaxTerms {
		return 0, 0, 0, false, &model.ConvergenceError{TermsAttempted: nMax}
	}

	mx := mRel * complex(x, 0)

	// Downward recursion of the logarithmic derivative D_n(mx),
	// seeded with zero safely above n_max.
	nStart := nMax
	if c := int(math.Ceil(cmplx.Abs(mx))); c > nStart {
		nStart = c
	}
	nStart += 15

	d := make([]complex128, nStart+1)
	for n := nStart; n > 0; n-- {
		cn := complex(float64(n), 0) / mx
		d[n-1] = cn - 1.0/(d[n]+cn)
	}

	// Forward recursion of the Riccati-Bessel functions ψ_n(x), χ_n(x),
	// starting from n = -1 and n = 0.
	psiPrev, psi := math.Cos(x), math.Sin(x)
	chiPrev, chi := -math.Sin(x), math.Cos(x)
	xi := complex(psi, -chi)

	var sumSca, sumExt, maxTerm float64
	terms = nMax

	for n := 1; n <= nMax; n++ {
		fn := float64(n)
		psiN := (2.0*fn-1.0)/x*psi - psiPrev
		chiN := (2.0*fn-1.0)/x*chi - chiPrev
		xiN := complex(psiN, -chiN)

		dn := d[n]
		da := dn/mRel + complex(fn/x, 0)
		db := dn*mRel + complex(fn/x, 0)
		an := (da*complex(psiN, 0) - complex(psi, 0)) / (da*xiN - xi)
		bn := (db*complex(psiN, 0) - complex(psi, 0)) / (db*xiN - xi)

		if !isFiniteComplex(an) || !isFiniteComplex(bn) {
			return 0, 0, 0, false, &model.NumericalInstabilityError{
				Description: fmt.Sprintf("non-finite Mie coefficient in series term %d", n),
			}
		}

		mult := 2.0*fn + 1.0
		termSca := mult * (real(an)*real(an) + imag(an)*imag(an) +
			real(bn)*real(bn) + imag(bn)*imag(bn))
		termExt := mult * (real(an) + real(bn))

		sumSca += termSca
		sumExt += termExt

		mag := math.Max(math.Abs(termSca), math.Abs(termExt))
		if mag > maxTerm {
			maxTerm = mag
		}
		if mag < opts.TruncationTol*maxTerm {
			terms = n
			converged = true
			break
		}

		psiPrev, psi = psi, psiN
		chiPrev, chi = chi, chiN
		xi = xiN
	}

	inv := 2.0 / (x * x)
	qSca = inv * sumSca
	qExt = inv * sumExt

	if math.IsNaN(qSca) || math.IsInf(qSca, 0) || math.IsNaN(qExt) || math.IsInf(qExt, 0) {
		return 0, 0, 0, false, &model.NumericalInstabilityError{
			Description: "non-finite efficiency after series summation",
		}
	}
	return qSca, qExt, terms, converged, nil
}

func isFiniteComplex(c complex128) bool {
	return !cmplx.IsNaN(c) && !cmplx.IsInf(c)
}
