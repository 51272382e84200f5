// Package materials provides bulk reference properties of common
// nanoparticle materials: tabulated optical constants per wavelength,
// thermal transport parameters, and bandgap parameters. Domain models
// consume these records instead of directly supplied constants.
package materials

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/interp"

	"github.com/nanocalc/go-nanocalc/units"
)

// OpticalPoint is one tabulated optical constant sample.
type OpticalPoint struct {
	Wavelength float64 `json:"wavelength"` // nm
	N          float64 `json:"n"`
	K          float64 `json:"k"`
}

// Record holds the bulk physical properties of one material,
// keyed by material name.
type Record struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Optical holds tabulated optical constants, sorted by wavelength.
	Optical []OpticalPoint `json:"optical,omitempty"`

	// KappaBulk is the bulk thermal conductivity at 300 K [W/(m·K)].
	KappaBulk float64 `json:"kappaBulk,omitempty"`

	// PhononMFP is the bulk phonon mean free path [nm].
	PhononMFP float64 `json:"phononMfp,omitempty"`

	// BandgapEV is the bulk bandgap [eV]; zero for metals.
	BandgapEV float64 `json:"bandgapEv,omitempty"`

	// ElectronMass and HoleMass are effective masses in units of m_e.
	ElectronMass float64 `json:"electronMass,omitempty"`
	HoleMass     float64 `json:"holeMass,omitempty"`

	// Dielectric is the relative permittivity.
	Dielectric float64 `json:"dielectric,omitempty"`

	// Fitted interpolators, built once on first lookup. Optical must
	// not be mutated after that.
	fitOnce sync.Once
	nFit    interp.PiecewiseLinear
	kFit    interp.PiecewiseLinear
	fitErr  error
}

func (r *Record) fit() error {
	r.fitOnce.Do(func() {
		xs := make([]float64, len(r.Optical))
		ns := make([]float64, len(r.Optical))
		ks := make([]float64, len(r.Optical))
		for i, p := range r.Optical {
			xs[i] = p.Wavelength
			ns[i] = p.N
			ks[i] = p.K
		}
		if err := r.nFit.Fit(xs, ns); err != nil {
			r.fitErr = fmt.Errorf("material %q: fitting n: %w", r.Name, err)
			return
		}
		if err := r.kFit.Fit(xs, ks); err != nil {
			r.fitErr = fmt.Errorf("material %q: fitting k: %w", r.Name, err)
		}
	})
	return r.fitErr
}

// RefractiveIndexAt interpolates the tabulated optical constants at the
// given wavelength [nm]. Wavelengths outside the tabulated range clamp
// to the nearest endpoint. Interpolation is piecewise linear in both n
// and k.
func (r *Record) RefractiveIndexAt(wavelength float64) (units.RefractiveIndex, error) {
	switch len(r.Optical) {
	case 0:
		return units.RefractiveIndex{}, fmt.Errorf("material %q has no optical data", r.Name)
	case 1:
		p := r.Optical[0]
		return units.NewRefractiveIndex(p.N, p.K), nil
	}

	if err := r.fit(); err != nil {
		return units.RefractiveIndex{}, err
	}

	if lo := r.Optical[0].Wavelength; wavelength < lo {
		wavelength = lo
	}
	if hi := r.Optical[len(r.Optical)-1].Wavelength; wavelength > hi {
		wavelength = hi
	}
	return units.NewRefractiveIndex(r.nFit.Predict(wavelength), r.kFit.Predict(wavelength)), nil
}

// WavelengthRange returns the tabulated wavelength bounds [nm], or
// (0, 0) when the record has no optical data.
func (r *Record) WavelengthRange() (min, max float64) {
	if len(r.Optical) == 0 {
		return 0, 0
	}
	return r.Optical[0].Wavelength, r.Optical[len(r.Optical)-1].Wavelength
}

// Store is the material lookup capability the compute core consumes.
type Store interface {
	// Lookup returns the record for a material name, or false when the
	// material is unknown.
	Lookup(name string) (*Record, bool)
}

var _ Store = (*Registry)(nil)

// Registry is an in-memory, concurrency-safe material store.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[string]*Record)}
}

// Register adds or replaces a record, keeping its optical table sorted.
func (g *Registry) Register(rec *Record) {
	sort.Slice(rec.Optical, func(i, j int) bool {
		return rec.Optical[i].Wavelength < rec.Optical[j].Wavelength
	})
	g.mu.Lock()
	defer g.mu.Unlock()
	g.records[rec.Name] = rec
}

// Lookup implements Store.
func (g *Registry) Lookup(name string) (*Record, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec, ok := g.records[name]
	return rec, ok
}

// Names returns the registered material names, sorted.
func (g *Registry) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.records))
	for name := range g.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
