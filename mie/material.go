package mie

import (
	"github.com/nanocalc/go-nanocalc/materials"
	"github.com/nanocalc/go-nanocalc/model"
	"github.com/nanocalc/go-nanocalc/units"
)

// FromMaterial builds a Mie model from a material record, interpolating
// the particle's refractive index at the given wavelength.
func FromMaterial(rec *materials.Record, radius units.Nanometers, wavelength units.Wavelength, nMedium float64) (*Model, error) {
	ri, err := rec.RefractiveIndexAt(float64(wavelength))
	if err != nil {
		return nil, err
	}
	return NewModel(radius, wavelength, ri, nMedium), nil
}

// SpectrumFromMaterial evaluates a dispersive spectrum: unlike
// Model.CalculateSpectrum, the particle's refractive index is
// re-interpolated from the material table at every wavelength.
func SpectrumFromMaterial(rec *materials.Record, radius units.Nanometers, wavelengths []units.Wavelength, nMedium float64, opts *Options) ([]*model.OpticalResult, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	results := make([]*model.OpticalResult, len(wavelengths))
	for i, wl := range wavelengths {
		m, err := FromMaterial(rec, radius, wl, nMedium)
		if err != nil {
			return nil, err
		}
		res, err := m.WithOptions(opts).Calculate()
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}
