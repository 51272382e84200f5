package electronic

import (
	"fmt"

	"github.com/nanocalc/go-nanocalc/materials"
	"github.com/nanocalc/go-nanocalc/units"
)

// FromMaterial builds a confinement model from a material record.
// Metals and other records without bandgap parameters are rejected.
func FromMaterial(rec *materials.Record, diameter units.Nanometers) (*Model, error) {
	if rec.BandgapEV <= 0 || rec.ElectronMass <= 0 || rec.HoleMass <= 0 || rec.Dielectric <= 0 {
		return nil, fmt.Errorf("material %q has no bandgap parameters", rec.Name)
	}
	return NewModel(diameter, units.ElectronVolts(rec.BandgapEV),
		rec.ElectronMass, rec.HoleMass, rec.Dielectric), nil
}
