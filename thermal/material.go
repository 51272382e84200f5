package thermal

import (
	"fmt"

	"github.com/nanocalc/go-nanocalc/materials"
	"github.com/nanocalc/go-nanocalc/units"
)

// FromMaterial builds a thermal model from a material record.
func FromMaterial(rec *materials.Record, diameter units.Nanometers, temperature units.Kelvin) (*Model, error) {
	if rec.KappaBulk <= 0 || rec.PhononMFP <= 0 {
		return nil, fmt.Errorf("material %q has no thermal transport parameters", rec.Name)
	}
	return NewModel(diameter, temperature,
		units.WattsPerMeterKelvin(rec.KappaBulk), units.Nanometers(rec.PhononMFP)), nil
}
