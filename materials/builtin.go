package materials

// Builtin returns a registry preloaded with reference records for common
// nanoparticle materials. Optical constants are approximate literature
// values; treat them as starting points, not measurement-grade data.
func Builtin() *Registry {
	reg := NewRegistry()

	reg.Register(&Record{
		Name:        "gold",
		Description: "Gold (Au) nanoparticles; plasmonic in the visible",
		Optical: []OpticalPoint{
			{Wavelength: 400, N: 1.47, K: 1.95},
			{Wavelength: 450, N: 1.40, K: 1.88},
			{Wavelength: 500, N: 0.85, K: 1.90},
			{Wavelength: 520, N: 0.47, K: 2.40},
			{Wavelength: 550, N: 0.33, K: 2.32},
			{Wavelength: 600, N: 0.20, K: 2.90},
			{Wavelength: 650, N: 0.14, K: 3.37},
			{Wavelength: 700, N: 0.13, K: 3.84},
		},
		KappaBulk:  317.0,
		PhononMFP:  40.0,
		Dielectric: 6.9,
	})

	reg.Register(&Record{
		Name:        "silver",
		Description: "Silver (Ag) nanoparticles; plasmonic near 400 nm",
		Optical: []OpticalPoint{
			{Wavelength: 400, N: 0.05, K: 3.00},
			{Wavelength: 450, N: 0.04, K: 3.50},
			{Wavelength: 500, N: 0.05, K: 4.00},
			{Wavelength: 550, N: 0.06, K: 4.50},
			{Wavelength: 600, N: 0.06, K: 5.00},
			{Wavelength: 650, N: 0.07, K: 5.45},
			{Wavelength: 700, N: 0.08, K: 5.90},
		},
		KappaBulk:  429.0,
		PhononMFP:  53.0,
		Dielectric: 5.5,
	})

	reg.Register(&Record{
		Name:        "silicon",
		Description: "Crystalline silicon (Si)",
		Optical: []OpticalPoint{
			{Wavelength: 400, N: 5.57, K: 0.39},
			{Wavelength: 450, N: 4.67, K: 0.13},
			{Wavelength: 500, N: 4.15, K: 0.04},
			{Wavelength: 550, N: 4.08, K: 0.03},
			{Wavelength: 600, N: 3.94, K: 0.02},
			{Wavelength: 650, N: 3.85, K: 0.02},
			{Wavelength: 700, N: 3.78, K: 0.01},
		},
		KappaBulk:    148.0,
		PhononMFP:    300.0,
		BandgapEV:    1.12,
		ElectronMass: 0.26,
		HoleMass:     0.39,
		Dielectric:   11.7,
	})

	reg.Register(&Record{
		Name:        "tio2",
		Description: "Titanium dioxide (rutile)",
		Optical: []OpticalPoint{
			{Wavelength: 400, N: 2.85, K: 0.0},
			{Wavelength: 450, N: 2.70, K: 0.0},
			{Wavelength: 500, N: 2.60, K: 0.0},
			{Wavelength: 550, N: 2.50, K: 0.0},
			{Wavelength: 600, N: 2.44, K: 0.0},
			{Wavelength: 650, N: 2.40, K: 0.0},
			{Wavelength: 700, N: 2.37, K: 0.0},
		},
		KappaBulk:    8.8,
		PhononMFP:    3.0,
		BandgapEV:    3.0,
		ElectronMass: 1.0,
		HoleMass:     0.8,
		Dielectric:   31.0,
	})

	reg.Register(&Record{
		Name:        "cdse",
		Description: "Cadmium selenide (CdSe) quantum dots",
		Optical: []OpticalPoint{
			{Wavelength: 500, N: 2.70, K: 0.25},
			{Wavelength: 550, N: 2.65, K: 0.20},
			{Wavelength: 600, N: 2.60, K: 0.15},
			{Wavelength: 650, N: 2.55, K: 0.10},
			{Wavelength: 700, N: 2.53, K: 0.05},
		},
		KappaBulk:    9.0,
		PhononMFP:    8.0,
		BandgapEV:    1.74,
		ElectronMass: 0.13,
		HoleMass:     0.45,
		Dielectric:   9.4,
	})

	return reg
}
