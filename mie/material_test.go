package mie

import (
	"math"
	"testing"

	"github.com/nanocalc/go-nanocalc/materials"
	"github.com/nanocalc/go-nanocalc/units"
)

func TestFromMaterial(t *testing.T) {
	rec, ok := materials.Builtin().Lookup("gold")
	if !ok {
		t.Fatal("builtin gold record missing")
	}
	m, err := FromMaterial(rec, 50.0, 520.0, 1.33)
	if err != nil {
		t.Fatalf("FromMaterial failed: %v", err)
	}
	if math.Abs(m.NParticle.N-0.47) > 1e-12 || math.Abs(m.NParticle.K-2.40) > 1e-12 {
		t.Errorf("interpolated index = %v, expected 0.47 + 2.40i", m.NParticle)
	}

	result, err := m.Calculate()
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if result.QExt <= 0 {
		t.Errorf("QExt = %g, expected positive", result.QExt)
	}
}

func TestSpectrumFromMaterial(t *testing.T) {
	rec, _ := materials.Builtin().Lookup("gold")
	wavelengths := []units.Wavelength{450, 500, 520, 550, 600}

	results, err := SpectrumFromMaterial(rec, 30.0, wavelengths, 1.33, nil)
	if err != nil {
		t.Fatalf("SpectrumFromMaterial failed: %v", err)
	}
	if len(results) != len(wavelengths) {
		t.Fatalf("got %d results for %d wavelengths", len(results), len(wavelengths))
	}

	// Dispersion must actually vary the response: the fixed-index
	// spectrum from a single template differs away from the anchor.
	fixed, err := FromMaterial(rec, 30.0, 520.0, 1.33)
	if err != nil {
		t.Fatalf("FromMaterial failed: %v", err)
	}
	fixedResults, err := fixed.CalculateSpectrum(wavelengths)
	if err != nil {
		t.Fatalf("CalculateSpectrum failed: %v", err)
	}
	if results[0].QExt == fixedResults[0].QExt {
		t.Error("dispersive and fixed-index spectra should differ at 450 nm")
	}
	if results[2].QExt != fixedResults[2].QExt {
		t.Error("dispersive and fixed-index spectra should agree at the anchor wavelength")
	}
}

func TestFromMaterialNoOpticalData(t *testing.T) {
	rec := &materials.Record{Name: "bare"}
	if _, err := FromMaterial(rec, 50.0, 520.0, 1.33); err == nil {
		t.Error("expected error for material without optical data")
	}
}
