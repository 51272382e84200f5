package thermal

import (
	"errors"
	"math"
	"testing"

	"github.com/nanocalc/go-nanocalc/units"
	"github.com/nanocalc/go-nanocalc/validation"
)

// Silicon: κ_bulk = 148 W/(m·K), phonon mean free path ≈ 300 nm.
func silicon(diameter units.Nanometers) *Model {
	return NewModel(diameter, 300.0, 148.0, 300.0)
}

func TestBulkLimit(t *testing.T) {
	// For d >> Λ the effective conductivity approaches the bulk value.
	result, err := silicon(1e6).Calculate()
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if math.Abs(result.KappaEff-148.0)/148.0 > 1e-3 {
		t.Errorf("KappaEff = %g, expected ~148 for a millimeter particle", result.KappaEff)
	}
	if result.ReductionFactor < 0.999 {
		t.Errorf("ReductionFactor = %g, expected ~1", result.ReductionFactor)
	}
	if result.Metadata.DominantMechanism != "umklapp" {
		t.Errorf("DominantMechanism = %q, expected umklapp", result.Metadata.DominantMechanism)
	}
}

func TestBoundaryScattering(t *testing.T) {
	result, err := silicon(100.0).Calculate()
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// κ_eff = 148 / (1 + 4·300/(3·100)) = 29.6
	if math.Abs(result.KappaEff-29.6) > 1e-9 {
		t.Errorf("KappaEff = %g, expected 29.6", result.KappaEff)
	}
	if result.Metadata.DominantMechanism != "boundary" {
		t.Errorf("DominantMechanism = %q, expected boundary", result.Metadata.DominantMechanism)
	}
	if math.Abs(result.Metadata.SizeToMFPRatio-1.0/3.0) > 1e-12 {
		t.Errorf("SizeToMFPRatio = %g, expected 1/3", result.Metadata.SizeToMFPRatio)
	}
}

func TestMonotoneReduction(t *testing.T) {
	// Shrinking the particle must never increase conductivity.
	prev := math.Inf(1)
	for _, d := range []units.Nanometers{10000, 1000, 100, 10} {
		result, err := silicon(d).Calculate()
		if err != nil {
			t.Fatalf("Calculate failed for d=%g: %v", float64(d), err)
		}
		if result.KappaEff >= prev {
			t.Errorf("KappaEff(%g nm) = %g did not decrease (prev %g)", float64(d), result.KappaEff, prev)
		}
		prev = result.KappaEff
	}
}

func TestTemperatureScaling(t *testing.T) {
	cold, err := silicon(1000.0).Calculate()
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	hot := NewModel(1000.0, 600.0, 148.0, 300.0)
	hotResult, err := hot.Calculate()
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// κ ∝ 1/T: doubling temperature halves conductivity.
	if math.Abs(hotResult.KappaEff-cold.KappaEff/2.0) > 1e-9 {
		t.Errorf("KappaEff(600 K) = %g, expected half of %g", hotResult.KappaEff, cold.KappaEff)
	}
}

func TestTemperatureSweep(t *testing.T) {
	temps := []units.Kelvin{200, 300, 400, 500}
	results, err := silicon(500.0).CalculateTemperatureSweep(temps)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != len(temps) {
		t.Fatalf("got %d results for %d temperatures", len(results), len(temps))
	}
	for i, r := range results {
		if r.Temperature != float64(temps[i]) {
			t.Errorf("result[%d].Temperature = %g, expected %g", i, r.Temperature, float64(temps[i]))
		}
	}

	if _, err := silicon(500.0).CalculateTemperatureSweep([]units.Kelvin{300, -10}); err == nil {
		t.Error("expected error for negative temperature in sweep")
	}
}

func TestValidation(t *testing.T) {
	_, err := silicon(0.0).Calculate()
	if err == nil {
		t.Fatal("expected error for zero diameter")
	}
	var oor *validation.OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected *validation.OutOfRangeError, got %T", err)
	}
	if oor.Parameter != "diameter" {
		t.Errorf("failing parameter = %q, expected diameter", oor.Parameter)
	}
}

func TestSubNanometerWarning(t *testing.T) {
	result, err := silicon(0.5).Calculate()
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if len(result.Metadata.Warnings) == 0 {
		t.Error("expected continuum-limit warning for sub-nanometer diameter")
	}
}
