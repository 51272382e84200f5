package materials

import (
	"math"
	"testing"
)

func TestBuiltinLookup(t *testing.T) {
	reg := Builtin()
	for _, name := range []string{"gold", "silver", "silicon", "tio2", "cdse"} {
		rec, ok := reg.Lookup(name)
		if !ok {
			t.Errorf("builtin material %q missing", name)
			continue
		}
		if rec.Name != name {
			t.Errorf("record name %q does not match key %q", rec.Name, name)
		}
	}
	if _, ok := reg.Lookup("unobtainium"); ok {
		t.Error("unknown material should not resolve")
	}
}

func TestRefractiveIndexAtTabulatedPoint(t *testing.T) {
	rec, _ := Builtin().Lookup("gold")
	ri, err := rec.RefractiveIndexAt(520.0)
	if err != nil {
		t.Fatalf("RefractiveIndexAt failed: %v", err)
	}
	if math.Abs(ri.N-0.47) > 1e-12 || math.Abs(ri.K-2.40) > 1e-12 {
		t.Errorf("gold at 520 nm = %v, expected 0.47 + 2.40i", ri)
	}
}

func TestRefractiveIndexInterpolation(t *testing.T) {
	rec := &Record{
		Name: "test",
		Optical: []OpticalPoint{
			{Wavelength: 400, N: 1.0, K: 0.0},
			{Wavelength: 600, N: 2.0, K: 1.0},
		},
	}
	ri, err := rec.RefractiveIndexAt(500.0)
	if err != nil {
		t.Fatalf("RefractiveIndexAt failed: %v", err)
	}
	if math.Abs(ri.N-1.5) > 1e-12 || math.Abs(ri.K-0.5) > 1e-12 {
		t.Errorf("midpoint interpolation = %v, expected 1.5 + 0.5i", ri)
	}
}

func TestRefractiveIndexRepeatedLookups(t *testing.T) {
	// The interpolators are fitted once per record; later lookups reuse
	// them and must agree bitwise with the first.
	rec, _ := Builtin().Lookup("gold")
	first, err := rec.RefractiveIndexAt(478.0)
	if err != nil {
		t.Fatalf("RefractiveIndexAt failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := rec.RefractiveIndexAt(478.0)
		if err != nil {
			t.Fatalf("repeated RefractiveIndexAt failed: %v", err)
		}
		if again != first {
			t.Fatalf("lookup %d returned %v, first returned %v", i, again, first)
		}
	}
}

func TestRefractiveIndexClamping(t *testing.T) {
	rec, _ := Builtin().Lookup("silicon")
	below, err := rec.RefractiveIndexAt(200.0)
	if err != nil {
		t.Fatalf("RefractiveIndexAt failed: %v", err)
	}
	atMin, _ := rec.RefractiveIndexAt(400.0)
	if below != atMin {
		t.Errorf("wavelength below range should clamp: got %v, expected %v", below, atMin)
	}
}

func TestRefractiveIndexNoData(t *testing.T) {
	rec := &Record{Name: "bare"}
	if _, err := rec.RefractiveIndexAt(500.0); err == nil {
		t.Error("expected error for record without optical data")
	}
}

func TestRegisterSortsOpticalTable(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Record{
		Name: "scrambled",
		Optical: []OpticalPoint{
			{Wavelength: 600, N: 2.0},
			{Wavelength: 400, N: 1.0},
			{Wavelength: 500, N: 1.5},
		},
	})
	rec, _ := reg.Lookup("scrambled")
	for i := 1; i < len(rec.Optical); i++ {
		if rec.Optical[i].Wavelength <= rec.Optical[i-1].Wavelength {
			t.Fatalf("optical table not sorted: %v", rec.Optical)
		}
	}
}

func TestWavelengthRange(t *testing.T) {
	rec, _ := Builtin().Lookup("gold")
	min, max := rec.WavelengthRange()
	if min != 400.0 || max != 700.0 {
		t.Errorf("gold range = [%g, %g], expected [400, 700]", min, max)
	}
}
