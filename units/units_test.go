package units

import (
	"math"
	"testing"
)

func TestLengthConversions(t *testing.T) {
	r := Nanometers(50.0)
	if math.Abs(r.Meters()-50.0e-9)/50.0e-9 > 1e-12 {
		t.Errorf("50 nm = %g m, expected 5e-8", r.Meters())
	}
	if math.Abs(float64(r.Micrometers())-0.05) > 1e-12 {
		t.Errorf("50 nm = %g µm, expected 0.05", r.Micrometers())
	}
	if math.Abs(float64(Micrometers(0.05).Nanometers())-50.0) > 1e-10 {
		t.Errorf("0.05 µm = %g nm, expected 50", Micrometers(0.05).Nanometers())
	}
}

func TestWavelengthEnergy(t *testing.T) {
	w := Wavelength(520.0)
	ev := float64(w.EnergyEV())
	if math.Abs(ev-2.3843) > 1e-3 {
		t.Errorf("520 nm = %g eV, expected ~2.3843", ev)
	}
	hz := w.FrequencyHz()
	if math.Abs(hz-5.7652e14)/5.7652e14 > 1e-3 {
		t.Errorf("520 nm = %g Hz, expected ~5.765e14", hz)
	}
}

func TestKelvinCelsius(t *testing.T) {
	if math.Abs(Kelvin(300.0).Celsius()-26.85) > 1e-10 {
		t.Errorf("300 K = %g °C, expected 26.85", Kelvin(300.0).Celsius())
	}
}

func TestRefractiveIndex(t *testing.T) {
	ri := NewRefractiveIndex(0.47, 2.40)
	c := ri.Complex()
	if real(c) != 0.47 || imag(c) != 2.40 {
		t.Errorf("Complex() = %v, expected (0.47+2.40i)", c)
	}

	// ε = n² - k² + 2nki
	eps := ri.Permittivity()
	wantRe := 0.47*0.47 - 2.40*2.40
	wantIm := 2.0 * 0.47 * 2.40
	if math.Abs(real(eps)-wantRe) > 1e-12 || math.Abs(imag(eps)-wantIm) > 1e-12 {
		t.Errorf("Permittivity() = %v, expected (%g%+gi)", eps, wantRe, wantIm)
	}

	if got := ri.String(); got != "0.4700 + 2.4000i" {
		t.Errorf("String() = %q", got)
	}
}
