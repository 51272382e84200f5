package constants

import (
	"math"
	"testing"
)

func TestFineStructure(t *testing.T) {
	// α = e² / (4πε₀ħc)
	alpha := E * E / (4.0 * math.Pi * Epsilon0 * Hbar * C)
	if math.Abs(alpha-Alpha)/Alpha > 1e-6 {
		t.Errorf("computed α=%g, tabulated α=%g", alpha, Alpha)
	}
}

func TestHCProduct(t *testing.T) {
	hc := H * C * MToNm / EVToJoule
	if math.Abs(hc-HCEVNm)/HCEVNm > 1e-6 {
		t.Errorf("computed h·c=%g eV·nm, tabulated %g", hc, HCEVNm)
	}
}

func TestRydberg(t *testing.T) {
	// Ry = m_e·e⁴ / (8ε₀²h²), converted to eV
	ry := ElectronMass * math.Pow(E, 4) / (8.0 * Epsilon0 * Epsilon0 * H * H) / E
	if math.Abs(ry-RydbergEV)/RydbergEV > 1e-6 {
		t.Errorf("computed Ry=%g eV, tabulated %g", ry, RydbergEV)
	}
}

func TestBohrRadius(t *testing.T) {
	// a₀ = 4πε₀ħ² / (m_e·e²)
	a0 := 4.0 * math.Pi * Epsilon0 * Hbar * Hbar / (ElectronMass * E * E)
	if math.Abs(a0-BohrRadius)/BohrRadius > 1e-6 {
		t.Errorf("computed a₀=%g m, tabulated %g", a0, BohrRadius)
	}
	if math.Abs(BohrRadiusNm-BohrRadius*MToNm)/BohrRadiusNm > 1e-6 {
		t.Errorf("nm value %g disagrees with SI value %g", BohrRadiusNm, BohrRadius*MToNm)
	}
}

func TestPhotonEnergy(t *testing.T) {
	// 520 nm green light is about 2.384 eV
	ev := PhotonEnergyEV(520.0)
	if math.Abs(ev-2.3843) > 1e-3 {
		t.Errorf("PhotonEnergyEV(520) = %g, expected ~2.3843", ev)
	}
}

func TestThermalDeBroglie(t *testing.T) {
	// Electron at 300 K: about 4.3 nm
	lambda := ThermalDeBroglieNm(ElectronMass, 300.0)
	if lambda < 4.0 || lambda > 4.6 {
		t.Errorf("electron thermal de Broglie wavelength = %g nm, expected ~4.3", lambda)
	}
}
