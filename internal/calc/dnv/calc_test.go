package dnv

import (
	"errors"
	"math"
	"testing"

	pipe "Pipeguard/internal/calc/pipe"
)

func testInput(cls SafetyClass) Input {
	return Input{
		PipelineSpec: pipe.PipelineSpec{DiameterMM: 500, WallThicknessMM: 10, PressureMPa: 8},
		MaterialSpec: pipe.MaterialSpec{SMYSMPa: 358, SMTSMPa: 455},
		DefectSpec:   pipe.DefectSpec{LengthMM: 100, DepthMM: 3},
		SafetyClass:  cls,
	}
}

func assertApprox(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %.6f, want ~%.6f (tolerance %g)", name, got, want, tolerance)
	}
}

func TestCalculateLowClass(t *testing.T) {
	res, err := Calculate(testInput(ClassLow), nil)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	assertApprox(t, "Q", res.LengthCorrectionQ, 1.27279, 1e-4)
	assertApprox(t, "capacity", res.CapacityPressureMPa, 17.0095, 1e-3)
	assertApprox(t, "allowable", res.AllowablePressureMPa, 16.3553, 1e-3)
	assertApprox(t, "utilization", res.Utilization, 0.48914, 1e-4)
	if !res.Safe {
		t.Error("Safe = false, want true")
	}
}

func TestHigherClassMoreConservative(t *testing.T) {
	low, err := Calculate(testInput(ClassLow), nil)
	if err != nil {
		t.Fatal(err)
	}
	medium, err := Calculate(testInput(ClassMedium), nil)
	if err != nil {
		t.Fatal(err)
	}
	high, err := Calculate(testInput(ClassHigh), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !(low.Utilization < medium.Utilization && medium.Utilization < high.Utilization) {
		t.Errorf("utilization not increasing with class: low %g, medium %g, high %g",
			low.Utilization, medium.Utilization, high.Utilization)
	}
	if !(low.AllowablePressureMPa > medium.AllowablePressureMPa &&
		medium.AllowablePressureMPa > high.AllowablePressureMPa) {
		t.Errorf("allowable pressure not decreasing with class: %g, %g, %g",
			low.AllowablePressureMPa, medium.AllowablePressureMPa, high.AllowablePressureMPa)
	}
	// Same defect, same capacity under every class.
	assertApprox(t, "capacity low vs high", low.CapacityPressureMPa, high.CapacityPressureMPa, 1e-9)
}

func TestDefaultClassIsMedium(t *testing.T) {
	res, err := Calculate(testInput(""), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.SafetyClass != ClassMedium {
		t.Errorf("SafetyClass = %q, want medium", res.SafetyClass)
	}
}

func TestUnknownClass(t *testing.T) {
	_, err := Calculate(testInput("extreme"), nil)
	var iie *pipe.InvalidInputError
	if !errors.As(err, &iie) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
}

func TestUtilizationIncreasesWithDepth(t *testing.T) {
	prev := 0.0
	for _, depth := range []float64{0, 2, 4, 6, 8, 9.5} {
		in := testInput(ClassMedium)
		in.DefectSpec.DepthMM = depth
		res, err := Calculate(in, nil)
		if err != nil {
			t.Fatalf("depth %g: %v", depth, err)
		}
		if res.Utilization <= prev {
			t.Errorf("utilization not increasing at depth %g: %g <= %g", depth, res.Utilization, prev)
		}
		prev = res.Utilization
	}
}

func TestCustomFactorTable(t *testing.T) {
	table := FactorTable{
		ClassLow: {GammaM: 2.0, GammaD: 1.0, EpsilonD: 0.0},
	}
	res, err := Calculate(testInput(ClassLow), table)
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "allowable", res.AllowablePressureMPa, 17.0095/2, 1e-3)
}

func TestCapacitySingularityGuard(t *testing.T) {
	// rd >= Q only happens outside the validated envelope, guard still holds.
	_, err := capacityPressure(pipe.PipelineSpec{DiameterMM: 500, WallThicknessMM: 10},
		pipe.MaterialSpec{SMYSMPa: 358, SMTSMPa: 455}, 1.5, 1.0)
	var sing *pipe.SingularityError
	if !errors.As(err, &sing) {
		t.Fatalf("error = %v, want SingularityError", err)
	}
}

func TestParseFactors(t *testing.T) {
	f, err := ParseFactors("1.2, 1.05, 0.03")
	if err != nil {
		t.Fatalf("ParseFactors error: %v", err)
	}
	assertApprox(t, "gamma_m", f.GammaM, 1.2, 1e-12)
	assertApprox(t, "gamma_d", f.GammaD, 1.05, 1e-12)
	assertApprox(t, "epsilon_d", f.EpsilonD, 0.03, 1e-12)

	for _, bad := range []string{"", "1.2,1.05", "1.2,1.05,0.03,0.1", "a,b,c", "0,1,0", "1,-1,0"} {
		if _, err := ParseFactors(bad); err == nil {
			t.Errorf("ParseFactors(%q) = nil error, want failure", bad)
		}
	}
}

func TestTableFromEnvOverride(t *testing.T) {
	t.Setenv("DNV_FACTORS_HIGH", "1.5,1.2,0.1")
	table, err := TableFromEnv()
	if err != nil {
		t.Fatalf("TableFromEnv error: %v", err)
	}
	assertApprox(t, "gamma_m high", table[ClassHigh].GammaM, 1.5, 1e-12)
	// Untouched classes keep the defaults.
	assertApprox(t, "gamma_m low", table[ClassLow].GammaM, DefaultFactors()[ClassLow].GammaM, 1e-12)
}
