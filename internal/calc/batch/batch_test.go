package batch

import (
	"math"
	"testing"

	assess "Pipeguard/internal/calc/assess"
	pipe "Pipeguard/internal/calc/pipe"
)

func testInput(defects ...pipe.DefectSpec) Input {
	return Input{
		Method:       assess.MethodASMEB31GModified,
		PipelineSpec: pipe.PipelineSpec{DiameterMM: 500, WallThicknessMM: 10, PressureMPa: 8},
		MaterialSpec: pipe.MaterialSpec{SMYSMPa: 358, SMTSMPa: 455},
		Defects:      defects,
	}
}

func TestCalculateAggregates(t *testing.T) {
	in := testInput(
		pipe.DefectSpec{LengthMM: 100, DepthMM: 3},
		pipe.DefectSpec{LengthMM: 300, DepthMM: 8},
		pipe.DefectSpec{LengthMM: 50, DepthMM: 1},
	)
	res, err := Calculate(in, nil)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(res.Results))
	}
	if res.Safe {
		t.Error("Safe = true with one failing defect, want false")
	}
	worst := 0.0
	for _, r := range res.Results {
		worst = math.Max(worst, r.Ratio)
	}
	if res.WorstRatio != worst {
		t.Errorf("WorstRatio = %g, want %g", res.WorstRatio, worst)
	}
	if res.WorstRatio < 1.0 {
		t.Errorf("WorstRatio = %g, want >= 1 for the deep long defect", res.WorstRatio)
	}
}

func TestCalculateAllSafe(t *testing.T) {
	in := testInput(
		pipe.DefectSpec{LengthMM: 100, DepthMM: 2},
		pipe.DefectSpec{LengthMM: 120, DepthMM: 3},
	)
	res, err := Calculate(in, nil)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if !res.Safe {
		t.Error("Safe = false, want true")
	}
}

func TestCalculateNoDefects(t *testing.T) {
	if _, err := Calculate(testInput(), nil); err == nil {
		t.Fatal("want error for empty defect list")
	}
}

func TestCalculateBadDefectReportsIndex(t *testing.T) {
	in := testInput(
		pipe.DefectSpec{LengthMM: 100, DepthMM: 3},
		pipe.DefectSpec{LengthMM: 100, DepthMM: 15}, // deeper than the wall
	)
	_, err := Calculate(in, nil)
	if err == nil {
		t.Fatal("want error for invalid defect")
	}
}
