package pipe

import (
	"errors"
	"math"
	"testing"
)

func assertApprox(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %.6f, want ~%.6f (tolerance %g)", name, got, want, tolerance)
	}
}

func TestFoliasM(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{"zero length", 0, 1.0},
		{"short defect", 2, 1.49716},
		{"quadratic upper end", 50, 4.89260},
		{"linear tail", 60, 5.22},
		{"linear tail far", 100, 6.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FoliasM(tt.z)
			if err != nil {
				t.Fatalf("FoliasM(%g) error: %v", tt.z, err)
			}
			assertApprox(t, "M", got, tt.want, 1e-4)
		})
	}
}

func TestFoliasMNegative(t *testing.T) {
	_, err := FoliasM(-0.5)
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("FoliasM(-0.5) error = %v, want DomainError", err)
	}
}

func TestFoliasMMonotone(t *testing.T) {
	prev := 0.0
	for z := 0.0; z <= 120; z += 5 {
		m, err := FoliasM(z)
		if err != nil {
			t.Fatalf("FoliasM(%g) error: %v", z, err)
		}
		if m < 1 {
			t.Errorf("FoliasM(%g) = %g, want >= 1", z, m)
		}
		if m <= prev {
			t.Errorf("FoliasM not increasing at z=%g: %g <= %g", z, m, prev)
		}
		prev = m
	}
}

func TestLengthCorrectionQ(t *testing.T) {
	got, err := LengthCorrectionQ(0)
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "Q(0)", got, 1.0, 1e-9)

	got, err = LengthCorrectionQ(2)
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "Q(2)", got, 1.27279, 1e-4)
}

func TestLengthCorrectionQNegative(t *testing.T) {
	_, err := LengthCorrectionQ(-1)
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("LengthCorrectionQ(-1) error = %v, want DomainError", err)
	}
}

func TestLengthCorrectionQMonotone(t *testing.T) {
	prev := 0.0
	for z := 0.0; z <= 200; z += 10 {
		q, err := LengthCorrectionQ(z)
		if err != nil {
			t.Fatalf("Q(%g) error: %v", z, err)
		}
		if q < 1 || q <= prev {
			t.Errorf("Q(%g) = %g, want >= 1 and > %g", z, q, prev)
		}
		prev = q
	}
}
