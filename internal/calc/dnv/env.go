package dnv

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// TableFromEnv returns the default factor table with any per-class overrides
// applied from DNV_FACTORS_LOW / DNV_FACTORS_MEDIUM / DNV_FACTORS_HIGH, each
// a "gamma_m,gamma_d,epsilon_d" triple.
func TableFromEnv() (FactorTable, error) {
	table := DefaultFactors()
	keys := map[SafetyClass]string{
		ClassLow:    "DNV_FACTORS_LOW",
		ClassMedium: "DNV_FACTORS_MEDIUM",
		ClassHigh:   "DNV_FACTORS_HIGH",
	}
	for cls, key := range keys {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		f, err := ParseFactors(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		table[cls] = f
	}
	return table, nil
}

// ParseFactors parses a "gamma_m,gamma_d,epsilon_d" triple.
func ParseFactors(s string) (Factors, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Factors{}, fmt.Errorf("want gamma_m,gamma_d,epsilon_d, got %q", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Factors{}, fmt.Errorf("bad factor %q", p)
		}
		vals[i] = v
	}
	if vals[0] <= 0 || vals[1] <= 0 || vals[2] < 0 {
		return Factors{}, fmt.Errorf("gamma factors must be positive, epsilon non-negative")
	}
	return Factors{GammaM: vals[0], GammaD: vals[1], EpsilonD: vals[2]}, nil
}
