package dnv

import (
	pipe "Pipeguard/internal/calc/pipe"
)

type SafetyClass string

const (
	ClassLow    SafetyClass = "low"
	ClassMedium SafetyClass = "medium"
	ClassHigh   SafetyClass = "high"
)

// Factors are the RP F101 partial safety factors for one safety class:
// GammaM covers model uncertainty, GammaD and EpsilonD cover depth
// measurement uncertainty.
type Factors struct {
	GammaM   float64 `json:"gamma_m"`
	GammaD   float64 `json:"gamma_d"`
	EpsilonD float64 `json:"epsilon_d"`
}

// FactorTable maps safety class to its partial safety factors. Built once at
// startup and read-only afterwards.
type FactorTable map[SafetyClass]Factors

// DefaultFactors returns the calibration defaults. The exact table is an
// operator configuration choice taken from the RP F101 standard; override per
// class via DNV_FACTORS_LOW / _MEDIUM / _HIGH.
func DefaultFactors() FactorTable {
	return FactorTable{
		ClassLow:    {GammaM: 1.04, GammaD: 1.00, EpsilonD: 0.00},
		ClassMedium: {GammaM: 1.14, GammaD: 1.04, EpsilonD: 0.04},
		ClassHigh:   {GammaM: 1.25, GammaD: 1.08, EpsilonD: 0.08},
	}
}

type Input struct {
	pipe.PipelineSpec
	pipe.MaterialSpec
	pipe.DefectSpec
	SafetyClass SafetyClass `json:"safety_class"`
}

type Result struct {
	RelativeDepth        float64     `json:"relative_depth"`
	LengthParam          float64     `json:"length_param"`
	LengthCorrectionQ    float64     `json:"length_correction_q"`
	CapacityPressureMPa  float64     `json:"capacity_pressure_mpa"`
	AllowablePressureMPa float64     `json:"allowable_pressure_mpa"`
	Utilization          float64     `json:"utilization"`
	Safe                 bool        `json:"safe"`
	SafetyClass          SafetyClass `json:"safety_class"`
	Factors              Factors     `json:"factors"`
	Notes                string      `json:"notes"`
}

// Calculate runs the DNV RP F101 single-defect assessment with the given
// partial-safety-factor table. A nil table uses the defaults.
func Calculate(in Input, table FactorTable) (Result, error) {
	if err := in.PipelineSpec.Validate(); err != nil {
		return Result{}, err
	}
	if err := in.MaterialSpec.Validate(); err != nil {
		return Result{}, err
	}
	if err := in.DefectSpec.Validate(in.PipelineSpec); err != nil {
		return Result{}, err
	}
	if table == nil {
		table = DefaultFactors()
	}
	cls := in.SafetyClass
	if cls == "" {
		cls = ClassMedium
	}
	factors, ok := table[cls]
	if !ok {
		return Result{}, &pipe.InvalidInputError{Field: "safety class", Reason: "must be low, medium or high"}
	}

	rd := in.DefectSpec.RelativeDepth(in.PipelineSpec)
	z := in.DefectSpec.LengthParam(in.PipelineSpec)

	q, err := pipe.LengthCorrectionQ(z)
	if err != nil {
		return Result{}, err
	}

	pCap, err := capacityPressure(in.PipelineSpec, in.MaterialSpec, rd, q)
	if err != nil {
		return Result{}, err
	}

	pAllow := pCap / (factors.GammaM*factors.GammaD + factors.EpsilonD)
	util := in.PressureMPa / pAllow

	return Result{
		RelativeDepth:        rd,
		LengthParam:          z,
		LengthCorrectionQ:    q,
		CapacityPressureMPa:  pCap,
		AllowablePressureMPa: pAllow,
		Utilization:          util,
		Safe:                 util <= 1.0,
		SafetyClass:          cls,
		Factors:              factors,
		Notes:                "DNV RP F101 single-defect pressure assessment.",
	}, nil
}

func capacityPressure(p pipe.PipelineSpec, m pipe.MaterialSpec, rd, q float64) (float64, error) {
	den := 1 - rd/q
	if den <= 0 {
		return 0, &pipe.SingularityError{Method: "DNV RP F101"}
	}
	return (2 * p.WallThicknessMM * m.SMTSMPa / (p.DiameterMM - p.WallThicknessMM)) * (1 - rd) / den, nil
}
