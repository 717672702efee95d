package asme

import (
	pipe "Pipeguard/internal/calc/pipe"
)

// FlowStressOffsetMPa is the Modified B31G flow-stress margin above yield
// (10 ksi in SI units).
const FlowStressOffsetMPa = 68.9

type Input struct {
	pipe.PipelineSpec
	pipe.MaterialSpec
	pipe.DefectSpec
}

type Result struct {
	RelativeDepth      float64 `json:"relative_depth"`
	LengthParam        float64 `json:"length_param"`
	FoliasM            float64 `json:"folias_m"`
	FlowStressMPa      float64 `json:"flow_stress_mpa"`
	FailureStressMPa   float64 `json:"failure_stress_mpa"`
	FailurePressureMPa float64 `json:"failure_pressure_mpa"`
	ERF                float64 `json:"erf"`
	Safe               bool    `json:"safe"`
	Notes              string  `json:"notes"`
}

// Calculate runs a level-1 Modified B31G assessment of a single metal-loss
// defect under internal pressure.
func Calculate(in Input) (Result, error) {
	if err := in.PipelineSpec.Validate(); err != nil {
		return Result{}, err
	}
	if err := in.MaterialSpec.Validate(); err != nil {
		return Result{}, err
	}
	if err := in.DefectSpec.Validate(in.PipelineSpec); err != nil {
		return Result{}, err
	}

	rd := in.DefectSpec.RelativeDepth(in.PipelineSpec)
	z := in.DefectSpec.LengthParam(in.PipelineSpec)

	m, err := pipe.FoliasM(z)
	if err != nil {
		return Result{}, err
	}

	sFlow := in.SMYSMPa + FlowStressOffsetMPa
	sFail, err := failureStress(sFlow, rd, m)
	if err != nil {
		return Result{}, err
	}

	pFail := 2 * sFail * in.WallThicknessMM / in.DiameterMM
	erf := in.PressureMPa / pFail

	return Result{
		RelativeDepth:      rd,
		LengthParam:        z,
		FoliasM:            m,
		FlowStressMPa:      sFlow,
		FailureStressMPa:   sFail,
		FailurePressureMPa: pFail,
		ERF:                erf,
		Safe:               erf < 1.0,
		Notes:              "Modified B31G level-1 metal-loss assessment.",
	}, nil
}

func failureStress(sFlow, rd, m float64) (float64, error) {
	den := 1 - 0.85*rd/m
	if den <= 0 {
		return 0, &pipe.SingularityError{Method: "Modified B31G"}
	}
	return sFlow * (1 - 0.85*rd) / den, nil
}
