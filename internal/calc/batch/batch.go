package batch

import (
	"fmt"

	assess "Pipeguard/internal/calc/assess"
	dnv "Pipeguard/internal/calc/dnv"
	pipe "Pipeguard/internal/calc/pipe"
)

// Input assesses every defect of one pipeline segment under a single method.
type Input struct {
	Method assess.Method `json:"method"`
	pipe.PipelineSpec
	pipe.MaterialSpec
	SafetyClass dnv.SafetyClass   `json:"safety_class,omitempty"`
	Defects     []pipe.DefectSpec `json:"defects"`
}

type Result struct {
	Results []assess.Result `json:"results"`
	// WorstRatio is the highest repair ratio over all defects; the segment is
	// only as good as its worst defect.
	WorstRatio float64 `json:"worst_ratio"`
	Safe       bool    `json:"safe"`
}

func Calculate(in Input, factors dnv.FactorTable) (Result, error) {
	if len(in.Defects) == 0 {
		return Result{}, fmt.Errorf("no defects")
	}
	out := Result{Results: make([]assess.Result, 0, len(in.Defects)), Safe: true}
	for i, d := range in.Defects {
		res, err := assess.Evaluate(assess.Input{
			Method:       in.Method,
			PipelineSpec: in.PipelineSpec,
			MaterialSpec: in.MaterialSpec,
			DefectSpec:   d,
			SafetyClass:  in.SafetyClass,
		}, factors)
		if err != nil {
			return Result{}, fmt.Errorf("defect %d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
		if res.Ratio > out.WorstRatio {
			out.WorstRatio = res.Ratio
		}
		if !res.Safe {
			out.Safe = false
		}
	}
	return out, nil
}
