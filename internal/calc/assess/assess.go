package assess

import (
	"errors"

	asme "Pipeguard/internal/calc/asme"
	dnv "Pipeguard/internal/calc/dnv"
	life "Pipeguard/internal/calc/life"
	pipe "Pipeguard/internal/calc/pipe"
)

type Method string

const (
	MethodASMEB31GModified Method = "asme_b31g_modified"
	MethodDNVRPF101        Method = "dnv_rp_f101"
)

type Input struct {
	Method Method `json:"method"`
	pipe.PipelineSpec
	pipe.MaterialSpec
	pipe.DefectSpec
	SafetyClass dnv.SafetyClass `json:"safety_class,omitempty"`
}

// Result is the method-independent assessment record. Ratio is the ERF for
// Modified B31G and the utilization for DNV RP F101; AllowablePressureMPa
// equals the failure pressure for B31G, which applies no partial factors.
type Result struct {
	Method               Method           `json:"method"`
	RelativeDepth        float64          `json:"relative_depth"`
	ShapeFactor          float64          `json:"shape_factor"`
	FailurePressureMPa   float64          `json:"failure_pressure_mpa"`
	AllowablePressureMPa float64          `json:"allowable_pressure_mpa"`
	Ratio                float64          `json:"ratio"`
	Safe                 bool             `json:"safe"`
	RemainingLife        *life.Projection `json:"remaining_life,omitempty"`
}

// Evaluate is the single entry point of the assessment engine: it dispatches
// to the selected method and, when the defect has a non-zero corrosion rate,
// projects the remaining life to the critical depth.
func Evaluate(in Input, factors dnv.FactorTable) (Result, error) {
	res, err := evaluateAt(in, factors, in.DepthMM)
	if err != nil {
		return Result{}, err
	}

	if in.CorrosionRateMMYr > 0 {
		proj, err := projectLife(in, factors)
		if err != nil {
			return Result{}, err
		}
		res.RemainingLife = &proj
		// Past critical depth means repair now, whatever the point
		// assessment said.
		if proj.Applicable && !proj.Unbounded && proj.Years <= 0 {
			res.Safe = false
		}
	}
	return res, nil
}

func evaluateAt(in Input, factors dnv.FactorTable, depthMM float64) (Result, error) {
	defect := in.DefectSpec
	defect.DepthMM = depthMM

	switch in.Method {
	case MethodASMEB31GModified:
		r, err := asme.Calculate(asme.Input{
			PipelineSpec: in.PipelineSpec,
			MaterialSpec: in.MaterialSpec,
			DefectSpec:   defect,
		})
		if err != nil {
			return Result{}, err
		}
		return Result{
			Method:               in.Method,
			RelativeDepth:        r.RelativeDepth,
			ShapeFactor:          r.FoliasM,
			FailurePressureMPa:   r.FailurePressureMPa,
			AllowablePressureMPa: r.FailurePressureMPa,
			Ratio:                r.ERF,
			Safe:                 r.Safe,
		}, nil
	case MethodDNVRPF101:
		r, err := dnv.Calculate(dnv.Input{
			PipelineSpec: in.PipelineSpec,
			MaterialSpec: in.MaterialSpec,
			DefectSpec:   defect,
			SafetyClass:  in.SafetyClass,
		}, factors)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Method:               in.Method,
			RelativeDepth:        r.RelativeDepth,
			ShapeFactor:          r.LengthCorrectionQ,
			FailurePressureMPa:   r.CapacityPressureMPa,
			AllowablePressureMPa: r.AllowablePressureMPa,
			Ratio:                r.Utilization,
			Safe:                 r.Safe,
		}, nil
	default:
		return Result{}, &pipe.InvalidInputError{Field: "method", Reason: "must be asme_b31g_modified or dnv_rp_f101"}
	}
}

func projectLife(in Input, factors dnv.FactorTable) (life.Projection, error) {
	ratio := func(depthMM float64) (float64, error) {
		r, err := evaluateAt(in, factors, depthMM)
		if err != nil {
			return 0, err
		}
		return r.Ratio, nil
	}

	dCrit, err := life.CriticalDepth(ratio, in.WallThicknessMM)
	if err != nil {
		var ncd *pipe.NoCriticalDepthError
		if errors.As(err, &ncd) && !ncd.AtZeroDepth {
			return life.Unlimited(in.WallThicknessMM, in.DepthMM, in.CorrosionRateMMYr), nil
		}
		return life.Projection{}, err
	}
	return life.Estimate(dCrit, in.DepthMM, in.CorrosionRateMMYr), nil
}
