package assess

import (
	"encoding/json"
	"errors"
	"net/http"

	dnv "Pipeguard/internal/calc/dnv"
	pipe "Pipeguard/internal/calc/pipe"
)

type Handler struct {
	Factors dnv.FactorTable
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Evaluate(input, h.Factors)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Example returns a canned worked example for the form UI.
func (h *Handler) Example(w http.ResponseWriter, r *http.Request) {
	example := Input{
		Method: MethodASMEB31GModified,
		PipelineSpec: pipe.PipelineSpec{
			DiameterMM:      506,
			WallThicknessMM: 6.35,
			PressureMPa:     1.5,
		},
		MaterialSpec: pipe.MaterialSpec{
			SMYSMPa: 360,
			SMTSMPa: 455,
		},
		DefectSpec: pipe.DefectSpec{
			LengthMM:          200,
			DepthMM:           2.5,
			CorrosionRateMMYr: 0.1,
		},
		SafetyClass: dnv.ClassMedium,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(example)
}

// statusFor maps engine errors onto HTTP statuses: bad input is the caller's
// fault, a model outside its envelope is unprocessable.
func statusFor(err error) int {
	var sing *pipe.SingularityError
	var ncd *pipe.NoCriticalDepthError
	if errors.As(err, &sing) || errors.As(err, &ncd) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
