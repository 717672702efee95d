package dnv

import (
	"encoding/json"
	"errors"
	"net/http"

	pipe "Pipeguard/internal/calc/pipe"
)

type Handler struct {
	Factors FactorTable
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input, h.Factors)
	if err != nil {
		var sing *pipe.SingularityError
		if errors.As(err, &sing) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
