package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	assess "Pipeguard/internal/calc/assess"
	dnv "Pipeguard/internal/calc/dnv"
	pipe "Pipeguard/internal/calc/pipe"

	"github.com/xuri/excelize/v2"
)

// Handler ingests an in-line inspection spreadsheet: one metal-loss defect
// per row, pipeline and material data in the form fields next to the file.
type Handler struct {
	Factors dnv.FactorTable
}

type ImportResult struct {
	Count   int             `json:"count"`
	Skipped int             `json:"skipped"`
	Results []assess.Result `json:"results"`
}

func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	base, err := parseForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{}
	for i := 1; i < len(rows); i++ {
		defect, err := parseDefectRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		in := base
		in.DefectSpec = defect
		res, err := assess.Evaluate(in, h.Factors)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func parseForm(r *http.Request) (assess.Input, error) {
	method := assess.Method(r.FormValue("method"))
	if method == "" {
		method = assess.MethodASMEB31GModified
	}
	d, err := formFloat(r, "diameter_mm")
	if err != nil {
		return assess.Input{}, err
	}
	t, err := formFloat(r, "wall_thickness_mm")
	if err != nil {
		return assess.Input{}, err
	}
	p, err := formFloat(r, "pressure_mpa")
	if err != nil {
		return assess.Input{}, err
	}
	smys, err := formFloat(r, "smys_mpa")
	if err != nil {
		return assess.Input{}, err
	}
	smts, err := formFloat(r, "smts_mpa")
	if err != nil {
		return assess.Input{}, err
	}
	return assess.Input{
		Method:       method,
		PipelineSpec: pipe.PipelineSpec{DiameterMM: d, WallThicknessMM: t, PressureMPa: p},
		MaterialSpec: pipe.MaterialSpec{SMYSMPa: smys, SMTSMPa: smts},
		SafetyClass:  dnv.SafetyClass(r.FormValue("safety_class")),
	}, nil
}

// parseDefectRow expects: length_mm, depth_mm, corrosion_rate_mm_yr(optional)
func parseDefectRow(row []string) (pipe.DefectSpec, error) {
	if len(row) < 2 {
		return pipe.DefectSpec{}, fmt.Errorf("bad row")
	}
	length, err := toFloat(row[0])
	if err != nil {
		return pipe.DefectSpec{}, err
	}
	depth, err := toFloat(row[1])
	if err != nil {
		return pipe.DefectSpec{}, err
	}
	rate := 0.0
	if len(row) > 2 && row[2] != "" {
		rate, _ = toFloat(row[2])
	}
	return pipe.DefectSpec{LengthMM: length, DepthMM: depth, CorrosionRateMMYr: rate}, nil
}

func formFloat(r *http.Request, name string) (float64, error) {
	v, err := strconv.ParseFloat(r.FormValue(name), 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: invalid number", name)
	}
	return v, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
