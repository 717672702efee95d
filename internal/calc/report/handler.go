package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	assess "Pipeguard/internal/calc/assess"
	dnv "Pipeguard/internal/calc/dnv"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project    string       `json:"project"`
	Author     string       `json:"author"`
	Title      string       `json:"title"`
	Notes      string       `json:"notes"`
	Assessment assess.Input `json:"assessment"`
}

type Handler struct {
	Factors dnv.FactorTable
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Pipeline Defect Assessment Report"
	}

	res, err := assess.Evaluate(input.Assessment, h.Factors)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	a := input.Assessment
	line(pdf, fmt.Sprintf("Method: %s", a.Method))
	line(pdf, fmt.Sprintf("Diameter: %.1f mm   Wall thickness: %.2f mm   Pressure: %.2f MPa",
		a.DiameterMM, a.WallThicknessMM, a.PressureMPa))
	line(pdf, fmt.Sprintf("SMYS: %.0f MPa   SMTS: %.0f MPa", a.SMYSMPa, a.SMTSMPa))
	line(pdf, fmt.Sprintf("Defect length: %.1f mm   depth: %.2f mm   corrosion rate: %.3f mm/yr",
		a.LengthMM, a.DepthMM, a.CorrosionRateMMYr))
	if a.Method == assess.MethodDNVRPF101 {
		line(pdf, fmt.Sprintf("Safety class: %s", a.SafetyClass))
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Assessment")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line(pdf, fmt.Sprintf("Relative depth d/t: %.3f   shape factor: %.4f", res.RelativeDepth, res.ShapeFactor))
	line(pdf, fmt.Sprintf("Failure pressure: %.3f MPa   allowable: %.3f MPa",
		res.FailurePressureMPa, res.AllowablePressureMPa))
	line(pdf, fmt.Sprintf("Repair ratio: %.4f", res.Ratio))
	verdict := "FIT FOR SERVICE"
	if !res.Safe {
		verdict = "REPAIR REQUIRED"
	}
	pdf.SetFont("Helvetica", "B", 11)
	line(pdf, verdict)
	pdf.SetFont("Helvetica", "", 11)

	if res.RemainingLife != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Remaining Life")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		rl := res.RemainingLife
		line(pdf, fmt.Sprintf("Critical depth: %.3f mm   corrosion allowance: %.3f mm",
			rl.CriticalDepthMM, rl.AllowanceMM))
		switch {
		case !rl.Applicable:
			line(pdf, "Remaining life: not applicable (zero corrosion rate)")
		case rl.Unbounded:
			line(pdf, "Remaining life: unbounded (defect never becomes critical)")
		default:
			line(pdf, fmt.Sprintf("Remaining life: %.1f years", rl.Years))
		}
	}

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"assessment.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func line(pdf *gofpdf.Fpdf, s string) {
	pdf.Cell(0, 6, s)
	pdf.Ln(6)
}
