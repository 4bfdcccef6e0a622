// Package report renders a verification run as a PDF calculation note.
package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/petrmazanek/pozar-drevo/internal/calc/verify"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Beam    verify.Input `json:"beam"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Timber Beam Verification"
	}

	res, err := verify.Calculate(input.Beam)
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
	pdf.Ln(6)
	pdf.Cell(0, 6, "Standard: EN 1995-1-1, EN 1995-1-2")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Input")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Material: %s    Section: %.0f x %.0f mm    Span: %.2f m    Service class: %d",
		input.Beam.MaterialClass, input.Beam.WidthMM, input.Beam.HeightMM, input.Beam.SpanM, input.Beam.ServiceClass))
	pdf.Ln(5)
	for _, l := range input.Beam.Loads {
		pdf.Cell(0, 5, fmt.Sprintf("Load %s: %.2f kN/m (%s)", l.Name, l.ValueKNM, l.Duration))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Checks")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(58, 6, "Check", "1", 0, "L", false, 0, "")
	pdf.CellFormat(28, 6, "Demand", "1", 0, "R", false, 0, "")
	pdf.CellFormat(28, 6, "Capacity", "1", 0, "R", false, 0, "")
	pdf.CellFormat(22, 6, "Util.", "1", 0, "R", false, 0, "")
	pdf.CellFormat(18, 6, "Verdict", "1", 0, "C", false, 0, "")
	pdf.CellFormat(36, 6, "Clause", "1", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, c := range res.Checks {
		verdict := "OK"
		if !c.Passed {
			verdict = "FAIL"
		}
		pdf.CellFormat(58, 6, c.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 6, fmt.Sprintf("%.2f %s", c.Demand, c.Unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, fmt.Sprintf("%.2f %s", c.Capacity, c.Unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(22, 6, fmt.Sprintf("%.1f %%", c.Utilization*100), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, verdict, "1", 0, "C", false, 0, "")
		pdf.CellFormat(36, 6, c.Clause, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if res.Fire != nil {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Fire exposure R%d (%d sides)", res.Fire.Scenario.RatingMin, res.Fire.Scenario.ExposedFaces))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		if res.Fire.Consumed {
			pdf.Cell(0, 5, "Cross-section fully consumed by charring - rating not achievable.")
			pdf.Ln(5)
		} else {
			pdf.Cell(0, 5, fmt.Sprintf("Charring depth %.1f mm, effective depth %.1f mm, residual section %.1f x %.1f mm",
				res.Fire.Reduced.DCharMM, res.Fire.Reduced.DEfMM, res.Fire.Reduced.BMM, res.Fire.Reduced.HMM))
			pdf.Ln(5)
			pdf.Cell(0, 5, fmt.Sprintf("Fire load ratio eta_fi = %.2f", res.Fire.EtaFi))
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	overall := "BEAM SATISFIES ALL CHECKS"
	if !res.AllPassed {
		overall = "BEAM DOES NOT SATISFY ALL CHECKS"
	}
	pdf.Cell(0, 8, fmt.Sprintf("%s (max utilization %.1f %%)", overall, res.MaxUtilization*100))
	if res.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "Note: "+res.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"verification.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
