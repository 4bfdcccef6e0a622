// Package importer runs beam verifications for rows of an uploaded Excel
// sheet. Each data row describes one beam with a permanent and one variable
// load; bad rows are skipped.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/petrmazanek/pozar-drevo/internal/calc/loads"
	"github.com/petrmazanek/pozar-drevo/internal/calc/verify"
)

type Handler struct{}

type VerifyImportResult struct {
	Count   int             `json:"count"`
	Results []verify.Result `json:"results"`
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

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

	var results []verify.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		input, err := parseBeamRow(row)
		if err != nil {
			continue
		}
		res, err := verify.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VerifyImportResult{Count: len(results), Results: results})
}

// expected columns: material, span_m, width_mm, height_mm, service_class,
// g_k, q_k, duration(optional), category(optional)
func parseBeamRow(row []string) (verify.Input, error) {
	if len(row) < 7 {
		return verify.Input{}, fmt.Errorf("bad row")
	}
	span, err := toFloat(row[1])
	if err != nil {
		return verify.Input{}, err
	}
	width, err := toFloat(row[2])
	if err != nil {
		return verify.Input{}, err
	}
	height, err := toFloat(row[3])
	if err != nil {
		return verify.Input{}, err
	}
	sc, err := toFloat(row[4])
	if err != nil {
		return verify.Input{}, err
	}
	gk, err := toFloat(row[5])
	if err != nil {
		return verify.Input{}, err
	}
	qk, err := toFloat(row[6])
	if err != nil {
		return verify.Input{}, err
	}
	duration := "medium_term"
	if len(row) > 7 && row[7] != "" {
		duration = row[7]
	}
	category := ""
	if len(row) > 8 && row[8] != "" {
		category = row[8]
	}
	return verify.Input{
		MaterialClass: row[0],
		SpanM:         span,
		WidthMM:       width,
		HeightMM:      height,
		ServiceClass:  int(sc),
		Loads: []loads.Load{
			{Name: "dead", ValueKNM: gk, Duration: "permanent"},
			{Name: "live", ValueKNM: qk, Duration: duration, Category: category},
		},
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
